package repoargs

type CreateComplaint struct {
	ComplainantID int64
	DefendantID   int64
	TradeID       int64
	Reason        string
}
