package repoargs

type CreateNotification struct {
	UserID  int64
	TradeID *int64
	Kind    string
	Title   string
	Body    string
}
