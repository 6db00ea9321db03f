package repoargs

type RepositoryName string

const (
	UserRepoName         RepositoryName = "user"
	ItemRepoName         RepositoryName = "item"
	OfferRepoName        RepositoryName = "offer"
	TradeRepoName        RepositoryName = "trade"
	LedgerRepoName       RepositoryName = "ledger"
	ComplaintRepoName    RepositoryName = "complaint"
	NotificationRepoName RepositoryName = "notification"
)

// Page параметры пагинации списочных запросов.
type Page struct {
	Number  uint
	PerPage uint
}

// Offset возвращает смещение для SQL запроса. Нумерация страниц начинается с 1.
func (p Page) Offset() uint {
	if p.Number <= 1 {
		return 0
	}
	return (p.Number - 1) * p.PerPage
}
