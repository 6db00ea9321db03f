package repoargs

import (
	"time"

	"github.com/fsdevblog/campustrade/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateTrade struct {
	BuyerID         int64
	SellerID        int64
	ItemID          int64
	TransactionType domain.TradeType
	Amount          decimal.Decimal
	DepositPaid     decimal.Decimal
	RentalDays      int
	StartDate       *time.Time
	EndDate         *time.Time
	Status          domain.TradeStatusType
	IsEscrowed      bool
}

// UpdateTradeStatus условный переход статуса сделки: срабатывает только если текущий
// статус равен FromStatus, иначе репозиторий вернет domain.ErrRecordNotFound.
type UpdateTradeStatus struct {
	TradeID          int64
	FromStatus       domain.TradeStatusType
	ToStatus         domain.TradeStatusType
	CompletedAt      *time.Time
	CanceledAt       *time.Time
	EscrowReleasedAt *time.Time
	ReleaseEscrow    bool
}

type SetTradeReview struct {
	TradeID int64
	// AsBuyer true — оценка и комментарий пишутся в поля покупателя, false — продавца.
	AsBuyer bool
	Rating  int
	Comment string
}

type TradeFilter struct {
	Status *domain.TradeStatusType
	Page   Page
}
