package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
	Username  string
	Password  string
	Coins     decimal.Decimal
}

type Item struct {
	ID               int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
	UserID           int64
	Title            string
	Description      string
	TransactionType  TradeType
	Status           ItemStatusType
	Price            decimal.Decimal
	RentalPriceDay   decimal.Decimal
	RentalPriceWeek  decimal.Decimal
	RentalPriceMonth decimal.Decimal
	MaxRentalDays    int
	Deposit          decimal.Decimal
	IsBargainable    bool
}

type Offer struct {
	ID          int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
	BuyerID     int64
	ItemID      int64
	Amount      decimal.Decimal
	Status      OfferStatusType
	RespondedAt *time.Time
}

// Trade — агрегат сделки. Поле Status единственный источник правды для движения средств:
// любое изменение баланса происходит строго вместе со сменой статуса в одной транзакции БД.
type Trade struct {
	ID               int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
	BuyerID          int64
	SellerID         int64
	ItemID           int64
	TransactionType  TradeType
	Amount           decimal.Decimal
	DepositPaid      decimal.Decimal
	RentalDays       int
	StartDate        *time.Time
	EndDate          *time.Time
	Status           TradeStatusType
	IsEscrowed       bool
	BuyerRating      *int
	BuyerComment     string
	SellerRating     *int
	SellerComment    string
	CompletedAt      *time.Time
	CanceledAt       *time.Time
	EscrowReleasedAt *time.Time
}

// LedgerEntry неизменяемая запись о движении средств. Создается ровно одна на каждую
// мутацию баланса; никогда не обновляется и не удаляется.
type LedgerEntry struct {
	ID          int64
	CreatedAt   time.Time
	UserID      int64
	TradeID     *int64
	Amount      decimal.Decimal
	Cause       LedgerCauseType
	Description string
}

type Complaint struct {
	ID            int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
	ComplainantID int64
	DefendantID   int64
	TradeID       int64
	Reason        string
	Status        ComplaintStatusType
	AdminComment  string
}

type Notification struct {
	ID          int64
	CreatedAt   time.Time
	UserID      int64
	TradeID     *int64
	Kind        string
	Title       string
	Body        string
	Delivered   bool
	DeliveredAt *time.Time
}
