package repoargs

import (
	"github.com/fsdevblog/campustrade/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateItem struct {
	UserID           int64
	Title            string
	Description      string
	TransactionType  domain.TradeType
	Price            decimal.Decimal
	RentalPriceDay   decimal.Decimal
	RentalPriceWeek  decimal.Decimal
	RentalPriceMonth decimal.Decimal
	MaxRentalDays    int
	Deposit          decimal.Decimal
	IsBargainable    bool
}

// UpdateItemStatus условное обновление статуса: выполняется только если текущий статус
// товара равен FromStatus. Так закрывается гонка двойного резервирования.
type UpdateItemStatus struct {
	ItemID     int64
	FromStatus domain.ItemStatusType
	ToStatus   domain.ItemStatusType
}
