package repoargs

import (
	"time"

	"github.com/fsdevblog/campustrade/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateOffer struct {
	BuyerID int64
	ItemID  int64
	Amount  decimal.Decimal
}

// RespondOffer условный ответ на предложение цены: обновление проходит только пока
// предложение в статусе pending.
type RespondOffer struct {
	OfferID     int64
	Status      domain.OfferStatusType
	RespondedAt time.Time
}

type OfferFilter struct {
	Status *domain.OfferStatusType
	Page   Page
}
