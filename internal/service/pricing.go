package service

import (
	"fmt"

	"github.com/fsdevblog/campustrade/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	weekRateDays  = 7
	monthRateDays = 30
)

// PriceQuote результат расчета стоимости сделки. Залог учитывается отдельно от суммы:
// продавцу при завершении переводится только Amount.
type PriceQuote struct {
	Amount  decimal.Decimal
	Deposit decimal.Decimal
}

// Total полная сумма списания с покупателя при создании сделки.
func (q PriceQuote) Total() decimal.Decimal {
	return q.Amount.Add(q.Deposit)
}

// QuoteSale считает стоимость покупки. Без оффера — цена товара. С оффером — цена из
// него, но только если оффер принят продавцом, относится к этому товару и принадлежит
// этому покупателю; иначе domain.ErrInvalidOffer.
//
// Функция чистая: никаких побочных эффектов, ошибки никогда не заменяются дефолтами.
func QuoteSale(item *domain.Item, offer *domain.Offer, buyerID int64) (PriceQuote, error) {
	if offer == nil {
		return PriceQuote{Amount: item.Price}, nil
	}
	if offer.Status != domain.OfferStatusAccepted || offer.ItemID != item.ID || offer.BuyerID != buyerID {
		return PriceQuote{}, domain.ErrInvalidOffer
	}
	return PriceQuote{Amount: offer.Amount}, nil
}

// QuoteRental считает стоимость аренды на rentalDays дней:
//   - 1 день — дневная ставка;
//   - 2..7 дней — недельная ставка целиком, без пропорции;
//   - дольше — помесячно, остаток дней по дневной ставке.
//
// Превышение max_rental_days — ошибка domain.RentalDaysExceededError.
func QuoteRental(item *domain.Item, rentalDays int) (PriceQuote, error) {
	if rentalDays < 1 {
		return PriceQuote{}, fmt.Errorf("%w: rental days must be positive, got %d", domain.ErrValidation, rentalDays)
	}
	if rentalDays > item.MaxRentalDays {
		return PriceQuote{}, domain.NewRentalDaysExceededError(rentalDays, item.MaxRentalDays)
	}

	var amount decimal.Decimal
	switch {
	case rentalDays == 1:
		amount = item.RentalPriceDay
	case rentalDays <= weekRateDays:
		amount = item.RentalPriceWeek
	default:
		months := int64(rentalDays / monthRateDays)
		remainingDays := int64(rentalDays % monthRateDays)
		amount = item.RentalPriceMonth.Mul(decimal.NewFromInt(months)).
			Add(item.RentalPriceDay.Mul(decimal.NewFromInt(remainingDays)))
	}

	return PriceQuote{Amount: amount, Deposit: item.Deposit}, nil
}
