package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/campustrade/internal/domain"
	"github.com/fsdevblog/campustrade/internal/repository/repoargs"
	"github.com/fsdevblog/campustrade/pkg/uow"
)

// TradeService оркестратор сделок. Каждая операция (создание, подтверждение, отмена,
// отзыв) выполняется как одна транзакция БД: мутация балансов, запись леджера, смена
// статусов сделки и товара применяются все вместе либо никак.
type TradeService struct {
	uow           uow.UOW
	tradeRepo     TradeRepository
	depositPolicy domain.DepositPolicyType
	reviewReward  decimal.Decimal
}

func NewTradeService(
	u uow.UOW,
	depositPolicy domain.DepositPolicyType,
	reviewReward decimal.Decimal,
) (*TradeService, error) {
	tradeRepo, err := uow.GetRepositoryAs[TradeRepository](u, uow.RepositoryName(repoargs.TradeRepoName))
	if err != nil {
		return nil, err
	}
	return &TradeService{
		uow:           u,
		tradeRepo:     tradeRepo,
		depositPolicy: depositPolicy,
		reviewReward:  reviewReward,
	}, nil
}

type CreateTradeArgs struct {
	BuyerID    int64
	ItemID     int64
	RentalDays int
	OfferID    *int64
}

// Create создает оплаченную сделку с эскроу.
//
// Алгоритм работы:
//  1. Все проверки (товар активен, не свой, оффер валиден, денег хватает) идут до
//     первой мутации.
//  2. Баланс покупателя читается с блокировкой строки — конкурентное списание ждет
//     завершения транзакции, двойная трата исключена.
//  3. Товар условно переводится active -> reserved: из двух конкурентных сделок по
//     одному товару резервирование пройдет ровно у одной.
//  4. Списание с покупателя, запись леджера, создание сделки и уведомление продавцу
//     коммитятся одной транзакцией.
func (s *TradeService) Create(ctx context.Context, args CreateTradeArgs) (*domain.Trade, error) {
	var trade *domain.Trade

	// корректность обеспечивают блокировки строк, уровень изоляции фиксируем явно.
	txErr := s.uow.DoWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, func(c context.Context, tx uow.TX) error {
		itemRepo, itemRepoErr := uow.GetAs[ItemRepository](tx, uow.RepositoryName(repoargs.ItemRepoName))
		if itemRepoErr != nil {
			return itemRepoErr //nolint:wrapcheck
		}

		item, itemErr := itemRepo.FindItemByID(c, args.ItemID)
		if itemErr != nil {
			return itemErr //nolint:wrapcheck
		}
		if item.UserID == args.BuyerID {
			return domain.ErrSelfTrade
		}
		if item.Status != domain.ItemStatusActive {
			return domain.ErrItemUnavailable
		}

		quote, cause, window, quoteErr := s.quote(c, tx, item, args)
		if quoteErr != nil {
			return quoteErr
		}

		userRepo, userRepoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if userRepoErr != nil {
			return userRepoErr //nolint:wrapcheck
		}
		coins, coinsErr := userRepo.GetCoinsForUpdate(c, args.BuyerID)
		if coinsErr != nil {
			return coinsErr //nolint:wrapcheck
		}
		if coins.LessThan(quote.Total()) {
			return domain.ErrNotEnoughBalance
		}

		if _, reserveErr := itemRepo.UpdateStatusIf(c, repoargs.UpdateItemStatus{
			ItemID:     item.ID,
			FromStatus: domain.ItemStatusActive,
			ToStatus:   domain.ItemStatusReserved,
		}); reserveErr != nil {
			if errors.Is(reserveErr, domain.ErrRecordNotFound) {
				return domain.ErrItemUnavailable
			}
			return reserveErr //nolint:wrapcheck
		}

		tradeRepo, tradeRepoErr := uow.GetAs[TradeRepository](tx, uow.RepositoryName(repoargs.TradeRepoName))
		if tradeRepoErr != nil {
			return tradeRepoErr //nolint:wrapcheck
		}
		var createErr error
		trade, createErr = tradeRepo.CreateTrade(c, repoargs.CreateTrade{
			BuyerID:         args.BuyerID,
			SellerID:        item.UserID,
			ItemID:          item.ID,
			TransactionType: item.TransactionType,
			Amount:          quote.Amount,
			DepositPaid:     quote.Deposit,
			RentalDays:      args.RentalDays,
			StartDate:       window.start,
			EndDate:         window.end,
			Status:          domain.TradeStatusPaid,
			IsEscrowed:      true,
		})
		if createErr != nil {
			return createErr //nolint:wrapcheck
		}

		if chargeErr := applyBalanceChange(c, tx, balanceChange{
			UserID:      args.BuyerID,
			Delta:       quote.Total().Neg(),
			Cause:       cause,
			TradeID:     &trade.ID,
			Description: fmt.Sprintf("payment for item %q", item.Title),
		}); chargeErr != nil {
			return chargeErr
		}

		return enqueueNotification(c, tx, repoargs.CreateNotification{
			UserID:  item.UserID,
			TradeID: &trade.ID,
			Kind:    "trade_created",
			Title:   "Your item has been paid for",
			Body:    fmt.Sprintf("Item %q is reserved by a buyer, funds are held in escrow.", item.Title),
		})
	})

	if txErr != nil {
		return nil, fmt.Errorf("creating trade: %w", txErr)
	}
	return trade, nil
}

type rentalWindow struct {
	start *time.Time
	end   *time.Time
}

// quote вычисляет сумму сделки через движок цен. Для продажи с оффером предварительно
// загружает оффер и после проверок помечает его израсходованным: оффер одноразовый,
// принятый оффер оплачивает не более одной сделки. Отсутствующий или уже
// израсходованный оффер приравнивается к невалидному.
func (s *TradeService) quote(
	ctx context.Context,
	tx uow.TX,
	item *domain.Item,
	args CreateTradeArgs,
) (PriceQuote, domain.LedgerCauseType, rentalWindow, error) {
	if item.TransactionType == domain.TradeTypeRent {
		quote, err := QuoteRental(item, args.RentalDays)
		if err != nil {
			return PriceQuote{}, "", rentalWindow{}, err
		}
		start := time.Now()
		end := start.AddDate(0, 0, args.RentalDays)
		return quote, domain.LedgerCauseRentalPayment, rentalWindow{start: &start, end: &end}, nil
	}

	var offer *domain.Offer
	var offerRepo OfferRepository
	if args.OfferID != nil {
		var offerRepoErr error
		offerRepo, offerRepoErr = uow.GetAs[OfferRepository](tx, uow.RepositoryName(repoargs.OfferRepoName))
		if offerRepoErr != nil {
			return PriceQuote{}, "", rentalWindow{}, offerRepoErr //nolint:wrapcheck
		}
		var offerErr error
		offer, offerErr = offerRepo.FindOfferByID(ctx, *args.OfferID)
		if offerErr != nil {
			if errors.Is(offerErr, domain.ErrRecordNotFound) {
				return PriceQuote{}, "", rentalWindow{}, domain.ErrInvalidOffer
			}
			return PriceQuote{}, "", rentalWindow{}, offerErr //nolint:wrapcheck
		}
	}

	quote, err := QuoteSale(item, offer, args.BuyerID)
	if err != nil {
		return PriceQuote{}, "", rentalWindow{}, err
	}

	if offer != nil {
		// Условный апдейт accepted -> consumed закрывает гонку двух конкурентных
		// сделок по одному офферу: вторая откатится вместе со своей транзакцией.
		if _, consumeErr := offerRepo.Consume(ctx, offer.ID); consumeErr != nil {
			if errors.Is(consumeErr, domain.ErrRecordNotFound) {
				return PriceQuote{}, "", rentalWindow{}, domain.ErrInvalidOffer
			}
			return PriceQuote{}, "", rentalWindow{}, consumeErr //nolint:wrapcheck
		}
	}
	return quote, domain.LedgerCausePurchasePayment, rentalWindow{}, nil
}

// Confirm подтверждает получение товара покупателем и закрывает эскроу: продавцу
// переводится сумма сделки (залог продавцу не переводится никогда), товар уходит в
// sold при продаже или возвращается в active при аренде.
func (s *TradeService) Confirm(ctx context.Context, buyerID, tradeID int64) (*domain.Trade, error) {
	var trade *domain.Trade

	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		tradeRepo, tradeRepoErr := uow.GetAs[TradeRepository](tx, uow.RepositoryName(repoargs.TradeRepoName))
		if tradeRepoErr != nil {
			return tradeRepoErr //nolint:wrapcheck
		}

		current, findErr := tradeRepo.FindTradeByID(c, tradeID)
		if findErr != nil {
			return findErr //nolint:wrapcheck
		}
		if current.BuyerID != buyerID {
			return domain.ErrForbidden
		}
		if current.Status != domain.TradeStatusPaid {
			return domain.ErrInvalidState
		}

		now := time.Now()
		updated, updateErr := tradeRepo.UpdateStatusIf(c, repoargs.UpdateTradeStatus{
			TradeID:          tradeID,
			FromStatus:       domain.TradeStatusPaid,
			ToStatus:         domain.TradeStatusCompleted,
			CompletedAt:      &now,
			EscrowReleasedAt: &now,
			ReleaseEscrow:    true,
		})
		if updateErr != nil {
			// Статус успел измениться конкурентной операцией.
			if errors.Is(updateErr, domain.ErrRecordNotFound) {
				return domain.ErrInvalidState
			}
			return updateErr //nolint:wrapcheck
		}
		trade = updated

		if receiptErr := applyBalanceChange(c, tx, balanceChange{
			UserID:      updated.SellerID,
			Delta:       updated.Amount,
			Cause:       domain.LedgerCauseTransactionReceipt,
			TradeID:     &updated.ID,
			Description: "sale proceeds",
		}); receiptErr != nil {
			return receiptErr
		}

		if refundErr := s.settleDeposit(c, tx, updated); refundErr != nil {
			return refundErr
		}

		if itemErr := s.releaseItem(c, tx, updated, completedItemStatus(updated)); itemErr != nil {
			return itemErr
		}

		return enqueueNotification(c, tx, repoargs.CreateNotification{
			UserID:  updated.SellerID,
			TradeID: &updated.ID,
			Kind:    "trade_completed",
			Title:   "Trade completed",
			Body:    "The buyer confirmed the trade, escrowed funds were released to your balance.",
		})
	})

	if txErr != nil {
		return nil, fmt.Errorf("confirming trade %d: %w", tradeID, txErr)
	}
	return trade, nil
}

// Cancel отменяет оплаченную сделку: покупателю возвращается вся сумма (для аренды —
// вместе с залогом), товар снова становится активным.
func (s *TradeService) Cancel(ctx context.Context, buyerID, tradeID int64) (*domain.Trade, error) {
	var trade *domain.Trade

	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		tradeRepo, tradeRepoErr := uow.GetAs[TradeRepository](tx, uow.RepositoryName(repoargs.TradeRepoName))
		if tradeRepoErr != nil {
			return tradeRepoErr //nolint:wrapcheck
		}

		current, findErr := tradeRepo.FindTradeByID(c, tradeID)
		if findErr != nil {
			return findErr //nolint:wrapcheck
		}
		if current.BuyerID != buyerID {
			return domain.ErrForbidden
		}
		if current.Status != domain.TradeStatusPaid {
			return domain.ErrInvalidState
		}

		now := time.Now()
		updated, updateErr := tradeRepo.UpdateStatusIf(c, repoargs.UpdateTradeStatus{
			TradeID:       tradeID,
			FromStatus:    domain.TradeStatusPaid,
			ToStatus:      domain.TradeStatusCanceled,
			CanceledAt:    &now,
			ReleaseEscrow: true,
		})
		if updateErr != nil {
			if errors.Is(updateErr, domain.ErrRecordNotFound) {
				return domain.ErrInvalidState
			}
			return updateErr //nolint:wrapcheck
		}
		trade = updated

		refund := updated.Amount
		if updated.TransactionType == domain.TradeTypeRent {
			refund = refund.Add(updated.DepositPaid)
		}

		if refundErr := applyBalanceChange(c, tx, balanceChange{
			UserID:      updated.BuyerID,
			Delta:       refund,
			Cause:       domain.LedgerCauseTransactionRefund,
			TradeID:     &updated.ID,
			Description: "trade cancellation refund",
		}); refundErr != nil {
			return refundErr
		}

		if itemErr := s.releaseItem(c, tx, updated, domain.ItemStatusActive); itemErr != nil {
			return itemErr
		}

		return enqueueNotification(c, tx, repoargs.CreateNotification{
			UserID:  updated.SellerID,
			TradeID: &updated.ID,
			Kind:    "trade_canceled",
			Title:   "Trade canceled",
			Body:    "The buyer canceled the trade, the item is listed again.",
		})
	})

	if txErr != nil {
		return nil, fmt.Errorf("canceling trade %d: %w", tradeID, txErr)
	}
	return trade, nil
}

type ReviewTradeArgs struct {
	CallerID int64
	TradeID  int64
	Rating   int
	Comment  string
}

// Review оценка завершенной сделки одной из сторон. Оценка покупателя и продавца
// независимы; каждая роль может оценить лишь единожды, повторная попытка возвращает
// domain.ErrAlreadyReviewed. За отзыв автору начисляется фиксированная награда.
func (s *TradeService) Review(ctx context.Context, args ReviewTradeArgs) (*domain.Trade, error) {
	if args.Rating < 1 || args.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be within 1..5, got %d", domain.ErrValidation, args.Rating)
	}

	var trade *domain.Trade

	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		tradeRepo, tradeRepoErr := uow.GetAs[TradeRepository](tx, uow.RepositoryName(repoargs.TradeRepoName))
		if tradeRepoErr != nil {
			return tradeRepoErr //nolint:wrapcheck
		}

		current, findErr := tradeRepo.FindTradeByID(c, args.TradeID)
		if findErr != nil {
			return findErr //nolint:wrapcheck
		}
		if current.BuyerID != args.CallerID && current.SellerID != args.CallerID {
			return domain.ErrForbidden
		}
		if current.Status != domain.TradeStatusCompleted {
			return domain.ErrInvalidState
		}

		updated, reviewErr := tradeRepo.SetReview(c, repoargs.SetTradeReview{
			TradeID: args.TradeID,
			AsBuyer: current.BuyerID == args.CallerID,
			Rating:  args.Rating,
			Comment: args.Comment,
		})
		if reviewErr != nil {
			if errors.Is(reviewErr, domain.ErrRecordNotFound) {
				return domain.ErrAlreadyReviewed
			}
			return reviewErr //nolint:wrapcheck
		}
		trade = updated

		if s.reviewReward.IsPositive() {
			return applyBalanceChange(c, tx, balanceChange{
				UserID:      args.CallerID,
				Delta:       s.reviewReward,
				Cause:       domain.LedgerCauseReviewReward,
				TradeID:     &updated.ID,
				Description: "trade review reward",
			})
		}
		return nil
	})

	if txErr != nil {
		return nil, fmt.Errorf("reviewing trade %d: %w", args.TradeID, txErr)
	}
	return trade, nil
}

// GetPurchases возвращает сделки юзера-покупателя, новые первыми.
func (s *TradeService) GetPurchases(
	ctx context.Context,
	buyerID int64,
	filter repoargs.TradeFilter,
) ([]domain.Trade, error) {
	trades, err := s.tradeRepo.GetByBuyerID(ctx, buyerID, filter)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return trades, nil
}

// GetSales возвращает сделки юзера-продавца, новые первыми.
func (s *TradeService) GetSales(
	ctx context.Context,
	sellerID int64,
	filter repoargs.TradeFilter,
) ([]domain.Trade, error) {
	trades, err := s.tradeRepo.GetBySellerID(ctx, sellerID, filter)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return trades, nil
}

// settleDeposit применяет настроенную политику залога при нормальном завершении аренды.
func (s *TradeService) settleDeposit(ctx context.Context, tx uow.TX, trade *domain.Trade) error {
	if trade.TransactionType != domain.TradeTypeRent || !trade.DepositPaid.IsPositive() {
		return nil
	}
	if s.depositPolicy != domain.DepositPolicyRefund {
		// DepositPolicyRetain: залог остается у площадки, записи леджера нет —
		// средства уже списаны при создании сделки.
		return nil
	}
	return applyBalanceChange(ctx, tx, balanceChange{
		UserID:      trade.BuyerID,
		Delta:       trade.DepositPaid,
		Cause:       domain.LedgerCauseDepositRefund,
		TradeID:     &trade.ID,
		Description: "rental deposit refund",
	})
}

func (s *TradeService) releaseItem(
	ctx context.Context,
	tx uow.TX,
	trade *domain.Trade,
	toStatus domain.ItemStatusType,
) error {
	itemRepo, itemRepoErr := uow.GetAs[ItemRepository](tx, uow.RepositoryName(repoargs.ItemRepoName))
	if itemRepoErr != nil {
		return itemRepoErr //nolint:wrapcheck
	}
	if _, err := itemRepo.UpdateStatusIf(ctx, repoargs.UpdateItemStatus{
		ItemID:     trade.ItemID,
		FromStatus: domain.ItemStatusReserved,
		ToStatus:   toStatus,
	}); err != nil {
		return err //nolint:wrapcheck
	}
	return nil
}

func completedItemStatus(trade *domain.Trade) domain.ItemStatusType {
	if trade.TransactionType == domain.TradeTypeSale {
		return domain.ItemStatusSold
	}
	// аренда: товар можно сдавать снова.
	return domain.ItemStatusActive
}
