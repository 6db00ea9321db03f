package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/campustrade/internal/domain"
	"github.com/fsdevblog/campustrade/internal/repository/repoargs"
	"github.com/fsdevblog/campustrade/pkg/uow"
)

// OfferService торг по цене: предложение покупателя живет в статусе pending, пока
// владелец товара его не примет или не отклонит. Принятый оффер затем скармливается
// движку цен при создании сделки.
type OfferService struct {
	uow       uow.UOW
	offerRepo OfferRepository
	itemRepo  ItemRepository
}

func NewOfferService(u uow.UOW) (*OfferService, error) {
	offerRepo, offerRepoErr := uow.GetRepositoryAs[OfferRepository](u, uow.RepositoryName(repoargs.OfferRepoName))
	if offerRepoErr != nil {
		return nil, offerRepoErr
	}
	itemRepo, itemRepoErr := uow.GetRepositoryAs[ItemRepository](u, uow.RepositoryName(repoargs.ItemRepoName))
	if itemRepoErr != nil {
		return nil, itemRepoErr
	}
	return &OfferService{
		uow:       u,
		offerRepo: offerRepo,
		itemRepo:  itemRepo,
	}, nil
}

type CreateOfferArgs struct {
	BuyerID int64
	ItemID  int64
	Amount  decimal.Decimal
}

// Create создает предложение цены. Торговаться можно только по чужому активному
// товару с флагом is_bargainable.
func (s *OfferService) Create(ctx context.Context, args CreateOfferArgs) (*domain.Offer, error) {
	if !args.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: offer amount must be positive", domain.ErrValidation)
	}

	item, itemErr := s.itemRepo.FindItemByID(ctx, args.ItemID)
	if itemErr != nil {
		return nil, fmt.Errorf("creating offer: %w", itemErr)
	}
	if !item.IsBargainable {
		return nil, domain.ErrNotBargainable
	}
	if item.Status != domain.ItemStatusActive {
		return nil, domain.ErrItemUnavailable
	}
	if item.UserID == args.BuyerID {
		return nil, domain.ErrSelfTrade
	}

	offer, createErr := s.offerRepo.CreateOffer(ctx, repoargs.CreateOffer{
		BuyerID: args.BuyerID,
		ItemID:  args.ItemID,
		Amount:  args.Amount,
	})
	if createErr != nil {
		return nil, fmt.Errorf("creating offer: %w", createErr)
	}
	return offer, nil
}

// Respond ответ владельца товара на предложение: accept или reject, только пока оффер
// pending. Чужой оффер — domain.ErrForbidden, не pending — domain.ErrInvalidState.
func (s *OfferService) Respond(
	ctx context.Context,
	sellerID, offerID int64,
	accept bool,
) (*domain.Offer, error) {
	var offer *domain.Offer

	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		offerRepo, offerRepoErr := uow.GetAs[OfferRepository](tx, uow.RepositoryName(repoargs.OfferRepoName))
		if offerRepoErr != nil {
			return offerRepoErr //nolint:wrapcheck
		}
		itemRepo, itemRepoErr := uow.GetAs[ItemRepository](tx, uow.RepositoryName(repoargs.ItemRepoName))
		if itemRepoErr != nil {
			return itemRepoErr //nolint:wrapcheck
		}

		current, findErr := offerRepo.FindOfferByID(c, offerID)
		if findErr != nil {
			return findErr //nolint:wrapcheck
		}

		item, itemErr := itemRepo.FindItemByID(c, current.ItemID)
		if itemErr != nil {
			return itemErr //nolint:wrapcheck
		}
		if item.UserID != sellerID {
			return domain.ErrForbidden
		}
		if current.Status != domain.OfferStatusPending {
			return domain.ErrInvalidState
		}

		status := domain.OfferStatusRejected
		if accept {
			status = domain.OfferStatusAccepted
		}

		updated, respondErr := offerRepo.Respond(c, repoargs.RespondOffer{
			OfferID:     offerID,
			Status:      status,
			RespondedAt: time.Now(),
		})
		if respondErr != nil {
			// Конкурентный ответ успел закрыть оффер первым.
			if errors.Is(respondErr, domain.ErrRecordNotFound) {
				return domain.ErrInvalidState
			}
			return respondErr //nolint:wrapcheck
		}
		offer = updated

		return enqueueNotification(c, tx, repoargs.CreateNotification{
			UserID: updated.BuyerID,
			Kind:   "offer_responded",
			Title:  "Your offer got a response",
			Body:   fmt.Sprintf("The seller has %s your offer for item %q.", status, item.Title),
		})
	})

	if txErr != nil {
		return nil, fmt.Errorf("responding to offer %d: %w", offerID, txErr)
	}
	return offer, nil
}

// GetMine возвращает офферы, созданные покупателем.
func (s *OfferService) GetMine(
	ctx context.Context,
	buyerID int64,
	filter repoargs.OfferFilter,
) ([]domain.Offer, error) {
	offers, err := s.offerRepo.GetByBuyerID(ctx, buyerID, filter)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return offers, nil
}

// GetReceived возвращает офферы по товарам продавца.
func (s *OfferService) GetReceived(
	ctx context.Context,
	sellerID int64,
	filter repoargs.OfferFilter,
) ([]domain.Offer, error) {
	offers, err := s.offerRepo.GetReceived(ctx, sellerID, filter)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return offers, nil
}
