package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/campustrade/internal/domain"
	"github.com/fsdevblog/campustrade/internal/repository/repoargs"
	"github.com/fsdevblog/campustrade/pkg/uow"
)

// ComplaintService жалобы по сделкам. Создание жалобы замораживает сделку в статусе
// disputed; деньги остаются там, где были (в эскроу или уже у продавца) до ручного
// разбора администратором.
type ComplaintService struct {
	uow           uow.UOW
	complaintRepo ComplaintRepository
}

func NewComplaintService(u uow.UOW) (*ComplaintService, error) {
	complaintRepo, err :=
		uow.GetRepositoryAs[ComplaintRepository](u, uow.RepositoryName(repoargs.ComplaintRepoName))
	if err != nil {
		return nil, err
	}
	return &ComplaintService{
		uow:           u,
		complaintRepo: complaintRepo,
	}, nil
}

type CreateComplaintArgs struct {
	CallerID int64
	TradeID  int64
	Reason   string
}

// Create подать жалобу может только сторона сделки; вторая сторона автоматически
// становится ответчиком. Смена статуса сделки и создание жалобы — одна транзакция.
func (s *ComplaintService) Create(ctx context.Context, args CreateComplaintArgs) (*domain.Complaint, error) {
	if args.Reason == "" {
		return nil, fmt.Errorf("%w: complaint reason is required", domain.ErrValidation)
	}

	var complaint *domain.Complaint

	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		tradeRepo, tradeRepoErr := uow.GetAs[TradeRepository](tx, uow.RepositoryName(repoargs.TradeRepoName))
		if tradeRepoErr != nil {
			return tradeRepoErr //nolint:wrapcheck
		}
		complaintRepo, complaintRepoErr :=
			uow.GetAs[ComplaintRepository](tx, uow.RepositoryName(repoargs.ComplaintRepoName))
		if complaintRepoErr != nil {
			return complaintRepoErr //nolint:wrapcheck
		}

		trade, findErr := tradeRepo.FindTradeByID(c, args.TradeID)
		if findErr != nil {
			return findErr //nolint:wrapcheck
		}
		if trade.BuyerID != args.CallerID && trade.SellerID != args.CallerID {
			return domain.ErrForbidden
		}
		// Жаловаться есть смысл только пока стороны связаны обязательствами:
		// сделка оплачена либо завершена. Отмененные и уже спорные не замораживаются.
		if trade.Status != domain.TradeStatusPaid && trade.Status != domain.TradeStatusCompleted {
			return domain.ErrInvalidState
		}

		defendantID := trade.SellerID
		if trade.SellerID == args.CallerID {
			defendantID = trade.BuyerID
		}

		// Спор замораживает сделку; выход из disputed — только через админский
		// инструментарий.
		if _, forceErr := tradeRepo.ForceStatus(c, trade.ID, domain.TradeStatusDisputed); forceErr != nil {
			return forceErr //nolint:wrapcheck
		}

		var createErr error
		complaint, createErr = complaintRepo.CreateComplaint(c, repoargs.CreateComplaint{
			ComplainantID: args.CallerID,
			DefendantID:   defendantID,
			TradeID:       trade.ID,
			Reason:        args.Reason,
		})
		if createErr != nil {
			return createErr //nolint:wrapcheck
		}

		return enqueueNotification(c, tx, repoargs.CreateNotification{
			UserID:  defendantID,
			TradeID: &trade.ID,
			Kind:    "complaint_created",
			Title:   "A complaint was filed against your trade",
			Body:    "The trade is frozen until an administrator resolves the dispute.",
		})
	})

	if txErr != nil {
		return nil, fmt.Errorf("creating complaint for trade %d: %w", args.TradeID, txErr)
	}
	return complaint, nil
}

// GetMine возвращает жалобы, поданные юзером.
func (s *ComplaintService) GetMine(
	ctx context.Context,
	callerID int64,
	page repoargs.Page,
) ([]domain.Complaint, error) {
	complaints, err := s.complaintRepo.GetByComplainantID(ctx, callerID, page)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return complaints, nil
}
