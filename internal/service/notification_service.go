package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/campustrade/internal/domain"
	"github.com/fsdevblog/campustrade/internal/repository/repoargs"
	"github.com/fsdevblog/campustrade/pkg/uow"
)

// NotificationSender доставляет уведомление во внешний мир (вебхук, почта и т.п.).
type NotificationSender interface {
	Send(ctx context.Context, n domain.Notification) error
}

type NotificationService struct {
	uow              uow.UOW
	notificationRepo NotificationRepository
}

func NewNotificationService(u uow.UOW) (*NotificationService, error) {
	notificationRepo, repoErr :=
		uow.GetRepositoryAs[NotificationRepository](u, uow.RepositoryName(repoargs.NotificationRepoName))
	if repoErr != nil {
		return nil, repoErr
	}
	return &NotificationService{uow: u, notificationRepo: notificationRepo}, nil
}

// GetByUserID возвращает уведомления юзера, свежие первыми.
func (s *NotificationService) GetByUserID(
	ctx context.Context,
	userID int64,
	page repoargs.Page,
) ([]domain.Notification, error) {
	list, err := s.notificationRepo.GetByUserID(ctx, userID, page)
	if err != nil {
		return nil, fmt.Errorf("getting notifications for user %d: %w", userID, err)
	}
	return list, nil
}

// DispatchPending забирает пачку недоставленных уведомлений и отдает их sender'у.
// Выборка и пометка доставленных — две короткие транзакции; сами вызовы sender'а
// идут между ними, без открытой транзакции: строки очереди не висят заблокированными
// на время сетевых раунд-трипов. Помечаются доставленными только те уведомления,
// которые sender принял без ошибки; остальные останутся в очереди до следующего
// прохода. Семантика at-least-once: процесс, упавший между отправкой и пометкой,
// отправит уведомление повторно. Возвращает число доставленных.
func (s *NotificationService) DispatchPending(
	ctx context.Context,
	limit uint,
	sender NotificationSender,
) (int, error) {
	var pending []domain.Notification

	fetchErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		notificationRepo, repoErr :=
			uow.GetAs[NotificationRepository](tx, uow.RepositoryName(repoargs.NotificationRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		var pendingErr error
		pending, pendingErr = notificationRepo.GetUndelivered(c, limit)
		return pendingErr //nolint:wrapcheck
	})
	if fetchErr != nil {
		return 0, fmt.Errorf("dispatching notifications: %w", fetchErr)
	}
	if len(pending) == 0 {
		return 0, nil
	}

	sentIDs := make([]int64, 0, len(pending))
	for _, n := range pending {
		if sendErr := sender.Send(ctx, n); sendErr != nil {
			continue
		}
		sentIDs = append(sentIDs, n.ID)
	}
	if len(sentIDs) == 0 {
		return 0, nil
	}

	markErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		notificationRepo, repoErr :=
			uow.GetAs[NotificationRepository](tx, uow.RepositoryName(repoargs.NotificationRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		return notificationRepo.MarkDelivered(c, sentIDs) //nolint:wrapcheck
	})
	if markErr != nil {
		return 0, fmt.Errorf("dispatching notifications: %w", markErr)
	}
	return len(sentIDs), nil
}
