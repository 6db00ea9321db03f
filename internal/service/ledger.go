package service

import (
	"context"
	"errors"

	"github.com/fsdevblog/campustrade/internal/domain"
	"github.com/fsdevblog/campustrade/internal/repository/repoargs"
	"github.com/fsdevblog/campustrade/pkg/uow"
	"github.com/shopspring/decimal"
)

type balanceChange struct {
	UserID      int64
	Delta       decimal.Decimal
	Cause       domain.LedgerCauseType
	TradeID     *int64
	Description string
}

// applyBalanceChange атомарная пара "мутация баланса + запись леджера". Единственный
// разрешенный способ изменить баланс юзера: вызывается только внутри транзакции tx,
// чтобы исключить рассинхронизацию баланса и леджера.
func applyBalanceChange(ctx context.Context, tx uow.TX, change balanceChange) error {
	userRepo, userRepoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
	if userRepoErr != nil {
		return userRepoErr //nolint:wrapcheck
	}
	ledgerRepo, ledgerRepoErr := uow.GetAs[LedgerRepository](tx, uow.RepositoryName(repoargs.LedgerRepoName))
	if ledgerRepoErr != nil {
		return ledgerRepoErr //nolint:wrapcheck
	}

	if _, adjErr := userRepo.AdjustCoins(ctx, change.UserID, change.Delta); adjErr != nil {
		// Условие coins + delta >= 0 не нашло строку: при списании это нехватка средств.
		if errors.Is(adjErr, domain.ErrRecordNotFound) && change.Delta.IsNegative() {
			return domain.ErrNotEnoughBalance
		}
		return adjErr //nolint:wrapcheck
	}

	if _, ledgerErr := ledgerRepo.Create(ctx, repoargs.CreateLedgerEntry{
		UserID:      change.UserID,
		TradeID:     change.TradeID,
		Amount:      change.Delta,
		Cause:       change.Cause,
		Description: change.Description,
	}); ledgerErr != nil {
		return ledgerErr //nolint:wrapcheck
	}
	return nil
}

// enqueueNotification создает уведомление в рамках той же транзакции, что и породившее
// его изменение (outbox): доставкой занимается фоновый диспетчер.
func enqueueNotification(ctx context.Context, tx uow.TX, args repoargs.CreateNotification) error {
	notificationRepo, repoErr :=
		uow.GetAs[NotificationRepository](tx, uow.RepositoryName(repoargs.NotificationRepoName))
	if repoErr != nil {
		return repoErr //nolint:wrapcheck
	}
	if _, err := notificationRepo.CreateNotification(ctx, args); err != nil {
		return err //nolint:wrapcheck
	}
	return nil
}
