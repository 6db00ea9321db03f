package service

import (
	"context"

	"github.com/fsdevblog/campustrade/internal/domain"
	"github.com/fsdevblog/campustrade/internal/repository/repoargs"
	"github.com/fsdevblog/campustrade/pkg/uow"
	"github.com/shopspring/decimal"
)

// BalanceService читающая сторона леджера: текущий баланс и история движений.
// Мутаций здесь нет — баланс меняют только сервисы сделок через applyBalanceChange.
type BalanceService struct {
	uow        uow.UOW
	userRepo   UserRepository
	ledgerRepo LedgerRepository
}

func NewBalanceService(u uow.UOW) (*BalanceService, error) {
	userRepo, userRepoErr := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if userRepoErr != nil {
		return nil, userRepoErr
	}
	ledgerRepo, ledgerRepoErr := uow.GetRepositoryAs[LedgerRepository](u, uow.RepositoryName(repoargs.LedgerRepoName))
	if ledgerRepoErr != nil {
		return nil, ledgerRepoErr
	}
	return &BalanceService{
		uow:        u,
		userRepo:   userRepo,
		ledgerRepo: ledgerRepo,
	}, nil
}

type UserBalance struct {
	UserID   int64
	Current  decimal.Decimal
	Credited decimal.Decimal
	Debited  decimal.Decimal
	// Reconciled false сигнализирует о расхождении баланса с суммой леджера —
	// признак бага в коде расчетов, такого быть не должно.
	Reconciled bool
}

// GetUserBalance возвращает баланс юзера вместе с агрегатами леджера и результатом
// сверки: сумма всех записей леджера обязана равняться текущему балансу.
func (b *BalanceService) GetUserBalance(ctx context.Context, userID int64) (*UserBalance, error) {
	user, userErr := b.userRepo.FindUserByID(ctx, userID)
	if userErr != nil {
		return nil, userErr //nolint:wrapcheck
	}
	agg, aggErr := b.ledgerRepo.SumByUserID(ctx, userID)
	if aggErr != nil {
		return nil, aggErr //nolint:wrapcheck
	}

	return &UserBalance{
		UserID:     userID,
		Current:    user.Coins,
		Credited:   agg.CreditedAmount,
		Debited:    agg.DebitedAmount,
		Reconciled: agg.CreditedAmount.Sub(agg.DebitedAmount).Equal(user.Coins),
	}, nil
}

// GetHistory возвращает записи леджера юзера, новые первыми.
func (b *BalanceService) GetHistory(
	ctx context.Context,
	userID int64,
	page repoargs.Page,
) ([]domain.LedgerEntry, error) {
	entries, err := b.ledgerRepo.GetByUserID(ctx, userID, page)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return entries, nil
}
