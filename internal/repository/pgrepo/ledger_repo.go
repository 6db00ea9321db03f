package pgrepo

import (
	"context"

	"github.com/fsdevblog/campustrade/internal/domain"
	"github.com/fsdevblog/campustrade/internal/repository/repoargs"
	"github.com/fsdevblog/campustrade/pkg/uow"
)

type LedgerRepository struct {
	db uow.DBTX
}

func NewLedgerRepository(db uow.DBTX) *LedgerRepository {
	return &LedgerRepository{db: db}
}

const ledgerColumns = "id, created_at, user_id, trade_id, amount, cause, description"

// Create добавляет запись в леджер. Таблица append-only: никаких update/delete
// методов у репозитория нет намеренно.
func (r *LedgerRepository) Create(
	ctx context.Context,
	args repoargs.CreateLedgerEntry,
) (*domain.LedgerEntry, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO ledger_entries (user_id, trade_id, amount, cause, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+ledgerColumns,
		args.UserID, args.TradeID, args.Amount, args.Cause, args.Description)

	entry, err := scanLedgerEntry(row)
	if err != nil {
		return nil, convertErr(err, "creating ledger entry for user %d", args.UserID)
	}
	return entry, nil
}

func (r *LedgerRepository) GetByUserID(
	ctx context.Context,
	userID int64,
	page repoargs.Page,
) ([]domain.LedgerEntry, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+ledgerColumns+` FROM ledger_entries
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`,
		userID, page.PerPage, page.Offset())
	if err != nil {
		return nil, convertErr(err, "getting ledger entries of user %d", userID)
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		entry, scanErr := scanLedgerEntry(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "getting ledger entries of user %d", userID)
		}
		entries = append(entries, *entry)
	}
	return entries, convertErr(rows.Err(), "getting ledger entries of user %d", userID)
}

// SumByUserID агрегирует леджер юзера по знаку суммы. Используется для сверки
// с текущим балансом.
func (r *LedgerRepository) SumByUserID(ctx context.Context, userID int64) (*repoargs.BalanceAggregation, error) {
	var agg repoargs.BalanceAggregation
	err := r.db.QueryRow(ctx, `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE amount > 0), 0),
			COALESCE(-SUM(amount) FILTER (WHERE amount < 0), 0)
		FROM ledger_entries WHERE user_id = $1`,
		userID).Scan(&agg.CreditedAmount, &agg.DebitedAmount)
	if err != nil {
		return nil, convertErr(err, "aggregating ledger of user %d", userID)
	}
	return &agg, nil
}

func scanLedgerEntry(row interface{ Scan(...any) error }) (*domain.LedgerEntry, error) {
	var e domain.LedgerEntry
	err := row.Scan(&e.ID, &e.CreatedAt, &e.UserID, &e.TradeID, &e.Amount, &e.Cause, &e.Description)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &e, nil
}
