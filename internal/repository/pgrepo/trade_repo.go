package pgrepo

import (
	"context"

	"github.com/fsdevblog/campustrade/internal/domain"
	"github.com/fsdevblog/campustrade/internal/repository/repoargs"
	"github.com/fsdevblog/campustrade/pkg/uow"
	"github.com/jackc/pgx/v5"
)

type TradeRepository struct {
	db uow.DBTX
}

func NewTradeRepository(db uow.DBTX) *TradeRepository {
	return &TradeRepository{db: db}
}

const tradeColumns = `id, created_at, updated_at, buyer_id, seller_id, item_id, transaction_type,
	amount, deposit_paid, rental_days, start_date, end_date, status, is_escrowed,
	buyer_rating, buyer_comment, seller_rating, seller_comment,
	completed_at, canceled_at, escrow_released_at`

func (r *TradeRepository) CreateTrade(ctx context.Context, args repoargs.CreateTrade) (*domain.Trade, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO trades (buyer_id, seller_id, item_id, transaction_type, amount,
			deposit_paid, rental_days, start_date, end_date, status, is_escrowed)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING `+tradeColumns,
		args.BuyerID, args.SellerID, args.ItemID, args.TransactionType, args.Amount,
		args.DepositPaid, args.RentalDays, args.StartDate, args.EndDate, args.Status, args.IsEscrowed)

	trade, err := scanTrade(row)
	if err != nil {
		return nil, convertErr(err, "creating trade for item %d", args.ItemID)
	}
	return trade, nil
}

func (r *TradeRepository) FindTradeByID(ctx context.Context, id int64) (*domain.Trade, error) {
	row := r.db.QueryRow(ctx, `SELECT `+tradeColumns+` FROM trades WHERE id = $1`, id)
	trade, err := scanTrade(row)
	if err != nil {
		return nil, convertErr(err, "finding trade by id %d", id)
	}
	return trade, nil
}

// UpdateStatusIf условный переход статуса сделки. Условие по текущему статусу
// сериализует конкурентные подтверждение/отмену: проигравший запрос получит
// domain.ErrRecordNotFound и откатит свою транзакцию целиком.
func (r *TradeRepository) UpdateStatusIf(ctx context.Context, args repoargs.UpdateTradeStatus) (*domain.Trade, error) {
	query := `UPDATE trades SET status = $1, updated_at = now()`
	qArgs := []any{args.ToStatus}

	if args.CompletedAt != nil {
		qArgs = append(qArgs, *args.CompletedAt)
		query += `, completed_at = $` + itoa(len(qArgs))
	}
	if args.CanceledAt != nil {
		qArgs = append(qArgs, *args.CanceledAt)
		query += `, canceled_at = $` + itoa(len(qArgs))
	}
	if args.EscrowReleasedAt != nil {
		qArgs = append(qArgs, *args.EscrowReleasedAt)
		query += `, escrow_released_at = $` + itoa(len(qArgs))
	}
	if args.ReleaseEscrow {
		query += `, is_escrowed = FALSE`
	}

	qArgs = append(qArgs, args.TradeID)
	query += ` WHERE id = $` + itoa(len(qArgs))
	qArgs = append(qArgs, args.FromStatus)
	query += ` AND status = $` + itoa(len(qArgs))
	query += ` RETURNING ` + tradeColumns

	trade, err := scanTrade(r.db.QueryRow(ctx, query, qArgs...))
	if err != nil {
		return nil, convertErr(err, "updating status of trade %d to %s", args.TradeID, args.ToStatus)
	}
	return trade, nil
}

// ForceStatus безусловно выставляет статус сделки. Используется обработчиком жалоб:
// спор замораживает сделку из любого текущего состояния.
func (r *TradeRepository) ForceStatus(
	ctx context.Context,
	tradeID int64,
	status domain.TradeStatusType,
) (*domain.Trade, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE trades SET status = $1, updated_at = now()
		WHERE id = $2
		RETURNING `+tradeColumns,
		status, tradeID)

	trade, err := scanTrade(row)
	if err != nil {
		return nil, convertErr(err, "forcing status of trade %d to %s", tradeID, status)
	}
	return trade, nil
}

// SetReview записывает оценку и комментарий стороны сделки. Условие IS NULL по полю
// рейтинга гарантирует не больше одной оценки на роль: повторная попытка получит
// domain.ErrRecordNotFound.
func (r *TradeRepository) SetReview(ctx context.Context, args repoargs.SetTradeReview) (*domain.Trade, error) {
	var query string
	if args.AsBuyer {
		query = `UPDATE trades SET buyer_rating = $1, buyer_comment = $2, updated_at = now()
			WHERE id = $3 AND buyer_rating IS NULL RETURNING ` + tradeColumns
	} else {
		query = `UPDATE trades SET seller_rating = $1, seller_comment = $2, updated_at = now()
			WHERE id = $3 AND seller_rating IS NULL RETURNING ` + tradeColumns
	}

	trade, err := scanTrade(r.db.QueryRow(ctx, query, args.Rating, args.Comment, args.TradeID))
	if err != nil {
		return nil, convertErr(err, "setting review on trade %d", args.TradeID)
	}
	return trade, nil
}

func (r *TradeRepository) GetByBuyerID(
	ctx context.Context,
	buyerID int64,
	filter repoargs.TradeFilter,
) ([]domain.Trade, error) {
	return r.getByParty(ctx, "buyer_id", buyerID, filter)
}

func (r *TradeRepository) GetBySellerID(
	ctx context.Context,
	sellerID int64,
	filter repoargs.TradeFilter,
) ([]domain.Trade, error) {
	return r.getByParty(ctx, "seller_id", sellerID, filter)
}

func (r *TradeRepository) getByParty(
	ctx context.Context,
	column string,
	userID int64,
	filter repoargs.TradeFilter,
) ([]domain.Trade, error) {
	query := `SELECT ` + tradeColumns + ` FROM trades WHERE ` + column + ` = $1`
	args := []any{userID}
	if filter.Status != nil {
		query += ` AND status = $2`
		args = append(args, *filter.Status)
	}
	query += ` ORDER BY created_at DESC LIMIT $` + itoa(len(args)+1) + ` OFFSET $` + itoa(len(args)+2)
	args = append(args, filter.Page.PerPage, filter.Page.Offset())

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, convertErr(err, "getting trades by %s %d", column, userID)
	}
	defer rows.Close()

	trades, scanErr := scanTrades(rows)
	if scanErr != nil {
		return nil, convertErr(scanErr, "getting trades by %s %d", column, userID)
	}
	return trades, nil
}

func scanTrade(row interface{ Scan(...any) error }) (*domain.Trade, error) {
	var t domain.Trade
	err := row.Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt, &t.BuyerID, &t.SellerID, &t.ItemID,
		&t.TransactionType, &t.Amount, &t.DepositPaid, &t.RentalDays, &t.StartDate, &t.EndDate,
		&t.Status, &t.IsEscrowed, &t.BuyerRating, &t.BuyerComment, &t.SellerRating,
		&t.SellerComment, &t.CompletedAt, &t.CanceledAt, &t.EscrowReleasedAt)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &t, nil
}

func scanTrades(rows pgx.Rows) ([]domain.Trade, error) {
	var trades []domain.Trade
	for rows.Next() {
		trade, err := scanTrade(rows)
		if err != nil {
			return nil, err
		}
		trades = append(trades, *trade)
	}
	return trades, rows.Err() //nolint:wrapcheck
}
