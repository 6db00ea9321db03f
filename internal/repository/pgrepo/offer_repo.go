package pgrepo

import (
	"context"

	"github.com/fsdevblog/campustrade/internal/domain"
	"github.com/fsdevblog/campustrade/internal/repository/repoargs"
	"github.com/fsdevblog/campustrade/pkg/uow"
	"github.com/jackc/pgx/v5"
)

type OfferRepository struct {
	db uow.DBTX
}

func NewOfferRepository(db uow.DBTX) *OfferRepository {
	return &OfferRepository{db: db}
}

const offerColumns = "id, created_at, updated_at, buyer_id, item_id, amount, status, responded_at"

func (r *OfferRepository) CreateOffer(ctx context.Context, args repoargs.CreateOffer) (*domain.Offer, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO offers (buyer_id, item_id, amount)
		VALUES ($1, $2, $3)
		RETURNING `+offerColumns,
		args.BuyerID, args.ItemID, args.Amount)

	offer, err := scanOffer(row)
	if err != nil {
		return nil, convertErr(err, "creating offer for item %d", args.ItemID)
	}
	return offer, nil
}

func (r *OfferRepository) FindOfferByID(ctx context.Context, id int64) (*domain.Offer, error) {
	row := r.db.QueryRow(ctx, `SELECT `+offerColumns+` FROM offers WHERE id = $1`, id)
	offer, err := scanOffer(row)
	if err != nil {
		return nil, convertErr(err, "finding offer by id %d", id)
	}
	return offer, nil
}

// Respond переводит предложение из pending в терминальный статус. Условие по текущему
// статусу делает ответ идемпотентно-безопасным: повторный или конкурентный ответ
// получит domain.ErrRecordNotFound.
func (r *OfferRepository) Respond(ctx context.Context, args repoargs.RespondOffer) (*domain.Offer, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE offers SET status = $1, responded_at = $2, updated_at = now()
		WHERE id = $3 AND status = $4
		RETURNING `+offerColumns,
		args.Status, args.RespondedAt, args.OfferID, domain.OfferStatusPending)

	offer, err := scanOffer(row)
	if err != nil {
		return nil, convertErr(err, "responding to offer %d", args.OfferID)
	}
	return offer, nil
}

// Consume помечает принятый оффер израсходованным. Оффер одноразовый: условие
// status = accepted гарантирует, что из двух конкурентных сделок по одному офферу
// пройдет ровно одна, вторая получит domain.ErrRecordNotFound.
func (r *OfferRepository) Consume(ctx context.Context, offerID int64) (*domain.Offer, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE offers SET status = $1, updated_at = now()
		WHERE id = $2 AND status = $3
		RETURNING `+offerColumns,
		domain.OfferStatusConsumed, offerID, domain.OfferStatusAccepted)

	offer, err := scanOffer(row)
	if err != nil {
		return nil, convertErr(err, "consuming offer %d", offerID)
	}
	return offer, nil
}

func (r *OfferRepository) GetByBuyerID(
	ctx context.Context,
	buyerID int64,
	filter repoargs.OfferFilter,
) ([]domain.Offer, error) {
	query := `SELECT ` + offerColumns + ` FROM offers WHERE buyer_id = $1`
	args := []any{buyerID}
	if filter.Status != nil {
		query += ` AND status = $2`
		args = append(args, *filter.Status)
	}
	query += ` ORDER BY created_at DESC LIMIT $` + itoa(len(args)+1) + ` OFFSET $` + itoa(len(args)+2)
	args = append(args, filter.Page.PerPage, filter.Page.Offset())

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, convertErr(err, "getting offers of buyer %d", buyerID)
	}
	defer rows.Close()

	offers, scanErr := scanOffers(rows)
	if scanErr != nil {
		return nil, convertErr(scanErr, "getting offers of buyer %d", buyerID)
	}
	return offers, nil
}

// GetReceived возвращает предложения по товарам, принадлежащим sellerID.
func (r *OfferRepository) GetReceived(
	ctx context.Context,
	sellerID int64,
	filter repoargs.OfferFilter,
) ([]domain.Offer, error) {
	query := `
		SELECT o.id, o.created_at, o.updated_at, o.buyer_id, o.item_id, o.amount, o.status, o.responded_at
		FROM offers o
		JOIN items i ON i.id = o.item_id
		WHERE i.user_id = $1`
	args := []any{sellerID}
	if filter.Status != nil {
		query += ` AND o.status = $2`
		args = append(args, *filter.Status)
	}
	query += ` ORDER BY o.created_at DESC LIMIT $` + itoa(len(args)+1) + ` OFFSET $` + itoa(len(args)+2)
	args = append(args, filter.Page.PerPage, filter.Page.Offset())

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, convertErr(err, "getting offers received by seller %d", sellerID)
	}
	defer rows.Close()

	offers, scanErr := scanOffers(rows)
	if scanErr != nil {
		return nil, convertErr(scanErr, "getting offers received by seller %d", sellerID)
	}
	return offers, nil
}

func scanOffer(row interface{ Scan(...any) error }) (*domain.Offer, error) {
	var o domain.Offer
	err := row.Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt, &o.BuyerID, &o.ItemID, &o.Amount,
		&o.Status, &o.RespondedAt)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &o, nil
}

func scanOffers(rows pgx.Rows) ([]domain.Offer, error) {
	var offers []domain.Offer
	for rows.Next() {
		offer, err := scanOffer(rows)
		if err != nil {
			return nil, err
		}
		offers = append(offers, *offer)
	}
	return offers, rows.Err() //nolint:wrapcheck
}
