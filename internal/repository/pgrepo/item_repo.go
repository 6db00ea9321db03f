package pgrepo

import (
	"context"

	"github.com/fsdevblog/campustrade/internal/domain"
	"github.com/fsdevblog/campustrade/internal/repository/repoargs"
	"github.com/fsdevblog/campustrade/pkg/uow"
	"github.com/jackc/pgx/v5"
)

type ItemRepository struct {
	db uow.DBTX
}

func NewItemRepository(db uow.DBTX) *ItemRepository {
	return &ItemRepository{db: db}
}

const itemColumns = `id, created_at, updated_at, user_id, title, description, transaction_type,
	status, price, rental_price_day, rental_price_week, rental_price_month, max_rental_days,
	deposit, is_bargainable`

func (r *ItemRepository) CreateItem(ctx context.Context, args repoargs.CreateItem) (*domain.Item, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO items (user_id, title, description, transaction_type, price,
			rental_price_day, rental_price_week, rental_price_month, max_rental_days,
			deposit, is_bargainable)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING `+itemColumns,
		args.UserID, args.Title, args.Description, args.TransactionType, args.Price,
		args.RentalPriceDay, args.RentalPriceWeek, args.RentalPriceMonth, args.MaxRentalDays,
		args.Deposit, args.IsBargainable)

	item, err := scanItem(row)
	if err != nil {
		return nil, convertErr(err, "creating item for user %d", args.UserID)
	}
	return item, nil
}

func (r *ItemRepository) FindItemByID(ctx context.Context, id int64) (*domain.Item, error) {
	row := r.db.QueryRow(ctx, `SELECT `+itemColumns+` FROM items WHERE id = $1`, id)
	item, err := scanItem(row)
	if err != nil {
		return nil, convertErr(err, "finding item by id %d", id)
	}
	return item, nil
}

// UpdateStatusIf условно переводит товар из статуса FromStatus в ToStatus. Если товар
// уже не в FromStatus (например, успел зарезервироваться конкурентной сделкой),
// вернется domain.ErrRecordNotFound — без каких-либо изменений.
func (r *ItemRepository) UpdateStatusIf(ctx context.Context, args repoargs.UpdateItemStatus) (*domain.Item, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE items SET status = $1, updated_at = now()
		WHERE id = $2 AND status = $3
		RETURNING `+itemColumns,
		args.ToStatus, args.ItemID, args.FromStatus)

	item, err := scanItem(row)
	if err != nil {
		return nil, convertErr(err, "updating status of item %d to %s", args.ItemID, args.ToStatus)
	}
	return item, nil
}

func (r *ItemRepository) GetActiveItems(ctx context.Context, page repoargs.Page) ([]domain.Item, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+itemColumns+` FROM items
		WHERE status = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`,
		domain.ItemStatusActive, page.PerPage, page.Offset())
	if err != nil {
		return nil, convertErr(err, "getting active items")
	}
	defer rows.Close()

	items, scanErr := scanItems(rows)
	if scanErr != nil {
		return nil, convertErr(scanErr, "getting active items")
	}
	return items, nil
}

func scanItem(row interface{ Scan(...any) error }) (*domain.Item, error) {
	var i domain.Item
	err := row.Scan(&i.ID, &i.CreatedAt, &i.UpdatedAt, &i.UserID, &i.Title, &i.Description,
		&i.TransactionType, &i.Status, &i.Price, &i.RentalPriceDay, &i.RentalPriceWeek,
		&i.RentalPriceMonth, &i.MaxRentalDays, &i.Deposit, &i.IsBargainable)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &i, nil
}

func scanItems(rows pgx.Rows) ([]domain.Item, error) {
	var items []domain.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, rows.Err() //nolint:wrapcheck
}
