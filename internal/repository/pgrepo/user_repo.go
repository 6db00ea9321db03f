package pgrepo

import (
	"context"

	"github.com/fsdevblog/campustrade/internal/domain"
	"github.com/fsdevblog/campustrade/internal/repository/repoargs"
	"github.com/fsdevblog/campustrade/pkg/uow"
	"github.com/shopspring/decimal"
)

type UserRepository struct {
	db uow.DBTX
}

func NewUserRepository(db uow.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = "id, created_at, updated_at, username, password, coins"

func (r *UserRepository) CreateUser(ctx context.Context, args repoargs.CreateUser) (*domain.User, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO users (username, password, coins)
		VALUES ($1, $2, $3)
		RETURNING `+userColumns,
		args.Username, args.Password, args.Coins)

	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "creating user %s", args.Username)
	}
	return user, nil
}

func (r *UserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user by username %s", username)
	}
	return user, nil
}

func (r *UserRepository) FindUserByID(ctx context.Context, id int64) (*domain.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user by id %d", id)
	}
	return user, nil
}

// GetCoinsForUpdate читает баланс юзера с блокировкой строки (SELECT ... FOR UPDATE).
// Вызывается только внутри транзакции UnitOfWork: блокировка сериализует конкурентные
// списания и исключает двойную трату.
func (r *UserRepository) GetCoinsForUpdate(ctx context.Context, userID int64) (decimal.Decimal, error) {
	var coins decimal.Decimal
	err := r.db.QueryRow(ctx, `SELECT coins FROM users WHERE id = $1 FOR UPDATE`, userID).Scan(&coins)
	if err != nil {
		return decimal.Zero, convertErr(err, "locking balance of user %d", userID)
	}
	return coins, nil
}

// AdjustCoins изменяет баланс юзера на delta (может быть отрицательной). Уход баланса
// в минус отсекается условием запроса и check-констрейнтом таблицы.
func (r *UserRepository) AdjustCoins(ctx context.Context, userID int64, delta decimal.Decimal) (decimal.Decimal, error) {
	var coins decimal.Decimal
	err := r.db.QueryRow(ctx, `
		UPDATE users SET coins = coins + $1, updated_at = now()
		WHERE id = $2 AND coins + $1 >= 0
		RETURNING coins`,
		delta, userID).Scan(&coins)

	if err != nil {
		return decimal.Zero, convertErr(err, "adjusting coins of user %d", userID)
	}
	return coins, nil
}

func scanUser(row interface{ Scan(...any) error }) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt, &u.Username, &u.Password, &u.Coins); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &u, nil
}
