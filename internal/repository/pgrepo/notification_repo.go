package pgrepo

import (
	"context"

	"github.com/fsdevblog/campustrade/internal/domain"
	"github.com/fsdevblog/campustrade/internal/repository/repoargs"
	"github.com/fsdevblog/campustrade/pkg/uow"
	"github.com/jackc/pgx/v5"
)

type NotificationRepository struct {
	db uow.DBTX
}

func NewNotificationRepository(db uow.DBTX) *NotificationRepository {
	return &NotificationRepository{db: db}
}

const notificationColumns = "id, created_at, user_id, trade_id, kind, title, body, delivered, delivered_at"

func (r *NotificationRepository) CreateNotification(
	ctx context.Context,
	args repoargs.CreateNotification,
) (*domain.Notification, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO notifications (user_id, trade_id, kind, title, body)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+notificationColumns,
		args.UserID, args.TradeID, args.Kind, args.Title, args.Body)

	notification, err := scanNotification(row)
	if err != nil {
		return nil, convertErr(err, "creating notification for user %d", args.UserID)
	}
	return notification, nil
}

// GetUndelivered возвращает недоставленные уведомления с блокировкой строк, пропуская
// уже заблокированные другим диспетчером (FOR UPDATE SKIP LOCKED).
func (r *NotificationRepository) GetUndelivered(ctx context.Context, limit uint) ([]domain.Notification, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+notificationColumns+` FROM notifications
		WHERE delivered = FALSE
		ORDER BY created_at ASC
		LIMIT $1
		FOR UPDATE SKIP LOCKED`,
		limit)
	if err != nil {
		return nil, convertErr(err, "getting undelivered notifications")
	}
	defer rows.Close()

	notifications, scanErr := scanNotifications(rows)
	if scanErr != nil {
		return nil, convertErr(scanErr, "getting undelivered notifications")
	}
	return notifications, nil
}

func (r *NotificationRepository) MarkDelivered(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.db.Exec(ctx, `
		UPDATE notifications SET delivered = TRUE, delivered_at = now()
		WHERE id = ANY($1)`,
		ids)
	return convertErr(err, "marking notifications delivered")
}

func (r *NotificationRepository) GetByUserID(
	ctx context.Context,
	userID int64,
	page repoargs.Page,
) ([]domain.Notification, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+notificationColumns+` FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`,
		userID, page.PerPage, page.Offset())
	if err != nil {
		return nil, convertErr(err, "getting notifications of user %d", userID)
	}
	defer rows.Close()

	notifications, scanErr := scanNotifications(rows)
	if scanErr != nil {
		return nil, convertErr(scanErr, "getting notifications of user %d", userID)
	}
	return notifications, nil
}

func scanNotification(row interface{ Scan(...any) error }) (*domain.Notification, error) {
	var n domain.Notification
	err := row.Scan(&n.ID, &n.CreatedAt, &n.UserID, &n.TradeID, &n.Kind, &n.Title, &n.Body,
		&n.Delivered, &n.DeliveredAt)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &n, nil
}

func scanNotifications(rows pgx.Rows) ([]domain.Notification, error) {
	var notifications []domain.Notification
	for rows.Next() {
		notification, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, *notification)
	}
	return notifications, rows.Err() //nolint:wrapcheck
}
