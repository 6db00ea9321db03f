package pgrepo

import (
	"context"

	"github.com/fsdevblog/campustrade/internal/domain"
	"github.com/fsdevblog/campustrade/internal/repository/repoargs"
	"github.com/fsdevblog/campustrade/pkg/uow"
)

type ComplaintRepository struct {
	db uow.DBTX
}

func NewComplaintRepository(db uow.DBTX) *ComplaintRepository {
	return &ComplaintRepository{db: db}
}

const complaintColumns = `id, created_at, updated_at, complainant_id, defendant_id, trade_id,
	reason, status, admin_comment`

func (r *ComplaintRepository) CreateComplaint(
	ctx context.Context,
	args repoargs.CreateComplaint,
) (*domain.Complaint, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO complaints (complainant_id, defendant_id, trade_id, reason)
		VALUES ($1, $2, $3, $4)
		RETURNING `+complaintColumns,
		args.ComplainantID, args.DefendantID, args.TradeID, args.Reason)

	complaint, err := scanComplaint(row)
	if err != nil {
		return nil, convertErr(err, "creating complaint for trade %d", args.TradeID)
	}
	return complaint, nil
}

func (r *ComplaintRepository) GetByComplainantID(
	ctx context.Context,
	complainantID int64,
	page repoargs.Page,
) ([]domain.Complaint, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+complaintColumns+` FROM complaints
		WHERE complainant_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`,
		complainantID, page.PerPage, page.Offset())
	if err != nil {
		return nil, convertErr(err, "getting complaints of user %d", complainantID)
	}
	defer rows.Close()

	var complaints []domain.Complaint
	for rows.Next() {
		complaint, scanErr := scanComplaint(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "getting complaints of user %d", complainantID)
		}
		complaints = append(complaints, *complaint)
	}
	return complaints, convertErr(rows.Err(), "getting complaints of user %d", complainantID)
}

func scanComplaint(row interface{ Scan(...any) error }) (*domain.Complaint, error) {
	var c domain.Complaint
	err := row.Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt, &c.ComplainantID, &c.DefendantID,
		&c.TradeID, &c.Reason, &c.Status, &c.AdminComment)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &c, nil
}
