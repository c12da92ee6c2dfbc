package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/netsg-cyber/Holidays-app/internal/domain/holiday"
	"github.com/netsg-cyber/Holidays-app/internal/pkg/database"
)

type requestRepositoryImpl struct {
	db *database.DB
}

func NewRequestRepository(db *database.DB) holiday.RequestRepository {
	return &requestRepositoryImpl{db: db}
}

const requestColumns = `id, user_id, user_name, user_email, category, start_date, end_date,
		days_count, reason, status, hr_comment, processed_by, processed_at,
		calendar_event_id, created_at`

func scanRequest(row pgx.Row) (holiday.Request, error) {
	var req holiday.Request
	err := row.Scan(
		&req.ID,
		&req.UserID,
		&req.UserName,
		&req.UserEmail,
		&req.Category,
		&req.StartDate,
		&req.EndDate,
		&req.DaysCount,
		&req.Reason,
		&req.Status,
		&req.HRComment,
		&req.ProcessedBy,
		&req.ProcessedAt,
		&req.CalendarEventID,
		&req.CreatedAt,
	)
	return req, err
}

func (r *requestRepositoryImpl) queryRequests(ctx context.Context, query string, args ...interface{}) ([]holiday.Request, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []holiday.Request
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

// Create implements holiday.RequestRepository.
func (r *requestRepositoryImpl) Create(ctx context.Context, request holiday.Request) (holiday.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO holiday_requests (
			id, user_id, user_name, user_email, category, start_date, end_date,
			days_count, reason, status, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
		RETURNING ` + requestColumns

	created, err := scanRequest(q.QueryRow(ctx, query,
		request.ID,
		request.UserID,
		request.UserName,
		request.UserEmail,
		request.Category,
		request.StartDate,
		request.EndDate,
		request.DaysCount,
		request.Reason,
		request.Status,
	))
	if err != nil {
		return holiday.Request{}, err
	}

	return created, nil
}

// GetByID implements holiday.RequestRepository.
func (r *requestRepositoryImpl) GetByID(ctx context.Context, id string) (holiday.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + requestColumns + ` FROM holiday_requests WHERE id = $1`

	req, err := scanRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return holiday.Request{}, holiday.ErrRequestNotFound
		}
		return holiday.Request{}, err
	}
	return req, nil
}

// GetByUserID implements holiday.RequestRepository.
func (r *requestRepositoryImpl) GetByUserID(ctx context.Context, userID string) ([]holiday.Request, error) {
	query := `
		SELECT ` + requestColumns + `
		FROM holiday_requests
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	return r.queryRequests(ctx, query, userID)
}

// List implements holiday.RequestRepository.
func (r *requestRepositoryImpl) List(ctx context.Context) ([]holiday.Request, error) {
	query := `
		SELECT ` + requestColumns + `
		FROM holiday_requests
		ORDER BY created_at DESC
	`
	return r.queryRequests(ctx, query)
}

// ListByStatus implements holiday.RequestRepository.
func (r *requestRepositoryImpl) ListByStatus(ctx context.Context, status holiday.RequestStatus) ([]holiday.Request, error) {
	query := `
		SELECT ` + requestColumns + `
		FROM holiday_requests
		WHERE status = $1
		ORDER BY created_at DESC
	`
	return r.queryRequests(ctx, query, status)
}

// ListApprovedBetween implements holiday.RequestRepository.
func (r *requestRepositoryImpl) ListApprovedBetween(ctx context.Context, from, to string) ([]holiday.Request, error) {
	query := `
		SELECT ` + requestColumns + `
		FROM holiday_requests
		WHERE status = 'approved' AND start_date >= $1 AND start_date < $2
		ORDER BY start_date
	`
	return r.queryRequests(ctx, query, from, to)
}

// ListApprovedFrom implements holiday.RequestRepository.
func (r *requestRepositoryImpl) ListApprovedFrom(ctx context.Context, from string, limit int) ([]holiday.Request, error) {
	query := `
		SELECT ` + requestColumns + `
		FROM holiday_requests
		WHERE status = 'approved' AND start_date >= $1
		ORDER BY start_date
		LIMIT $2
	`
	return r.queryRequests(ctx, query, from, limit)
}

// UpdateDecision implements holiday.RequestRepository.
func (r *requestRepositoryImpl) UpdateDecision(ctx context.Context, request holiday.Request) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE holiday_requests
		SET status = $1, hr_comment = $2, processed_by = $3, processed_at = $4,
			calendar_event_id = $5
		WHERE id = $6
	`

	tag, err := q.Exec(ctx, query,
		request.Status,
		request.HRComment,
		request.ProcessedBy,
		request.ProcessedAt,
		request.CalendarEventID,
		request.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return holiday.ErrRequestNotFound
	}
	return nil
}

// DeleteByUserID implements holiday.RequestRepository.
func (r *requestRepositoryImpl) DeleteByUserID(ctx context.Context, userID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM holiday_requests WHERE user_id = $1`, userID)
	return err
}
