package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/netsg-cyber/Holidays-app/internal/domain/holiday"
	"github.com/netsg-cyber/Holidays-app/internal/pkg/database"
)

type creditRepositoryImpl struct {
	db *database.DB
}

func NewCreditRepository(db *database.DB) holiday.CreditRepository {
	return &creditRepositoryImpl{db: db}
}

const creditColumns = `id, user_id, user_email, user_name, year, category, category_name,
		total_days, used_days, remaining_days, expires_at, created_at, updated_at`

func scanCredit(row pgx.Row) (holiday.Credit, error) {
	var c holiday.Credit
	err := row.Scan(
		&c.ID,
		&c.UserID,
		&c.UserEmail,
		&c.UserName,
		&c.Year,
		&c.Category,
		&c.CategoryName,
		&c.TotalDays,
		&c.UsedDays,
		&c.RemainingDays,
		&c.ExpiresAt,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}

func (r *creditRepositoryImpl) queryCredits(ctx context.Context, query string, args ...interface{}) ([]holiday.Credit, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var credits []holiday.Credit
	for rows.Next() {
		c, err := scanCredit(rows)
		if err != nil {
			return nil, err
		}
		credits = append(credits, c)
	}
	return credits, rows.Err()
}

// Create implements holiday.CreditRepository.
func (r *creditRepositoryImpl) Create(ctx context.Context, credit holiday.Credit) (holiday.Credit, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO holiday_credits (
			id, user_id, user_email, user_name, year, category, category_name,
			total_days, used_days, remaining_days, expires_at, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		RETURNING ` + creditColumns

	created, err := scanCredit(q.QueryRow(ctx, query,
		credit.ID,
		credit.UserID,
		credit.UserEmail,
		credit.UserName,
		credit.Year,
		credit.Category,
		credit.CategoryName,
		credit.TotalDays,
		credit.UsedDays,
		credit.RemainingDays,
		credit.ExpiresAt,
	))
	if err != nil {
		return holiday.Credit{}, err
	}

	return created, nil
}

// GetByUserYearCategory implements holiday.CreditRepository.
func (r *creditRepositoryImpl) GetByUserYearCategory(ctx context.Context, userID string, year int, category string) (holiday.Credit, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + creditColumns + `
		FROM holiday_credits
		WHERE user_id = $1 AND year = $2 AND category = $3
	`

	c, err := scanCredit(q.QueryRow(ctx, query, userID, year, category))
	if err != nil {
		if err == pgx.ErrNoRows {
			return holiday.Credit{}, holiday.ErrCreditNotFound
		}
		return holiday.Credit{}, err
	}
	return c, nil
}

// GetByUserID implements holiday.CreditRepository.
func (r *creditRepositoryImpl) GetByUserID(ctx context.Context, userID string) ([]holiday.Credit, error) {
	query := `
		SELECT ` + creditColumns + `
		FROM holiday_credits
		WHERE user_id = $1
		ORDER BY year DESC, category
	`
	return r.queryCredits(ctx, query, userID)
}

// GetByUserIDAndYear implements holiday.CreditRepository.
func (r *creditRepositoryImpl) GetByUserIDAndYear(ctx context.Context, userID string, year int) ([]holiday.Credit, error) {
	query := `
		SELECT ` + creditColumns + `
		FROM holiday_credits
		WHERE user_id = $1 AND year = $2
		ORDER BY category
	`
	return r.queryCredits(ctx, query, userID, year)
}

// List implements holiday.CreditRepository.
func (r *creditRepositoryImpl) List(ctx context.Context) ([]holiday.Credit, error) {
	query := `
		SELECT ` + creditColumns + `
		FROM holiday_credits
		ORDER BY created_at
	`
	return r.queryCredits(ctx, query)
}

// UpdateBalance implements holiday.CreditRepository.
func (r *creditRepositoryImpl) UpdateBalance(ctx context.Context, id string, totalDays, usedDays, remainingDays float64) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE holiday_credits
		SET total_days = $1, used_days = $2, remaining_days = $3, updated_at = NOW()
		WHERE id = $4
	`

	tag, err := q.Exec(ctx, query, totalDays, usedDays, remainingDays, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return holiday.ErrCreditNotFound
	}
	return nil
}

// Debit implements holiday.CreditRepository. The balance guard lives
// in the WHERE clause so concurrent approvals cannot overdraw.
func (r *creditRepositoryImpl) Debit(ctx context.Context, id string, days float64) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE holiday_credits
		SET used_days = used_days + $1,
			remaining_days = remaining_days - $1,
			updated_at = NOW()
		WHERE id = $2 AND remaining_days >= $1
	`

	tag, err := q.Exec(ctx, query, days, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return holiday.ErrInsufficientCredits
	}
	return nil
}

// SetExpiration implements holiday.CreditRepository.
func (r *creditRepositoryImpl) SetExpiration(ctx context.Context, id string, expiresAt *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE holiday_credits
		SET expires_at = $1, updated_at = NOW()
		WHERE id = $2
	`

	tag, err := q.Exec(ctx, query, expiresAt, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return holiday.ErrCreditNotFound
	}
	return nil
}

// ListMissingPaidHolidayExpiration implements holiday.CreditRepository.
func (r *creditRepositoryImpl) ListMissingPaidHolidayExpiration(ctx context.Context) ([]holiday.Credit, error) {
	query := `
		SELECT ` + creditColumns + `
		FROM holiday_credits
		WHERE category = 'paid_holiday' AND expires_at IS NULL
	`
	return r.queryCredits(ctx, query)
}

// DeleteByUserID implements holiday.CreditRepository.
func (r *creditRepositoryImpl) DeleteByUserID(ctx context.Context, userID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM holiday_credits WHERE user_id = $1`, userID)
	return err
}
