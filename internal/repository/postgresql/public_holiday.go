package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/netsg-cyber/Holidays-app/internal/domain/holiday"
	"github.com/netsg-cyber/Holidays-app/internal/pkg/database"
)

type publicHolidayRepositoryImpl struct {
	db *database.DB
}

func NewPublicHolidayRepository(db *database.DB) holiday.PublicHolidayRepository {
	return &publicHolidayRepositoryImpl{db: db}
}

const publicHolidayColumns = `id, name, date, year, calendar_event_id, created_at`

func scanPublicHoliday(row pgx.Row) (holiday.PublicHoliday, error) {
	var ph holiday.PublicHoliday
	err := row.Scan(
		&ph.ID,
		&ph.Name,
		&ph.Date,
		&ph.Year,
		&ph.CalendarEventID,
		&ph.CreatedAt,
	)
	return ph, err
}

func (r *publicHolidayRepositoryImpl) queryHolidays(ctx context.Context, query string, args ...interface{}) ([]holiday.PublicHoliday, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var holidays []holiday.PublicHoliday
	for rows.Next() {
		ph, err := scanPublicHoliday(rows)
		if err != nil {
			return nil, err
		}
		holidays = append(holidays, ph)
	}
	return holidays, rows.Err()
}

// Create implements holiday.PublicHolidayRepository.
func (r *publicHolidayRepositoryImpl) Create(ctx context.Context, ph holiday.PublicHoliday) (holiday.PublicHoliday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO public_holidays (id, name, date, year, calendar_event_id, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING ` + publicHolidayColumns

	created, err := scanPublicHoliday(q.QueryRow(ctx, query,
		ph.ID,
		ph.Name,
		ph.Date,
		ph.Year,
		ph.CalendarEventID,
	))
	if err != nil {
		return holiday.PublicHoliday{}, err
	}

	return created, nil
}

// GetByID implements holiday.PublicHolidayRepository.
func (r *publicHolidayRepositoryImpl) GetByID(ctx context.Context, id string) (holiday.PublicHoliday, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + publicHolidayColumns + ` FROM public_holidays WHERE id = $1`

	ph, err := scanPublicHoliday(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return holiday.PublicHoliday{}, holiday.ErrHolidayNotFound
		}
		return holiday.PublicHoliday{}, err
	}
	return ph, nil
}

// List implements holiday.PublicHolidayRepository.
func (r *publicHolidayRepositoryImpl) List(ctx context.Context) ([]holiday.PublicHoliday, error) {
	query := `SELECT ` + publicHolidayColumns + ` FROM public_holidays ORDER BY date`
	return r.queryHolidays(ctx, query)
}

// ListByYear implements holiday.PublicHolidayRepository.
func (r *publicHolidayRepositoryImpl) ListByYear(ctx context.Context, year int) ([]holiday.PublicHoliday, error) {
	query := `
		SELECT ` + publicHolidayColumns + `
		FROM public_holidays
		WHERE year = $1
		ORDER BY date
	`
	return r.queryHolidays(ctx, query, year)
}

// ListBetween implements holiday.PublicHolidayRepository.
func (r *publicHolidayRepositoryImpl) ListBetween(ctx context.Context, from, to string) ([]holiday.PublicHoliday, error) {
	query := `
		SELECT ` + publicHolidayColumns + `
		FROM public_holidays
		WHERE date >= $1 AND date < $2
		ORDER BY date
	`
	return r.queryHolidays(ctx, query, from, to)
}

// Delete implements holiday.PublicHolidayRepository.
func (r *publicHolidayRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM public_holidays WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return holiday.ErrHolidayNotFound
	}
	return nil
}
