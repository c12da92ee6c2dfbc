package holiday

import "context"

// CreditRepository - interface for the holiday_credits table
type CreditRepository interface {
	Create(ctx context.Context, credit Credit) (Credit, error)
	GetByUserYearCategory(ctx context.Context, userID string, year int, category string) (Credit, error)
	GetByUserID(ctx context.Context, userID string) ([]Credit, error)
	GetByUserIDAndYear(ctx context.Context, userID string, year int) ([]Credit, error)
	List(ctx context.Context) ([]Credit, error)
	UpdateBalance(ctx context.Context, id string, totalDays, usedDays, remainingDays float64) error
	// Debit atomically consumes days from the remaining balance; it
	// fails without effect when the balance is insufficient.
	Debit(ctx context.Context, id string, days float64) error
	SetExpiration(ctx context.Context, id string, expiresAt *string) error
	ListMissingPaidHolidayExpiration(ctx context.Context) ([]Credit, error)
	DeleteByUserID(ctx context.Context, userID string) error
}

// RequestRepository - interface for the holiday_requests table
type RequestRepository interface {
	Create(ctx context.Context, request Request) (Request, error)
	GetByID(ctx context.Context, id string) (Request, error)
	GetByUserID(ctx context.Context, userID string) ([]Request, error)
	List(ctx context.Context) ([]Request, error)
	ListByStatus(ctx context.Context, status RequestStatus) ([]Request, error)
	// ListApprovedBetween returns approved requests whose start date
	// falls in [from, to), both "YYYY-MM-DD".
	ListApprovedBetween(ctx context.Context, from, to string) ([]Request, error)
	ListApprovedFrom(ctx context.Context, from string, limit int) ([]Request, error)
	UpdateDecision(ctx context.Context, request Request) error
	DeleteByUserID(ctx context.Context, userID string) error
}

// PublicHolidayRepository - interface for the public_holidays table
type PublicHolidayRepository interface {
	Create(ctx context.Context, holiday PublicHoliday) (PublicHoliday, error)
	GetByID(ctx context.Context, id string) (PublicHoliday, error)
	List(ctx context.Context) ([]PublicHoliday, error)
	ListByYear(ctx context.Context, year int) ([]PublicHoliday, error)
	ListBetween(ctx context.Context, from, to string) ([]PublicHoliday, error)
	Delete(ctx context.Context, id string) error
}
