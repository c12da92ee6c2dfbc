package holiday

import "context"

// CreditService - ledger operations
type CreditService interface {
	MyCredits(ctx context.Context, userID string) ([]Credit, error)
	UserCreditsByYear(ctx context.Context, userID string, year int) ([]Credit, error)
	AllCredits(ctx context.Context) ([]Credit, error)
	AllCreditsGrouped(ctx context.Context) ([]UserCredits, error)
	Assign(ctx context.Context, req CreateCreditRequest) (Credit, error)
	Adjust(ctx context.Context, req AdjustCreditRequest) (AdjustCreditResponse, error)
	SetExpiration(ctx context.Context, req SetExpirationRequest) error
	SeedDefaults(ctx context.Context, userID, userEmail, userName string, year int) error
	BackfillPaidHolidayExpirations(ctx context.Context) error
}

// RequestService - leave-request lifecycle
type RequestService interface {
	Create(ctx context.Context, req CreateRequestRequest) (Request, error)
	MyRequests(ctx context.Context, userID string) ([]Request, error)
	AllRequests(ctx context.Context, filter RequestFilter) ([]Request, error)
	PendingRequests(ctx context.Context) ([]Request, error)
	Approve(ctx context.Context, req DecideRequestRequest) (Request, error)
	Reject(ctx context.Context, req DecideRequestRequest) (Request, error)
}

// PublicHolidayService - org-wide holiday configuration
type PublicHolidayService interface {
	List(ctx context.Context, year int) ([]PublicHoliday, error)
	Create(ctx context.Context, req CreatePublicHolidayRequest) (PublicHoliday, error)
	Delete(ctx context.Context, id string) error
}

// CalendarService - month and upcoming projections
type CalendarService interface {
	MonthEvents(ctx context.Context, year, month int) ([]Event, error)
	UpcomingEvents(ctx context.Context) ([]Event, error)
}
