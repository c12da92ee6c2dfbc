package holiday

import (
	"context"

	"github.com/netsg-cyber/Holidays-app/internal/domain/holiday"
)

// Notifier fans domain events out to email/SSE. Implementations must
// be best effort; the services never check delivery.
type Notifier interface {
	RequestSubmitted(ctx context.Context, req holiday.Request)
	RequestDecided(ctx context.Context, req holiday.Request)
	CreditAssigned(ctx context.Context, credit holiday.Credit)
	CreditAdjusted(ctx context.Context, credit holiday.Credit, adjustment float64, reason string)
}

// CalendarSync mirrors approved leave and public holidays into the
// connected calendar. A nil event id means sync was off or failed.
type CalendarSync interface {
	CreateCalendarEvent(ctx context.Context, summary, description, startDate, endDate string) *string
	DeleteCalendarEvent(ctx context.Context, eventID string)
}
