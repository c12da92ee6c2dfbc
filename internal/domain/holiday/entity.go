package holiday

import "time"

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

// ValidStatuses lists the closed status enumeration.
var ValidStatuses = []string{
	string(RequestStatusPending),
	string(RequestStatusApproved),
	string(RequestStatusRejected),
}

// Credit entity: per-(user, year, category) day allowance. The
// remaining = total - used invariant is maintained by the service
// layer; readers only display it. ExpiresAt is nil when the credit
// never expires.
type Credit struct {
	ID            string    `json:"credit_id"`
	UserID        string    `json:"user_id"`
	UserEmail     string    `json:"user_email"`
	UserName      string    `json:"user_name"`
	Year          int       `json:"year"`
	Category      string    `json:"category"`
	CategoryName  string    `json:"category_name,omitempty"`
	TotalDays     float64   `json:"total_days"`
	UsedDays      float64   `json:"used_days"`
	RemainingDays float64   `json:"remaining_days"`
	ExpiresAt     *string   `json:"expires_at"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Request entity. Dates travel as "YYYY-MM-DD" strings; the fixed
// zero-padded format makes lexical and chronological order coincide.
type Request struct {
	ID              string        `json:"request_id"`
	UserID          string        `json:"user_id"`
	UserName        string        `json:"user_name"`
	UserEmail       string        `json:"user_email"`
	Category        string        `json:"category"`
	StartDate       string        `json:"start_date"`
	EndDate         string        `json:"end_date"`
	DaysCount       float64       `json:"days_count"`
	Reason          string        `json:"reason"`
	Status          RequestStatus `json:"status"`
	HRComment       *string       `json:"hr_comment"`
	ProcessedBy     *string       `json:"processed_by"`
	ProcessedAt     *time.Time    `json:"processed_at"`
	CalendarEventID *string       `json:"calendar_event_id,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
}

// PublicHoliday entity: org-wide, independent of any user.
type PublicHoliday struct {
	ID              string    `json:"holiday_id"`
	Name            string    `json:"name"`
	Date            string    `json:"date"`
	Year            int       `json:"year"`
	CalendarEventID *string   `json:"calendar_event_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type EventType string

const (
	EventTypeHoliday       EventType = "holiday"
	EventTypePublicHoliday EventType = "public_holiday"
)

// Event is a calendar-view projection of an approved request or a
// public holiday.
type Event struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Start    string    `json:"start"`
	End      string    `json:"end"`
	Type     EventType `json:"type"`
	Category string    `json:"category,omitempty"`
	UserName string    `json:"user_name,omitempty"`
}
