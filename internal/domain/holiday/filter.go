package holiday

import "strings"

// FilterAll is the wildcard value for status and category filters.
const FilterAll = "all"

// UpcomingPreviewLimit bounds the upcoming-events summary widget.
const UpcomingPreviewLimit = 5

// EventsOnDay returns the events occupying day: an event occupies a
// day iff day falls inside [start, end] inclusive. Comparison is
// lexical over the fixed-width "YYYY-MM-DD" format, which orders the
// same as the calendar.
func EventsOnDay(events []Event, day string) []Event {
	matched := make([]Event, 0)
	for _, e := range events {
		if e.Start <= day && day <= e.End {
			matched = append(matched, e)
		}
	}
	return matched
}

// PublicHolidayOnDay returns the public holiday falling on day, or nil.
// At most one holiday per day is assumed; with duplicates the first
// match wins.
func PublicHolidayOnDay(holidays []PublicHoliday, day string) *PublicHoliday {
	for i := range holidays {
		if holidays[i].Date == day {
			return &holidays[i]
		}
	}
	return nil
}

// Tally holds status partition counts; Total always equals
// Pending + Approved + Rejected since the status set is closed.
type Tally struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

// TallyRequests partitions requests by status.
func TallyRequests(requests []Request) Tally {
	t := Tally{Total: len(requests)}
	for _, r := range requests {
		switch r.Status {
		case RequestStatusPending:
			t.Pending++
		case RequestStatusApproved:
			t.Approved++
		case RequestStatusRejected:
			t.Rejected++
		}
	}
	return t
}

// RequestFilter is a conjunctive filter over requests. Status and
// Category accept "all" (or empty) as wildcards; Search matches
// case-insensitively against the requesting user's name or email.
type RequestFilter struct {
	Status   string
	Category string
	Search   string
}

// Match reports whether a single request passes the filter.
func (f RequestFilter) Match(r Request) bool {
	if f.Status != "" && f.Status != FilterAll && string(r.Status) != f.Status {
		return false
	}
	if f.Category != "" && f.Category != FilterAll && r.Category != f.Category {
		return false
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(r.UserName), needle) &&
			!strings.Contains(strings.ToLower(r.UserEmail), needle) {
			return false
		}
	}
	return true
}

// FilterRequests applies the filter to a request list.
func FilterRequests(requests []Request, f RequestFilter) []Request {
	matched := make([]Request, 0)
	for _, r := range requests {
		if f.Match(r) {
			matched = append(matched, r)
		}
	}
	return matched
}

// Upcoming returns leave events starting today or later, in input
// order, truncated to the preview limit. Truncation is a display
// concern only.
func Upcoming(events []Event, today string) []Event {
	matched := make([]Event, 0, UpcomingPreviewLimit)
	for _, e := range events {
		if e.Type != EventTypeHoliday || e.Start < today {
			continue
		}
		matched = append(matched, e)
		if len(matched) == UpcomingPreviewLimit {
			break
		}
	}
	return matched
}
