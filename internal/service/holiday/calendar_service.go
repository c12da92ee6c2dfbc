package holiday

import (
	"context"
	"fmt"

	"github.com/netsg-cyber/Holidays-app/internal/domain/holiday"
)

type CalendarService struct {
	requestRepo holiday.RequestRepository
	holidayRepo holiday.PublicHolidayRepository
}

func NewCalendarService(requestRepository holiday.RequestRepository, holidayRepository holiday.PublicHolidayRepository) *CalendarService {
	return &CalendarService{
		requestRepo: requestRepository,
		holidayRepo: holidayRepository,
	}
}

// MonthEvents projects the approved leave and public holidays of one
// month into calendar events. The month window is [first day, first
// day of the next month) in lexical date order.
func (s *CalendarService) MonthEvents(ctx context.Context, year, month int) ([]holiday.Event, error) {
	from := fmt.Sprintf("%04d-%02d-01", year, month)
	var to string
	if month == 12 {
		to = fmt.Sprintf("%04d-01-01", year+1)
	} else {
		to = fmt.Sprintf("%04d-%02d-01", year, month+1)
	}

	requests, err := s.requestRepo.ListApprovedBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved requests: %w", err)
	}

	holidays, err := s.holidayRepo.ListBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list public holidays: %w", err)
	}

	events := make([]holiday.Event, 0, len(requests)+len(holidays))
	for _, req := range requests {
		events = append(events, requestEvent(req))
	}
	for _, ph := range holidays {
		events = append(events, holiday.Event{
			ID:    ph.ID,
			Title: ph.Name,
			Start: ph.Date,
			End:   ph.Date,
			Type:  holiday.EventTypePublicHoliday,
		})
	}

	return events, nil
}

// UpcomingEvents returns the next leave events starting today or
// later, capped at the preview limit.
func (s *CalendarService) UpcomingEvents(ctx context.Context) ([]holiday.Event, error) {
	day := today()

	requests, err := s.requestRepo.ListApprovedFrom(ctx, day, holiday.UpcomingPreviewLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved requests: %w", err)
	}

	events := make([]holiday.Event, 0, len(requests))
	for _, req := range requests {
		events = append(events, requestEvent(req))
	}

	return holiday.Upcoming(events, day), nil
}

func requestEvent(req holiday.Request) holiday.Event {
	return holiday.Event{
		ID:       req.ID,
		Title:    fmt.Sprintf("%s - %s", req.UserName, holiday.CategoryName(req.Category)),
		Start:    req.StartDate,
		End:      req.EndDate,
		Type:     holiday.EventTypeHoliday,
		Category: req.Category,
		UserName: req.UserName,
	}
}
