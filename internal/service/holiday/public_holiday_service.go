package holiday

import (
	"context"
	"fmt"

	"github.com/netsg-cyber/Holidays-app/internal/domain/holiday"
	"github.com/netsg-cyber/Holidays-app/internal/pkg/ident"
)

type PublicHolidayService struct {
	holiday.PublicHolidayRepository
	calendar CalendarSync
}

func NewPublicHolidayService(repository holiday.PublicHolidayRepository, calendar CalendarSync) *PublicHolidayService {
	return &PublicHolidayService{
		PublicHolidayRepository: repository,
		calendar:                calendar,
	}
}

// List returns the holidays of one year, or all of them when year is 0.
func (s *PublicHolidayService) List(ctx context.Context, year int) ([]holiday.PublicHoliday, error) {
	if year == 0 {
		return s.PublicHolidayRepository.List(ctx)
	}
	return s.PublicHolidayRepository.ListByYear(ctx, year)
}

func (s *PublicHolidayService) Create(ctx context.Context, req holiday.CreatePublicHolidayRequest) (holiday.PublicHoliday, error) {
	if err := req.Validate(); err != nil {
		return holiday.PublicHoliday{}, err
	}

	eventID := s.calendar.CreateCalendarEvent(ctx,
		fmt.Sprintf("Public Holiday: %s", req.Name),
		"Public Holiday",
		req.Date,
		req.Date,
	)

	ph := holiday.PublicHoliday{
		ID:              ident.New(ident.PrefixHoliday),
		Name:            req.Name,
		Date:            req.Date,
		Year:            req.Year,
		CalendarEventID: eventID,
	}

	created, err := s.PublicHolidayRepository.Create(ctx, ph)
	if err != nil {
		if eventID != nil {
			s.calendar.DeleteCalendarEvent(ctx, *eventID)
		}
		return holiday.PublicHoliday{}, fmt.Errorf("failed to create public holiday: %w", err)
	}

	return created, nil
}

func (s *PublicHolidayService) Delete(ctx context.Context, id string) error {
	ph, err := s.PublicHolidayRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if ph.CalendarEventID != nil {
		s.calendar.DeleteCalendarEvent(ctx, *ph.CalendarEventID)
	}

	return s.PublicHolidayRepository.Delete(ctx, id)
}
