package holiday

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netsg-cyber/Holidays-app/internal/domain/holiday"
)

func TestCalendarService_MonthEvents_MergesRequestsAndHolidays(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	reqRepo := newFakeRequestRepo()
	reqRepo.add(holiday.Request{
		ID:        "req_000000000001",
		UserName:  "Alice Martin",
		Category:  holiday.CategoryPaidHoliday,
		StartDate: "2026-03-10",
		EndDate:   "2026-03-12",
		Status:    holiday.RequestStatusApproved,
	})
	// Pending requests stay off the calendar.
	reqRepo.add(holiday.Request{
		ID:        "req_000000000002",
		UserName:  "Bob Leroy",
		Category:  holiday.CategorySickLeave,
		StartDate: "2026-03-16",
		EndDate:   "2026-03-16",
		Status:    holiday.RequestStatusPending,
	})
	phRepo := newFakePublicHolidayRepo()
	_, err := phRepo.Create(ctx, holiday.PublicHoliday{
		ID:   "ph_000000000001",
		Name: "Easter Monday",
		Date: "2026-03-30",
		Year: 2026,
	})
	require.NoError(t, err)

	svc := NewCalendarService(reqRepo, phRepo)

	events, err := svc.MonthEvents(ctx, 2026, 3)
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, "Alice Martin - Paid Holidays", events[0].Title)
	assert.Equal(t, holiday.EventTypeHoliday, events[0].Type)
	assert.Equal(t, "2026-03-10", events[0].Start)
	assert.Equal(t, "2026-03-12", events[0].End)

	assert.Equal(t, "Easter Monday", events[1].Title)
	assert.Equal(t, holiday.EventTypePublicHoliday, events[1].Type)
	assert.Equal(t, events[1].Start, events[1].End)
}

func TestCalendarService_MonthEvents_DecemberWindowWraps(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	reqRepo := newFakeRequestRepo()
	reqRepo.add(holiday.Request{
		ID:        "req_000000000001",
		UserName:  "Alice Martin",
		Category:  holiday.CategoryPaidHoliday,
		StartDate: "2026-12-31",
		EndDate:   "2027-01-02",
		Status:    holiday.RequestStatusApproved,
	})
	reqRepo.add(holiday.Request{
		ID:        "req_000000000002",
		UserName:  "Bob Leroy",
		Category:  holiday.CategoryPaidHoliday,
		StartDate: "2027-01-05",
		EndDate:   "2027-01-05",
		Status:    holiday.RequestStatusApproved,
	})

	svc := NewCalendarService(reqRepo, newFakePublicHolidayRepo())

	events, err := svc.MonthEvents(ctx, 2026, 12)
	require.NoError(t, err)
	// Inclusion keys off the start date only.
	require.Len(t, events, 1)
	assert.Equal(t, "req_000000000001", events[0].ID)
}

func TestCalendarService_UpcomingEvents_CappedAtFive(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	reqRepo := newFakeRequestRepo()
	day := time.Now().AddDate(0, 1, 0)
	for i := 0; i < 7; i++ {
		date := day.AddDate(0, 0, i).Format("2006-01-02")
		reqRepo.add(holiday.Request{
			ID:        fmt.Sprintf("req_%012d", i+1),
			UserName:  "Alice Martin",
			Category:  holiday.CategoryPaidHoliday,
			StartDate: date,
			EndDate:   date,
			Status:    holiday.RequestStatusApproved,
		})
	}

	svc := NewCalendarService(reqRepo, newFakePublicHolidayRepo())

	events, err := svc.UpcomingEvents(ctx)
	require.NoError(t, err)
	assert.Len(t, events, holiday.UpcomingPreviewLimit)
}

func TestCalendarService_UpcomingEvents_ExcludesPast(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	reqRepo := newFakeRequestRepo()
	past := time.Now().AddDate(0, 0, -10).Format("2006-01-02")
	future := time.Now().AddDate(0, 0, 10).Format("2006-01-02")
	reqRepo.add(holiday.Request{
		ID:        "req_000000000001",
		StartDate: past,
		EndDate:   past,
		Status:    holiday.RequestStatusApproved,
	})
	reqRepo.add(holiday.Request{
		ID:        "req_000000000002",
		StartDate: future,
		EndDate:   future,
		Status:    holiday.RequestStatusApproved,
	})

	svc := NewCalendarService(reqRepo, newFakePublicHolidayRepo())

	events, err := svc.UpcomingEvents(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "req_000000000002", events[0].ID)
}

func TestPublicHolidayService_Create_MirrorsCalendarEvent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	phRepo := newFakePublicHolidayRepo()
	eventID := "gcal-event-1"
	calendar := &fakeCalendarSync{eventID: &eventID}
	svc := NewPublicHolidayService(phRepo, calendar)

	created, err := svc.Create(ctx, holiday.CreatePublicHolidayRequest{
		Name: "Bastille Day",
		Date: "2026-07-14",
	})

	require.NoError(t, err)
	assert.Equal(t, 2026, created.Year) // derived from the date
	require.NotNil(t, created.CalendarEventID)
	assert.Equal(t, eventID, *created.CalendarEventID)
	require.Len(t, calendar.created, 1)
	assert.Equal(t, "Public Holiday: Bastille Day", calendar.created[0])
}

func TestPublicHolidayService_Create_RollsBackEventOnRepoFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	phRepo := newFakePublicHolidayRepo()
	phRepo.createErr = fmt.Errorf("insert failed")
	eventID := "gcal-event-1"
	calendar := &fakeCalendarSync{eventID: &eventID}
	svc := NewPublicHolidayService(phRepo, calendar)

	_, err := svc.Create(ctx, holiday.CreatePublicHolidayRequest{
		Name: "Bastille Day",
		Date: "2026-07-14",
	})

	require.Error(t, err)
	assert.Equal(t, []string{eventID}, calendar.deleted)
}

func TestPublicHolidayService_Delete_RemovesCalendarEvent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	phRepo := newFakePublicHolidayRepo()
	eventID := "gcal-event-1"
	_, err := phRepo.Create(ctx, holiday.PublicHoliday{
		ID:              "ph_000000000001",
		Name:            "Bastille Day",
		Date:            "2026-07-14",
		Year:            2026,
		CalendarEventID: &eventID,
	})
	require.NoError(t, err)
	calendar := &fakeCalendarSync{}
	svc := NewPublicHolidayService(phRepo, calendar)

	require.NoError(t, svc.Delete(ctx, "ph_000000000001"))
	assert.Equal(t, []string{eventID}, calendar.deleted)

	_, err = phRepo.GetByID(ctx, "ph_000000000001")
	assert.ErrorIs(t, err, holiday.ErrHolidayNotFound)
}

func TestPublicHolidayService_Delete_UnknownHoliday(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := NewPublicHolidayService(newFakePublicHolidayRepo(), &fakeCalendarSync{})
	err := svc.Delete(ctx, "ph_missing000000")
	assert.ErrorIs(t, err, holiday.ErrHolidayNotFound)
}

func TestPublicHolidayService_List_ZeroYearMeansAll(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	phRepo := newFakePublicHolidayRepo()
	for i, year := range []int{2025, 2026, 2026} {
		_, err := phRepo.Create(ctx, holiday.PublicHoliday{
			ID:   fmt.Sprintf("ph_%012d", i+1),
			Name: "Holiday",
			Date: fmt.Sprintf("%04d-01-01", year),
			Year: year,
		})
		require.NoError(t, err)
	}

	svc := NewPublicHolidayService(phRepo, &fakeCalendarSync{})

	all, err := svc.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	only2026, err := svc.List(ctx, 2026)
	require.NoError(t, err)
	assert.Len(t, only2026, 2)
}
