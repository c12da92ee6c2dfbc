package http

import (
	"net/http"
	"strconv"

	"github.com/netsg-cyber/Holidays-app/internal/domain/holiday"
	"github.com/netsg-cyber/Holidays-app/internal/handler/http/response"
)

type CalendarHandler interface {
	Events(w http.ResponseWriter, r *http.Request)
	Upcoming(w http.ResponseWriter, r *http.Request)
}

type CalendarHandlerImpl struct {
	calendarService holiday.CalendarService
}

func NewCalendarHandler(calendarService holiday.CalendarService) CalendarHandler {
	return &CalendarHandlerImpl{calendarService: calendarService}
}

// Events implements CalendarHandler. Both year and month are required.
func (h *CalendarHandlerImpl) Events(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year <= 0 {
		response.BadRequest(w, "year must be a positive integer", nil)
		return
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		response.BadRequest(w, "month must be between 1 and 12", nil)
		return
	}

	events, err := h.calendarService.MonthEvents(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, events)
}

// Upcoming implements CalendarHandler.
func (h *CalendarHandlerImpl) Upcoming(w http.ResponseWriter, r *http.Request) {
	events, err := h.calendarService.UpcomingEvents(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, events)
}
