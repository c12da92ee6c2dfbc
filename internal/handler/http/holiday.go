package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/netsg-cyber/Holidays-app/internal/domain/holiday"
	"github.com/netsg-cyber/Holidays-app/internal/handler/http/response"
)

type PublicHolidayHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type PublicHolidayHandlerImpl struct {
	holidayService holiday.PublicHolidayService
}

func NewPublicHolidayHandler(holidayService holiday.PublicHolidayService) PublicHolidayHandler {
	return &PublicHolidayHandlerImpl{holidayService: holidayService}
}

// List implements PublicHolidayHandler.
func (h *PublicHolidayHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	year := 0
	if rawYear := r.URL.Query().Get("year"); rawYear != "" {
		parsed, err := strconv.Atoi(rawYear)
		if err != nil {
			response.BadRequest(w, "year must be an integer", nil)
			return
		}
		year = parsed
	}

	holidays, err := h.holidayService.List(r.Context(), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, holidays)
}

// Create implements PublicHolidayHandler.
func (h *PublicHolidayHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req holiday.CreatePublicHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	created, err := h.holidayService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Public holiday created", created)
}

// Delete implements PublicHolidayHandler.
func (h *PublicHolidayHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	holidayID := chi.URLParam(r, "id")
	if holidayID == "" {
		response.BadRequest(w, "Holiday ID is required", nil)
		return
	}

	if err := h.holidayService.Delete(r.Context(), holidayID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Public holiday deleted", nil)
}
