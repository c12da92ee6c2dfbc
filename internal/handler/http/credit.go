package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/netsg-cyber/Holidays-app/internal/domain/auth"
	"github.com/netsg-cyber/Holidays-app/internal/domain/holiday"
	"github.com/netsg-cyber/Holidays-app/internal/handler/http/middleware"
	"github.com/netsg-cyber/Holidays-app/internal/handler/http/response"
)

type CreditHandler interface {
	My(w http.ResponseWriter, r *http.Request)
	ByUser(w http.ResponseWriter, r *http.Request)
	All(w http.ResponseWriter, r *http.Request)
	Assign(w http.ResponseWriter, r *http.Request)
	Adjust(w http.ResponseWriter, r *http.Request)
	SetExpiration(w http.ResponseWriter, r *http.Request)
}

type CreditHandlerImpl struct {
	creditService holiday.CreditService
}

func NewCreditHandler(creditService holiday.CreditService) CreditHandler {
	return &CreditHandlerImpl{creditService: creditService}
}

// My implements CreditHandler.
func (h *CreditHandlerImpl) My(w http.ResponseWriter, r *http.Request) {
	snapshot, ok := middleware.SnapshotFromContext(r.Context())
	if !ok {
		response.HandleError(w, auth.ErrNotAuthenticated)
		return
	}

	credits, err := h.creditService.MyCredits(r.Context(), snapshot.User.ID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, credits)
}

// ByUser implements CreditHandler. Optional year query narrows the
// result to one ledger year.
func (h *CreditHandlerImpl) ByUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")
	if userID == "" {
		response.BadRequest(w, "User ID is required", nil)
		return
	}

	year := 0
	if rawYear := r.URL.Query().Get("year"); rawYear != "" {
		parsed, err := strconv.Atoi(rawYear)
		if err != nil {
			response.BadRequest(w, "year must be an integer", nil)
			return
		}
		year = parsed
	}

	credits, err := h.creditService.UserCreditsByYear(r.Context(), userID, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, credits)
}

// All implements CreditHandler. ?grouped=true returns per-user groups
// in first-seen order instead of the flat list.
func (h *CreditHandlerImpl) All(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("grouped") == "true" {
		grouped, err := h.creditService.AllCreditsGrouped(r.Context())
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, grouped)
		return
	}

	credits, err := h.creditService.AllCredits(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, credits)
}

// Assign implements CreditHandler.
func (h *CreditHandlerImpl) Assign(w http.ResponseWriter, r *http.Request) {
	var req holiday.CreateCreditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	credit, err := h.creditService.Assign(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Credit assigned successfully", credit)
}

// Adjust implements CreditHandler.
func (h *CreditHandlerImpl) Adjust(w http.ResponseWriter, r *http.Request) {
	var req holiday.AdjustCreditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.creditService.Adjust(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Credit adjusted successfully", result)
}

// SetExpiration implements CreditHandler.
func (h *CreditHandlerImpl) SetExpiration(w http.ResponseWriter, r *http.Request) {
	var req holiday.SetExpirationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.creditService.SetExpiration(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Expiration updated successfully", nil)
}
