package response

import (
	"errors"
	"net/http"

	"github.com/netsg-cyber/Holidays-app/internal/domain/auth"
	"github.com/netsg-cyber/Holidays-app/internal/domain/holiday"
	"github.com/netsg-cyber/Holidays-app/internal/domain/settings"
	"github.com/netsg-cyber/Holidays-app/internal/domain/user"
	"github.com/netsg-cyber/Holidays-app/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Auth domain errors
	switch {
	case errors.Is(err, auth.ErrNotAuthenticated):
		Unauthorized(w, "Not authenticated")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid session token")
	case errors.Is(err, auth.ErrSessionExpired):
		Unauthorized(w, "Session expired")
	case errors.Is(err, auth.ErrSessionNotFound):
		Unauthorized(w, "Session not found")
	case errors.Is(err, auth.ErrIdentityExchangeFailed):
		Unauthorized(w, "Identity verification failed")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "User with this email already exists")
	case errors.Is(err, user.ErrInvalidRole):
		BadRequest(w, "Invalid role", nil)
	case errors.Is(err, user.ErrSelfDeletion):
		BadRequest(w, "Cannot delete your own account", nil)
	case errors.Is(err, user.ErrHRAccessRequired):
		Forbidden(w, "HR access required")

	// Holiday domain errors
	case errors.Is(err, holiday.ErrRequestNotFound):
		NotFound(w, "Request not found")
	case errors.Is(err, holiday.ErrRequestAlreadyProcessed):
		Conflict(w, "Request already processed")
	case errors.Is(err, holiday.ErrInsufficientCredits):
		BadRequest(w, "Insufficient holiday credits", nil)
	case errors.Is(err, holiday.ErrNoCreditsAssigned):
		BadRequest(w, "No credits assigned for this category", nil)
	case errors.Is(err, holiday.ErrCreditNotFound):
		NotFound(w, "Credit not found for this user/year/category")
	case errors.Is(err, holiday.ErrInvalidCategory):
		BadRequest(w, "Invalid holiday category", nil)
	case errors.Is(err, holiday.ErrInvalidDateRange):
		BadRequest(w, "End date must not be before start date", nil)
	case errors.Is(err, holiday.ErrExcessiveReduction):
		BadRequest(w, "Cannot reduce more than the remaining balance", nil)
	case errors.Is(err, holiday.ErrFixedExpiration):
		BadRequest(w, "Paid holiday expiration is fixed and cannot be changed", nil)
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")

	// Settings domain errors
	case errors.Is(err, settings.ErrGoogleNotConnected):
		BadRequest(w, "Google integration is not connected", nil)
	case errors.Is(err, settings.ErrInvalidOAuthState):
		BadRequest(w, "Invalid OAuth state", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
