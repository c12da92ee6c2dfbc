package http

import (
	"net/http"
	"strconv"

	"github.com/netsg-cyber/Holidays-app/internal/domain/settings"
	"github.com/netsg-cyber/Holidays-app/internal/handler/http/response"
)

type SettingsHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type SettingsHandlerImpl struct {
	settingsService settings.SettingsService
}

func NewSettingsHandler(settingsService settings.SettingsService) SettingsHandler {
	return &SettingsHandlerImpl{settingsService: settingsService}
}

// Get implements SettingsHandler.
func (h *SettingsHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	view, err := h.settingsService.Get(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, view)
}

// Update implements SettingsHandler. The toggles travel as query
// parameters; an omitted toggle keeps its current value.
func (h *SettingsHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	current, err := h.settingsService.Get(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	emailEnabled := current.EmailNotificationsEnabled
	if raw := r.URL.Query().Get("email_notifications_enabled"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			response.BadRequest(w, "email_notifications_enabled must be a boolean", nil)
			return
		}
		emailEnabled = parsed
	}

	syncEnabled := current.CalendarSyncEnabled
	if raw := r.URL.Query().Get("calendar_sync_enabled"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			response.BadRequest(w, "calendar_sync_enabled must be a boolean", nil)
			return
		}
		syncEnabled = parsed
	}

	view, err := h.settingsService.Update(r.Context(), emailEnabled, syncEnabled)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Settings updated successfully", view)
}
