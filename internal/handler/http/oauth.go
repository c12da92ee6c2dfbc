package http

import (
	"net/http"
	"sync"
	"time"

	"github.com/netsg-cyber/Holidays-app/internal/domain/settings"
	"github.com/netsg-cyber/Holidays-app/internal/handler/http/response"
	"github.com/netsg-cyber/Holidays-app/internal/pkg/google"
)

const oauthStateTTL = 10 * time.Minute

type OAuthHandler interface {
	GoogleLogin(w http.ResponseWriter, r *http.Request)
	GoogleCallback(w http.ResponseWriter, r *http.Request)
	GoogleDisconnect(w http.ResponseWriter, r *http.Request)
}

type OAuthHandlerImpl struct {
	googleService   google.Service
	settingsService settings.SettingsService
	frontendURL     string

	mu     sync.Mutex
	states map[string]time.Time
}

func NewOAuthHandler(googleService google.Service, settingsService settings.SettingsService, frontendURL string) OAuthHandler {
	return &OAuthHandlerImpl{
		googleService:   googleService,
		settingsService: settingsService,
		frontendURL:     frontendURL,
		states:          make(map[string]time.Time),
	}
}

// GoogleLogin implements OAuthHandler. Returns the consent URL for the
// frontend to open.
func (h *OAuthHandlerImpl) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	state := h.googleService.GenerateState()
	if state == "" {
		response.InternalServerError(w, "Failed to generate OAuth state")
		return
	}
	h.rememberState(state)

	response.Success(w, map[string]string{
		"authorization_url": h.googleService.RedirectURL(state),
	})
}

// GoogleCallback implements OAuthHandler. Exchanges the code, stores
// the tokens and sends the browser back to the settings page.
func (h *OAuthHandlerImpl) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	state := r.URL.Query().Get("state")
	if !h.consumeState(state) {
		response.HandleError(w, settings.ErrInvalidOAuthState)
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		response.BadRequest(w, "code is required", nil)
		return
	}

	token, err := h.googleService.Exchange(r.Context(), code)
	if err != nil {
		response.BadRequest(w, "OAuth code exchange failed", nil)
		return
	}

	tokens := settings.GoogleTokens{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
	}
	if !token.Expiry.IsZero() {
		expiry := token.Expiry
		tokens.ExpiresAt = &expiry
	}

	if err := h.settingsService.StoreGoogleTokens(r.Context(), tokens); err != nil {
		response.HandleError(w, err)
		return
	}

	http.Redirect(w, r, h.frontendURL+"/settings?google_connected=true", http.StatusTemporaryRedirect)
}

// GoogleDisconnect implements OAuthHandler.
func (h *OAuthHandlerImpl) GoogleDisconnect(w http.ResponseWriter, r *http.Request) {
	if err := h.settingsService.ClearGoogleTokens(r.Context()); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Google disconnected successfully", nil)
}

func (h *OAuthHandlerImpl) rememberState(state string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	now := time.Now()
	for s, issued := range h.states {
		if now.Sub(issued) > oauthStateTTL {
			delete(h.states, s)
		}
	}
	h.states[state] = now
}

func (h *OAuthHandlerImpl) consumeState(state string) bool {
	if state == "" {
		return false
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	issued, ok := h.states[state]
	if !ok {
		return false
	}
	delete(h.states, state)
	return time.Since(issued) <= oauthStateTTL
}
