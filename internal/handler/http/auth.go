package http

import (
	"net/http"

	"github.com/netsg-cyber/Holidays-app/internal/domain/auth"
	"github.com/netsg-cyber/Holidays-app/internal/handler/http/middleware"
	"github.com/netsg-cyber/Holidays-app/internal/handler/http/response"
	"github.com/netsg-cyber/Holidays-app/internal/pkg/token"
)

type AuthHandler interface {
	Session(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService  auth.AuthService
	tokenService token.Service
}

func NewAuthHandler(authService auth.AuthService, tokenService token.Service) AuthHandler {
	return &AuthHandlerImpl{
		authService:  authService,
		tokenService: tokenService,
	}
}

// Session implements AuthHandler. Exchanges the identity-provider
// session id for a local session cookie.
func (h *AuthHandlerImpl) Session(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		sessionID = r.Header.Get("X-Session-ID")
	}
	if sessionID == "" {
		response.BadRequest(w, "session_id is required", nil)
		return
	}

	current, cookie, err := h.authService.ProcessSession(r.Context(), sessionID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, cookie)
	response.Success(w, current)
}

// Me implements AuthHandler.
func (h *AuthHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	snapshot, ok := middleware.SnapshotFromContext(r.Context())
	if !ok {
		response.HandleError(w, auth.ErrNotAuthenticated)
		return
	}
	response.Success(w, snapshot.User)
}

// Logout implements AuthHandler. Revokes the session row; the cleared
// cookie is always returned, even when no session was found.
func (h *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	var tokenID string
	if raw := token.FromRequest(r); raw != "" {
		if _, jti, err := h.tokenService.ParseSessionToken(raw); err == nil {
			tokenID = jti
		}
	}

	cookie, err := h.authService.Logout(r.Context(), tokenID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, cookie)
	response.SuccessWithMessage(w, "Logged out successfully", nil)
}
