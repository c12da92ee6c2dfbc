package middleware

import (
	"net/http"

	"github.com/netsg-cyber/Holidays-app/internal/domain/auth"
	"github.com/netsg-cyber/Holidays-app/internal/domain/user"
	"github.com/netsg-cyber/Holidays-app/internal/handler/http/response"
)

// HROnly gates admin endpoints behind the hr role. Must run below
// SessionRequired.
func HROnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		snapshot, ok := SnapshotFromContext(r.Context())
		if !ok {
			response.HandleError(w, auth.ErrNotAuthenticated)
			return
		}
		if !snapshot.User.IsHR() {
			response.HandleError(w, user.ErrHRAccessRequired)
			return
		}
		next.ServeHTTP(w, r)
	})
}
