package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/netsg-cyber/Holidays-app/internal/domain/auth"
	"github.com/netsg-cyber/Holidays-app/internal/handler/http/response"
)

type contextKey string

const snapshotKey contextKey = "session_snapshot"

// SessionRequired verifies the signed session token (already parsed by
// the jwtauth verifier) against the session store and puts the
// authenticated snapshot on the request context. Revoked sessions fail
// here even when the signature is still valid.
func SessionRequired(authService auth.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())
			if err != nil || token == nil {
				response.HandleError(w, auth.ErrNotAuthenticated)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			tokenType, ok := claims["type"].(string)
			if !ok || tokenType != "session" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			tokenID, ok := claims["jti"].(string)
			if !ok || tokenID == "" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			snapshot, err := authService.Resolve(r.Context(), tokenID)
			if err != nil {
				response.HandleError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), snapshotKey, snapshot)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}

// SnapshotFromContext returns the authenticated snapshot placed by
// SessionRequired.
func SnapshotFromContext(ctx context.Context) (auth.Snapshot, bool) {
	snapshot, ok := ctx.Value(snapshotKey).(auth.Snapshot)
	return snapshot, ok
}

// WithSnapshot is a test helper for handlers below the middleware.
func WithSnapshot(ctx context.Context, snapshot auth.Snapshot) context.Context {
	return context.WithValue(ctx, snapshotKey, snapshot)
}
