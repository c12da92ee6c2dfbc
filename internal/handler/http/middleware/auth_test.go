package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netsg-cyber/Holidays-app/internal/domain/auth"
	"github.com/netsg-cyber/Holidays-app/internal/domain/user"
	"github.com/netsg-cyber/Holidays-app/internal/pkg/token"
)

type fakeAuthService struct {
	snapshots map[string]auth.Snapshot
	err       error
}

func (s *fakeAuthService) ProcessSession(ctx context.Context, sessionID string) (user.User, *http.Cookie, error) {
	return user.User{}, nil, nil
}

func (s *fakeAuthService) Resolve(ctx context.Context, tokenID string) (auth.Snapshot, error) {
	if s.err != nil {
		return auth.Snapshot{}, s.err
	}
	snapshot, ok := s.snapshots[tokenID]
	if !ok {
		return auth.Snapshot{}, auth.ErrNotAuthenticated
	}
	return snapshot, nil
}

func (s *fakeAuthService) Logout(ctx context.Context, tokenID string) (*http.Cookie, error) {
	return nil, nil
}

func (s *fakeAuthService) CleanupExpired(ctx context.Context) error {
	return nil
}

// sessionChain builds the verifier + session middleware stack the
// router uses, around a handler that records the resolved snapshot.
func sessionChain(ts token.Service, authSvc auth.AuthService, seen *auth.Snapshot) http.Handler {
	final := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if snapshot, ok := SnapshotFromContext(r.Context()); ok {
			*seen = snapshot
		}
		w.WriteHeader(http.StatusOK)
	})
	return jwtauth.Verify(ts.JWTAuth(), token.FromRequest)(SessionRequired(authSvc)(final))
}

func TestSessionRequired_ValidCookie(t *testing.T) {
	t.Parallel()

	ts := token.NewService("test-secret")
	expiresAt := time.Now().Add(time.Hour)
	signed, err := ts.GenerateSessionToken("user_aaaaaaaaaaaa", "tok-1", expiresAt)
	require.NoError(t, err)

	authSvc := &fakeAuthService{snapshots: map[string]auth.Snapshot{
		"tok-1": {
			User:    user.User{ID: "user_aaaaaaaaaaaa", Role: user.RoleEmployee},
			Session: auth.Session{TokenID: "tok-1"},
		},
	}}

	var seen auth.Snapshot
	handler := sessionChain(ts, authSvc, &seen)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(ts.SessionCookie(signed, expiresAt))
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user_aaaaaaaaaaaa", seen.User.ID)
}

func TestSessionRequired_BearerHeader(t *testing.T) {
	t.Parallel()

	ts := token.NewService("test-secret")
	signed, err := ts.GenerateSessionToken("user_aaaaaaaaaaaa", "tok-1", time.Now().Add(time.Hour))
	require.NoError(t, err)

	authSvc := &fakeAuthService{snapshots: map[string]auth.Snapshot{
		"tok-1": {User: user.User{ID: "user_aaaaaaaaaaaa"}},
	}}

	var seen auth.Snapshot
	handler := sessionChain(ts, authSvc, &seen)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSessionRequired_MissingToken(t *testing.T) {
	t.Parallel()

	ts := token.NewService("test-secret")
	var seen auth.Snapshot
	handler := sessionChain(ts, &fakeAuthService{}, &seen)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionRequired_WrongSignature(t *testing.T) {
	t.Parallel()

	other := token.NewService("other-secret")
	signed, err := other.GenerateSessionToken("user_aaaaaaaaaaaa", "tok-1", time.Now().Add(time.Hour))
	require.NoError(t, err)

	ts := token.NewService("test-secret")
	var seen auth.Snapshot
	handler := sessionChain(ts, &fakeAuthService{}, &seen)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, seen.User.ID)
}

func TestSessionRequired_RevokedSession(t *testing.T) {
	t.Parallel()

	ts := token.NewService("test-secret")
	signed, err := ts.GenerateSessionToken("user_aaaaaaaaaaaa", "tok-1", time.Now().Add(time.Hour))
	require.NoError(t, err)

	// Signature is fine but the session row is gone.
	authSvc := &fakeAuthService{snapshots: map[string]auth.Snapshot{}}

	var seen auth.Snapshot
	handler := sessionChain(ts, authSvc, &seen)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHROnly_AllowsHR(t *testing.T) {
	t.Parallel()

	called := false
	handler := HROnly(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}))

	snapshot := auth.Snapshot{User: user.User{ID: "user_hr0000000001", Role: user.RoleHR}}
	req := httptest.NewRequest(http.MethodGet, "/api/requests/all", nil)
	req = req.WithContext(WithSnapshot(req.Context(), snapshot))
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, called)
}

func TestHROnly_RejectsEmployee(t *testing.T) {
	t.Parallel()

	handler := HROnly(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	snapshot := auth.Snapshot{User: user.User{ID: "user_aaaaaaaaaaaa", Role: user.RoleEmployee}}
	req := httptest.NewRequest(http.MethodGet, "/api/requests/all", nil)
	req = req.WithContext(WithSnapshot(req.Context(), snapshot))
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHROnly_RequiresSnapshot(t *testing.T) {
	t.Parallel()

	handler := HROnly(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/requests/all", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
