package token

import (
	"net/http"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// CookieName carries the session token in the browser.
const CookieName = "session_token"

// Service mints and validates the signed session tokens carried in the
// session cookie. The jti claim links a token to its server-side
// session row, so revocation is a row delete rather than a blacklist.
type Service interface {
	GenerateSessionToken(userID, tokenID string, expiresAt time.Time) (string, error)
	// ParseSessionToken validates signature, expiry and token type, and
	// returns the embedded (userID, tokenID) pair.
	ParseSessionToken(tokenString string) (userID, tokenID string, err error)
	JWTAuth() *jwtauth.JWTAuth
	SessionCookie(token string, expiresAt time.Time) *http.Cookie
	ClearedSessionCookie() *http.Cookie
}

type tokenService struct {
	tokenAuth *jwtauth.JWTAuth
}

func NewService(secretKey string) Service {
	return &tokenService{
		tokenAuth: jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (s *tokenService) JWTAuth() *jwtauth.JWTAuth {
	return s.tokenAuth
}

func (s *tokenService) GenerateSessionToken(userID, tokenID string, expiresAt time.Time) (string, error) {
	_, tokenString, err := s.tokenAuth.Encode(map[string]interface{}{
		"user_id": userID,
		"jti":     tokenID,
		"type":    "session",
		"exp":     expiresAt.Unix(),
	})
	return tokenString, err
}

func (s *tokenService) ParseSessionToken(tokenString string) (string, string, error) {
	tok, err := s.tokenAuth.Decode(tokenString)
	if err != nil {
		return "", "", err
	}

	tokenType, ok := tok.Get("type")
	if !ok || tokenType != "session" {
		return "", "", jwt.ErrInvalidJWT()
	}

	userIDVal, ok := tok.Get("user_id")
	if !ok {
		return "", "", jwt.ErrInvalidJWT()
	}
	userID, ok := userIDVal.(string)
	if !ok || userID == "" {
		return "", "", jwt.ErrInvalidJWT()
	}

	tokenID := tok.JwtID()
	if tokenID == "" {
		return "", "", jwt.ErrInvalidJWT()
	}

	return userID, tokenID, nil
}

func (s *tokenService) SessionCookie(token string, expiresAt time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	}
}

func (s *tokenService) ClearedSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	}
}

// FromRequest extracts the raw session token from the cookie or a
// Bearer Authorization header, cookie first.
func FromRequest(r *http.Request) string {
	if c, err := r.Cookie(CookieName); err == nil && c.Value != "" {
		return c.Value
	}
	return jwtauth.TokenFromHeader(r)
}
