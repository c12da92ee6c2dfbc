package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// SessionData is what the external identity provider returns for a
// one-time session id: the verified profile plus the opaque session
// token it issued.
type SessionData struct {
	Email        string `json:"email"`
	Name         string `json:"name"`
	Picture      string `json:"picture"`
	SessionToken string `json:"session_token"`
}

// Client exchanges login session ids at the external identity
// provider. Authentication itself (the Google OAuth redirect dance)
// happens entirely on the provider side.
type Client interface {
	ExchangeSession(ctx context.Context, sessionID string) (SessionData, error)
}

type httpClient struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string) Client {
	return &httpClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *httpClient) ExchangeSession(ctx context.Context, sessionID string) (SessionData, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return SessionData{}, err
	}
	req.Header.Set("X-Session-ID", sessionID)

	resp, err := c.client.Do(req)
	if err != nil {
		return SessionData{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return SessionData{}, fmt.Errorf("identity provider returned status %d", resp.StatusCode)
	}

	var data SessionData
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return SessionData{}, err
	}
	if data.Email == "" || data.SessionToken == "" {
		return SessionData{}, fmt.Errorf("identity provider returned incomplete session data")
	}

	return data, nil
}
