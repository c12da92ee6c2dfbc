package google

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"
)

const (
	gmailSendURL     = "https://gmail.googleapis.com/gmail/v1/users/me/messages/send"
	calendarEventURL = "https://www.googleapis.com/calendar/v3/calendars/primary/events"

	dateLayout = "2006-01-02"
)

// Mail is a single outgoing HTML email sent through the connected
// Gmail account.
type Mail struct {
	To      string
	Subject string
	Body    string
}

// Event is an all-day calendar event spanning StartDate through
// EndDate inclusive.
type Event struct {
	Summary     string
	Description string
	StartDate   string
	EndDate     string
}

// Service wraps the Google OAuth2 flow and the Gmail/Calendar REST
// calls made with the stored workspace token. Every API method returns
// the token it ended up using so callers can persist refreshes.
type Service interface {
	// GenerateState generates a random state string for OAuth2 flows.
	GenerateState() string
	// RedirectURL generates the OAuth2 consent URL with a state.
	RedirectURL(state string) string
	// Exchange exchanges the authorization code for an OAuth2 token.
	Exchange(ctx context.Context, code string) (*oauth2.Token, error)
	// SendMail sends an HTML email through the Gmail API.
	SendMail(ctx context.Context, token *oauth2.Token, mail Mail) (*oauth2.Token, error)
	// CreateEvent inserts an all-day event into the primary calendar.
	CreateEvent(ctx context.Context, token *oauth2.Token, event Event) (string, *oauth2.Token, error)
	// DeleteEvent removes an event from the primary calendar.
	DeleteEvent(ctx context.Context, token *oauth2.Token, eventID string) (*oauth2.Token, error)
}

type ServiceImpl struct {
	config *oauth2.Config
}

func NewService(clientID string, clientSecret string, redirectURL string) Service {
	config := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Scopes: []string{
			"https://www.googleapis.com/auth/gmail.send",
			"https://www.googleapis.com/auth/calendar.events",
		},
		Endpoint: googleoauth.Endpoint,
	}
	return &ServiceImpl{config: config}
}

// GenerateState generates a random state string for OAuth2 flows.
func (g *ServiceImpl) GenerateState() string {
	b := make([]byte, 32)
	_, err := rand.Read(b)
	if err != nil {
		return ""
	}
	return base64.URLEncoding.EncodeToString(b)
}

func (g *ServiceImpl) RedirectURL(state string) string {
	// A refresh token is only issued with offline access and a forced
	// consent prompt.
	return g.config.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.SetAuthURLParam("prompt", "consent"))
}

func (g *ServiceImpl) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := g.config.Exchange(ctx, code)
	if err != nil {
		return nil, err
	}
	return token, nil
}

func (g *ServiceImpl) SendMail(ctx context.Context, token *oauth2.Token, mail Mail) (*oauth2.Token, error) {
	var mime bytes.Buffer
	fmt.Fprintf(&mime, "To: %s\r\n", mail.To)
	fmt.Fprintf(&mime, "Subject: %s\r\n", mail.Subject)
	mime.WriteString("MIME-Version: 1.0\r\n")
	mime.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	mime.WriteString("\r\n")
	mime.WriteString(mail.Body)

	payload := map[string]string{
		"raw": base64.URLEncoding.EncodeToString(mime.Bytes()),
	}

	ts := g.config.TokenSource(ctx, token)

	var resp json.RawMessage
	if err := g.call(ctx, ts, http.MethodPost, gmailSendURL, payload, &resp); err != nil {
		return g.currentToken(ts, token), err
	}
	return g.currentToken(ts, token), nil
}

func (g *ServiceImpl) CreateEvent(ctx context.Context, token *oauth2.Token, event Event) (string, *oauth2.Token, error) {
	end, err := time.Parse(dateLayout, event.EndDate)
	if err != nil {
		return "", token, fmt.Errorf("invalid event end date: %w", err)
	}

	// All-day event end dates are exclusive in the Calendar API.
	payload := map[string]interface{}{
		"summary":     event.Summary,
		"description": event.Description,
		"start":       map[string]string{"date": event.StartDate},
		"end":         map[string]string{"date": end.AddDate(0, 0, 1).Format(dateLayout)},
	}

	ts := g.config.TokenSource(ctx, token)

	var created struct {
		ID string `json:"id"`
	}
	if err := g.call(ctx, ts, http.MethodPost, calendarEventURL, payload, &created); err != nil {
		return "", g.currentToken(ts, token), err
	}
	return created.ID, g.currentToken(ts, token), nil
}

func (g *ServiceImpl) DeleteEvent(ctx context.Context, token *oauth2.Token, eventID string) (*oauth2.Token, error) {
	ts := g.config.TokenSource(ctx, token)

	url := fmt.Sprintf("%s/%s", calendarEventURL, eventID)
	err := g.call(ctx, ts, http.MethodDelete, url, nil, nil)
	if err != nil {
		// Already gone is fine.
		var apiErr *apiError
		if asAPIError(err, &apiErr) && (apiErr.status == http.StatusNotFound || apiErr.status == http.StatusGone) {
			return g.currentToken(ts, token), nil
		}
		return g.currentToken(ts, token), err
	}
	return g.currentToken(ts, token), nil
}

type apiError struct {
	status int
	body   string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("google api returned status %d: %s", e.status, e.body)
}

func asAPIError(err error, target **apiError) bool {
	e, ok := err.(*apiError)
	if ok {
		*target = e
	}
	return ok
}

func (g *ServiceImpl) call(ctx context.Context, ts oauth2.TokenSource, method, url string, payload interface{}, out interface{}) error {
	var body *bytes.Buffer
	if payload != nil {
		body = &bytes.Buffer{}
		if err := json.NewEncoder(body).Encode(payload); err != nil {
			return err
		}
	} else {
		body = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	client := oauth2.NewClient(ctx, ts)
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var buf bytes.Buffer
		_, _ = buf.ReadFrom(resp.Body)
		return &apiError{status: resp.StatusCode, body: buf.String()}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return err
		}
	}
	return nil
}

// currentToken returns the possibly refreshed token from the source,
// falling back to the original when the source errors.
func (g *ServiceImpl) currentToken(ts oauth2.TokenSource, fallback *oauth2.Token) *oauth2.Token {
	t, err := ts.Token()
	if err != nil {
		return fallback
	}
	return t
}
