package holiday

import (
	"context"
	"time"

	"github.com/netsg-cyber/Holidays-app/internal/domain/holiday"
	"github.com/netsg-cyber/Holidays-app/internal/domain/user"
)

// In-memory doubles shared by the service tests in this package.

type fakeCreditRepo struct {
	credits  map[string]holiday.Credit
	order    []string
	debitErr error
}

func newFakeCreditRepo() *fakeCreditRepo {
	return &fakeCreditRepo{credits: make(map[string]holiday.Credit)}
}

func (r *fakeCreditRepo) add(credit holiday.Credit) holiday.Credit {
	r.credits[credit.ID] = credit
	r.order = append(r.order, credit.ID)
	return credit
}

func (r *fakeCreditRepo) Create(ctx context.Context, credit holiday.Credit) (holiday.Credit, error) {
	credit.CreatedAt = time.Now()
	credit.UpdatedAt = credit.CreatedAt
	return r.add(credit), nil
}

func (r *fakeCreditRepo) GetByUserYearCategory(ctx context.Context, userID string, year int, category string) (holiday.Credit, error) {
	for _, id := range r.order {
		c := r.credits[id]
		if c.UserID == userID && c.Year == year && c.Category == category {
			return c, nil
		}
	}
	return holiday.Credit{}, holiday.ErrCreditNotFound
}

func (r *fakeCreditRepo) GetByUserID(ctx context.Context, userID string) ([]holiday.Credit, error) {
	var out []holiday.Credit
	for _, id := range r.order {
		if r.credits[id].UserID == userID {
			out = append(out, r.credits[id])
		}
	}
	return out, nil
}

func (r *fakeCreditRepo) GetByUserIDAndYear(ctx context.Context, userID string, year int) ([]holiday.Credit, error) {
	var out []holiday.Credit
	for _, id := range r.order {
		c := r.credits[id]
		if c.UserID == userID && c.Year == year {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCreditRepo) List(ctx context.Context) ([]holiday.Credit, error) {
	out := make([]holiday.Credit, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.credits[id])
	}
	return out, nil
}

func (r *fakeCreditRepo) UpdateBalance(ctx context.Context, id string, totalDays, usedDays, remainingDays float64) error {
	c, ok := r.credits[id]
	if !ok {
		return holiday.ErrCreditNotFound
	}
	c.TotalDays = totalDays
	c.UsedDays = usedDays
	c.RemainingDays = remainingDays
	r.credits[id] = c
	return nil
}

func (r *fakeCreditRepo) Debit(ctx context.Context, id string, days float64) error {
	if r.debitErr != nil {
		return r.debitErr
	}
	c, ok := r.credits[id]
	if !ok || c.RemainingDays < days {
		return holiday.ErrInsufficientCredits
	}
	c.UsedDays += days
	c.RemainingDays -= days
	r.credits[id] = c
	return nil
}

func (r *fakeCreditRepo) SetExpiration(ctx context.Context, id string, expiresAt *string) error {
	c, ok := r.credits[id]
	if !ok {
		return holiday.ErrCreditNotFound
	}
	c.ExpiresAt = expiresAt
	r.credits[id] = c
	return nil
}

func (r *fakeCreditRepo) ListMissingPaidHolidayExpiration(ctx context.Context) ([]holiday.Credit, error) {
	var out []holiday.Credit
	for _, id := range r.order {
		c := r.credits[id]
		if c.Category == holiday.CategoryPaidHoliday && c.ExpiresAt == nil {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCreditRepo) DeleteByUserID(ctx context.Context, userID string) error {
	kept := r.order[:0]
	for _, id := range r.order {
		if r.credits[id].UserID == userID {
			delete(r.credits, id)
			continue
		}
		kept = append(kept, id)
	}
	r.order = kept
	return nil
}

type fakeRequestRepo struct {
	requests map[string]holiday.Request
	order    []string
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: make(map[string]holiday.Request)}
}

func (r *fakeRequestRepo) add(request holiday.Request) holiday.Request {
	r.requests[request.ID] = request
	r.order = append(r.order, request.ID)
	return request
}

func (r *fakeRequestRepo) Create(ctx context.Context, request holiday.Request) (holiday.Request, error) {
	request.CreatedAt = time.Now()
	return r.add(request), nil
}

func (r *fakeRequestRepo) GetByID(ctx context.Context, id string) (holiday.Request, error) {
	if req, ok := r.requests[id]; ok {
		return req, nil
	}
	return holiday.Request{}, holiday.ErrRequestNotFound
}

func (r *fakeRequestRepo) GetByUserID(ctx context.Context, userID string) ([]holiday.Request, error) {
	var out []holiday.Request
	for _, id := range r.order {
		if r.requests[id].UserID == userID {
			out = append(out, r.requests[id])
		}
	}
	return out, nil
}

func (r *fakeRequestRepo) List(ctx context.Context) ([]holiday.Request, error) {
	out := make([]holiday.Request, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.requests[id])
	}
	return out, nil
}

func (r *fakeRequestRepo) ListByStatus(ctx context.Context, status holiday.RequestStatus) ([]holiday.Request, error) {
	var out []holiday.Request
	for _, id := range r.order {
		if r.requests[id].Status == status {
			out = append(out, r.requests[id])
		}
	}
	return out, nil
}

func (r *fakeRequestRepo) ListApprovedBetween(ctx context.Context, from, to string) ([]holiday.Request, error) {
	var out []holiday.Request
	for _, id := range r.order {
		req := r.requests[id]
		if req.Status == holiday.RequestStatusApproved && req.StartDate >= from && req.StartDate < to {
			out = append(out, req)
		}
	}
	return out, nil
}

func (r *fakeRequestRepo) ListApprovedFrom(ctx context.Context, from string, limit int) ([]holiday.Request, error) {
	var out []holiday.Request
	for _, id := range r.order {
		req := r.requests[id]
		if req.Status == holiday.RequestStatusApproved && req.StartDate >= from {
			out = append(out, req)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeRequestRepo) UpdateDecision(ctx context.Context, request holiday.Request) error {
	if _, ok := r.requests[request.ID]; !ok {
		return holiday.ErrRequestNotFound
	}
	r.requests[request.ID] = request
	return nil
}

func (r *fakeRequestRepo) DeleteByUserID(ctx context.Context, userID string) error {
	kept := r.order[:0]
	for _, id := range r.order {
		if r.requests[id].UserID == userID {
			delete(r.requests, id)
			continue
		}
		kept = append(kept, id)
	}
	r.order = kept
	return nil
}

type fakePublicHolidayRepo struct {
	holidays  map[string]holiday.PublicHoliday
	order     []string
	createErr error
}

func newFakePublicHolidayRepo() *fakePublicHolidayRepo {
	return &fakePublicHolidayRepo{holidays: make(map[string]holiday.PublicHoliday)}
}

func (r *fakePublicHolidayRepo) Create(ctx context.Context, ph holiday.PublicHoliday) (holiday.PublicHoliday, error) {
	if r.createErr != nil {
		return holiday.PublicHoliday{}, r.createErr
	}
	ph.CreatedAt = time.Now()
	r.holidays[ph.ID] = ph
	r.order = append(r.order, ph.ID)
	return ph, nil
}

func (r *fakePublicHolidayRepo) GetByID(ctx context.Context, id string) (holiday.PublicHoliday, error) {
	if ph, ok := r.holidays[id]; ok {
		return ph, nil
	}
	return holiday.PublicHoliday{}, holiday.ErrHolidayNotFound
}

func (r *fakePublicHolidayRepo) List(ctx context.Context) ([]holiday.PublicHoliday, error) {
	out := make([]holiday.PublicHoliday, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.holidays[id])
	}
	return out, nil
}

func (r *fakePublicHolidayRepo) ListByYear(ctx context.Context, year int) ([]holiday.PublicHoliday, error) {
	var out []holiday.PublicHoliday
	for _, id := range r.order {
		if r.holidays[id].Year == year {
			out = append(out, r.holidays[id])
		}
	}
	return out, nil
}

func (r *fakePublicHolidayRepo) ListBetween(ctx context.Context, from, to string) ([]holiday.PublicHoliday, error) {
	var out []holiday.PublicHoliday
	for _, id := range r.order {
		ph := r.holidays[id]
		if ph.Date >= from && ph.Date < to {
			out = append(out, ph)
		}
	}
	return out, nil
}

func (r *fakePublicHolidayRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.holidays[id]; !ok {
		return holiday.ErrHolidayNotFound
	}
	delete(r.holidays, id)
	kept := r.order[:0]
	for _, existing := range r.order {
		if existing != id {
			kept = append(kept, existing)
		}
	}
	r.order = kept
	return nil
}

type fakeUserRepo struct {
	users map[string]user.User
}

func newFakeUserRepo(users ...user.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]user.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	r.users[u.ID] = u
	return u, nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return user.User{}, user.ErrUserNotFound
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (r *fakeUserRepo) List(ctx context.Context) ([]user.User, error) {
	out := make([]user.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) ListByRole(ctx context.Context, role user.Role) ([]user.User, error) {
	var out []user.User
	for _, u := range r.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) UpdateProfile(ctx context.Context, id, name string, picture *string) (user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	u.Name = name
	u.Picture = picture
	r.users[id] = u
	return u, nil
}

func (r *fakeUserRepo) UpdateRole(ctx context.Context, id string, role user.Role) (user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	u.Role = role
	r.users[id] = u
	return u, nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return user.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

type fakeNotifier struct {
	submitted []holiday.Request
	decided   []holiday.Request
	assigned  []holiday.Credit
	adjusted  []holiday.Credit
}

func (n *fakeNotifier) RequestSubmitted(ctx context.Context, req holiday.Request) {
	n.submitted = append(n.submitted, req)
}

func (n *fakeNotifier) RequestDecided(ctx context.Context, req holiday.Request) {
	n.decided = append(n.decided, req)
}

func (n *fakeNotifier) CreditAssigned(ctx context.Context, credit holiday.Credit) {
	n.assigned = append(n.assigned, credit)
}

func (n *fakeNotifier) CreditAdjusted(ctx context.Context, credit holiday.Credit, adjustment float64, reason string) {
	n.adjusted = append(n.adjusted, credit)
}

type fakeCalendarSync struct {
	eventID  *string
	created  []string
	deleted  []string
}

func (c *fakeCalendarSync) CreateCalendarEvent(ctx context.Context, summary, description, startDate, endDate string) *string {
	c.created = append(c.created, summary)
	return c.eventID
}

func (c *fakeCalendarSync) DeleteCalendarEvent(ctx context.Context, eventID string) {
	c.deleted = append(c.deleted, eventID)
}
