package holiday

import "time"

// BalanceTier classifies how much of a credit is left.
type BalanceTier string

const (
	TierHealthy BalanceTier = "healthy"
	TierWarning BalanceTier = "warning"
	TierLow     BalanceTier = "low"
)

// ExpirationState classifies a credit against its expiration date.
type ExpirationState string

const (
	ExpirationNone         ExpirationState = "none"
	ExpirationExpiringSoon ExpirationState = "expiring_soon"
	ExpirationExpired      ExpirationState = "expired"
)

// expiringSoonWindowDays is the warning lookahead before expiration.
const expiringSoonWindowDays = 30

// CreditFor finds the credit matching the (user, year, category) triple
// exactly. When absent it returns a zero-valued placeholder so callers
// can render an assignment affordance instead of failing.
func CreditFor(credits []Credit, userID string, year int, category string) Credit {
	for _, c := range credits {
		if c.UserID == userID && c.Year == year && c.Category == category {
			return c
		}
	}
	return Credit{
		UserID:   userID,
		Year:     year,
		Category: category,
	}
}

// PercentRemaining returns remaining/total as 0..100, or 0 for an
// unfunded credit.
func PercentRemaining(c Credit) float64 {
	if c.TotalDays <= 0 {
		return 0
	}
	return c.RemainingDays / c.TotalDays * 100
}

// Tier maps a percentage to its display tier: >50 healthy, >20
// warning, else low.
func Tier(percent float64) BalanceTier {
	switch {
	case percent > 50:
		return TierHealthy
	case percent > 20:
		return TierWarning
	default:
		return TierLow
	}
}

// ExpirationStatus classifies a credit relative to today (a
// "YYYY-MM-DD" string). A credit without an expiration date is never
// expiring; one whose date already passed is expired; one expiring
// within the 30-day window is expiring soon.
func ExpirationStatus(c Credit, today string) ExpirationState {
	if c.ExpiresAt == nil || *c.ExpiresAt == "" {
		return ExpirationNone
	}
	expiresAt := *c.ExpiresAt
	if expiresAt < today {
		return ExpirationExpired
	}

	todayDate, err := time.Parse("2006-01-02", today)
	if err != nil {
		return ExpirationNone
	}
	windowEnd := todayDate.AddDate(0, 0, expiringSoonWindowDays).Format("2006-01-02")
	if expiresAt < windowEnd {
		return ExpirationExpiringSoon
	}
	return ExpirationNone
}

// UserCredits groups one user's credits for display.
type UserCredits struct {
	UserID    string   `json:"user_id"`
	UserName  string   `json:"user_name"`
	UserEmail string   `json:"user_email"`
	Credits   []Credit `json:"credits"`
}

// GroupByUser partitions credits by owning user, preserving both the
// first-seen order of users and the input order of each user's
// credits. Records with a missing category are kept, carrying the
// fallback display name.
func GroupByUser(credits []Credit) []UserCredits {
	index := make(map[string]int)
	groups := make([]UserCredits, 0)

	for _, c := range credits {
		if c.CategoryName == "" {
			c.CategoryName = CategoryName(c.Category)
		}
		i, seen := index[c.UserID]
		if !seen {
			index[c.UserID] = len(groups)
			groups = append(groups, UserCredits{
				UserID:    c.UserID,
				UserName:  c.UserName,
				UserEmail: c.UserEmail,
				Credits:   []Credit{c},
			})
			continue
		}
		groups[i].Credits = append(groups[i].Credits, c)
	}

	return groups
}

// PreviewAdjustment is the arithmetic preview of a signed adjustment;
// it never mutates the source record. Clamping reductions to the
// current remaining balance is the caller's validation duty.
func PreviewAdjustment(c Credit, signedDeltaDays float64) float64 {
	return c.RemainingDays + signedDeltaDays
}
