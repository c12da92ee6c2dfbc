package holiday

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netsg-cyber/Holidays-app/internal/domain/holiday"
	"github.com/netsg-cyber/Holidays-app/internal/domain/user"
)

func creditTestUser() user.User {
	return user.User{
		ID:    "user_aaaaaaaaaaaa",
		Email: "alice@example.com",
		Name:  "Alice Martin",
		Role:  user.RoleEmployee,
	}
}

func TestCreditService_Assign_CreatesNewCredit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	creditRepo := newFakeCreditRepo()
	userRepo := newFakeUserRepo(creditTestUser())
	notifier := &fakeNotifier{}
	svc := NewCreditService(creditRepo, userRepo, notifier)

	created, err := svc.Assign(ctx, holiday.CreateCreditRequest{
		UserID:    "user_aaaaaaaaaaaa",
		Year:      2026,
		Category:  holiday.CategorySickLeave,
		TotalDays: 8,
	})

	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", created.UserEmail)
	assert.Equal(t, 8.0, created.TotalDays)
	assert.Equal(t, 0.0, created.UsedDays)
	assert.Equal(t, 8.0, created.RemainingDays)
	assert.Nil(t, created.ExpiresAt)
	assert.Len(t, notifier.assigned, 1)
}

func TestCreditService_Assign_PaidHolidayGetsFixedExpiry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	creditRepo := newFakeCreditRepo()
	userRepo := newFakeUserRepo(creditTestUser())
	svc := NewCreditService(creditRepo, userRepo, &fakeNotifier{})

	// A caller-supplied expiration must lose to the fixed one.
	custom := "2026-12-31"
	created, err := svc.Assign(ctx, holiday.CreateCreditRequest{
		UserID:    "user_aaaaaaaaaaaa",
		Year:      2026,
		Category:  holiday.CategoryPaidHoliday,
		TotalDays: 35,
		ExpiresAt: &custom,
	})

	require.NoError(t, err)
	require.NotNil(t, created.ExpiresAt)
	assert.Equal(t, "2027-07-31", *created.ExpiresAt)
}

func TestCreditService_Assign_ReplacePreservesUsedDays(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	creditRepo := newFakeCreditRepo()
	creditRepo.add(holiday.Credit{
		ID:            "cred_000000000001",
		UserID:        "user_aaaaaaaaaaaa",
		Year:          2026,
		Category:      holiday.CategoryPaidHoliday,
		TotalDays:     35,
		UsedDays:      10,
		RemainingDays: 25,
	})
	userRepo := newFakeUserRepo(creditTestUser())
	svc := NewCreditService(creditRepo, userRepo, &fakeNotifier{})

	updated, err := svc.Assign(ctx, holiday.CreateCreditRequest{
		UserID:    "user_aaaaaaaaaaaa",
		Year:      2026,
		Category:  holiday.CategoryPaidHoliday,
		TotalDays: 40,
	})

	require.NoError(t, err)
	assert.Equal(t, "cred_000000000001", updated.ID)
	assert.Equal(t, 40.0, updated.TotalDays)
	assert.Equal(t, 10.0, updated.UsedDays)
	assert.Equal(t, 30.0, updated.RemainingDays)
}

func TestCreditService_Assign_UnknownUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := NewCreditService(newFakeCreditRepo(), newFakeUserRepo(), &fakeNotifier{})

	_, err := svc.Assign(ctx, holiday.CreateCreditRequest{
		UserID:    "user_missing0000",
		Year:      2026,
		Category:  holiday.CategorySickLeave,
		TotalDays: 5,
	})

	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestCreditService_Adjust_NegativeReducesRemaining(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	creditRepo := newFakeCreditRepo()
	creditRepo.add(holiday.Credit{
		ID:            "cred_000000000001",
		UserID:        "user_aaaaaaaaaaaa",
		Year:          2026,
		Category:      holiday.CategoryPaidHoliday,
		TotalDays:     10,
		UsedDays:      2,
		RemainingDays: 8,
	})
	notifier := &fakeNotifier{}
	svc := NewCreditService(creditRepo, newFakeUserRepo(), notifier)

	result, err := svc.Adjust(ctx, holiday.AdjustCreditRequest{
		UserID:     "user_aaaaaaaaaaaa",
		Year:       2026,
		Category:   holiday.CategoryPaidHoliday,
		Adjustment: -3,
		Reason:     "correction",
	})

	require.NoError(t, err)
	assert.Equal(t, 5.0, result.NewRemaining)
	assert.Equal(t, 5.0, result.NewUsed)
	assert.Equal(t, 10.0, result.NewTotal)
	assert.Len(t, notifier.adjusted, 1)
}

func TestCreditService_Adjust_PositiveFloorsUsedAtZero(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	creditRepo := newFakeCreditRepo()
	creditRepo.add(holiday.Credit{
		ID:            "cred_000000000001",
		UserID:        "user_aaaaaaaaaaaa",
		Year:          2026,
		Category:      holiday.CategorySickLeave,
		TotalDays:     5,
		UsedDays:      1,
		RemainingDays: 4,
	})
	svc := NewCreditService(creditRepo, newFakeUserRepo(), &fakeNotifier{})

	result, err := svc.Adjust(ctx, holiday.AdjustCreditRequest{
		UserID:     "user_aaaaaaaaaaaa",
		Year:       2026,
		Category:   holiday.CategorySickLeave,
		Adjustment: 3,
		Reason:     "bonus days",
	})

	require.NoError(t, err)
	assert.Equal(t, 7.0, result.NewRemaining)
	assert.Equal(t, 0.0, result.NewUsed)
	// Remaining grew past the old total, so the total stretches.
	assert.Equal(t, 7.0, result.NewTotal)
}

func TestCreditService_Adjust_RejectsReductionBelowZero(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	creditRepo := newFakeCreditRepo()
	creditRepo.add(holiday.Credit{
		ID:            "cred_000000000001",
		UserID:        "user_aaaaaaaaaaaa",
		Year:          2026,
		Category:      holiday.CategoryPaidHoliday,
		TotalDays:     10,
		UsedDays:      8,
		RemainingDays: 2,
	})
	svc := NewCreditService(creditRepo, newFakeUserRepo(), &fakeNotifier{})

	_, err := svc.Adjust(ctx, holiday.AdjustCreditRequest{
		UserID:     "user_aaaaaaaaaaaa",
		Year:       2026,
		Category:   holiday.CategoryPaidHoliday,
		Adjustment: -3,
		Reason:     "too much",
	})

	assert.ErrorIs(t, err, holiday.ErrExcessiveReduction)

	// Balance untouched.
	credit, _ := creditRepo.GetByUserYearCategory(ctx, "user_aaaaaaaaaaaa", 2026, holiday.CategoryPaidHoliday)
	assert.Equal(t, 2.0, credit.RemainingDays)
}

func TestCreditService_Adjust_UnknownCredit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := NewCreditService(newFakeCreditRepo(), newFakeUserRepo(), &fakeNotifier{})

	_, err := svc.Adjust(ctx, holiday.AdjustCreditRequest{
		UserID:     "user_aaaaaaaaaaaa",
		Year:       2026,
		Category:   holiday.CategoryPaidHoliday,
		Adjustment: 1,
	})

	assert.ErrorIs(t, err, holiday.ErrCreditNotFound)
}

func TestCreditService_SetExpiration_PaidHolidayIsFixed(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := NewCreditService(newFakeCreditRepo(), newFakeUserRepo(), &fakeNotifier{})

	date := "2027-01-01"
	err := svc.SetExpiration(ctx, holiday.SetExpirationRequest{
		UserID:    "user_aaaaaaaaaaaa",
		Year:      2026,
		Category:  holiday.CategoryPaidHoliday,
		ExpiresAt: &date,
	})

	assert.ErrorIs(t, err, holiday.ErrFixedExpiration)
}

func TestCreditService_SetExpiration_UpdatesOtherCategories(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	creditRepo := newFakeCreditRepo()
	creditRepo.add(holiday.Credit{
		ID:       "cred_000000000001",
		UserID:   "user_aaaaaaaaaaaa",
		Year:     2026,
		Category: holiday.CategorySickLeave,
	})
	svc := NewCreditService(creditRepo, newFakeUserRepo(), &fakeNotifier{})

	date := "2026-12-31"
	err := svc.SetExpiration(ctx, holiday.SetExpirationRequest{
		UserID:    "user_aaaaaaaaaaaa",
		Year:      2026,
		Category:  holiday.CategorySickLeave,
		ExpiresAt: &date,
	})

	require.NoError(t, err)
	credit := creditRepo.credits["cred_000000000001"]
	require.NotNil(t, credit.ExpiresAt)
	assert.Equal(t, "2026-12-31", *credit.ExpiresAt)

	// nil clears it again.
	require.NoError(t, svc.SetExpiration(ctx, holiday.SetExpirationRequest{
		UserID:   "user_aaaaaaaaaaaa",
		Year:     2026,
		Category: holiday.CategorySickLeave,
	}))
	assert.Nil(t, creditRepo.credits["cred_000000000001"].ExpiresAt)
}

func TestCreditService_SeedDefaults(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	creditRepo := newFakeCreditRepo()
	svc := NewCreditService(creditRepo, newFakeUserRepo(), &fakeNotifier{})

	err := svc.SeedDefaults(ctx, "user_aaaaaaaaaaaa", "alice@example.com", "Alice Martin", 2026)
	require.NoError(t, err)

	credits, err := creditRepo.GetByUserID(ctx, "user_aaaaaaaaaaaa")
	require.NoError(t, err)
	require.Len(t, credits, len(holiday.Categories))

	byCategory := make(map[string]holiday.Credit, len(credits))
	for _, c := range credits {
		byCategory[c.Category] = c
	}

	assert.Equal(t, 35.0, byCategory[holiday.CategoryPaidHoliday].TotalDays)
	assert.Equal(t, 5.0, byCategory[holiday.CategorySickLeave].TotalDays)
	assert.Equal(t, 90.0, byCategory[holiday.CategoryMaternityLeave].TotalDays)
	assert.Equal(t, 0.0, byCategory[holiday.CategoryUnpaidLeave].TotalDays)

	paid := byCategory[holiday.CategoryPaidHoliday]
	require.NotNil(t, paid.ExpiresAt)
	assert.Equal(t, "2027-07-31", *paid.ExpiresAt)
	assert.Nil(t, byCategory[holiday.CategorySickLeave].ExpiresAt)
}

func TestCreditService_BackfillPaidHolidayExpirations(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	creditRepo := newFakeCreditRepo()
	creditRepo.add(holiday.Credit{
		ID:       "cred_000000000001",
		UserID:   "user_aaaaaaaaaaaa",
		Year:     2025,
		Category: holiday.CategoryPaidHoliday,
	})
	stamped := "2026-07-31"
	creditRepo.add(holiday.Credit{
		ID:        "cred_000000000002",
		UserID:    "user_bbbbbbbbbbbb",
		Year:      2025,
		Category:  holiday.CategoryPaidHoliday,
		ExpiresAt: &stamped,
	})
	svc := NewCreditService(creditRepo, newFakeUserRepo(), &fakeNotifier{})

	require.NoError(t, svc.BackfillPaidHolidayExpirations(ctx))

	first := creditRepo.credits["cred_000000000001"]
	require.NotNil(t, first.ExpiresAt)
	assert.Equal(t, "2026-07-31", *first.ExpiresAt)
}

func TestCreditService_UserCreditsByYear_ZeroMeansAll(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	creditRepo := newFakeCreditRepo()
	creditRepo.add(holiday.Credit{ID: "cred_1", UserID: "user_a", Year: 2025, Category: holiday.CategoryPaidHoliday})
	creditRepo.add(holiday.Credit{ID: "cred_2", UserID: "user_a", Year: 2026, Category: holiday.CategoryPaidHoliday})
	svc := NewCreditService(creditRepo, newFakeUserRepo(), &fakeNotifier{})

	all, err := svc.UserCreditsByYear(ctx, "user_a", 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	one, err := svc.UserCreditsByYear(ctx, "user_a", 2026)
	require.NoError(t, err)
	require.Len(t, one, 1)
	assert.Equal(t, "cred_2", one[0].ID)
}
