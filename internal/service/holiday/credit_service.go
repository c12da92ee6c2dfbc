package holiday

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/netsg-cyber/Holidays-app/internal/domain/holiday"
	"github.com/netsg-cyber/Holidays-app/internal/domain/user"
	"github.com/netsg-cyber/Holidays-app/internal/pkg/ident"
)

type CreditService struct {
	holiday.CreditRepository
	userRepo user.UserRepository
	notifier Notifier
}

func NewCreditService(creditRepository holiday.CreditRepository, userRepository user.UserRepository, notifier Notifier) *CreditService {
	return &CreditService{
		CreditRepository: creditRepository,
		userRepo:         userRepository,
		notifier:         notifier,
	}
}

// paidHolidayExpiry returns the fixed expiration of a paid-holiday
// credit: July 31 of the following year, not overridable.
func paidHolidayExpiry(year int) string {
	return fmt.Sprintf("%04d-07-31", year+1)
}

func (s *CreditService) MyCredits(ctx context.Context, userID string) ([]holiday.Credit, error) {
	return s.CreditRepository.GetByUserID(ctx, userID)
}

func (s *CreditService) UserCreditsByYear(ctx context.Context, userID string, year int) ([]holiday.Credit, error) {
	if year == 0 {
		return s.CreditRepository.GetByUserID(ctx, userID)
	}
	return s.CreditRepository.GetByUserIDAndYear(ctx, userID, year)
}

func (s *CreditService) AllCredits(ctx context.Context) ([]holiday.Credit, error) {
	return s.CreditRepository.List(ctx)
}

func (s *CreditService) AllCreditsGrouped(ctx context.Context) ([]holiday.UserCredits, error) {
	credits, err := s.CreditRepository.List(ctx)
	if err != nil {
		return nil, err
	}
	return holiday.GroupByUser(credits), nil
}

// Assign creates the (user, year, category) credit or replaces its
// total; used days survive a replace and remaining is recomputed.
func (s *CreditService) Assign(ctx context.Context, req holiday.CreateCreditRequest) (holiday.Credit, error) {
	if err := req.Validate(); err != nil {
		return holiday.Credit{}, err
	}

	target, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return holiday.Credit{}, err
	}

	existing, err := s.CreditRepository.GetByUserYearCategory(ctx, req.UserID, req.Year, req.Category)
	if err == nil {
		remaining := req.TotalDays - existing.UsedDays
		if err := s.CreditRepository.UpdateBalance(ctx, existing.ID, req.TotalDays, existing.UsedDays, remaining); err != nil {
			return holiday.Credit{}, fmt.Errorf("failed to update credit balance: %w", err)
		}
		existing.TotalDays = req.TotalDays
		existing.RemainingDays = remaining

		s.notifier.CreditAssigned(ctx, existing)
		return existing, nil
	}
	if !errors.Is(err, holiday.ErrCreditNotFound) {
		return holiday.Credit{}, fmt.Errorf("failed to look up credit: %w", err)
	}

	expiresAt := req.ExpiresAt
	if req.Category == holiday.CategoryPaidHoliday {
		fixed := paidHolidayExpiry(req.Year)
		expiresAt = &fixed
	}

	credit := holiday.Credit{
		ID:            ident.New(ident.PrefixCredit),
		UserID:        target.ID,
		UserEmail:     target.Email,
		UserName:      target.Name,
		Year:          req.Year,
		Category:      req.Category,
		CategoryName:  holiday.CategoryName(req.Category),
		TotalDays:     req.TotalDays,
		UsedDays:      0,
		RemainingDays: req.TotalDays,
		ExpiresAt:     expiresAt,
	}

	created, err := s.CreditRepository.Create(ctx, credit)
	if err != nil {
		return holiday.Credit{}, fmt.Errorf("failed to create credit: %w", err)
	}

	s.notifier.CreditAssigned(ctx, created)
	return created, nil
}

// Adjust applies a signed day delta to the remaining balance. Reducing
// below zero is rejected; adding beyond the total extends the total.
func (s *CreditService) Adjust(ctx context.Context, req holiday.AdjustCreditRequest) (holiday.AdjustCreditResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.AdjustCreditResponse{}, err
	}

	credit, err := s.CreditRepository.GetByUserYearCategory(ctx, req.UserID, req.Year, req.Category)
	if err != nil {
		return holiday.AdjustCreditResponse{}, err
	}

	newRemaining := credit.RemainingDays + req.Adjustment
	if newRemaining < 0 {
		return holiday.AdjustCreditResponse{}, holiday.ErrExcessiveReduction
	}

	newUsed := credit.UsedDays - req.Adjustment
	if newUsed < 0 {
		newUsed = 0
	}

	newTotal := credit.TotalDays
	if newRemaining > newTotal {
		newTotal = newRemaining
	}

	if err := s.CreditRepository.UpdateBalance(ctx, credit.ID, newTotal, newUsed, newRemaining); err != nil {
		return holiday.AdjustCreditResponse{}, fmt.Errorf("failed to update credit balance: %w", err)
	}

	credit.TotalDays = newTotal
	credit.UsedDays = newUsed
	credit.RemainingDays = newRemaining
	s.notifier.CreditAdjusted(ctx, credit, req.Adjustment, req.Reason)

	return holiday.AdjustCreditResponse{
		NewRemaining: newRemaining,
		NewUsed:      newUsed,
		NewTotal:     newTotal,
	}, nil
}

// SetExpiration sets or clears the expiration of a credit. The
// paid-holiday expiration is fixed server-side and cannot be changed.
func (s *CreditService) SetExpiration(ctx context.Context, req holiday.SetExpirationRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if req.Category == holiday.CategoryPaidHoliday {
		return holiday.ErrFixedExpiration
	}

	credit, err := s.CreditRepository.GetByUserYearCategory(ctx, req.UserID, req.Year, req.Category)
	if err != nil {
		return err
	}

	return s.CreditRepository.SetExpiration(ctx, credit.ID, req.ExpiresAt)
}

// SeedDefaults creates the default credit of every category for a new
// user. Callers run it inside the user-creation transaction.
func (s *CreditService) SeedDefaults(ctx context.Context, userID, userEmail, userName string, year int) error {
	for _, cat := range holiday.Categories {
		days := holiday.DefaultCredits[cat.ID]

		var expiresAt *string
		if cat.ID == holiday.CategoryPaidHoliday {
			fixed := paidHolidayExpiry(year)
			expiresAt = &fixed
		}

		credit := holiday.Credit{
			ID:            ident.New(ident.PrefixCredit),
			UserID:        userID,
			UserEmail:     userEmail,
			UserName:      userName,
			Year:          year,
			Category:      cat.ID,
			CategoryName:  cat.Name,
			TotalDays:     days,
			UsedDays:      0,
			RemainingDays: days,
			ExpiresAt:     expiresAt,
		}
		if _, err := s.CreditRepository.Create(ctx, credit); err != nil {
			return fmt.Errorf("failed to seed %s credit: %w", cat.ID, err)
		}
	}
	return nil
}

// BackfillPaidHolidayExpirations stamps the fixed expiration onto
// paid-holiday credits created before expirations existed.
func (s *CreditService) BackfillPaidHolidayExpirations(ctx context.Context) error {
	credits, err := s.CreditRepository.ListMissingPaidHolidayExpiration(ctx)
	if err != nil {
		return fmt.Errorf("failed to list credits missing expiration: %w", err)
	}

	for _, credit := range credits {
		fixed := paidHolidayExpiry(credit.Year)
		if err := s.CreditRepository.SetExpiration(ctx, credit.ID, &fixed); err != nil {
			return fmt.Errorf("failed to stamp expiration on %s: %w", credit.ID, err)
		}
	}
	return nil
}

// today is injectable for tests elsewhere; services use wall clock.
func today() string {
	return time.Now().Format("2006-01-02")
}
