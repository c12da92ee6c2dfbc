package holiday

import "errors"

var (
	ErrRequestNotFound         = errors.New("Request not found")
	ErrRequestAlreadyProcessed = errors.New("Request already processed")
	ErrInsufficientCredits     = errors.New("Insufficient credits")
	ErrCreditNotFound          = errors.New("Credit not found for this user/year/category")
	ErrNoCreditsAssigned       = errors.New("No credits assigned for this category")
	ErrInvalidCategory         = errors.New("Invalid holiday category")
	ErrInvalidDateRange        = errors.New("End date must not be before start date")
	ErrFixedExpiration         = errors.New("Paid holiday expiration is fixed and cannot be changed")
	ErrExcessiveReduction      = errors.New("Cannot reduce more than available")
	ErrHolidayNotFound         = errors.New("Holiday not found")
)
