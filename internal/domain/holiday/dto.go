package holiday

import "github.com/netsg-cyber/Holidays-app/internal/pkg/validator"

type CreateRequestRequest struct {
	UserID    string `json:"-"`
	Category  string `json:"category"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

func (r *CreateRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Category == "" {
		r.Category = CategoryPaidHoliday
	}
	if !IsValidCategory(r.Category) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category is not a known holiday category",
		})
	}

	startDate, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a YYYY-MM-DD date",
		})
	}
	endDate, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a YYYY-MM-DD date",
		})
	}
	if startOK && endOK && endDate.Before(startDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DecideRequestRequest struct {
	RequestID string
	ActorID   string
	HRComment *string
}

func (r *DecideRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RequestID) {
		errs = append(errs, validator.ValidationError{
			Field:   "request_id",
			Message: "request_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CreateCreditRequest struct {
	UserID    string  `json:"user_id"`
	Year      int     `json:"year"`
	Category  string  `json:"category"`
	TotalDays float64 `json:"total_days"`
	ExpiresAt *string `json:"expires_at,omitempty"`
}

func (r *CreateCreditRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if r.Year <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be a positive integer",
		})
	}

	if r.Category == "" {
		r.Category = CategoryPaidHoliday
	}
	if !IsValidCategory(r.Category) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category is not a known holiday category",
		})
	}

	if r.TotalDays < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "total_days",
			Message: "total_days must not be negative",
		})
	}

	if r.ExpiresAt != nil && *r.ExpiresAt != "" {
		if _, ok := validator.IsValidDate(*r.ExpiresAt); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "expires_at",
				Message: "expires_at must be a YYYY-MM-DD date",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AdjustCreditRequest struct {
	UserID     string  `json:"user_id"`
	Year       int     `json:"year"`
	Category   string  `json:"category"`
	Adjustment float64 `json:"adjustment"` // signed: positive adds days, negative reduces
	Reason     string  `json:"reason"`
}

func (r *AdjustCreditRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if r.Year <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be a positive integer",
		})
	}

	if !IsValidCategory(r.Category) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category is not a known holiday category",
		})
	}

	if r.Adjustment == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "adjustment",
			Message: "adjustment must not be zero",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// AdjustCreditResponse echoes the post-adjustment balance.
type AdjustCreditResponse struct {
	NewRemaining float64 `json:"new_remaining"`
	NewUsed      float64 `json:"new_used"`
	NewTotal     float64 `json:"new_total"`
}

type SetExpirationRequest struct {
	UserID    string  `json:"user_id"`
	Year      int     `json:"year"`
	Category  string  `json:"category"`
	ExpiresAt *string `json:"expires_at"` // nil clears the expiration
}

func (r *SetExpirationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if r.Year <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be a positive integer",
		})
	}

	if !IsValidCategory(r.Category) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category is not a known holiday category",
		})
	}

	if r.ExpiresAt != nil && *r.ExpiresAt != "" {
		if _, ok := validator.IsValidDate(*r.ExpiresAt); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "expires_at",
				Message: "expires_at must be a YYYY-MM-DD date",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CreatePublicHolidayRequest struct {
	Name string `json:"name"`
	Date string `json:"date"`
	Year int    `json:"year"`
}

func (r *CreatePublicHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	date, ok := validator.IsValidDate(r.Date)
	if !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be a YYYY-MM-DD date",
		})
	} else if r.Year == 0 {
		r.Year = date.Year()
	}

	if r.Year <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be a positive integer",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
