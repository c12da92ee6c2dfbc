package cron

import (
	"context"
	"time"

	"github.com/netsg-cyber/Holidays-app/internal/domain/auth"
	"github.com/netsg-cyber/Holidays-app/internal/domain/holiday"
)

// MaintenanceJobs contains recurring housekeeping jobs
type MaintenanceJobs struct {
	authService   auth.AuthService
	creditService holiday.CreditService
}

// NewMaintenanceJobs creates the housekeeping cron jobs
func NewMaintenanceJobs(authService auth.AuthService, creditService holiday.CreditService) *MaintenanceJobs {
	return &MaintenanceJobs{
		authService:   authService,
		creditService: creditService,
	}
}

// RegisterJobs registers all housekeeping cron jobs
func (j *MaintenanceJobs) RegisterJobs(scheduler *Scheduler) {
	// Remove expired sessions every hour
	scheduler.AddJob(
		"cleanup_expired_sessions",
		1*time.Hour,
		j.CleanupExpiredSessions,
	)

	// Stamp missing paid-holiday expiration dates every 6 hours
	scheduler.AddJob(
		"backfill_paid_holiday_expirations",
		6*time.Hour,
		j.BackfillPaidHolidayExpirations,
	)
}

// CleanupExpiredSessions deletes sessions past their expiry
func (j *MaintenanceJobs) CleanupExpiredSessions(ctx context.Context) error {
	return j.authService.CleanupExpired(ctx)
}

// BackfillPaidHolidayExpirations stamps the fixed July 31 expiration
// onto paid-holiday credits that are missing one
func (j *MaintenanceJobs) BackfillPaidHolidayExpirations(ctx context.Context) error {
	return j.creditService.BackfillPaidHolidayExpirations(ctx)
}
