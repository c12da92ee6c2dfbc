package notification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/netsg-cyber/Holidays-app/internal/domain/holiday"
	"github.com/netsg-cyber/Holidays-app/internal/domain/user"
	"github.com/netsg-cyber/Holidays-app/internal/pkg/sse"
	"github.com/netsg-cyber/Holidays-app/internal/service/integration"
)

// SSE event names pushed on the notifications stream.
const (
	EventRequestSubmitted = "request_submitted"
	EventRequestDecided   = "request_decided"
)

// Service fans holiday events out to email (through the Google
// integration) and to the SSE stream. Everything here is best effort:
// a failed notification is logged, never propagated.
type Service struct {
	google   *integration.GoogleIntegration
	userRepo user.UserRepository
	hub      *sse.Hub
}

func NewService(google *integration.GoogleIntegration, userRepo user.UserRepository, hub *sse.Hub) *Service {
	return &Service{
		google:   google,
		userRepo: userRepo,
		hub:      hub,
	}
}

// RequestSubmitted notifies every HR user about a new pending request.
func (s *Service) RequestSubmitted(ctx context.Context, req holiday.Request) {
	categoryName := holiday.CategoryName(req.Category)

	hrUsers, err := s.userRepo.ListByRole(ctx, user.RoleHR)
	if err != nil {
		slog.Error("Failed to list HR users for notification", "error", err)
		return
	}

	subject := fmt.Sprintf("New %s Request from %s", categoryName, req.UserName)
	body := fmt.Sprintf(`
		<h2>New Holiday Request</h2>
		<p><strong>Employee:</strong> %s</p>
		<p><strong>Category:</strong> %s</p>
		<p><strong>Dates:</strong> %s to %s</p>
		<p><strong>Days:</strong> %g</p>
		<p><strong>Reason:</strong> %s</p>
		<p>Please review this request in the Holiday Management System.</p>`,
		req.UserName, categoryName, req.StartDate, req.EndDate, req.DaysCount, req.Reason)

	for _, hr := range hrUsers {
		if err := s.google.SendEmail(ctx, hr.Email, subject, body); err != nil {
			slog.Error("Failed to email HR about new request", "to", hr.Email, "error", err)
		}
		s.hub.Publish(hr.ID, sse.Event{
			UserID: hr.ID,
			Event:  EventRequestSubmitted,
			Data:   req,
		})
	}
}

// RequestDecided notifies the requester that their request was
// approved or rejected.
func (s *Service) RequestDecided(ctx context.Context, req holiday.Request) {
	categoryName := holiday.CategoryName(req.Category)

	var subject, body string
	switch req.Status {
	case holiday.RequestStatusApproved:
		subject = fmt.Sprintf("%s Request Approved", categoryName)
		body = fmt.Sprintf(`
			<h2>Holiday Request Approved</h2>
			<p>Your %s request from %s to %s has been approved.</p>
			%s`,
			categoryName, req.StartDate, req.EndDate, commentLine(req.HRComment))
	case holiday.RequestStatusRejected:
		subject = fmt.Sprintf("%s Request Rejected", categoryName)
		body = fmt.Sprintf(`
			<h2>Holiday Request Rejected</h2>
			<p>Your %s request from %s to %s has been rejected.</p>
			%s`,
			categoryName, req.StartDate, req.EndDate, commentLine(req.HRComment))
	default:
		return
	}

	if err := s.google.SendEmail(ctx, req.UserEmail, subject, body); err != nil {
		slog.Error("Failed to email requester about decision", "to", req.UserEmail, "error", err)
	}
	s.hub.Publish(req.UserID, sse.Event{
		UserID: req.UserID,
		Event:  EventRequestDecided,
		Data:   req,
	})
}

// CreditAssigned notifies the employee that a credit was created or
// its total replaced.
func (s *Service) CreditAssigned(ctx context.Context, credit holiday.Credit) {
	categoryName := holiday.CategoryName(credit.Category)

	subject := fmt.Sprintf("%s Credits Updated for %d", categoryName, credit.Year)
	body := fmt.Sprintf(`
		<h2>%s Credits Updated</h2>
		<p>Your %s credits for %d have been set to %g days.</p>
		<p><strong>Remaining:</strong> %g days</p>`,
		categoryName, categoryName, credit.Year, credit.TotalDays, credit.RemainingDays)

	if err := s.google.SendEmail(ctx, credit.UserEmail, subject, body); err != nil {
		slog.Error("Failed to email employee about credit assignment", "to", credit.UserEmail, "error", err)
	}
}

// CreditAdjusted notifies the employee about a signed balance change.
func (s *Service) CreditAdjusted(ctx context.Context, credit holiday.Credit, adjustment float64, reason string) {
	categoryName := holiday.CategoryName(credit.Category)

	action := "increased"
	if adjustment < 0 {
		action = "reduced"
	}
	amount := adjustment
	if amount < 0 {
		amount = -amount
	}

	subject := fmt.Sprintf("%s Credits Adjusted for %d", categoryName, credit.Year)
	body := fmt.Sprintf(`
		<h2>%s Credits Adjusted</h2>
		<p>Your %s credits for %d have been %s by %g day(s).</p>
		<p><strong>New Balance:</strong> %g days remaining</p>
		%s`,
		categoryName, categoryName, credit.Year, action, amount, credit.RemainingDays, reasonLine(reason))

	if err := s.google.SendEmail(ctx, credit.UserEmail, subject, body); err != nil {
		slog.Error("Failed to email employee about credit adjustment", "to", credit.UserEmail, "error", err)
	}
}

func commentLine(comment *string) string {
	if comment == nil || *comment == "" {
		return ""
	}
	return fmt.Sprintf("<p><strong>HR Comment:</strong> %s</p>", *comment)
}

func reasonLine(reason string) string {
	if reason == "" {
		return ""
	}
	return fmt.Sprintf("<p><strong>Reason:</strong> %s</p>", reason)
}
