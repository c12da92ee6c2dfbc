package holiday

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/netsg-cyber/Holidays-app/internal/domain/holiday"
	"github.com/netsg-cyber/Holidays-app/internal/domain/user"
	"github.com/netsg-cyber/Holidays-app/internal/pkg/database"
	"github.com/netsg-cyber/Holidays-app/internal/pkg/ident"
	"github.com/netsg-cyber/Holidays-app/internal/pkg/workdays"
	"github.com/netsg-cyber/Holidays-app/internal/repository/postgresql"
)

type RequestService struct {
	db *database.DB
	holiday.RequestRepository
	creditRepo holiday.CreditRepository
	userRepo   user.UserRepository
	notifier   Notifier
	calendar   CalendarSync
}

func NewRequestService(
	db *database.DB,
	requestRepository holiday.RequestRepository,
	creditRepository holiday.CreditRepository,
	userRepository user.UserRepository,
	notifier Notifier,
	calendar CalendarSync,
) *RequestService {
	return &RequestService{
		db:                db,
		RequestRepository: requestRepository,
		creditRepo:        creditRepository,
		userRepo:          userRepository,
		notifier:          notifier,
		calendar:          calendar,
	}
}

// Create submits a leave request. The day count is recomputed
// server-side; client-supplied counts are ignored.
func (s *RequestService) Create(ctx context.Context, req holiday.CreateRequestRequest) (holiday.Request, error) {
	if err := req.Validate(); err != nil {
		return holiday.Request{}, err
	}

	requester, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return holiday.Request{}, err
	}

	days, err := workdays.BusinessDaysStrings(req.StartDate, req.EndDate)
	if err != nil {
		return holiday.Request{}, holiday.ErrInvalidDateRange
	}

	currentYear := time.Now().Year()
	credit, err := s.creditRepo.GetByUserYearCategory(ctx, req.UserID, currentYear, req.Category)
	if err != nil {
		if errors.Is(err, holiday.ErrCreditNotFound) {
			return holiday.Request{}, holiday.ErrNoCreditsAssigned
		}
		return holiday.Request{}, fmt.Errorf("failed to look up credit: %w", err)
	}
	if credit.RemainingDays < float64(days) {
		return holiday.Request{}, holiday.ErrInsufficientCredits
	}

	request := holiday.Request{
		ID:        ident.New(ident.PrefixRequest),
		UserID:    requester.ID,
		UserName:  requester.Name,
		UserEmail: requester.Email,
		Category:  req.Category,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		DaysCount: float64(days),
		Reason:    req.Reason,
		Status:    holiday.RequestStatusPending,
	}

	created, err := s.RequestRepository.Create(ctx, request)
	if err != nil {
		return holiday.Request{}, fmt.Errorf("failed to create request: %w", err)
	}

	s.notifier.RequestSubmitted(ctx, created)
	return created, nil
}

func (s *RequestService) MyRequests(ctx context.Context, userID string) ([]holiday.Request, error) {
	return s.RequestRepository.GetByUserID(ctx, userID)
}

// AllRequests lists every request, narrowed by the conjunctive filter.
func (s *RequestService) AllRequests(ctx context.Context, filter holiday.RequestFilter) ([]holiday.Request, error) {
	requests, err := s.RequestRepository.List(ctx)
	if err != nil {
		return nil, err
	}
	return holiday.FilterRequests(requests, filter), nil
}

func (s *RequestService) PendingRequests(ctx context.Context) ([]holiday.Request, error) {
	return s.RequestRepository.ListByStatus(ctx, holiday.RequestStatusPending)
}

// Approve transitions a pending request to approved, debits the
// current-year credit of its category and mirrors it to the calendar.
func (s *RequestService) Approve(ctx context.Context, req holiday.DecideRequestRequest) (holiday.Request, error) {
	if err := req.Validate(); err != nil {
		return holiday.Request{}, err
	}

	request, err := s.RequestRepository.GetByID(ctx, req.RequestID)
	if err != nil {
		return holiday.Request{}, err
	}
	if request.Status != holiday.RequestStatusPending {
		return holiday.Request{}, holiday.ErrRequestAlreadyProcessed
	}

	currentYear := time.Now().Year()
	credit, err := s.creditRepo.GetByUserYearCategory(ctx, request.UserID, currentYear, request.Category)
	if err != nil {
		if errors.Is(err, holiday.ErrCreditNotFound) {
			return holiday.Request{}, holiday.ErrNoCreditsAssigned
		}
		return holiday.Request{}, fmt.Errorf("failed to look up credit: %w", err)
	}

	categoryName := holiday.CategoryName(request.Category)
	eventID := s.calendar.CreateCalendarEvent(ctx,
		fmt.Sprintf("%s: %s", categoryName, request.UserName),
		request.Reason,
		request.StartDate,
		request.EndDate,
	)

	processedAt := time.Now()
	request.Status = holiday.RequestStatusApproved
	request.HRComment = req.HRComment
	request.ProcessedBy = &req.ActorID
	request.ProcessedAt = &processedAt
	request.CalendarEventID = eventID

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.creditRepo.Debit(txCtx, credit.ID, request.DaysCount); err != nil {
			return err
		}
		if err := s.RequestRepository.UpdateDecision(txCtx, request); err != nil {
			return fmt.Errorf("failed to update request: %w", err)
		}
		return nil
	})
	if err != nil {
		// Roll the stray calendar event back too.
		if eventID != nil {
			s.calendar.DeleteCalendarEvent(ctx, *eventID)
		}
		return holiday.Request{}, err
	}

	s.notifier.RequestDecided(ctx, request)
	return request, nil
}

// Reject transitions a pending request to rejected. No credit moves.
func (s *RequestService) Reject(ctx context.Context, req holiday.DecideRequestRequest) (holiday.Request, error) {
	if err := req.Validate(); err != nil {
		return holiday.Request{}, err
	}

	request, err := s.RequestRepository.GetByID(ctx, req.RequestID)
	if err != nil {
		return holiday.Request{}, err
	}
	if request.Status != holiday.RequestStatusPending {
		return holiday.Request{}, holiday.ErrRequestAlreadyProcessed
	}

	processedAt := time.Now()
	request.Status = holiday.RequestStatusRejected
	request.HRComment = req.HRComment
	request.ProcessedBy = &req.ActorID
	request.ProcessedAt = &processedAt

	if err := s.RequestRepository.UpdateDecision(ctx, request); err != nil {
		return holiday.Request{}, fmt.Errorf("failed to update request: %w", err)
	}

	s.notifier.RequestDecided(ctx, request)
	return request, nil
}
