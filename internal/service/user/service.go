package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/netsg-cyber/Holidays-app/internal/domain/auth"
	"github.com/netsg-cyber/Holidays-app/internal/domain/holiday"
	"github.com/netsg-cyber/Holidays-app/internal/domain/user"
	"github.com/netsg-cyber/Holidays-app/internal/pkg/database"
	"github.com/netsg-cyber/Holidays-app/internal/pkg/ident"
	"github.com/netsg-cyber/Holidays-app/internal/repository/postgresql"
)

type Service struct {
	db *database.DB
	user.UserRepository
	creditRepo  holiday.CreditRepository
	requestRepo holiday.RequestRepository
	sessionRepo auth.SessionRepository
	credits     holiday.CreditService
}

func NewService(
	db *database.DB,
	userRepository user.UserRepository,
	creditRepository holiday.CreditRepository,
	requestRepository holiday.RequestRepository,
	sessionRepository auth.SessionRepository,
	creditService holiday.CreditService,
) *Service {
	return &Service{
		db:             db,
		UserRepository: userRepository,
		creditRepo:     creditRepository,
		requestRepo:    requestRepository,
		sessionRepo:    sessionRepository,
		credits:        creditService,
	}
}

// Create adds a user by hand (HR flow) and seeds default credits for
// the current year.
func (s *Service) Create(ctx context.Context, req user.CreateUserRequest) (user.User, error) {
	if err := req.Validate(); err != nil {
		return user.User{}, err
	}

	if _, err := s.UserRepository.GetByEmail(ctx, req.Email); err == nil {
		return user.User{}, user.ErrEmailExists
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return user.User{}, fmt.Errorf("failed to look up user: %w", err)
	}

	newUser := user.User{
		ID:    ident.New(ident.PrefixUser),
		Email: req.Email,
		Name:  req.Name,
		Role:  user.Role(req.Role),
	}

	var created user.User
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		created, err = s.UserRepository.Create(txCtx, newUser)
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}

		return s.credits.SeedDefaults(txCtx, created.ID, created.Email, created.Name, time.Now().Year())
	})
	if err != nil {
		return user.User{}, err
	}

	return created, nil
}

func (s *Service) List(ctx context.Context) ([]user.User, error) {
	return s.UserRepository.List(ctx)
}

func (s *Service) UpdateRole(ctx context.Context, req user.UpdateRoleRequest) (user.User, error) {
	if err := req.Validate(); err != nil {
		return user.User{}, err
	}
	return s.UserRepository.UpdateRole(ctx, req.UserID, user.Role(req.Role))
}

// Delete removes a user and everything tied to them. Self-deletion is
// rejected so HR cannot lock themselves out.
func (s *Service) Delete(ctx context.Context, actorID, targetID string) error {
	if actorID == targetID {
		return user.ErrSelfDeletion
	}

	if _, err := s.UserRepository.GetByID(ctx, targetID); err != nil {
		return err
	}

	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.requestRepo.DeleteByUserID(txCtx, targetID); err != nil {
			return fmt.Errorf("failed to delete requests: %w", err)
		}
		if err := s.creditRepo.DeleteByUserID(txCtx, targetID); err != nil {
			return fmt.Errorf("failed to delete credits: %w", err)
		}
		if err := s.sessionRepo.DeleteByUserID(txCtx, targetID); err != nil {
			return fmt.Errorf("failed to delete sessions: %w", err)
		}
		return s.UserRepository.Delete(txCtx, targetID)
	})
	if err != nil {
		return err
	}

	slog.Info("User deleted", "user_id", targetID, "deleted_by", actorID)
	return nil
}
