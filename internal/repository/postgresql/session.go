package postgresql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/netsg-cyber/Holidays-app/internal/domain/auth"
	"github.com/netsg-cyber/Holidays-app/internal/pkg/database"
)

type sessionRepositoryImpl struct {
	db *database.DB
}

func NewSessionRepository(db *database.DB) auth.SessionRepository {
	return &sessionRepositoryImpl{db: db}
}

// Create implements auth.SessionRepository.
func (r *sessionRepositoryImpl) Create(ctx context.Context, session auth.Session) (auth.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO sessions (id, user_id, token_id, expires_at, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, user_id, token_id, expires_at, created_at
	`

	var created auth.Session
	err := q.QueryRow(ctx, query,
		session.ID,
		session.UserID,
		session.TokenID,
		session.ExpiresAt,
	).Scan(
		&created.ID,
		&created.UserID,
		&created.TokenID,
		&created.ExpiresAt,
		&created.CreatedAt,
	)
	if err != nil {
		return auth.Session{}, err
	}

	return created, nil
}

// GetByTokenID implements auth.SessionRepository.
func (r *sessionRepositoryImpl) GetByTokenID(ctx context.Context, tokenID string) (auth.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, token_id, expires_at, created_at
		FROM sessions
		WHERE token_id = $1
	`

	var session auth.Session
	err := q.QueryRow(ctx, query, tokenID).Scan(
		&session.ID,
		&session.UserID,
		&session.TokenID,
		&session.ExpiresAt,
		&session.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return auth.Session{}, auth.ErrSessionNotFound
		}
		return auth.Session{}, err
	}

	return session, nil
}

// DeleteByTokenID implements auth.SessionRepository.
func (r *sessionRepositoryImpl) DeleteByTokenID(ctx context.Context, tokenID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM sessions WHERE token_id = $1`, tokenID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return auth.ErrSessionNotFound
	}
	return nil
}

// DeleteByUserID implements auth.SessionRepository.
func (r *sessionRepositoryImpl) DeleteByUserID(ctx context.Context, userID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM sessions WHERE user_id = $1`, userID)
	return err
}

// DeleteExpired implements auth.SessionRepository.
func (r *sessionRepositoryImpl) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM sessions WHERE expires_at < $1`, now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
