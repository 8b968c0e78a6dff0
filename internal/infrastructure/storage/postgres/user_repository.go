package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"notekeeper/internal/domain/user"
)

const uniqueViolation = "23505"

type UserRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewUserRepository(pool *pgxpool.Pool, log *slog.Logger) *UserRepository {
	return &UserRepository{
		pool: pool,
		log:  log.With("component", "user_repository"),
	}
}

func (r *UserRepository) Create(ctx context.Context, email, passwordHash string, confirmedAt *time.Time) (user.User, error) {
	const query = `
		INSERT INTO users (email, password_hash, email_confirmed_at)
		VALUES ($1, $2, $3)
		RETURNING id, email, email_confirmed_at, created_at`

	var u user.User
	err := r.pool.QueryRow(ctx, query, email, passwordHash, confirmedAt).
		Scan(&u.ID, &u.Email, &u.EmailConfirmedAt, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return user.User{}, user.ErrEmailTaken
		}
		r.log.Error("failed to create user", "error", err)
		return user.User{}, fmt.Errorf("create user: %w", err)
	}

	return u, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (user.User, error) {
	const query = `
		SELECT id, email, password_hash, email_confirmed_at, created_at
		FROM users WHERE email = $1`

	var u user.User
	err := r.pool.QueryRow(ctx, query, email).
		Scan(&u.ID, &u.Email, &u.Password, &u.EmailConfirmedAt, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, fmt.Errorf("find user by email: %w", err)
	}

	return u, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (user.User, error) {
	const query = `
		SELECT id, email, password_hash, email_confirmed_at, created_at
		FROM users WHERE id = $1`

	var u user.User
	err := r.pool.QueryRow(ctx, query, id).
		Scan(&u.ID, &u.Email, &u.Password, &u.EmailConfirmedAt, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, fmt.Errorf("find user by id: %w", err)
	}

	return u, nil
}
