package user

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

type Servicer interface {
	// Register creates an account. When confirmation is required the returned
	// flag is true and the account stays unusable until the email is confirmed.
	Register(ctx context.Context, email, password string) (User, bool, error)
	Authenticate(ctx context.Context, email, password string) (User, error)
	FindByID(ctx context.Context, id string) (User, error)
}

type Service struct {
	repo                Repository
	validator           Validator
	requireConfirmation bool
	log                 *slog.Logger
}

func NewService(repo Repository, validator Validator, requireConfirmation bool, log *slog.Logger) *Service {
	return &Service{
		repo:                repo,
		validator:           validator,
		requireConfirmation: requireConfirmation,
		log:                 log.With("component", "user_service"),
	}
}

func (s *Service) Register(ctx context.Context, email, password string) (User, bool, error) {
	if err := s.validator.ValidateSignup(email, password); err != nil {
		s.log.Debug("signup validation failed", "email", email, "error", err)
		return User{}, false, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, false, fmt.Errorf("hash password: %w", err)
	}

	var confirmedAt *time.Time
	if !s.requireConfirmation {
		now := time.Now()
		confirmedAt = &now
	}

	u, err := s.repo.Create(ctx, email, string(hash), confirmedAt)
	if err != nil {
		return User{}, false, err
	}

	s.log.Info("user registered", "user_id", u.ID, "requires_confirmation", s.requireConfirmation)
	return u, s.requireConfirmation, nil
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (User, error) {
	if err := s.validator.ValidateLogin(email); err != nil {
		return User{}, ErrInvalidAuth
	}

	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return User{}, ErrInvalidAuth
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return User{}, ErrInvalidAuth
	}

	if !u.Confirmed() {
		return User{}, ErrNotConfirmed
	}

	return u, nil
}

func (s *Service) FindByID(ctx context.Context, id string) (User, error) {
	return s.repo.FindByID(ctx, id)
}
