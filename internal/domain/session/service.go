package session

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/slog"
)

const (
	sessionTTL  = 7 * 24 * time.Hour
	maxCacheTTL = time.Hour
)

var ErrInvalidToken = errors.New("invalid session")

type Servicer interface {
	Create(ctx context.Context, userID string) (string, error)
	Validate(ctx context.Context, token string) (string, error)
	Revoke(ctx context.Context, token string) error
}

type Service struct {
	repo  Repository
	cache Cache
	log   *slog.Logger
}

func NewService(repo Repository, cache Cache, log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
		log:   log.With("component", "session_service"),
	}
}

// Create issues an opaque bearer token. Only its sha256 hash is stored.
func (s *Service) Create(ctx context.Context, userID string) (string, error) {
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}

	token := base64.URLEncoding.EncodeToString(tokenBytes)
	hash := hashToken(token)

	expiresAt := time.Now().Add(sessionTTL)
	if err := s.repo.Create(ctx, userID, hash, expiresAt); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}

	s.cacheSession(ctx, hash, userID, expiresAt)

	return token, nil
}

func (s *Service) Validate(ctx context.Context, token string) (string, error) {
	hash := hashToken(token)

	if s.cache != nil {
		userID, ok, err := s.cache.Get(ctx, hash)
		if err != nil {
			s.log.Warn("session cache get failed", "error", err)
		} else if ok {
			return userID, nil
		}
	}

	userID, expiresAt, err := s.repo.Validate(ctx, hash)
	if err != nil {
		return "", ErrInvalidToken
	}

	s.cacheSession(ctx, hash, userID, expiresAt)

	return userID, nil
}

// cacheSession stores the token lookup for at most maxCacheTTL, never past
// the session row's own expiry.
func (s *Service) cacheSession(ctx context.Context, hash, userID string, expiresAt time.Time) {
	if s.cache == nil {
		return
	}

	ttl := time.Until(expiresAt)
	if ttl > maxCacheTTL {
		ttl = maxCacheTTL
	}
	if ttl <= 0 {
		return
	}

	if err := s.cache.Set(ctx, hash, userID, ttl); err != nil {
		s.log.Warn("session cache set failed", "error", err)
	}
}

// Revoke kills the session server-side. The cache entry goes first so a
// cached lookup cannot outlive the row.
func (s *Service) Revoke(ctx context.Context, token string) error {
	hash := hashToken(token)

	if s.cache != nil {
		if err := s.cache.Del(ctx, hash); err != nil {
			s.log.Warn("session cache del failed", "error", err)
		}
	}

	return s.repo.Delete(ctx, hash)
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
