package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/exp/slog"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, userID, tokenHash string, expiresAt time.Time) error {
	args := m.Called(ctx, userID, tokenHash, expiresAt)
	return args.Error(0)
}

func (m *MockRepository) Validate(ctx context.Context, tokenHash string) (string, time.Time, error) {
	args := m.Called(ctx, tokenHash)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockRepository) Delete(ctx context.Context, tokenHash string) error {
	args := m.Called(ctx, tokenHash)
	return args.Error(0)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, tokenHash string) (string, bool, error) {
	args := m.Called(ctx, tokenHash)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockCache) Set(ctx context.Context, tokenHash, userID string, ttl time.Duration) error {
	args := m.Called(ctx, tokenHash, userID, ttl)
	return args.Error(0)
}

func (m *MockCache) Del(ctx context.Context, tokenHash string) error {
	args := m.Called(ctx, tokenHash)
	return args.Error(0)
}

func TestService_CreateAndValidate(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, nil, slog.Default())

	var storedHash string
	mockRepo.On("Create", mock.Anything, "u1", mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
		Run(func(args mock.Arguments) { storedHash = args.String(2) }).
		Return(nil)

	token, err := service.Create(context.Background(), "u1")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	// Raw token never equals what went to storage.
	assert.NotEqual(t, token, storedHash)

	mockRepo.On("Validate", mock.Anything, storedHash).
		Return("u1", time.Now().Add(time.Hour), nil)

	userID, err := service.Validate(context.Background(), token)
	assert.NoError(t, err)
	assert.Equal(t, "u1", userID)

	mockRepo.AssertExpectations(t)
}

func TestService_Validate_CacheHitSkipsRepository(t *testing.T) {
	mockRepo := new(MockRepository)
	mockCache := new(MockCache)
	service := NewService(mockRepo, mockCache, slog.Default())

	mockCache.On("Get", mock.Anything, mock.AnythingOfType("string")).Return("u1", true, nil)

	userID, err := service.Validate(context.Background(), "some-token")
	assert.NoError(t, err)
	assert.Equal(t, "u1", userID)

	mockRepo.AssertNotCalled(t, "Validate", mock.Anything, mock.Anything)
	mockCache.AssertExpectations(t)
}

func TestService_Validate_CacheMissFallsThrough(t *testing.T) {
	mockRepo := new(MockRepository)
	mockCache := new(MockCache)
	service := NewService(mockRepo, mockCache, slog.Default())

	mockCache.On("Get", mock.Anything, mock.AnythingOfType("string")).Return("", false, nil)
	mockRepo.On("Validate", mock.Anything, mock.AnythingOfType("string")).
		Return("u1", time.Now().Add(sessionTTL), nil)
	mockCache.On("Set", mock.Anything, mock.AnythingOfType("string"), "u1", mock.AnythingOfType("time.Duration")).
		Run(func(args mock.Arguments) {
			assert.Equal(t, maxCacheTTL, args.Get(3).(time.Duration))
		}).
		Return(nil)

	userID, err := service.Validate(context.Background(), "some-token")
	assert.NoError(t, err)
	assert.Equal(t, "u1", userID)

	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestService_Validate_CacheTTLCappedByExpiry(t *testing.T) {
	mockRepo := new(MockRepository)
	mockCache := new(MockCache)
	service := NewService(mockRepo, mockCache, slog.Default())

	// The session dies in ten seconds. The cache entry must not outlive it.
	remaining := 10 * time.Second
	mockCache.On("Get", mock.Anything, mock.AnythingOfType("string")).Return("", false, nil)
	mockRepo.On("Validate", mock.Anything, mock.AnythingOfType("string")).
		Return("u1", time.Now().Add(remaining), nil)
	mockCache.On("Set", mock.Anything, mock.AnythingOfType("string"), "u1", mock.AnythingOfType("time.Duration")).
		Run(func(args mock.Arguments) {
			ttl := args.Get(3).(time.Duration)
			assert.LessOrEqual(t, ttl, remaining)
			assert.Greater(t, ttl, time.Duration(0))
		}).
		Return(nil)

	userID, err := service.Validate(context.Background(), "some-token")
	assert.NoError(t, err)
	assert.Equal(t, "u1", userID)

	mockCache.AssertExpectations(t)
}

func TestService_Validate_ExpiredSessionNotCached(t *testing.T) {
	mockRepo := new(MockRepository)
	mockCache := new(MockCache)
	service := NewService(mockRepo, mockCache, slog.Default())

	mockCache.On("Get", mock.Anything, mock.AnythingOfType("string")).Return("", false, nil)
	mockRepo.On("Validate", mock.Anything, mock.AnythingOfType("string")).
		Return("u1", time.Now().Add(-time.Minute), nil)

	_, err := service.Validate(context.Background(), "some-token")
	assert.NoError(t, err)

	mockCache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Validate_InvalidToken(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, nil, slog.Default())

	mockRepo.On("Validate", mock.Anything, mock.AnythingOfType("string")).Return("", time.Time{}, errors.New("no rows"))

	_, err := service.Validate(context.Background(), "expired-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_Revoke_EvictsCacheBeforeRow(t *testing.T) {
	mockRepo := new(MockRepository)
	mockCache := new(MockCache)
	service := NewService(mockRepo, mockCache, slog.Default())

	mockCache.On("Del", mock.Anything, mock.AnythingOfType("string")).Return(nil)
	mockRepo.On("Delete", mock.Anything, mock.AnythingOfType("string")).Return(nil)

	err := service.Revoke(context.Background(), "some-token")
	assert.NoError(t, err)

	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}
