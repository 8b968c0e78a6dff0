package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, email, passwordHash string, confirmedAt *time.Time) (User, error) {
	args := m.Called(ctx, email, passwordHash, confirmedAt)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockRepository) FindByEmail(ctx context.Context, email string) (User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id string) (User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(User), args.Error(1)
}

func TestService_Register(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, NewValidator(), false, slog.Default())

	now := time.Now()
	mockRepo.On("Create", mock.Anything, "a@b.co", mock.MatchedBy(func(hash string) bool {
		return hash != ""
	}), mock.Anything).Return(User{ID: "u1", Email: "a@b.co", EmailConfirmedAt: &now}, nil)

	u, requiresConfirmation, err := service.Register(context.Background(), "a@b.co", "secret123")
	assert.NoError(t, err)
	assert.False(t, requiresConfirmation)
	assert.Equal(t, "u1", u.ID)

	mockRepo.AssertExpectations(t)
}

func TestService_Register_ConfirmationRequired(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, NewValidator(), true, slog.Default())

	mockRepo.On("Create", mock.Anything, "a@b.co", mock.AnythingOfType("string"), (*time.Time)(nil)).
		Return(User{ID: "u1", Email: "a@b.co"}, nil)

	u, requiresConfirmation, err := service.Register(context.Background(), "a@b.co", "secret123")
	assert.NoError(t, err)
	assert.True(t, requiresConfirmation)
	assert.False(t, u.Confirmed())

	mockRepo.AssertExpectations(t)
}

func TestService_Register_InvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
	}{
		{name: "not an email", email: "nope", password: "secret123"},
		{name: "empty email", email: "", password: "secret123"},
		{name: "short password", email: "a@b.co", password: "123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			service := NewService(mockRepo, NewValidator(), false, slog.Default())

			_, _, err := service.Register(context.Background(), tt.email, tt.password)
			assert.ErrorIs(t, err, ErrInvalidInput)
			mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestService_Authenticate_Success(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, NewValidator(), false, slog.Default())

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	now := time.Now()
	u := User{ID: "u1", Email: "a@b.co", Password: string(hash), EmailConfirmedAt: &now}
	mockRepo.On("FindByEmail", mock.Anything, "a@b.co").Return(u, nil)

	got, err := service.Authenticate(context.Background(), "a@b.co", "secret123")
	assert.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	mockRepo.AssertExpectations(t)
}

func TestService_Authenticate_WrongPassword(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, NewValidator(), false, slog.Default())

	hash, err := bcrypt.GenerateFromPassword([]byte("correct"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	now := time.Now()
	mockRepo.On("FindByEmail", mock.Anything, "a@b.co").
		Return(User{ID: "u1", Password: string(hash), EmailConfirmedAt: &now}, nil)

	_, err = service.Authenticate(context.Background(), "a@b.co", "wrong")
	assert.ErrorIs(t, err, ErrInvalidAuth)
}

func TestService_Authenticate_UnknownUser(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, NewValidator(), false, slog.Default())

	mockRepo.On("FindByEmail", mock.Anything, "ghost@b.co").Return(User{}, errors.New("no rows"))

	_, err := service.Authenticate(context.Background(), "ghost@b.co", "whatever")
	assert.ErrorIs(t, err, ErrInvalidAuth)
}

func TestService_Authenticate_Unconfirmed(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, NewValidator(), true, slog.Default())

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	mockRepo.On("FindByEmail", mock.Anything, "a@b.co").
		Return(User{ID: "u1", Password: string(hash)}, nil)

	_, err = service.Authenticate(context.Background(), "a@b.co", "secret123")
	assert.ErrorIs(t, err, ErrNotConfirmed)
}
