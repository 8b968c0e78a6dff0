package payment

import (
	"context"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/exp/slog"

	"notekeeper/internal/app/server/api/http/middleware/auth"
	"notekeeper/internal/domain/payment"
	"notekeeper/internal/domain/user"
)

type MockServicer struct {
	mock.Mock
}

func (m *MockServicer) CreateLink(ctx context.Context, userID, email, productID string, amount int64, currency string) (payment.Payment, string, error) {
	args := m.Called(ctx, userID, email, productID, amount, currency)
	return args.Get(0).(payment.Payment), args.String(1), args.Error(2)
}

func (m *MockServicer) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	args := m.Called(ctx, payload, signature)
	return args.Error(0)
}

type MockUserServicer struct {
	mock.Mock
}

func (m *MockUserServicer) Register(ctx context.Context, email, password string) (user.User, bool, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(user.User), args.Bool(1), args.Error(2)
}

func (m *MockUserServicer) Authenticate(ctx context.Context, email, password string) (user.User, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *MockUserServicer) FindByID(ctx context.Context, id string) (user.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(user.User), args.Error(1)
}

func TestHandler_create(t *testing.T) {
	service := new(MockServicer)
	users := new(MockUserServicer)
	handler := NewHandler(service, users, slog.Default(), huma.Middlewares{}, huma.Middlewares{})

	users.On("FindByID", mock.Anything, "user-1").
		Return(user.User{ID: "user-1", Email: "payer@example.com"}, nil)
	service.On("CreateLink", mock.Anything, "user-1", "payer@example.com", "pro-plan", int64(990), "USD").
		Return(payment.Payment{ID: "pay-1", Status: payment.StatusPending}, "https://checkout.example.com/pay-1", nil)

	ctx := context.WithValue(context.Background(), auth.UserIDKey, "user-1")
	output, err := handler.create(ctx, &createInput{
		Body: CreateRequest{ProductID: "pro-plan", Amount: 990, Currency: "USD"},
	})

	assert.NoError(t, err)
	assert.Equal(t, "pay-1", output.Body.PaymentID)
	assert.Equal(t, "https://checkout.example.com/pay-1", output.Body.URL)
}

func TestHandler_webhook_prefersPrimaryHeader(t *testing.T) {
	service := new(MockServicer)
	handler := NewHandler(service, new(MockUserServicer), slog.Default(), huma.Middlewares{}, huma.Middlewares{})

	payload := []byte(`{"type":"payment.succeeded","data":{"payment_id":"pay-1"}}`)
	service.On("HandleWebhook", mock.Anything, payload, "sig-a").Return(nil)

	output, err := handler.webhook(context.Background(), &webhookInput{
		DodoSignature:  "sig-a",
		XDodoSignature: "sig-b",
		RawBody:        payload,
	})

	assert.NoError(t, err)
	assert.True(t, output.Body.Received)
	service.AssertExpectations(t)
}

func TestHandler_webhook_badSignature(t *testing.T) {
	service := new(MockServicer)
	handler := NewHandler(service, new(MockUserServicer), slog.Default(), huma.Middlewares{}, huma.Middlewares{})

	service.On("HandleWebhook", mock.Anything, mock.Anything, "bad").
		Return(payment.ErrBadSignature)

	_, err := handler.webhook(context.Background(), &webhookInput{
		XDodoSignature: "bad",
		RawBody:        []byte(`{}`),
	})

	var statusErr huma.StatusError
	assert.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 401, statusErr.GetStatus())
}
