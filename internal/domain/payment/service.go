package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	CreateLink(ctx context.Context, userID, email, productID string, amount int64, currency string) (Payment, string, error)
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
}

type Service struct {
	repo          Repository
	provider      Provider
	webhookSecret string
	log           *slog.Logger
}

func NewService(repo Repository, provider Provider, webhookSecret string, log *slog.Logger) *Service {
	return &Service{
		repo:          repo,
		provider:      provider,
		webhookSecret: webhookSecret,
		log:           log.With("component", "payment_service"),
	}
}

// CreateLink asks the provider for a hosted payment link and persists a
// pending record keyed by the provider's payment id.
func (s *Service) CreateLink(ctx context.Context, userID, email, productID string, amount int64, currency string) (Payment, string, error) {
	if productID == "" || amount <= 0 || currency == "" {
		return Payment{}, "", ErrInvalidInput
	}

	link, err := s.provider.CreateLink(ctx, LinkRequest{
		ProductID:     productID,
		Amount:        amount,
		Currency:      currency,
		CustomerEmail: email,
	})
	if err != nil {
		s.log.Error("payment link creation failed", "user_id", userID, "error", err)
		return Payment{}, "", fmt.Errorf("create payment link: %w", err)
	}

	p := Payment{
		ID:        link.PaymentID,
		UserID:    userID,
		ProductID: productID,
		Amount:    amount,
		Currency:  currency,
		Status:    StatusPending,
	}

	if err := s.repo.Insert(ctx, p); err != nil {
		return Payment{}, "", fmt.Errorf("insert payment: %w", err)
	}

	s.log.Info("payment link created", "payment_id", p.ID, "user_id", userID)
	return p, link.URL, nil
}

// HandleWebhook verifies the provider signature over the raw payload and
// transitions the matching record. Events for unknown payments are
// acknowledged so the provider stops retrying them.
func (s *Service) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	if !VerifySignature(s.webhookSecret, payload, signature) {
		return ErrBadSignature
	}

	var event Event
	if err := json.Unmarshal(payload, &event); err != nil {
		return fmt.Errorf("decode webhook payload: %w", err)
	}

	var status Status
	switch event.Type {
	case "payment.succeeded":
		status = StatusCompleted
	case "payment.failed", "payment.cancelled":
		status = StatusFailed
	default:
		s.log.Debug("ignoring webhook event", "type", event.Type)
		return nil
	}

	if err := s.repo.UpdateStatus(ctx, event.Data.PaymentID, status); err != nil {
		if errors.Is(err, ErrNotFound) {
			s.log.Warn("webhook for unknown payment", "payment_id", event.Data.PaymentID)
			return nil
		}
		return fmt.Errorf("update payment status: %w", err)
	}

	s.log.Info("payment status updated", "payment_id", event.Data.PaymentID, "status", status)
	return nil
}

// VerifySignature checks an HMAC-SHA256 hex signature over the raw payload
// in constant time.
func VerifySignature(secret string, payload []byte, signature string) bool {
	if signature == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
