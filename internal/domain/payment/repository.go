package payment

import "context"

type Repository interface {
	Insert(ctx context.Context, p Payment) error
	UpdateStatus(ctx context.Context, paymentID string, status Status) error
	Find(ctx context.Context, paymentID string) (Payment, error)
}

// Provider mints hosted payment links with a third-party payments service.
type Provider interface {
	CreateLink(ctx context.Context, req LinkRequest) (Link, error)
}
