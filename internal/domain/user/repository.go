package user

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, email, passwordHash string, confirmedAt *time.Time) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	FindByID(ctx context.Context, id string) (User, error)
}
