package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"notekeeper/internal/domain/payment"
)

type PaymentRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewPaymentRepository(pool *pgxpool.Pool, log *slog.Logger) *PaymentRepository {
	return &PaymentRepository{
		pool: pool,
		log:  log.With("component", "payment_repository"),
	}
}

func (r *PaymentRepository) Insert(ctx context.Context, p payment.Payment) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO payments (id, user_id, product_id, amount, currency, status)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		p.ID, p.UserID, p.ProductID, p.Amount, p.Currency, p.Status)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

func (r *PaymentRepository) UpdateStatus(ctx context.Context, paymentID string, status payment.Status) error {
	ct, err := r.pool.Exec(ctx,
		`UPDATE payments SET status = $2, updated_at = NOW() WHERE id = $1`,
		paymentID, status)
	if err != nil {
		return fmt.Errorf("update payment: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return payment.ErrNotFound
	}
	return nil
}

func (r *PaymentRepository) Find(ctx context.Context, paymentID string) (payment.Payment, error) {
	var p payment.Payment
	err := r.pool.QueryRow(ctx,
		`SELECT id, user_id, product_id, amount, currency, status, created_at, updated_at
		 FROM payments WHERE id = $1`, paymentID).
		Scan(&p.ID, &p.UserID, &p.ProductID, &p.Amount, &p.Currency, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payment.Payment{}, payment.ErrNotFound
		}
		return payment.Payment{}, fmt.Errorf("find payment: %w", err)
	}
	return p, nil
}
