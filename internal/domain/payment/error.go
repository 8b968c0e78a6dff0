package payment

import "errors"

var (
	ErrNotFound     = errors.New("payment not found")
	ErrInvalidInput = errors.New("invalid payment request")
	ErrBadSignature = errors.New("webhook signature mismatch")
)
