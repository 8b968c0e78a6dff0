package payment

import "time"

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

type Payment struct {
	ID        string
	UserID    string
	ProductID string
	Amount    int64
	Currency  string
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

// LinkRequest is what the hosted-payments provider needs to mint a link.
type LinkRequest struct {
	ProductID     string
	Amount        int64
	Currency      string
	CustomerEmail string
}

type Link struct {
	PaymentID string
	URL       string
}

// Event is the decoded webhook payload.
type Event struct {
	Type string `json:"type"`
	Data struct {
		PaymentID string `json:"payment_id"`
	} `json:"data"`
}
