package entities

import "time"

// StatementStatus tracks whether the amount owed on a statement was settled.
// A statement is processing while a charge for it is in flight.
type StatementStatus string

const (
	StatementStatusIssued     StatementStatus = "issued"
	StatementStatusProcessing StatementStatus = "processing"
	StatementStatusPaid       StatementStatus = "paid"
)

// StatementFormat selects how a statement body is rendered.
type StatementFormat string

const (
	StatementFormatText StatementFormat = "text"
	StatementFormatHTML StatementFormat = "html"
)

// StatementLine is the computed charge for one performance.
type StatementLine struct {
	PlayID   string `json:"play_id"`
	PlayName string `json:"play_name"`
	Audience int    `json:"audience"`
	Amount   int64  `json:"amount"`
	Credits  int    `json:"credits"`
}

// Statement is a generated billing statement.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (customer-index): customer
//
// Monetary representation:
//   - TotalAmount and line amounts are minor units, exactly as computed.
//   - AmountOwed is TotalAmount scaled to display currency, used when charging.
type Statement struct {
	ID           string          `json:"id"`
	Customer     string          `json:"customer"`
	Lines        []StatementLine `json:"lines"`
	TotalAmount  int64           `json:"total_amount"`
	TotalCredits int             `json:"total_credits"`
	AmountOwed   float64         `json:"amount_owed"`
	Format       StatementFormat `json:"format"`
	Body         string          `json:"body"`
	Status       StatementStatus `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
