package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the payment processing outcome.
//
// Every provider outcome is recorded; only an approved payment settles its statement.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// BillingPayment settles the amount owed on a statement.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (statement_id-index): statement_id
//
// MercadoPago payload:
//   - MPPayloadRaw keeps the provider response body for traceability.
//   - MPPayload is the parsed representation of the same body.
type BillingPayment struct {
	ID          string        `json:"id"`
	StatementID string        `json:"statement_id"`
	Amount      float64       `json:"amount"`
	Date        time.Time     `json:"date"`
	Status      PaymentStatus `json:"status"`

	MPPayloadRaw json.RawMessage        `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}
