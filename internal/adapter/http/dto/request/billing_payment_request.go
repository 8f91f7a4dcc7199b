package request

import "encoding/json"

// BillingPaymentCreateRequest is the payload for the "charge a statement" route.
//
// `mp_payload` is forwarded as raw JSON to support varying Mercado Pago schemas.

type BillingPaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload" swaggertype:"object"`
}
