package request

import (
	"strings"

	"theater_billing/internal/domain/entities"
)

type PerformanceRequest struct {
	PlayID   string `json:"playID" binding:"required" example:"hamlet"`
	Audience int    `json:"audience" binding:"min=0,max=1000000" example:"55"`
}

// StatementRequest is the invoice a statement is generated for.
type StatementRequest struct {
	Customer     string               `json:"customer" binding:"required" example:"BigCo"`
	Performances []PerformanceRequest `json:"performances" binding:"required,dive"`
}

// ToInvoice keeps performance order; it is the print order of the statement.
func (r StatementRequest) ToInvoice() entities.Invoice {
	perfs := make([]entities.Performance, 0, len(r.Performances))
	for _, p := range r.Performances {
		perfs = append(perfs, entities.Performance{
			PlayID:   strings.TrimSpace(p.PlayID),
			Audience: p.Audience,
		})
	}
	return entities.Invoice{
		Customer:     strings.TrimSpace(r.Customer),
		Performances: perfs,
	}
}
