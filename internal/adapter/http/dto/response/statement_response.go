package response

import (
	"sort"
	"time"

	"theater_billing/internal/domain/entities"
	"theater_billing/internal/domain/statement"
)

type StatementLineResponse struct {
	PlayID          string `json:"play_id"`
	Play            string `json:"play"`
	Audience        int    `json:"audience"`
	Amount          int64  `json:"amount"`
	AmountFormatted string `json:"amount_formatted"`
	Credits         int    `json:"credits"`
}

// StatementResponse carries amounts both as minor units and as formatted currency.
type StatementResponse struct {
	ID                   string                  `json:"id"`
	Customer             string                  `json:"customer"`
	Lines                []StatementLineResponse `json:"lines"`
	TotalAmount          int64                   `json:"total_amount"`
	TotalAmountFormatted string                  `json:"total_amount_formatted"`
	TotalCredits         int                     `json:"total_credits"`
	AmountOwed           float64                 `json:"amount_owed"`
	Format               string                  `json:"format"`
	Status               string                  `json:"status"`
	Body                 string                  `json:"body"`
	CreatedAt            time.Time               `json:"created_at"`
	UpdatedAt            time.Time               `json:"updated_at"`
}

func FromStatement(s entities.Statement, percentFactor int64) StatementResponse {
	lines := make([]StatementLineResponse, 0, len(s.Lines))
	for _, l := range s.Lines {
		lines = append(lines, StatementLineResponse{
			PlayID:          l.PlayID,
			Play:            l.PlayName,
			Audience:        l.Audience,
			Amount:          l.Amount,
			AmountFormatted: statement.FormatCurrency(l.Amount, percentFactor),
			Credits:         l.Credits,
		})
	}
	return StatementResponse{
		ID:                   s.ID,
		Customer:             s.Customer,
		Lines:                lines,
		TotalAmount:          s.TotalAmount,
		TotalAmountFormatted: statement.FormatCurrency(s.TotalAmount, percentFactor),
		TotalCredits:         s.TotalCredits,
		AmountOwed:           s.AmountOwed,
		Format:               string(s.Format),
		Status:               string(s.Status),
		Body:                 s.Body,
		CreatedAt:            s.CreatedAt,
		UpdatedAt:            s.UpdatedAt,
	}
}

func FromStatements(items []entities.Statement, percentFactor int64) []StatementResponse {
	out := make([]StatementResponse, 0, len(items))
	for _, s := range items {
		out = append(out, FromStatement(s, percentFactor))
	}
	return out
}

type PlayResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// FromCatalog lists plays ordered by id.
func FromCatalog(plays entities.PlayCatalog) []PlayResponse {
	out := make([]PlayResponse, 0, len(plays))
	for id, p := range plays {
		out = append(out, PlayResponse{ID: id, Name: p.Name, Type: p.Type})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
