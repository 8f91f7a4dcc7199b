package statement

import (
	"errors"
	"fmt"

	"theater_billing/internal/domain/entities"
	"theater_billing/internal/domain/pricing"
)

var ErrUnsupportedFormat = errors.New("unsupported statement format")

// Summary is the fully computed content of a statement, before rendering.
type Summary struct {
	Customer      string
	Lines         []entities.StatementLine
	TotalAmount   int64
	TotalCredits  int
	PercentFactor int64
}

// AmountOwed is TotalAmount in display currency units.
func (s Summary) AmountOwed() float64 {
	return float64(s.TotalAmount) / float64(s.PercentFactor)
}

func (s Summary) usd(amount int64) string {
	return FormatCurrency(amount, s.PercentFactor)
}

// Generator computes and renders statements. It borrows the invoice and catalog and never
// mutates them.
type Generator struct {
	calc *pricing.Calculator
}

func NewGenerator(calc *pricing.Calculator) *Generator {
	return &Generator{calc: calc}
}

// Compute prices every performance in invoice order. Any failure aborts the whole
// statement and no partial summary is returned.
func (g *Generator) Compute(invoice entities.Invoice, plays entities.PlayCatalog) (Summary, error) {
	lines := make([]entities.StatementLine, 0, len(invoice.Performances))
	var (
		totalAmount  int64
		totalCredits int
	)

	for _, perf := range invoice.Performances {
		play, err := plays.Lookup(perf.PlayID)
		if err != nil {
			return Summary{}, err
		}
		amount, err := g.calc.Amount(perf, play)
		if err != nil {
			return Summary{}, err
		}
		credits := g.calc.VolumeCredits(perf, play)

		lines = append(lines, entities.StatementLine{
			PlayID:   perf.PlayID,
			PlayName: play.Name,
			Audience: perf.Audience,
			Amount:   amount,
			Credits:  credits,
		})
		var ok bool
		if totalAmount, ok = pricing.AddAmount(totalAmount, amount); !ok {
			return Summary{}, fmt.Errorf("%w: statement total for %s", entities.ErrAmountOverflow, invoice.Customer)
		}
		if totalCredits, ok = pricing.AddCredits(totalCredits, credits); !ok {
			return Summary{}, fmt.Errorf("%w: credit total for %s", entities.ErrAmountOverflow, invoice.Customer)
		}
	}

	return Summary{
		Customer:      invoice.Customer,
		Lines:         lines,
		TotalAmount:   totalAmount,
		TotalCredits:  totalCredits,
		PercentFactor: g.calc.Table().PercentFactor,
	}, nil
}

// Render computes the statement and renders it with r.
func (g *Generator) Render(invoice entities.Invoice, plays entities.PlayCatalog, r Renderer) (Summary, string, error) {
	summary, err := g.Compute(invoice, plays)
	if err != nil {
		return Summary{}, "", err
	}
	body, err := r.Render(summary)
	if err != nil {
		return Summary{}, "", err
	}
	return summary, body, nil
}

// Statement returns the plain-text statement for an invoice.
func (g *Generator) Statement(invoice entities.Invoice, plays entities.PlayCatalog) (string, error) {
	_, body, err := g.Render(invoice, plays, TextRenderer{})
	return body, err
}

// HTMLStatement returns the HTML statement for an invoice.
func (g *Generator) HTMLStatement(invoice entities.Invoice, plays entities.PlayCatalog) (string, error) {
	_, body, err := g.Render(invoice, plays, HTMLRenderer{})
	return body, err
}
