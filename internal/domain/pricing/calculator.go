package pricing

import (
	"fmt"
	"math"

	"theater_billing/internal/domain/entities"
)

// Calculator prices performances against an immutable Table. It is safe for concurrent use.
type Calculator struct {
	table Table
}

// NewCalculator rejects tables that fail Validate.
func NewCalculator(t Table) (*Calculator, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &Calculator{table: t}, nil
}

// MustNewCalculator is NewCalculator for tables known to be valid, such as DefaultTable.
func MustNewCalculator(t Table) *Calculator {
	c, err := NewCalculator(t)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Calculator) Table() Table {
	return c.table
}

// Amount returns the charge for a performance in minor currency units.
func (c *Calculator) Amount(perf entities.Performance, play entities.Play) (int64, error) {
	if perf.Audience < 0 {
		return 0, fmt.Errorf("%w: %d for play %s", entities.ErrInvalidAudience, perf.Audience, perf.PlayID)
	}
	g, err := play.Genre()
	if err != nil {
		return 0, err
	}
	rule := pricingFor(g)
	if rule == nil {
		return 0, &entities.UnknownPlayTypeError{Type: play.Type}
	}
	amount, ok := rule.amount(c.table, perf.Audience)
	if !ok {
		return 0, fmt.Errorf("%w: audience %d for play %s", entities.ErrAmountOverflow, perf.Audience, perf.PlayID)
	}
	return amount, nil
}

// VolumeCredits returns the loyalty credits earned by a performance.
// Unrecognized genres earn the base credits only; this never fails. The result
// saturates at math.MaxInt.
func (c *Calculator) VolumeCredits(perf entities.Performance, play entities.Play) int {
	credits := perf.Audience - c.table.BaseVolumeCreditThreshold
	if credits < 0 {
		credits = 0
	}
	if g, err := play.Genre(); err == nil {
		if rule := pricingFor(g); rule != nil {
			extra := rule.extraCredits(c.table, perf.Audience)
			sum, ok := AddCredits(credits, extra)
			if !ok {
				return math.MaxInt
			}
			credits = sum
		}
	}
	return credits
}
