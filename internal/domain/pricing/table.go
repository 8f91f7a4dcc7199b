package pricing

import (
	"errors"
	"fmt"
)

var ErrInvalidTable = errors.New("invalid pricing table")

// Table holds the pricing tiers and credit rules. Money values are minor currency units;
// PercentFactor converts them to display currency at render time.
//
// Every field can be overridden from the environment (see config.Config, prefix PRICING_).
type Table struct {
	TragedyBaseAmount                int64 `env:"TRAGEDY_BASE_AMOUNT" envDefault:"40000"`
	TragedyAudienceThreshold         int   `env:"TRAGEDY_AUDIENCE_THRESHOLD" envDefault:"30"`
	TragedyOverBaseCapacityPerPerson int64 `env:"TRAGEDY_OVER_BASE_CAPACITY_PER_PERSON" envDefault:"1000"`

	ComedyBaseAmount                int64 `env:"COMEDY_BASE_AMOUNT" envDefault:"30000"`
	ComedyAudienceThreshold         int   `env:"COMEDY_AUDIENCE_THRESHOLD" envDefault:"20"`
	ComedyOverBaseCapacityAmount    int64 `env:"COMEDY_OVER_BASE_CAPACITY_AMOUNT" envDefault:"10000"`
	ComedyOverBaseCapacityPerPerson int64 `env:"COMEDY_OVER_BASE_CAPACITY_PER_PERSON" envDefault:"500"`
	ComedyAmountPerAudience         int64 `env:"COMEDY_AMOUNT_PER_AUDIENCE" envDefault:"300"`

	BaseVolumeCreditThreshold int `env:"BASE_VOLUME_CREDIT_THRESHOLD" envDefault:"30"`
	ComedyExtraVolumeFactor   int `env:"COMEDY_EXTRA_VOLUME_FACTOR" envDefault:"5"`

	PercentFactor int64 `env:"PERCENT_FACTOR" envDefault:"100"`
}

func DefaultTable() Table {
	return Table{
		TragedyBaseAmount:                40000,
		TragedyAudienceThreshold:         30,
		TragedyOverBaseCapacityPerPerson: 1000,

		ComedyBaseAmount:                30000,
		ComedyAudienceThreshold:         20,
		ComedyOverBaseCapacityAmount:    10000,
		ComedyOverBaseCapacityPerPerson: 500,
		ComedyAmountPerAudience:         300,

		BaseVolumeCreditThreshold: 30,
		ComedyExtraVolumeFactor:   5,

		PercentFactor: 100,
	}
}

// Validate rejects tables that would divide by zero or produce negative charges.
func (t Table) Validate() error {
	if t.PercentFactor <= 0 {
		return fmt.Errorf("%w: percent factor must be positive, got %d", ErrInvalidTable, t.PercentFactor)
	}
	if t.ComedyExtraVolumeFactor <= 0 {
		return fmt.Errorf("%w: comedy extra volume factor must be positive, got %d", ErrInvalidTable, t.ComedyExtraVolumeFactor)
	}

	for name, v := range map[string]int64{
		"tragedy base amount":                   t.TragedyBaseAmount,
		"tragedy audience threshold":            int64(t.TragedyAudienceThreshold),
		"tragedy over base capacity per person": t.TragedyOverBaseCapacityPerPerson,
		"comedy base amount":                    t.ComedyBaseAmount,
		"comedy audience threshold":             int64(t.ComedyAudienceThreshold),
		"comedy over base capacity amount":      t.ComedyOverBaseCapacityAmount,
		"comedy over base capacity per person":  t.ComedyOverBaseCapacityPerPerson,
		"comedy amount per audience":            t.ComedyAmountPerAudience,
		"base volume credit threshold":          int64(t.BaseVolumeCreditThreshold),
	} {
		if v < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %d", ErrInvalidTable, name, v)
		}
	}
	return nil
}
