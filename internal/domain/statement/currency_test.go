package statement

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		minor int64
		want  string
	}{
		{minor: 0, want: "$0.00"},
		{minor: 5, want: "$0.05"},
		{minor: 65000, want: "$650.00"},
		{minor: 58050, want: "$580.50"},
		{minor: 173000, want: "$1,730.00"},
		{minor: 123456789, want: "$1,234,567.89"},
		{minor: -2500, want: "-$25.00"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatCurrency(tc.minor, 100), "minor %d", tc.minor)
	}
}

func TestFormatCurrency_PercentFactor(t *testing.T) {
	assert.Equal(t, "$65,000.00", FormatCurrency(65000, 1))
	assert.Equal(t, "$65.00", FormatCurrency(65000, 1000))
}
