package pricing

import (
	"errors"
	"math"
	"testing"

	"theater_billing/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	hamlet  = entities.Play{Name: "Hamlet", Type: "tragedy"}
	asLike  = entities.Play{Name: "As You Like It", Type: "comedy"}
	henryV  = entities.Play{Name: "Henry V", Type: "history"}
	untyped = entities.Play{Name: "Untitled"}
)

func TestCalculator_Amount(t *testing.T) {
	calc := MustNewCalculator(DefaultTable())

	cases := []struct {
		name     string
		play     entities.Play
		audience int
		want     int64
	}{
		{name: "tragedy empty house", play: hamlet, audience: 0, want: 40000},
		{name: "tragedy at threshold", play: hamlet, audience: 30, want: 40000},
		{name: "tragedy over threshold", play: hamlet, audience: 55, want: 65000},
		{name: "tragedy one over", play: hamlet, audience: 31, want: 41000},
		{name: "comedy empty house", play: asLike, audience: 0, want: 30000},
		{name: "comedy below threshold", play: asLike, audience: 10, want: 33000},
		{name: "comedy at threshold", play: asLike, audience: 20, want: 36000},
		{name: "comedy over threshold", play: asLike, audience: 35, want: 58000},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := calc.Amount(entities.Performance{PlayID: "p", Audience: tc.audience}, tc.play)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCalculator_AmountTragedyProperties(t *testing.T) {
	table := DefaultTable()
	calc := MustNewCalculator(table)

	for audience := 0; audience <= table.TragedyAudienceThreshold; audience++ {
		got, err := calc.Amount(entities.Performance{Audience: audience}, hamlet)
		require.NoError(t, err)
		assert.Equal(t, table.TragedyBaseAmount, got, "audience %d", audience)
	}

	for k := 1; k <= 200; k++ {
		got, err := calc.Amount(entities.Performance{Audience: table.TragedyAudienceThreshold + k}, hamlet)
		require.NoError(t, err)
		assert.Equal(t, table.TragedyBaseAmount+int64(k)*table.TragedyOverBaseCapacityPerPerson, got, "k %d", k)
	}
}

func TestCalculator_AmountComedyMonotonic(t *testing.T) {
	calc := MustNewCalculator(DefaultTable())

	prev := int64(-1)
	for audience := 0; audience <= 500; audience++ {
		got, err := calc.Amount(entities.Performance{Audience: audience}, asLike)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got, prev, "audience %d", audience)
		prev = got
	}
}

func TestCalculator_AmountComedyPerAudienceAlwaysApplied(t *testing.T) {
	table := DefaultTable()
	table.ComedyAmountPerAudience = 0
	withoutPerAudience := MustNewCalculator(table)
	calc := MustNewCalculator(DefaultTable())

	for _, audience := range []int{1, 5, 19, 20, 21, 100} {
		base, err := withoutPerAudience.Amount(entities.Performance{Audience: audience}, asLike)
		require.NoError(t, err)
		got, err := calc.Amount(entities.Performance{Audience: audience}, asLike)
		require.NoError(t, err)
		assert.Equal(t, base+300*int64(audience), got, "audience %d", audience)
	}
}

func TestCalculator_AmountUnknownType(t *testing.T) {
	calc := MustNewCalculator(DefaultTable())

	for _, play := range []entities.Play{henryV, untyped} {
		_, err := calc.Amount(entities.Performance{PlayID: "x", Audience: 10}, play)
		require.Error(t, err)
		assert.True(t, errors.Is(err, entities.ErrUnknownPlayType))

		var typeErr *entities.UnknownPlayTypeError
		require.True(t, errors.As(err, &typeErr))
		assert.Equal(t, play.Type, typeErr.Type)
	}
}

func TestCalculator_AmountNegativeAudience(t *testing.T) {
	calc := MustNewCalculator(DefaultTable())

	_, err := calc.Amount(entities.Performance{PlayID: "hamlet", Audience: -1}, hamlet)
	assert.True(t, errors.Is(err, entities.ErrInvalidAudience))
}

func TestCalculator_AmountOverflow(t *testing.T) {
	calc := MustNewCalculator(DefaultTable())

	cases := []struct {
		name     string
		play     entities.Play
		audience int
	}{
		{name: "comedy per person", play: asLike, audience: 20_000_000_000_000_000},
		{name: "comedy max audience", play: asLike, audience: math.MaxInt64},
		{name: "tragedy max audience", play: hamlet, audience: math.MaxInt64},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := calc.Amount(entities.Performance{PlayID: "p", Audience: tc.audience}, tc.play)
			assert.True(t, errors.Is(err, entities.ErrAmountOverflow), "got %d, %v", got, err)
			assert.Zero(t, got)
		})
	}
}

func TestCalculator_AmountLargestSafeAudience(t *testing.T) {
	calc := MustNewCalculator(DefaultTable())

	audience := int((math.MaxInt64-40000)/1000) + 30
	got, err := calc.Amount(entities.Performance{Audience: audience}, hamlet)
	require.NoError(t, err)
	assert.Positive(t, got)

	_, err = calc.Amount(entities.Performance{Audience: audience + 1}, hamlet)
	assert.True(t, errors.Is(err, entities.ErrAmountOverflow))
}

func TestCalculator_VolumeCreditsSaturate(t *testing.T) {
	calc := MustNewCalculator(DefaultTable())

	assert.Equal(t, math.MaxInt, calc.VolumeCredits(entities.Performance{Audience: math.MaxInt}, asLike))
	assert.Equal(t, math.MaxInt-30, calc.VolumeCredits(entities.Performance{Audience: math.MaxInt}, hamlet))
}

func TestNewCalculator_RejectsInvalidTable(t *testing.T) {
	_, err := NewCalculator(Table{})
	assert.True(t, errors.Is(err, ErrInvalidTable))

	table := DefaultTable()
	table.ComedyExtraVolumeFactor = 0
	_, err = NewCalculator(table)
	assert.True(t, errors.Is(err, ErrInvalidTable))

	assert.Panics(t, func() { MustNewCalculator(Table{}) })
}

func TestCalculator_VolumeCredits(t *testing.T) {
	calc := MustNewCalculator(DefaultTable())

	cases := []struct {
		name     string
		play     entities.Play
		audience int
		want     int
	}{
		{name: "tragedy below threshold", play: hamlet, audience: 20, want: 0},
		{name: "tragedy over threshold", play: hamlet, audience: 55, want: 25},
		{name: "comedy below threshold gets bonus", play: asLike, audience: 12, want: 2},
		{name: "comedy over threshold", play: asLike, audience: 35, want: 12},
		{name: "comedy bonus truncates", play: asLike, audience: 4, want: 0},
		{name: "unknown genre gets base only", play: henryV, audience: 40, want: 10},
		{name: "empty genre gets base only", play: untyped, audience: 31, want: 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := calc.VolumeCredits(entities.Performance{Audience: tc.audience}, tc.play)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCalculator_UsesInjectedTable(t *testing.T) {
	table := DefaultTable()
	table.TragedyBaseAmount = 1
	table.TragedyOverBaseCapacityPerPerson = 2
	table.TragedyAudienceThreshold = 3
	table.BaseVolumeCreditThreshold = 0
	calc := MustNewCalculator(table)

	got, err := calc.Amount(entities.Performance{Audience: 5}, hamlet)
	require.NoError(t, err)
	assert.Equal(t, int64(5), got)
	assert.Equal(t, 5, calc.VolumeCredits(entities.Performance{Audience: 5}, hamlet))
	assert.Equal(t, table, calc.Table())
}
