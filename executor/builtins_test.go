package executor

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Conversions are exact rational arithmetic: round trips must come back to
// the identical value, with zero floating drift.
func TestConversionRoundTrip(t *testing.T) {
	values := []*big.Rat{
		big.NewRat(0, 1),
		big.NewRat(1, 3),
		big.NewRat(-40, 1),
		big.NewRat(1, 10),
		big.NewRat(98765, 432),
	}

	for _, x := range values {
		assert.Zero(t, fToC(cToF(x)).Cmp(x), "ftoc(ctof(%s))", x.RatString())
		assert.Zero(t, cToF(fToC(x)).Cmp(x), "ctof(ftoc(%s))", x.RatString())
		assert.Zero(t, kToC(cToK(x)).Cmp(x), "ktoc(ctok(%s))", x.RatString())
	}
}

func TestConversionFixedPoints(t *testing.T) {
	// -40 is the same in both scales.
	assert.Zero(t, fToC(big.NewRat(-40, 1)).Cmp(big.NewRat(-40, 1)))
	// 0C == 273.15K, exactly.
	assert.Zero(t, cToK(new(big.Rat)).Cmp(big.NewRat(27315, 100)))
	assert.Zero(t, kToC(big.NewRat(27315, 100)).Cmp(new(big.Rat)))
}

func TestDewpointApprox(t *testing.T) {
	// 20C at 50% relative humidity gives a dew point around 9.25C.
	d, err := dewpoint(big.NewRat(20, 1), big.NewRat(1, 2))
	require.NoError(t, err)

	f, _ := d.Float64()
	assert.InDelta(t, 9.25, f, 0.05)
}

func TestDewpointInvalidHumidity(t *testing.T) {
	for _, h := range []*big.Rat{new(big.Rat), big.NewRat(-1, 2)} {
		_, err := dewpoint(big.NewRat(20, 1), h)
		require.Error(t, err, "humidity %s", h.RatString())
	}
}

func TestConstantsTable(t *testing.T) {
	require.Len(t, constants, 10)
	for tok, value := range constants {
		assert.True(t, tok.IsConstant(), "token %s", tok)
		require.NotNil(t, value)
	}
}

func TestFormatRat(t *testing.T) {
	tests := []struct {
		in   *big.Rat
		want string
	}{
		{big.NewRat(8, 1), "8"},
		{big.NewRat(1, 2), "0.5"},
		{big.NewRat(-1, 2), "-0.5"},
		{big.NewRat(27315, 100), "273.15"},
		{big.NewRat(1, 3), "0.3333333333333333"},
		// Large and tiny magnitudes stay in plain decimal form.
		{big.NewRat(2260000, 1), "2260000"},
		{big.NewRat(1, 10000000), "0.0000001"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatRat(tt.in), "FormatRat(%s)", tt.in.RatString())
	}
}
