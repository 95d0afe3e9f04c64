package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.01, Round2(1.005))
	assert.Equal(t, 2.35, Round2(2.345))
	assert.Equal(t, 69.0, Round2(69.0))
	assert.Equal(t, 0.0, Round2(0))
	assert.Equal(t, 10.57, Round2(10.567))
}

func TestRound2Idempotent(t *testing.T) {
	values := []float64{1.005, 2.675, 69.0, 59.48, 9.52, 413.79, 0.01}
	for _, v := range values {
		once := Round2(v)
		assert.Equal(t, once, Round2(once))
	}
}

func TestPriceBreakdownEmpty(t *testing.T) {
	breakdown, err := PriceBreakdown(nil)
	require.NoError(t, err)
	assert.Equal(t, Breakdown{}, breakdown)
}

func TestPriceBreakdownRejectsNegative(t *testing.T) {
	_, err := PriceBreakdown([]LineItem{{Price: -1, Quantity: 1}})
	assert.Error(t, err)

	_, err = PriceBreakdown([]LineItem{{Price: 10, Quantity: -2}})
	assert.Error(t, err)
}

func TestPriceBreakdownTypicalTicket(t *testing.T) {
	// Two pastes at 27.00 plus a water at 15.00
	breakdown, err := PriceBreakdown([]LineItem{
		{Price: 27.00, Quantity: 2},
		{Price: 15.00, Quantity: 1},
	})
	require.NoError(t, err)

	assert.Equal(t, 69.00, breakdown.Total)
	assert.Equal(t, 59.48, breakdown.Subtotal)
	assert.Equal(t, 9.52, breakdown.Tax)
}

func TestPriceBreakdownDecomposition(t *testing.T) {
	// Subtotal plus tax must recompose to the total for any item mix
	cases := [][]LineItem{
		{{Price: 27.00, Quantity: 10}, {Price: 24.00, Quantity: 10}},
		{{Price: 15.00, Quantity: 1}},
		{{Price: 0.01, Quantity: 3}},
		{{Price: 150.00, Quantity: 2}, {Price: 22.00, Quantity: 7}, {Price: 18.00, Quantity: 1}},
		{{Price: 29.00, Quantity: 1}, {Price: 95.00, Quantity: 1}},
	}
	for _, items := range cases {
		breakdown, err := PriceBreakdown(items)
		require.NoError(t, err)

		assert.Equal(t, breakdown.Total, Round2(breakdown.Subtotal+breakdown.Tax))
		assert.GreaterOrEqual(t, breakdown.Subtotal, 0.0)
		assert.GreaterOrEqual(t, breakdown.Tax, 0.0)
	}
}

func TestPriceBreakdownZeroQuantityLine(t *testing.T) {
	breakdown, err := PriceBreakdown([]LineItem{{Price: 27.00, Quantity: 0}})
	require.NoError(t, err)
	assert.Equal(t, 0.0, breakdown.Total)
}

func TestChange(t *testing.T) {
	assert.Equal(t, 31.00, Change(69.00, 100.00))
	assert.Equal(t, 0.0, Change(50.00, 50.00))
	assert.Equal(t, 0.50, Change(19.50, 20.00))
}
