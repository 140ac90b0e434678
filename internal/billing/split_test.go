package billing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitEvenDivision(t *testing.T) {
	lines := Split("Tea, Sandwich", 50)

	assert.Equal(t, []Line{
		{ItemName: "Tea", Amount: 25.0},
		{ItemName: "Sandwich", Amount: 25.0},
	}, lines)
}

func TestSplitUnevenDivisionRoundsPerLine(t *testing.T) {
	lines := Split("Coffee, Cake, Juice", 100)

	assert.Len(t, lines, 3)
	for _, line := range lines {
		assert.Equal(t, 33.33, line.Amount)
	}

	// Per-line rounding drifts the displayed sum from the order amount.
	sum := 0.0
	for _, line := range lines {
		sum += line.Amount
	}
	assert.InDelta(t, 100, sum, 3*0.005)
	assert.NotEqual(t, 100.0, sum)
}

func TestSplitRoundsToNearestPaisa(t *testing.T) {
	// 20 / 3 = 6.666... -> 6.67 under the pinned policy.
	lines := Split("A, B, C", 20)

	for _, line := range lines {
		assert.Equal(t, 6.67, line.Amount)
	}
}

func TestSplitEmptyItems(t *testing.T) {
	assert.Empty(t, Split("", 120))
	assert.Empty(t, Split("   ", 120))
	assert.Empty(t, Split(" , ,, ", 120))
}

func TestSplitSkipsEmptyTokens(t *testing.T) {
	lines := Split(" Tea ,, Samosa , ", 30)

	assert.Equal(t, []Line{
		{ItemName: "Tea", Amount: 15.0},
		{ItemName: "Samosa", Amount: 15.0},
	}, lines)
}

func TestSplitZeroAmount(t *testing.T) {
	lines := Split("Water", 0)

	assert.Equal(t, []Line{{ItemName: "Water", Amount: 0}}, lines)
}

func TestSplitSumStaysWithinDriftBound(t *testing.T) {
	cases := []struct {
		items  string
		amount float64
	}{
		{"a, b, c", 10},
		{"a, b, c, d, e, f, g", 99.99},
		{"chai, vada", 33},
		{"x", 17.77},
		{"a, b, c, d, e, f, g, h, i, j, k", 250.35},
	}

	for _, tc := range cases {
		lines := Split(tc.items, tc.amount)
		n := len(lines)

		sum := 0.0
		for _, line := range lines {
			assert.Equal(t, math.Round(tc.amount/float64(n)*100)/100, line.Amount)
			sum += line.Amount
		}
		assert.InDelta(t, tc.amount, sum, float64(n)*0.005+1e-9, "items=%q amount=%v", tc.items, tc.amount)
	}
}

func TestSplitItemsPreservesOrder(t *testing.T) {
	assert.Equal(t, []string{"Dosa", "Idli", "Filter Coffee"}, SplitItems("Dosa , Idli,Filter Coffee"))
	assert.Nil(t, SplitItems(""))
}
