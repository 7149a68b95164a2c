package pricing

import (
	"testing"

	"github.com/Henilshingala/JiyashCreation/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDiscountFor(t *testing.T) {
	cases := []struct {
		subtotal   int64
		wantPct    int64
		wantAmount string
	}{
		{0, 0, "0"},
		{4000, 0, "0"},
		{4999, 0, "0"},
		{5000, 5, "250"},
		{10000, 5, "500"},
		{14999, 5, "749.95"},
		{15000, 10, "1500"},
		{20000, 10, "2000"},
	}
	for _, tc := range cases {
		pct, amount := DiscountFor(decimal.NewFromInt(tc.subtotal))
		assert.Equal(t, tc.wantPct, pct, "subtotal %d", tc.subtotal)
		assert.True(t, amount.Equal(decimal.RequireFromString(tc.wantAmount)),
			"subtotal %d: want %s got %s", tc.subtotal, tc.wantAmount, amount)
	}
}

func TestProgress(t *testing.T) {
	assert.InDelta(t, 0.0, Progress(decimal.Zero), 0.001)
	assert.InDelta(t, 26.4, Progress(decimal.NewFromInt(4000)), 0.001)
	assert.InDelta(t, 33.0, Progress(decimal.NewFromInt(5000)), 0.001)
	assert.InDelta(t, 66.5, Progress(decimal.NewFromInt(10000)), 0.001)
	assert.InDelta(t, 100.0, Progress(decimal.NewFromInt(15000)), 0.001)
	assert.InDelta(t, 100.0, Progress(decimal.NewFromInt(99999)), 0.001)
}

func TestNextTier(t *testing.T) {
	gap, pct := NextTier(decimal.NewFromInt(4000))
	assert.True(t, gap.Equal(decimal.NewFromInt(1000)))
	assert.EqualValues(t, 5, pct)

	gap, pct = NextTier(decimal.NewFromInt(10000))
	assert.True(t, gap.Equal(decimal.NewFromInt(5000)))
	assert.EqualValues(t, 10, pct)

	gap, pct = NextTier(decimal.NewFromInt(15000))
	assert.True(t, gap.IsZero())
	assert.EqualValues(t, 0, pct)
}

func TestSummarizeImitationOnlyDiscount(t *testing.T) {
	lines := []Line{
		{Material: models.MaterialImitation, UnitPrice: decimal.NewFromInt(5000), Quantity: 2},
		{Material: models.MaterialSilver, UnitPrice: decimal.NewFromInt(1000), Quantity: 2},
		{Material: models.MaterialGold, UnitPrice: decimal.NewFromInt(3000), Quantity: 1},
	}
	s := Summarize(lines)

	assert.True(t, s.ImitationSubtotal.Equal(decimal.NewFromInt(10000)))
	assert.True(t, s.SilverSubtotal.Equal(decimal.NewFromInt(2000)))
	assert.True(t, s.GoldSubtotal.Equal(decimal.NewFromInt(3000)))
	assert.True(t, s.Subtotal.Equal(decimal.NewFromInt(15000)))

	// Tiering keys off the imitation subtotal alone, never the cart total.
	assert.EqualValues(t, 5, s.DiscountPercentage)
	assert.True(t, s.DiscountAmount.Equal(decimal.NewFromInt(500)))
	assert.InDelta(t, 66.5, s.ProgressPercentage, 0.001)
	assert.True(t, s.NextDiscountAmount.Equal(decimal.NewFromInt(5000)))
	assert.EqualValues(t, 10, s.NextDiscountPercent)

	assert.True(t, s.FinalTotal.Equal(decimal.NewFromInt(14500)))
}

func TestSummarizeNoImitationMeansNoDiscount(t *testing.T) {
	lines := []Line{
		{Material: models.MaterialGold, UnitPrice: decimal.NewFromInt(30000), Quantity: 1},
		{Material: models.MaterialSilver, UnitPrice: decimal.NewFromInt(4000), Quantity: 1},
	}
	s := Summarize(lines)

	assert.EqualValues(t, 0, s.DiscountPercentage)
	assert.True(t, s.DiscountAmount.IsZero())
	assert.InDelta(t, 0.0, s.ProgressPercentage, 0.001)
	assert.True(t, s.NextDiscountAmount.IsZero())
	assert.True(t, s.FinalTotal.Equal(decimal.NewFromInt(34000)))
}

func TestSummarizeTopTier(t *testing.T) {
	lines := []Line{
		{Material: models.MaterialImitation, UnitPrice: decimal.NewFromInt(7500), Quantity: 2},
	}
	s := Summarize(lines)

	assert.EqualValues(t, 10, s.DiscountPercentage)
	assert.True(t, s.DiscountAmount.Equal(decimal.NewFromInt(1500)))
	assert.InDelta(t, 100.0, s.ProgressPercentage, 0.001)
	assert.True(t, s.NextDiscountAmount.IsZero())
	assert.EqualValues(t, 0, s.NextDiscountPercent)
	assert.True(t, s.FinalTotal.Equal(decimal.NewFromInt(13500)))
}

func TestSummarizeEmptyCart(t *testing.T) {
	s := Summarize(nil)
	assert.True(t, s.Subtotal.IsZero())
	assert.True(t, s.FinalTotal.IsZero())
	assert.EqualValues(t, 0, s.DiscountPercentage)
}
