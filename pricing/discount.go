package pricing

import (
	"github.com/Henilshingala/JiyashCreation/models"
	"github.com/shopspring/decimal"
)

// Tier pairs a display-price subtotal threshold with the percentage it
// unlocks. Tiers apply to the imitation subtotal only; gold and silver are
// never discounted.
type Tier struct {
	Threshold decimal.Decimal
	Percent   int64
}

// tiers are kept highest first; the first threshold at or under the
// subtotal wins.
var tiers = []Tier{
	{Threshold: decimal.NewFromInt(15000), Percent: 10},
	{Threshold: decimal.NewFromInt(5000), Percent: 5},
}

// DiscountFor scans the tiers from the top and returns the winning
// percentage and the resulting amount. No tier reached means 0/0.
func DiscountFor(subtotal decimal.Decimal) (int64, decimal.Decimal) {
	for _, t := range tiers {
		if subtotal.GreaterThanOrEqual(t.Threshold) {
			amount := subtotal.Mul(decimal.NewFromInt(t.Percent)).Div(decimal.NewFromInt(100))
			return t.Percent, amount
		}
	}
	return 0, decimal.Zero
}

// Progress maps the imitation subtotal onto a 0-100 bar with waypoints at
// 33 (first tier) and 100 (top tier).
func Progress(subtotal decimal.Decimal) float64 {
	top := tiers[0].Threshold
	first := tiers[len(tiers)-1].Threshold
	switch {
	case subtotal.GreaterThanOrEqual(top):
		return 100
	case subtotal.GreaterThanOrEqual(first):
		inRange, _ := subtotal.Sub(first).Div(top.Sub(first)).Float64()
		p := 33 + inRange*67
		if p > 100 {
			return 100
		}
		return p
	default:
		inRange, _ := subtotal.Div(first).Float64()
		return inRange * 33
	}
}

// NextTier returns how much more spend unlocks the next percentage. At or
// above the top tier both values are zero.
func NextTier(subtotal decimal.Decimal) (decimal.Decimal, int64) {
	for i := len(tiers) - 1; i >= 0; i-- {
		if subtotal.LessThan(tiers[i].Threshold) {
			return tiers[i].Threshold.Sub(subtotal), tiers[i].Percent
		}
	}
	return decimal.Zero, 0
}

// Line is one resolved cart row priced for the requesting user.
type Line struct {
	Material  models.MaterialType
	UnitPrice decimal.Decimal
	Quantity  int
}

// Summary is the cart-level outcome handed to the rendering layer.
type Summary struct {
	GoldSubtotal        decimal.Decimal `json:"gold_subtotal"`
	SilverSubtotal      decimal.Decimal `json:"silver_subtotal"`
	ImitationSubtotal   decimal.Decimal `json:"imitation_subtotal"`
	Subtotal            decimal.Decimal `json:"subtotal"`
	DiscountPercentage  int64           `json:"discount_percentage"`
	DiscountAmount      decimal.Decimal `json:"discount_amount"`
	ProgressPercentage  float64         `json:"progress_percentage"`
	NextDiscountAmount  decimal.Decimal `json:"next_discount_amount"`
	NextDiscountPercent int64           `json:"next_discount_percentage"`
	FinalTotal          decimal.Decimal `json:"final_total"`
}

// Summarize folds priced cart lines into per-material subtotals and applies
// the imitation-only tiering:
// final = (imitation - discount) + silver + gold.
func Summarize(lines []Line) Summary {
	var s Summary
	s.DiscountAmount = decimal.Zero
	s.NextDiscountAmount = decimal.Zero
	s.GoldSubtotal = decimal.Zero
	s.SilverSubtotal = decimal.Zero
	s.ImitationSubtotal = decimal.Zero
	for _, l := range lines {
		lineTotal := l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
		switch l.Material {
		case models.MaterialGold:
			s.GoldSubtotal = s.GoldSubtotal.Add(lineTotal)
		case models.MaterialSilver:
			s.SilverSubtotal = s.SilverSubtotal.Add(lineTotal)
		case models.MaterialImitation:
			s.ImitationSubtotal = s.ImitationSubtotal.Add(lineTotal)
		}
	}
	s.Subtotal = s.GoldSubtotal.Add(s.SilverSubtotal).Add(s.ImitationSubtotal)
	if s.ImitationSubtotal.IsPositive() {
		s.DiscountPercentage, s.DiscountAmount = DiscountFor(s.ImitationSubtotal)
		s.ProgressPercentage = Progress(s.ImitationSubtotal)
		s.NextDiscountAmount, s.NextDiscountPercent = NextTier(s.ImitationSubtotal)
	}
	s.FinalTotal = s.ImitationSubtotal.Sub(s.DiscountAmount).Add(s.SilverSubtotal).Add(s.GoldSubtotal)
	return s
}
