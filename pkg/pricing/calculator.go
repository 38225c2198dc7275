package pricing

import (
	"math"
	"strconv"
	"strings"
)

// Totals represents the computed pricing breakdown for a set of line items.
type Totals struct {
	Subtotal       float64 `json:"subtotal"`
	TaxAmount      float64 `json:"tax_amount"`
	DiscountAmount float64 `json:"discount_amount"`
	GrandTotal     float64 `json:"grand_total"`
}

// Line represents a single already-parsed line amount.
type Line struct {
	Quantity  float64
	UnitPrice float64
}

// ParseAmount converts free-form numeric input to a float64. Invalid, empty
// or non-finite input yields 0 so totals stay renderable on every keystroke.
func ParseAmount(v string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// Calculate computes totals over draft line items. Quantity, unit price and
// both rates are parsed with ParseAmount; the function is pure and never fails.
func Calculate(items []Draft, taxRate, discountRate string) Totals {
	lines := make([]Line, len(items))
	for i, item := range items {
		lines[i] = Line{
			Quantity:  ParseAmount(item.Quantity),
			UnitPrice: ParseAmount(item.UnitPrice),
		}
	}
	return CalculateLines(lines, ParseAmount(taxRate), ParseAmount(discountRate))
}

// CalculateLines computes totals from parsed line amounts. Negative values
// participate as-is; submission-time filtering is the only gate. The grand
// total is not clamped at zero: a discount exceeding subtotal plus tax
// produces a negative total.
func CalculateLines(lines []Line, taxRate, discountRate float64) Totals {
	var subtotal float64
	for _, line := range lines {
		subtotal += line.Quantity * line.UnitPrice
	}

	taxAmount := subtotal * taxRate / 100

	var discountAmount float64
	if discountRate > 0 {
		discountAmount = subtotal * discountRate / 100
	}

	return Totals{
		Subtotal:       subtotal,
		TaxAmount:      taxAmount,
		DiscountAmount: discountAmount,
		GrandTotal:     subtotal + taxAmount - discountAmount,
	}
}
