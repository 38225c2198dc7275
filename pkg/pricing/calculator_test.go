package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"plain integer", "2", 2},
		{"decimal", "10.5", 10.5},
		{"leading space", "  3 ", 3},
		{"empty", "", 0},
		{"garbage", "abc", 0},
		{"trailing garbage", "12x", 0},
		{"negative", "-4", -4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseAmount(tt.input))
		})
	}
}

func TestCalculateSubtotal(t *testing.T) {
	items := []Draft{
		{Quantity: "2", UnitPrice: "100"},
		{Quantity: "1", UnitPrice: "50"},
	}

	totals := Calculate(items, "0", "0")

	assert.Equal(t, 250.0, totals.Subtotal)
	assert.Equal(t, 250.0, totals.GrandTotal)
}

func TestCalculateTaxAndDiscount(t *testing.T) {
	items := []Draft{
		{Quantity: "2", UnitPrice: "100"},
		{Quantity: "1", UnitPrice: "50"},
	}

	totals := Calculate(items, "10", "5")

	assert.Equal(t, 250.0, totals.Subtotal)
	assert.Equal(t, 25.0, totals.TaxAmount)
	assert.Equal(t, 12.5, totals.DiscountAmount)
	assert.Equal(t, 262.5, totals.GrandTotal)
}

func TestCalculateEmptyCollection(t *testing.T) {
	totals := Calculate(nil, "10", "50")

	assert.Equal(t, 0.0, totals.Subtotal)
	assert.Equal(t, 0.0, totals.TaxAmount)
	assert.Equal(t, 0.0, totals.DiscountAmount)
	assert.Equal(t, 0.0, totals.GrandTotal)
}

func TestCalculateInvalidInputDegradesToZero(t *testing.T) {
	items := []Draft{
		{Quantity: "abc", UnitPrice: "100"},
		{Quantity: "2", UnitPrice: ""},
		{Quantity: "3", UnitPrice: "10"},
	}

	totals := Calculate(items, "not-a-number", "")

	assert.Equal(t, 30.0, totals.Subtotal)
	assert.Equal(t, 0.0, totals.TaxAmount)
	assert.Equal(t, 30.0, totals.GrandTotal)
}

func TestCalculateDiscountCanExceedTotal(t *testing.T) {
	totals := CalculateLines([]Line{{Quantity: 1, UnitPrice: 100}}, 0, 150)

	assert.Equal(t, 100.0, totals.Subtotal)
	assert.Equal(t, 150.0, totals.DiscountAmount)
	assert.Equal(t, -50.0, totals.GrandTotal)
}

func TestCalculateZeroDiscountRateSkipsDiscount(t *testing.T) {
	totals := CalculateLines([]Line{{Quantity: 1, UnitPrice: 100}}, 0, -10)

	assert.Equal(t, 0.0, totals.DiscountAmount)
	assert.Equal(t, 100.0, totals.GrandTotal)
}

func TestCalculateNegativeValuesParticipate(t *testing.T) {
	totals := CalculateLines([]Line{
		{Quantity: 2, UnitPrice: 100},
		{Quantity: -1, UnitPrice: 50},
	}, 0, 0)

	assert.Equal(t, 150.0, totals.Subtotal)
}
