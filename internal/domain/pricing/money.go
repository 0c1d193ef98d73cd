package pricing

import (
	"math"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// amount converts a stored monetary value into a decimal. Values that are not
// finite non-negative numbers count as zero so settlement stays computable over
// partially migrated data.
func amount(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}

// Round2 rounds a monetary value half away from zero to cents.
func Round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// IsValidAmount reports whether v is a finite number strictly greater than zero.
func IsValidAmount(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

func toFloat(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

// IsValidPrice reports whether v is a finite number greater than or equal to zero.
func IsValidPrice(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

// Add returns a+b computed in decimal and rounded to cents.
func Add(a, b float64) float64 {
	return toFloat(decimal.NewFromFloat(a).Add(decimal.NewFromFloat(b)))
}

// Sub returns a-b computed in decimal and rounded to cents.
func Sub(a, b float64) float64 {
	return toFloat(decimal.NewFromFloat(a).Sub(decimal.NewFromFloat(b)))
}
