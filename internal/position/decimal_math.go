package position

import (
	"math"

	"github.com/shopspring/decimal"
)

var decOne = decimal.NewFromInt(1)

func decFromFloat(val float64) decimal.Decimal {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(val)
}

func decToFloat(val decimal.Decimal) float64 {
	f, _ := val.Float64()
	return f
}

// stopLossLevel is the exit price level: entry * (1 - stopPct).
func stopLossLevel(entry, stopPct float64) float64 {
	if entry <= 0 {
		return 0
	}
	return decToFloat(decFromFloat(entry).Mul(decOne.Sub(decFromFloat(stopPct))))
}

// riskPerShare is the dollar loss per share at the stop: entry * stopPct.
func riskPerShare(entry, stopPct float64) float64 {
	if entry <= 0 {
		return 0
	}
	return decToFloat(decFromFloat(entry).Mul(decFromFloat(stopPct)))
}
