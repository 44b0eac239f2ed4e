package market

import "math"

// TrueRanges computes the per-candle true range: max(high-low,
// |high-prevClose|, |low-prevClose|). The first candle uses its own
// close as the previous close.
func TrueRanges(candles []Candle) []float64 {
	out := make([]float64, len(candles))
	for i, c := range candles {
		prevClose := c.Close
		if i > 0 {
			prevClose = candles[i-1].Close
		}
		tr := c.High - c.Low
		if hc := math.Abs(c.High - prevClose); hc > tr {
			tr = hc
		}
		if lc := math.Abs(c.Low - prevClose); lc > tr {
			tr = lc
		}
		out[i] = tr
	}
	return out
}

// ATR is the mean of the last `lookback` true ranges. It returns false
// when fewer than `lookback` samples exist.
func ATR(candles []Candle, lookback int) (float64, bool) {
	if lookback <= 0 {
		return 0, false
	}
	trs := TrueRanges(candles)
	if len(trs) < lookback {
		return 0, false
	}
	sum := 0.0
	for _, tr := range trs[len(trs)-lookback:] {
		sum += tr
	}
	return sum / float64(lookback), true
}
