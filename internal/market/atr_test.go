package market

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func candle(high, low, close float64) Candle {
	return Candle{High: high, Low: low, Close: close}
}

func TestTrueRanges(t *testing.T) {
	candles := []Candle{
		candle(12, 10, 11),
		candle(13, 11, 12), // h-l=2, |h-pc|=2, |l-pc|=0 -> 2
		candle(12, 9, 10),  // h-l=3, |h-pc|=0, |l-pc|=3 -> 3
		candle(16, 14, 15), // gap up: h-l=2, |h-pc|=6, |l-pc|=4 -> 6
	}
	trs := TrueRanges(candles)
	assert.Equal(t, []float64{2, 2, 3, 6}, trs)
}

func TestTrueRanges_FirstCandleUsesOwnClose(t *testing.T) {
	// prev close defaults to the candle's own close, which lies inside
	// the range, so high-low always wins for the first sample.
	trs := TrueRanges([]Candle{candle(11, 8, 10)})
	assert.Equal(t, []float64{3}, trs)
}

func TestATR(t *testing.T) {
	candles := []Candle{
		candle(12, 10, 11),
		candle(13, 11, 12),
		candle(12, 9, 10),
		candle(16, 14, 15),
	}

	t.Run("mean of last lookback true ranges", func(t *testing.T) {
		atr, ok := ATR(candles, 2)
		assert.True(t, ok)
		assert.InDelta(t, 4.5, atr, 1e-9) // (3+6)/2

		atr, ok = ATR(candles, 4)
		assert.True(t, ok)
		assert.InDelta(t, 3.25, atr, 1e-9) // (2+2+3+6)/4
	})

	t.Run("insufficient samples", func(t *testing.T) {
		_, ok := ATR(candles, 5)
		assert.False(t, ok)
		_, ok = ATR(nil, 1)
		assert.False(t, ok)
	})

	t.Run("non-positive lookback", func(t *testing.T) {
		_, ok := ATR(candles, 0)
		assert.False(t, ok)
	})
}
