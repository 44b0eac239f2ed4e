package market

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubSource struct {
	candles []Candle
	err     error
}

func (s *stubSource) Name() string { return "stub" }

func (s *stubSource) FetchHistory(ctx context.Context, symbol, interval string, limit int) ([]Candle, error) {
	return s.candles, s.err
}

func TestLookup_ReturnsCloseAndATR(t *testing.T) {
	src := &stubSource{candles: []Candle{
		candle(12, 10, 11),
		candle(13, 11, 12),
		candle(12, 9, 10),
	}}
	svc := NewPriceService(src, 180)

	q := svc.Lookup(context.Background(), "aapl", 2)
	assert.True(t, q.HasClose)
	assert.Equal(t, 10.0, q.LastClose)
	assert.True(t, q.HasATR)
	assert.InDelta(t, 2.5, q.ATR, 1e-9) // (2+3)/2
}

func TestLookup_CloseWithoutATR(t *testing.T) {
	src := &stubSource{candles: []Candle{candle(12, 10, 11)}}
	svc := NewPriceService(src, 180)

	q := svc.Lookup(context.Background(), "AAPL", 14)
	assert.True(t, q.HasClose)
	assert.Equal(t, 11.0, q.LastClose)
	assert.False(t, q.HasATR)
}

func TestLookup_NormalizesFailures(t *testing.T) {
	t.Run("source error", func(t *testing.T) {
		svc := NewPriceService(&stubSource{err: errors.New("connection refused")}, 180)
		assert.Equal(t, Quote{}, svc.Lookup(context.Background(), "AAPL", 14))
	})

	t.Run("empty history", func(t *testing.T) {
		svc := NewPriceService(&stubSource{}, 180)
		assert.Equal(t, Quote{}, svc.Lookup(context.Background(), "AAPL", 14))
	})

	t.Run("blank symbol", func(t *testing.T) {
		svc := NewPriceService(&stubSource{candles: []Candle{candle(2, 1, 1)}}, 180)
		assert.Equal(t, Quote{}, svc.Lookup(context.Background(), "   ", 14))
	})
}
