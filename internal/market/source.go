package market

import "context"

// Source fetches historical candles from an external market-data
// provider. Implementations own their transport-level timeouts.
type Source interface {
	Name() string
	FetchHistory(ctx context.Context, symbol, interval string, limit int) ([]Candle, error)
}
