package market

import (
	"context"
	"strings"

	"tradefit/internal/logger"
)

// DailyInterval is the candle interval used for scans.
const DailyInterval = "1d"

// Quote is the normalized result of a price lookup. A missing close or
// ATR is not an error for callers; they decide whether to proceed.
type Quote struct {
	LastClose float64
	ATR       float64
	HasClose  bool
	HasATR    bool
}

// PriceService wraps a Source and normalizes every failure mode
// (transport errors, unknown symbols, empty histories) into a no-data
// Quote. Failures are logged so operators can tell flaky transport from
// genuinely missing history.
type PriceService struct {
	source       Source
	historyLimit int
}

func NewPriceService(source Source, historyLimit int) *PriceService {
	if historyLimit <= 0 {
		historyLimit = 180
	}
	return &PriceService{source: source, historyLimit: historyLimit}
}

// Lookup fetches last close and ATR over `lookback` daily candles.
// It never returns an error: any fetch failure yields an empty Quote.
func (p *PriceService) Lookup(ctx context.Context, symbol string, lookback int) Quote {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" || p.source == nil {
		return Quote{}
	}
	candles, err := p.source.FetchHistory(ctx, symbol, DailyInterval, p.historyLimit)
	if err != nil {
		logger.Warnf("price lookup failed for %s via %s: %v", symbol, p.source.Name(), err)
		return Quote{}
	}
	if len(candles) == 0 {
		logger.Warnf("price lookup returned no history for %s via %s", symbol, p.source.Name())
		return Quote{}
	}
	q := Quote{
		LastClose: candles[len(candles)-1].Close,
		HasClose:  true,
	}
	if atr, ok := ATR(candles, lookback); ok {
		q.ATR = atr
		q.HasATR = true
	}
	return q
}
