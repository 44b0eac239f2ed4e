// Package scan orchestrates one morning scan: health assessment,
// bankroll allocation, price lookup, position sizing, persistence.
package scan

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tradefit/internal/bankroll"
	"tradefit/internal/health"
	"tradefit/internal/logger"
	"tradefit/internal/market"
	"tradefit/internal/position"

	"github.com/google/uuid"
)

const bankrollMode = "auto"

// PriceLookup is the market-data collaborator boundary. Implementations
// never fail: missing data comes back as an empty Quote.
type PriceLookup interface {
	Lookup(ctx context.Context, symbol string, lookback int) market.Quote
}

// Config carries the per-process risk settings applied to every scan.
type Config struct {
	RiskPerTradePct float64
	StopLossPct     float64
	ATRLookback     int
}

// Service runs the scan pipeline. One instance serves all requests;
// there is no shared mutable state beyond the store.
type Service struct {
	calc   bankroll.Calculator
	sizer  position.Sizer
	prices PriceLookup
	store  RecordStore
	cfg    Config
}

func NewService(calc bankroll.Calculator, sizer position.Sizer, prices PriceLookup, store RecordStore, cfg Config) *Service {
	if cfg.ATRLookback <= 0 {
		cfg.ATRLookback = 14
	}
	return &Service{calc: calc, sizer: sizer, prices: prices, store: store, cfg: cfg}
}

// Perform executes the pipeline for one request. Every failure is
// terminal; the record is persisted only after all steps succeed.
func (s *Service) Perform(ctx context.Context, in Input) (Record, error) {
	symbol := strings.ToUpper(strings.TrimSpace(in.TradeSymbol))
	if symbol == "" {
		return Record{}, fmt.Errorf("%w: trade_symbol is required", ErrInvalidInput)
	}

	assessment := health.Assess(in.SleepHours, in.ExerciseMinutes)

	roll := s.calc.Compute(in.TotalValue, assessment.Factor)
	if roll.Amount <= 0 {
		return Record{}, fmt.Errorf("%w: check total_value", ErrBadBankroll)
	}

	if s.cfg.StopLossPct <= 0 {
		return Record{}, ErrBadStopLoss
	}

	quote := s.prices.Lookup(ctx, symbol, s.cfg.ATRLookback)
	if !quote.HasClose {
		return Record{}, fmt.Errorf("%w for %s", ErrNoPriceData, symbol)
	}

	plan, err := s.sizer.Size(roll.Amount, s.cfg.RiskPerTradePct, s.cfg.StopLossPct, quote.LastClose)
	if err != nil {
		if errors.Is(err, position.ErrStopLossNotPositive) {
			return Record{}, ErrBadStopLoss
		}
		// A non-positive close from the source is indistinguishable
		// from missing data for the caller.
		return Record{}, fmt.Errorf("%w for %s: %v", ErrNoPriceData, symbol, err)
	}

	rec := Record{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Symbol:    symbol,

		TotalValue:      in.TotalValue,
		SleepHours:      in.SleepHours,
		ExerciseMinutes: in.ExerciseMinutes,

		HealthFactor:   assessment.Factor,
		HealthAlert:    string(assessment.Alert),
		HealthNote:     assessment.Note,
		HealthGuidance: assessment.Guidance,

		BankrollMode:   bankrollMode,
		BankrollPct:    roll.Pct,
		BankrollAmount: roll.Amount,

		RiskPerTradePct:  s.cfg.RiskPerTradePct,
		RiskPerTrade:     plan.RiskPerTrade,
		StopLossUsedPct:  plan.StopLossPct,
		FinalPositionUSD: plan.PositionUSD,
		EntryPrice:       plan.EntryPrice,
		EstShares:        plan.Shares,
		StopLossPerShare: plan.StopLossPerShare,
		StopLossLevel:    plan.StopLossLevel,
		RiskPerShare:     plan.RiskPerShare,
		ATR:              quote.ATR,
		HasATR:           quote.HasATR,
		SizingPolicy:     s.sizer.Name(),
	}

	if err := s.store.Insert(ctx, &rec); err != nil {
		return Record{}, fmt.Errorf("persisting scan record: %w", err)
	}
	logger.Infof("scan %s persisted: symbol=%s factor=%.2f bankroll=%.2f position=%.2f",
		rec.ID, rec.Symbol, rec.HealthFactor, rec.BankrollAmount, rec.FinalPositionUSD)
	return rec, nil
}

// List returns prior scans, newest first.
func (s *Service) List(ctx context.Context, opts ListOptions) ([]Record, error) {
	if opts.Limit <= 0 {
		opts.Limit = 50
	}
	if opts.Limit > 500 {
		opts.Limit = 500
	}
	if opts.Offset < 0 {
		opts.Offset = 0
	}
	opts.Symbol = strings.ToUpper(strings.TrimSpace(opts.Symbol))
	return s.store.List(ctx, opts)
}

// Get returns one scan by identifier.
func (s *Service) Get(ctx context.Context, id string) (Record, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Record{}, ErrNotFound
	}
	return s.store.Get(ctx, id)
}
