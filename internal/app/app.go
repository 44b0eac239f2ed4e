// Package app wires configuration into the scan service, storage and
// the HTTP server, and owns their lifecycle.
package app

import (
	"context"
	"fmt"
	"time"

	"tradefit/internal/bankroll"
	"tradefit/internal/config"
	"tradefit/internal/logger"
	"tradefit/internal/market"
	"tradefit/internal/market/binance"
	"tradefit/internal/position"
	"tradefit/internal/scan"
	"tradefit/internal/store/sqlite"
	scanhttp "tradefit/internal/transport/http"

	"golang.org/x/sync/errgroup"
)

const Version = "1.0.0"

type App struct {
	cfg    *config.Config
	store  scan.RecordStore
	server *scanhttp.Server
}

func New(cfg *config.Config) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil config")
	}
	logger.SetLevel(cfg.App.LogLevel)

	store, err := sqlite.New(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("opening scan store: %w", err)
	}

	source := binance.New(binance.Config{
		RESTBaseURL: cfg.Market.RESTBaseURL,
		HTTPTimeout: time.Duration(cfg.Market.TimeoutSeconds) * time.Second,
	})
	prices := market.NewPriceService(source, cfg.Market.HistoryLimit)

	sizer, err := position.ForPolicy(cfg.Risk.SizingPolicy)
	if err != nil {
		store.Close()
		return nil, err
	}

	calc := bankroll.Calculator{
		BasePct:     cfg.Bankroll.BasePct,
		MinPct:      cfg.Bankroll.MinPct,
		MaxPct:      cfg.Bankroll.MaxPct,
		HealthScale: cfg.Bankroll.HealthScale,
		Clamp:       cfg.Bankroll.Clamp,
	}

	svc := scan.NewService(calc, sizer, prices, store, scan.Config{
		RiskPerTradePct: cfg.Risk.PerTradePct,
		StopLossPct:     cfg.Risk.StopLossPct,
		ATRLookback:     cfg.Market.ATRLookback,
	})

	server, err := scanhttp.NewServer(scanhttp.ServerConfig{
		Addr:    cfg.App.HTTPAddr,
		Scans:   svc,
		Version: Version,
	})
	if err != nil {
		store.Close()
		return nil, err
	}

	return &App{cfg: cfg, store: store, server: server}, nil
}

// Run serves until ctx is cancelled, then closes the store.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.cfg == nil {
		return fmt.Errorf("app not initialized")
	}
	logger.Infof("tradefit listening on %s (env=%s, sizing=%s)",
		a.server.Addr(), a.cfg.App.Env, a.cfg.Risk.SizingPolicy)

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		defer a.store.Close()
		if err := a.server.Start(ctx); err != nil {
			return fmt.Errorf("http server error: %w", err)
		}
		return nil
	})
	return group.Wait()
}
