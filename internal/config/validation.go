package config

import (
	"fmt"
	"strings"
)

// validate performs basic sanity checks; failures abort startup.
func validate(c *Config) error {
	if err := c.Bankroll.validate(); err != nil {
		return err
	}
	if err := c.Risk.validate(); err != nil {
		return err
	}
	if err := c.Market.validate(); err != nil {
		return err
	}
	if err := c.Database.validate(); err != nil {
		return err
	}
	return nil
}

func (b *BankrollConfig) validate() error {
	if b.BasePct <= 0 || b.BasePct > 1 {
		return fmt.Errorf("bankroll.base_pct must be in (0, 1], got %v", b.BasePct)
	}
	if b.Clamp {
		if b.MinPct <= 0 || b.MaxPct <= 0 {
			return fmt.Errorf("bankroll.min_pct and bankroll.max_pct must be > 0 when bankroll.clamp is enabled")
		}
		if b.MinPct > b.MaxPct {
			return fmt.Errorf("bankroll.min_pct (%v) cannot exceed bankroll.max_pct (%v)", b.MinPct, b.MaxPct)
		}
	}
	return nil
}

func (r *RiskConfig) validate() error {
	if r.PerTradePct <= 0 || r.PerTradePct > 1 {
		return fmt.Errorf("risk.per_trade_pct must be in (0, 1], got %v", r.PerTradePct)
	}
	if r.StopLossPct < 0 || r.StopLossPct >= 1 {
		return fmt.Errorf("risk.stop_loss_pct must be in [0, 1), got %v", r.StopLossPct)
	}
	switch strings.ToLower(strings.TrimSpace(r.SizingPolicy)) {
	case "", "capped", "risk_based":
	default:
		return fmt.Errorf("risk.sizing_policy must be \"capped\" or \"risk_based\", got %q", r.SizingPolicy)
	}
	return nil
}

func (m *MarketConfig) validate() error {
	if m.TimeoutSeconds <= 0 {
		return fmt.Errorf("market.timeout_seconds must be > 0, got %d", m.TimeoutSeconds)
	}
	if m.ATRLookback <= 0 {
		return fmt.Errorf("market.atr_lookback must be > 0, got %d", m.ATRLookback)
	}
	if m.HistoryLimit <= 0 {
		return fmt.Errorf("market.history_limit must be > 0, got %d", m.HistoryLimit)
	}
	return nil
}

func (d *DatabaseConfig) validate() error {
	if strings.TrimSpace(d.Path) == "" {
		return fmt.Errorf("database.path cannot be empty")
	}
	return nil
}
