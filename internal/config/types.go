package config

// Config is the top-level TradeFit configuration.
type Config struct {
	App      AppConfig      `toml:"app"`
	Bankroll BankrollConfig `toml:"bankroll"`
	Risk     RiskConfig     `toml:"risk"`
	Market   MarketConfig   `toml:"market"`
	Database DatabaseConfig `toml:"database"`
}

type AppConfig struct {
	Env      string `toml:"env"`
	LogLevel string `toml:"log_level"`
	HTTPAddr string `toml:"http_addr"`
	LogPath  string `toml:"log_path"`
}

// BankrollConfig controls how much of the account is put at play per day.
type BankrollConfig struct {
	BasePct     float64 `toml:"base_pct"`
	MinPct      float64 `toml:"min_pct"`
	MaxPct      float64 `toml:"max_pct"`
	HealthScale bool    `toml:"health_scale"`
	Clamp       bool    `toml:"clamp"`
}

// RiskConfig holds the per-trade risk settings applied to every scan.
type RiskConfig struct {
	PerTradePct  float64 `toml:"per_trade_pct"`
	StopLossPct  float64 `toml:"stop_loss_pct"`
	SizingPolicy string  `toml:"sizing_policy"` // "capped" | "risk_based"
}

type MarketConfig struct {
	RESTBaseURL    string `toml:"rest_base_url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	ATRLookback    int    `toml:"atr_lookback"`
	HistoryLimit   int    `toml:"history_limit"`
}

type DatabaseConfig struct {
	Path string `toml:"path"`
}
