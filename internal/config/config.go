package config

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

const envPrefix = "tradefit"

// Load reads the YAML config file, layers TRADEFIT_* environment
// overrides on top, applies defaults and validates the result.
func Load(path string) (*Config, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("config path cannot be empty")
	}
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config file failed (%s): %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "toml"
		dc.WeaklyTypedInput = true
	}); err != nil {
		return nil, fmt.Errorf("parsing config failed: %w", err)
	}
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "development")
	v.SetDefault("app.log_level", "info")
	v.SetDefault("app.http_addr", ":8080")

	v.SetDefault("bankroll.base_pct", 0.1)
	v.SetDefault("bankroll.min_pct", 0.1)
	v.SetDefault("bankroll.max_pct", 0.1)
	v.SetDefault("bankroll.health_scale", true)
	v.SetDefault("bankroll.clamp", false)

	v.SetDefault("risk.per_trade_pct", 0.05)
	v.SetDefault("risk.stop_loss_pct", 0.01)
	v.SetDefault("risk.sizing_policy", "capped")

	v.SetDefault("market.rest_base_url", "")
	v.SetDefault("market.timeout_seconds", 15)
	v.SetDefault("market.atr_lookback", 14)
	v.SetDefault("market.history_limit", 180)

	v.SetDefault("database.path", "data/tradefit.db")
}
