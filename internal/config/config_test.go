package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_DefaultsApplied(t *testing.T) {
	path := writeConfig(t, `
database:
  path: /tmp/test.db
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, ":8080", cfg.App.HTTPAddr)
	assert.Equal(t, 0.1, cfg.Bankroll.BasePct)
	assert.True(t, cfg.Bankroll.HealthScale)
	assert.False(t, cfg.Bankroll.Clamp)
	assert.Equal(t, 0.05, cfg.Risk.PerTradePct)
	assert.Equal(t, 0.01, cfg.Risk.StopLossPct)
	assert.Equal(t, "capped", cfg.Risk.SizingPolicy)
	assert.Equal(t, 15, cfg.Market.TimeoutSeconds)
	assert.Equal(t, 14, cfg.Market.ATRLookback)
	assert.Equal(t, "/tmp/test.db", cfg.Database.Path)
}

func TestLoad_ExplicitValuesWin(t *testing.T) {
	path := writeConfig(t, `
app:
  http_addr: ":9000"
bankroll:
  base_pct: 0.2
  health_scale: false
risk:
  sizing_policy: risk_based
database:
  path: /tmp/test.db
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.App.HTTPAddr)
	assert.Equal(t, 0.2, cfg.Bankroll.BasePct)
	assert.False(t, cfg.Bankroll.HealthScale)
	assert.Equal(t, "risk_based", cfg.Risk.SizingPolicy)
}

func TestLoad_ValidationFailures(t *testing.T) {
	cases := []struct {
		name    string
		content string
		errPart string
	}{
		{
			"bad base pct",
			"bankroll:\n  base_pct: 1.5\ndatabase:\n  path: x.db\n",
			"bankroll.base_pct",
		},
		{
			"clamp with inverted band",
			"bankroll:\n  clamp: true\n  min_pct: 0.5\n  max_pct: 0.1\ndatabase:\n  path: x.db\n",
			"bankroll.min_pct",
		},
		{
			"bad sizing policy",
			"risk:\n  sizing_policy: martingale\ndatabase:\n  path: x.db\n",
			"risk.sizing_policy",
		},
		{
			"bad lookback",
			"market:\n  atr_lookback: -1\ndatabase:\n  path: x.db\n",
			"market.atr_lookback",
		},
		{
			"missing db path",
			"database:\n  path: \"\"\n",
			"database.path",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errPart)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_EmptyPath(t *testing.T) {
	_, err := Load("")
	assert.Error(t, err)
}
