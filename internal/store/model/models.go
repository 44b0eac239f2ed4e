package model

import "gorm.io/datatypes"

// ScanRecordModel is the persisted row for one scan. Rows are
// append-only: inserted once on success, never updated.
type ScanRecordModel struct {
	ID            string `gorm:"column:id;primaryKey"`
	CreatedAtUnix int64  `gorm:"column:created_at"`
	Symbol        string `gorm:"column:symbol;index"`

	TotalValue      float64 `gorm:"column:total_value"`
	SleepHours      float64 `gorm:"column:sleep_hours"`
	ExerciseMinutes int     `gorm:"column:exercise_minutes"`

	HealthFactor   float64 `gorm:"column:health_factor"`
	HealthAlert    string  `gorm:"column:health_alert"`
	HealthNote     string  `gorm:"column:health_note"`
	HealthGuidance string  `gorm:"column:health_guidance"`

	BankrollMode   string  `gorm:"column:bankroll_mode"`
	BankrollPct    float64 `gorm:"column:bankroll_pct"`
	BankrollAmount float64 `gorm:"column:bankroll_amount"`

	RiskPerTradePct  float64  `gorm:"column:risk_per_trade_pct"`
	RiskPerTrade     float64  `gorm:"column:risk_per_trade"`
	StopLossUsedPct  float64  `gorm:"column:stop_loss_used_pct"`
	FinalPositionUSD float64  `gorm:"column:final_position_usd"`
	EntryPrice       float64  `gorm:"column:entry_price"`
	EstShares        float64  `gorm:"column:est_shares"`
	StopLossPerShare float64  `gorm:"column:stop_loss_per_share"`
	StopLossLevel    float64  `gorm:"column:stop_loss_level"`
	RiskPerShare     float64  `gorm:"column:risk_per_share"`
	ATR              *float64 `gorm:"column:atr"`
	SizingPolicy     string   `gorm:"column:sizing_policy"`

	InputJSON datatypes.JSON `gorm:"column:input_json;type:TEXT"`
}

func (ScanRecordModel) TableName() string { return "scan_records" }
