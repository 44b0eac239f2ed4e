package scan

import (
	"context"
	"time"
)

// Input is one scan request. Symbol is upper-cased before persistence.
type Input struct {
	TradeSymbol     string  `json:"trade_symbol"`
	TotalValue      float64 `json:"total_value"`
	SleepHours      float64 `json:"sleep_hours"`
	ExerciseMinutes int     `json:"exercise_minutes"`
}

// Record is the persisted outcome of one successful scan. It is written
// exactly once and never updated; values are stored unrounded.
type Record struct {
	ID        string
	CreatedAt time.Time
	Symbol    string

	// inputs
	TotalValue      float64
	SleepHours      float64
	ExerciseMinutes int

	// health
	HealthFactor   float64
	HealthAlert    string
	HealthNote     string
	HealthGuidance string

	// bankroll
	BankrollMode   string
	BankrollPct    float64
	BankrollAmount float64

	// risk & position
	RiskPerTradePct  float64
	RiskPerTrade     float64
	StopLossUsedPct  float64
	FinalPositionUSD float64
	EntryPrice       float64
	EstShares        float64
	StopLossPerShare float64
	StopLossLevel    float64
	RiskPerShare     float64
	ATR              float64
	HasATR           bool
	SizingPolicy     string
}

// ListOptions filters and pages the scan history.
type ListOptions struct {
	Limit  int
	Offset int
	Symbol string
}

// RecordStore is the persistence collaborator. Implementations must be
// safe for concurrent use; records are append-only.
type RecordStore interface {
	Insert(ctx context.Context, rec *Record) error
	List(ctx context.Context, opts ListOptions) ([]Record, error)
	Get(ctx context.Context, id string) (Record, error)
	Close() error
}
