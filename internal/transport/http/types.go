package scanhttp

import (
	"time"

	"tradefit/internal/scan"

	"github.com/shopspring/decimal"
)

// Request/response DTOs. Rounding happens here and only here: stored
// values stay unrounded, responses round currency to 2dp, percentages
// to 4dp, the health factor to 3dp and prices/derived fields to 4dp.

type scanRequest struct {
	TradeSymbol     string  `json:"trade_symbol" binding:"required"`
	TotalValue      float64 `json:"total_value" binding:"required,gt=0"`
	SleepHours      float64 `json:"sleep_hours" binding:"gte=0"`
	ExerciseMinutes int     `json:"exercise_minutes" binding:"gte=0"`
}

type healthBlock struct {
	SleepHours      float64 `json:"sleep_hours"`
	ExerciseMinutes int     `json:"exercise_minutes"`
	Factor          float64 `json:"factor"`
	Alert           string  `json:"alert"`
	Note            string  `json:"note"`
	Guidance        string  `json:"guidance"`
}

type bankrollBlock struct {
	Mode       string  `json:"mode"`
	Amount     float64 `json:"amount"`
	PctOfTotal float64 `json:"pct_of_total"`
}

type riskBlock struct {
	RiskPerTradePct float64 `json:"risk_per_trade_pct"`
	RiskPerTradeUSD float64 `json:"risk_per_trade_usd"`
	StopLossPct     float64 `json:"stop_loss_pct"`
}

type positionBlock struct {
	SizingPolicy     string   `json:"sizing_policy"`
	FinalPositionUSD float64  `json:"final_position_usd"`
	EntryPrice       float64  `json:"entry_price"`
	EstShares        float64  `json:"est_shares"`
	StopLossPerShare float64  `json:"stop_loss_per_share"`
	StopLossLevel    float64  `json:"stop_loss_level"`
	RiskPerShare     float64  `json:"risk_per_share"`
	ATR              *float64 `json:"atr,omitempty"`
}

type scanResponse struct {
	RecordID     string        `json:"record_id"`
	Symbol       string        `json:"symbol"`
	TimestampUTC string        `json:"timestamp_utc"`
	Health       healthBlock   `json:"health"`
	Bankroll     bankrollBlock `json:"bankroll"`
	Risk         riskBlock     `json:"risk"`
	Position     positionBlock `json:"position"`
}

type scanRow struct {
	ID               string    `json:"id"`
	CreatedAt        time.Time `json:"created_at"`
	Symbol           string    `json:"symbol"`
	FinalPositionUSD float64   `json:"final_position_usd"`
	RiskPerTrade     float64   `json:"risk_per_trade"`
	StopLossUsedPct  float64   `json:"stop_loss_used_pct"`
}

func toScanResponse(rec scan.Record) scanResponse {
	resp := scanResponse{
		RecordID:     rec.ID,
		Symbol:       rec.Symbol,
		TimestampUTC: rec.CreatedAt.UTC().Format(time.RFC3339),
		Health: healthBlock{
			SleepHours:      rec.SleepHours,
			ExerciseMinutes: rec.ExerciseMinutes,
			Factor:          roundTo(rec.HealthFactor, 3),
			Alert:           rec.HealthAlert,
			Note:            rec.HealthNote,
			Guidance:        rec.HealthGuidance,
		},
		Bankroll: bankrollBlock{
			Mode:       rec.BankrollMode,
			Amount:     roundTo(rec.BankrollAmount, 2),
			PctOfTotal: roundTo(rec.BankrollPct, 4),
		},
		Risk: riskBlock{
			RiskPerTradePct: roundTo(rec.RiskPerTradePct, 4),
			RiskPerTradeUSD: roundTo(rec.RiskPerTrade, 2),
			StopLossPct:     roundTo(rec.StopLossUsedPct, 4),
		},
		Position: positionBlock{
			SizingPolicy:     rec.SizingPolicy,
			FinalPositionUSD: roundTo(rec.FinalPositionUSD, 2),
			EntryPrice:       roundTo(rec.EntryPrice, 4),
			EstShares:        roundTo(rec.EstShares, 4),
			StopLossPerShare: roundTo(rec.StopLossPerShare, 4),
			StopLossLevel:    roundTo(rec.StopLossLevel, 4),
			RiskPerShare:     roundTo(rec.RiskPerShare, 4),
		},
	}
	if rec.HasATR {
		atr := roundTo(rec.ATR, 4)
		resp.Position.ATR = &atr
	}
	return resp
}

func toScanRow(rec scan.Record) scanRow {
	return scanRow{
		ID:               rec.ID,
		CreatedAt:        rec.CreatedAt,
		Symbol:           rec.Symbol,
		FinalPositionUSD: roundTo(rec.FinalPositionUSD, 2),
		RiskPerTrade:     roundTo(rec.RiskPerTrade, 2),
		StopLossUsedPct:  roundTo(rec.StopLossUsedPct, 4),
	}
}

type scanDetail struct {
	ID        string        `json:"id"`
	CreatedAt time.Time     `json:"created_at"`
	Symbol    string        `json:"symbol"`
	Inputs    detailInputs  `json:"inputs"`
	Computed  detailComputed `json:"computed"`
}

type detailInputs struct {
	TotalValue      float64 `json:"total_value"`
	SleepHours      float64 `json:"sleep_hours"`
	ExerciseMinutes int     `json:"exercise_minutes"`
}

type detailComputed struct {
	RiskPerTradePct  float64  `json:"risk_per_trade_pct"`
	StopLossPct      float64  `json:"stop_loss_pct"`
	BankrollMode     string   `json:"bankroll_mode"`
	BankrollPct      float64  `json:"bankroll_pct"`
	BankrollAmount   float64  `json:"bankroll_amount"`
	HealthFactor     float64  `json:"health_factor"`
	HealthAlert      string   `json:"health_alert"`
	HealthNote       string   `json:"health_note"`
	HealthGuidance   string   `json:"health_guidance"`
	RiskPerTrade     float64  `json:"risk_per_trade"`
	StopLossUsedPct  float64  `json:"stop_loss_used_pct"`
	FinalPositionUSD float64  `json:"final_position_usd"`
	EntryPrice       float64  `json:"entry_price"`
	EstShares        float64  `json:"est_shares"`
	StopLossPerShare float64  `json:"stop_loss_per_share"`
	StopLossLevel    float64  `json:"stop_loss_level"`
	RiskPerShare     float64  `json:"risk_per_share"`
	ATR              *float64 `json:"atr,omitempty"`
	SizingPolicy     string   `json:"sizing_policy"`
}

func toScanDetail(rec scan.Record) scanDetail {
	d := scanDetail{
		ID:        rec.ID,
		CreatedAt: rec.CreatedAt,
		Symbol:    rec.Symbol,
		Inputs: detailInputs{
			TotalValue:      rec.TotalValue,
			SleepHours:      rec.SleepHours,
			ExerciseMinutes: rec.ExerciseMinutes,
		},
		Computed: detailComputed{
			RiskPerTradePct:  rec.RiskPerTradePct,
			StopLossPct:      rec.StopLossUsedPct,
			BankrollMode:     rec.BankrollMode,
			BankrollPct:      rec.BankrollPct,
			BankrollAmount:   rec.BankrollAmount,
			HealthFactor:     rec.HealthFactor,
			HealthAlert:      rec.HealthAlert,
			HealthNote:       rec.HealthNote,
			HealthGuidance:   rec.HealthGuidance,
			RiskPerTrade:     rec.RiskPerTrade,
			StopLossUsedPct:  rec.StopLossUsedPct,
			FinalPositionUSD: rec.FinalPositionUSD,
			EntryPrice:       roundTo(rec.EntryPrice, 4),
			EstShares:        roundTo(rec.EstShares, 4),
			StopLossPerShare: roundTo(rec.StopLossPerShare, 4),
			StopLossLevel:    roundTo(rec.StopLossLevel, 4),
			RiskPerShare:     roundTo(rec.RiskPerShare, 4),
			SizingPolicy:     rec.SizingPolicy,
		},
	}
	if rec.HasATR {
		atr := roundTo(rec.ATR, 4)
		d.Computed.ATR = &atr
	}
	return d
}

func roundTo(v float64, places int32) float64 {
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}
