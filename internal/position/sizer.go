// Package position turns a bankroll and risk settings into a concrete
// position plan. Two sizing policies exist; the capped one is canonical.
package position

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	ErrStopLossNotPositive   = errors.New("stop_loss_pct must be > 0")
	ErrEntryPriceNotPositive = errors.New("entry price must be > 0")
)

// Plan is the fully computed sizing recommendation for one scan.
// PositionUSD and Shares are both populated regardless of policy so the
// stored record stays comparable across policies. ATR is carried for
// reference only; neither formula consumes it.
type Plan struct {
	RiskPerTrade     float64
	RiskPerTradePct  float64
	StopLossPct      float64
	StopLossLevel    float64
	RiskPerShare     float64
	PositionUSD      float64
	Shares           float64
	StopLossPerShare float64
	EntryPrice       float64
	ATR              float64
	HasATR           bool
}

// Sizer computes a Plan from the bankroll and risk settings.
type Sizer interface {
	Name() string
	Size(bankrollAmount, riskPerTradePct, stopLossPct, entryPrice float64) (Plan, error)
}

// ForPolicy maps a config policy name onto a Sizer. Empty defaults to
// the capped policy.
func ForPolicy(policy string) (Sizer, error) {
	switch strings.ToLower(strings.TrimSpace(policy)) {
	case "", "capped":
		return CappedSizer{}, nil
	case "risk_based":
		return RiskBasedSizer{}, nil
	default:
		return nil, fmt.Errorf("unknown sizing policy %q", policy)
	}
}

// CappedSizer risks bankroll*riskPct per trade and never allocates more
// than the bankroll itself: position = min(risk/stopPct, bankroll).
type CappedSizer struct{}

func (CappedSizer) Name() string { return "capped" }

func (CappedSizer) Size(bankrollAmount, riskPerTradePct, stopLossPct, entryPrice float64) (Plan, error) {
	if err := checkInputs(stopLossPct, entryPrice); err != nil {
		return Plan{}, err
	}
	riskPerTrade := bankrollAmount * riskPerTradePct
	rawUSD := riskPerTrade / stopLossPct
	finalUSD := math.Min(rawUSD, bankrollAmount)
	shares := finalUSD / entryPrice
	stopPerShare := 0.0
	if shares > 0 {
		// Algebraically entryPrice*stopLossPct, kept in this form to
		// match the recorded final position.
		stopPerShare = finalUSD * stopLossPct / shares
	}
	return Plan{
		RiskPerTrade:     riskPerTrade,
		RiskPerTradePct:  riskPerTradePct,
		StopLossPct:      stopLossPct,
		StopLossLevel:    stopLossLevel(entryPrice, stopLossPct),
		RiskPerShare:     riskPerShare(entryPrice, stopLossPct),
		PositionUSD:      finalUSD,
		Shares:           shares,
		StopLossPerShare: stopPerShare,
		EntryPrice:       entryPrice,
	}, nil
}

// RiskBasedSizer sizes purely from risk per share: shares =
// riskPerTrade / (entry*stopPct). The result is NOT capped by the
// bankroll and can exceed available capital; callers accept that.
type RiskBasedSizer struct{}

func (RiskBasedSizer) Name() string { return "risk_based" }

func (RiskBasedSizer) Size(bankrollAmount, riskPerTradePct, stopLossPct, entryPrice float64) (Plan, error) {
	if err := checkInputs(stopLossPct, entryPrice); err != nil {
		return Plan{}, err
	}
	riskPerTrade := bankrollAmount * riskPerTradePct
	perShare := riskPerShare(entryPrice, stopLossPct)
	shares := 0.0
	if perShare > 0 {
		shares = riskPerTrade / perShare
	}
	return Plan{
		RiskPerTrade:     riskPerTrade,
		RiskPerTradePct:  riskPerTradePct,
		StopLossPct:      stopLossPct,
		StopLossLevel:    stopLossLevel(entryPrice, stopLossPct),
		RiskPerShare:     perShare,
		PositionUSD:      shares * entryPrice,
		Shares:           shares,
		StopLossPerShare: perShare,
		EntryPrice:       entryPrice,
	}, nil
}

func checkInputs(stopLossPct, entryPrice float64) error {
	if stopLossPct <= 0 || math.IsNaN(stopLossPct) {
		return ErrStopLossNotPositive
	}
	if entryPrice <= 0 || math.IsNaN(entryPrice) {
		return ErrEntryPriceNotPositive
	}
	return nil
}
