// Package bankroll derives the tradable bankroll for one day from the
// total account value and the health risk-scaling factor.
package bankroll

// Calculator computes the per-day bankroll allocation. Construct once
// from config and reuse across requests; it carries no mutable state.
type Calculator struct {
	BasePct     float64
	MinPct      float64
	MaxPct      float64
	HealthScale bool
	Clamp       bool
}

// Assessment is the computed allocation: Amount = totalValue * Pct.
type Assessment struct {
	Amount float64
	Pct    float64
}

// Compute returns the bankroll amount and the fraction of total value
// actually allocated. The caller must treat Amount <= 0 as a rejected
// request; with factor >= 0.2 that only happens for non-positive
// totalValue.
func (c Calculator) Compute(totalValue, healthFactor float64) Assessment {
	pct := c.BasePct
	if c.HealthScale {
		pct *= healthFactor
	}
	if c.Clamp {
		if pct < c.MinPct {
			pct = c.MinPct
		}
		if pct > c.MaxPct {
			pct = c.MaxPct
		}
	}
	return Assessment{
		Amount: totalValue * pct,
		Pct:    pct,
	}
}
