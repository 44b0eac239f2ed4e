package scan

import "errors"

var (
	// ErrInvalidInput covers request-level validation failures.
	ErrInvalidInput = errors.New("invalid scan input")
	// ErrBadBankroll means the computed bankroll came out non-positive.
	ErrBadBankroll = errors.New("computed bankroll is zero or negative")
	// ErrBadStopLoss means the configured stop-loss percentage is not positive.
	ErrBadStopLoss = errors.New("stop_loss_pct must be > 0")
	// ErrNoPriceData means the market-data source had no usable price.
	ErrNoPriceData = errors.New("no price data available")
	// ErrNotFound means the requested scan record does not exist.
	ErrNotFound = errors.New("scan not found")
)
