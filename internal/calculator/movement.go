package calculator

import (
	"errors"
	"math"
)

// ErrNoSignal marks a bar that cannot yield a movement value: a missing or
// zero low/high. Callers treat it as "no data", not as a failure.
var ErrNoSignal = errors.New("no usable high/low")

// MovementPct returns the intraday movement percentage (high-low)/low*100.
func MovementPct(high, low float64) (float64, error) {
	if low <= 0 || high <= 0 {
		return 0, ErrNoSignal
	}
	return (high - low) / low * 100, nil
}

// Round2 rounds v to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
