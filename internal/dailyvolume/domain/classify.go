package domain

import "time"

const (
	StatusLow    = "low"
	StatusNormal = "normal"
	StatusHigh   = "high"
)

// TrailingWindow is the lookback over which the site average is computed.
const TrailingWindow = 7 * 24 * time.Hour

// Classify grades a reading against ±20% bands around the trailing site
// average. A nil average (no rows in the window) classifies as normal.
func Classify(volume float64, avg *float64) string {
	if avg == nil {
		return StatusNormal
	}
	low := 0.8 * *avg
	high := 1.2 * *avg
	switch {
	case volume < low:
		return StatusLow
	case volume > high:
		return StatusHigh
	default:
		return StatusNormal
	}
}
