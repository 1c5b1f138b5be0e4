package settings

import "fmt"

// Range limits enforced eagerly when a config is constructed or updated.
const (
	MaxFutureEducationYearsLimit = 10
	MaxFutureWorkMonthsLimit     = 12
)

// ValidationConfig enumerates the recognized validation options. Values are
// validated at construction time; out-of-range values are rejected, never
// silently clamped.
type ValidationConfig struct {
	MaxFutureEducationYears int     `json:"maxFutureEducationYears"`
	MaxFutureWorkMonths     int     `json:"maxFutureWorkMonths"`
	EnableTypoDetection     bool    `json:"enableTypoDetection"`
	ConfidenceThreshold     float64 `json:"confidenceThreshold"`
	StrictMode              bool    `json:"strictMode"`
}

// Defaults returns the built-in configuration used whenever persistence is
// unavailable.
func Defaults() ValidationConfig {
	return ValidationConfig{
		MaxFutureEducationYears: 4,
		MaxFutureWorkMonths:     6,
		EnableTypoDetection:     true,
		ConfidenceThreshold:     0.6,
		StrictMode:              false,
	}
}

// Validate checks all option ranges.
func (c ValidationConfig) Validate() error {
	if c.MaxFutureEducationYears < 0 || c.MaxFutureEducationYears > MaxFutureEducationYearsLimit {
		return fmt.Errorf("maxFutureEducationYears must be in [0,%d], got %d", MaxFutureEducationYearsLimit, c.MaxFutureEducationYears)
	}
	if c.MaxFutureWorkMonths < 0 || c.MaxFutureWorkMonths > MaxFutureWorkMonthsLimit {
		return fmt.Errorf("maxFutureWorkMonths must be in [0,%d], got %d", MaxFutureWorkMonthsLimit, c.MaxFutureWorkMonths)
	}
	if c.ConfidenceThreshold < 0 || c.ConfidenceThreshold > 1 {
		return fmt.Errorf("confidenceThreshold must be in [0,1], got %g", c.ConfidenceThreshold)
	}
	return nil
}
