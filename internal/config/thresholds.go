// Package config provides immutable threshold configuration for the risk
// engines, with documented defaults and optional viper overrides.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/tobenna/stockpot/internal/common"
)

// ExpiryThresholds configures the inventory expiry classifier. Values are
// day counts evaluated against days-until-expiry, most severe first: <= 0
// is expired, below CriticalDays is critical, below WarningDays is warning,
// everything else is ok.
type ExpiryThresholds struct {
	CriticalDays int
	WarningDays  int
}

// DefaultExpiryThresholds returns the documented defaults: critical within
// the week, warning within two.
func DefaultExpiryThresholds() ExpiryThresholds {
	return ExpiryThresholds{
		CriticalDays: 7,
		WarningDays:  14,
	}
}

// Validate ensures the thresholds are ordered and positive.
func (t ExpiryThresholds) Validate() error {
	if t.CriticalDays <= 0 {
		return fmt.Errorf("%w: critical threshold must be positive, got %d", common.ErrInvalidConfig, t.CriticalDays)
	}
	if t.WarningDays <= t.CriticalDays {
		return fmt.Errorf("%w: warning threshold (%d) must exceed critical threshold (%d)",
			common.ErrInvalidConfig, t.WarningDays, t.CriticalDays)
	}
	return nil
}

// CashflowThresholds configures the cashflow risk classifier and the
// confidence heuristic.
type CashflowThresholds struct {
	// CriticalDays and WarningDays bound days-until-broke, inclusive.
	CriticalDays int64
	WarningDays  int64

	// History spans (in days) granting full, medium and low confidence.
	FullConfidenceDays   int
	MediumConfidenceDays int
	LowConfidenceDays    int

	// MinTransactionsPerDay is the record density granting full density score.
	MinTransactionsPerDay float64
}

// DefaultCashflowThresholds returns the documented defaults.
func DefaultCashflowThresholds() CashflowThresholds {
	return CashflowThresholds{
		CriticalDays:          30,
		WarningDays:           60,
		FullConfidenceDays:    90,
		MediumConfidenceDays:  60,
		LowConfidenceDays:     30,
		MinTransactionsPerDay: 5,
	}
}

// Validate ensures the thresholds are ordered and positive.
func (t CashflowThresholds) Validate() error {
	if t.CriticalDays <= 0 {
		return fmt.Errorf("%w: critical threshold must be positive, got %d", common.ErrInvalidConfig, t.CriticalDays)
	}
	if t.WarningDays <= t.CriticalDays {
		return fmt.Errorf("%w: warning threshold (%d) must exceed critical threshold (%d)",
			common.ErrInvalidConfig, t.WarningDays, t.CriticalDays)
	}
	if t.LowConfidenceDays <= 0 ||
		t.MediumConfidenceDays <= t.LowConfidenceDays ||
		t.FullConfidenceDays <= t.MediumConfidenceDays {
		return fmt.Errorf("%w: confidence spans must be positive and ascending", common.ErrInvalidConfig)
	}
	if t.MinTransactionsPerDay <= 0 {
		return fmt.Errorf("%w: minimum transactions per day must be positive", common.ErrInvalidConfig)
	}
	return nil
}

// Viper keys for threshold overrides.
const (
	keyExpiryCritical   = "thresholds.expiry.critical_days"
	keyExpiryWarning    = "thresholds.expiry.warning_days"
	keyCashflowCritical = "thresholds.cashflow.critical_days"
	keyCashflowWarning  = "thresholds.cashflow.warning_days"
)

// LoadExpiryThresholds reads expiry threshold overrides from viper, falling
// back to the documented defaults for unset keys.
func LoadExpiryThresholds(v *viper.Viper) (ExpiryThresholds, error) {
	t := DefaultExpiryThresholds()
	if v.IsSet(keyExpiryCritical) {
		t.CriticalDays = v.GetInt(keyExpiryCritical)
	}
	if v.IsSet(keyExpiryWarning) {
		t.WarningDays = v.GetInt(keyExpiryWarning)
	}
	if err := t.Validate(); err != nil {
		return ExpiryThresholds{}, err
	}
	return t, nil
}

// LoadCashflowThresholds reads cashflow threshold overrides from viper,
// falling back to the documented defaults for unset keys. The confidence
// spans are fixed business rules and are not overridable.
func LoadCashflowThresholds(v *viper.Viper) (CashflowThresholds, error) {
	t := DefaultCashflowThresholds()
	if v.IsSet(keyCashflowCritical) {
		t.CriticalDays = v.GetInt64(keyCashflowCritical)
	}
	if v.IsSet(keyCashflowWarning) {
		t.WarningDays = v.GetInt64(keyCashflowWarning)
	}
	if err := t.Validate(); err != nil {
		return CashflowThresholds{}, err
	}
	return t, nil
}
