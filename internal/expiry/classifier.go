package expiry

import (
	"github.com/tobenna/stockpot/internal/config"
)

// Classifier maps the days-until-expiry signal to a severity tier by
// evaluating the fixed thresholds most severe first. The threshold checks
// are strict "<" except the expired check, which is "<= 0".
type Classifier struct {
	thresholds config.ExpiryThresholds
}

// NewClassifier creates a classifier around an immutable threshold set.
func NewClassifier(thresholds config.ExpiryThresholds) *Classifier {
	return &Classifier{thresholds: thresholds}
}

// Classify assigns the tier for a days-until-expiry signal.
func (c *Classifier) Classify(daysUntilExpiry int) Tier {
	switch {
	case daysUntilExpiry <= 0:
		return TierExpired
	case daysUntilExpiry < c.thresholds.CriticalDays:
		return TierCritical
	case daysUntilExpiry < c.thresholds.WarningDays:
		return TierWarning
	default:
		return TierOK
	}
}
