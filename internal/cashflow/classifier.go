package cashflow

import (
	"github.com/shopspring/decimal"
)

// classify maps the burn-rate signal to a risk level. A non-positive burn
// rate means the balance is never depleted: the level is stable and
// days-until-broke is undefined. Otherwise days-until-broke is the balance
// divided by the burn rate, truncated toward zero, bounded inclusively by
// the critical and warning thresholds.
func (p *Predictor) classify(balance, burnRate decimal.Decimal) (RiskLevel, *int64) {
	if burnRate.LessThanOrEqual(decimal.Zero) {
		return RiskStable, nil
	}

	days := balance.Div(burnRate).IntPart()
	switch {
	case days <= p.thresholds.CriticalDays:
		return RiskCritical, &days
	case days <= p.thresholds.WarningDays:
		return RiskWarning, &days
	default:
		return RiskOK, &days
	}
}
