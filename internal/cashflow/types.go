package cashflow

import (
	"time"

	"github.com/tobenna/stockpot/internal/model"
)

// RiskLevel buckets a business by how quickly its balance is being
// consumed. Levels are ordered most severe first; RiskStable means the
// balance is never depleted.
type RiskLevel string

// Risk level constants.
const (
	// RiskCritical means the balance depletes within the critical window.
	RiskCritical RiskLevel = "critical"
	// RiskWarning means the balance depletes within the warning window.
	RiskWarning RiskLevel = "warning"
	// RiskOK means depletion is beyond the warning window.
	RiskOK RiskLevel = "ok"
	// RiskStable means the burn rate is non-positive and the balance grows.
	RiskStable RiskLevel = "stable"
)

// Prediction is the single verdict produced for a transaction history.
// DaysUntilBroke is nil when the business is stable, reported as "not
// applicable" rather than a number. Immutable once built.
type Prediction struct {
	ID              string                 `json:"id"`
	RiskLevel       RiskLevel              `json:"risk_level"`
	DaysUntilBroke  *int64                 `json:"days_until_broke"`
	AvgDailyIncome  float64                `json:"avg_daily_income"`
	AvgDailyExpense float64                `json:"avg_daily_expense"`
	BurnRate        float64                `json:"burn_rate"`
	ConfidenceScore float64                `json:"confidence_score"`
	Recommendations []model.Recommendation `json:"recommendations"`
	CreatedAt       time.Time              `json:"created_at"`
}
