package cashflow

import (
	"log/slog"

	"github.com/tobenna/stockpot/internal/model"
)

// Recommendations returns the prioritized action list for a risk level.
// The catalog is total over the known levels; each call returns a fresh
// slice the caller owns. An unrecognized level gets a single generic
// action and a logged warning rather than a silently empty list.
func Recommendations(level RiskLevel) []model.Recommendation {
	switch level {
	case RiskCritical:
		return []model.Recommendation{
			{Priority: 1, Action: "Reduce non-essential expenses immediately"},
			{Priority: 2, Action: "Follow up on all pending payments"},
			{Priority: 3, Action: "Consider short-term financing options"},
		}
	case RiskWarning:
		return []model.Recommendation{
			{Priority: 1, Action: "Review and cut discretionary spending"},
			{Priority: 2, Action: "Speed up collection of receivables"},
			{Priority: 3, Action: "Identify and plan new revenue sources"},
		}
	case RiskOK:
		return []model.Recommendation{
			{Priority: 1, Action: "Monitor cashflow on a weekly basis"},
			{Priority: 2, Action: "Build an emergency cash reserve"},
		}
	case RiskStable:
		return []model.Recommendation{
			{Priority: 1, Action: "Maintain current financial discipline"},
			{Priority: 2, Action: "Consider reinvesting surplus into inventory"},
		}
	default:
		slog.Warn("Unknown risk level, using fallback recommendation", "risk_level", string(level))
		return []model.Recommendation{
			{Priority: 1, Action: "Review your transaction data for accuracy"},
		}
	}
}
