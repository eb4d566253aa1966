package expiry

import (
	"log/slog"

	"github.com/tobenna/stockpot/internal/model"
)

// Recommendations returns the prioritized action list for a tier. The
// catalog is total over the known tiers; each call returns a fresh slice
// the caller owns. An unrecognized tier gets a single generic action and a
// logged warning rather than a silently empty list.
func Recommendations(tier Tier) []model.Recommendation {
	switch tier {
	case TierExpired:
		return []model.Recommendation{
			{Priority: 1, Action: "Item has EXPIRED: remove from stock immediately and do not sell"},
		}
	case TierCritical:
		return []model.Recommendation{
			{Priority: 1, Action: "Offer 20-30% discount to clear stock immediately"},
			{Priority: 2, Action: "Contact regular customers directly"},
			{Priority: 3, Action: "Consider donation if unsellable"},
		}
	case TierWarning:
		return []model.Recommendation{
			{Priority: 1, Action: "Feature prominently in store"},
			{Priority: 2, Action: "Include in meal combos or special offers"},
			{Priority: 3, Action: "Consider freezing or further processing"},
		}
	case TierOK:
		return []model.Recommendation{
			{Priority: 1, Action: "Monitor regularly; stock is within safe range"},
		}
	default:
		slog.Warn("Unknown expiry tier, using fallback recommendation", "tier", string(tier))
		return []model.Recommendation{
			{Priority: 1, Action: "Review item data for accuracy"},
		}
	}
}
