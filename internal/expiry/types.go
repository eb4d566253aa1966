package expiry

import (
	"time"

	"github.com/google/uuid"

	"github.com/tobenna/stockpot/internal/model"
)

// Tier buckets an inventory item by how close it is to expiry. Tiers are
// ordered most severe first.
type Tier string

// Tier constants.
const (
	// TierExpired marks items already past their expiry date.
	TierExpired Tier = "expired"
	// TierCritical marks items expiring within the critical window.
	TierCritical Tier = "critical"
	// TierWarning marks items expiring within the warning window.
	TierWarning Tier = "warning"
	// TierOK marks items safely within range.
	TierOK Tier = "ok"
)

// Status indicates whether a batch analysis succeeded or aborted.
type Status string

// Status constants.
const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// EnrichedItem is a validated item together with its derived signal, tier
// and recommendations. It is immutable once built and owned by the result
// bucket for its tier.
type EnrichedItem struct {
	ItemID          string                 `json:"item_id"`
	ItemName        string                 `json:"item_name"`
	Quantity        float64                `json:"quantity"`
	Unit            string                 `json:"unit"`
	ExpiryDate      string                 `json:"expiry_date"`
	DaysUntilExpiry int                    `json:"days_until_expiry"`
	ValueAtRisk     float64                `json:"value_at_risk"`
	Tier            Tier                   `json:"tier"`
	Recommendations []model.Recommendation `json:"recommendation"`
}

// SkippedItem records a raw item excluded from classification, with a
// human-readable reason. Never mutated after creation.
type SkippedItem struct {
	ItemID   string `json:"item_id"`
	ItemName string `json:"item_name"`
	Reason   string `json:"reason"`
}

// Summary carries the per-bucket counts and monetary totals for a batch.
type Summary struct {
	CriticalItems     int     `json:"critical_items"`
	WarningItems      int     `json:"warning_items"`
	OKItems           int     `json:"ok_items"`
	ExpiredItems      int     `json:"expired_items"`
	SkippedItems      int     `json:"skipped_items"`
	TotalValueAtRisk  float64 `json:"total_value_at_risk"`
	TotalExpiredValue float64 `json:"total_expired_value"`
}

// Result is the outcome of one batch analysis. All fields are populated on
// success; on a fatal batch error only Status, Message and Timestamp carry
// information, with the buckets left empty so the shape stays uniform for
// the consuming driver.
type Result struct {
	ID            string         `json:"id"`
	Status        Status         `json:"status"`
	Message       string         `json:"message,omitempty"`
	Summary       Summary        `json:"summary"`
	CriticalItems []EnrichedItem `json:"critical_items"`
	WarningItems  []EnrichedItem `json:"warning_items"`
	ExpiredItems  []EnrichedItem `json:"expired_items"`
	OKItems       []EnrichedItem `json:"ok_items"`
	SkippedItems  []SkippedItem  `json:"skipped_items"`
	Timestamp     time.Time      `json:"timestamp"`
}

func emptyResult() *Result {
	return &Result{
		ID:            uuid.New().String(),
		CriticalItems: []EnrichedItem{},
		WarningItems:  []EnrichedItem{},
		ExpiredItems:  []EnrichedItem{},
		OKItems:       []EnrichedItem{},
		SkippedItems:  []SkippedItem{},
	}
}

// ErrorResult wraps a fatal batch error in the uniform result shape the
// surrounding driver consumes.
func ErrorResult(err error) *Result {
	r := emptyResult()
	r.Status = StatusError
	r.Message = err.Error()
	r.Timestamp = time.Now().UTC()
	return r
}
