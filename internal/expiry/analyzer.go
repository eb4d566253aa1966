// Package expiry implements the perishable-inventory expiry analysis: per
// record validation with graceful skip-on-error, derivation of the
// days-until-expiry signal, tier classification against fixed thresholds,
// recommendation lookup, and batch aggregation into a single result.
package expiry

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tobenna/stockpot/internal/common"
	"github.com/tobenna/stockpot/internal/config"
	"github.com/tobenna/stockpot/internal/model"
)

// ProgressFunc receives per-record progress while a batch is analyzed.
type ProgressFunc func(processed, total int)

// Analyzer runs every raw record through the validation, metric,
// classification and recommendation stages, buckets the outcomes by tier
// and computes the batch totals. An analyzer holds no mutable state across
// calls and is safe for concurrent use.
type Analyzer struct {
	validator  *ItemValidator
	classifier *Classifier

	// Progress, when set, is called after each record is processed.
	Progress ProgressFunc
}

// NewAnalyzer creates an analyzer around an immutable threshold set.
func NewAnalyzer(thresholds config.ExpiryThresholds) (*Analyzer, error) {
	if err := thresholds.Validate(); err != nil {
		return nil, err
	}
	return &Analyzer{
		validator:  NewItemValidator(),
		classifier: NewClassifier(thresholds),
	}, nil
}

// Analyze walks the batch once. Each record lands in exactly one of the
// expired, critical, warning, ok or skipped buckets; record-level failures
// become skip reasons and never abort the batch. An empty batch is a fatal
// error. The result timestamp is the batch reference date.
func (a *Analyzer) Analyze(batch *Batch) (*Result, error) {
	if batch == nil || len(batch.Items) == 0 {
		return nil, fmt.Errorf("%w: nothing to analyse", common.ErrEmptyInventory)
	}

	result := emptyResult()
	result.Status = StatusSuccess
	result.Timestamp = batch.ReferenceDate

	totalAtRisk := decimal.Zero
	totalExpired := decimal.Zero

	for i, item := range batch.Items {
		a.process(item, i, batch, result, &totalAtRisk, &totalExpired)
		if a.Progress != nil {
			a.Progress(i+1, len(batch.Items))
		}
	}

	result.Summary = Summary{
		CriticalItems:     len(result.CriticalItems),
		WarningItems:      len(result.WarningItems),
		OKItems:           len(result.OKItems),
		ExpiredItems:      len(result.ExpiredItems),
		SkippedItems:      len(result.SkippedItems),
		TotalValueAtRisk:  totalAtRisk.Round(2).InexactFloat64(),
		TotalExpiredValue: totalExpired.Round(2).InexactFloat64(),
	}

	common.LogInfo("Analyzed inventory batch", common.Fields{
		"items":               len(batch.Items),
		"critical":            result.Summary.CriticalItems,
		"warning":             result.Summary.WarningItems,
		"expired":             result.Summary.ExpiredItems,
		"skipped":             result.Summary.SkippedItems,
		"total_value_at_risk": result.Summary.TotalValueAtRisk,
	})

	return result, nil
}

// process runs one record through the four pipeline stages.
func (a *Analyzer) process(item RawItem, index int, batch *Batch, result *Result, totalAtRisk, totalExpired *decimal.Decimal) {
	if err := a.validator.Validate(item, index); err != nil {
		result.SkippedItems = append(result.SkippedItems, SkippedItem{
			ItemID:   item.stringOr("item_id", fmt.Sprintf("unknown_index_%d", index)),
			ItemName: item.stringOr("item_name", "unknown"),
			Reason:   err.Error(),
		})
		return
	}

	// Validation guarantees the key exists; a null value still means the
	// item cannot be placed on the expiry timeline.
	rawDate := item["expiry_date"]
	if rawDate == nil {
		result.SkippedItems = append(result.SkippedItems, SkippedItem{
			ItemID:   item.stringOr("item_id", ""),
			ItemName: item.stringOr("item_name", ""),
			Reason:   "No expiry date provided - item excluded from expiry tracking",
		})
		return
	}

	expiryDate, err := model.ParseISODate(fmt.Sprint(rawDate))
	if err != nil {
		result.SkippedItems = append(result.SkippedItems, SkippedItem{
			ItemID:   item.stringOr("item_id", ""),
			ItemName: item.stringOr("item_name", ""),
			Reason:   fmt.Sprintf("Invalid expiry_date format: '%v'. Expected YYYY-MM-DD.", rawDate),
		})
		return
	}

	days := DaysUntilExpiry(expiryDate, batch.ReferenceDate)

	quantity, _ := toFloat(item["quantity"])
	var price float64
	if p, ok := item["purchase_price"]; ok && p != nil {
		price, _ = toFloat(p)
	}
	valueAtRisk := ValueAtRisk(price, quantity)

	tier := a.classifier.Classify(days)

	enriched := EnrichedItem{
		ItemID:          item.stringOr("item_id", ""),
		ItemName:        item.stringOr("item_name", ""),
		Quantity:        quantity,
		Unit:            item.stringOr("unit", ""),
		ExpiryDate:      fmt.Sprint(rawDate),
		DaysUntilExpiry: days,
		ValueAtRisk:     valueAtRisk.InexactFloat64(),
		Tier:            tier,
		Recommendations: Recommendations(tier),
	}

	// Expired stock is a confirmed loss, tracked separately from the
	// actionable value still at risk.
	switch tier {
	case TierExpired:
		result.ExpiredItems = append(result.ExpiredItems, enriched)
		*totalExpired = totalExpired.Add(valueAtRisk)
	case TierCritical:
		result.CriticalItems = append(result.CriticalItems, enriched)
		*totalAtRisk = totalAtRisk.Add(valueAtRisk)
	case TierWarning:
		result.WarningItems = append(result.WarningItems, enriched)
		*totalAtRisk = totalAtRisk.Add(valueAtRisk)
	default:
		result.OKItems = append(result.OKItems, enriched)
	}
}
