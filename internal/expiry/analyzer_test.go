package expiry

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tobenna/stockpot/internal/common"
	"github.com/tobenna/stockpot/internal/config"
)

var testRef = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	a, err := NewAnalyzer(config.DefaultExpiryThresholds())
	require.NoError(t, err)
	return a
}

// itemExpiringIn builds a valid item whose expiry date is the given number
// of days after the test reference date.
func itemExpiringIn(id string, days int, price float64) RawItem {
	return RawItem{
		"item_id":        id,
		"item_name":      "Item " + id,
		"quantity":       10.0,
		"unit":           "kg",
		"expiry_date":    testRef.AddDate(0, 0, days).Format("2006-01-02"),
		"purchase_price": price,
	}
}

func TestAnalyze_TierBoundaries(t *testing.T) {
	tests := []struct {
		name     string
		days     int
		wantTier Tier
	}{
		{name: "long expired", days: -30, wantTier: TierExpired},
		{name: "expired yesterday", days: -1, wantTier: TierExpired},
		{name: "expires today", days: 0, wantTier: TierExpired},
		{name: "one day left", days: 1, wantTier: TierCritical},
		{name: "six days left", days: 6, wantTier: TierCritical},
		{name: "seven days left", days: 7, wantTier: TierWarning},
		{name: "thirteen days left", days: 13, wantTier: TierWarning},
		{name: "fourteen days left", days: 14, wantTier: TierOK},
		{name: "far future", days: 365, wantTier: TierOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analyzer := newTestAnalyzer(t)
			batch := NewBatch([]RawItem{itemExpiringIn("A1", tt.days, 1)}, testRef)

			result, err := analyzer.Analyze(batch)
			require.NoError(t, err)

			buckets := map[Tier][]EnrichedItem{
				TierExpired:  result.ExpiredItems,
				TierCritical: result.CriticalItems,
				TierWarning:  result.WarningItems,
				TierOK:       result.OKItems,
			}
			for tier, items := range buckets {
				if tier == tt.wantTier {
					require.Len(t, items, 1, "expected item in %s bucket", tier)
					assert.Equal(t, tt.days, items[0].DaysUntilExpiry)
					assert.Equal(t, tt.wantTier, items[0].Tier)
				} else {
					assert.Empty(t, items, "unexpected item in %s bucket", tier)
				}
			}
		})
	}
}

func TestAnalyze_MilkExample(t *testing.T) {
	analyzer := newTestAnalyzer(t)
	batch := NewBatch([]RawItem{{
		"item_id":        "A1",
		"item_name":      "Milk",
		"quantity":       10.0,
		"unit":           "L",
		"expiry_date":    "2025-01-01",
		"purchase_price": 2.0,
	}}, testRef)

	result, err := analyzer.Analyze(batch)
	require.NoError(t, err)

	require.Len(t, result.ExpiredItems, 1)
	milk := result.ExpiredItems[0]
	assert.Equal(t, 0, milk.DaysUntilExpiry)
	assert.Equal(t, TierExpired, milk.Tier)
	assert.InDelta(t, 20.0, milk.ValueAtRisk, 1e-9)

	assert.Equal(t, StatusSuccess, result.Status)
	assert.Equal(t, 1, result.Summary.ExpiredItems)
	assert.InDelta(t, 20.0, result.Summary.TotalExpiredValue, 1e-9)
	assert.Zero(t, result.Summary.TotalValueAtRisk, "expired value is a confirmed loss, not value at risk")
}

func TestAnalyze_Totals(t *testing.T) {
	analyzer := newTestAnalyzer(t)
	batch := NewBatch([]RawItem{
		itemExpiringIn("C1", 3, 5),    // critical: 10 * 5 = 50
		itemExpiringIn("W1", 10, 2.5), // warning: 10 * 2.5 = 25
		itemExpiringIn("E1", -2, 4),   // expired: 10 * 4 = 40
		itemExpiringIn("O1", 30, 100), // ok: excluded from both totals
	}, testRef)

	result, err := analyzer.Analyze(batch)
	require.NoError(t, err)

	assert.InDelta(t, 75.0, result.Summary.TotalValueAtRisk, 1e-9)
	assert.InDelta(t, 40.0, result.Summary.TotalExpiredValue, 1e-9)
	assert.Equal(t, 1, result.Summary.CriticalItems)
	assert.Equal(t, 1, result.Summary.WarningItems)
	assert.Equal(t, 1, result.Summary.ExpiredItems)
	assert.Equal(t, 1, result.Summary.OKItems)
	assert.Equal(t, 0, result.Summary.SkippedItems)
}

func TestAnalyze_MissingPriceMeansZeroRisk(t *testing.T) {
	analyzer := newTestAnalyzer(t)
	item := itemExpiringIn("C1", 3, 0)
	delete(item, "purchase_price")

	result, err := analyzer.Analyze(NewBatch([]RawItem{item}, testRef))
	require.NoError(t, err)

	require.Len(t, result.CriticalItems, 1)
	assert.Zero(t, result.CriticalItems[0].ValueAtRisk)
	assert.Zero(t, result.Summary.TotalValueAtRisk)
}

func TestAnalyze_SkippedItems(t *testing.T) {
	tests := []struct {
		name       string
		item       RawItem
		wantID     string
		wantName   string
		wantReason string
	}{
		{
			name: "invalid record",
			item: RawItem{"item_name": "Beans", "quantity": 5.0, "unit": "kg", "expiry_date": "2025-02-01"},
			// index is 0 in a single-item batch
			wantID:     "unknown_index_0",
			wantName:   "Beans",
			wantReason: "Item at index 0 is missing required field: 'item_id'",
		},
		{
			name: "null expiry date",
			item: RawItem{
				"item_id": "B2", "item_name": "Salt", "quantity": 1.0, "unit": "kg",
				"expiry_date": nil,
			},
			wantID:     "B2",
			wantName:   "Salt",
			wantReason: "No expiry date provided - item excluded from expiry tracking",
		},
		{
			name: "unparseable expiry date",
			item: RawItem{
				"item_id": "B3", "item_name": "Rice", "quantity": 1.0, "unit": "kg",
				"expiry_date": "01/02/2025",
			},
			wantID:     "B3",
			wantName:   "Rice",
			wantReason: "Invalid expiry_date format: '01/02/2025'. Expected YYYY-MM-DD.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analyzer := newTestAnalyzer(t)

			result, err := analyzer.Analyze(NewBatch([]RawItem{tt.item}, testRef))
			require.NoError(t, err, "record-level failures must not abort the batch")

			require.Len(t, result.SkippedItems, 1)
			skipped := result.SkippedItems[0]
			assert.Equal(t, tt.wantID, skipped.ItemID)
			assert.Equal(t, tt.wantName, skipped.ItemName)
			assert.Equal(t, tt.wantReason, skipped.Reason)
			assert.Equal(t, 1, result.Summary.SkippedItems)
			assert.Equal(t, StatusSuccess, result.Status, "the batch as a whole still succeeds")
		})
	}
}

func TestAnalyze_SkipDoesNotAbortRest(t *testing.T) {
	analyzer := newTestAnalyzer(t)
	batch := NewBatch([]RawItem{
		{"item_name": "broken"},
		itemExpiringIn("A2", 3, 1),
	}, testRef)

	result, err := analyzer.Analyze(batch)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Summary.SkippedItems)
	assert.Equal(t, 1, result.Summary.CriticalItems)
}

func TestAnalyze_EmptyBatchIsFatal(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	for name, batch := range map[string]*Batch{
		"nil batch":   nil,
		"empty items": NewBatch(nil, testRef),
	} {
		t.Run(name, func(t *testing.T) {
			result, err := analyzer.Analyze(batch)
			require.Error(t, err)
			assert.ErrorIs(t, err, common.ErrEmptyInventory)
			assert.Nil(t, result)
		})
	}
}

func TestAnalyze_Idempotent(t *testing.T) {
	analyzer := newTestAnalyzer(t)
	items := []RawItem{
		itemExpiringIn("A1", 3, 2),
		itemExpiringIn("A2", 20, 1),
		{"item_name": "broken"},
	}

	first, err := analyzer.Analyze(NewBatch(items, testRef))
	require.NoError(t, err)
	second, err := analyzer.Analyze(NewBatch(items, testRef))
	require.NoError(t, err)

	// Only the generated ID may differ between identical runs with a
	// fixed reference date.
	second.ID = first.ID
	assert.Equal(t, first, second)
}

func TestAnalyze_ProgressReported(t *testing.T) {
	analyzer := newTestAnalyzer(t)
	items := []RawItem{
		itemExpiringIn("A1", 3, 1),
		itemExpiringIn("A2", 10, 1),
		{"item_name": "broken"},
	}

	var calls []string
	analyzer.Progress = func(processed, total int) {
		calls = append(calls, fmt.Sprintf("%d/%d", processed, total))
	}

	_, err := analyzer.Analyze(NewBatch(items, testRef))
	require.NoError(t, err)
	assert.Equal(t, []string{"1/3", "2/3", "3/3"}, calls)
}

func TestErrorResult(t *testing.T) {
	result := ErrorResult(fmt.Errorf("%w: nothing to analyse", common.ErrEmptyInventory))

	assert.Equal(t, StatusError, result.Status)
	assert.Contains(t, result.Message, "inventory list is empty")
	assert.NotEmpty(t, result.ID)
	assert.False(t, result.Timestamp.IsZero())
	assert.NotNil(t, result.CriticalItems)
	assert.Empty(t, result.CriticalItems)
}
