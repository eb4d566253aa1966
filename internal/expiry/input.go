package expiry

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/tobenna/stockpot/internal/common"
	"github.com/tobenna/stockpot/internal/model"
)

// RawItem is an inventory record exactly as supplied by the caller, before
// any validation. No invariants are guaranteed.
type RawItem map[string]any

// stringOr renders the value under key as a string, or fallback when the
// key is absent or nil.
func (r RawItem) stringOr(key, fallback string) string {
	if v, ok := r[key]; ok && v != nil {
		return fmt.Sprint(v)
	}
	return fallback
}

// Batch is the parsed top-level input: the raw record list plus the
// reference date every expiry calculation is relative to. The input shape
// is decided once here; downstream code never re-inspects it.
type Batch struct {
	Items         []RawItem
	ReferenceDate time.Time

	// ExplicitDate is true when the caller supplied the reference date
	// rather than it defaulting to invocation time.
	ExplicitDate bool
}

// NewBatch builds a batch around an explicit reference date.
func NewBatch(items []RawItem, referenceDate time.Time) *Batch {
	return &Batch{
		Items:         items,
		ReferenceDate: referenceDate,
		ExplicitDate:  true,
	}
}

type wrappedInput struct {
	Inventory   []RawItem `json:"inventory"`
	CurrentDate *string   `json:"current_date"`
}

// ParseInput decodes the two accepted top-level shapes: a bare JSON array
// of records, or a wrapper object carrying "inventory" and an optional
// "current_date". Anything else is a fatal batch error, as is an
// unparseable explicit date. The now argument becomes the reference date
// when the input does not carry one.
func ParseInput(data []byte, now time.Time) (*Batch, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, common.ErrInvalidInputShape
	}

	switch trimmed[0] {
	case '[':
		var items []RawItem
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrInvalidInputShape, err)
		}
		return &Batch{Items: items, ReferenceDate: now}, nil

	case '{':
		var wrapped wrappedInput
		if err := json.Unmarshal(trimmed, &wrapped); err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrInvalidInputShape, err)
		}

		batch := &Batch{Items: wrapped.Inventory, ReferenceDate: now}
		if wrapped.CurrentDate != nil {
			ref, err := model.ParseISODate(*wrapped.CurrentDate)
			if err != nil {
				return nil, fmt.Errorf("%w: %q (expected ISO format YYYY-MM-DD)",
					common.ErrInvalidReferenceDate, *wrapped.CurrentDate)
			}
			batch.ReferenceDate = ref
			batch.ExplicitDate = true
		}
		return batch, nil

	default:
		return nil, common.ErrInvalidInputShape
	}
}
