package expiry

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// requiredFields are checked in order; the first missing field names the
// rejection.
var requiredFields = []string{"item_id", "item_name", "quantity", "unit", "expiry_date"}

// ItemValidator checks a single raw record against the required-field and
// numeric contract. It is a pure predicate: a nil return accepts the
// record, a non-nil error carries the skip reason. It never fails the
// batch.
type ItemValidator struct{}

// NewItemValidator creates a new item validator.
func NewItemValidator() *ItemValidator {
	return &ItemValidator{}
}

// Validate checks the item at the given batch index. Field presence is
// checked first, then that quantity is a non-negative number, then the
// same for purchase_price when it is supplied.
func (v *ItemValidator) Validate(item RawItem, index int) error {
	for _, field := range requiredFields {
		if _, ok := item[field]; !ok {
			return fmt.Errorf("Item at index %d is missing required field: '%s'", index, field)
		}
	}

	qty, err := toFloat(item["quantity"])
	if err != nil {
		return fmt.Errorf("Item '%s': quantity is not a valid number", item.stringOr("item_id", ""))
	}
	if qty < 0 {
		return fmt.Errorf("Item '%s': quantity must be >= 0", item.stringOr("item_id", ""))
	}

	if price, ok := item["purchase_price"]; ok && price != nil {
		p, err := toFloat(price)
		if err != nil {
			return fmt.Errorf("Item '%s': purchase_price is not a valid number", item.stringOr("item_id", ""))
		}
		if p < 0 {
			return fmt.Errorf("Item '%s': purchase_price must be >= 0", item.stringOr("item_id", ""))
		}
	}

	return nil
}

// toFloat coerces the loosely-typed values JSON decoding can produce into
// a float64.
func toFloat(value any) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case json.Number:
		return v.Float64()
	case string:
		return strconv.ParseFloat(v, 64)
	default:
		return 0, fmt.Errorf("not a number: %v", value)
	}
}
