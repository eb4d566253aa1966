package expiry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validItem() RawItem {
	return RawItem{
		"item_id":     "A1",
		"item_name":   "Milk",
		"quantity":    10.0,
		"unit":        "L",
		"expiry_date": "2025-01-10",
	}
}

func TestItemValidator_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(RawItem)
		index   int
		wantErr string
	}{
		{
			name:   "valid item",
			mutate: func(RawItem) {},
		},
		{
			name:   "valid item with string quantity",
			mutate: func(item RawItem) { item["quantity"] = "10" },
		},
		{
			name:   "valid item with purchase price",
			mutate: func(item RawItem) { item["purchase_price"] = 2.5 },
		},
		{
			name:   "null purchase price is ignored",
			mutate: func(item RawItem) { item["purchase_price"] = nil },
		},
		{
			name:    "missing item_id",
			mutate:  func(item RawItem) { delete(item, "item_id") },
			index:   3,
			wantErr: "Item at index 3 is missing required field: 'item_id'",
		},
		{
			name:    "missing expiry_date",
			mutate:  func(item RawItem) { delete(item, "expiry_date") },
			wantErr: "Item at index 0 is missing required field: 'expiry_date'",
		},
		{
			name: "first missing field named when several are absent",
			mutate: func(item RawItem) {
				delete(item, "item_name")
				delete(item, "unit")
			},
			wantErr: "Item at index 0 is missing required field: 'item_name'",
		},
		{
			name:    "negative quantity",
			mutate:  func(item RawItem) { item["quantity"] = -1.0 },
			wantErr: "Item 'A1': quantity must be >= 0",
		},
		{
			name:    "non-numeric quantity",
			mutate:  func(item RawItem) { item["quantity"] = "plenty" },
			wantErr: "Item 'A1': quantity is not a valid number",
		},
		{
			name:    "negative purchase price",
			mutate:  func(item RawItem) { item["purchase_price"] = -2.0 },
			wantErr: "Item 'A1': purchase_price must be >= 0",
		},
		{
			name:    "non-numeric purchase price",
			mutate:  func(item RawItem) { item["purchase_price"] = "cheap" },
			wantErr: "Item 'A1': purchase_price is not a valid number",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := validItem()
			tt.mutate(item)

			err := NewItemValidator().Validate(item, tt.index)

			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())
			}
		})
	}
}

func TestItemValidator_IsPure(t *testing.T) {
	item := validItem()
	v := NewItemValidator()

	require.NoError(t, v.Validate(item, 0))
	assert.Equal(t, validItem(), item, "validation must not mutate the record")
}
