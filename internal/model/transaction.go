// Package model defines the core domain models used throughout the application.
package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType partitions transactions into the two cashflow directions.
type TransactionType string

// Transaction type constants.
const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Valid reports whether the type is within the accepted domain.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Transaction represents a single dated cash movement. Amounts are always
// non-negative; direction is carried by Type.
type Transaction struct {
	Date   time.Time
	Type   TransactionType
	Amount decimal.Decimal
}

type transactionJSON struct {
	Date   *string          `json:"date"`
	Type   *TransactionType `json:"type"`
	Amount *decimal.Decimal `json:"amount"`
}

// UnmarshalJSON decodes a transaction, rejecting records with missing
// required fields so a malformed history fails loudly at the boundary.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var raw transactionJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	for name, present := range map[string]bool{
		"date":   raw.Date != nil,
		"type":   raw.Type != nil,
		"amount": raw.Amount != nil,
	} {
		if !present {
			return fmt.Errorf("transaction is missing required field %q", name)
		}
	}

	date, err := ParseISODate(*raw.Date)
	if err != nil {
		return fmt.Errorf("transaction date: %w", err)
	}

	t.Date = date
	t.Type = *raw.Type
	t.Amount = *raw.Amount
	return nil
}

// MarshalJSON encodes the transaction with a calendar-date string.
func (t Transaction) MarshalJSON() ([]byte, error) {
	date := t.Date.Format("2006-01-02")
	return json.Marshal(transactionJSON{
		Date:   &date,
		Type:   &t.Type,
		Amount: &t.Amount,
	})
}
