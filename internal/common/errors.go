// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Input shape errors.
	ErrInvalidInputShape    = errors.New(`input must be a record list or an object with an "inventory" key`)
	ErrInvalidReferenceDate = errors.New("invalid reference date")

	// Inventory batch errors.
	ErrEmptyInventory = errors.New("inventory list is empty")

	// Cashflow batch errors.
	ErrNoTransactions         = errors.New("no transactions to analyze")
	ErrInvalidTransaction     = errors.New("invalid transaction")
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// Configuration errors.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// IsFatalBatchError reports whether an error invalidates an entire batch
// rather than a single record. Record-level failures never reach the error
// return path; they become skip reasons instead.
func IsFatalBatchError(err error) bool {
	return errors.Is(err, ErrInvalidInputShape) ||
		errors.Is(err, ErrInvalidReferenceDate) ||
		errors.Is(err, ErrEmptyInventory) ||
		errors.Is(err, ErrNoTransactions) ||
		errors.Is(err, ErrInvalidTransaction) ||
		errors.Is(err, ErrInvalidTransactionType)
}
