package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserError(t *testing.T) {
	t.Run("with wrapped error", func(t *testing.T) {
		wrapped := fmt.Errorf("%w: nothing to analyse", ErrEmptyInventory)
		err := NewUserError("inventory analysis failed", wrapped)

		assert.Equal(t, "inventory analysis failed: inventory list is empty: nothing to analyse", err.Error())
		assert.ErrorIs(t, err, ErrEmptyInventory)
	})

	t.Run("without wrapped error", func(t *testing.T) {
		err := NewUserError("no current balance", nil)
		assert.Equal(t, "no current balance", err.Error())
	})
}

func TestIsFatalBatchError(t *testing.T) {
	fatal := []error{
		ErrInvalidInputShape,
		ErrInvalidReferenceDate,
		ErrEmptyInventory,
		ErrNoTransactions,
		ErrInvalidTransaction,
		ErrInvalidTransactionType,
	}
	for _, err := range fatal {
		assert.True(t, IsFatalBatchError(err), err.Error())
		assert.True(t, IsFatalBatchError(fmt.Errorf("context: %w", err)), "wrapped %v", err)
	}

	assert.False(t, IsFatalBatchError(errors.New("record-level problem")))
	assert.False(t, IsFatalBatchError(ErrInvalidConfig), "config errors are not batch errors")
}
