// Package cashflow predicts depletion risk from a transaction history. The
// burn rate is a population statistic over the whole history, so any
// malformed transaction invalidates the entire batch instead of being
// skipped.
package cashflow

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tobenna/stockpot/internal/common"
	"github.com/tobenna/stockpot/internal/config"
	"github.com/tobenna/stockpot/internal/model"
)

// Predictor derives the burn-rate signal from a transaction history and
// classifies it into a risk level. A predictor holds no mutable state
// across calls and is safe for concurrent use.
type Predictor struct {
	thresholds config.CashflowThresholds
}

// NewPredictor creates a predictor around an immutable threshold set.
func NewPredictor(thresholds config.CashflowThresholds) (*Predictor, error) {
	if err := thresholds.Validate(); err != nil {
		return nil, err
	}
	return &Predictor{thresholds: thresholds}, nil
}

// Predict analyzes the full history and returns one verdict. Fatal
// conditions: an empty history, a transaction without a date, or a
// transaction type outside income/expense.
func (p *Predictor) Predict(transactions []model.Transaction, currentBalance decimal.Decimal) (*Prediction, error) {
	if len(transactions) == 0 {
		return nil, fmt.Errorf("%w: transaction history is empty", common.ErrNoTransactions)
	}
	for i, t := range transactions {
		if t.Date.IsZero() {
			return nil, fmt.Errorf("%w: transaction at index %d has no date", common.ErrInvalidTransaction, i)
		}
		if !t.Type.Valid() {
			return nil, fmt.Errorf("%w: %q at index %d (must be %q or %q)",
				common.ErrInvalidTransactionType, t.Type, i, model.TypeIncome, model.TypeExpense)
		}
	}

	confidence := p.Confidence(transactions)

	avgIncome := meanAmount(transactions, model.TypeIncome)
	avgExpense := meanAmount(transactions, model.TypeExpense)
	burnRate := avgExpense.Sub(avgIncome)

	level, daysUntilBroke := p.classify(currentBalance, burnRate)

	common.LogInfo("Predicted cashflow risk", common.Fields{
		"risk_level":   string(level),
		"burn_rate":    burnRate.Round(2).InexactFloat64(),
		"confidence":   confidence,
		"transactions": len(transactions),
	})

	return &Prediction{
		ID:              uuid.New().String(),
		RiskLevel:       level,
		DaysUntilBroke:  daysUntilBroke,
		AvgDailyIncome:  avgIncome.Round(2).InexactFloat64(),
		AvgDailyExpense: avgExpense.Round(2).InexactFloat64(),
		BurnRate:        burnRate.Round(2).InexactFloat64(),
		ConfidenceScore: confidence,
		Recommendations: Recommendations(level),
		CreatedAt:       time.Now().UTC(),
	}, nil
}

// meanAmount is the mean transaction amount within one type partition, or
// zero when the partition is empty.
func meanAmount(transactions []model.Transaction, txType model.TransactionType) decimal.Decimal {
	sum := decimal.Zero
	count := 0
	for _, t := range transactions {
		if t.Type == txType {
			sum = sum.Add(t.Amount)
			count++
		}
	}
	if count == 0 {
		return decimal.Zero
	}
	return sum.Div(decimal.NewFromInt(int64(count)))
}
