package expiry

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tobenna/stockpot/internal/model"
)

// DaysUntilExpiry is the floor of the whole-day difference between the
// expiry date and the reference date. Negative for items already expired.
func DaysUntilExpiry(expiryDate, referenceDate time.Time) int {
	return model.WholeDays(referenceDate, expiryDate)
}

// ValueAtRisk is the monetary exposure of the stock: unit price times
// quantity, rounded to 2 places. A missing price or quantity counts as
// zero exposure.
func ValueAtRisk(price, quantity float64) decimal.Decimal {
	return decimal.NewFromFloat(price).Mul(decimal.NewFromFloat(quantity)).Round(2)
}
