package cashflow

import (
	"math"

	"github.com/tobenna/stockpot/internal/model"
)

// Confidence scores how much the history supports the prediction, in
// [0, 1]. It is the product of a days score (how long a span the history
// covers) and a density score (how frequently transactions were recorded),
// rounded to 2 places. The span is inclusive: max date minus min date plus
// one day.
func (p *Predictor) Confidence(transactions []model.Transaction) float64 {
	if len(transactions) == 0 {
		return 0
	}

	minDate, maxDate := transactions[0].Date, transactions[0].Date
	for _, t := range transactions[1:] {
		if t.Date.Before(minDate) {
			minDate = t.Date
		}
		if t.Date.After(maxDate) {
			maxDate = t.Date
		}
	}
	spanDays := model.WholeDays(minDate, maxDate) + 1

	var daysScore float64
	switch {
	case spanDays >= p.thresholds.FullConfidenceDays:
		daysScore = 1.0
	case spanDays >= p.thresholds.MediumConfidenceDays:
		daysScore = 0.85
	case spanDays >= p.thresholds.LowConfidenceDays:
		daysScore = 0.70
	default:
		daysScore = 0.50
	}

	densityScore := 0.70
	if float64(len(transactions))/float64(spanDays) >= p.thresholds.MinTransactionsPerDay {
		densityScore = 1.0
	}

	return math.Round(daysScore*densityScore*100) / 100
}
