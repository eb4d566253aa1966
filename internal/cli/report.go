package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tobenna/stockpot/internal/cashflow"
	"github.com/tobenna/stockpot/internal/expiry"
	"github.com/tobenna/stockpot/internal/model"
)

// tierStyle returns the color style for an expiry tier heading.
func tierStyle(tier expiry.Tier) lipgloss.Style {
	switch tier {
	case expiry.TierExpired:
		return lipgloss.NewStyle().Bold(true).Foreground(ExpiredColor)
	case expiry.TierCritical:
		return lipgloss.NewStyle().Bold(true).Foreground(CriticalColor)
	case expiry.TierWarning:
		return lipgloss.NewStyle().Bold(true).Foreground(WarningColor)
	default:
		return lipgloss.NewStyle().Bold(true).Foreground(OKColor)
	}
}

// riskStyle returns the color style for a cashflow risk level.
func riskStyle(level cashflow.RiskLevel) lipgloss.Style {
	switch level {
	case cashflow.RiskCritical:
		return lipgloss.NewStyle().Bold(true).Foreground(ExpiredColor)
	case cashflow.RiskWarning:
		return lipgloss.NewStyle().Bold(true).Foreground(WarningColor)
	case cashflow.RiskStable:
		return lipgloss.NewStyle().Bold(true).Foreground(StableColor)
	default:
		return lipgloss.NewStyle().Bold(true).Foreground(OKColor)
	}
}

// FormatNaira renders a monetary value with the naira sign and thousands
// separators, always with 2 decimal places.
func FormatNaira(value float64) string {
	text := strconv.FormatFloat(value, 'f', 2, 64)

	negative := strings.HasPrefix(text, "-")
	text = strings.TrimPrefix(text, "-")

	parts := strings.SplitN(text, ".", 2)
	intPart := parts[0]

	var grouped strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(digit)
	}

	sign := ""
	if negative {
		sign = "-"
	}
	return fmt.Sprintf("%s₦%s.%s", sign, grouped.String(), parts[1])
}

// RenderExpiryReport renders a batch analysis result as a styled terminal
// report.
func RenderExpiryReport(result *expiry.Result) string {
	var b strings.Builder

	b.WriteString(FormatTitle("Inventory Expiry Analysis"))
	b.WriteString("\n")

	if result.Status == expiry.StatusError {
		b.WriteString(FormatError(result.Message))
		b.WriteString("\n")
		return b.String()
	}

	s := result.Summary
	summary := strings.Join([]string{
		fmt.Sprintf("Critical: %d items", s.CriticalItems),
		fmt.Sprintf("Warning:  %d items", s.WarningItems),
		fmt.Sprintf("OK:       %d items", s.OKItems),
		fmt.Sprintf("Expired:  %d items", s.ExpiredItems),
		fmt.Sprintf("Skipped:  %d items", s.SkippedItems),
		"",
		fmt.Sprintf("Value at risk (actionable): %s", BoldStyle.Render(FormatNaira(s.TotalValueAtRisk))),
		fmt.Sprintf("Confirmed losses (expired): %s", BoldStyle.Render(FormatNaira(s.TotalExpiredValue))),
	}, "\n")
	b.WriteString(RenderBox("Summary", summary))
	b.WriteString("\n")

	writeItemSection(&b, expiry.TierCritical, CriticalIcon+" Critical Items (action needed now)", result.CriticalItems)
	writeItemSection(&b, expiry.TierWarning, WarningIcon+" Warning Items (take action soon)", result.WarningItems)
	writeItemSection(&b, expiry.TierExpired, ExpiredIcon+" Expired Items (confirmed losses)", result.ExpiredItems)
	writeItemSection(&b, expiry.TierOK, OKIcon+" Okay Items (monitor regularly)", result.OKItems)

	if len(result.SkippedItems) > 0 {
		b.WriteString("\n")
		b.WriteString(SectionStyle.Render(SkippedIcon + " Skipped Items (invalid or missing data)"))
		b.WriteString("\n")
		for _, item := range result.SkippedItems {
			b.WriteString(fmt.Sprintf("  • %s [%s]\n", item.ItemName, item.ItemID))
			b.WriteString(SubtleStyle.Render(fmt.Sprintf("    Reason: %s", item.Reason)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(SubtleStyle.Render(fmt.Sprintf("Reference date: %s", result.Timestamp.Format("2006-01-02"))))
	b.WriteString("\n")

	return b.String()
}

func writeItemSection(b *strings.Builder, tier expiry.Tier, heading string, items []expiry.EnrichedItem) {
	if len(items) == 0 {
		return
	}

	b.WriteString("\n")
	b.WriteString(tierStyle(tier).Render(heading))
	b.WriteString("\n")

	for _, item := range items {
		b.WriteString(fmt.Sprintf("  • %s\n", BoldStyle.Render(item.ItemName)))
		b.WriteString(fmt.Sprintf("    Expires in: %d days (%s)\n", item.DaysUntilExpiry, item.ExpiryDate))
		b.WriteString(fmt.Sprintf("    Quantity:   %g %s\n", item.Quantity, item.Unit))
		b.WriteString(fmt.Sprintf("    Value:      %s\n", FormatNaira(item.ValueAtRisk)))
		writeRecommendations(b, item.Recommendations)
	}
}

// RenderCashflowReport renders a cashflow prediction as a styled terminal
// report.
func RenderCashflowReport(prediction *cashflow.Prediction) string {
	var b strings.Builder

	b.WriteString(FormatTitle("Cashflow Risk Prediction"))
	b.WriteString("\n")

	daysUntilBroke := "not applicable"
	if prediction.DaysUntilBroke != nil {
		daysUntilBroke = fmt.Sprintf("%d days", *prediction.DaysUntilBroke)
	}

	verdict := strings.Join([]string{
		fmt.Sprintf("Risk level:        %s", riskStyle(prediction.RiskLevel).Render(strings.ToUpper(string(prediction.RiskLevel)))),
		fmt.Sprintf("Days until broke:  %s", daysUntilBroke),
		fmt.Sprintf("Avg income:        %s per transaction", FormatNaira(prediction.AvgDailyIncome)),
		fmt.Sprintf("Avg expense:       %s per transaction", FormatNaira(prediction.AvgDailyExpense)),
		fmt.Sprintf("Burn rate:         %s", FormatNaira(prediction.BurnRate)),
		fmt.Sprintf("Confidence:        %.0f%%", prediction.ConfidenceScore*100),
	}, "\n")
	b.WriteString(RenderBox("Verdict", verdict))
	b.WriteString("\n\n")

	b.WriteString(SectionStyle.Render("Recommended Actions"))
	b.WriteString("\n")
	writeRecommendations(&b, prediction.Recommendations)

	b.WriteString("\n")
	b.WriteString(SubtleStyle.Render(fmt.Sprintf("Generated: %s", prediction.CreatedAt.Format("2006-01-02 15:04:05"))))
	b.WriteString("\n")

	return b.String()
}

func writeRecommendations(b *strings.Builder, recommendations []model.Recommendation) {
	for _, rec := range recommendations {
		b.WriteString(fmt.Sprintf("    %d. %s\n", rec.Priority, rec.Action))
	}
}
