// Package cli provides styled terminal output for analysis reports.
package cli

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// ExpiredColor marks confirmed losses.
	ExpiredColor = lipgloss.Color("#FF6B6B") // Red
	// CriticalColor marks records needing action now.
	CriticalColor = lipgloss.Color("#FF9F43") // Orange
	// WarningColor marks records needing action soon.
	WarningColor = lipgloss.Color("#FFE66D") // Yellow
	// OKColor marks records within safe range.
	OKColor = lipgloss.Color("#4ECDC4") // Teal
	// StableColor marks a business that is not burning cash.
	StableColor = lipgloss.Color("#95E1D3") // Light teal
	// SubtleColor is used for less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666") // Gray

	// TitleStyle is used for the report banner.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(OKColor).
			MarginBottom(1)

	// SectionStyle is used for section headings.
	SectionStyle = lipgloss.NewStyle().
			Bold(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("#333"))

	// ErrorStyle formats fatal error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ExpiredColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// BoldStyle makes text bold.
	BoldStyle = lipgloss.NewStyle().
			Bold(true)

	// BoxStyle is used for the summary box.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#333")).
			Padding(1, 2)
)

// Icons.
const (
	ExpiredIcon  = "💸"
	CriticalIcon = "🔴"
	WarningIcon  = "⚠️"
	OKIcon       = "🟢"
	SkippedIcon  = "⬜"
	ErrorIcon    = "✗"
	ChartIcon    = "📊"
)

// FormatError formats a fatal error message with icon.
func FormatError(message string) string {
	return ErrorStyle.Render(ErrorIcon + " " + message)
}

// FormatTitle formats a report banner.
func FormatTitle(title string) string {
	return TitleStyle.Render(ChartIcon + " " + title)
}

// RenderBox renders content in a styled box with a heading.
func RenderBox(title, content string) string {
	heading := TitleStyle.UnsetMargins().Render(title)
	return BoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, heading, content))
}
