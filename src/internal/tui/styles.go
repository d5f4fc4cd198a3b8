// Package tui provides styled console output using lipgloss for rich terminal UI.
package tui

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Lazy initialization to avoid cold start penalty from lipgloss terminal detection
var (
	initOnce sync.Once

	// Colors
	colorPrimary lipgloss.Color
	colorAccent  lipgloss.Color
	colorSuccess lipgloss.Color
	colorWarning lipgloss.Color
	colorError   lipgloss.Color
	colorMuted   lipgloss.Color

	// Text styles
	StyleTitle   lipgloss.Style
	StyleVersion lipgloss.Style
	StyleMuted   lipgloss.Style

	// Box styles
	StyleInfoBox    lipgloss.Style
	StyleSuccessBox lipgloss.Style
	StyleErrorBox   lipgloss.Style

	// Table styles
	StyleTableHeader lipgloss.Style
	StyleTableCell   lipgloss.Style
	StyleTableBorder lipgloss.Style

	// Indicator strings
	CheckMark string
	CrossMark string
)

// initStyles initializes all lipgloss styles lazily
func initStyles() {
	initOnce.Do(func() {
		// Force TrueColor profile to skip slow terminal capability detection
		// See: https://github.com/charmbracelet/lipgloss/issues/86
		lipgloss.SetColorProfile(termenv.TrueColor)

		colorPrimary = lipgloss.Color("39")  // Cyan
		colorAccent = lipgloss.Color("213")  // Magenta/Pink
		colorSuccess = lipgloss.Color("42")  // Green
		colorWarning = lipgloss.Color("214") // Orange/Yellow
		colorError = lipgloss.Color("196")   // Red
		colorMuted = lipgloss.Color("245")   // Gray

		StyleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			MarginBottom(1)

		StyleVersion = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

		StyleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

		StyleInfoBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(0, 1)

		StyleSuccessBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSuccess).
			Padding(0, 1)

		StyleErrorBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorError).
			Padding(0, 1)

		StyleTableHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			PaddingRight(2)

		StyleTableCell = lipgloss.NewStyle().
			PaddingRight(2)

		StyleTableBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

		CheckMark = lipgloss.NewStyle().Foreground(colorSuccess).Render("✓")
		CrossMark = lipgloss.NewStyle().Foreground(colorError).Render("✗")
	})
}

// Init ensures styles are initialized. Call this before using any styles.
func Init() {
	initStyles()
}

// RenderTitle renders a styled title
func RenderTitle(text string) string {
	initStyles()
	return StyleTitle.Render(text)
}

// RenderVersion renders a version string with styling
func RenderVersion(version string) string {
	initStyles()
	return StyleVersion.Render(version)
}

// RenderMuted renders text in a muted/dim style
func RenderMuted(text string) string {
	initStyles()
	return StyleMuted.Render(text)
}

// RenderInfoBox renders content in an info-styled box
func RenderInfoBox(content string) string {
	initStyles()
	return StyleInfoBox.Render(content)
}

// RenderSuccessBox renders content in a success-styled box
func RenderSuccessBox(content string) string {
	initStyles()
	return StyleSuccessBox.Render(content)
}

// GetCheckMark returns the styled checkmark indicator
func GetCheckMark() string {
	initStyles()
	return CheckMark
}

// GetCrossMark returns the styled cross indicator
func GetCrossMark() string {
	initStyles()
	return CrossMark
}
