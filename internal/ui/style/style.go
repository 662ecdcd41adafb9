// Package style provides the shared palette and glyphs for terminal output.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Tide  = lipgloss.Color("#0E7490")
	Foam  = lipgloss.Color("#A5F3FC")
	Slate = lipgloss.Color("#64748B")
	Sand  = lipgloss.Color("#F59E0B")
	Kelp  = lipgloss.Color("#16A34A")
	Coral = lipgloss.Color("#DC2626")
)

// Glyphs.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Arrow   = "→"
	Wave    = "≈"
)

// Text styles.
var (
	Title   = lipgloss.NewStyle().Bold(true).Foreground(Tide)
	Label   = lipgloss.NewStyle().Foreground(Slate)
	Value   = lipgloss.NewStyle().Bold(true)
	Good    = lipgloss.NewStyle().Foreground(Kelp)
	Bad     = lipgloss.NewStyle().Foreground(Coral)
	Coastal = lipgloss.NewStyle().Foreground(Tide).Underline(true)
)
