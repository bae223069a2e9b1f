package ui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - titles
	ColorHighlight = "205" // Magenta - focused fields, borders
	ColorDanger    = "196" // Red - validation and request failures
	ColorMuted     = "241" // Gray - hints, placeholders
	ColorText      = "252" // Light gray - normal text
	ColorButton    = "27"  // Blue - submit button
)

// Styles contains shared style definitions used by the form and its overlays.
var Styles = struct {
	Title        lipgloss.Style // Form heading
	TitleWarning lipgloss.Style // Failure notice heading

	Box        lipgloss.Style // Notice box (highlight border)
	BoxDanger  lipgloss.Style // Failure notice box
	BoxCompact lipgloss.Style // Dropdown box

	Label         lipgloss.Style // Field label
	LabelFocused  lipgloss.Style // Label of the focused field
	Field         lipgloss.Style // Selector value frame
	FieldFocused  lipgloss.Style // Selector value frame when focused
	Button        lipgloss.Style
	ButtonFocused lipgloss.Style
	Toggle        lipgloss.Style // "show"/"hide" affordance
	Selected      lipgloss.Style // Highlighted list entry
	Muted         lipgloss.Style
	Hint          lipgloss.Style
	Status        lipgloss.Style // Pending-request indicator
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)).
		MarginBottom(1),
	TitleWarning: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorDanger)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2).
		Margin(1),
	BoxDanger: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDanger)).
		Padding(1, 2).
		Margin(1),
	BoxCompact: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1).
		Margin(1),
	Label: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	LabelFocused: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Field: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Padding(0, 1).
		Width(fieldWidth),
	FieldFocused: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1).
		Width(fieldWidth),
	Button: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Background(lipgloss.Color(ColorMuted)).
		Padding(0, 3),
	ButtonFocused: lipgloss.NewStyle().
		Foreground(lipgloss.Color("255")).
		Background(lipgloss.Color(ColorButton)).
		Bold(true).
		Padding(0, 3),
	Toggle: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Underline(true),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
}

// NewCompactListDelegate returns a delegate with zero spacing and shared styles.
func NewCompactListDelegate() list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.SetSpacing(0)
	d.ShowDescription = false
	d.Styles.SelectedTitle = Styles.Selected
	d.Styles.SelectedDesc = Styles.Selected
	d.Styles.NormalTitle = Styles.Muted
	d.Styles.NormalDesc = Styles.Muted
	return d
}
