package ui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// Dropdown is a selection list over a fixed, externally supplied sequence of
// options. The form instantiates it for occupations and for states.
type Dropdown[T any] struct {
	field   FieldID
	list    list.Model
	options []T
}

type dropdownItem struct {
	label  string
	index  int
	chosen bool
}

func (d dropdownItem) FilterValue() string { return d.label }
func (d dropdownItem) Description() string { return "" }

// Title marks the current selection with a check, apart from the cursor.
func (d dropdownItem) Title() string {
	if d.chosen {
		return "✓ " + d.label
	}
	return "  " + d.label
}

// Ensure Dropdown implements View.
var _ View = (*Dropdown[string])(nil)

// NewDropdown creates a dropdown for field. label renders an option; selected
// is the index of the current selection, or -1.
func NewDropdown[T any](field FieldID, title string, options []T, label func(T) string, selected int) *Dropdown[T] {
	items := make([]list.Item, len(options))
	for i, o := range options {
		items[i] = dropdownItem{label: label(o), index: i, chosen: i == selected}
	}
	l := list.New(items, NewCompactListDelegate(), fieldWidth+4, dropdownHeight(len(items)))
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = Styles.Title
	if selected >= 0 && selected < len(items) {
		l.Select(selected)
	}
	return &Dropdown[T]{field: field, list: l, options: options}
}

func dropdownHeight(n int) int {
	const maxHeight = 14
	if h := n + 4; h < maxHeight {
		return h
	}
	return maxHeight
}

// Field returns the selector this dropdown edits.
func (d *Dropdown[T]) Field() FieldID {
	return d.field
}

// Init implements View.
func (d *Dropdown[T]) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (d *Dropdown[T]) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && d.list.FilterState() != list.Filtering {
		switch msg.String() {
		case "esc":
			if d.list.FilterState() == list.FilterApplied {
				break
			}
			return d, func() tea.Msg { return DismissModalMsg{From: d} }
		case "enter", " ":
			sel, ok := d.list.SelectedItem().(dropdownItem)
			if !ok {
				return d, nil
			}
			chosen := OptionChosenMsg[T]{Field: d.field, Value: d.options[sel.index]}
			return d, func() tea.Msg { return chosen }
		}
	}
	var cmd tea.Cmd
	d.list, cmd = d.list.Update(msg)
	return d, cmd
}

// View implements View.
func (d *Dropdown[T]) View() string {
	help := "Enter: select  /: filter  Esc: cancel"
	return Styles.BoxCompact.Render(d.list.View() + "\n" + Styles.Hint.Render(help))
}
