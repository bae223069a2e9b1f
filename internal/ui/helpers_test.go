package ui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/mock/gomock"

	mockapi "signup/internal/api/mock"
	"signup/internal/form"
)

// keyMsg creates a tea.KeyMsg for testing. Bubble Tea uses KeyType and Runes.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+t":
		return tea.KeyMsg{Type: tea.KeyCtrlT}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// typeText sends one key message per rune.
func typeText(m *SignUpForm, s string) {
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// runCmd executes cmd, expanding batches, and returns the produced messages.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// deliver runs cmd and feeds every resulting message back into the form,
// returning the messages delivered.
func deliver(m *SignUpForm, cmd tea.Cmd) []tea.Msg {
	msgs := runCmd(cmd)
	for _, msg := range msgs {
		m.Update(msg)
	}
	return msgs
}

func testOptions() form.Options {
	return form.Options{
		Occupations: []form.Occupation{"Accountant", "Engineer", "Pilot"},
		States:      []form.State{form.NewState("Alabama"), form.NewState("California"), form.NewState("Texas")},
	}
}

func newTestForm(t *testing.T) (*SignUpForm, *mockapi.MockClient) {
	t.Helper()
	ctrl := gomock.NewController(t)
	client := mockapi.NewMockClient(ctrl)
	return NewSignUpForm(context.Background(), testOptions(), client), client
}

// focusField tabs until field is focused.
func focusField(t *testing.T, m *SignUpForm, field FieldID) {
	t.Helper()
	for range len(m.focus.Order) {
		if m.Focused() == field {
			return
		}
		m.Update(keyMsg("tab"))
	}
	t.Fatalf("could not focus %s", field)
}

// choose opens the dropdown on field, moves the cursor down n times and
// picks the entry.
func choose(t *testing.T, m *SignUpForm, field FieldID, n int) {
	t.Helper()
	focusField(t, m, field)
	m.Update(keyMsg("enter"))
	if m.Overlays().Len() != 1 {
		t.Fatalf("expected dropdown overlay, got %d overlays", m.Overlays().Len())
	}
	for range n {
		m.Update(keyMsg("down"))
	}
	_, cmd := m.Update(keyMsg("enter"))
	deliver(m, cmd)
}
