package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// NoticeModal is a blocking notice. It takes all input until dismissed with
// Enter or Esc.
type NoticeModal struct {
	Title      string
	Message    string
	boxStyle   lipgloss.Style
	titleStyle lipgloss.Style
}

// Ensure NoticeModal implements View.
var _ View = (*NoticeModal)(nil)

// NewNoticeModal creates an informational notice.
func NewNoticeModal(title, message string) *NoticeModal {
	return &NoticeModal{
		Title:      title,
		Message:    message,
		boxStyle:   Styles.Box,
		titleStyle: Styles.Title,
	}
}

// NewWarningModal creates a notice styled as a failure.
func NewWarningModal(title, message string) *NoticeModal {
	return &NoticeModal{
		Title:      title,
		Message:    message,
		boxStyle:   Styles.BoxDanger,
		titleStyle: Styles.TitleWarning,
	}
}

// Init implements View.
func (m *NoticeModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *NoticeModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "enter", " ":
			return m, func() tea.Msg { return DismissModalMsg{From: m} }
		}
	}
	return m, nil
}

// View implements View.
func (m *NoticeModal) View() string {
	content := m.titleStyle.Render(m.Title) + "\n\n"
	content += Styles.Label.Render(m.Message)
	content += "\n\n" + Styles.Hint.Render("Enter: OK")
	return m.boxStyle.Render(content)
}
