package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-faster/errors"

	"signup/internal/api"
	"signup/internal/form"
)

// Ensure the adapter can be used as tea.Model.
var _ tea.Model = (*formModelAdapter)(nil)

// formModelAdapter wraps SignUpForm to implement tea.Model.
type formModelAdapter struct {
	*SignUpForm
}

// Init implements tea.Model.
func (a *formModelAdapter) Init() tea.Cmd {
	return a.SignUpForm.Init()
}

// Update implements tea.Model.
func (a *formModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := a.SignUpForm.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a *formModelAdapter) View() string {
	return a.SignUpForm.View()
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *SignUpForm) AsTeaModel() tea.Model {
	return &formModelAdapter{SignUpForm: m}
}

// Run shows the form until the user quits. Cancelling ctx stops the program
// and any pending request.
func Run(ctx context.Context, opts form.Options, client api.Client, progOpts ...tea.ProgramOption) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := NewSignUpForm(ctx, opts, client)
	progOpts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, progOpts...)
	p := tea.NewProgram(m.AsTeaModel(), progOpts...)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return errors.Wrap(err, "run form")
	}
	return nil
}
