package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"signup/internal/api"
	"signup/internal/form"
	"signup/internal/logger"
)

const fieldWidth = 36

// SignUpForm renders the five inputs, holds their values, validates the two
// required selections on submit and sends one create request.
type SignUpForm struct {
	Options form.Options
	Client  api.Client
	Keys    KeyMap

	ctx          context.Context
	inputs       map[FieldID]*textinput.Model
	occupation   form.Occupation
	state        form.State
	showPassword bool
	pending      bool
	focus        *FocusManager
	overlays     OverlayStack
	spinner      spinner.Model
	help         help.Model
	width        int
	height       int
}

// Ensure SignUpForm implements View.
var _ View = (*SignUpForm)(nil)

// NewSignUpForm creates the form over the immutable selection lists. ctx
// bounds the create request.
func NewSignUpForm(ctx context.Context, opts form.Options, client api.Client) *SignUpForm {
	m := &SignUpForm{
		Options: opts,
		Client:  client,
		Keys:    DefaultKeyMap(),
		ctx:     ctx,
		inputs: map[FieldID]*textinput.Model{
			FieldName:     newInput("Ada Lovelace"),
			FieldEmail:    newInput("ada@example.com"),
			FieldPassword: newInput(""),
		},
		help: help.New(),
	}
	m.inputs[FieldPassword].EchoMode = textinput.EchoPassword
	m.inputs[FieldPassword].EchoCharacter = '•'

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = Styles.Status
	m.spinner = s

	m.focus = NewFocusManager(FieldName, FieldEmail, FieldPassword, FieldOccupation, FieldState, FieldSubmit)
	m.focus.OnChange = func(from, to FieldID) {
		if in, ok := m.inputs[from]; ok {
			in.Blur()
		}
		if in, ok := m.inputs[to]; ok {
			in.Focus()
		}
	}
	m.inputs[FieldName].Focus()
	return m
}

func newInput(placeholder string) *textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Width = fieldWidth
	ti.Prompt = ""
	return &ti
}

// Fields returns the current field state.
func (m *SignUpForm) Fields() form.Fields {
	return form.Fields{
		Name:       m.inputs[FieldName].Value(),
		Email:      m.inputs[FieldEmail].Value(),
		Password:   m.inputs[FieldPassword].Value(),
		Occupation: m.occupation,
		State:      m.state,
	}
}

// PasswordVisible reports whether the password renders as plain text.
func (m *SignUpForm) PasswordVisible() bool {
	return m.showPassword
}

// PasswordEchoMode returns how the password input currently renders.
func (m *SignUpForm) PasswordEchoMode() textinput.EchoMode {
	return m.inputs[FieldPassword].EchoMode
}

// Pending reports whether a create request is in flight.
func (m *SignUpForm) Pending() bool {
	return m.pending
}

// Focused returns the focused field.
func (m *SignUpForm) Focused() FieldID {
	return m.focus.Current
}

// Overlays returns the overlay stack (dropdowns and notices).
func (m *SignUpForm) Overlays() *OverlayStack {
	return &m.overlays
}

// Init implements View.
func (m *SignUpForm) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (m *SignUpForm) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case SubmitMsg:
		return m, m.submit()

	case SubmittedMsg:
		return m, m.handleSubmitted(msg)

	case TogglePasswordMsg:
		m.togglePassword()
		return m, nil

	case OpenDropdownMsg:
		m.openDropdown(msg.Field)
		return m, nil

	case OptionChosenMsg[form.Occupation]:
		if m.popDropdown(msg.Field, FieldOccupation) {
			m.occupation = msg.Value
		}
		return m, nil

	case OptionChosenMsg[form.State]:
		if m.popDropdown(msg.Field, FieldState) {
			m.state = msg.Value
		}
		return m, nil

	case DismissModalMsg:
		if top, ok := m.overlays.Peek(); ok && top == msg.From {
			m.overlays.Pop()
		}
		return m, m.focusCmd()

	case cursor.BlinkMsg:
		return m, m.updateFocusedInput(msg)

	case spinner.TickMsg:
		if !m.pending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if key.Matches(msg, m.Keys.Quit) {
			return m, tea.Quit
		}
		if m.overlays.Len() > 0 {
			cmd, _ := m.overlays.UpdateTop(msg)
			return m, cmd
		}
		return m, m.handleKey(msg)
	}

	if m.overlays.Len() > 0 {
		cmd, _ := m.overlays.UpdateTop(msg)
		return m, cmd
	}
	return m, m.updateFocusedInput(msg)
}

// popDropdown pops the top overlay if it is the dropdown for field. A choice
// from any other overlay, or one arriving after its dropdown closed, is
// dropped.
func (m *SignUpForm) popDropdown(field, want FieldID) bool {
	if field != want {
		return false
	}
	top, ok := m.overlays.Peek()
	if !ok {
		return false
	}
	d, ok := top.(interface{ Field() FieldID })
	if !ok || d.Field() != field {
		return false
	}
	m.overlays.Pop()
	return true
}

func (m *SignUpForm) handleKey(msg tea.KeyMsg) tea.Cmd {
	current := m.focus.Current
	switch {
	case key.Matches(msg, m.Keys.Submit):
		return m.submit()
	case key.Matches(msg, m.Keys.TogglePassword):
		m.togglePassword()
		return nil
	case key.Matches(msg, m.Keys.Next):
		m.focus.Next()
		return m.focusCmd()
	case key.Matches(msg, m.Keys.Prev):
		m.focus.Prev()
		return m.focusCmd()
	case key.Matches(msg, m.Keys.Activate):
		if current.isText() {
			m.focus.Next()
			return m.focusCmd()
		}
		return m.activate(current)
	case msg.String() == " " && !current.isText():
		return m.activate(current)
	}
	return m.updateFocusedInput(msg)
}

// focusCmd restarts the cursor blink of the focused text input.
func (m *SignUpForm) focusCmd() tea.Cmd {
	if m.overlays.Len() > 0 {
		return nil
	}
	if in, ok := m.inputs[m.focus.Current]; ok {
		return in.Focus()
	}
	return nil
}

// activate handles Enter/Space on a selector or the Submit button.
func (m *SignUpForm) activate(field FieldID) tea.Cmd {
	switch field {
	case FieldOccupation, FieldState:
		m.openDropdown(field)
	case FieldSubmit:
		return m.submit()
	}
	return nil
}

func (m *SignUpForm) updateFocusedInput(msg tea.Msg) tea.Cmd {
	in, ok := m.inputs[m.focus.Current]
	if !ok {
		return nil
	}
	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	return cmd
}

func (m *SignUpForm) togglePassword() {
	m.showPassword = !m.showPassword
	if m.showPassword {
		m.inputs[FieldPassword].EchoMode = textinput.EchoNormal
	} else {
		m.inputs[FieldPassword].EchoMode = textinput.EchoPassword
	}
}

func (m *SignUpForm) openDropdown(field FieldID) {
	switch field {
	case FieldOccupation:
		sel := -1
		for i, o := range m.Options.Occupations {
			if o == m.occupation {
				sel = i
			}
		}
		m.overlays.Push(NewDropdown(FieldOccupation, "Choose your occupation", m.Options.Occupations,
			func(o form.Occupation) string { return string(o) }, sel))
	case FieldState:
		sel := -1
		for i, s := range m.Options.States {
			if s.Name == m.state.Name {
				sel = i
			}
		}
		m.overlays.Push(NewDropdown(FieldState, "Choose your state", m.Options.States,
			func(s form.State) string { return s.Name }, sel))
	}
}

// submit validates the selections and, when both are present, issues the
// create request. A submit while a request is pending is ignored.
func (m *SignUpForm) submit() tea.Cmd {
	if m.pending {
		logger.Debug(m.ctx, "submit ignored, request pending")
		return nil
	}
	fields := m.Fields()
	if err := fields.Validate(); err != nil {
		logger.Debug(m.ctx, "submit rejected", zap.Error(err))
		m.overlays.Push(NewWarningModal("Missing selection", form.Notice(err)))
		return nil
	}
	m.pending = true
	return tea.Batch(m.spinner.Tick, submitCmd(m.ctx, m.Client, fields.Payload()))
}

// submitCmd runs the create request off the update loop.
func submitCmd(ctx context.Context, c api.Client, p form.Payload) tea.Cmd {
	return func() tea.Msg {
		acc, err := c.Submit(ctx, p)
		return SubmittedMsg{Account: acc, Err: err}
	}
}

func (m *SignUpForm) handleSubmitted(msg SubmittedMsg) tea.Cmd {
	m.pending = false
	if msg.Err != nil {
		logger.Error(m.ctx, "sign up failed", zap.Error(msg.Err))
		m.overlays.Push(NewWarningModal("Sign up failed", msg.Err.Error()))
		return nil
	}
	m.overlays.Push(NewNoticeModal("Account created",
		fmt.Sprintf("Welcome %s! Your account has been created 🙌", msg.Account.Name)))
	m.reset()
	return nil
}

// reset restores every field to its initial default.
func (m *SignUpForm) reset() {
	for _, in := range m.inputs {
		in.SetValue("")
	}
	m.occupation = ""
	m.state = form.State{}
}

// View implements View.
func (m *SignUpForm) View() string {
	if top, ok := m.overlays.Peek(); ok {
		if m.width > 0 && m.height > 0 {
			return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, top.View())
		}
		return top.View()
	}

	var b strings.Builder
	b.WriteString(Styles.Title.Render("Create your account!") + "\n")

	b.WriteString(m.label(FieldName, "Name") + "\n")
	b.WriteString(m.inputs[FieldName].View() + "\n\n")
	b.WriteString(m.label(FieldEmail, "Email") + "\n")
	b.WriteString(m.inputs[FieldEmail].View() + "\n\n")

	toggle := "show"
	if m.showPassword {
		toggle = "hide"
	}
	b.WriteString(m.label(FieldPassword, "Password") + "  " + Styles.Toggle.Render(toggle) + "\n")
	b.WriteString(m.inputs[FieldPassword].View() + "\n\n")

	b.WriteString(m.label(FieldOccupation, "Choose your occupation") + "\n")
	b.WriteString(m.selector(FieldOccupation, string(m.occupation)) + "\n")
	b.WriteString(m.label(FieldState, "Choose your state") + "\n")
	b.WriteString(m.selector(FieldState, m.state.Name) + "\n\n")

	button := Styles.Button
	if m.focus.Current == FieldSubmit {
		button = Styles.ButtonFocused
	}
	b.WriteString(button.Render("Submit"))
	if m.pending {
		b.WriteString("  " + m.spinner.View() + Styles.Status.Render("Submitting…"))
	}
	b.WriteString("\n\n" + m.help.View(m.Keys))
	return Styles.Box.Render(b.String())
}

func (m *SignUpForm) label(field FieldID, text string) string {
	if m.focus.Current == field {
		return Styles.LabelFocused.Render(text)
	}
	return Styles.Label.Render(text)
}

func (m *SignUpForm) selector(field FieldID, value string) string {
	style := Styles.Field
	if m.focus.Current == field {
		style = Styles.FieldFocused
	}
	if value == "" {
		value = Styles.Muted.Render("select…")
	}
	return style.Render(value + " ▾")
}
