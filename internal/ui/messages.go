package ui

import "signup/internal/form"

// SubmitMsg asks the form to submit (ctrl+s, or Enter on the Submit button).
type SubmitMsg struct{}

// TogglePasswordMsg flips the password field between masked and plain text.
type TogglePasswordMsg struct{}

// OpenDropdownMsg opens the selection list for a selector field.
type OpenDropdownMsg struct {
	Field FieldID
}

// OptionChosenMsg is sent by a Dropdown when the user picks an entry.
// The form handles the two instantiations it opens: form.Occupation and form.State.
type OptionChosenMsg[T any] struct {
	Field FieldID
	Value T
}

// DismissModalMsg closes From when it is the top overlay (Esc on a dropdown,
// Enter/Esc on a notice).
type DismissModalMsg struct {
	From View
}

// SubmittedMsg carries the outcome of the create request.
type SubmittedMsg struct {
	Account form.Account
	Err     error
}
