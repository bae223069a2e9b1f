// Package ui implements the sign-up form as a Bubble Tea program.
//
// Core pieces:
//   - SignUpForm: the form View (text inputs, selectors, submit button)
//   - Dropdown: generic selection list, instantiated for occupations and states
//   - NoticeModal: blocking notice for validation, success and failure
//   - OverlayStack: dropdowns and notices drawn over the form; the top one takes input
//   - FocusManager: Tab order across the form's fields
package ui
