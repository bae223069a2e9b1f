package ui

import tea "github.com/charmbracelet/bubbletea"

// OverlayStack holds the views drawn over the form (dropdowns and notices).
// The topmost overlay receives all input until it is popped.
type OverlayStack struct {
	Stack []View
}

// Push adds an overlay to the top of the stack.
func (s *OverlayStack) Push(v View) {
	s.Stack = append(s.Stack, v)
}

// Pop removes and returns the top overlay.
func (s *OverlayStack) Pop() (View, bool) {
	if len(s.Stack) == 0 {
		return nil, false
	}
	top := s.Stack[len(s.Stack)-1]
	s.Stack = s.Stack[:len(s.Stack)-1]
	return top, true
}

// Peek returns the top overlay without removing it.
func (s *OverlayStack) Peek() (View, bool) {
	if len(s.Stack) == 0 {
		return nil, false
	}
	return s.Stack[len(s.Stack)-1], true
}

// Len returns the number of overlays in the stack.
func (s *OverlayStack) Len() int {
	return len(s.Stack)
}

// UpdateTop passes msg to the top overlay and replaces it with the result.
// Caller must run the returned cmd.
func (s *OverlayStack) UpdateTop(msg tea.Msg) (tea.Cmd, bool) {
	if len(s.Stack) == 0 {
		return nil, false
	}
	top := &s.Stack[len(s.Stack)-1]
	v, cmd := (*top).Update(msg)
	*top = v
	return cmd, true
}
