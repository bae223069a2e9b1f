package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlayStack_PushPop(t *testing.T) {
	var s OverlayStack
	_, ok := s.Pop()
	assert.False(t, ok)

	a := NewNoticeModal("a", "first")
	b := NewWarningModal("b", "second")
	s.Push(a)
	s.Push(b)
	require.Equal(t, 2, s.Len())

	top, _ := s.Peek()
	assert.Same(t, b, top)
	popped, _ := s.Pop()
	assert.Same(t, b, popped)
	assert.Equal(t, 1, s.Len())
}

func TestOverlayStack_UpdateTop(t *testing.T) {
	var s OverlayStack
	_, ok := s.UpdateTop(keyMsg("enter"))
	assert.False(t, ok)

	s.Push(NewNoticeModal("Account created", "Welcome Ada!"))
	cmd, ok := s.UpdateTop(keyMsg("enter"))
	require.True(t, ok)
	require.NotNil(t, cmd)
	_, isDismiss := cmd().(DismissModalMsg)
	assert.True(t, isDismiss)
}

func TestNoticeModal_View(t *testing.T) {
	m := NewNoticeModal("Account created", "Welcome Ada Lovelace!")
	out := m.View()
	assert.Contains(t, out, "Account created")
	assert.Contains(t, out, "Welcome Ada Lovelace!")

	_, cmd := m.Update(keyMsg("x"))
	assert.Nil(t, cmd)
}
