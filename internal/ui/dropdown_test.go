package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"signup/internal/form"
)

func stateDropdown(selected int) *Dropdown[form.State] {
	return NewDropdown(FieldState, "Choose your state", testOptions().States,
		func(s form.State) string { return s.Name }, selected)
}

func TestDropdown_EnterEmitsTypedChoice(t *testing.T) {
	d := stateDropdown(-1)
	d.Update(keyMsg("down"))
	_, cmd := d.Update(keyMsg("enter"))
	require.NotNil(t, cmd)

	msg, ok := cmd().(OptionChosenMsg[form.State])
	require.True(t, ok)
	assert.Equal(t, FieldState, msg.Field)
	assert.Equal(t, "California", msg.Value.Name)
}

func TestDropdown_StartsAtCurrentSelection(t *testing.T) {
	d := stateDropdown(2)
	_, cmd := d.Update(keyMsg("enter"))
	require.NotNil(t, cmd)
	msg := cmd().(OptionChosenMsg[form.State])
	assert.Equal(t, "Texas", msg.Value.Name)
}

func TestDropdown_EscDismisses(t *testing.T) {
	d := stateDropdown(-1)
	_, cmd := d.Update(keyMsg("esc"))
	require.NotNil(t, cmd)
	msg, ok := cmd().(DismissModalMsg)
	require.True(t, ok)
	assert.Same(t, d, msg.From)
}

func TestDropdown_MarksCurrentSelection(t *testing.T) {
	d := stateDropdown(1)
	assert.Contains(t, d.View(), "✓ California")
	assert.NotContains(t, d.View(), "✓ Alabama")

	d.Update(keyMsg("down"))
	assert.Contains(t, d.View(), "✓ California", "moving the cursor does not move the check")

	assert.NotContains(t, stateDropdown(-1).View(), "✓")
}

func TestDropdown_TextOptions(t *testing.T) {
	d := NewDropdown(FieldOccupation, "Choose your occupation", []form.Occupation{"Engineer"},
		func(o form.Occupation) string { return string(o) }, 0)
	assert.Equal(t, FieldOccupation, d.Field())
	assert.Contains(t, d.View(), "Engineer")

	_, cmd := d.Update(keyMsg("enter"))
	msg := cmd().(OptionChosenMsg[form.Occupation])
	assert.Equal(t, form.Occupation("Engineer"), msg.Value)
}

func TestDropdown_EmptyListIgnoresEnter(t *testing.T) {
	d := NewDropdown(FieldState, "Choose your state", nil, func(s form.State) string { return s.Name }, -1)
	_, cmd := d.Update(keyMsg("enter"))
	assert.Nil(t, cmd)
}
