package ui

import "testing"

func TestFocusManager_NextPrevWrap(t *testing.T) {
	f := NewFocusManager(FieldName, FieldEmail, FieldSubmit)
	if f.Current != FieldName {
		t.Fatalf("initial focus = %s, want name", f.Current)
	}
	if got := f.Next(); got != FieldEmail {
		t.Errorf("Next = %s, want email", got)
	}
	f.Next()
	if got := f.Next(); got != FieldName {
		t.Errorf("Next should wrap to name, got %s", got)
	}
	if got := f.Prev(); got != FieldSubmit {
		t.Errorf("Prev should wrap to submit, got %s", got)
	}
}

func TestFocusManager_OnChange(t *testing.T) {
	f := NewFocusManager(FieldName, FieldEmail)
	var from, to FieldID
	calls := 0
	f.OnChange = func(a, b FieldID) {
		from, to = a, b
		calls++
	}

	f.Next()
	if calls != 1 || from != FieldName || to != FieldEmail {
		t.Errorf("OnChange calls=%d from=%s to=%s", calls, from, to)
	}
	if !f.SetFocus(FieldEmail) || calls != 1 {
		t.Errorf("SetFocus on current field should not fire OnChange, calls=%d", calls)
	}
	if f.SetFocus(FieldState) {
		t.Error("SetFocus should reject a field outside the order")
	}
}

func TestFocusManager_Empty(t *testing.T) {
	var f FocusManager
	if got := f.Next(); got != FieldName {
		t.Errorf("Next on empty manager = %s", got)
	}
}

func TestFieldID_String(t *testing.T) {
	if FieldOccupation.String() != "occupation" || FieldID(99).String() != "unknown" {
		t.Error("unexpected FieldID names")
	}
}
