package ui

// FieldID identifies a focusable element of the sign-up form.
type FieldID int

const (
	FieldName FieldID = iota
	FieldEmail
	FieldPassword
	FieldOccupation
	FieldState
	FieldSubmit
)

func (f FieldID) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldEmail:
		return "email"
	case FieldPassword:
		return "password"
	case FieldOccupation:
		return "occupation"
	case FieldState:
		return "state"
	case FieldSubmit:
		return "submit"
	default:
		return "unknown"
	}
}

// isText reports whether the field is backed by a text input.
func (f FieldID) isText() bool {
	return f == FieldName || f == FieldEmail || f == FieldPassword
}

// FocusManager tracks and rotates focus across the form's fields.
type FocusManager struct {
	Current  FieldID   // currently focused field
	Order    []FieldID // Tab order for focus rotation
	OnChange func(from, to FieldID)
}

// NewFocusManager returns a manager over order, focused on its first entry.
func NewFocusManager(order ...FieldID) *FocusManager {
	f := &FocusManager{Order: order}
	if len(order) > 0 {
		f.Current = order[0]
	}
	return f
}

// Next advances focus to the next field in order, wrapping at the end.
func (f *FocusManager) Next() FieldID {
	return f.move(1)
}

// Prev moves focus to the previous field in order, wrapping at the start.
func (f *FocusManager) Prev() FieldID {
	return f.move(-1)
}

func (f *FocusManager) move(delta int) FieldID {
	if len(f.Order) == 0 {
		return f.Current
	}
	idx := f.index(f.Current)
	if idx < 0 {
		idx = 0
		delta = 0
	}
	n := len(f.Order)
	return f.set(f.Order[((idx+delta)%n+n)%n])
}

// SetFocus focuses id. Returns false if id is not in the order.
func (f *FocusManager) SetFocus(id FieldID) bool {
	if f.index(id) < 0 {
		return false
	}
	f.set(id)
	return true
}

func (f *FocusManager) set(id FieldID) FieldID {
	from := f.Current
	f.Current = id
	if f.OnChange != nil && from != id {
		f.OnChange(from, id)
	}
	return id
}

func (f *FocusManager) index(id FieldID) int {
	for i, o := range f.Order {
		if o == id {
			return i
		}
	}
	return -1
}
