// Package form holds the sign-up form's data model: the selection lists
// supplied by the remote endpoint, the field state edited by the user, and the
// payload assembled from it on submit.
package form

import "github.com/go-faster/errors"

// Validation failures raised by Fields.Validate. Both abort a submission
// before any network activity.
var (
	ErrMissingOccupation = errors.New("occupation not selected")
	ErrMissingState      = errors.New("state not selected")
)

// Occupation is a plain text label from the occupations list.
type Occupation string

// State is a state-of-residence record. Only Name is interpreted; when the
// record was decoded from Options the source JSON object is kept and
// submitted unchanged.
type State struct {
	Name string
	raw  []byte
}

// NewState returns a State record carrying only a name.
func NewState(name string) State {
	return State{Name: name}
}

// IsZero reports whether no state is selected.
func (s State) IsZero() bool {
	return s.Name == "" && len(s.raw) == 0
}

// Options are the immutable selection lists fetched once before the form
// becomes interactive.
type Options struct {
	Occupations []Occupation
	States      []State
}

// OccupationLabels returns the occupations as plain strings, in order.
func (o Options) OccupationLabels() []string {
	out := make([]string, len(o.Occupations))
	for i, occ := range o.Occupations {
		out[i] = string(occ)
	}
	return out
}

// StateLabels returns the state names, in order.
func (o Options) StateLabels() []string {
	out := make([]string, len(o.States))
	for i, s := range o.States {
		out[i] = s.Name
	}
	return out
}

// Fields is the form state for one page view. The zero value is the initial
// default: empty text fields, no occupation and a state with an empty name.
type Fields struct {
	Name       string
	Email      string
	Password   string
	Occupation Occupation
	State      State
}

// IsZero reports whether every field holds its default.
func (f Fields) IsZero() bool {
	return f.Name == "" && f.Email == "" && f.Password == "" &&
		f.Occupation == "" && f.State.IsZero()
}

// Validate checks the two required selections, occupation first.
func (f Fields) Validate() error {
	if f.Occupation == "" {
		return ErrMissingOccupation
	}
	if f.State.Name == "" {
		return ErrMissingState
	}
	return nil
}

// Notice returns the user-facing message for a validation failure.
func Notice(err error) string {
	switch {
	case errors.Is(err, ErrMissingOccupation):
		return "You must select an occupation!"
	case errors.Is(err, ErrMissingState):
		return "You must select a state!"
	default:
		return err.Error()
	}
}

// Payload assembles the submission payload from the current field values.
func (f Fields) Payload() Payload {
	return Payload{
		Name:       f.Name,
		Email:      f.Email,
		Password:   f.Password,
		State:      f.State,
		Occupation: f.Occupation,
	}
}

// Payload is the body of the create request.
type Payload struct {
	Name       string
	Email      string
	Password   string
	State      State
	Occupation Occupation
}

// Account is the decoded create response. Only the echoed name is consumed.
type Account struct {
	Name string
}
