package form

import (
	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// DecodeOptions decodes the body of the initial GET:
//
//	{"occupations": ["..."], "states": [{"name": "...", ...}]}
//
// Unknown top-level keys are skipped. A missing list decodes as empty.
func DecodeOptions(data []byte) (Options, error) {
	var opts Options
	d := jx.DecodeBytes(data)
	err := d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "occupations":
			return d.Arr(func(d *jx.Decoder) error {
				s, err := d.Str()
				if err != nil {
					return errors.Wrap(err, "occupation")
				}
				opts.Occupations = append(opts.Occupations, Occupation(s))
				return nil
			})
		case "states":
			return d.Arr(func(d *jx.Decoder) error {
				var st State
				if err := st.Decode(d); err != nil {
					return errors.Wrap(err, "state")
				}
				opts.States = append(opts.States, st)
				return nil
			})
		default:
			return d.Skip()
		}
	})
	if err != nil {
		return Options{}, errors.Wrap(err, "decode options")
	}
	return opts, nil
}

// Decode reads a state record and keeps the whole object, compacted, for
// re-encoding. Key order and unknown keys are preserved.
func (s *State) Decode(d *jx.Decoder) error {
	if tt := d.Next(); tt != jx.Object {
		return errors.Errorf("expected object, got %s", tt)
	}
	var e jx.Encoder
	if err := writeCompact(d, &e); err != nil {
		return err
	}
	raw := e.Bytes()
	var name string
	err := jx.DecodeBytes(raw).Obj(func(d *jx.Decoder, key string) error {
		if key != "name" {
			return d.Skip()
		}
		if d.Next() == jx.Null {
			return d.Null()
		}
		v, err := d.Str()
		if err != nil {
			return errors.Wrap(err, "name")
		}
		name = v
		return nil
	})
	if err != nil {
		return err
	}
	s.Name = name
	s.raw = raw
	return nil
}

// writeCompact copies the next value from d to e without insignificant
// whitespace.
func writeCompact(d *jx.Decoder, e *jx.Encoder) error {
	switch tt := d.Next(); tt {
	case jx.String:
		v, err := d.Str()
		if err != nil {
			return err
		}
		e.Str(v)
	case jx.Number:
		v, err := d.Num()
		if err != nil {
			return err
		}
		e.Num(v)
	case jx.Bool:
		v, err := d.Bool()
		if err != nil {
			return err
		}
		e.Bool(v)
	case jx.Null:
		if err := d.Null(); err != nil {
			return err
		}
		e.Null()
	case jx.Array:
		e.ArrStart()
		if err := d.Arr(func(d *jx.Decoder) error {
			return writeCompact(d, e)
		}); err != nil {
			return err
		}
		e.ArrEnd()
	case jx.Object:
		e.ObjStart()
		if err := d.Obj(func(d *jx.Decoder, key string) error {
			e.FieldStart(key)
			return writeCompact(d, e)
		}); err != nil {
			return err
		}
		e.ObjEnd()
	default:
		return errors.Errorf("unexpected %s", tt)
	}
	return nil
}

// Encode writes the state record. Records decoded from Options are written
// with their original keys and values; others are written as {"name": ...}.
func (s State) Encode(e *jx.Encoder) {
	if len(s.raw) > 0 {
		e.Raw(s.raw)
		return
	}
	e.ObjStart()
	e.FieldStart("name")
	e.Str(s.Name)
	e.ObjEnd()
}

// MarshalJSON implements json.Marshaler.
func (s State) MarshalJSON() ([]byte, error) {
	var e jx.Encoder
	s.Encode(&e)
	return e.Bytes(), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *State) UnmarshalJSON(data []byte) error {
	return s.Decode(jx.DecodeBytes(data))
}

// Encode writes the payload with keys in submission order:
// name, email, password, state, occupation.
func (p Payload) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("name")
	e.Str(p.Name)
	e.FieldStart("email")
	e.Str(p.Email)
	e.FieldStart("password")
	e.Str(p.Password)
	e.FieldStart("state")
	p.State.Encode(e)
	e.FieldStart("occupation")
	e.Str(string(p.Occupation))
	e.ObjEnd()
}

// MarshalJSON implements json.Marshaler.
func (p Payload) MarshalJSON() ([]byte, error) {
	var e jx.Encoder
	p.Encode(&e)
	return e.Bytes(), nil
}

// DecodeAccount decodes the create response. The body must be a JSON object;
// a missing name decodes as empty.
func DecodeAccount(data []byte) (Account, error) {
	var acc Account
	err := jx.DecodeBytes(data).Obj(func(d *jx.Decoder, key string) error {
		if key != "name" {
			return d.Skip()
		}
		switch d.Next() {
		case jx.Null:
			return d.Null()
		case jx.String:
			v, err := d.Str()
			acc.Name = v
			return err
		default:
			raw, err := d.Raw()
			acc.Name = raw.String()
			return err
		}
	})
	if err != nil {
		return Account{}, errors.Wrap(err, "decode account")
	}
	return acc, nil
}
