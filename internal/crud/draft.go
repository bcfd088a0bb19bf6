package crud

import (
	"maps"
	"net/url"
)

// Draft is the string-typed form state of an in-progress create or edit.
type Draft map[string]string

// EmptyDraft returns a draft with every field of fields set to "".
func EmptyDraft(fields []Field) Draft {
	d := make(Draft, len(fields))
	for _, f := range fields {
		d[f.Name] = ""
	}
	return d
}

func (d Draft) Get(name string) string {
	return d[name]
}

// With returns a copy of d with name set to value.
func (d Draft) With(name, value string) Draft {
	out := d.Clone()
	out[name] = value
	return out
}

func (d Draft) Clone() Draft {
	if d == nil {
		return Draft{}
	}
	return maps.Clone(d)
}

// Values exposes the draft as form values for decoders.
func (d Draft) Values() url.Values {
	v := make(url.Values, len(d))
	for k, s := range d {
		v.Set(k, s)
	}
	return v
}

// DraftFromValues keeps the first value of every key.
func DraftFromValues(v url.Values) Draft {
	d := make(Draft, len(v))
	for k := range v {
		d[k] = v.Get(k)
	}
	return d
}
