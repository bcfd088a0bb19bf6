// Package entity defines the records managed by the admin screens and their
// draft schemas.
package entity

import (
	"errors"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/form"
	"github.com/go-playground/validator/v10"

	"github.com/jask/gestion/internal/crud"
)

var (
	decoder  = form.NewDecoder()
	encoder  = form.NewEncoder()
	validate = newValidate()
)

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("form"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// encodeDraft stringifies every form-tagged field of v.
func encodeDraft(v any, fields []crud.Field) crud.Draft {
	vals, err := encoder.Encode(v)
	d := crud.EmptyDraft(fields)
	if err != nil {
		return d
	}
	enc := crud.DraftFromValues(vals)
	for _, f := range fields {
		if v, ok := enc[f.Name]; ok {
			d[f.Name] = v
		}
	}
	return d
}

// decodeDraft fills dst from d. Numeric fields are trimmed first; a value
// that still fails to parse leaves the field zero and is reported as a
// *crud.ParseError.
func decodeDraft(kind string, dst any, d crud.Draft, fields []crud.Field) error {
	vals := crud.EmptyDraft(fields)
	for _, f := range fields {
		v := d.Get(f.Name)
		if f.Numeric {
			v = strings.TrimSpace(v)
		}
		vals[f.Name] = v
	}
	err := decoder.Decode(dst, vals.Values())
	if err == nil {
		return nil
	}
	var decodeErrs form.DecodeErrors
	if !errors.As(err, &decodeErrs) {
		return err
	}
	names := make([]string, 0, len(decodeErrs))
	for name := range decodeErrs {
		names = append(names, name)
	}
	sort.Strings(names)
	errs := make([]error, 0, len(names))
	for _, name := range names {
		errs = append(errs, &crud.ParseError{Kind: kind, Field: name, Value: vals[name], Err: decodeErrs[name]})
	}
	return errors.Join(errs...)
}

func validateStruct(kind string, v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	errs := make([]error, 0, len(verrs))
	for _, fe := range verrs {
		errs = append(errs, &crud.ValidationError{Kind: kind, Field: fe.Field(), Rule: fe.Tag()})
	}
	return errors.Join(errs...)
}
