package discovery

import (
	"encoding/json/jsontext"
	"encoding/json/v2"
	"errors"
	"fmt"
)

// Field binds a single discovery key to the Go value that holds it.
type Field interface {
	// Key returns the abbreviated discovery key for this field.
	Key() string
	// MarshalTo writes the key and value to e. Fields that are absent write nothing.
	MarshalTo(e *jsontext.Encoder) error
	// UnmarshalFrom reads the next value from d into the bound Go value.
	UnmarshalFrom(d *jsontext.Decoder) error
}

type optionalField[T any] struct {
	key string
	v   **T
}

// Optional binds k to a pointer field. A nil pointer is omitted from the payload. When decoding, a JSON null clears
// the pointer unless *T knows how to decode null itself (see MarshalNullableString).
func Optional[T any](k string, v **T) Field {
	return optionalField[T]{key: k, v: v}
}

func (f optionalField[T]) Key() string {
	return f.key
}

func (f optionalField[T]) MarshalTo(e *jsontext.Encoder) error {
	return MaybeMarshalStd(e, f.key, *f.v)
}

func (f optionalField[T]) UnmarshalFrom(d *jsontext.Decoder) error {
	var t T
	if d.PeekKind() == 'n' {
		u, ok := any(&t).(json.UnmarshalerFrom)
		if !ok {
			*f.v = nil
			return d.SkipValue()
		}

		if err := u.UnmarshalJSONFrom(d); err != nil {
			return err
		}

		*f.v = &t
		return nil
	}

	if err := UnmarshalStd(d, &t); err != nil {
		return err
	}

	*f.v = &t
	return nil
}

type requiredField[T any] struct {
	key string
	v   *T
}

// Required binds k to a value that is always present in the payload, even when it holds its zero value.
func Required[T any](k string, v *T) Field {
	return requiredField[T]{key: k, v: v}
}

func (f requiredField[T]) Key() string {
	return f.key
}

func (f requiredField[T]) MarshalTo(e *jsontext.Encoder) error {
	return MaybeMarshalStd(e, f.key, f.v)
}

func (f requiredField[T]) UnmarshalFrom(d *jsontext.Decoder) error {
	return UnmarshalStd(d, f.v)
}

type sliceField[T any] struct {
	key string
	v   *[]T
}

// Slice binds k to a list. Empty lists are omitted from the payload.
func Slice[T any](k string, v *[]T) Field {
	return sliceField[T]{key: k, v: v}
}

func (f sliceField[T]) Key() string {
	return f.key
}

func (f sliceField[T]) MarshalTo(e *jsontext.Encoder) error {
	return MaybeMarshalStdSlice(e, f.key, *f.v)
}

func (f sliceField[T]) UnmarshalFrom(d *jsontext.Decoder) error {
	return UnmarshalStd(d, f.v)
}

type omitEmptyField[T comparable] struct {
	key string
	v   *T
}

// OmitEmpty binds k to a value that is omitted from the payload while it holds its zero value.
func OmitEmpty[T comparable](k string, v *T) Field {
	return omitEmptyField[T]{key: k, v: v}
}

func (f omitEmptyField[T]) Key() string {
	return f.key
}

func (f omitEmptyField[T]) MarshalTo(e *jsontext.Encoder) error {
	return MaybeMarshalStdComparable(e, f.key, *f.v)
}

func (f omitEmptyField[T]) UnmarshalFrom(d *jsontext.Decoder) error {
	return UnmarshalStd(d, f.v)
}

// Fields is an ordered table of Field values that together make up a discovery payload. It marshals as a single flat
// JSON object, so tables for nested configuration (like availability) can be appended to an entity's table to place
// their keys at the top level.
type Fields []Field

func (f Fields) MarshalJSONTo(e *jsontext.Encoder) error {
	err := e.WriteToken(jsontext.BeginObject)
	for _, field := range f {
		err = errors.Join(err, field.MarshalTo(e))
	}

	return errors.Join(err, e.WriteToken(jsontext.EndObject))
}

// UnmarshalJSONFrom decodes a discovery payload into the bound values. Keys may be abbreviated or spelled out in full.
// Unknown keys are skipped.
func (f Fields) UnmarshalJSONFrom(d *jsontext.Decoder) error {
	tok, err := d.ReadToken()
	if err != nil {
		return err
	}

	if tok.Kind() != '{' {
		return ErrExpectedObject
	}

	byKey := make(map[string]Field, len(f))
	for _, field := range f {
		byKey[field.Key()] = field
	}

	for d.PeekKind() != '}' {
		name, err := d.ReadToken()
		if err != nil {
			return err
		}

		field, ok := byKey[Abbreviate(name.String())]
		if !ok {
			if err = d.SkipValue(); err != nil {
				return err
			}

			continue
		}

		if err = field.UnmarshalFrom(d); err != nil {
			return fmt.Errorf("%s: %w", name.String(), err)
		}
	}

	_, err = d.ReadToken()
	return err
}
