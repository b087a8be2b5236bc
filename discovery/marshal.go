package discovery

import (
	"encoding/json/jsontext"
	"encoding/json/v2"
	"errors"
	"fmt"
	"maps"
	"math"
	"net/url"
	"slices"
	"time"
)

var (
	// ErrValueRequired is the error returned by marshal functions for values that hold the type's associated Zero value
	// when marshaling the discovery payload.
	ErrValueRequired = errors.New("value is required")
	// ErrExpectedObject is the error returned when decoding a discovery payload that is not a JSON object.
	ErrExpectedObject = errors.New("expected a JSON object")
	// ErrExpectedString is the error returned when decoding a value that must be a JSON string (or null).
	ErrExpectedString = errors.New("expected a JSON string")
	// ErrExpectedNumber is the error returned when decoding a value that must be a JSON number.
	ErrExpectedNumber = errors.New("expected a JSON number")

	// Marshalers contains json.Marshalers for types from the standard library to make them conform to the Home
	// Assistant MQTT Device Discovery schema (e.g. render URLs as strings).
	Marshalers = json.JoinMarshalers(
		// Marshal URLs as their string representation
		json.MarshalToFunc[*url.URL](func(e *jsontext.Encoder, u *url.URL) error {
			return e.WriteToken(jsontext.String(u.String()))
		}),
		// Marshal durations as integer seconds, rounded up. A positive duration never encodes as 0, which Home
		// Assistant reads as "never" for expire_after.
		json.MarshalToFunc[time.Duration](func(e *jsontext.Encoder, t time.Duration) error {
			return e.WriteToken(jsontext.Int(int64(math.Ceil(t.Seconds()))))
		}),
	)

	// Unmarshalers is the inverse of Marshalers.
	Unmarshalers = json.JoinUnmarshalers(
		json.UnmarshalFromFunc[*url.URL](func(d *jsontext.Decoder, u *url.URL) error {
			tok, err := d.ReadToken()
			if err != nil {
				return err
			}

			if tok.Kind() != '"' {
				return fmt.Errorf("url: %w", ErrExpectedString)
			}

			parsed, err := url.Parse(tok.String())
			if err != nil {
				return err
			}

			*u = *parsed
			return nil
		}),
		json.UnmarshalFromFunc[*time.Duration](func(d *jsontext.Decoder, t *time.Duration) error {
			tok, err := d.ReadToken()
			if err != nil {
				return err
			}

			if tok.Kind() != '0' {
				return fmt.Errorf("duration: %w", ErrExpectedNumber)
			}

			*t = time.Duration(tok.Float() * float64(time.Second))
			return nil
		}),
	)
)

// MarshalStd marshals the specified value using json.MarshalEncode with Marshalers. If the provided value is nil, it
// returns ErrValueRequired.
func MarshalStd[T any](name string, e *jsontext.Encoder, k string, v *T) error {
	if v == nil {
		return fmt.Errorf("%s: %w", name, ErrValueRequired)
	}

	return MaybeMarshalStd(e, k, v)
}

// MaybeMarshalStd marshals the provided value using json.MarshalEncode with Marshalers if it is not nil.
func MaybeMarshalStd[T any](e *jsontext.Encoder, k string, v *T) error {
	if v == nil {
		return nil
	}

	return errors.Join(
		e.WriteToken(jsontext.String(k)),
		json.MarshalEncode(e, v, json.WithMarshalers(Marshalers)),
	)
}

// MaybeMarshalStdSlice marshals the provided slice of values using json.MarshalEncode with Marshalers if it is not
// empty.
func MaybeMarshalStdSlice[T any](e *jsontext.Encoder, k string, v []T) error {
	if len(v) == 0 {
		return nil
	}

	return errors.Join(
		e.WriteToken(jsontext.String(k)),
		json.MarshalEncode(e, v, json.WithMarshalers(Marshalers)),
	)
}

// MarshalStdComparable marshals the provided value using Marshalers. If it is equal to the type's zero value, it
// returns ErrValueRequired.
func MarshalStdComparable[T comparable](name string, e *jsontext.Encoder, k string, v T) error {
	var defaultT T
	if v == defaultT {
		return fmt.Errorf("%s: %w", name, ErrValueRequired)
	}

	return MaybeMarshalStd(e, k, &v)
}

// MaybeMarshalStdComparable marshals the provided value using Marshalers if it is not equal to the type's zero value.
func MaybeMarshalStdComparable[T comparable](e *jsontext.Encoder, k string, v T) error {
	var defaultT T
	if v == defaultT {
		return nil
	}

	return MaybeMarshalStd(e, k, &v)
}

// MaybeInlineMarshalStd marshals the provided map of values inline (without emitting jsontext.BeginObject and
// jsontext.EndObject tokens) using map keys for string tokens and json.MarshalEncode with Marshalers to marshal the
// values. Keys are written in sorted order so the same map always produces the same payload.
func MaybeInlineMarshalStd[T any, TMap map[string]T](e *jsontext.Encoder, v TMap) error {
	if len(v) == 0 {
		return nil
	}

	var err error
	for _, vk := range slices.Sorted(maps.Keys(v)) {
		err = errors.Join(
			err,
			e.WriteToken(jsontext.String(vk)),
			json.MarshalEncode(e, v[vk], json.WithMarshalers(Marshalers)),
		)
	}

	return err
}

// UnmarshalStd decodes the next value from d into v using json.UnmarshalDecode with Unmarshalers.
func UnmarshalStd[T any](d *jsontext.Decoder, v *T) error {
	return json.UnmarshalDecode(d, v, json.WithUnmarshalers(Unmarshalers))
}
