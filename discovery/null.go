package discovery

import (
	"encoding/json/jsontext"
	"fmt"
)

// MarshalNullableString writes s as a JSON string, or as JSON null if s is empty. Home Assistant uses an explicit null
// for some fields (like device_class) to mean "none" rather than "use the default".
func MarshalNullableString(e *jsontext.Encoder, s string) error {
	if s == "" {
		return e.WriteToken(jsontext.Null)
	}

	return e.WriteToken(jsontext.String(s))
}

// UnmarshalNullableString is the inverse of MarshalNullableString. A JSON null sets s to the empty string.
func UnmarshalNullableString(d *jsontext.Decoder, s *string) error {
	tok, err := d.ReadToken()
	if err != nil {
		return err
	}

	switch tok.Kind() {
	case 'n':
		*s = ""
	case '"':
		*s = tok.String()
	default:
		return fmt.Errorf("nullable string: %w", ErrExpectedString)
	}

	return nil
}
