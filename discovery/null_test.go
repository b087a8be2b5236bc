package discovery

import (
	"encoding/json/jsontext"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalNullableString(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		e, b := capturingEncoder()

		require.NoError(t, MarshalNullableString(e, ""))
		assert.Equal(t, "null", strings.TrimSpace(b.String()))
	})

	t.Run("Value", func(t *testing.T) {
		e, b := capturingEncoder()

		require.NoError(t, MarshalNullableString(e, "foo"))
		assert.Equal(t, `"foo"`, strings.TrimSpace(b.String()))
	})
}

func TestUnmarshalNullableString(t *testing.T) {
	for _, tt := range []struct {
		name     string
		in       string
		expected string
		err      error
	}{
		{name: "Null", in: `null`, expected: ""},
		{name: "String", in: `"foo"`, expected: "foo"},
		{name: "Number", in: `42`, err: ErrExpectedString},
	} {
		t.Run(tt.name, func(t *testing.T) {
			s := "unchanged"
			err := UnmarshalNullableString(jsontext.NewDecoder(strings.NewReader(tt.in)), &s)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, s)
		})
	}
}
