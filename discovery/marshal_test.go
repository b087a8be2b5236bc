package discovery

import (
	"bytes"
	"encoding/json/jsontext"
	"encoding/json/v2"
	"io"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardEncoder() *jsontext.Encoder {
	return jsontext.NewEncoder(io.Discard)
}

func capturingEncoder() (*jsontext.Encoder, *bytes.Buffer) {
	b := &bytes.Buffer{}
	return jsontext.NewEncoder(
		b,
		jsontext.AllowDuplicateNames(false),
		jsontext.AllowInvalidUTF8(false),
		jsontext.SpaceAfterComma(false),
		jsontext.SpaceAfterColon(false),
		jsontext.Multiline(false),
	), b
}

func TestDefaultMarshalers(t *testing.T) {
	t.Run("URL as string", func(t *testing.T) {
		e, b := capturingEncoder()

		u, err := url.Parse("http://example.com")
		require.NoError(t, err)

		require.NoError(t, json.MarshalEncode(e, map[string]*url.URL{"sut": u}, json.WithMarshalers(Marshalers)))

		assert.Equal(t, `{"sut":"http://example.com"}`, strings.TrimSpace(b.String()))
	})

	t.Run("Duration as integer seconds", func(t *testing.T) {
		for _, tt := range []struct {
			name     string
			d        time.Duration
			expected string
		}{
			{name: "Whole", d: 90 * time.Second, expected: `{"sut":90}`},
			{name: "Rounds Up", d: 5*time.Minute + 42*time.Second + 123*time.Millisecond, expected: `{"sut":343}`},
			{name: "Fractional", d: 1500 * time.Millisecond, expected: `{"sut":2}`},
			{name: "Sub Second Is Not Zero", d: 500 * time.Millisecond, expected: `{"sut":1}`},
			{name: "Zero", d: 0, expected: `{"sut":0}`},
		} {
			t.Run(tt.name, func(t *testing.T) {
				e, b := capturingEncoder()

				require.NoError(t, json.MarshalEncode(e, map[string]time.Duration{"sut": tt.d}, json.WithMarshalers(Marshalers)))

				assert.Equal(t, tt.expected, strings.TrimSpace(b.String()))
			})
		}
	})
}

func TestDefaultUnmarshalers(t *testing.T) {
	t.Run("URL from string", func(t *testing.T) {
		var sut map[string]*url.URL
		require.NoError(t, json.Unmarshal([]byte(`{"sut":"http://example.com/foo"}`), &sut, json.WithUnmarshalers(Unmarshalers)))

		require.NotNil(t, sut["sut"])
		assert.Equal(t, "http://example.com/foo", sut["sut"].String())
	})

	t.Run("URL from number", func(t *testing.T) {
		var sut map[string]*url.URL
		require.ErrorIs(t, json.Unmarshal([]byte(`{"sut":42}`), &sut, json.WithUnmarshalers(Unmarshalers)), ErrExpectedString)
	})

	t.Run("Duration from integer seconds", func(t *testing.T) {
		var sut map[string]time.Duration
		require.NoError(t, json.Unmarshal([]byte(`{"sut":342}`), &sut, json.WithUnmarshalers(Unmarshalers)))

		assert.Equal(t, 5*time.Minute+42*time.Second, sut["sut"])
	})

	t.Run("Duration from string", func(t *testing.T) {
		var sut map[string]time.Duration
		require.ErrorIs(t, json.Unmarshal([]byte(`{"sut":"5m"}`), &sut, json.WithUnmarshalers(Unmarshalers)), ErrExpectedNumber)
	})
}

func TestMarshalStd(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		e, b := capturingEncoder()

		require.ErrorIs(
			t,
			MarshalStd[int]("sut", e, "foo", nil),
			ErrValueRequired,
		)
		require.Empty(t, b.Bytes())
	})

	t.Run("OK", func(t *testing.T) {
		e, b := capturingEncoder()

		v := 123
		require.NoError(t, MarshalStd[int]("sut", e, "foo", &v))
		require.EqualValues(t, `"foo"
123
`, b.String())
	})
}

func TestMaybeMarshalStd(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		e, b := capturingEncoder()

		require.NoError(t, MaybeMarshalStd[int](e, "foo", nil))
		require.Empty(t, b.Bytes())
	})

	t.Run("OK", func(t *testing.T) {
		e, b := capturingEncoder()

		v := 123
		require.NoError(t, MaybeMarshalStd[int](e, "foo", &v))
		require.EqualValues(t, `"foo"
123
`, b.String())
	})
}

func TestMaybeMarshalStdSlice(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		t.Run("no elements", func(t *testing.T) {
			e, b := capturingEncoder()

			require.NoError(t, MaybeMarshalStdSlice[int](e, "foo", []int{}))
			require.Empty(t, b.Bytes())
		})

		t.Run("nil", func(t *testing.T) {
			e, b := capturingEncoder()

			require.NoError(t, MaybeMarshalStdSlice[int](e, "foo", nil))
			require.Empty(t, b.Bytes())
		})
	})

	t.Run("OK", func(t *testing.T) {
		e, b := capturingEncoder()

		require.NoError(t, MaybeMarshalStdSlice[int](e, "foo", []int{123}))
		require.EqualValues(t, `"foo"
[123]
`, b.String())
	})
}

func TestMarshalStdComparable(t *testing.T) {
	t.Run("Default", func(t *testing.T) {
		e, b := capturingEncoder()

		var v int

		require.ErrorIs(
			t,
			MarshalStdComparable("sut", e, "foo", v),
			ErrValueRequired,
		)
		require.Empty(t, b.Bytes())
	})

	t.Run("Not Default", func(t *testing.T) {
		e, b := capturingEncoder()

		require.NoError(t, MarshalStdComparable("sut", e, "foo", 123))
		require.EqualValues(t, `"foo"
123
`, b.String())
	})
}

func TestMaybeMarshalStdComparable(t *testing.T) {
	t.Run("Default", func(t *testing.T) {
		e, b := capturingEncoder()

		var v int

		require.NoError(t, MaybeMarshalStdComparable(e, "foo", v))
		require.Empty(t, b.Bytes())
	})

	t.Run("Not Default", func(t *testing.T) {
		e, b := capturingEncoder()

		require.NoError(t, MaybeMarshalStdComparable(e, "foo", 123))
		require.EqualValues(t, `"foo"
123
`, b.String())
	})
}

func TestMaybeInlineMarshalStd(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		e, b := capturingEncoder()

		require.NoError(t, MaybeInlineMarshalStd(e, map[string]string{}))
		require.Empty(t, b.Bytes())
	})

	t.Run("OK", func(t *testing.T) {
		e, b := capturingEncoder()

		require.NoError(t, MaybeInlineMarshalStd(e, map[string]string{"foo": "bar", "fizz": "buzz"}))

		assert.Equal(t, "\"fizz\"\n\"buzz\"\n\"foo\"\n\"bar\"\n", b.String())
	})
}
