package hass

import (
	"encoding/json/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrigin(t *testing.T) {
	t.Run("Default", func(t *testing.T) {
		b, err := json.Marshal(DefaultOrigin)
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"hadiscovery","sw":"master","url":"https://github.com/nlowe/hadiscovery"}`, string(b))
	})

	t.Run("Name Only", func(t *testing.T) {
		b, err := json.Marshal(Origin{Name: "foo"})
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"foo"}`, string(b))
	})

	t.Run("Unmarshal", func(t *testing.T) {
		var sut Origin
		require.NoError(t, json.Unmarshal(
			[]byte(`{"name":"hadiscovery","sw_version":"master","support_url":"https://github.com/nlowe/hadiscovery"}`),
			&sut,
		))

		assert.Equal(t, DefaultOrigin, sut)
	})
}
