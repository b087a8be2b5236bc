package discovery

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHomeAssistantStatusTopic(t *testing.T) {
	t.Run("Default Prefix", func(t *testing.T) {
		require.Equal(t, "homeassistant/status", HomeAssistantStatusTopic(DefaultPrefix))
	})

	t.Run("Empty Prefix", func(t *testing.T) {
		require.Equal(t, "homeassistant/status", HomeAssistantStatusTopic(""))
	})

	t.Run("Custom Prefix", func(t *testing.T) {
		require.Equal(t, "custom/status", HomeAssistantStatusTopic("custom/"))
	})
}
