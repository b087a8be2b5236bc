package hadiscovery

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nlowe/hadiscovery/hass"
	"github.com/nlowe/hadiscovery/mqtt"
	"github.com/nlowe/hadiscovery/platform"
)

type write struct {
	topic   string
	options mqtt.WriteOptions
	payload string
}

func recordingWriter(writes *[]write) mqtt.Writer {
	return mqtt.WriterFunc(func(_ context.Context, topic string, options mqtt.WriteOptions, value []byte) error {
		*writes = append(*writes, write{topic: topic, options: options, payload: string(value)})
		return nil
	})
}

func TestAnnounce(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		var writes []write
		sensor := platform.NewSensor().
			WithName("Temperature").
			WithStateTopic("livingroom/temperature").
			WithUnitOfMeasurement(hass.UnitCelsius)

		require.NoError(t, Announce(t.Context(), recordingWriter(&writes), "", "livingroom", "temperature", sensor))

		require.Len(t, writes, 1)
		assert.Equal(t, "homeassistant/sensor/livingroom/temperature/config", writes[0].topic)
		assert.Equal(t, mqtt.WriteOptions{Retain: true}, writes[0].options)
		assert.JSONEq(t, `{
			"name": "Temperature",
			"stat_t": "livingroom/temperature",
			"unit_of_meas": "°C",
			"p": "sensor",
			"o": {"name": ""},
			"dev": {}
		}`, writes[0].payload)
	})

	t.Run("Missing Object ID", func(t *testing.T) {
		var writes []write
		err := Announce(t.Context(), recordingWriter(&writes), "", "node", "", platform.NewButton())

		require.ErrorIs(t, err, ErrMissingObjectID)
		assert.Empty(t, writes)
	})

	t.Run("Write Error", func(t *testing.T) {
		expected := errors.New("broker unavailable")
		w := mqtt.WriterFunc(func(context.Context, string, mqtt.WriteOptions, []byte) error {
			return expected
		})

		require.ErrorIs(t, Announce(t.Context(), w, "", "", "foo", platform.NewButton()), expected)
	})
}

func TestRemove(t *testing.T) {
	var writes []write
	require.NoError(t, Remove(t.Context(), recordingWriter(&writes), "custom", platform.DomainSwitch, "", "plug"))

	require.Equal(t, []write{{
		topic:   "custom/switch/plug/config",
		options: mqtt.WriteOptions{Retain: true},
		payload: "",
	}}, writes)

	t.Run("Missing Object ID", func(t *testing.T) {
		require.ErrorIs(t, Remove(t.Context(), recordingWriter(&writes), "", platform.DomainSwitch, "", ""), ErrMissingObjectID)
	})
}
