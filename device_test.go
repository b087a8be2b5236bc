package hadiscovery

import (
	"encoding/json/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nlowe/hadiscovery/hass"
	"github.com/nlowe/hadiscovery/mqtt"
	"github.com/nlowe/hadiscovery/platform"
)

func TestConfigureDevice(t *testing.T) {
	device := hass.Device{
		Name:         "Multisensor",
		Manufacturer: "ACME",
		Identifiers:  []string{"ms-01"},
	}

	t.Run("Invalid Device", func(t *testing.T) {
		var writes []write
		err := ConfigureDevice(t.Context(), recordingWriter(&writes), "", hass.Device{Name: "foo"}, nil, nil)

		require.ErrorIs(t, err, hass.ErrInvalidDevice)
		assert.Empty(t, writes)
	})

	t.Run("Default Origin", func(t *testing.T) {
		var writes []write
		require.NoError(t, ConfigureDevice(t.Context(), recordingWriter(&writes), "", device, nil, nil))

		require.Len(t, writes, 1)
		assert.Equal(t, "homeassistant/device/ms-01__Multisensor__ACME/config", writes[0].topic)
		assert.Equal(t, mqtt.WriteOptions{Retain: true}, writes[0].options)
		assert.JSONEq(t, `{
			"dev": {"name": "Multisensor", "mf": "ACME", "ids": ["ms-01"]},
			"o": {"name": "hadiscovery", "sw": "master", "url": "https://github.com/nlowe/hadiscovery"},
			"cmps": {}
		}`, writes[0].payload)
	})

	t.Run("Components", func(t *testing.T) {
		var writes []write

		temperature := Component{Entity: platform.NewSensor().
			WithStateTopic("ms-01/temperature").
			WithUnitOfMeasurement(hass.UnitCelsius).
			WithUniqueID("ms01_temperature").
			WithDevice(device)}

		require.NoError(t, ConfigureDevice(
			t.Context(),
			recordingWriter(&writes),
			"custom",
			hass.Device{DiscoveryID: "ms01", Identifiers: []string{"ms-01"}},
			&hass.Origin{Name: "test"},
			map[string]json.MarshalerTo{
				"temperature": temperature,
				"motion":      RemoveComponent{Platform: platform.DomainBinarySensor},
				"humidity":    Component{Entity: platform.NewSensor().WithStateTopic("ms-01/humidity")}.ForRemoval(),
			},
		))

		require.Len(t, writes, 1)
		assert.Equal(t, "custom/device/ms01/config", writes[0].topic)
		assert.JSONEq(t, `{
			"dev": {"ids": ["ms-01"]},
			"o": {"name": "test"},
			"cmps": {
				"humidity": {"p": "sensor"},
				"motion": {"p": "binary_sensor"},
				"temperature": {
					"stat_t": "ms-01/temperature",
					"unit_of_meas": "°C",
					"uniq_id": "ms01_temperature",
					"p": "sensor"
				}
			}
		}`, writes[0].payload)
	})
}

func TestConfigureDevice_ConnectionsOnly(t *testing.T) {
	var writes []write
	w := recordingWriter(&writes)

	for _, mac := range []string{"02:5b:26:a8:dc:12", "02:5b:26:a8:dc:13"} {
		d := hass.Device{Connections: []hass.DeviceConnection{{Kind: "mac", Value: mac}}}
		require.NoError(t, ConfigureDevice(t.Context(), w, "", d, nil, nil))
	}

	require.Len(t, writes, 2)
	assert.Equal(t, "homeassistant/device/mac__02__5b__26__a8__dc__12/config", writes[0].topic)
	assert.Equal(t, "homeassistant/device/mac__02__5b__26__a8__dc__13/config", writes[1].topic)
	assert.NotEqual(t, writes[0].topic, writes[1].topic)
}

func TestComponent(t *testing.T) {
	sut := Component{Entity: platform.NewSwitch().
		WithCommandTopic("plug/set").
		WithAvailability(hass.Availability{Topic: "plug/status"}).
		WithOrigin(hass.DefaultOrigin)}

	b, err := json.Marshal(sut)
	require.NoError(t, err)

	assert.JSONEq(t, `{"cmd_t":"plug/set","avty_t":"plug/status","p":"switch"}`, string(b))
	assert.Equal(t, RemoveComponent{Platform: platform.DomainSwitch}, sut.ForRemoval())
}
