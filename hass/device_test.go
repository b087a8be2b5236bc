package hass

import (
	"encoding/json/v2"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDevice_ID(t *testing.T) {
	for _, tt := range []struct {
		name     string
		sut      Device
		expected string
	}{
		{name: "Empty", sut: Device{}, expected: ""},
		{name: "Discovery ID Wins", sut: Device{DiscoveryID: "custom", Name: "Foo"}, expected: "custom"},
		{name: "Identifiers", sut: Device{Identifiers: []string{"a", "b"}}, expected: "a__b"},
		{
			name:     "Everything",
			sut:      Device{Identifiers: []string{"id"}, Name: "Name", Serial: "123", Manufacturer: "ACME", Model: "M", ModelID: "M1"},
			expected: "id__Name__123__ACME__M__M1",
		},
		{name: "Skips Empty", sut: Device{Name: "Name", Model: "M"}, expected: "Name__M"},
		{name: "Sanitized", sut: Device{Name: "Living Room", Serial: "02:5b:26"}, expected: "Living__Room__02__5b__26"},
		{
			name:     "Connections Only",
			sut:      Device{Connections: []DeviceConnection{{Kind: "mac", Value: "02:5b:26:a8:dc:12"}}},
			expected: "mac__02__5b__26__a8__dc__12",
		},
		{
			name: "Multiple Connections",
			sut: Device{Connections: []DeviceConnection{
				{Kind: "mac", Value: "02:5b:26:a8:dc:12"},
				{Kind: "zigbee", Value: "0x00124b0014d4e6c1"},
			}},
			expected: "mac__02__5b__26__a8__dc__12__zigbee__0x00124b0014d4e6c1",
		},
		{
			name:     "Connections Ignored When Identified",
			sut:      Device{Identifiers: []string{"plug-01"}, Connections: []DeviceConnection{{Kind: "mac", Value: "02:5b:26"}}},
			expected: "plug-01",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.sut.ID())
		})
	}
}

func TestDevice_Valid(t *testing.T) {
	assert.ErrorIs(t, (&Device{Name: "foo"}).Valid(), ErrInvalidDevice)
	assert.NoError(t, (&Device{Identifiers: []string{"foo"}}).Valid())
	assert.NoError(t, (&Device{Connections: []DeviceConnection{{Kind: "mac", Value: "02:5b:26:a8:dc:12"}}}).Valid())
}

func TestDevice_MarshalJSONTo(t *testing.T) {
	t.Run("Zero", func(t *testing.T) {
		b, err := json.Marshal(Device{DiscoveryID: "not-sent"})
		require.NoError(t, err)
		assert.JSONEq(t, `{}`, string(b))
	})

	t.Run("Everything", func(t *testing.T) {
		cu, err := url.Parse("http://192.168.1.20/config")
		require.NoError(t, err)

		b, err := json.Marshal(Device{
			Name:             "Plug",
			Serial:           "123",
			Manufacturer:     "ACME",
			Model:            "P1",
			ModelID:          "p1-eu",
			ConfigurationURL: cu,
			Connections:      []DeviceConnection{{Kind: "mac", Value: "02:5b:26:a8:dc:12"}},
			HardwareVersion:  "rev2",
			FirmwareVersion:  "1.0.0",
			Identifiers:      []string{"plug-01"},
			SuggestedArea:    "Kitchen",
			ViaDevice:        "bridge-01",
		})
		require.NoError(t, err)

		assert.JSONEq(t, `{
			"name": "Plug",
			"sn": "123",
			"mf": "ACME",
			"mdl": "P1",
			"mdl_id": "p1-eu",
			"cu": "http://192.168.1.20/config",
			"cns": [["mac", "02:5b:26:a8:dc:12"]],
			"hw": "rev2",
			"sw": "1.0.0",
			"ids": ["plug-01"],
			"sa": "Kitchen",
			"via_device": "bridge-01"
		}`, string(b))
	})
}

func TestDevice_UnmarshalJSONFrom(t *testing.T) {
	t.Run("Full Names", func(t *testing.T) {
		var sut Device
		require.NoError(t, json.Unmarshal([]byte(`{
			"name": "Plug",
			"manufacturer": "ACME",
			"model_id": "p1-eu",
			"connections": [["mac", "02:5b:26:a8:dc:12"]],
			"identifiers": ["plug-01"],
			"sw_version": "1.0.0",
			"suggested_area": "Kitchen"
		}`), &sut))

		assert.Equal(t, Device{
			Name:            "Plug",
			Manufacturer:    "ACME",
			ModelID:         "p1-eu",
			Connections:     []DeviceConnection{{Kind: "mac", Value: "02:5b:26:a8:dc:12"}},
			Identifiers:     []string{"plug-01"},
			FirmwareVersion: "1.0.0",
			SuggestedArea:   "Kitchen",
		}, sut)
	})

	t.Run("Invalid Connection", func(t *testing.T) {
		var sut Device
		err := json.Unmarshal([]byte(`{"cns":[["mac"]]}`), &sut)
		require.ErrorIs(t, err, ErrInvalidConnection)
	})
}

func TestDeviceConnection(t *testing.T) {
	sut := DeviceConnection{Kind: "mac", Value: "02:5b:26:a8:dc:12"}

	assert.Equal(t, `["mac","02:5b:26:a8:dc:12"]`, sut.String())

	b, err := json.Marshal(sut)
	require.NoError(t, err)
	assert.Equal(t, sut.String(), string(b))
}
