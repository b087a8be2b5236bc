package hass

import (
	"encoding/json/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeviceClassNone(t *testing.T) {
	t.Run("Marshal", func(t *testing.T) {
		b, err := json.Marshal(map[string]SensorDeviceClass{"none": SensorDeviceClassNone, "temp": SensorDeviceClassTemperature})
		require.NoError(t, err)
		assert.JSONEq(t, `{"none":null,"temp":"temperature"}`, string(b))
	})

	t.Run("Unmarshal", func(t *testing.T) {
		sut := BinarySensorDeviceClassMotion
		require.NoError(t, json.Unmarshal([]byte(`null`), &sut))
		assert.Equal(t, BinarySensorDeviceClassNone, sut)

		require.NoError(t, json.Unmarshal([]byte(`"door"`), &sut))
		assert.Equal(t, BinarySensorDeviceClassDoor, sut)
	})
}
