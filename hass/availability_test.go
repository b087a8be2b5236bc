package hass

import (
	"encoding/json/v2"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nlowe/hadiscovery/discovery"
)

func TestNewAvailability(t *testing.T) {
	sut := NewAvailability(AvailabilityModeAll, "foo/status", "bar/status")

	assert.Equal(t, Availability{
		Mode:   AvailabilityModeAll,
		Topics: []AvailabilityTopic{{Topic: "foo/status"}, {Topic: "bar/status"}},
	}, sut)
	assert.False(t, sut.IsZero())
	assert.True(t, Availability{}.IsZero())
}

func TestAvailability_Fields(t *testing.T) {
	t.Run("Zero", func(t *testing.T) {
		var sut Availability

		b, err := json.Marshal(sut.Fields())
		require.NoError(t, err)
		assert.JSONEq(t, `{}`, string(b))
	})

	t.Run("Flattened Into Parent", func(t *testing.T) {
		name := "foo"
		sut := NewAvailability(AvailabilityModeLatest, "foo/status")

		fields := append(discovery.Fields{discovery.Required(discovery.FieldName, &name)}, sut.Fields()...)

		b, err := json.Marshal(fields)
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"foo","avty":[{"t":"foo/status"}],"avty_mode":"latest"}`, string(b))
	})

	t.Run("Single Topic", func(t *testing.T) {
		sut := Availability{Topic: "foo/status", PayloadAvailable: "up", PayloadNotAvailable: "down"}

		b, err := json.Marshal(sut.Fields())
		require.NoError(t, err)
		assert.JSONEq(t, `{"avty_t":"foo/status","pl_avail":"up","pl_not_avail":"down"}`, string(b))
	})

	t.Run("Unmarshal Full Names", func(t *testing.T) {
		var sut Availability
		fields := sut.Fields()

		require.NoError(t, json.Unmarshal([]byte(`{
			"availability": [{"topic": "foo/status", "payload_available": "up", "value_template": "{{ value }}"}],
			"availability_mode": "any"
		}`), &fields))

		assert.Equal(t, Availability{
			Mode: AvailabilityModeAny,
			Topics: []AvailabilityTopic{
				{Topic: "foo/status", PayloadAvailable: "up", ValueTemplate: "{{ value }}"},
			},
		}, sut)
	})
}

func TestAvailabilityTopic_MarshalJSONTo(t *testing.T) {
	b, err := json.Marshal(AvailabilityTopic{Topic: "foo/status", PayloadNotAvailable: Unavailable})
	require.NoError(t, err)
	assert.JSONEq(t, `{"t":"foo/status","pl_not_avail":"offline"}`, string(b))
}

func TestAvailability_LogValue(t *testing.T) {
	sut := Availability{
		Mode:   AvailabilityModeAny,
		Topic:  "foo/status",
		Topics: []AvailabilityTopic{{Topic: "bar/status"}},
	}

	v := sut.LogValue()
	require.Equal(t, slog.KindGroup, v.Kind())

	attrs := v.Group()
	require.Len(t, attrs, 2)
	assert.Equal(t, "any", attrs[0].Value.String())
	assert.Equal(t, []string{"foo/status", "bar/status"}, attrs[1].Value.Any())
}
