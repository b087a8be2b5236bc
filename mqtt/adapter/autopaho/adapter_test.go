package autopaho

import (
	"context"
	"errors"
	"testing"

	"github.com/eclipse/paho.golang/paho"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nlowe/hadiscovery/mqtt"
)

type fakePublisher struct {
	published []*paho.Publish
	err       error
}

func (f *fakePublisher) Publish(_ context.Context, p *paho.Publish) (*paho.PublishResponse, error) {
	if f.err != nil {
		return nil, f.err
	}

	f.published = append(f.published, p)
	return &paho.PublishResponse{}, nil
}

func TestWriter(t *testing.T) {
	t.Run("Publishes", func(t *testing.T) {
		p := &fakePublisher{}
		sut := NewWriter(p)

		require.NoError(t, sut.WriteTopic(
			t.Context(),
			"homeassistant/sensor/foo/config",
			mqtt.WriteOptions{QoS: mqtt.QOSAtLeastOnce, Retain: true},
			[]byte(`{"p":"sensor"}`),
		))

		require.Len(t, p.published, 1)
		assert.Equal(t, &paho.Publish{
			QoS:     1,
			Retain:  true,
			Topic:   "homeassistant/sensor/foo/config",
			Payload: []byte(`{"p":"sensor"}`),
		}, p.published[0])
	})

	t.Run("Publish Error", func(t *testing.T) {
		expected := errors.New("connection down")
		sut := NewWriter(&fakePublisher{err: expected})

		err := sut.WriteTopic(t.Context(), "foo/bar", mqtt.WriteOptions{}, nil)
		require.ErrorIs(t, err, expected)
	})

	for _, tt := range []struct {
		name     string
		topic    string
		options  mqtt.WriteOptions
		expected error
	}{
		{name: "Empty Topic", topic: "", expected: ErrInvalidTopic},
		{name: "Single Level Wildcard", topic: "homeassistant/+/foo/config", expected: ErrInvalidTopic},
		{name: "Multi Level Wildcard", topic: "homeassistant/#", expected: ErrInvalidTopic},
		{name: "Invalid QoS", topic: "foo/bar", options: mqtt.WriteOptions{QoS: 3}, expected: ErrInvalidQoS},
	} {
		t.Run(tt.name, func(t *testing.T) {
			p := &fakePublisher{}
			sut := NewWriter(p)

			err := sut.WriteTopic(t.Context(), tt.topic, tt.options, []byte("foo"))
			require.ErrorIs(t, err, tt.expected)
			assert.Empty(t, p.published)
		})
	}
}
