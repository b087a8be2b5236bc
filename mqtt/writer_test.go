package mqtt

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterFunc(t *testing.T) {
	var gotTopic string
	var gotOptions WriteOptions
	var gotValue []byte

	sut := WriterFunc(func(_ context.Context, topic string, options WriteOptions, value []byte) error {
		gotTopic, gotOptions, gotValue = topic, options, value
		return nil
	})

	require.NoError(t, sut.WriteTopic(t.Context(), "foo/bar", WriteOptions{QoS: QOSExactlyOnce, Retain: true}, []byte("baz")))
	assert.Equal(t, "foo/bar", gotTopic)
	assert.Equal(t, WriteOptions{QoS: QOSExactlyOnce, Retain: true}, gotOptions)
	assert.Equal(t, []byte("baz"), gotValue)
}

func TestError(t *testing.T) {
	expected := errors.New("foo")

	assert.NoError(t, Error(42, nil))
	assert.ErrorIs(t, Error("bar", expected), expected)
}
