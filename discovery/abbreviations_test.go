package discovery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAbbreviate(t *testing.T) {
	for _, tt := range []struct {
		in       string
		expected string
	}{
		{in: "command_topic", expected: FieldCommandTopic},
		{in: "cmd_t", expected: FieldCommandTopic},
		{in: "availability", expected: FieldAvailability},
		{in: "device_class", expected: FieldDeviceClass},
		{in: "expire_after", expected: FieldExpireAfter},
		{in: "name", expected: "name"},
		{in: "qos", expected: FieldQoS},
		{in: "start_mowing", expected: "start_mowing"},
		{in: "nope", expected: "nope"},
	} {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expected, Abbreviate(tt.in))
		})
	}
}

func TestExpand(t *testing.T) {
	assert.Equal(t, "command_topic", Expand(FieldCommandTopic))
	assert.Equal(t, "unit_of_measurement", Expand(FieldUnitOfMeasurement))
	assert.Equal(t, "name", Expand(FieldName))
}

func TestAbbreviationsAreUnique(t *testing.T) {
	seen := make(map[string]string, len(abbreviations))
	for long, abbr := range abbreviations {
		if other, ok := seen[abbr]; ok {
			t.Errorf("%s and %s both abbreviate to %s", long, other, abbr)
		}

		seen[abbr] = long
	}
}
