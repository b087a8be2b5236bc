package mqtt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQualityOfService(t *testing.T) {
	for _, tt := range []struct {
		qos   QualityOfService
		valid bool
		str   string
	}{
		{qos: QOSAtMostOnce, valid: true, str: "at most once (0)"},
		{qos: QOSAtLeastOnce, valid: true, str: "at least once (1)"},
		{qos: QOSExactlyOnce, valid: true, str: "exactly once (2)"},
		{qos: QualityOfService(3), valid: false, str: "invalid (3)"},
	} {
		t.Run(tt.str, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.qos.Valid())
			assert.Equal(t, tt.str, tt.qos.String())
			assert.Equal(t, tt.str, tt.qos.LogValue().String())
		})
	}

	assert.Equal(t, QOSAtMostOnce, QOSDefault)
}
