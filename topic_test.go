package hadiscovery

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nlowe/hadiscovery/platform"
)

func TestTopic(t *testing.T) {
	for _, tt := range []struct {
		name     string
		prefix   string
		domain   platform.Domain
		nodeID   string
		objectID string
		expected string
	}{
		{name: "Default Prefix", domain: platform.DomainSensor, objectID: "temperature", expected: "homeassistant/sensor/temperature/config"},
		{name: "Node ID", prefix: "homeassistant", domain: platform.DomainSensor, nodeID: "livingroom", objectID: "temperature", expected: "homeassistant/sensor/livingroom/temperature/config"},
		{name: "Custom Prefix", prefix: "custom/", domain: platform.DomainSwitch, objectID: "plug", expected: "custom/switch/plug/config"},
		{name: "Device Trigger", domain: platform.DomainDeviceTrigger, nodeID: "remote", objectID: "button_1", expected: "homeassistant/device_automation/remote/button_1/config"},
		{name: "Sanitized", domain: platform.DomainBinarySensor, nodeID: "02:5b:26", objectID: "front door", expected: "homeassistant/binary_sensor/02__5b__26/front__door/config"},
		{name: "Characters Outside Allowed Set", domain: platform.DomainSensor, nodeID: "node,1*", objectID: "temp$é", expected: "homeassistant/sensor/node__1__/temp____/config"},
		{name: "No Topic Levels From IDs", domain: platform.DomainLight, nodeID: "a/b", objectID: "c+d", expected: "homeassistant/light/a__b/c__d/config"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Topic(tt.prefix, tt.domain, tt.nodeID, tt.objectID))
		})
	}
}

func TestDeviceTopic(t *testing.T) {
	assert.Equal(t, "homeassistant/device/ms-01/config", DeviceTopic("", "ms-01"))
	assert.Equal(t, "custom/device/living__room/config", DeviceTopic("custom", "living room"))
}
