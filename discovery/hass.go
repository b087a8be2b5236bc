package discovery

import (
	"cmp"

	"github.com/nlowe/hadiscovery/mqtt"
)

const (
	// DefaultPrefix is the MQTT Topic Prefix that Home Assistant looks for discovery payloads under
	DefaultPrefix = "homeassistant"
	// StatusTopic is the MQTT Topic that Home Assistant publishes its own availability to, relative to the prefix.
	StatusTopic = "status"
	// ConfigTopic is the last level of every discovery topic.
	ConfigTopic = "config"
	// DeviceComponent is the <component> level used for device-based discovery payloads.
	DeviceComponent = "device"
)

// HomeAssistantStatusTopic returns the topic Home Assistant publishes birth and last will messages to for the provided
// discovery prefix. Republish discovery payloads when "online" is received on it. An empty prefix uses
// DefaultPrefix.
//
// See https://www.home-assistant.io/integrations/mqtt/#birth-and-last-will-messages.
func HomeAssistantStatusTopic(discoveryPrefix string) string {
	return mqtt.JoinTopic(cmp.Or(discoveryPrefix, DefaultPrefix), StatusTopic)
}
