package hadiscovery

import (
	"cmp"

	"github.com/nlowe/hadiscovery/discovery"
	"github.com/nlowe/hadiscovery/mqtt"
	"github.com/nlowe/hadiscovery/platform"
)

// Topic returns the discovery topic for a single entity:
//
//	<prefix>/<domain>/[<node_id>/]<object_id>/config
//
// An empty prefix uses discovery.DefaultPrefix and an empty nodeID is left out. nodeID and objectID are sanitized with
// discovery.IDSanitizer since Home Assistant only accepts [a-zA-Z0-9_-] in them.
func Topic(prefix string, d platform.Domain, nodeID, objectID string) string {
	return mqtt.JoinTopic(
		cmp.Or(prefix, discovery.DefaultPrefix),
		d.String(),
		discovery.IDSanitizer.Replace(nodeID),
		discovery.IDSanitizer.Replace(objectID),
		discovery.ConfigTopic,
	)
}

// DeviceTopic returns the topic for a device-based discovery payload: <prefix>/device/<device_id>/config.
func DeviceTopic(prefix, deviceID string) string {
	return mqtt.JoinTopic(
		cmp.Or(prefix, discovery.DefaultPrefix),
		discovery.DeviceComponent,
		discovery.IDSanitizer.Replace(deviceID),
		discovery.ConfigTopic,
	)
}
