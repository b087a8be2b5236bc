package platform

import (
	"encoding/json/jsontext"

	"github.com/nlowe/hadiscovery/discovery"
	"github.com/nlowe/hadiscovery/hass"
	"github.com/nlowe/hadiscovery/mqtt"
)

// Tag is the tag.mqtt integration for tag scanners. Like DeviceTrigger, it is not an entity and only carries the Device
// it belongs to.
//
// See https://www.home-assistant.io/integrations/tag.mqtt/
type Tag struct {
	// The MQTT topic subscribed to receive tag scanned events. Required.
	Topic string
	// Defines a template that returns a tag ID.
	ValueTemplate *string

	// Information about the software that announced this entity. Always sent, even when empty.
	Origin hass.Origin
	// Information about the device this entity is a part of. Always sent, even when empty.
	Device hass.Device
	// The maximum QoS level to be used when receiving and publishing messages.
	QoS *mqtt.QualityOfService
	// Must be the domain literal for this entity. Pre-filled by the constructor.
	Platform string
}

// NewTag returns a Tag with every optional field unset and Platform set to the DomainTag literal.
func NewTag() Tag {
	return Tag{Platform: string(DomainTag)}
}

func (t Tag) Domain() Domain {
	return DomainTag
}

func (Tag) entity() {}

func (t Tag) WithTopic(topic string) Tag {
	t.Topic = topic
	return t
}

func (t Tag) WithValueTemplate(valueTemplate string) Tag {
	t.ValueTemplate = &valueTemplate
	return t
}

func (t Tag) WithOrigin(origin hass.Origin) Tag {
	t.Origin = origin
	return t
}

func (t Tag) WithDevice(device hass.Device) Tag {
	t.Device = device
	return t
}

func (t Tag) WithQoS(qos mqtt.QualityOfService) Tag {
	t.QoS = &qos
	return t
}

func (t Tag) WithPlatform(platform string) Tag {
	t.Platform = platform
	return t
}

func (t *Tag) fields() discovery.Fields {
	return discovery.Fields{
		discovery.Required(discovery.FieldTopic, &t.Topic),
		discovery.Optional(discovery.FieldValueTemplate, &t.ValueTemplate),
		discovery.Required(discovery.FieldOrigin, &t.Origin),
		discovery.Required(discovery.FieldDevice, &t.Device),
		discovery.Optional(discovery.FieldQoS, &t.QoS),
		discovery.Required(discovery.FieldPlatform, &t.Platform),
	}
}

func (t Tag) MarshalJSONTo(e *jsontext.Encoder) error {
	return t.fields().MarshalJSONTo(e)
}

func (t *Tag) UnmarshalJSONFrom(d *jsontext.Decoder) error {
	return t.fields().UnmarshalJSONFrom(d)
}
