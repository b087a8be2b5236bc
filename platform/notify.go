package platform

import (
	"encoding/json/jsontext"
	"net/url"

	"github.com/nlowe/hadiscovery/discovery"
	"github.com/nlowe/hadiscovery/hass"
	"github.com/nlowe/hadiscovery/mqtt"
)

// Notify is the notify.mqtt integration. Notifications sent to the entity are published to CommandTopic.
//
// See https://www.home-assistant.io/integrations/notify.mqtt/
type Notify struct {
	// Defines a template to generate the payload to send to CommandTopic.
	CommandTemplate *string
	// The MQTT topic to publish send message commands at. Required.
	CommandTopic string

	// Replaces a leading or trailing ~ in any topic field of this entity.
	TopicPrefix *string
	// Information about the software that announced this entity. Always sent, even when empty.
	Origin hass.Origin
	// Information about the device this entity is a part of. Always sent, even when empty.
	Device hass.Device
	// Availability configuration. These keys are written at the top level of the payload.
	Availability hass.Availability
	// The category of the entity.
	EntityCategory *hass.EntityCategory
	// Flag which defines if the entity should be enabled when first added. Defaults to true.
	EnabledByDefault *bool
	// The encoding of the payloads received and published messages. Set to "" to disable decoding of incoming payload.
	Encoding *string
	// Picture URL for the entity.
	EntityPicture *url.URL
	// Icon for the entity, e.g. "mdi:thermometer".
	Icon *string
	// Defines a template to extract the JSON dictionary from messages received on the JSONAttributesTopic.
	JSONAttributesTemplate *string
	// The MQTT topic subscribed to receive a JSON dictionary payload and then set as entity attributes.
	JSONAttributesTopic *string
	// The name of the entity. Can be set to nil if only the device name is relevant.
	Name *string
	// Used instead of Name for automatic generation of the entity ID.
	ObjectID *string
	// Use DefaultEntityID instead of Name for automatic generation of the entity ID, e.g. "sensor.outside". ObjectID is
	// deprecated in favor of this field.
	DefaultEntityID *string
	// An ID that uniquely identifies this entity. If two entities have the same unique ID, Home Assistant will raise an
	// exception.
	UniqueID *string
	// The maximum QoS level to be used when receiving and publishing messages.
	QoS *mqtt.QualityOfService
	// If the published message should have the retain flag on or not.
	Retain *bool
	// Must be the domain literal for this entity. Pre-filled by the constructor.
	Platform string
}

// NewNotify returns a Notify with every optional field unset and Platform set to the DomainNotify literal.
func NewNotify() Notify {
	return Notify{Platform: string(DomainNotify)}
}

func (n Notify) Domain() Domain {
	return DomainNotify
}

func (Notify) entity() {}

func (n Notify) WithCommandTemplate(commandTemplate string) Notify {
	n.CommandTemplate = &commandTemplate
	return n
}

func (n Notify) WithCommandTopic(commandTopic string) Notify {
	n.CommandTopic = commandTopic
	return n
}

func (n Notify) WithTopicPrefix(topicPrefix string) Notify {
	n.TopicPrefix = &topicPrefix
	return n
}

func (n Notify) WithOrigin(origin hass.Origin) Notify {
	n.Origin = origin
	return n
}

func (n Notify) WithDevice(device hass.Device) Notify {
	n.Device = device
	return n
}

func (n Notify) WithAvailability(availability hass.Availability) Notify {
	n.Availability = availability
	return n
}

func (n Notify) WithEntityCategory(entityCategory hass.EntityCategory) Notify {
	n.EntityCategory = &entityCategory
	return n
}

func (n Notify) WithEnabledByDefault(enabledByDefault bool) Notify {
	n.EnabledByDefault = &enabledByDefault
	return n
}

func (n Notify) WithEncoding(encoding string) Notify {
	n.Encoding = &encoding
	return n
}

func (n Notify) WithEntityPicture(entityPicture *url.URL) Notify {
	n.EntityPicture = entityPicture
	return n
}

func (n Notify) WithIcon(icon string) Notify {
	n.Icon = &icon
	return n
}

func (n Notify) WithJSONAttributesTemplate(jsonAttributesTemplate string) Notify {
	n.JSONAttributesTemplate = &jsonAttributesTemplate
	return n
}

func (n Notify) WithJSONAttributesTopic(jsonAttributesTopic string) Notify {
	n.JSONAttributesTopic = &jsonAttributesTopic
	return n
}

func (n Notify) WithName(name string) Notify {
	n.Name = &name
	return n
}

func (n Notify) WithObjectID(objectID string) Notify {
	n.ObjectID = &objectID
	return n
}

func (n Notify) WithDefaultEntityID(defaultEntityID string) Notify {
	n.DefaultEntityID = &defaultEntityID
	return n
}

func (n Notify) WithUniqueID(uniqueID string) Notify {
	n.UniqueID = &uniqueID
	return n
}

func (n Notify) WithQoS(qos mqtt.QualityOfService) Notify {
	n.QoS = &qos
	return n
}

func (n Notify) WithRetain(retain bool) Notify {
	n.Retain = &retain
	return n
}

func (n Notify) WithPlatform(platform string) Notify {
	n.Platform = platform
	return n
}

func (n *Notify) fields() discovery.Fields {
	return append(discovery.Fields{
		discovery.Optional(discovery.FieldCommandTemplate, &n.CommandTemplate),
		discovery.Required(discovery.FieldCommandTopic, &n.CommandTopic),
		discovery.Optional(discovery.FieldTopicPrefix, &n.TopicPrefix),
		discovery.Required(discovery.FieldOrigin, &n.Origin),
		discovery.Required(discovery.FieldDevice, &n.Device),
		discovery.Optional(discovery.FieldEntityCategory, &n.EntityCategory),
		discovery.Optional(discovery.FieldEnabledByDefault, &n.EnabledByDefault),
		discovery.Optional(discovery.FieldEncoding, &n.Encoding),
		discovery.Optional(discovery.FieldEntityPicture, &n.EntityPicture),
		discovery.Optional(discovery.FieldIcon, &n.Icon),
		discovery.Optional(discovery.FieldJSONAttributesTemplate, &n.JSONAttributesTemplate),
		discovery.Optional(discovery.FieldJSONAttributesTopic, &n.JSONAttributesTopic),
		discovery.Optional(discovery.FieldName, &n.Name),
		discovery.Optional(discovery.FieldObjectID, &n.ObjectID),
		discovery.Optional(discovery.FieldDefaultEntityID, &n.DefaultEntityID),
		discovery.Optional(discovery.FieldUniqueID, &n.UniqueID),
		discovery.Optional(discovery.FieldQoS, &n.QoS),
		discovery.Optional(discovery.FieldRetain, &n.Retain),
		discovery.Required(discovery.FieldPlatform, &n.Platform),
	}, n.Availability.Fields()...)
}

func (n Notify) MarshalJSONTo(e *jsontext.Encoder) error {
	return n.fields().MarshalJSONTo(e)
}

func (n *Notify) UnmarshalJSONFrom(d *jsontext.Decoder) error {
	return n.fields().UnmarshalJSONFrom(d)
}
