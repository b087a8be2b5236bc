package platform

import (
	"encoding/json/jsontext"
	"net/url"

	"github.com/nlowe/hadiscovery/discovery"
	"github.com/nlowe/hadiscovery/hass"
	"github.com/nlowe/hadiscovery/mqtt"
)

// Scene is the scene.mqtt integration. Activating the scene publishes PayloadOn to CommandTopic.
//
// See https://www.home-assistant.io/integrations/scene.mqtt/
type Scene struct {
	// The MQTT topic to publish PayloadOn to activate the scene.
	CommandTopic *string
	// The payload that will be sent to CommandTopic when activating the MQTT scene. Defaults to "ON".
	PayloadOn *string

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

// NewScene returns a Scene with every optional field unset and Platform set to the DomainScene literal.
func NewScene() Scene {
	return Scene{Platform: string(DomainScene)}
}

func (s Scene) Domain() Domain {
	return DomainScene
}

func (Scene) entity() {}

func (s Scene) WithCommandTopic(commandTopic string) Scene {
	s.CommandTopic = &commandTopic
	return s
}

func (s Scene) WithPayloadOn(payloadOn string) Scene {
	s.PayloadOn = &payloadOn
	return s
}

func (s Scene) WithTopicPrefix(topicPrefix string) Scene {
	s.TopicPrefix = &topicPrefix
	return s
}

func (s Scene) WithOrigin(origin hass.Origin) Scene {
	s.Origin = origin
	return s
}

func (s Scene) WithDevice(device hass.Device) Scene {
	s.Device = device
	return s
}

func (s Scene) WithAvailability(availability hass.Availability) Scene {
	s.Availability = availability
	return s
}

func (s Scene) WithEntityCategory(entityCategory hass.EntityCategory) Scene {
	s.EntityCategory = &entityCategory
	return s
}

func (s Scene) WithEnabledByDefault(enabledByDefault bool) Scene {
	s.EnabledByDefault = &enabledByDefault
	return s
}

func (s Scene) WithEncoding(encoding string) Scene {
	s.Encoding = &encoding
	return s
}

func (s Scene) WithEntityPicture(entityPicture *url.URL) Scene {
	s.EntityPicture = entityPicture
	return s
}

func (s Scene) WithIcon(icon string) Scene {
	s.Icon = &icon
	return s
}

func (s Scene) WithJSONAttributesTemplate(jsonAttributesTemplate string) Scene {
	s.JSONAttributesTemplate = &jsonAttributesTemplate
	return s
}

func (s Scene) WithJSONAttributesTopic(jsonAttributesTopic string) Scene {
	s.JSONAttributesTopic = &jsonAttributesTopic
	return s
}

func (s Scene) WithName(name string) Scene {
	s.Name = &name
	return s
}

func (s Scene) WithObjectID(objectID string) Scene {
	s.ObjectID = &objectID
	return s
}

func (s Scene) WithDefaultEntityID(defaultEntityID string) Scene {
	s.DefaultEntityID = &defaultEntityID
	return s
}

func (s Scene) WithUniqueID(uniqueID string) Scene {
	s.UniqueID = &uniqueID
	return s
}

func (s Scene) WithQoS(qos mqtt.QualityOfService) Scene {
	s.QoS = &qos
	return s
}

func (s Scene) WithRetain(retain bool) Scene {
	s.Retain = &retain
	return s
}

func (s Scene) WithPlatform(platform string) Scene {
	s.Platform = platform
	return s
}

func (s *Scene) fields() discovery.Fields {
	return append(discovery.Fields{
		discovery.Optional(discovery.FieldCommandTopic, &s.CommandTopic),
		discovery.Optional(discovery.FieldPayloadOn, &s.PayloadOn),
		discovery.Optional(discovery.FieldTopicPrefix, &s.TopicPrefix),
		discovery.Required(discovery.FieldOrigin, &s.Origin),
		discovery.Required(discovery.FieldDevice, &s.Device),
		discovery.Optional(discovery.FieldEntityCategory, &s.EntityCategory),
		discovery.Optional(discovery.FieldEnabledByDefault, &s.EnabledByDefault),
		discovery.Optional(discovery.FieldEncoding, &s.Encoding),
		discovery.Optional(discovery.FieldEntityPicture, &s.EntityPicture),
		discovery.Optional(discovery.FieldIcon, &s.Icon),
		discovery.Optional(discovery.FieldJSONAttributesTemplate, &s.JSONAttributesTemplate),
		discovery.Optional(discovery.FieldJSONAttributesTopic, &s.JSONAttributesTopic),
		discovery.Optional(discovery.FieldName, &s.Name),
		discovery.Optional(discovery.FieldObjectID, &s.ObjectID),
		discovery.Optional(discovery.FieldDefaultEntityID, &s.DefaultEntityID),
		discovery.Optional(discovery.FieldUniqueID, &s.UniqueID),
		discovery.Optional(discovery.FieldQoS, &s.QoS),
		discovery.Optional(discovery.FieldRetain, &s.Retain),
		discovery.Required(discovery.FieldPlatform, &s.Platform),
	}, s.Availability.Fields()...)
}

func (s Scene) MarshalJSONTo(e *jsontext.Encoder) error {
	return s.fields().MarshalJSONTo(e)
}

func (s *Scene) UnmarshalJSONFrom(d *jsontext.Decoder) error {
	return s.fields().UnmarshalJSONFrom(d)
}
