package platform

import (
	"encoding/json/jsontext"
	"net/url"

	"github.com/nlowe/hadiscovery/discovery"
	"github.com/nlowe/hadiscovery/hass"
	"github.com/nlowe/hadiscovery/mqtt"
)

// Camera is the camera.mqtt integration. Images are read from Topic as raw or base64 encoded payloads.
//
// See https://www.home-assistant.io/integrations/camera.mqtt/
type Camera struct {
	// The encoding of the image payloads received. Set to "b64" to enable base64 decoding.
	ImageEncoding *string
	// The MQTT topic to subscribe to. Required.
	Topic string

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
	// Must be the domain literal for this entity. Pre-filled by the constructor.
	Platform string
}

// NewCamera returns a Camera with every optional field unset and Platform set to the DomainCamera literal.
func NewCamera() Camera {
	return Camera{Platform: string(DomainCamera)}
}

func (c Camera) Domain() Domain {
	return DomainCamera
}

func (Camera) entity() {}

func (c Camera) WithImageEncoding(imageEncoding string) Camera {
	c.ImageEncoding = &imageEncoding
	return c
}

func (c Camera) WithTopic(topic string) Camera {
	c.Topic = topic
	return c
}

func (c Camera) WithTopicPrefix(topicPrefix string) Camera {
	c.TopicPrefix = &topicPrefix
	return c
}

func (c Camera) WithOrigin(origin hass.Origin) Camera {
	c.Origin = origin
	return c
}

func (c Camera) WithDevice(device hass.Device) Camera {
	c.Device = device
	return c
}

func (c Camera) WithAvailability(availability hass.Availability) Camera {
	c.Availability = availability
	return c
}

func (c Camera) WithEntityCategory(entityCategory hass.EntityCategory) Camera {
	c.EntityCategory = &entityCategory
	return c
}

func (c Camera) WithEnabledByDefault(enabledByDefault bool) Camera {
	c.EnabledByDefault = &enabledByDefault
	return c
}

func (c Camera) WithEncoding(encoding string) Camera {
	c.Encoding = &encoding
	return c
}

func (c Camera) WithEntityPicture(entityPicture *url.URL) Camera {
	c.EntityPicture = entityPicture
	return c
}

func (c Camera) WithIcon(icon string) Camera {
	c.Icon = &icon
	return c
}

func (c Camera) WithJSONAttributesTemplate(jsonAttributesTemplate string) Camera {
	c.JSONAttributesTemplate = &jsonAttributesTemplate
	return c
}

func (c Camera) WithJSONAttributesTopic(jsonAttributesTopic string) Camera {
	c.JSONAttributesTopic = &jsonAttributesTopic
	return c
}

func (c Camera) WithName(name string) Camera {
	c.Name = &name
	return c
}

func (c Camera) WithObjectID(objectID string) Camera {
	c.ObjectID = &objectID
	return c
}

func (c Camera) WithDefaultEntityID(defaultEntityID string) Camera {
	c.DefaultEntityID = &defaultEntityID
	return c
}

func (c Camera) WithUniqueID(uniqueID string) Camera {
	c.UniqueID = &uniqueID
	return c
}

func (c Camera) WithQoS(qos mqtt.QualityOfService) Camera {
	c.QoS = &qos
	return c
}

func (c Camera) WithPlatform(platform string) Camera {
	c.Platform = platform
	return c
}

func (c *Camera) fields() discovery.Fields {
	return append(discovery.Fields{
		discovery.Optional(discovery.FieldImageEncoding, &c.ImageEncoding),
		discovery.Required(discovery.FieldTopic, &c.Topic),
		discovery.Optional(discovery.FieldTopicPrefix, &c.TopicPrefix),
		discovery.Required(discovery.FieldOrigin, &c.Origin),
		discovery.Required(discovery.FieldDevice, &c.Device),
		discovery.Optional(discovery.FieldEntityCategory, &c.EntityCategory),
		discovery.Optional(discovery.FieldEnabledByDefault, &c.EnabledByDefault),
		discovery.Optional(discovery.FieldEncoding, &c.Encoding),
		discovery.Optional(discovery.FieldEntityPicture, &c.EntityPicture),
		discovery.Optional(discovery.FieldIcon, &c.Icon),
		discovery.Optional(discovery.FieldJSONAttributesTemplate, &c.JSONAttributesTemplate),
		discovery.Optional(discovery.FieldJSONAttributesTopic, &c.JSONAttributesTopic),
		discovery.Optional(discovery.FieldName, &c.Name),
		discovery.Optional(discovery.FieldObjectID, &c.ObjectID),
		discovery.Optional(discovery.FieldDefaultEntityID, &c.DefaultEntityID),
		discovery.Optional(discovery.FieldUniqueID, &c.UniqueID),
		discovery.Optional(discovery.FieldQoS, &c.QoS),
		discovery.Required(discovery.FieldPlatform, &c.Platform),
	}, c.Availability.Fields()...)
}

func (c Camera) MarshalJSONTo(e *jsontext.Encoder) error {
	return c.fields().MarshalJSONTo(e)
}

func (c *Camera) UnmarshalJSONFrom(d *jsontext.Decoder) error {
	return c.fields().UnmarshalJSONFrom(d)
}
