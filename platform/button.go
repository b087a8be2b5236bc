package platform

import (
	"encoding/json/jsontext"
	"net/url"

	"github.com/nlowe/hadiscovery/discovery"
	"github.com/nlowe/hadiscovery/hass"
	"github.com/nlowe/hadiscovery/mqtt"
)

// Button is the button.mqtt integration. Home Assistant publishes PayloadPress to CommandTopic when the button is
// pressed.
//
// See https://www.home-assistant.io/integrations/button.mqtt/
type Button struct {
	// Defines a template to generate the payload to send to CommandTopic.
	CommandTemplate *string
	// The MQTT topic to publish commands to trigger the button.
	CommandTopic *string
	// The type/class of the button to set the icon in the frontend.
	DeviceClass *hass.ButtonDeviceClass
	// The payload to send to trigger the button. Defaults to "PRESS".
	PayloadPress *string

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

// NewButton returns a Button with every optional field unset and Platform set to the DomainButton literal.
func NewButton() Button {
	return Button{Platform: string(DomainButton)}
}

func (b Button) Domain() Domain {
	return DomainButton
}

func (Button) entity() {}

func (b Button) WithCommandTemplate(commandTemplate string) Button {
	b.CommandTemplate = &commandTemplate
	return b
}

func (b Button) WithCommandTopic(commandTopic string) Button {
	b.CommandTopic = &commandTopic
	return b
}

func (b Button) WithDeviceClass(deviceClass hass.ButtonDeviceClass) Button {
	b.DeviceClass = &deviceClass
	return b
}

func (b Button) WithPayloadPress(payloadPress string) Button {
	b.PayloadPress = &payloadPress
	return b
}

func (b Button) WithTopicPrefix(topicPrefix string) Button {
	b.TopicPrefix = &topicPrefix
	return b
}

func (b Button) WithOrigin(origin hass.Origin) Button {
	b.Origin = origin
	return b
}

func (b Button) WithDevice(device hass.Device) Button {
	b.Device = device
	return b
}

func (b Button) WithAvailability(availability hass.Availability) Button {
	b.Availability = availability
	return b
}

func (b Button) WithEntityCategory(entityCategory hass.EntityCategory) Button {
	b.EntityCategory = &entityCategory
	return b
}

func (b Button) WithEnabledByDefault(enabledByDefault bool) Button {
	b.EnabledByDefault = &enabledByDefault
	return b
}

func (b Button) WithEncoding(encoding string) Button {
	b.Encoding = &encoding
	return b
}

func (b Button) WithEntityPicture(entityPicture *url.URL) Button {
	b.EntityPicture = entityPicture
	return b
}

func (b Button) WithIcon(icon string) Button {
	b.Icon = &icon
	return b
}

func (b Button) WithJSONAttributesTemplate(jsonAttributesTemplate string) Button {
	b.JSONAttributesTemplate = &jsonAttributesTemplate
	return b
}

func (b Button) WithJSONAttributesTopic(jsonAttributesTopic string) Button {
	b.JSONAttributesTopic = &jsonAttributesTopic
	return b
}

func (b Button) WithName(name string) Button {
	b.Name = &name
	return b
}

func (b Button) WithObjectID(objectID string) Button {
	b.ObjectID = &objectID
	return b
}

func (b Button) WithDefaultEntityID(defaultEntityID string) Button {
	b.DefaultEntityID = &defaultEntityID
	return b
}

func (b Button) WithUniqueID(uniqueID string) Button {
	b.UniqueID = &uniqueID
	return b
}

func (b Button) WithQoS(qos mqtt.QualityOfService) Button {
	b.QoS = &qos
	return b
}

func (b Button) WithRetain(retain bool) Button {
	b.Retain = &retain
	return b
}

func (b Button) WithPlatform(platform string) Button {
	b.Platform = platform
	return b
}

func (b *Button) fields() discovery.Fields {
	return append(discovery.Fields{
		discovery.Optional(discovery.FieldCommandTemplate, &b.CommandTemplate),
		discovery.Optional(discovery.FieldCommandTopic, &b.CommandTopic),
		discovery.Optional(discovery.FieldDeviceClass, &b.DeviceClass),
		discovery.Optional(discovery.FieldPayloadPress, &b.PayloadPress),
		discovery.Optional(discovery.FieldTopicPrefix, &b.TopicPrefix),
		discovery.Required(discovery.FieldOrigin, &b.Origin),
		discovery.Required(discovery.FieldDevice, &b.Device),
		discovery.Optional(discovery.FieldEntityCategory, &b.EntityCategory),
		discovery.Optional(discovery.FieldEnabledByDefault, &b.EnabledByDefault),
		discovery.Optional(discovery.FieldEncoding, &b.Encoding),
		discovery.Optional(discovery.FieldEntityPicture, &b.EntityPicture),
		discovery.Optional(discovery.FieldIcon, &b.Icon),
		discovery.Optional(discovery.FieldJSONAttributesTemplate, &b.JSONAttributesTemplate),
		discovery.Optional(discovery.FieldJSONAttributesTopic, &b.JSONAttributesTopic),
		discovery.Optional(discovery.FieldName, &b.Name),
		discovery.Optional(discovery.FieldObjectID, &b.ObjectID),
		discovery.Optional(discovery.FieldDefaultEntityID, &b.DefaultEntityID),
		discovery.Optional(discovery.FieldUniqueID, &b.UniqueID),
		discovery.Optional(discovery.FieldQoS, &b.QoS),
		discovery.Optional(discovery.FieldRetain, &b.Retain),
		discovery.Required(discovery.FieldPlatform, &b.Platform),
	}, b.Availability.Fields()...)
}

func (b Button) MarshalJSONTo(e *jsontext.Encoder) error {
	return b.fields().MarshalJSONTo(e)
}

func (b *Button) UnmarshalJSONFrom(d *jsontext.Decoder) error {
	return b.fields().UnmarshalJSONFrom(d)
}
