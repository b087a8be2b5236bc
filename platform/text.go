package platform

import (
	"encoding/json/jsontext"
	"net/url"

	"github.com/nlowe/hadiscovery/discovery"
	"github.com/nlowe/hadiscovery/hass"
	"github.com/nlowe/hadiscovery/mqtt"
)

// Text is the text.mqtt integration.
//
// See https://www.home-assistant.io/integrations/text.mqtt/
type Text struct {
	// Defines a template to generate the payload to send to CommandTopic.
	CommandTemplate *string
	// The MQTT topic to publish the text value that is set. Required.
	CommandTopic string
	// The maximum size of a text being set or received (maximum is 255). Defaults to 255.
	Max *int
	// The minimum size of a text being set or received. Defaults to 0.
	Min *int
	// Control how the entity is displayed in the UI.
	Mode *hass.TextMode
	// A valid regular expression the text being set or received must match with.
	Pattern *string
	// The MQTT topic subscribed to receive text state updates.
	StateTopic *string
	// Defines a template to extract the value.
	ValueTemplate *string

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

// NewText returns a Text with every optional field unset and Platform set to the DomainText literal.
func NewText() Text {
	return Text{Platform: string(DomainText)}
}

func (t Text) Domain() Domain {
	return DomainText
}

func (Text) entity() {}

func (t Text) WithCommandTemplate(commandTemplate string) Text {
	t.CommandTemplate = &commandTemplate
	return t
}

func (t Text) WithCommandTopic(commandTopic string) Text {
	t.CommandTopic = commandTopic
	return t
}

func (t Text) WithMax(maximum int) Text {
	t.Max = &maximum
	return t
}

func (t Text) WithMin(minimum int) Text {
	t.Min = &minimum
	return t
}

func (t Text) WithMode(mode hass.TextMode) Text {
	t.Mode = &mode
	return t
}

func (t Text) WithPattern(pattern string) Text {
	t.Pattern = &pattern
	return t
}

func (t Text) WithStateTopic(stateTopic string) Text {
	t.StateTopic = &stateTopic
	return t
}

func (t Text) WithValueTemplate(valueTemplate string) Text {
	t.ValueTemplate = &valueTemplate
	return t
}

func (t Text) WithTopicPrefix(topicPrefix string) Text {
	t.TopicPrefix = &topicPrefix
	return t
}

func (t Text) WithOrigin(origin hass.Origin) Text {
	t.Origin = origin
	return t
}

func (t Text) WithDevice(device hass.Device) Text {
	t.Device = device
	return t
}

func (t Text) WithAvailability(availability hass.Availability) Text {
	t.Availability = availability
	return t
}

func (t Text) WithEntityCategory(entityCategory hass.EntityCategory) Text {
	t.EntityCategory = &entityCategory
	return t
}

func (t Text) WithEnabledByDefault(enabledByDefault bool) Text {
	t.EnabledByDefault = &enabledByDefault
	return t
}

func (t Text) WithEncoding(encoding string) Text {
	t.Encoding = &encoding
	return t
}

func (t Text) WithEntityPicture(entityPicture *url.URL) Text {
	t.EntityPicture = entityPicture
	return t
}

func (t Text) WithIcon(icon string) Text {
	t.Icon = &icon
	return t
}

func (t Text) WithJSONAttributesTemplate(jsonAttributesTemplate string) Text {
	t.JSONAttributesTemplate = &jsonAttributesTemplate
	return t
}

func (t Text) WithJSONAttributesTopic(jsonAttributesTopic string) Text {
	t.JSONAttributesTopic = &jsonAttributesTopic
	return t
}

func (t Text) WithName(name string) Text {
	t.Name = &name
	return t
}

func (t Text) WithObjectID(objectID string) Text {
	t.ObjectID = &objectID
	return t
}

func (t Text) WithDefaultEntityID(defaultEntityID string) Text {
	t.DefaultEntityID = &defaultEntityID
	return t
}

func (t Text) WithUniqueID(uniqueID string) Text {
	t.UniqueID = &uniqueID
	return t
}

func (t Text) WithQoS(qos mqtt.QualityOfService) Text {
	t.QoS = &qos
	return t
}

func (t Text) WithRetain(retain bool) Text {
	t.Retain = &retain
	return t
}

func (t Text) WithPlatform(platform string) Text {
	t.Platform = platform
	return t
}

func (t *Text) fields() discovery.Fields {
	return append(discovery.Fields{
		discovery.Optional(discovery.FieldCommandTemplate, &t.CommandTemplate),
		discovery.Required(discovery.FieldCommandTopic, &t.CommandTopic),
		discovery.Optional(discovery.FieldMax, &t.Max),
		discovery.Optional(discovery.FieldMin, &t.Min),
		discovery.Optional(discovery.FieldMode, &t.Mode),
		discovery.Optional(discovery.FieldPattern, &t.Pattern),
		discovery.Optional(discovery.FieldStateTopic, &t.StateTopic),
		discovery.Optional(discovery.FieldValueTemplate, &t.ValueTemplate),
		discovery.Optional(discovery.FieldTopicPrefix, &t.TopicPrefix),
		discovery.Required(discovery.FieldOrigin, &t.Origin),
		discovery.Required(discovery.FieldDevice, &t.Device),
		discovery.Optional(discovery.FieldEntityCategory, &t.EntityCategory),
		discovery.Optional(discovery.FieldEnabledByDefault, &t.EnabledByDefault),
		discovery.Optional(discovery.FieldEncoding, &t.Encoding),
		discovery.Optional(discovery.FieldEntityPicture, &t.EntityPicture),
		discovery.Optional(discovery.FieldIcon, &t.Icon),
		discovery.Optional(discovery.FieldJSONAttributesTemplate, &t.JSONAttributesTemplate),
		discovery.Optional(discovery.FieldJSONAttributesTopic, &t.JSONAttributesTopic),
		discovery.Optional(discovery.FieldName, &t.Name),
		discovery.Optional(discovery.FieldObjectID, &t.ObjectID),
		discovery.Optional(discovery.FieldDefaultEntityID, &t.DefaultEntityID),
		discovery.Optional(discovery.FieldUniqueID, &t.UniqueID),
		discovery.Optional(discovery.FieldQoS, &t.QoS),
		discovery.Optional(discovery.FieldRetain, &t.Retain),
		discovery.Required(discovery.FieldPlatform, &t.Platform),
	}, t.Availability.Fields()...)
}

func (t Text) MarshalJSONTo(e *jsontext.Encoder) error {
	return t.fields().MarshalJSONTo(e)
}

func (t *Text) UnmarshalJSONFrom(d *jsontext.Decoder) error {
	return t.fields().UnmarshalJSONFrom(d)
}
