package platform

import (
	"encoding/json/jsontext"
	"net/url"

	"github.com/nlowe/hadiscovery/discovery"
	"github.com/nlowe/hadiscovery/hass"
	"github.com/nlowe/hadiscovery/mqtt"
)

// Select is the select.mqtt integration.
//
// See https://www.home-assistant.io/integrations/select.mqtt/
type Select struct {
	// Defines a template to generate the payload to send to CommandTopic.
	CommandTemplate *string
	// The MQTT topic to publish commands to change the selected option. Required.
	CommandTopic string
	// Flag that defines if the entity works in optimistic mode. Defaults to true if no StateTopic is defined.
	Optimistic *bool
	// List of options that can be selected. An empty list or a list with a single item is allowed. Required.
	Options []string
	// The MQTT topic subscribed to receive update of the selected option. A "None" payload resets to an unknown state.
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

// NewSelect returns a Select with every optional field unset and Platform set to the DomainSelect literal.
func NewSelect() Select {
	return Select{Platform: string(DomainSelect)}
}

func (s Select) Domain() Domain {
	return DomainSelect
}

func (Select) entity() {}

func (s Select) WithCommandTemplate(commandTemplate string) Select {
	s.CommandTemplate = &commandTemplate
	return s
}

func (s Select) WithCommandTopic(commandTopic string) Select {
	s.CommandTopic = commandTopic
	return s
}

func (s Select) WithOptimistic(optimistic bool) Select {
	s.Optimistic = &optimistic
	return s
}

func (s Select) WithOptions(options ...string) Select {
	s.Options = options
	return s
}

func (s Select) WithStateTopic(stateTopic string) Select {
	s.StateTopic = &stateTopic
	return s
}

func (s Select) WithValueTemplate(valueTemplate string) Select {
	s.ValueTemplate = &valueTemplate
	return s
}

func (s Select) WithTopicPrefix(topicPrefix string) Select {
	s.TopicPrefix = &topicPrefix
	return s
}

func (s Select) WithOrigin(origin hass.Origin) Select {
	s.Origin = origin
	return s
}

func (s Select) WithDevice(device hass.Device) Select {
	s.Device = device
	return s
}

func (s Select) WithAvailability(availability hass.Availability) Select {
	s.Availability = availability
	return s
}

func (s Select) WithEntityCategory(entityCategory hass.EntityCategory) Select {
	s.EntityCategory = &entityCategory
	return s
}

func (s Select) WithEnabledByDefault(enabledByDefault bool) Select {
	s.EnabledByDefault = &enabledByDefault
	return s
}

func (s Select) WithEncoding(encoding string) Select {
	s.Encoding = &encoding
	return s
}

func (s Select) WithEntityPicture(entityPicture *url.URL) Select {
	s.EntityPicture = entityPicture
	return s
}

func (s Select) WithIcon(icon string) Select {
	s.Icon = &icon
	return s
}

func (s Select) WithJSONAttributesTemplate(jsonAttributesTemplate string) Select {
	s.JSONAttributesTemplate = &jsonAttributesTemplate
	return s
}

func (s Select) WithJSONAttributesTopic(jsonAttributesTopic string) Select {
	s.JSONAttributesTopic = &jsonAttributesTopic
	return s
}

func (s Select) WithName(name string) Select {
	s.Name = &name
	return s
}

func (s Select) WithObjectID(objectID string) Select {
	s.ObjectID = &objectID
	return s
}

func (s Select) WithDefaultEntityID(defaultEntityID string) Select {
	s.DefaultEntityID = &defaultEntityID
	return s
}

func (s Select) WithUniqueID(uniqueID string) Select {
	s.UniqueID = &uniqueID
	return s
}

func (s Select) WithQoS(qos mqtt.QualityOfService) Select {
	s.QoS = &qos
	return s
}

func (s Select) WithRetain(retain bool) Select {
	s.Retain = &retain
	return s
}

func (s Select) WithPlatform(platform string) Select {
	s.Platform = platform
	return s
}

func (s *Select) fields() discovery.Fields {
	return append(discovery.Fields{
		discovery.Optional(discovery.FieldCommandTemplate, &s.CommandTemplate),
		discovery.Required(discovery.FieldCommandTopic, &s.CommandTopic),
		discovery.Optional(discovery.FieldOptimistic, &s.Optimistic),
		discovery.Required(discovery.FieldOptions, &s.Options),
		discovery.Optional(discovery.FieldStateTopic, &s.StateTopic),
		discovery.Optional(discovery.FieldValueTemplate, &s.ValueTemplate),
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

func (s Select) MarshalJSONTo(e *jsontext.Encoder) error {
	return s.fields().MarshalJSONTo(e)
}

func (s *Select) UnmarshalJSONFrom(d *jsontext.Decoder) error {
	return s.fields().UnmarshalJSONFrom(d)
}
