package platform

import (
	"encoding/json/jsontext"
	"net/url"

	"github.com/nlowe/hadiscovery/discovery"
	"github.com/nlowe/hadiscovery/hass"
	"github.com/nlowe/hadiscovery/mqtt"
)

// Siren is the siren.mqtt integration.
//
// See https://www.home-assistant.io/integrations/siren.mqtt/
type Siren struct {
	// A list of available tones the siren supports.
	AvailableTones []string
	// Defines a template to generate a custom payload to send to CommandTopic when the siren turn off action is called.
	CommandOffTemplate *string
	// Defines a template to generate a custom payload to send to CommandTopic. The variable value will be assigned with
	// the configured PayloadOn or PayloadOff setting.
	CommandTemplate *string
	// The MQTT topic to publish commands to change the siren state. Without a command topic the siren will be a read-only
	// entity.
	CommandTopic *string
	// Flag that defines if the entity works in optimistic mode. Defaults to true if no StateTopic is defined.
	Optimistic *bool
	// The payload that represents the off state.
	PayloadOff *string
	// The payload that represents the on state.
	PayloadOn *string
	// The payload that represents the off state in StateTopic. Defaults to PayloadOff.
	StateOff *string
	// The payload that represents the on state in StateTopic. Defaults to PayloadOn.
	StateOn *string
	// The MQTT topic subscribed to receive state updates.
	StateTopic *string
	// Defines a template to extract the state value from StateTopic.
	StateValueTemplate *string
	// Set to true if the siren supports the duration turn on action variable.
	SupportDuration *bool
	// Set to true if the siren supports the volume_set turn on action variable.
	SupportVolumeSet *bool

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

// NewSiren returns a Siren with every optional field unset and Platform set to the DomainSiren literal.
func NewSiren() Siren {
	return Siren{Platform: string(DomainSiren)}
}

func (s Siren) Domain() Domain {
	return DomainSiren
}

func (Siren) entity() {}

func (s Siren) WithAvailableTones(availableTones ...string) Siren {
	s.AvailableTones = availableTones
	return s
}

func (s Siren) WithCommandOffTemplate(commandOffTemplate string) Siren {
	s.CommandOffTemplate = &commandOffTemplate
	return s
}

func (s Siren) WithCommandTemplate(commandTemplate string) Siren {
	s.CommandTemplate = &commandTemplate
	return s
}

func (s Siren) WithCommandTopic(commandTopic string) Siren {
	s.CommandTopic = &commandTopic
	return s
}

func (s Siren) WithOptimistic(optimistic bool) Siren {
	s.Optimistic = &optimistic
	return s
}

func (s Siren) WithPayloadOff(payloadOff string) Siren {
	s.PayloadOff = &payloadOff
	return s
}

func (s Siren) WithPayloadOn(payloadOn string) Siren {
	s.PayloadOn = &payloadOn
	return s
}

func (s Siren) WithStateOff(stateOff string) Siren {
	s.StateOff = &stateOff
	return s
}

func (s Siren) WithStateOn(stateOn string) Siren {
	s.StateOn = &stateOn
	return s
}

func (s Siren) WithStateTopic(stateTopic string) Siren {
	s.StateTopic = &stateTopic
	return s
}

func (s Siren) WithStateValueTemplate(stateValueTemplate string) Siren {
	s.StateValueTemplate = &stateValueTemplate
	return s
}

func (s Siren) WithSupportDuration(supportDuration bool) Siren {
	s.SupportDuration = &supportDuration
	return s
}

func (s Siren) WithSupportVolumeSet(supportVolumeSet bool) Siren {
	s.SupportVolumeSet = &supportVolumeSet
	return s
}

func (s Siren) WithTopicPrefix(topicPrefix string) Siren {
	s.TopicPrefix = &topicPrefix
	return s
}

func (s Siren) WithOrigin(origin hass.Origin) Siren {
	s.Origin = origin
	return s
}

func (s Siren) WithDevice(device hass.Device) Siren {
	s.Device = device
	return s
}

func (s Siren) WithAvailability(availability hass.Availability) Siren {
	s.Availability = availability
	return s
}

func (s Siren) WithEntityCategory(entityCategory hass.EntityCategory) Siren {
	s.EntityCategory = &entityCategory
	return s
}

func (s Siren) WithEnabledByDefault(enabledByDefault bool) Siren {
	s.EnabledByDefault = &enabledByDefault
	return s
}

func (s Siren) WithEncoding(encoding string) Siren {
	s.Encoding = &encoding
	return s
}

func (s Siren) WithEntityPicture(entityPicture *url.URL) Siren {
	s.EntityPicture = entityPicture
	return s
}

func (s Siren) WithIcon(icon string) Siren {
	s.Icon = &icon
	return s
}

func (s Siren) WithJSONAttributesTemplate(jsonAttributesTemplate string) Siren {
	s.JSONAttributesTemplate = &jsonAttributesTemplate
	return s
}

func (s Siren) WithJSONAttributesTopic(jsonAttributesTopic string) Siren {
	s.JSONAttributesTopic = &jsonAttributesTopic
	return s
}

func (s Siren) WithName(name string) Siren {
	s.Name = &name
	return s
}

func (s Siren) WithObjectID(objectID string) Siren {
	s.ObjectID = &objectID
	return s
}

func (s Siren) WithDefaultEntityID(defaultEntityID string) Siren {
	s.DefaultEntityID = &defaultEntityID
	return s
}

func (s Siren) WithUniqueID(uniqueID string) Siren {
	s.UniqueID = &uniqueID
	return s
}

func (s Siren) WithQoS(qos mqtt.QualityOfService) Siren {
	s.QoS = &qos
	return s
}

func (s Siren) WithRetain(retain bool) Siren {
	s.Retain = &retain
	return s
}

func (s Siren) WithPlatform(platform string) Siren {
	s.Platform = platform
	return s
}

func (s *Siren) fields() discovery.Fields {
	return append(discovery.Fields{
		discovery.Slice(discovery.FieldAvailableTones, &s.AvailableTones),
		discovery.Optional(discovery.FieldCommandOffTemplate, &s.CommandOffTemplate),
		discovery.Optional(discovery.FieldCommandTemplate, &s.CommandTemplate),
		discovery.Optional(discovery.FieldCommandTopic, &s.CommandTopic),
		discovery.Optional(discovery.FieldOptimistic, &s.Optimistic),
		discovery.Optional(discovery.FieldPayloadOff, &s.PayloadOff),
		discovery.Optional(discovery.FieldPayloadOn, &s.PayloadOn),
		discovery.Optional(discovery.FieldStateOff, &s.StateOff),
		discovery.Optional(discovery.FieldStateOn, &s.StateOn),
		discovery.Optional(discovery.FieldStateTopic, &s.StateTopic),
		discovery.Optional(discovery.FieldStateValueTemplate, &s.StateValueTemplate),
		discovery.Optional(discovery.FieldSupportDuration, &s.SupportDuration),
		discovery.Optional(discovery.FieldSupportVolumeSet, &s.SupportVolumeSet),
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

func (s Siren) MarshalJSONTo(e *jsontext.Encoder) error {
	return s.fields().MarshalJSONTo(e)
}

func (s *Siren) UnmarshalJSONFrom(d *jsontext.Decoder) error {
	return s.fields().UnmarshalJSONFrom(d)
}
