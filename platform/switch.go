package platform

import (
	"encoding/json/jsontext"
	"net/url"

	"github.com/nlowe/hadiscovery/discovery"
	"github.com/nlowe/hadiscovery/hass"
	"github.com/nlowe/hadiscovery/mqtt"
)

// Switch is the switch.mqtt integration.
//
// See https://www.home-assistant.io/integrations/switch.mqtt/
type Switch struct {
	// Defines a template to generate the payload to send to CommandTopic.
	CommandTemplate *string
	// The MQTT topic to publish commands to change the switch state. Required.
	CommandTopic string
	// The type/class of the entity to set the icon in the frontend.
	DeviceClass *hass.SwitchDeviceClass
	// Flag that defines if the entity works in optimistic mode. Defaults to true if no StateTopic is defined.
	Optimistic *bool
	// The payload that represents off state. If specified, will be used for both comparing to the value in the StateTopic
	// (see ValueTemplate and StateOff for details) and sending as off command to the CommandTopic. Defaults to "OFF".
	PayloadOff *string
	// The payload that represents on state. If specified, will be used for both comparing to the value in the StateTopic
	// (see ValueTemplate and StateOn for details) and sending as on command to the CommandTopic. Defaults to "ON".
	PayloadOn *string
	// The payload that represents the off state in StateTopic. Defaults to PayloadOff.
	StateOff *string
	// The payload that represents the on state in StateTopic. Defaults to PayloadOn.
	StateOn *string
	// The MQTT topic subscribed to receive state updates. A "None" payload resets to an unknown state.
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

// NewSwitch returns a Switch with every optional field unset and Platform set to the DomainSwitch literal.
func NewSwitch() Switch {
	return Switch{Platform: string(DomainSwitch)}
}

func (s Switch) Domain() Domain {
	return DomainSwitch
}

func (Switch) entity() {}

func (s Switch) WithCommandTemplate(commandTemplate string) Switch {
	s.CommandTemplate = &commandTemplate
	return s
}

func (s Switch) WithCommandTopic(commandTopic string) Switch {
	s.CommandTopic = commandTopic
	return s
}

func (s Switch) WithDeviceClass(deviceClass hass.SwitchDeviceClass) Switch {
	s.DeviceClass = &deviceClass
	return s
}

func (s Switch) WithOptimistic(optimistic bool) Switch {
	s.Optimistic = &optimistic
	return s
}

func (s Switch) WithPayloadOff(payloadOff string) Switch {
	s.PayloadOff = &payloadOff
	return s
}

func (s Switch) WithPayloadOn(payloadOn string) Switch {
	s.PayloadOn = &payloadOn
	return s
}

func (s Switch) WithStateOff(stateOff string) Switch {
	s.StateOff = &stateOff
	return s
}

func (s Switch) WithStateOn(stateOn string) Switch {
	s.StateOn = &stateOn
	return s
}

func (s Switch) WithStateTopic(stateTopic string) Switch {
	s.StateTopic = &stateTopic
	return s
}

func (s Switch) WithValueTemplate(valueTemplate string) Switch {
	s.ValueTemplate = &valueTemplate
	return s
}

func (s Switch) WithTopicPrefix(topicPrefix string) Switch {
	s.TopicPrefix = &topicPrefix
	return s
}

func (s Switch) WithOrigin(origin hass.Origin) Switch {
	s.Origin = origin
	return s
}

func (s Switch) WithDevice(device hass.Device) Switch {
	s.Device = device
	return s
}

func (s Switch) WithAvailability(availability hass.Availability) Switch {
	s.Availability = availability
	return s
}

func (s Switch) WithEntityCategory(entityCategory hass.EntityCategory) Switch {
	s.EntityCategory = &entityCategory
	return s
}

func (s Switch) WithEnabledByDefault(enabledByDefault bool) Switch {
	s.EnabledByDefault = &enabledByDefault
	return s
}

func (s Switch) WithEncoding(encoding string) Switch {
	s.Encoding = &encoding
	return s
}

func (s Switch) WithEntityPicture(entityPicture *url.URL) Switch {
	s.EntityPicture = entityPicture
	return s
}

func (s Switch) WithIcon(icon string) Switch {
	s.Icon = &icon
	return s
}

func (s Switch) WithJSONAttributesTemplate(jsonAttributesTemplate string) Switch {
	s.JSONAttributesTemplate = &jsonAttributesTemplate
	return s
}

func (s Switch) WithJSONAttributesTopic(jsonAttributesTopic string) Switch {
	s.JSONAttributesTopic = &jsonAttributesTopic
	return s
}

func (s Switch) WithName(name string) Switch {
	s.Name = &name
	return s
}

func (s Switch) WithObjectID(objectID string) Switch {
	s.ObjectID = &objectID
	return s
}

func (s Switch) WithDefaultEntityID(defaultEntityID string) Switch {
	s.DefaultEntityID = &defaultEntityID
	return s
}

func (s Switch) WithUniqueID(uniqueID string) Switch {
	s.UniqueID = &uniqueID
	return s
}

func (s Switch) WithQoS(qos mqtt.QualityOfService) Switch {
	s.QoS = &qos
	return s
}

func (s Switch) WithRetain(retain bool) Switch {
	s.Retain = &retain
	return s
}

func (s Switch) WithPlatform(platform string) Switch {
	s.Platform = platform
	return s
}

func (s *Switch) fields() discovery.Fields {
	return append(discovery.Fields{
		discovery.Optional(discovery.FieldCommandTemplate, &s.CommandTemplate),
		discovery.Required(discovery.FieldCommandTopic, &s.CommandTopic),
		discovery.Optional(discovery.FieldDeviceClass, &s.DeviceClass),
		discovery.Optional(discovery.FieldOptimistic, &s.Optimistic),
		discovery.Optional(discovery.FieldPayloadOff, &s.PayloadOff),
		discovery.Optional(discovery.FieldPayloadOn, &s.PayloadOn),
		discovery.Optional(discovery.FieldStateOff, &s.StateOff),
		discovery.Optional(discovery.FieldStateOn, &s.StateOn),
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

func (s Switch) MarshalJSONTo(e *jsontext.Encoder) error {
	return s.fields().MarshalJSONTo(e)
}

func (s *Switch) UnmarshalJSONFrom(d *jsontext.Decoder) error {
	return s.fields().UnmarshalJSONFrom(d)
}
