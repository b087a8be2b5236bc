package platform

import (
	"encoding/json/jsontext"
	"net/url"

	"github.com/nlowe/hadiscovery/discovery"
	"github.com/nlowe/hadiscovery/hass"
	"github.com/nlowe/hadiscovery/mqtt"
)

// Humidifier is the humidifier.mqtt integration for humidifiers and dehumidifiers. Both CommandTopic and
// TargetHumidityCommandTopic are required by Home Assistant.
//
// See https://www.home-assistant.io/integrations/humidifier.mqtt/
type Humidifier struct {
	// A template to render the value received on the ActionTopic with.
	ActionTemplate *string
	// The MQTT topic to subscribe for changes of the current action.
	ActionTopic *string
	// Defines a template to generate the payload to send to CommandTopic.
	CommandTemplate *string
	// The MQTT topic to publish commands to change the humidifier state. Required.
	CommandTopic string
	// A template with which the value received on CurrentHumidityTopic will be rendered.
	CurrentHumidityTemplate *string
	// The MQTT topic on which to listen for the current humidity.
	CurrentHumidityTopic *string
	// The device class of the MQTT device. Must be either hass.HumidifierDeviceClassHumidifier,
	// hass.HumidifierDeviceClassDehumidifier or hass.HumidifierDeviceClassNone.
	DeviceClass *hass.HumidifierDeviceClass
	// The maximum target humidity percentage that can be set. Defaults to 100.
	MaxHumidity *float64
	// The minimum target humidity percentage that can be set. Defaults to 0.
	MinHumidity *float64
	// A template to render the value sent to the ModeCommandTopic with.
	ModeCommandTemplate *string
	// The MQTT topic to publish commands to change the mode.
	ModeCommandTopic *string
	// A template to render the value received on the ModeStateTopic with.
	ModeStateTemplate *string
	// The MQTT topic to subscribe for changes of the mode.
	ModeStateTopic *string
	// List of available modes this humidifier is capable of running at. Common examples include "normal", "eco", "away",
	// "boost".
	Modes []string
	// Flag that defines if the entity works in optimistic mode. Defaults to true if no StateTopic is defined.
	Optimistic *bool
	// The payload that represents the off state.
	PayloadOff *string
	// The payload that represents the on state.
	PayloadOn *string
	// A special payload that resets the target humidity state attribute to unknown.
	PayloadResetHumidity *string
	// A special payload that resets the mode state attribute to unknown.
	PayloadResetMode *string
	// The MQTT topic subscribed to receive state updates.
	StateTopic *string
	// Defines a template to extract the state value from StateTopic.
	StateValueTemplate *string
	// Defines a template to generate the payload to send to TargetHumidityCommandTopic.
	TargetHumidityCommandTemplate *string
	// The MQTT topic to publish commands to change the target humidity. Required.
	TargetHumidityCommandTopic string
	// Defines a template to extract a value for the target humidity state.
	TargetHumidityStateTemplate *string
	// The MQTT topic subscribed to receive the target humidity.
	TargetHumidityStateTopic *string

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

// NewHumidifier returns a Humidifier with every optional field unset and Platform set to the DomainHumidifier literal.
func NewHumidifier() Humidifier {
	return Humidifier{Platform: string(DomainHumidifier)}
}

func (h Humidifier) Domain() Domain {
	return DomainHumidifier
}

func (Humidifier) entity() {}

func (h Humidifier) WithActionTemplate(actionTemplate string) Humidifier {
	h.ActionTemplate = &actionTemplate
	return h
}

func (h Humidifier) WithActionTopic(actionTopic string) Humidifier {
	h.ActionTopic = &actionTopic
	return h
}

func (h Humidifier) WithCommandTemplate(commandTemplate string) Humidifier {
	h.CommandTemplate = &commandTemplate
	return h
}

func (h Humidifier) WithCommandTopic(commandTopic string) Humidifier {
	h.CommandTopic = commandTopic
	return h
}

func (h Humidifier) WithCurrentHumidityTemplate(currentHumidityTemplate string) Humidifier {
	h.CurrentHumidityTemplate = &currentHumidityTemplate
	return h
}

func (h Humidifier) WithCurrentHumidityTopic(currentHumidityTopic string) Humidifier {
	h.CurrentHumidityTopic = &currentHumidityTopic
	return h
}

func (h Humidifier) WithDeviceClass(deviceClass hass.HumidifierDeviceClass) Humidifier {
	h.DeviceClass = &deviceClass
	return h
}

func (h Humidifier) WithMaxHumidity(maxHumidity float64) Humidifier {
	h.MaxHumidity = &maxHumidity
	return h
}

func (h Humidifier) WithMinHumidity(minHumidity float64) Humidifier {
	h.MinHumidity = &minHumidity
	return h
}

func (h Humidifier) WithModeCommandTemplate(modeCommandTemplate string) Humidifier {
	h.ModeCommandTemplate = &modeCommandTemplate
	return h
}

func (h Humidifier) WithModeCommandTopic(modeCommandTopic string) Humidifier {
	h.ModeCommandTopic = &modeCommandTopic
	return h
}

func (h Humidifier) WithModeStateTemplate(modeStateTemplate string) Humidifier {
	h.ModeStateTemplate = &modeStateTemplate
	return h
}

func (h Humidifier) WithModeStateTopic(modeStateTopic string) Humidifier {
	h.ModeStateTopic = &modeStateTopic
	return h
}

func (h Humidifier) WithModes(modes ...string) Humidifier {
	h.Modes = modes
	return h
}

func (h Humidifier) WithOptimistic(optimistic bool) Humidifier {
	h.Optimistic = &optimistic
	return h
}

func (h Humidifier) WithPayloadOff(payloadOff string) Humidifier {
	h.PayloadOff = &payloadOff
	return h
}

func (h Humidifier) WithPayloadOn(payloadOn string) Humidifier {
	h.PayloadOn = &payloadOn
	return h
}

func (h Humidifier) WithPayloadResetHumidity(payloadResetHumidity string) Humidifier {
	h.PayloadResetHumidity = &payloadResetHumidity
	return h
}

func (h Humidifier) WithPayloadResetMode(payloadResetMode string) Humidifier {
	h.PayloadResetMode = &payloadResetMode
	return h
}

func (h Humidifier) WithStateTopic(stateTopic string) Humidifier {
	h.StateTopic = &stateTopic
	return h
}

func (h Humidifier) WithStateValueTemplate(stateValueTemplate string) Humidifier {
	h.StateValueTemplate = &stateValueTemplate
	return h
}

func (h Humidifier) WithTargetHumidityCommandTemplate(targetHumidityCommandTemplate string) Humidifier {
	h.TargetHumidityCommandTemplate = &targetHumidityCommandTemplate
	return h
}

func (h Humidifier) WithTargetHumidityCommandTopic(targetHumidityCommandTopic string) Humidifier {
	h.TargetHumidityCommandTopic = targetHumidityCommandTopic
	return h
}

func (h Humidifier) WithTargetHumidityStateTemplate(targetHumidityStateTemplate string) Humidifier {
	h.TargetHumidityStateTemplate = &targetHumidityStateTemplate
	return h
}

func (h Humidifier) WithTargetHumidityStateTopic(targetHumidityStateTopic string) Humidifier {
	h.TargetHumidityStateTopic = &targetHumidityStateTopic
	return h
}

func (h Humidifier) WithTopicPrefix(topicPrefix string) Humidifier {
	h.TopicPrefix = &topicPrefix
	return h
}

func (h Humidifier) WithOrigin(origin hass.Origin) Humidifier {
	h.Origin = origin
	return h
}

func (h Humidifier) WithDevice(device hass.Device) Humidifier {
	h.Device = device
	return h
}

func (h Humidifier) WithAvailability(availability hass.Availability) Humidifier {
	h.Availability = availability
	return h
}

func (h Humidifier) WithEntityCategory(entityCategory hass.EntityCategory) Humidifier {
	h.EntityCategory = &entityCategory
	return h
}

func (h Humidifier) WithEnabledByDefault(enabledByDefault bool) Humidifier {
	h.EnabledByDefault = &enabledByDefault
	return h
}

func (h Humidifier) WithEncoding(encoding string) Humidifier {
	h.Encoding = &encoding
	return h
}

func (h Humidifier) WithEntityPicture(entityPicture *url.URL) Humidifier {
	h.EntityPicture = entityPicture
	return h
}

func (h Humidifier) WithIcon(icon string) Humidifier {
	h.Icon = &icon
	return h
}

func (h Humidifier) WithJSONAttributesTemplate(jsonAttributesTemplate string) Humidifier {
	h.JSONAttributesTemplate = &jsonAttributesTemplate
	return h
}

func (h Humidifier) WithJSONAttributesTopic(jsonAttributesTopic string) Humidifier {
	h.JSONAttributesTopic = &jsonAttributesTopic
	return h
}

func (h Humidifier) WithName(name string) Humidifier {
	h.Name = &name
	return h
}

func (h Humidifier) WithObjectID(objectID string) Humidifier {
	h.ObjectID = &objectID
	return h
}

func (h Humidifier) WithDefaultEntityID(defaultEntityID string) Humidifier {
	h.DefaultEntityID = &defaultEntityID
	return h
}

func (h Humidifier) WithUniqueID(uniqueID string) Humidifier {
	h.UniqueID = &uniqueID
	return h
}

func (h Humidifier) WithQoS(qos mqtt.QualityOfService) Humidifier {
	h.QoS = &qos
	return h
}

func (h Humidifier) WithRetain(retain bool) Humidifier {
	h.Retain = &retain
	return h
}

func (h Humidifier) WithPlatform(platform string) Humidifier {
	h.Platform = platform
	return h
}

func (h *Humidifier) fields() discovery.Fields {
	return append(discovery.Fields{
		discovery.Optional(discovery.FieldActionTemplate, &h.ActionTemplate),
		discovery.Optional(discovery.FieldActionTopic, &h.ActionTopic),
		discovery.Optional(discovery.FieldCommandTemplate, &h.CommandTemplate),
		discovery.Required(discovery.FieldCommandTopic, &h.CommandTopic),
		discovery.Optional(discovery.FieldCurrentHumidityTemplate, &h.CurrentHumidityTemplate),
		discovery.Optional(discovery.FieldCurrentHumidityTopic, &h.CurrentHumidityTopic),
		discovery.Optional(discovery.FieldDeviceClass, &h.DeviceClass),
		discovery.Optional(discovery.FieldMaxHumidity, &h.MaxHumidity),
		discovery.Optional(discovery.FieldMinHumidity, &h.MinHumidity),
		discovery.Optional(discovery.FieldModeCommandTemplate, &h.ModeCommandTemplate),
		discovery.Optional(discovery.FieldModeCommandTopic, &h.ModeCommandTopic),
		discovery.Optional(discovery.FieldModeStateTemplate, &h.ModeStateTemplate),
		discovery.Optional(discovery.FieldModeStateTopic, &h.ModeStateTopic),
		discovery.Slice(discovery.FieldModes, &h.Modes),
		discovery.Optional(discovery.FieldOptimistic, &h.Optimistic),
		discovery.Optional(discovery.FieldPayloadOff, &h.PayloadOff),
		discovery.Optional(discovery.FieldPayloadOn, &h.PayloadOn),
		discovery.Optional(discovery.FieldPayloadResetHumidity, &h.PayloadResetHumidity),
		discovery.Optional(discovery.FieldPayloadResetMode, &h.PayloadResetMode),
		discovery.Optional(discovery.FieldStateTopic, &h.StateTopic),
		discovery.Optional(discovery.FieldStateValueTemplate, &h.StateValueTemplate),
		discovery.Optional(discovery.FieldTargetHumidityCommandTemplate, &h.TargetHumidityCommandTemplate),
		discovery.Required(discovery.FieldTargetHumidityCommandTopic, &h.TargetHumidityCommandTopic),
		discovery.Optional(discovery.FieldTargetHumidityStateTemplate, &h.TargetHumidityStateTemplate),
		discovery.Optional(discovery.FieldTargetHumidityStateTopic, &h.TargetHumidityStateTopic),
		discovery.Optional(discovery.FieldTopicPrefix, &h.TopicPrefix),
		discovery.Required(discovery.FieldOrigin, &h.Origin),
		discovery.Required(discovery.FieldDevice, &h.Device),
		discovery.Optional(discovery.FieldEntityCategory, &h.EntityCategory),
		discovery.Optional(discovery.FieldEnabledByDefault, &h.EnabledByDefault),
		discovery.Optional(discovery.FieldEncoding, &h.Encoding),
		discovery.Optional(discovery.FieldEntityPicture, &h.EntityPicture),
		discovery.Optional(discovery.FieldIcon, &h.Icon),
		discovery.Optional(discovery.FieldJSONAttributesTemplate, &h.JSONAttributesTemplate),
		discovery.Optional(discovery.FieldJSONAttributesTopic, &h.JSONAttributesTopic),
		discovery.Optional(discovery.FieldName, &h.Name),
		discovery.Optional(discovery.FieldObjectID, &h.ObjectID),
		discovery.Optional(discovery.FieldDefaultEntityID, &h.DefaultEntityID),
		discovery.Optional(discovery.FieldUniqueID, &h.UniqueID),
		discovery.Optional(discovery.FieldQoS, &h.QoS),
		discovery.Optional(discovery.FieldRetain, &h.Retain),
		discovery.Required(discovery.FieldPlatform, &h.Platform),
	}, h.Availability.Fields()...)
}

func (h Humidifier) MarshalJSONTo(e *jsontext.Encoder) error {
	return h.fields().MarshalJSONTo(e)
}

func (h *Humidifier) UnmarshalJSONFrom(d *jsontext.Decoder) error {
	return h.fields().UnmarshalJSONFrom(d)
}
