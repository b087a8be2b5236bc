package platform

import (
	"encoding/json/jsontext"
	"net/url"

	"github.com/nlowe/hadiscovery/discovery"
	"github.com/nlowe/hadiscovery/hass"
	"github.com/nlowe/hadiscovery/mqtt"
)

// Fan is the fan.mqtt integration. Speed is controlled as a percentage, scaled to the device's native range using
// SpeedRangeMin and SpeedRangeMax.
//
// See https://www.home-assistant.io/integrations/fan.mqtt/
type Fan struct {
	// Defines a template to generate the payload to send to CommandTopic.
	CommandTemplate *string
	// The MQTT topic to publish commands to change the fan state. Required.
	CommandTopic string
	// Defines a template to generate the payload to send to DirectionCommandTopic.
	DirectionCommandTemplate *string
	// The MQTT topic to publish commands to change the direction state.
	DirectionCommandTopic *string
	// The MQTT topic subscribed to receive direction state updates.
	DirectionStateTopic *string
	// Defines a template to extract a value from the direction.
	DirectionValueTemplate *string
	// Flag that defines if the entity works in optimistic mode. Defaults to true if no StateTopic is defined.
	Optimistic *bool
	// Defines a template to generate the payload to send to OscillationCommandTopic.
	OscillationCommandTemplate *string
	// The MQTT topic to publish commands to change the oscillation state.
	OscillationCommandTopic *string
	// The MQTT topic subscribed to receive oscillation state updates.
	OscillationStateTopic *string
	// Defines a template to extract a value from the oscillation.
	OscillationValueTemplate *string
	// The payload that represents the stop state. Defaults to "OFF".
	PayloadOff *string
	// The payload that represents the running state. Defaults to "ON".
	PayloadOn *string
	// The payload that represents the oscillation off state.
	PayloadOscillationOff *string
	// The payload that represents the oscillation on state.
	PayloadOscillationOn *string
	// A special payload that resets the percentage state attribute to unknown when received at the PercentageStateTopic.
	PayloadResetPercentage *string
	// A special payload that resets the PresetModes state attribute to unknown when received at the PresetModeStateTopic.
	PayloadResetPresetMode *string
	// Defines a template to generate the payload to send to PercentageCommandTopic.
	PercentageCommandTemplate *string
	// The MQTT topic to publish commands to change the fan speed state based on a percentage.
	PercentageCommandTopic *string
	// The MQTT topic subscribed to receive fan speed based on percentage.
	PercentageStateTopic *string
	// Defines a template to extract the percentage value from the payload received on PercentageStateTopic.
	PercentageValueTemplate *string
	// Defines a template to generate the payload to send to PresetModeCommandTopic.
	PresetModeCommandTemplate *string
	// The MQTT topic to publish commands to change the preset mode.
	PresetModeCommandTopic *string
	// The MQTT topic subscribed to receive preset mode updates.
	PresetModeStateTopic *string
	// Defines a template to extract the preset mode value from the payload received on PresetModeStateTopic.
	PresetModeValueTemplate *string
	// List of preset modes this entity is capable of running at. Common examples include "eco", "away", "boost".
	PresetModes []string
	// The maximum of numeric output range (representing 100 %). The percentage step is 100 / the number of speeds within
	// the speed range.
	SpeedRangeMax *int
	// The minimum of numeric output range (off not included, so SpeedRangeMin - 1 represents 0 %).
	SpeedRangeMin *int
	// The MQTT topic subscribed to receive state updates.
	StateTopic *string
	// Defines a template to extract the state value from StateTopic.
	StateValueTemplate *string

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

// NewFan returns a Fan with every optional field unset and Platform set to the DomainFan literal.
func NewFan() Fan {
	return Fan{Platform: string(DomainFan)}
}

func (f Fan) Domain() Domain {
	return DomainFan
}

func (Fan) entity() {}

func (f Fan) WithCommandTemplate(commandTemplate string) Fan {
	f.CommandTemplate = &commandTemplate
	return f
}

func (f Fan) WithCommandTopic(commandTopic string) Fan {
	f.CommandTopic = commandTopic
	return f
}

func (f Fan) WithDirectionCommandTemplate(directionCommandTemplate string) Fan {
	f.DirectionCommandTemplate = &directionCommandTemplate
	return f
}

func (f Fan) WithDirectionCommandTopic(directionCommandTopic string) Fan {
	f.DirectionCommandTopic = &directionCommandTopic
	return f
}

func (f Fan) WithDirectionStateTopic(directionStateTopic string) Fan {
	f.DirectionStateTopic = &directionStateTopic
	return f
}

func (f Fan) WithDirectionValueTemplate(directionValueTemplate string) Fan {
	f.DirectionValueTemplate = &directionValueTemplate
	return f
}

func (f Fan) WithOptimistic(optimistic bool) Fan {
	f.Optimistic = &optimistic
	return f
}

func (f Fan) WithOscillationCommandTemplate(oscillationCommandTemplate string) Fan {
	f.OscillationCommandTemplate = &oscillationCommandTemplate
	return f
}

func (f Fan) WithOscillationCommandTopic(oscillationCommandTopic string) Fan {
	f.OscillationCommandTopic = &oscillationCommandTopic
	return f
}

func (f Fan) WithOscillationStateTopic(oscillationStateTopic string) Fan {
	f.OscillationStateTopic = &oscillationStateTopic
	return f
}

func (f Fan) WithOscillationValueTemplate(oscillationValueTemplate string) Fan {
	f.OscillationValueTemplate = &oscillationValueTemplate
	return f
}

func (f Fan) WithPayloadOff(payloadOff string) Fan {
	f.PayloadOff = &payloadOff
	return f
}

func (f Fan) WithPayloadOn(payloadOn string) Fan {
	f.PayloadOn = &payloadOn
	return f
}

func (f Fan) WithPayloadOscillationOff(payloadOscillationOff string) Fan {
	f.PayloadOscillationOff = &payloadOscillationOff
	return f
}

func (f Fan) WithPayloadOscillationOn(payloadOscillationOn string) Fan {
	f.PayloadOscillationOn = &payloadOscillationOn
	return f
}

func (f Fan) WithPayloadResetPercentage(payloadResetPercentage string) Fan {
	f.PayloadResetPercentage = &payloadResetPercentage
	return f
}

func (f Fan) WithPayloadResetPresetMode(payloadResetPresetMode string) Fan {
	f.PayloadResetPresetMode = &payloadResetPresetMode
	return f
}

func (f Fan) WithPercentageCommandTemplate(percentageCommandTemplate string) Fan {
	f.PercentageCommandTemplate = &percentageCommandTemplate
	return f
}

func (f Fan) WithPercentageCommandTopic(percentageCommandTopic string) Fan {
	f.PercentageCommandTopic = &percentageCommandTopic
	return f
}

func (f Fan) WithPercentageStateTopic(percentageStateTopic string) Fan {
	f.PercentageStateTopic = &percentageStateTopic
	return f
}

func (f Fan) WithPercentageValueTemplate(percentageValueTemplate string) Fan {
	f.PercentageValueTemplate = &percentageValueTemplate
	return f
}

func (f Fan) WithPresetModeCommandTemplate(presetModeCommandTemplate string) Fan {
	f.PresetModeCommandTemplate = &presetModeCommandTemplate
	return f
}

func (f Fan) WithPresetModeCommandTopic(presetModeCommandTopic string) Fan {
	f.PresetModeCommandTopic = &presetModeCommandTopic
	return f
}

func (f Fan) WithPresetModeStateTopic(presetModeStateTopic string) Fan {
	f.PresetModeStateTopic = &presetModeStateTopic
	return f
}

func (f Fan) WithPresetModeValueTemplate(presetModeValueTemplate string) Fan {
	f.PresetModeValueTemplate = &presetModeValueTemplate
	return f
}

func (f Fan) WithPresetModes(presetModes ...string) Fan {
	f.PresetModes = presetModes
	return f
}

func (f Fan) WithSpeedRangeMax(speedRangeMax int) Fan {
	f.SpeedRangeMax = &speedRangeMax
	return f
}

func (f Fan) WithSpeedRangeMin(speedRangeMin int) Fan {
	f.SpeedRangeMin = &speedRangeMin
	return f
}

func (f Fan) WithStateTopic(stateTopic string) Fan {
	f.StateTopic = &stateTopic
	return f
}

func (f Fan) WithStateValueTemplate(stateValueTemplate string) Fan {
	f.StateValueTemplate = &stateValueTemplate
	return f
}

func (f Fan) WithTopicPrefix(topicPrefix string) Fan {
	f.TopicPrefix = &topicPrefix
	return f
}

func (f Fan) WithOrigin(origin hass.Origin) Fan {
	f.Origin = origin
	return f
}

func (f Fan) WithDevice(device hass.Device) Fan {
	f.Device = device
	return f
}

func (f Fan) WithAvailability(availability hass.Availability) Fan {
	f.Availability = availability
	return f
}

func (f Fan) WithEntityCategory(entityCategory hass.EntityCategory) Fan {
	f.EntityCategory = &entityCategory
	return f
}

func (f Fan) WithEnabledByDefault(enabledByDefault bool) Fan {
	f.EnabledByDefault = &enabledByDefault
	return f
}

func (f Fan) WithEncoding(encoding string) Fan {
	f.Encoding = &encoding
	return f
}

func (f Fan) WithEntityPicture(entityPicture *url.URL) Fan {
	f.EntityPicture = entityPicture
	return f
}

func (f Fan) WithIcon(icon string) Fan {
	f.Icon = &icon
	return f
}

func (f Fan) WithJSONAttributesTemplate(jsonAttributesTemplate string) Fan {
	f.JSONAttributesTemplate = &jsonAttributesTemplate
	return f
}

func (f Fan) WithJSONAttributesTopic(jsonAttributesTopic string) Fan {
	f.JSONAttributesTopic = &jsonAttributesTopic
	return f
}

func (f Fan) WithName(name string) Fan {
	f.Name = &name
	return f
}

func (f Fan) WithObjectID(objectID string) Fan {
	f.ObjectID = &objectID
	return f
}

func (f Fan) WithDefaultEntityID(defaultEntityID string) Fan {
	f.DefaultEntityID = &defaultEntityID
	return f
}

func (f Fan) WithUniqueID(uniqueID string) Fan {
	f.UniqueID = &uniqueID
	return f
}

func (f Fan) WithQoS(qos mqtt.QualityOfService) Fan {
	f.QoS = &qos
	return f
}

func (f Fan) WithRetain(retain bool) Fan {
	f.Retain = &retain
	return f
}

func (f Fan) WithPlatform(platform string) Fan {
	f.Platform = platform
	return f
}

func (f *Fan) fields() discovery.Fields {
	return append(discovery.Fields{
		discovery.Optional(discovery.FieldCommandTemplate, &f.CommandTemplate),
		discovery.Required(discovery.FieldCommandTopic, &f.CommandTopic),
		discovery.Optional(discovery.FieldDirectionCommandTemplate, &f.DirectionCommandTemplate),
		discovery.Optional(discovery.FieldDirectionCommandTopic, &f.DirectionCommandTopic),
		discovery.Optional(discovery.FieldDirectionStateTopic, &f.DirectionStateTopic),
		discovery.Optional(discovery.FieldDirectionValueTemplate, &f.DirectionValueTemplate),
		discovery.Optional(discovery.FieldOptimistic, &f.Optimistic),
		discovery.Optional(discovery.FieldOscillationCommandTemplate, &f.OscillationCommandTemplate),
		discovery.Optional(discovery.FieldOscillationCommandTopic, &f.OscillationCommandTopic),
		discovery.Optional(discovery.FieldOscillationStateTopic, &f.OscillationStateTopic),
		discovery.Optional(discovery.FieldOscillationValueTemplate, &f.OscillationValueTemplate),
		discovery.Optional(discovery.FieldPayloadOff, &f.PayloadOff),
		discovery.Optional(discovery.FieldPayloadOn, &f.PayloadOn),
		discovery.Optional(discovery.FieldPayloadOscillationOff, &f.PayloadOscillationOff),
		discovery.Optional(discovery.FieldPayloadOscillationOn, &f.PayloadOscillationOn),
		discovery.Optional(discovery.FieldPayloadResetPercentage, &f.PayloadResetPercentage),
		discovery.Optional(discovery.FieldPayloadResetPresetMode, &f.PayloadResetPresetMode),
		discovery.Optional(discovery.FieldPercentageCommandTemplate, &f.PercentageCommandTemplate),
		discovery.Optional(discovery.FieldPercentageCommandTopic, &f.PercentageCommandTopic),
		discovery.Optional(discovery.FieldPercentageStateTopic, &f.PercentageStateTopic),
		discovery.Optional(discovery.FieldPercentageValueTemplate, &f.PercentageValueTemplate),
		discovery.Optional(discovery.FieldPresetModeCommandTemplate, &f.PresetModeCommandTemplate),
		discovery.Optional(discovery.FieldPresetModeCommandTopic, &f.PresetModeCommandTopic),
		discovery.Optional(discovery.FieldPresetModeStateTopic, &f.PresetModeStateTopic),
		discovery.Optional(discovery.FieldPresetModeValueTemplate, &f.PresetModeValueTemplate),
		discovery.Slice(discovery.FieldPresetModes, &f.PresetModes),
		discovery.Optional(discovery.FieldSpeedRangeMax, &f.SpeedRangeMax),
		discovery.Optional(discovery.FieldSpeedRangeMin, &f.SpeedRangeMin),
		discovery.Optional(discovery.FieldStateTopic, &f.StateTopic),
		discovery.Optional(discovery.FieldStateValueTemplate, &f.StateValueTemplate),
		discovery.Optional(discovery.FieldTopicPrefix, &f.TopicPrefix),
		discovery.Required(discovery.FieldOrigin, &f.Origin),
		discovery.Required(discovery.FieldDevice, &f.Device),
		discovery.Optional(discovery.FieldEntityCategory, &f.EntityCategory),
		discovery.Optional(discovery.FieldEnabledByDefault, &f.EnabledByDefault),
		discovery.Optional(discovery.FieldEncoding, &f.Encoding),
		discovery.Optional(discovery.FieldEntityPicture, &f.EntityPicture),
		discovery.Optional(discovery.FieldIcon, &f.Icon),
		discovery.Optional(discovery.FieldJSONAttributesTemplate, &f.JSONAttributesTemplate),
		discovery.Optional(discovery.FieldJSONAttributesTopic, &f.JSONAttributesTopic),
		discovery.Optional(discovery.FieldName, &f.Name),
		discovery.Optional(discovery.FieldObjectID, &f.ObjectID),
		discovery.Optional(discovery.FieldDefaultEntityID, &f.DefaultEntityID),
		discovery.Optional(discovery.FieldUniqueID, &f.UniqueID),
		discovery.Optional(discovery.FieldQoS, &f.QoS),
		discovery.Optional(discovery.FieldRetain, &f.Retain),
		discovery.Required(discovery.FieldPlatform, &f.Platform),
	}, f.Availability.Fields()...)
}

func (f Fan) MarshalJSONTo(e *jsontext.Encoder) error {
	return f.fields().MarshalJSONTo(e)
}

func (f *Fan) UnmarshalJSONFrom(d *jsontext.Decoder) error {
	return f.fields().UnmarshalJSONFrom(d)
}
