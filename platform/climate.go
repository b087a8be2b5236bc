package platform

import (
	"encoding/json/jsontext"
	"net/url"

	"github.com/nlowe/hadiscovery/discovery"
	"github.com/nlowe/hadiscovery/hass"
	"github.com/nlowe/hadiscovery/mqtt"
)

// Climate is the climate.mqtt integration for HVAC devices. Every capability (mode, fan mode, presets, swing, target
// temperatures and humidity) has its own command and state topic pair. Capabilities without a command topic are not
// exposed in the UI.
//
// See https://www.home-assistant.io/integrations/climate.mqtt/
type Climate struct {
	// A template to render the value received on the ActionTopic with.
	ActionTemplate *string
	// The MQTT topic to subscribe for changes of the current action.
	ActionTopic *string
	// A template with which the value received on CurrentHumidityTopic will be rendered.
	CurrentHumidityTemplate *string
	// The MQTT topic on which to listen for the current humidity.
	CurrentHumidityTopic *string
	// A template with which the value received on CurrentTemperatureTopic will be rendered.
	CurrentTemperatureTemplate *string
	// The MQTT topic on which to listen for the current temperature.
	CurrentTemperatureTopic *string
	// A template to render the value sent to the FanModeCommandTopic with.
	FanModeCommandTemplate *string
	// The MQTT topic to publish commands to change the fan mode.
	FanModeCommandTopic *string
	// A template to render the value received on the FanModeStateTopic with.
	FanModeStateTemplate *string
	// The MQTT topic to subscribe for changes of the fan mode.
	FanModeStateTopic *string
	// A list of supported fan modes.
	FanModes []string
	// Set the initial target temperature.
	Initial *float64
	// The maximum target humidity percentage that can be set.
	MaxHumidity *float64
	// Maximum set point available.
	MaxTemperature *float64
	// The minimum target humidity percentage that can be set.
	MinHumidity *float64
	// Minimum set point available.
	MinTemperature *float64
	// A template to render the value sent to the ModeCommandTopic with.
	ModeCommandTemplate *string
	// The MQTT topic to publish commands to change the mode.
	ModeCommandTopic *string
	// A template to render the value received on the ModeStateTopic with.
	ModeStateTemplate *string
	// The MQTT topic to subscribe for changes of the mode.
	ModeStateTopic *string
	// A list of supported modes. Defaults to every hass.ClimateMode.
	Modes []hass.ClimateMode
	// Flag that defines if the climate works in optimistic mode.
	Optimistic *bool
	// The payload sent to turn off the device. Defaults to "OFF".
	PayloadOff *string
	// The payload sent to turn the device on. Defaults to "ON".
	PayloadOn *string
	// A template to render the value sent to the PowerCommandTopic with.
	PowerCommandTemplate *string
	// The MQTT topic to publish commands to change the power state.
	PowerCommandTopic *string
	// The desired precision for this device. Can be used to match your actual device's precision. Supported values are
	// 0.1, 0.5 and 1.0.
	Precision *float64
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
	// A template to render the value sent to the SwingHorizontalModeCommandTopic with.
	SwingHorizontalModeCommandTemplate *string
	// The MQTT topic to publish commands to change the horizontal swing mode.
	SwingHorizontalModeCommandTopic *string
	// A template to render the value received on the SwingHorizontalModeStateTopic with.
	SwingHorizontalModeStateTemplate *string
	// The MQTT topic to subscribe for changes of the horizontal swing mode.
	SwingHorizontalModeStateTopic *string
	// A list of supported horizontal swing modes.
	SwingHorizontalModes []string
	// A template to render the value sent to the SwingModeCommandTopic with.
	SwingModeCommandTemplate *string
	// The MQTT topic to publish commands to change the swing mode.
	SwingModeCommandTopic *string
	// A template to render the value received on the SwingModeStateTopic with.
	SwingModeStateTemplate *string
	// The MQTT topic to subscribe for changes of the swing mode.
	SwingModeStateTopic *string
	// A list of supported swing modes.
	SwingModes []string
	// Defines a template to generate the payload to send to TargetHumidityCommandTopic.
	TargetHumidityCommandTemplate *string
	// The MQTT topic to publish commands to change the target humidity.
	TargetHumidityCommandTopic *string
	// Defines a template to extract a value for the target humidity state.
	TargetHumidityStateTemplate *string
	// The MQTT topic subscribed to receive the target humidity.
	TargetHumidityStateTopic *string
	// A template to render the value sent to the TemperatureCommandTopic with.
	TemperatureCommandTemplate *string
	// The MQTT topic to publish commands to change the target temperature.
	TemperatureCommandTopic *string
	// A template to render the value sent to the TemperatureHighCommandTopic with.
	TemperatureHighCommandTemplate *string
	// The MQTT topic to publish commands to change the high target temperature.
	TemperatureHighCommandTopic *string
	// A template to render the value received on the TemperatureHighStateTopic with.
	TemperatureHighStateTemplate *string
	// The MQTT topic to subscribe for changes in the target high temperature.
	TemperatureHighStateTopic *string
	// A template to render the value sent to the TemperatureLowCommandTopic with.
	TemperatureLowCommandTemplate *string
	// The MQTT topic to publish commands to change the low target temperature.
	TemperatureLowCommandTopic *string
	// A template to render the value received on the TemperatureLowStateTopic with.
	TemperatureLowStateTemplate *string
	// The MQTT topic to subscribe for changes in the target low temperature.
	TemperatureLowStateTopic *string
	// A template to render the value received on the TemperatureStateTopic with.
	TemperatureStateTemplate *string
	// The MQTT topic to subscribe for changes in the target temperature.
	TemperatureStateTopic *string
	// Defines the temperature unit of the device. Defaults to the unit system of Home Assistant.
	TemperatureUnit *hass.TemperatureUnit
	// Step size for temperature set point.
	TemperatureStep *float64
	// Default template to render the payloads on all *StateTopic fields with.
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

// NewClimate returns a Climate with every optional field unset and Platform set to the DomainClimate literal.
func NewClimate() Climate {
	return Climate{Platform: string(DomainClimate)}
}

func (c Climate) Domain() Domain {
	return DomainClimate
}

func (Climate) entity() {}

func (c Climate) WithActionTemplate(actionTemplate string) Climate {
	c.ActionTemplate = &actionTemplate
	return c
}

func (c Climate) WithActionTopic(actionTopic string) Climate {
	c.ActionTopic = &actionTopic
	return c
}

func (c Climate) WithCurrentHumidityTemplate(currentHumidityTemplate string) Climate {
	c.CurrentHumidityTemplate = &currentHumidityTemplate
	return c
}

func (c Climate) WithCurrentHumidityTopic(currentHumidityTopic string) Climate {
	c.CurrentHumidityTopic = &currentHumidityTopic
	return c
}

func (c Climate) WithCurrentTemperatureTemplate(currentTemperatureTemplate string) Climate {
	c.CurrentTemperatureTemplate = &currentTemperatureTemplate
	return c
}

func (c Climate) WithCurrentTemperatureTopic(currentTemperatureTopic string) Climate {
	c.CurrentTemperatureTopic = &currentTemperatureTopic
	return c
}

func (c Climate) WithFanModeCommandTemplate(fanModeCommandTemplate string) Climate {
	c.FanModeCommandTemplate = &fanModeCommandTemplate
	return c
}

func (c Climate) WithFanModeCommandTopic(fanModeCommandTopic string) Climate {
	c.FanModeCommandTopic = &fanModeCommandTopic
	return c
}

func (c Climate) WithFanModeStateTemplate(fanModeStateTemplate string) Climate {
	c.FanModeStateTemplate = &fanModeStateTemplate
	return c
}

func (c Climate) WithFanModeStateTopic(fanModeStateTopic string) Climate {
	c.FanModeStateTopic = &fanModeStateTopic
	return c
}

func (c Climate) WithFanModes(fanModes ...string) Climate {
	c.FanModes = fanModes
	return c
}

func (c Climate) WithInitial(initial float64) Climate {
	c.Initial = &initial
	return c
}

func (c Climate) WithMaxHumidity(maxHumidity float64) Climate {
	c.MaxHumidity = &maxHumidity
	return c
}

func (c Climate) WithMaxTemperature(maxTemperature float64) Climate {
	c.MaxTemperature = &maxTemperature
	return c
}

func (c Climate) WithMinHumidity(minHumidity float64) Climate {
	c.MinHumidity = &minHumidity
	return c
}

func (c Climate) WithMinTemperature(minTemperature float64) Climate {
	c.MinTemperature = &minTemperature
	return c
}

func (c Climate) WithModeCommandTemplate(modeCommandTemplate string) Climate {
	c.ModeCommandTemplate = &modeCommandTemplate
	return c
}

func (c Climate) WithModeCommandTopic(modeCommandTopic string) Climate {
	c.ModeCommandTopic = &modeCommandTopic
	return c
}

func (c Climate) WithModeStateTemplate(modeStateTemplate string) Climate {
	c.ModeStateTemplate = &modeStateTemplate
	return c
}

func (c Climate) WithModeStateTopic(modeStateTopic string) Climate {
	c.ModeStateTopic = &modeStateTopic
	return c
}

func (c Climate) WithModes(modes ...hass.ClimateMode) Climate {
	c.Modes = modes
	return c
}

func (c Climate) WithOptimistic(optimistic bool) Climate {
	c.Optimistic = &optimistic
	return c
}

func (c Climate) WithPayloadOff(payloadOff string) Climate {
	c.PayloadOff = &payloadOff
	return c
}

func (c Climate) WithPayloadOn(payloadOn string) Climate {
	c.PayloadOn = &payloadOn
	return c
}

func (c Climate) WithPowerCommandTemplate(powerCommandTemplate string) Climate {
	c.PowerCommandTemplate = &powerCommandTemplate
	return c
}

func (c Climate) WithPowerCommandTopic(powerCommandTopic string) Climate {
	c.PowerCommandTopic = &powerCommandTopic
	return c
}

func (c Climate) WithPrecision(precision float64) Climate {
	c.Precision = &precision
	return c
}

func (c Climate) WithPresetModeCommandTemplate(presetModeCommandTemplate string) Climate {
	c.PresetModeCommandTemplate = &presetModeCommandTemplate
	return c
}

func (c Climate) WithPresetModeCommandTopic(presetModeCommandTopic string) Climate {
	c.PresetModeCommandTopic = &presetModeCommandTopic
	return c
}

func (c Climate) WithPresetModeStateTopic(presetModeStateTopic string) Climate {
	c.PresetModeStateTopic = &presetModeStateTopic
	return c
}

func (c Climate) WithPresetModeValueTemplate(presetModeValueTemplate string) Climate {
	c.PresetModeValueTemplate = &presetModeValueTemplate
	return c
}

func (c Climate) WithPresetModes(presetModes ...string) Climate {
	c.PresetModes = presetModes
	return c
}

func (c Climate) WithSwingHorizontalModeCommandTemplate(swingHorizontalModeCommandTemplate string) Climate {
	c.SwingHorizontalModeCommandTemplate = &swingHorizontalModeCommandTemplate
	return c
}

func (c Climate) WithSwingHorizontalModeCommandTopic(swingHorizontalModeCommandTopic string) Climate {
	c.SwingHorizontalModeCommandTopic = &swingHorizontalModeCommandTopic
	return c
}

func (c Climate) WithSwingHorizontalModeStateTemplate(swingHorizontalModeStateTemplate string) Climate {
	c.SwingHorizontalModeStateTemplate = &swingHorizontalModeStateTemplate
	return c
}

func (c Climate) WithSwingHorizontalModeStateTopic(swingHorizontalModeStateTopic string) Climate {
	c.SwingHorizontalModeStateTopic = &swingHorizontalModeStateTopic
	return c
}

func (c Climate) WithSwingHorizontalModes(swingHorizontalModes ...string) Climate {
	c.SwingHorizontalModes = swingHorizontalModes
	return c
}

func (c Climate) WithSwingModeCommandTemplate(swingModeCommandTemplate string) Climate {
	c.SwingModeCommandTemplate = &swingModeCommandTemplate
	return c
}

func (c Climate) WithSwingModeCommandTopic(swingModeCommandTopic string) Climate {
	c.SwingModeCommandTopic = &swingModeCommandTopic
	return c
}

func (c Climate) WithSwingModeStateTemplate(swingModeStateTemplate string) Climate {
	c.SwingModeStateTemplate = &swingModeStateTemplate
	return c
}

func (c Climate) WithSwingModeStateTopic(swingModeStateTopic string) Climate {
	c.SwingModeStateTopic = &swingModeStateTopic
	return c
}

func (c Climate) WithSwingModes(swingModes ...string) Climate {
	c.SwingModes = swingModes
	return c
}

func (c Climate) WithTargetHumidityCommandTemplate(targetHumidityCommandTemplate string) Climate {
	c.TargetHumidityCommandTemplate = &targetHumidityCommandTemplate
	return c
}

func (c Climate) WithTargetHumidityCommandTopic(targetHumidityCommandTopic string) Climate {
	c.TargetHumidityCommandTopic = &targetHumidityCommandTopic
	return c
}

func (c Climate) WithTargetHumidityStateTemplate(targetHumidityStateTemplate string) Climate {
	c.TargetHumidityStateTemplate = &targetHumidityStateTemplate
	return c
}

func (c Climate) WithTargetHumidityStateTopic(targetHumidityStateTopic string) Climate {
	c.TargetHumidityStateTopic = &targetHumidityStateTopic
	return c
}

func (c Climate) WithTemperatureCommandTemplate(temperatureCommandTemplate string) Climate {
	c.TemperatureCommandTemplate = &temperatureCommandTemplate
	return c
}

func (c Climate) WithTemperatureCommandTopic(temperatureCommandTopic string) Climate {
	c.TemperatureCommandTopic = &temperatureCommandTopic
	return c
}

func (c Climate) WithTemperatureHighCommandTemplate(temperatureHighCommandTemplate string) Climate {
	c.TemperatureHighCommandTemplate = &temperatureHighCommandTemplate
	return c
}

func (c Climate) WithTemperatureHighCommandTopic(temperatureHighCommandTopic string) Climate {
	c.TemperatureHighCommandTopic = &temperatureHighCommandTopic
	return c
}

func (c Climate) WithTemperatureHighStateTemplate(temperatureHighStateTemplate string) Climate {
	c.TemperatureHighStateTemplate = &temperatureHighStateTemplate
	return c
}

func (c Climate) WithTemperatureHighStateTopic(temperatureHighStateTopic string) Climate {
	c.TemperatureHighStateTopic = &temperatureHighStateTopic
	return c
}

func (c Climate) WithTemperatureLowCommandTemplate(temperatureLowCommandTemplate string) Climate {
	c.TemperatureLowCommandTemplate = &temperatureLowCommandTemplate
	return c
}

func (c Climate) WithTemperatureLowCommandTopic(temperatureLowCommandTopic string) Climate {
	c.TemperatureLowCommandTopic = &temperatureLowCommandTopic
	return c
}

func (c Climate) WithTemperatureLowStateTemplate(temperatureLowStateTemplate string) Climate {
	c.TemperatureLowStateTemplate = &temperatureLowStateTemplate
	return c
}

func (c Climate) WithTemperatureLowStateTopic(temperatureLowStateTopic string) Climate {
	c.TemperatureLowStateTopic = &temperatureLowStateTopic
	return c
}

func (c Climate) WithTemperatureStateTemplate(temperatureStateTemplate string) Climate {
	c.TemperatureStateTemplate = &temperatureStateTemplate
	return c
}

func (c Climate) WithTemperatureStateTopic(temperatureStateTopic string) Climate {
	c.TemperatureStateTopic = &temperatureStateTopic
	return c
}

func (c Climate) WithTemperatureUnit(temperatureUnit hass.TemperatureUnit) Climate {
	c.TemperatureUnit = &temperatureUnit
	return c
}

func (c Climate) WithTemperatureStep(temperatureStep float64) Climate {
	c.TemperatureStep = &temperatureStep
	return c
}

func (c Climate) WithValueTemplate(valueTemplate string) Climate {
	c.ValueTemplate = &valueTemplate
	return c
}

func (c Climate) WithTopicPrefix(topicPrefix string) Climate {
	c.TopicPrefix = &topicPrefix
	return c
}

func (c Climate) WithOrigin(origin hass.Origin) Climate {
	c.Origin = origin
	return c
}

func (c Climate) WithDevice(device hass.Device) Climate {
	c.Device = device
	return c
}

func (c Climate) WithAvailability(availability hass.Availability) Climate {
	c.Availability = availability
	return c
}

func (c Climate) WithEntityCategory(entityCategory hass.EntityCategory) Climate {
	c.EntityCategory = &entityCategory
	return c
}

func (c Climate) WithEnabledByDefault(enabledByDefault bool) Climate {
	c.EnabledByDefault = &enabledByDefault
	return c
}

func (c Climate) WithEncoding(encoding string) Climate {
	c.Encoding = &encoding
	return c
}

func (c Climate) WithEntityPicture(entityPicture *url.URL) Climate {
	c.EntityPicture = entityPicture
	return c
}

func (c Climate) WithIcon(icon string) Climate {
	c.Icon = &icon
	return c
}

func (c Climate) WithJSONAttributesTemplate(jsonAttributesTemplate string) Climate {
	c.JSONAttributesTemplate = &jsonAttributesTemplate
	return c
}

func (c Climate) WithJSONAttributesTopic(jsonAttributesTopic string) Climate {
	c.JSONAttributesTopic = &jsonAttributesTopic
	return c
}

func (c Climate) WithName(name string) Climate {
	c.Name = &name
	return c
}

func (c Climate) WithObjectID(objectID string) Climate {
	c.ObjectID = &objectID
	return c
}

func (c Climate) WithDefaultEntityID(defaultEntityID string) Climate {
	c.DefaultEntityID = &defaultEntityID
	return c
}

func (c Climate) WithUniqueID(uniqueID string) Climate {
	c.UniqueID = &uniqueID
	return c
}

func (c Climate) WithQoS(qos mqtt.QualityOfService) Climate {
	c.QoS = &qos
	return c
}

func (c Climate) WithRetain(retain bool) Climate {
	c.Retain = &retain
	return c
}

func (c Climate) WithPlatform(platform string) Climate {
	c.Platform = platform
	return c
}

func (c *Climate) fields() discovery.Fields {
	return append(discovery.Fields{
		discovery.Optional(discovery.FieldActionTemplate, &c.ActionTemplate),
		discovery.Optional(discovery.FieldActionTopic, &c.ActionTopic),
		discovery.Optional(discovery.FieldCurrentHumidityTemplate, &c.CurrentHumidityTemplate),
		discovery.Optional(discovery.FieldCurrentHumidityTopic, &c.CurrentHumidityTopic),
		discovery.Optional(discovery.FieldCurrentTemperatureTemplate, &c.CurrentTemperatureTemplate),
		discovery.Optional(discovery.FieldCurrentTemperatureTopic, &c.CurrentTemperatureTopic),
		discovery.Optional(discovery.FieldFanModeCommandTemplate, &c.FanModeCommandTemplate),
		discovery.Optional(discovery.FieldFanModeCommandTopic, &c.FanModeCommandTopic),
		discovery.Optional(discovery.FieldFanModeStateTemplate, &c.FanModeStateTemplate),
		discovery.Optional(discovery.FieldFanModeStateTopic, &c.FanModeStateTopic),
		discovery.Slice(discovery.FieldFanModes, &c.FanModes),
		discovery.Optional(discovery.FieldInitial, &c.Initial),
		discovery.Optional(discovery.FieldMaxHumidity, &c.MaxHumidity),
		discovery.Optional(discovery.FieldMaxTemperature, &c.MaxTemperature),
		discovery.Optional(discovery.FieldMinHumidity, &c.MinHumidity),
		discovery.Optional(discovery.FieldMinTemperature, &c.MinTemperature),
		discovery.Optional(discovery.FieldModeCommandTemplate, &c.ModeCommandTemplate),
		discovery.Optional(discovery.FieldModeCommandTopic, &c.ModeCommandTopic),
		discovery.Optional(discovery.FieldModeStateTemplate, &c.ModeStateTemplate),
		discovery.Optional(discovery.FieldModeStateTopic, &c.ModeStateTopic),
		discovery.Slice(discovery.FieldModes, &c.Modes),
		discovery.Optional(discovery.FieldOptimistic, &c.Optimistic),
		discovery.Optional(discovery.FieldPayloadOff, &c.PayloadOff),
		discovery.Optional(discovery.FieldPayloadOn, &c.PayloadOn),
		discovery.Optional(discovery.FieldPowerCommandTemplate, &c.PowerCommandTemplate),
		discovery.Optional(discovery.FieldPowerCommandTopic, &c.PowerCommandTopic),
		discovery.Optional(discovery.FieldPrecision, &c.Precision),
		discovery.Optional(discovery.FieldPresetModeCommandTemplate, &c.PresetModeCommandTemplate),
		discovery.Optional(discovery.FieldPresetModeCommandTopic, &c.PresetModeCommandTopic),
		discovery.Optional(discovery.FieldPresetModeStateTopic, &c.PresetModeStateTopic),
		discovery.Optional(discovery.FieldPresetModeValueTemplate, &c.PresetModeValueTemplate),
		discovery.Slice(discovery.FieldPresetModes, &c.PresetModes),
		discovery.Optional(discovery.FieldSwingHorizontalModeCommandTemplate, &c.SwingHorizontalModeCommandTemplate),
		discovery.Optional(discovery.FieldSwingHorizontalModeCommandTopic, &c.SwingHorizontalModeCommandTopic),
		discovery.Optional(discovery.FieldSwingHorizontalModeStateTemplate, &c.SwingHorizontalModeStateTemplate),
		discovery.Optional(discovery.FieldSwingHorizontalModeStateTopic, &c.SwingHorizontalModeStateTopic),
		discovery.Slice(discovery.FieldSwingHorizontalModes, &c.SwingHorizontalModes),
		discovery.Optional(discovery.FieldSwingModeCommandTemplate, &c.SwingModeCommandTemplate),
		discovery.Optional(discovery.FieldSwingModeCommandTopic, &c.SwingModeCommandTopic),
		discovery.Optional(discovery.FieldSwingModeStateTemplate, &c.SwingModeStateTemplate),
		discovery.Optional(discovery.FieldSwingModeStateTopic, &c.SwingModeStateTopic),
		discovery.Slice(discovery.FieldSwingModes, &c.SwingModes),
		discovery.Optional(discovery.FieldTargetHumidityCommandTemplate, &c.TargetHumidityCommandTemplate),
		discovery.Optional(discovery.FieldTargetHumidityCommandTopic, &c.TargetHumidityCommandTopic),
		discovery.Optional(discovery.FieldTargetHumidityStateTemplate, &c.TargetHumidityStateTemplate),
		discovery.Optional(discovery.FieldTargetHumidityStateTopic, &c.TargetHumidityStateTopic),
		discovery.Optional(discovery.FieldTemperatureCommandTemplate, &c.TemperatureCommandTemplate),
		discovery.Optional(discovery.FieldTemperatureCommandTopic, &c.TemperatureCommandTopic),
		discovery.Optional(discovery.FieldTemperatureHighCommandTemplate, &c.TemperatureHighCommandTemplate),
		discovery.Optional(discovery.FieldTemperatureHighCommandTopic, &c.TemperatureHighCommandTopic),
		discovery.Optional(discovery.FieldTemperatureHighStateTemplate, &c.TemperatureHighStateTemplate),
		discovery.Optional(discovery.FieldTemperatureHighStateTopic, &c.TemperatureHighStateTopic),
		discovery.Optional(discovery.FieldTemperatureLowCommandTemplate, &c.TemperatureLowCommandTemplate),
		discovery.Optional(discovery.FieldTemperatureLowCommandTopic, &c.TemperatureLowCommandTopic),
		discovery.Optional(discovery.FieldTemperatureLowStateTemplate, &c.TemperatureLowStateTemplate),
		discovery.Optional(discovery.FieldTemperatureLowStateTopic, &c.TemperatureLowStateTopic),
		discovery.Optional(discovery.FieldTemperatureStateTemplate, &c.TemperatureStateTemplate),
		discovery.Optional(discovery.FieldTemperatureStateTopic, &c.TemperatureStateTopic),
		discovery.Optional(discovery.FieldTemperatureUnit, &c.TemperatureUnit),
		discovery.Optional(discovery.FieldTemperatureStep, &c.TemperatureStep),
		discovery.Optional(discovery.FieldValueTemplate, &c.ValueTemplate),
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
		discovery.Optional(discovery.FieldRetain, &c.Retain),
		discovery.Required(discovery.FieldPlatform, &c.Platform),
	}, c.Availability.Fields()...)
}

func (c Climate) MarshalJSONTo(e *jsontext.Encoder) error {
	return c.fields().MarshalJSONTo(e)
}

func (c *Climate) UnmarshalJSONFrom(d *jsontext.Decoder) error {
	return c.fields().UnmarshalJSONFrom(d)
}
