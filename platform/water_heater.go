package platform

import (
	"encoding/json/jsontext"
	"net/url"

	"github.com/nlowe/hadiscovery/discovery"
	"github.com/nlowe/hadiscovery/hass"
	"github.com/nlowe/hadiscovery/mqtt"
)

// WaterHeater is the water_heater.mqtt integration.
//
// See https://www.home-assistant.io/integrations/water_heater.mqtt/
type WaterHeater struct {
	// A template with which the value received on CurrentTemperatureTopic will be rendered.
	CurrentTemperatureTemplate *string
	// The MQTT topic on which to listen for the current temperature.
	CurrentTemperatureTopic *string
	// Set the initial target temperature.
	Initial *float64
	// Maximum set point available.
	MaxTemperature *float64
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
	// A list of supported modes. Defaults to every hass.WaterHeaterMode.
	Modes []hass.WaterHeaterMode
	// Flag that defines if the entity works in optimistic mode. Defaults to true if no StateTopic is defined.
	Optimistic *bool
	// The payload that represents the off state.
	PayloadOff *string
	// The payload that represents the on state.
	PayloadOn *string
	// A template to render the value sent to the PowerCommandTopic with.
	PowerCommandTemplate *string
	// The MQTT topic to publish commands to change the power state.
	PowerCommandTopic *string
	// The desired precision for this device. Can be used to match your actual device's precision. Supported values are
	// 0.1, 0.5 and 1.0.
	Precision *float64
	// A template to render the value sent to the TemperatureCommandTopic with.
	TemperatureCommandTemplate *string
	// The MQTT topic to publish commands to change the target temperature.
	TemperatureCommandTopic *string
	// A template to render the value received on the TemperatureStateTopic with.
	TemperatureStateTemplate *string
	// The MQTT topic to subscribe for changes in the target temperature.
	TemperatureStateTopic *string
	// Defines the temperature unit of the device. Defaults to the unit system of Home Assistant.
	TemperatureUnit *hass.TemperatureUnit
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

// NewWaterHeater returns a WaterHeater with every optional field unset and Platform set to the DomainWaterHeater literal.
func NewWaterHeater() WaterHeater {
	return WaterHeater{Platform: string(DomainWaterHeater)}
}

func (wh WaterHeater) Domain() Domain {
	return DomainWaterHeater
}

func (WaterHeater) entity() {}

func (wh WaterHeater) WithCurrentTemperatureTemplate(currentTemperatureTemplate string) WaterHeater {
	wh.CurrentTemperatureTemplate = &currentTemperatureTemplate
	return wh
}

func (wh WaterHeater) WithCurrentTemperatureTopic(currentTemperatureTopic string) WaterHeater {
	wh.CurrentTemperatureTopic = &currentTemperatureTopic
	return wh
}

func (wh WaterHeater) WithInitial(initial float64) WaterHeater {
	wh.Initial = &initial
	return wh
}

func (wh WaterHeater) WithMaxTemperature(maxTemperature float64) WaterHeater {
	wh.MaxTemperature = &maxTemperature
	return wh
}

func (wh WaterHeater) WithMinTemperature(minTemperature float64) WaterHeater {
	wh.MinTemperature = &minTemperature
	return wh
}

func (wh WaterHeater) WithModeCommandTemplate(modeCommandTemplate string) WaterHeater {
	wh.ModeCommandTemplate = &modeCommandTemplate
	return wh
}

func (wh WaterHeater) WithModeCommandTopic(modeCommandTopic string) WaterHeater {
	wh.ModeCommandTopic = &modeCommandTopic
	return wh
}

func (wh WaterHeater) WithModeStateTemplate(modeStateTemplate string) WaterHeater {
	wh.ModeStateTemplate = &modeStateTemplate
	return wh
}

func (wh WaterHeater) WithModeStateTopic(modeStateTopic string) WaterHeater {
	wh.ModeStateTopic = &modeStateTopic
	return wh
}

func (wh WaterHeater) WithModes(modes ...hass.WaterHeaterMode) WaterHeater {
	wh.Modes = modes
	return wh
}

func (wh WaterHeater) WithOptimistic(optimistic bool) WaterHeater {
	wh.Optimistic = &optimistic
	return wh
}

func (wh WaterHeater) WithPayloadOff(payloadOff string) WaterHeater {
	wh.PayloadOff = &payloadOff
	return wh
}

func (wh WaterHeater) WithPayloadOn(payloadOn string) WaterHeater {
	wh.PayloadOn = &payloadOn
	return wh
}

func (wh WaterHeater) WithPowerCommandTemplate(powerCommandTemplate string) WaterHeater {
	wh.PowerCommandTemplate = &powerCommandTemplate
	return wh
}

func (wh WaterHeater) WithPowerCommandTopic(powerCommandTopic string) WaterHeater {
	wh.PowerCommandTopic = &powerCommandTopic
	return wh
}

func (wh WaterHeater) WithPrecision(precision float64) WaterHeater {
	wh.Precision = &precision
	return wh
}

func (wh WaterHeater) WithTemperatureCommandTemplate(temperatureCommandTemplate string) WaterHeater {
	wh.TemperatureCommandTemplate = &temperatureCommandTemplate
	return wh
}

func (wh WaterHeater) WithTemperatureCommandTopic(temperatureCommandTopic string) WaterHeater {
	wh.TemperatureCommandTopic = &temperatureCommandTopic
	return wh
}

func (wh WaterHeater) WithTemperatureStateTemplate(temperatureStateTemplate string) WaterHeater {
	wh.TemperatureStateTemplate = &temperatureStateTemplate
	return wh
}

func (wh WaterHeater) WithTemperatureStateTopic(temperatureStateTopic string) WaterHeater {
	wh.TemperatureStateTopic = &temperatureStateTopic
	return wh
}

func (wh WaterHeater) WithTemperatureUnit(temperatureUnit hass.TemperatureUnit) WaterHeater {
	wh.TemperatureUnit = &temperatureUnit
	return wh
}

func (wh WaterHeater) WithValueTemplate(valueTemplate string) WaterHeater {
	wh.ValueTemplate = &valueTemplate
	return wh
}

func (wh WaterHeater) WithTopicPrefix(topicPrefix string) WaterHeater {
	wh.TopicPrefix = &topicPrefix
	return wh
}

func (wh WaterHeater) WithOrigin(origin hass.Origin) WaterHeater {
	wh.Origin = origin
	return wh
}

func (wh WaterHeater) WithDevice(device hass.Device) WaterHeater {
	wh.Device = device
	return wh
}

func (wh WaterHeater) WithAvailability(availability hass.Availability) WaterHeater {
	wh.Availability = availability
	return wh
}

func (wh WaterHeater) WithEntityCategory(entityCategory hass.EntityCategory) WaterHeater {
	wh.EntityCategory = &entityCategory
	return wh
}

func (wh WaterHeater) WithEnabledByDefault(enabledByDefault bool) WaterHeater {
	wh.EnabledByDefault = &enabledByDefault
	return wh
}

func (wh WaterHeater) WithEncoding(encoding string) WaterHeater {
	wh.Encoding = &encoding
	return wh
}

func (wh WaterHeater) WithEntityPicture(entityPicture *url.URL) WaterHeater {
	wh.EntityPicture = entityPicture
	return wh
}

func (wh WaterHeater) WithIcon(icon string) WaterHeater {
	wh.Icon = &icon
	return wh
}

func (wh WaterHeater) WithJSONAttributesTemplate(jsonAttributesTemplate string) WaterHeater {
	wh.JSONAttributesTemplate = &jsonAttributesTemplate
	return wh
}

func (wh WaterHeater) WithJSONAttributesTopic(jsonAttributesTopic string) WaterHeater {
	wh.JSONAttributesTopic = &jsonAttributesTopic
	return wh
}

func (wh WaterHeater) WithName(name string) WaterHeater {
	wh.Name = &name
	return wh
}

func (wh WaterHeater) WithObjectID(objectID string) WaterHeater {
	wh.ObjectID = &objectID
	return wh
}

func (wh WaterHeater) WithDefaultEntityID(defaultEntityID string) WaterHeater {
	wh.DefaultEntityID = &defaultEntityID
	return wh
}

func (wh WaterHeater) WithUniqueID(uniqueID string) WaterHeater {
	wh.UniqueID = &uniqueID
	return wh
}

func (wh WaterHeater) WithQoS(qos mqtt.QualityOfService) WaterHeater {
	wh.QoS = &qos
	return wh
}

func (wh WaterHeater) WithRetain(retain bool) WaterHeater {
	wh.Retain = &retain
	return wh
}

func (wh WaterHeater) WithPlatform(platform string) WaterHeater {
	wh.Platform = platform
	return wh
}

func (wh *WaterHeater) fields() discovery.Fields {
	return append(discovery.Fields{
		discovery.Optional(discovery.FieldCurrentTemperatureTemplate, &wh.CurrentTemperatureTemplate),
		discovery.Optional(discovery.FieldCurrentTemperatureTopic, &wh.CurrentTemperatureTopic),
		discovery.Optional(discovery.FieldInitial, &wh.Initial),
		discovery.Optional(discovery.FieldMaxTemperature, &wh.MaxTemperature),
		discovery.Optional(discovery.FieldMinTemperature, &wh.MinTemperature),
		discovery.Optional(discovery.FieldModeCommandTemplate, &wh.ModeCommandTemplate),
		discovery.Optional(discovery.FieldModeCommandTopic, &wh.ModeCommandTopic),
		discovery.Optional(discovery.FieldModeStateTemplate, &wh.ModeStateTemplate),
		discovery.Optional(discovery.FieldModeStateTopic, &wh.ModeStateTopic),
		discovery.Slice(discovery.FieldModes, &wh.Modes),
		discovery.Optional(discovery.FieldOptimistic, &wh.Optimistic),
		discovery.Optional(discovery.FieldPayloadOff, &wh.PayloadOff),
		discovery.Optional(discovery.FieldPayloadOn, &wh.PayloadOn),
		discovery.Optional(discovery.FieldPowerCommandTemplate, &wh.PowerCommandTemplate),
		discovery.Optional(discovery.FieldPowerCommandTopic, &wh.PowerCommandTopic),
		discovery.Optional(discovery.FieldPrecision, &wh.Precision),
		discovery.Optional(discovery.FieldTemperatureCommandTemplate, &wh.TemperatureCommandTemplate),
		discovery.Optional(discovery.FieldTemperatureCommandTopic, &wh.TemperatureCommandTopic),
		discovery.Optional(discovery.FieldTemperatureStateTemplate, &wh.TemperatureStateTemplate),
		discovery.Optional(discovery.FieldTemperatureStateTopic, &wh.TemperatureStateTopic),
		discovery.Optional(discovery.FieldTemperatureUnit, &wh.TemperatureUnit),
		discovery.Optional(discovery.FieldValueTemplate, &wh.ValueTemplate),
		discovery.Optional(discovery.FieldTopicPrefix, &wh.TopicPrefix),
		discovery.Required(discovery.FieldOrigin, &wh.Origin),
		discovery.Required(discovery.FieldDevice, &wh.Device),
		discovery.Optional(discovery.FieldEntityCategory, &wh.EntityCategory),
		discovery.Optional(discovery.FieldEnabledByDefault, &wh.EnabledByDefault),
		discovery.Optional(discovery.FieldEncoding, &wh.Encoding),
		discovery.Optional(discovery.FieldEntityPicture, &wh.EntityPicture),
		discovery.Optional(discovery.FieldIcon, &wh.Icon),
		discovery.Optional(discovery.FieldJSONAttributesTemplate, &wh.JSONAttributesTemplate),
		discovery.Optional(discovery.FieldJSONAttributesTopic, &wh.JSONAttributesTopic),
		discovery.Optional(discovery.FieldName, &wh.Name),
		discovery.Optional(discovery.FieldObjectID, &wh.ObjectID),
		discovery.Optional(discovery.FieldDefaultEntityID, &wh.DefaultEntityID),
		discovery.Optional(discovery.FieldUniqueID, &wh.UniqueID),
		discovery.Optional(discovery.FieldQoS, &wh.QoS),
		discovery.Optional(discovery.FieldRetain, &wh.Retain),
		discovery.Required(discovery.FieldPlatform, &wh.Platform),
	}, wh.Availability.Fields()...)
}

func (wh WaterHeater) MarshalJSONTo(e *jsontext.Encoder) error {
	return wh.fields().MarshalJSONTo(e)
}

func (wh *WaterHeater) UnmarshalJSONFrom(d *jsontext.Decoder) error {
	return wh.fields().UnmarshalJSONFrom(d)
}
