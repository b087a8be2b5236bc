package platform

import (
	"encoding/json/jsontext"
	"net/url"

	"github.com/nlowe/hadiscovery/discovery"
	"github.com/nlowe/hadiscovery/hass"
	"github.com/nlowe/hadiscovery/mqtt"
)

// Light is the light.mqtt integration. Schema selects how the light is driven: the basic schema uses one topic per
// capability, the json schema sends a single JSON document to CommandTopic (enabled with Brightness, Effect, Flash and
// Transition), and the template schema renders commands with CommandOnTemplate and CommandOffTemplate. Fields that do
// not apply to the selected schema are sent anyway if set; Home Assistant rejects them.
//
// See https://www.home-assistant.io/integrations/light.mqtt/
type Light struct {
	// Defines a template to compose message which will be sent to BrightnessCommandTopic.
	BrightnessCommandTemplate *string
	// The MQTT topic to publish commands to change the light's brightness.
	BrightnessCommandTopic *string
	// Defines the maximum brightness value (i.e., 100%) of the MQTT device.
	BrightnessScale *int
	// The MQTT topic subscribed to receive brightness state updates.
	BrightnessStateTopic *string
	// Defines a template to extract the brightness value.
	BrightnessValueTemplate *string
	// The MQTT topic subscribed to receive color mode updates.
	ColorModeStateTopic *string
	// Defines a template to extract the color mode.
	ColorModeValueTemplate *string
	// Defines a template to compose message which will be sent to ColorTemperatureCommandTopic.
	ColorTemperatureCommandTemplate *string
	// The MQTT topic to publish commands to change the light's color temperature state.
	ColorTemperatureCommandTopic *string
	// When set, color temperature commands and states are in Kelvin instead of mireds.
	ColorTemperatureInKelvin *bool
	// The MQTT topic subscribed to receive color temperature state updates.
	ColorTemperatureStateTopic *string
	// Defines a template to extract the color temperature value.
	ColorTemperatureValueTemplate *string
	// The MQTT topic to publish commands to change the switch state. Required.
	CommandTopic string
	// Defines a template to compose message which will be sent to EffectCommandTopic.
	EffectCommandTemplate *string
	// The MQTT topic to publish commands to change the light's effect state.
	EffectCommandTopic *string
	// The list of effects the light supports.
	EffectList []string
	// The MQTT topic subscribed to receive effect state updates.
	EffectStateTopic *string
	// Defines a template to extract the effect value.
	EffectValueTemplate *string
	// Defines a template to compose message which will be sent to HueSatCommandTopic.
	HueSatCommandTemplate *string
	// The MQTT topic to publish commands to change the light's color state in HS format (Hue Saturation).
	HueSatCommandTopic *string
	// The MQTT topic subscribed to receive color state updates in HS format.
	HueSatStateTopic *string
	// Defines a template to extract the HS value.
	HueSatValueTemplate *string
	// The maximum color temperature in Kelvin.
	MaxKelvin *int
	// The maximum color temperature in mireds.
	MaxMireds *int
	// The minimum color temperature in Kelvin.
	MinKelvin *int
	// The minimum color temperature in mireds.
	MinMireds *int
	// Defines when the PayloadOn is sent.
	OnCommandType *hass.OnCommandType
	// Flag that defines if the entity works in optimistic mode. Defaults to true if no StateTopic is defined.
	Optimistic *bool
	// The payload that represents the off state. Defaults to "OFF".
	PayloadOff *string
	// The payload that represents the on state. Defaults to "ON".
	PayloadOn *string
	// Defines a template to compose message which will be sent to RGBCommandTopic.
	RGBCommandTemplate *string
	// The MQTT topic to publish commands to change the light's RGB state.
	RGBCommandTopic *string
	// The MQTT topic subscribed to receive RGB state updates.
	RGBStateTopic *string
	// Defines a template to extract the RGB value.
	RGBValueTemplate *string
	// Defines a template to compose message which will be sent to RGBWCommandTopic.
	RGBWCommandTemplate *string
	// The MQTT topic to publish commands to change the light's RGBW state.
	RGBWCommandTopic *string
	// The MQTT topic subscribed to receive RGBW state updates.
	RGBWStateTopic *string
	// Defines a template to extract the RGBW value.
	RGBWValueTemplate *string
	// Defines a template to compose message which will be sent to RGBWWCommandTopic.
	RGBWWCommandTemplate *string
	// The MQTT topic to publish commands to change the light's RGBWW state.
	RGBWWCommandTopic *string
	// The MQTT topic subscribed to receive RGBWW state updates.
	RGBWWStateTopic *string
	// Defines a template to extract the RGBWW value.
	RGBWWValueTemplate *string
	// The schema to use. Defaults to the basic schema.
	Schema *hass.LightSchema
	// The MQTT topic subscribed to receive state updates.
	StateTopic *string
	// Defines a template to extract the state value. The template should return the values defined by PayloadOn (defaults
	// to "ON") and PayloadOff (defaults to "OFF") settings, or "None".
	StateValueTemplate *string
	// A list of color modes supported by the light.
	SupportedColorModes []hass.ColorMode
	// The MQTT topic to publish commands to change the light to white mode with a given brightness.
	WhiteCommandTopic *string
	// Defines the maximum white level (i.e., 100%) of the MQTT device.
	WhiteScale *int
	// Defines a template to compose message which will be sent to XYCommandTopic.
	XYCommandTemplate *string
	// The MQTT topic to publish commands to change the light's XY state.
	XYCommandTopic *string
	// The MQTT topic subscribed to receive XY state updates.
	XYStateTopic *string
	// Defines a template to extract the XY value.
	XYValueTemplate *string
	// The duration, in seconds, of a "long" flash.
	FlashTimeLong *int
	// The duration, in seconds, of a "short" flash.
	FlashTimeShort *int
	// Flag that defines if the light supports brightness in its JSON payload.
	Brightness *bool
	// Flag that defines if the light supports effects in its JSON payload.
	Effect *bool
	// Flag that defines if the light supports flash in its JSON payload.
	Flash *bool
	// Flag that defines if the light supports transitions in its JSON payload.
	Transition *bool
	// The template for on state changes. Template schema only.
	CommandOnTemplate *string
	// The template for off state changes. Template schema only.
	CommandOffTemplate *string
	// Template to extract state from the state payload value.
	StateTemplate *string
	// Template to extract brightness from the state payload value.
	BrightnessTemplate *string
	// Template to extract red color from the state payload value.
	RedTemplate *string
	// Template to extract green color from the state payload value.
	GreenTemplate *string
	// Template to extract blue color from the state payload value.
	BlueTemplate *string
	// Template to extract color temperature from the state payload value.
	ColorTemperatureTemplate *string
	// Template to extract effect from the state payload value.
	EffectTemplate *string

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

// NewLight returns a Light with every optional field unset and Platform set to the DomainLight literal.
func NewLight() Light {
	return Light{Platform: string(DomainLight)}
}

func (l Light) Domain() Domain {
	return DomainLight
}

func (Light) entity() {}

func (l Light) WithBrightnessCommandTemplate(brightnessCommandTemplate string) Light {
	l.BrightnessCommandTemplate = &brightnessCommandTemplate
	return l
}

func (l Light) WithBrightnessCommandTopic(brightnessCommandTopic string) Light {
	l.BrightnessCommandTopic = &brightnessCommandTopic
	return l
}

func (l Light) WithBrightnessScale(brightnessScale int) Light {
	l.BrightnessScale = &brightnessScale
	return l
}

func (l Light) WithBrightnessStateTopic(brightnessStateTopic string) Light {
	l.BrightnessStateTopic = &brightnessStateTopic
	return l
}

func (l Light) WithBrightnessValueTemplate(brightnessValueTemplate string) Light {
	l.BrightnessValueTemplate = &brightnessValueTemplate
	return l
}

func (l Light) WithColorModeStateTopic(colorModeStateTopic string) Light {
	l.ColorModeStateTopic = &colorModeStateTopic
	return l
}

func (l Light) WithColorModeValueTemplate(colorModeValueTemplate string) Light {
	l.ColorModeValueTemplate = &colorModeValueTemplate
	return l
}

func (l Light) WithColorTemperatureCommandTemplate(colorTemperatureCommandTemplate string) Light {
	l.ColorTemperatureCommandTemplate = &colorTemperatureCommandTemplate
	return l
}

func (l Light) WithColorTemperatureCommandTopic(colorTemperatureCommandTopic string) Light {
	l.ColorTemperatureCommandTopic = &colorTemperatureCommandTopic
	return l
}

func (l Light) WithColorTemperatureInKelvin(colorTemperatureInKelvin bool) Light {
	l.ColorTemperatureInKelvin = &colorTemperatureInKelvin
	return l
}

func (l Light) WithColorTemperatureStateTopic(colorTemperatureStateTopic string) Light {
	l.ColorTemperatureStateTopic = &colorTemperatureStateTopic
	return l
}

func (l Light) WithColorTemperatureValueTemplate(colorTemperatureValueTemplate string) Light {
	l.ColorTemperatureValueTemplate = &colorTemperatureValueTemplate
	return l
}

func (l Light) WithCommandTopic(commandTopic string) Light {
	l.CommandTopic = commandTopic
	return l
}

func (l Light) WithEffectCommandTemplate(effectCommandTemplate string) Light {
	l.EffectCommandTemplate = &effectCommandTemplate
	return l
}

func (l Light) WithEffectCommandTopic(effectCommandTopic string) Light {
	l.EffectCommandTopic = &effectCommandTopic
	return l
}

func (l Light) WithEffectList(effectList ...string) Light {
	l.EffectList = effectList
	return l
}

func (l Light) WithEffectStateTopic(effectStateTopic string) Light {
	l.EffectStateTopic = &effectStateTopic
	return l
}

func (l Light) WithEffectValueTemplate(effectValueTemplate string) Light {
	l.EffectValueTemplate = &effectValueTemplate
	return l
}

func (l Light) WithHueSatCommandTemplate(hueSatCommandTemplate string) Light {
	l.HueSatCommandTemplate = &hueSatCommandTemplate
	return l
}

func (l Light) WithHueSatCommandTopic(hueSatCommandTopic string) Light {
	l.HueSatCommandTopic = &hueSatCommandTopic
	return l
}

func (l Light) WithHueSatStateTopic(hueSatStateTopic string) Light {
	l.HueSatStateTopic = &hueSatStateTopic
	return l
}

func (l Light) WithHueSatValueTemplate(hueSatValueTemplate string) Light {
	l.HueSatValueTemplate = &hueSatValueTemplate
	return l
}

func (l Light) WithMaxKelvin(maxKelvin int) Light {
	l.MaxKelvin = &maxKelvin
	return l
}

func (l Light) WithMaxMireds(maxMireds int) Light {
	l.MaxMireds = &maxMireds
	return l
}

func (l Light) WithMinKelvin(minKelvin int) Light {
	l.MinKelvin = &minKelvin
	return l
}

func (l Light) WithMinMireds(minMireds int) Light {
	l.MinMireds = &minMireds
	return l
}

func (l Light) WithOnCommandType(onCommandType hass.OnCommandType) Light {
	l.OnCommandType = &onCommandType
	return l
}

func (l Light) WithOptimistic(optimistic bool) Light {
	l.Optimistic = &optimistic
	return l
}

func (l Light) WithPayloadOff(payloadOff string) Light {
	l.PayloadOff = &payloadOff
	return l
}

func (l Light) WithPayloadOn(payloadOn string) Light {
	l.PayloadOn = &payloadOn
	return l
}

func (l Light) WithRGBCommandTemplate(rgbCommandTemplate string) Light {
	l.RGBCommandTemplate = &rgbCommandTemplate
	return l
}

func (l Light) WithRGBCommandTopic(rgbCommandTopic string) Light {
	l.RGBCommandTopic = &rgbCommandTopic
	return l
}

func (l Light) WithRGBStateTopic(rgbStateTopic string) Light {
	l.RGBStateTopic = &rgbStateTopic
	return l
}

func (l Light) WithRGBValueTemplate(rgbValueTemplate string) Light {
	l.RGBValueTemplate = &rgbValueTemplate
	return l
}

func (l Light) WithRGBWCommandTemplate(rgbwCommandTemplate string) Light {
	l.RGBWCommandTemplate = &rgbwCommandTemplate
	return l
}

func (l Light) WithRGBWCommandTopic(rgbwCommandTopic string) Light {
	l.RGBWCommandTopic = &rgbwCommandTopic
	return l
}

func (l Light) WithRGBWStateTopic(rgbwStateTopic string) Light {
	l.RGBWStateTopic = &rgbwStateTopic
	return l
}

func (l Light) WithRGBWValueTemplate(rgbwValueTemplate string) Light {
	l.RGBWValueTemplate = &rgbwValueTemplate
	return l
}

func (l Light) WithRGBWWCommandTemplate(rgbwwCommandTemplate string) Light {
	l.RGBWWCommandTemplate = &rgbwwCommandTemplate
	return l
}

func (l Light) WithRGBWWCommandTopic(rgbwwCommandTopic string) Light {
	l.RGBWWCommandTopic = &rgbwwCommandTopic
	return l
}

func (l Light) WithRGBWWStateTopic(rgbwwStateTopic string) Light {
	l.RGBWWStateTopic = &rgbwwStateTopic
	return l
}

func (l Light) WithRGBWWValueTemplate(rgbwwValueTemplate string) Light {
	l.RGBWWValueTemplate = &rgbwwValueTemplate
	return l
}

func (l Light) WithSchema(schema hass.LightSchema) Light {
	l.Schema = &schema
	return l
}

func (l Light) WithStateTopic(stateTopic string) Light {
	l.StateTopic = &stateTopic
	return l
}

func (l Light) WithStateValueTemplate(stateValueTemplate string) Light {
	l.StateValueTemplate = &stateValueTemplate
	return l
}

func (l Light) WithSupportedColorModes(supportedColorModes ...hass.ColorMode) Light {
	l.SupportedColorModes = supportedColorModes
	return l
}

func (l Light) WithWhiteCommandTopic(whiteCommandTopic string) Light {
	l.WhiteCommandTopic = &whiteCommandTopic
	return l
}

func (l Light) WithWhiteScale(whiteScale int) Light {
	l.WhiteScale = &whiteScale
	return l
}

func (l Light) WithXYCommandTemplate(xyCommandTemplate string) Light {
	l.XYCommandTemplate = &xyCommandTemplate
	return l
}

func (l Light) WithXYCommandTopic(xyCommandTopic string) Light {
	l.XYCommandTopic = &xyCommandTopic
	return l
}

func (l Light) WithXYStateTopic(xyStateTopic string) Light {
	l.XYStateTopic = &xyStateTopic
	return l
}

func (l Light) WithXYValueTemplate(xyValueTemplate string) Light {
	l.XYValueTemplate = &xyValueTemplate
	return l
}

func (l Light) WithFlashTimeLong(flashTimeLong int) Light {
	l.FlashTimeLong = &flashTimeLong
	return l
}

func (l Light) WithFlashTimeShort(flashTimeShort int) Light {
	l.FlashTimeShort = &flashTimeShort
	return l
}

func (l Light) WithBrightness(brightness bool) Light {
	l.Brightness = &brightness
	return l
}

func (l Light) WithEffect(effect bool) Light {
	l.Effect = &effect
	return l
}

func (l Light) WithFlash(flash bool) Light {
	l.Flash = &flash
	return l
}

func (l Light) WithTransition(transition bool) Light {
	l.Transition = &transition
	return l
}

func (l Light) WithCommandOnTemplate(commandOnTemplate string) Light {
	l.CommandOnTemplate = &commandOnTemplate
	return l
}

func (l Light) WithCommandOffTemplate(commandOffTemplate string) Light {
	l.CommandOffTemplate = &commandOffTemplate
	return l
}

func (l Light) WithStateTemplate(stateTemplate string) Light {
	l.StateTemplate = &stateTemplate
	return l
}

func (l Light) WithBrightnessTemplate(brightnessTemplate string) Light {
	l.BrightnessTemplate = &brightnessTemplate
	return l
}

func (l Light) WithRedTemplate(redTemplate string) Light {
	l.RedTemplate = &redTemplate
	return l
}

func (l Light) WithGreenTemplate(greenTemplate string) Light {
	l.GreenTemplate = &greenTemplate
	return l
}

func (l Light) WithBlueTemplate(blueTemplate string) Light {
	l.BlueTemplate = &blueTemplate
	return l
}

func (l Light) WithColorTemperatureTemplate(colorTemperatureTemplate string) Light {
	l.ColorTemperatureTemplate = &colorTemperatureTemplate
	return l
}

func (l Light) WithEffectTemplate(effectTemplate string) Light {
	l.EffectTemplate = &effectTemplate
	return l
}

func (l Light) WithTopicPrefix(topicPrefix string) Light {
	l.TopicPrefix = &topicPrefix
	return l
}

func (l Light) WithOrigin(origin hass.Origin) Light {
	l.Origin = origin
	return l
}

func (l Light) WithDevice(device hass.Device) Light {
	l.Device = device
	return l
}

func (l Light) WithAvailability(availability hass.Availability) Light {
	l.Availability = availability
	return l
}

func (l Light) WithEntityCategory(entityCategory hass.EntityCategory) Light {
	l.EntityCategory = &entityCategory
	return l
}

func (l Light) WithEnabledByDefault(enabledByDefault bool) Light {
	l.EnabledByDefault = &enabledByDefault
	return l
}

func (l Light) WithEncoding(encoding string) Light {
	l.Encoding = &encoding
	return l
}

func (l Light) WithEntityPicture(entityPicture *url.URL) Light {
	l.EntityPicture = entityPicture
	return l
}

func (l Light) WithIcon(icon string) Light {
	l.Icon = &icon
	return l
}

func (l Light) WithJSONAttributesTemplate(jsonAttributesTemplate string) Light {
	l.JSONAttributesTemplate = &jsonAttributesTemplate
	return l
}

func (l Light) WithJSONAttributesTopic(jsonAttributesTopic string) Light {
	l.JSONAttributesTopic = &jsonAttributesTopic
	return l
}

func (l Light) WithName(name string) Light {
	l.Name = &name
	return l
}

func (l Light) WithObjectID(objectID string) Light {
	l.ObjectID = &objectID
	return l
}

func (l Light) WithDefaultEntityID(defaultEntityID string) Light {
	l.DefaultEntityID = &defaultEntityID
	return l
}

func (l Light) WithUniqueID(uniqueID string) Light {
	l.UniqueID = &uniqueID
	return l
}

func (l Light) WithQoS(qos mqtt.QualityOfService) Light {
	l.QoS = &qos
	return l
}

func (l Light) WithRetain(retain bool) Light {
	l.Retain = &retain
	return l
}

func (l Light) WithPlatform(platform string) Light {
	l.Platform = platform
	return l
}

func (l *Light) fields() discovery.Fields {
	return append(discovery.Fields{
		discovery.Optional(discovery.FieldBrightnessCommandTemplate, &l.BrightnessCommandTemplate),
		discovery.Optional(discovery.FieldBrightnessCommandTopic, &l.BrightnessCommandTopic),
		discovery.Optional(discovery.FieldBrightnessScale, &l.BrightnessScale),
		discovery.Optional(discovery.FieldBrightnessStateTopic, &l.BrightnessStateTopic),
		discovery.Optional(discovery.FieldBrightnessValueTemplate, &l.BrightnessValueTemplate),
		discovery.Optional(discovery.FieldColorModeStateTopic, &l.ColorModeStateTopic),
		discovery.Optional(discovery.FieldColorModeValueTemplate, &l.ColorModeValueTemplate),
		discovery.Optional(discovery.FieldColorTemperatureCommandTemplate, &l.ColorTemperatureCommandTemplate),
		discovery.Optional(discovery.FieldColorTemperatureCommandTopic, &l.ColorTemperatureCommandTopic),
		discovery.Optional(discovery.FieldColorTemperatureInKelvin, &l.ColorTemperatureInKelvin),
		discovery.Optional(discovery.FieldColorTemperatureStateTopic, &l.ColorTemperatureStateTopic),
		discovery.Optional(discovery.FieldColorTemperatureValueTemplate, &l.ColorTemperatureValueTemplate),
		discovery.Required(discovery.FieldCommandTopic, &l.CommandTopic),
		discovery.Optional(discovery.FieldEffectCommandTemplate, &l.EffectCommandTemplate),
		discovery.Optional(discovery.FieldEffectCommandTopic, &l.EffectCommandTopic),
		discovery.Slice(discovery.FieldEffectList, &l.EffectList),
		discovery.Optional(discovery.FieldEffectStateTopic, &l.EffectStateTopic),
		discovery.Optional(discovery.FieldEffectValueTemplate, &l.EffectValueTemplate),
		discovery.Optional(discovery.FieldHueSatCommandTemplate, &l.HueSatCommandTemplate),
		discovery.Optional(discovery.FieldHueSatCommandTopic, &l.HueSatCommandTopic),
		discovery.Optional(discovery.FieldHueSatStateTopic, &l.HueSatStateTopic),
		discovery.Optional(discovery.FieldHueSatValueTemplate, &l.HueSatValueTemplate),
		discovery.Optional(discovery.FieldMaxKelvin, &l.MaxKelvin),
		discovery.Optional(discovery.FieldMaxMireds, &l.MaxMireds),
		discovery.Optional(discovery.FieldMinKelvin, &l.MinKelvin),
		discovery.Optional(discovery.FieldMinMireds, &l.MinMireds),
		discovery.Optional(discovery.FieldOnCommandType, &l.OnCommandType),
		discovery.Optional(discovery.FieldOptimistic, &l.Optimistic),
		discovery.Optional(discovery.FieldPayloadOff, &l.PayloadOff),
		discovery.Optional(discovery.FieldPayloadOn, &l.PayloadOn),
		discovery.Optional(discovery.FieldRGBCommandTemplate, &l.RGBCommandTemplate),
		discovery.Optional(discovery.FieldRGBCommandTopic, &l.RGBCommandTopic),
		discovery.Optional(discovery.FieldRGBStateTopic, &l.RGBStateTopic),
		discovery.Optional(discovery.FieldRGBValueTemplate, &l.RGBValueTemplate),
		discovery.Optional(discovery.FieldRGBWCommandTemplate, &l.RGBWCommandTemplate),
		discovery.Optional(discovery.FieldRGBWCommandTopic, &l.RGBWCommandTopic),
		discovery.Optional(discovery.FieldRGBWStateTopic, &l.RGBWStateTopic),
		discovery.Optional(discovery.FieldRGBWValueTemplate, &l.RGBWValueTemplate),
		discovery.Optional(discovery.FieldRGBWWCommandTemplate, &l.RGBWWCommandTemplate),
		discovery.Optional(discovery.FieldRGBWWCommandTopic, &l.RGBWWCommandTopic),
		discovery.Optional(discovery.FieldRGBWWStateTopic, &l.RGBWWStateTopic),
		discovery.Optional(discovery.FieldRGBWWValueTemplate, &l.RGBWWValueTemplate),
		discovery.Optional(discovery.FieldSchema, &l.Schema),
		discovery.Optional(discovery.FieldStateTopic, &l.StateTopic),
		discovery.Optional(discovery.FieldStateValueTemplate, &l.StateValueTemplate),
		discovery.Slice(discovery.FieldSupportedColorModes, &l.SupportedColorModes),
		discovery.Optional(discovery.FieldWhiteCommandTopic, &l.WhiteCommandTopic),
		discovery.Optional(discovery.FieldWhiteScale, &l.WhiteScale),
		discovery.Optional(discovery.FieldXYCommandTemplate, &l.XYCommandTemplate),
		discovery.Optional(discovery.FieldXYCommandTopic, &l.XYCommandTopic),
		discovery.Optional(discovery.FieldXYStateTopic, &l.XYStateTopic),
		discovery.Optional(discovery.FieldXYValueTemplate, &l.XYValueTemplate),
		discovery.Optional(discovery.FieldFlashTimeLong, &l.FlashTimeLong),
		discovery.Optional(discovery.FieldFlashTimeShort, &l.FlashTimeShort),
		discovery.Optional(discovery.FieldBrightness, &l.Brightness),
		discovery.Optional(discovery.FieldEffect, &l.Effect),
		discovery.Optional(discovery.FieldFlash, &l.Flash),
		discovery.Optional(discovery.FieldTransition, &l.Transition),
		discovery.Optional(discovery.FieldCommandOnTemplate, &l.CommandOnTemplate),
		discovery.Optional(discovery.FieldCommandOffTemplate, &l.CommandOffTemplate),
		discovery.Optional(discovery.FieldStateTemplate, &l.StateTemplate),
		discovery.Optional(discovery.FieldBrightnessTemplate, &l.BrightnessTemplate),
		discovery.Optional(discovery.FieldRedTemplate, &l.RedTemplate),
		discovery.Optional(discovery.FieldGreenTemplate, &l.GreenTemplate),
		discovery.Optional(discovery.FieldBlueTemplate, &l.BlueTemplate),
		discovery.Optional(discovery.FieldColorTemperatureTemplate, &l.ColorTemperatureTemplate),
		discovery.Optional(discovery.FieldEffectTemplate, &l.EffectTemplate),
		discovery.Optional(discovery.FieldTopicPrefix, &l.TopicPrefix),
		discovery.Required(discovery.FieldOrigin, &l.Origin),
		discovery.Required(discovery.FieldDevice, &l.Device),
		discovery.Optional(discovery.FieldEntityCategory, &l.EntityCategory),
		discovery.Optional(discovery.FieldEnabledByDefault, &l.EnabledByDefault),
		discovery.Optional(discovery.FieldEncoding, &l.Encoding),
		discovery.Optional(discovery.FieldEntityPicture, &l.EntityPicture),
		discovery.Optional(discovery.FieldIcon, &l.Icon),
		discovery.Optional(discovery.FieldJSONAttributesTemplate, &l.JSONAttributesTemplate),
		discovery.Optional(discovery.FieldJSONAttributesTopic, &l.JSONAttributesTopic),
		discovery.Optional(discovery.FieldName, &l.Name),
		discovery.Optional(discovery.FieldObjectID, &l.ObjectID),
		discovery.Optional(discovery.FieldDefaultEntityID, &l.DefaultEntityID),
		discovery.Optional(discovery.FieldUniqueID, &l.UniqueID),
		discovery.Optional(discovery.FieldQoS, &l.QoS),
		discovery.Optional(discovery.FieldRetain, &l.Retain),
		discovery.Required(discovery.FieldPlatform, &l.Platform),
	}, l.Availability.Fields()...)
}

func (l Light) MarshalJSONTo(e *jsontext.Encoder) error {
	return l.fields().MarshalJSONTo(e)
}

func (l *Light) UnmarshalJSONFrom(d *jsontext.Decoder) error {
	return l.fields().UnmarshalJSONFrom(d)
}
