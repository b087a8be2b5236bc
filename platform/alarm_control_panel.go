package platform

import (
	"encoding/json/jsontext"
	"net/url"

	"github.com/nlowe/hadiscovery/discovery"
	"github.com/nlowe/hadiscovery/hass"
	"github.com/nlowe/hadiscovery/mqtt"
)

// AlarmControlPanel is the alarm_control_panel.mqtt integration. It publishes arm and disarm commands to CommandTopic
// and reads the alarm state from StateTopic.
//
// See https://www.home-assistant.io/integrations/alarm_control_panel.mqtt/
type AlarmControlPanel struct {
	// If defined, specifies a code to enable or disable the alarming system. Use REMOTE_CODE, REMOTE_CODE_TEXT to validate
	// remotely.
	Code *string
	// If true the code is required to arm the alarm. Defaults to true.
	CodeArmRequired *bool
	// If true the code is required to disarm the alarm. Defaults to true.
	CodeDisarmRequired *bool
	// If true the code is required to trigger the alarm. Defaults to true.
	CodeTriggerRequired *bool
	// The template used for the command payload. Available variables: action and code.
	CommandTemplate *string
	// The MQTT topic to publish commands to change the alarm state. Required.
	CommandTopic string
	// The payload to set armed-away mode. Defaults to "ARM_AWAY".
	PayloadArmAway *string
	// The payload to set armed-custom-bypass mode. Defaults to "ARM_CUSTOM_BYPASS".
	PayloadArmCustomBypass *string
	// The payload to set armed-home mode. Defaults to "ARM_HOME".
	PayloadArmHome *string
	// The payload to set armed-night mode. Defaults to "ARM_NIGHT".
	PayloadArmNight *string
	// The payload to set armed-vacation mode. Defaults to "ARM_VACATION".
	PayloadArmVacation *string
	// The payload to disarm. Defaults to "DISARM".
	PayloadDisarm *string
	// The payload to trigger the alarm. Defaults to "TRIGGER".
	PayloadTrigger *string
	// The MQTT topic subscribed to receive state updates. A "None" payload resets to an unknown state. Required.
	StateTopic string
	// List of features the alarm control panel supports. Defaults to every feature.
	SupportedFeatures []hass.AlarmControlPanelFeature
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

// NewAlarmControlPanel returns a AlarmControlPanel with every optional field unset and Platform set to the DomainAlarmControlPanel literal.
func NewAlarmControlPanel() AlarmControlPanel {
	return AlarmControlPanel{Platform: string(DomainAlarmControlPanel)}
}

func (acp AlarmControlPanel) Domain() Domain {
	return DomainAlarmControlPanel
}

func (AlarmControlPanel) entity() {}

func (acp AlarmControlPanel) WithCode(code string) AlarmControlPanel {
	acp.Code = &code
	return acp
}

func (acp AlarmControlPanel) WithCodeArmRequired(codeArmRequired bool) AlarmControlPanel {
	acp.CodeArmRequired = &codeArmRequired
	return acp
}

func (acp AlarmControlPanel) WithCodeDisarmRequired(codeDisarmRequired bool) AlarmControlPanel {
	acp.CodeDisarmRequired = &codeDisarmRequired
	return acp
}

func (acp AlarmControlPanel) WithCodeTriggerRequired(codeTriggerRequired bool) AlarmControlPanel {
	acp.CodeTriggerRequired = &codeTriggerRequired
	return acp
}

func (acp AlarmControlPanel) WithCommandTemplate(commandTemplate string) AlarmControlPanel {
	acp.CommandTemplate = &commandTemplate
	return acp
}

func (acp AlarmControlPanel) WithCommandTopic(commandTopic string) AlarmControlPanel {
	acp.CommandTopic = commandTopic
	return acp
}

func (acp AlarmControlPanel) WithPayloadArmAway(payloadArmAway string) AlarmControlPanel {
	acp.PayloadArmAway = &payloadArmAway
	return acp
}

func (acp AlarmControlPanel) WithPayloadArmCustomBypass(payloadArmCustomBypass string) AlarmControlPanel {
	acp.PayloadArmCustomBypass = &payloadArmCustomBypass
	return acp
}

func (acp AlarmControlPanel) WithPayloadArmHome(payloadArmHome string) AlarmControlPanel {
	acp.PayloadArmHome = &payloadArmHome
	return acp
}

func (acp AlarmControlPanel) WithPayloadArmNight(payloadArmNight string) AlarmControlPanel {
	acp.PayloadArmNight = &payloadArmNight
	return acp
}

func (acp AlarmControlPanel) WithPayloadArmVacation(payloadArmVacation string) AlarmControlPanel {
	acp.PayloadArmVacation = &payloadArmVacation
	return acp
}

func (acp AlarmControlPanel) WithPayloadDisarm(payloadDisarm string) AlarmControlPanel {
	acp.PayloadDisarm = &payloadDisarm
	return acp
}

func (acp AlarmControlPanel) WithPayloadTrigger(payloadTrigger string) AlarmControlPanel {
	acp.PayloadTrigger = &payloadTrigger
	return acp
}

func (acp AlarmControlPanel) WithStateTopic(stateTopic string) AlarmControlPanel {
	acp.StateTopic = stateTopic
	return acp
}

func (acp AlarmControlPanel) WithSupportedFeatures(supportedFeatures ...hass.AlarmControlPanelFeature) AlarmControlPanel {
	acp.SupportedFeatures = supportedFeatures
	return acp
}

func (acp AlarmControlPanel) WithValueTemplate(valueTemplate string) AlarmControlPanel {
	acp.ValueTemplate = &valueTemplate
	return acp
}

func (acp AlarmControlPanel) WithTopicPrefix(topicPrefix string) AlarmControlPanel {
	acp.TopicPrefix = &topicPrefix
	return acp
}

func (acp AlarmControlPanel) WithOrigin(origin hass.Origin) AlarmControlPanel {
	acp.Origin = origin
	return acp
}

func (acp AlarmControlPanel) WithDevice(device hass.Device) AlarmControlPanel {
	acp.Device = device
	return acp
}

func (acp AlarmControlPanel) WithAvailability(availability hass.Availability) AlarmControlPanel {
	acp.Availability = availability
	return acp
}

func (acp AlarmControlPanel) WithEntityCategory(entityCategory hass.EntityCategory) AlarmControlPanel {
	acp.EntityCategory = &entityCategory
	return acp
}

func (acp AlarmControlPanel) WithEnabledByDefault(enabledByDefault bool) AlarmControlPanel {
	acp.EnabledByDefault = &enabledByDefault
	return acp
}

func (acp AlarmControlPanel) WithEncoding(encoding string) AlarmControlPanel {
	acp.Encoding = &encoding
	return acp
}

func (acp AlarmControlPanel) WithEntityPicture(entityPicture *url.URL) AlarmControlPanel {
	acp.EntityPicture = entityPicture
	return acp
}

func (acp AlarmControlPanel) WithIcon(icon string) AlarmControlPanel {
	acp.Icon = &icon
	return acp
}

func (acp AlarmControlPanel) WithJSONAttributesTemplate(jsonAttributesTemplate string) AlarmControlPanel {
	acp.JSONAttributesTemplate = &jsonAttributesTemplate
	return acp
}

func (acp AlarmControlPanel) WithJSONAttributesTopic(jsonAttributesTopic string) AlarmControlPanel {
	acp.JSONAttributesTopic = &jsonAttributesTopic
	return acp
}

func (acp AlarmControlPanel) WithName(name string) AlarmControlPanel {
	acp.Name = &name
	return acp
}

func (acp AlarmControlPanel) WithObjectID(objectID string) AlarmControlPanel {
	acp.ObjectID = &objectID
	return acp
}

func (acp AlarmControlPanel) WithDefaultEntityID(defaultEntityID string) AlarmControlPanel {
	acp.DefaultEntityID = &defaultEntityID
	return acp
}

func (acp AlarmControlPanel) WithUniqueID(uniqueID string) AlarmControlPanel {
	acp.UniqueID = &uniqueID
	return acp
}

func (acp AlarmControlPanel) WithQoS(qos mqtt.QualityOfService) AlarmControlPanel {
	acp.QoS = &qos
	return acp
}

func (acp AlarmControlPanel) WithRetain(retain bool) AlarmControlPanel {
	acp.Retain = &retain
	return acp
}

func (acp AlarmControlPanel) WithPlatform(platform string) AlarmControlPanel {
	acp.Platform = platform
	return acp
}

func (acp *AlarmControlPanel) fields() discovery.Fields {
	return append(discovery.Fields{
		discovery.Optional(discovery.FieldCode, &acp.Code),
		discovery.Optional(discovery.FieldCodeArmRequired, &acp.CodeArmRequired),
		discovery.Optional(discovery.FieldCodeDisarmRequired, &acp.CodeDisarmRequired),
		discovery.Optional(discovery.FieldCodeTriggerRequired, &acp.CodeTriggerRequired),
		discovery.Optional(discovery.FieldCommandTemplate, &acp.CommandTemplate),
		discovery.Required(discovery.FieldCommandTopic, &acp.CommandTopic),
		discovery.Optional(discovery.FieldPayloadArmAway, &acp.PayloadArmAway),
		discovery.Optional(discovery.FieldPayloadArmCustomBypass, &acp.PayloadArmCustomBypass),
		discovery.Optional(discovery.FieldPayloadArmHome, &acp.PayloadArmHome),
		discovery.Optional(discovery.FieldPayloadArmNight, &acp.PayloadArmNight),
		discovery.Optional(discovery.FieldPayloadArmVacation, &acp.PayloadArmVacation),
		discovery.Optional(discovery.FieldPayloadDisarm, &acp.PayloadDisarm),
		discovery.Optional(discovery.FieldPayloadTrigger, &acp.PayloadTrigger),
		discovery.Required(discovery.FieldStateTopic, &acp.StateTopic),
		discovery.Slice(discovery.FieldSupportedFeatures, &acp.SupportedFeatures),
		discovery.Optional(discovery.FieldValueTemplate, &acp.ValueTemplate),
		discovery.Optional(discovery.FieldTopicPrefix, &acp.TopicPrefix),
		discovery.Required(discovery.FieldOrigin, &acp.Origin),
		discovery.Required(discovery.FieldDevice, &acp.Device),
		discovery.Optional(discovery.FieldEntityCategory, &acp.EntityCategory),
		discovery.Optional(discovery.FieldEnabledByDefault, &acp.EnabledByDefault),
		discovery.Optional(discovery.FieldEncoding, &acp.Encoding),
		discovery.Optional(discovery.FieldEntityPicture, &acp.EntityPicture),
		discovery.Optional(discovery.FieldIcon, &acp.Icon),
		discovery.Optional(discovery.FieldJSONAttributesTemplate, &acp.JSONAttributesTemplate),
		discovery.Optional(discovery.FieldJSONAttributesTopic, &acp.JSONAttributesTopic),
		discovery.Optional(discovery.FieldName, &acp.Name),
		discovery.Optional(discovery.FieldObjectID, &acp.ObjectID),
		discovery.Optional(discovery.FieldDefaultEntityID, &acp.DefaultEntityID),
		discovery.Optional(discovery.FieldUniqueID, &acp.UniqueID),
		discovery.Optional(discovery.FieldQoS, &acp.QoS),
		discovery.Optional(discovery.FieldRetain, &acp.Retain),
		discovery.Required(discovery.FieldPlatform, &acp.Platform),
	}, acp.Availability.Fields()...)
}

func (acp AlarmControlPanel) MarshalJSONTo(e *jsontext.Encoder) error {
	return acp.fields().MarshalJSONTo(e)
}

func (acp *AlarmControlPanel) UnmarshalJSONFrom(d *jsontext.Decoder) error {
	return acp.fields().UnmarshalJSONFrom(d)
}
