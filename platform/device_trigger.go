package platform

import (
	"encoding/json/jsontext"

	"github.com/nlowe/hadiscovery/discovery"
	"github.com/nlowe/hadiscovery/hass"
	"github.com/nlowe/hadiscovery/mqtt"
)

// DeviceTrigger is the device_trigger.mqtt integration. Device triggers are not entities: they only carry the Device
// they belong to and are used as triggers in device automations. Its Domain is DomainDeviceTrigger, whose platform
// literal is "device_automation".
//
// See https://www.home-assistant.io/integrations/device_trigger.mqtt/
type DeviceTrigger struct {
	// The type of automation, must be "trigger". Required.
	AutomationType string
	// Optional payload to match the payload being sent over the topic.
	Payload *string
	// The MQTT topic subscribed to receive trigger events. Required.
	Topic string
	// The type of the trigger, e.g. "button_short_press". Required.
	Type hass.DeviceTriggerType
	// The subtype of the trigger, e.g. "button_1". Required.
	Subtype hass.DeviceTriggerSubtype
	// Defines a template to extract the value. If the template renders to something other than an empty string, it is
	// compared to Payload.
	ValueTemplate *string

	// Information about the software that announced this entity. Always sent, even when empty.
	Origin hass.Origin
	// Information about the device this trigger belongs to. Home Assistant requires at least an identifier or a
	// connection.
	Device hass.Device
	// The maximum QoS level to be used when receiving and publishing messages.
	QoS *mqtt.QualityOfService
	// Must be the domain literal for this entity. Pre-filled by the constructor.
	Platform string
}

// NewDeviceTrigger returns a DeviceTrigger with every optional field unset and Platform set to the DomainDeviceTrigger literal.
func NewDeviceTrigger() DeviceTrigger {
	return DeviceTrigger{Platform: string(DomainDeviceTrigger)}
}

func (dt DeviceTrigger) Domain() Domain {
	return DomainDeviceTrigger
}

func (DeviceTrigger) entity() {}

func (dt DeviceTrigger) WithAutomationType(automationType string) DeviceTrigger {
	dt.AutomationType = automationType
	return dt
}

func (dt DeviceTrigger) WithPayload(payload string) DeviceTrigger {
	dt.Payload = &payload
	return dt
}

func (dt DeviceTrigger) WithTopic(topic string) DeviceTrigger {
	dt.Topic = topic
	return dt
}

func (dt DeviceTrigger) WithType(triggerType hass.DeviceTriggerType) DeviceTrigger {
	dt.Type = triggerType
	return dt
}

func (dt DeviceTrigger) WithSubtype(subtype hass.DeviceTriggerSubtype) DeviceTrigger {
	dt.Subtype = subtype
	return dt
}

func (dt DeviceTrigger) WithValueTemplate(valueTemplate string) DeviceTrigger {
	dt.ValueTemplate = &valueTemplate
	return dt
}

func (dt DeviceTrigger) WithOrigin(origin hass.Origin) DeviceTrigger {
	dt.Origin = origin
	return dt
}

func (dt DeviceTrigger) WithDevice(device hass.Device) DeviceTrigger {
	dt.Device = device
	return dt
}

func (dt DeviceTrigger) WithQoS(qos mqtt.QualityOfService) DeviceTrigger {
	dt.QoS = &qos
	return dt
}

func (dt DeviceTrigger) WithPlatform(platform string) DeviceTrigger {
	dt.Platform = platform
	return dt
}

func (dt *DeviceTrigger) fields() discovery.Fields {
	return discovery.Fields{
		discovery.Required(discovery.FieldAutomationType, &dt.AutomationType),
		discovery.Optional(discovery.FieldPayload, &dt.Payload),
		discovery.Required(discovery.FieldTopic, &dt.Topic),
		discovery.Required(discovery.FieldType, &dt.Type),
		discovery.Required(discovery.FieldSubtype, &dt.Subtype),
		discovery.Optional(discovery.FieldValueTemplate, &dt.ValueTemplate),
		discovery.Required(discovery.FieldOrigin, &dt.Origin),
		discovery.Required(discovery.FieldDevice, &dt.Device),
		discovery.Optional(discovery.FieldQoS, &dt.QoS),
		discovery.Required(discovery.FieldPlatform, &dt.Platform),
	}
}

func (dt DeviceTrigger) MarshalJSONTo(e *jsontext.Encoder) error {
	return dt.fields().MarshalJSONTo(e)
}

func (dt *DeviceTrigger) UnmarshalJSONFrom(d *jsontext.Decoder) error {
	return dt.fields().UnmarshalJSONFrom(d)
}
