package platform

import (
	"encoding/json/jsontext"
	"net/url"

	"github.com/nlowe/hadiscovery/discovery"
	"github.com/nlowe/hadiscovery/hass"
	"github.com/nlowe/hadiscovery/mqtt"
)

// Vacuum is the vacuum.mqtt integration. State is reported on StateTopic as a JSON document.
//
// See https://www.home-assistant.io/integrations/vacuum.mqtt/
type Vacuum struct {
	// The MQTT topic to publish commands to control the vacuum.
	CommandTopic *string
	// List of possible fan speeds for the vacuum.
	FanSpeedList []string
	// The payload to send to the CommandTopic to begin a spot cleaning cycle.
	PayloadCleanSpot *string
	// The payload to send to the CommandTopic to locate the vacuum (typically plays a song).
	PayloadLocate *string
	// The payload to send to the CommandTopic to pause the vacuum.
	PayloadPause *string
	// The payload to send to the CommandTopic to tell the vacuum to return to base.
	PayloadReturnToBase *string
	// The payload to send to the CommandTopic to begin the cleaning cycle.
	PayloadStart *string
	// The payload to send to the CommandTopic to stop cleaning.
	PayloadStop *string
	// The MQTT topic to publish custom commands to the vacuum.
	SendCommandTopic *string
	// The MQTT topic to publish commands to control the vacuum's fan speed.
	SetFanSpeedTopic *string
	// The MQTT topic subscribed to receive state messages from the vacuum. Messages received on the StateTopic must be a
	// valid JSON dictionary, with a mandatory state key and optionally battery_level and fan_speed keys.
	StateTopic *string
	// List of features that the vacuum supports.
	SupportedFeatures []hass.VacuumFeature

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

// NewVacuum returns a Vacuum with every optional field unset and Platform set to the DomainVacuum literal.
func NewVacuum() Vacuum {
	return Vacuum{Platform: string(DomainVacuum)}
}

func (v Vacuum) Domain() Domain {
	return DomainVacuum
}

func (Vacuum) entity() {}

func (v Vacuum) WithCommandTopic(commandTopic string) Vacuum {
	v.CommandTopic = &commandTopic
	return v
}

func (v Vacuum) WithFanSpeedList(fanSpeedList ...string) Vacuum {
	v.FanSpeedList = fanSpeedList
	return v
}

func (v Vacuum) WithPayloadCleanSpot(payloadCleanSpot string) Vacuum {
	v.PayloadCleanSpot = &payloadCleanSpot
	return v
}

func (v Vacuum) WithPayloadLocate(payloadLocate string) Vacuum {
	v.PayloadLocate = &payloadLocate
	return v
}

func (v Vacuum) WithPayloadPause(payloadPause string) Vacuum {
	v.PayloadPause = &payloadPause
	return v
}

func (v Vacuum) WithPayloadReturnToBase(payloadReturnToBase string) Vacuum {
	v.PayloadReturnToBase = &payloadReturnToBase
	return v
}

func (v Vacuum) WithPayloadStart(payloadStart string) Vacuum {
	v.PayloadStart = &payloadStart
	return v
}

func (v Vacuum) WithPayloadStop(payloadStop string) Vacuum {
	v.PayloadStop = &payloadStop
	return v
}

func (v Vacuum) WithSendCommandTopic(sendCommandTopic string) Vacuum {
	v.SendCommandTopic = &sendCommandTopic
	return v
}

func (v Vacuum) WithSetFanSpeedTopic(setFanSpeedTopic string) Vacuum {
	v.SetFanSpeedTopic = &setFanSpeedTopic
	return v
}

func (v Vacuum) WithStateTopic(stateTopic string) Vacuum {
	v.StateTopic = &stateTopic
	return v
}

func (v Vacuum) WithSupportedFeatures(supportedFeatures ...hass.VacuumFeature) Vacuum {
	v.SupportedFeatures = supportedFeatures
	return v
}

func (v Vacuum) WithTopicPrefix(topicPrefix string) Vacuum {
	v.TopicPrefix = &topicPrefix
	return v
}

func (v Vacuum) WithOrigin(origin hass.Origin) Vacuum {
	v.Origin = origin
	return v
}

func (v Vacuum) WithDevice(device hass.Device) Vacuum {
	v.Device = device
	return v
}

func (v Vacuum) WithAvailability(availability hass.Availability) Vacuum {
	v.Availability = availability
	return v
}

func (v Vacuum) WithEntityCategory(entityCategory hass.EntityCategory) Vacuum {
	v.EntityCategory = &entityCategory
	return v
}

func (v Vacuum) WithEnabledByDefault(enabledByDefault bool) Vacuum {
	v.EnabledByDefault = &enabledByDefault
	return v
}

func (v Vacuum) WithEncoding(encoding string) Vacuum {
	v.Encoding = &encoding
	return v
}

func (v Vacuum) WithEntityPicture(entityPicture *url.URL) Vacuum {
	v.EntityPicture = entityPicture
	return v
}

func (v Vacuum) WithIcon(icon string) Vacuum {
	v.Icon = &icon
	return v
}

func (v Vacuum) WithJSONAttributesTemplate(jsonAttributesTemplate string) Vacuum {
	v.JSONAttributesTemplate = &jsonAttributesTemplate
	return v
}

func (v Vacuum) WithJSONAttributesTopic(jsonAttributesTopic string) Vacuum {
	v.JSONAttributesTopic = &jsonAttributesTopic
	return v
}

func (v Vacuum) WithName(name string) Vacuum {
	v.Name = &name
	return v
}

func (v Vacuum) WithObjectID(objectID string) Vacuum {
	v.ObjectID = &objectID
	return v
}

func (v Vacuum) WithDefaultEntityID(defaultEntityID string) Vacuum {
	v.DefaultEntityID = &defaultEntityID
	return v
}

func (v Vacuum) WithUniqueID(uniqueID string) Vacuum {
	v.UniqueID = &uniqueID
	return v
}

func (v Vacuum) WithQoS(qos mqtt.QualityOfService) Vacuum {
	v.QoS = &qos
	return v
}

func (v Vacuum) WithRetain(retain bool) Vacuum {
	v.Retain = &retain
	return v
}

func (v Vacuum) WithPlatform(platform string) Vacuum {
	v.Platform = platform
	return v
}

func (v *Vacuum) fields() discovery.Fields {
	return append(discovery.Fields{
		discovery.Optional(discovery.FieldCommandTopic, &v.CommandTopic),
		discovery.Slice(discovery.FieldFanSpeedList, &v.FanSpeedList),
		discovery.Optional(discovery.FieldPayloadCleanSpot, &v.PayloadCleanSpot),
		discovery.Optional(discovery.FieldPayloadLocate, &v.PayloadLocate),
		discovery.Optional(discovery.FieldPayloadPause, &v.PayloadPause),
		discovery.Optional(discovery.FieldPayloadReturnToBase, &v.PayloadReturnToBase),
		discovery.Optional(discovery.FieldPayloadStart, &v.PayloadStart),
		discovery.Optional(discovery.FieldPayloadStop, &v.PayloadStop),
		discovery.Optional(discovery.FieldSendCommandTopic, &v.SendCommandTopic),
		discovery.Optional(discovery.FieldSetFanSpeedTopic, &v.SetFanSpeedTopic),
		discovery.Optional(discovery.FieldStateTopic, &v.StateTopic),
		discovery.Slice(discovery.FieldSupportedFeatures, &v.SupportedFeatures),
		discovery.Optional(discovery.FieldTopicPrefix, &v.TopicPrefix),
		discovery.Required(discovery.FieldOrigin, &v.Origin),
		discovery.Required(discovery.FieldDevice, &v.Device),
		discovery.Optional(discovery.FieldEntityCategory, &v.EntityCategory),
		discovery.Optional(discovery.FieldEnabledByDefault, &v.EnabledByDefault),
		discovery.Optional(discovery.FieldEncoding, &v.Encoding),
		discovery.Optional(discovery.FieldEntityPicture, &v.EntityPicture),
		discovery.Optional(discovery.FieldIcon, &v.Icon),
		discovery.Optional(discovery.FieldJSONAttributesTemplate, &v.JSONAttributesTemplate),
		discovery.Optional(discovery.FieldJSONAttributesTopic, &v.JSONAttributesTopic),
		discovery.Optional(discovery.FieldName, &v.Name),
		discovery.Optional(discovery.FieldObjectID, &v.ObjectID),
		discovery.Optional(discovery.FieldDefaultEntityID, &v.DefaultEntityID),
		discovery.Optional(discovery.FieldUniqueID, &v.UniqueID),
		discovery.Optional(discovery.FieldQoS, &v.QoS),
		discovery.Optional(discovery.FieldRetain, &v.Retain),
		discovery.Required(discovery.FieldPlatform, &v.Platform),
	}, v.Availability.Fields()...)
}

func (v Vacuum) MarshalJSONTo(e *jsontext.Encoder) error {
	return v.fields().MarshalJSONTo(e)
}

func (v *Vacuum) UnmarshalJSONFrom(d *jsontext.Decoder) error {
	return v.fields().UnmarshalJSONFrom(d)
}
