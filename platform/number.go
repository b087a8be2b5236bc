package platform

import (
	"encoding/json/jsontext"
	"net/url"

	"github.com/nlowe/hadiscovery/discovery"
	"github.com/nlowe/hadiscovery/hass"
	"github.com/nlowe/hadiscovery/mqtt"
)

// Number is the number.mqtt integration.
//
// See https://www.home-assistant.io/integrations/number.mqtt/
type Number struct {
	// Defines a template to generate the payload to send to CommandTopic.
	CommandTemplate *string
	// The MQTT topic to publish commands to change the number. Required.
	CommandTopic string
	// The type/class of the number. The DeviceClass can be hass.NumberDeviceClassNone.
	DeviceClass *hass.NumberDeviceClass
	// Maximum value. Defaults to 100.
	Max *float64
	// Minimum value. Defaults to 1.
	Min *float64
	// Control how the entity is displayed in the UI.
	Mode *hass.NumberMode
	// Flag that defines if the entity works in optimistic mode. Defaults to true if no StateTopic is defined.
	Optimistic *bool
	// A special payload that resets the state to unknown when received on the StateTopic. Defaults to "None".
	PayloadReset *string
	// Step value. Smallest value 0.001. Defaults to 1.
	Step *float64
	// The MQTT topic subscribed to receive number values. An empty payload is ignored.
	StateTopic *string
	// Defines the unit of measurement of the entity, if any.
	UnitOfMeasurement *hass.Unit
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

// NewNumber returns a Number with every optional field unset and Platform set to the DomainNumber literal.
func NewNumber() Number {
	return Number{Platform: string(DomainNumber)}
}

func (n Number) Domain() Domain {
	return DomainNumber
}

func (Number) entity() {}

func (n Number) WithCommandTemplate(commandTemplate string) Number {
	n.CommandTemplate = &commandTemplate
	return n
}

func (n Number) WithCommandTopic(commandTopic string) Number {
	n.CommandTopic = commandTopic
	return n
}

func (n Number) WithDeviceClass(deviceClass hass.NumberDeviceClass) Number {
	n.DeviceClass = &deviceClass
	return n
}

func (n Number) WithMax(maximum float64) Number {
	n.Max = &maximum
	return n
}

func (n Number) WithMin(minimum float64) Number {
	n.Min = &minimum
	return n
}

func (n Number) WithMode(mode hass.NumberMode) Number {
	n.Mode = &mode
	return n
}

func (n Number) WithOptimistic(optimistic bool) Number {
	n.Optimistic = &optimistic
	return n
}

func (n Number) WithPayloadReset(payloadReset string) Number {
	n.PayloadReset = &payloadReset
	return n
}

func (n Number) WithStep(step float64) Number {
	n.Step = &step
	return n
}

func (n Number) WithStateTopic(stateTopic string) Number {
	n.StateTopic = &stateTopic
	return n
}

func (n Number) WithUnitOfMeasurement(unitOfMeasurement hass.Unit) Number {
	n.UnitOfMeasurement = &unitOfMeasurement
	return n
}

func (n Number) WithValueTemplate(valueTemplate string) Number {
	n.ValueTemplate = &valueTemplate
	return n
}

func (n Number) WithTopicPrefix(topicPrefix string) Number {
	n.TopicPrefix = &topicPrefix
	return n
}

func (n Number) WithOrigin(origin hass.Origin) Number {
	n.Origin = origin
	return n
}

func (n Number) WithDevice(device hass.Device) Number {
	n.Device = device
	return n
}

func (n Number) WithAvailability(availability hass.Availability) Number {
	n.Availability = availability
	return n
}

func (n Number) WithEntityCategory(entityCategory hass.EntityCategory) Number {
	n.EntityCategory = &entityCategory
	return n
}

func (n Number) WithEnabledByDefault(enabledByDefault bool) Number {
	n.EnabledByDefault = &enabledByDefault
	return n
}

func (n Number) WithEncoding(encoding string) Number {
	n.Encoding = &encoding
	return n
}

func (n Number) WithEntityPicture(entityPicture *url.URL) Number {
	n.EntityPicture = entityPicture
	return n
}

func (n Number) WithIcon(icon string) Number {
	n.Icon = &icon
	return n
}

func (n Number) WithJSONAttributesTemplate(jsonAttributesTemplate string) Number {
	n.JSONAttributesTemplate = &jsonAttributesTemplate
	return n
}

func (n Number) WithJSONAttributesTopic(jsonAttributesTopic string) Number {
	n.JSONAttributesTopic = &jsonAttributesTopic
	return n
}

func (n Number) WithName(name string) Number {
	n.Name = &name
	return n
}

func (n Number) WithObjectID(objectID string) Number {
	n.ObjectID = &objectID
	return n
}

func (n Number) WithDefaultEntityID(defaultEntityID string) Number {
	n.DefaultEntityID = &defaultEntityID
	return n
}

func (n Number) WithUniqueID(uniqueID string) Number {
	n.UniqueID = &uniqueID
	return n
}

func (n Number) WithQoS(qos mqtt.QualityOfService) Number {
	n.QoS = &qos
	return n
}

func (n Number) WithRetain(retain bool) Number {
	n.Retain = &retain
	return n
}

func (n Number) WithPlatform(platform string) Number {
	n.Platform = platform
	return n
}

func (n *Number) fields() discovery.Fields {
	return append(discovery.Fields{
		discovery.Optional(discovery.FieldCommandTemplate, &n.CommandTemplate),
		discovery.Required(discovery.FieldCommandTopic, &n.CommandTopic),
		discovery.Optional(discovery.FieldDeviceClass, &n.DeviceClass),
		discovery.Optional(discovery.FieldMax, &n.Max),
		discovery.Optional(discovery.FieldMin, &n.Min),
		discovery.Optional(discovery.FieldMode, &n.Mode),
		discovery.Optional(discovery.FieldOptimistic, &n.Optimistic),
		discovery.Optional(discovery.FieldPayloadReset, &n.PayloadReset),
		discovery.Optional(discovery.FieldStep, &n.Step),
		discovery.Optional(discovery.FieldStateTopic, &n.StateTopic),
		discovery.Optional(discovery.FieldUnitOfMeasurement, &n.UnitOfMeasurement),
		discovery.Optional(discovery.FieldValueTemplate, &n.ValueTemplate),
		discovery.Optional(discovery.FieldTopicPrefix, &n.TopicPrefix),
		discovery.Required(discovery.FieldOrigin, &n.Origin),
		discovery.Required(discovery.FieldDevice, &n.Device),
		discovery.Optional(discovery.FieldEntityCategory, &n.EntityCategory),
		discovery.Optional(discovery.FieldEnabledByDefault, &n.EnabledByDefault),
		discovery.Optional(discovery.FieldEncoding, &n.Encoding),
		discovery.Optional(discovery.FieldEntityPicture, &n.EntityPicture),
		discovery.Optional(discovery.FieldIcon, &n.Icon),
		discovery.Optional(discovery.FieldJSONAttributesTemplate, &n.JSONAttributesTemplate),
		discovery.Optional(discovery.FieldJSONAttributesTopic, &n.JSONAttributesTopic),
		discovery.Optional(discovery.FieldName, &n.Name),
		discovery.Optional(discovery.FieldObjectID, &n.ObjectID),
		discovery.Optional(discovery.FieldDefaultEntityID, &n.DefaultEntityID),
		discovery.Optional(discovery.FieldUniqueID, &n.UniqueID),
		discovery.Optional(discovery.FieldQoS, &n.QoS),
		discovery.Optional(discovery.FieldRetain, &n.Retain),
		discovery.Required(discovery.FieldPlatform, &n.Platform),
	}, n.Availability.Fields()...)
}

func (n Number) MarshalJSONTo(e *jsontext.Encoder) error {
	return n.fields().MarshalJSONTo(e)
}

func (n *Number) UnmarshalJSONFrom(d *jsontext.Decoder) error {
	return n.fields().UnmarshalJSONFrom(d)
}
