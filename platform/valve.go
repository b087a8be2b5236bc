package platform

import (
	"encoding/json/jsontext"
	"net/url"

	"github.com/nlowe/hadiscovery/discovery"
	"github.com/nlowe/hadiscovery/hass"
	"github.com/nlowe/hadiscovery/mqtt"
)

// Valve is the valve.mqtt integration. When ReportsPosition is true the valve is controlled by position and PayloadOpen
// and PayloadClose must not be set; when it is false or unset, state payloads are used instead. Neither combination is
// checked here.
//
// See https://www.home-assistant.io/integrations/valve.mqtt/
type Valve struct {
	// Defines a template to generate the payload to send to CommandTopic.
	CommandTemplate *string
	// The MQTT topic to publish commands to control the valve. The value sent can be a value defined by PayloadOpen,
	// PayloadClose or PayloadStop. If ReportsPosition is set to true, a numeric value will be published instead.
	CommandTopic *string
	// Sets the class of the device, changing the device state and icon that is displayed on the frontend.
	DeviceClass *hass.ValveDeviceClass
	// Flag that defines if the entity works in optimistic mode. Defaults to true if no StateTopic is defined.
	Optimistic *bool
	// The command payload that closes the valve. Only used when ReportsPosition is false (default). Not allowed when
	// ReportsPosition is true.
	PayloadClose *string
	// The command payload that opens the valve. Only used when ReportsPosition is false (default). Not allowed when
	// ReportsPosition is true.
	PayloadOpen *string
	// The command payload that stops the valve. When not configured, the valve will not support the valve.stop action.
	PayloadStop *string
	// Number which represents closed position. The valve's position will be scaled to the PositionClosed to PositionOpen
	// range when an action is performed and scaled back when a value is received.
	PositionClosed *int
	// Number which represents open position. The valve's position will be scaled to (PositionClosed to PositionOpen) range
	// when an action is performed and scaled back when a value is received.
	PositionOpen *int
	// Set to true if the value reports the position or supports setting the position.
	ReportsPosition *bool
	// The payload that represents the closed state.
	StateClosed *string
	// The payload that represents the closing state.
	StateClosing *string
	// The payload that represents the open state.
	StateOpen *string
	// The payload that represents the opening state.
	StateOpening *string
	// The MQTT topic subscribed to receive valve state messages. State topic accepts a state payload (open, opening,
	// closed, or closing) or, if ReportsPosition is supported, a numeric value representing the position.
	StateTopic *string
	// Defines a template that can be used to extract the payload for the StateTopic.
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

// NewValve returns a Valve with every optional field unset and Platform set to the DomainValve literal.
func NewValve() Valve {
	return Valve{Platform: string(DomainValve)}
}

func (v Valve) Domain() Domain {
	return DomainValve
}

func (Valve) entity() {}

func (v Valve) WithCommandTemplate(commandTemplate string) Valve {
	v.CommandTemplate = &commandTemplate
	return v
}

func (v Valve) WithCommandTopic(commandTopic string) Valve {
	v.CommandTopic = &commandTopic
	return v
}

func (v Valve) WithDeviceClass(deviceClass hass.ValveDeviceClass) Valve {
	v.DeviceClass = &deviceClass
	return v
}

func (v Valve) WithOptimistic(optimistic bool) Valve {
	v.Optimistic = &optimistic
	return v
}

func (v Valve) WithPayloadClose(payloadClose string) Valve {
	v.PayloadClose = &payloadClose
	return v
}

func (v Valve) WithPayloadOpen(payloadOpen string) Valve {
	v.PayloadOpen = &payloadOpen
	return v
}

func (v Valve) WithPayloadStop(payloadStop string) Valve {
	v.PayloadStop = &payloadStop
	return v
}

func (v Valve) WithPositionClosed(positionClosed int) Valve {
	v.PositionClosed = &positionClosed
	return v
}

func (v Valve) WithPositionOpen(positionOpen int) Valve {
	v.PositionOpen = &positionOpen
	return v
}

func (v Valve) WithReportsPosition(reportsPosition bool) Valve {
	v.ReportsPosition = &reportsPosition
	return v
}

func (v Valve) WithStateClosed(stateClosed string) Valve {
	v.StateClosed = &stateClosed
	return v
}

func (v Valve) WithStateClosing(stateClosing string) Valve {
	v.StateClosing = &stateClosing
	return v
}

func (v Valve) WithStateOpen(stateOpen string) Valve {
	v.StateOpen = &stateOpen
	return v
}

func (v Valve) WithStateOpening(stateOpening string) Valve {
	v.StateOpening = &stateOpening
	return v
}

func (v Valve) WithStateTopic(stateTopic string) Valve {
	v.StateTopic = &stateTopic
	return v
}

func (v Valve) WithValueTemplate(valueTemplate string) Valve {
	v.ValueTemplate = &valueTemplate
	return v
}

func (v Valve) WithTopicPrefix(topicPrefix string) Valve {
	v.TopicPrefix = &topicPrefix
	return v
}

func (v Valve) WithOrigin(origin hass.Origin) Valve {
	v.Origin = origin
	return v
}

func (v Valve) WithDevice(device hass.Device) Valve {
	v.Device = device
	return v
}

func (v Valve) WithAvailability(availability hass.Availability) Valve {
	v.Availability = availability
	return v
}

func (v Valve) WithEntityCategory(entityCategory hass.EntityCategory) Valve {
	v.EntityCategory = &entityCategory
	return v
}

func (v Valve) WithEnabledByDefault(enabledByDefault bool) Valve {
	v.EnabledByDefault = &enabledByDefault
	return v
}

func (v Valve) WithEncoding(encoding string) Valve {
	v.Encoding = &encoding
	return v
}

func (v Valve) WithEntityPicture(entityPicture *url.URL) Valve {
	v.EntityPicture = entityPicture
	return v
}

func (v Valve) WithIcon(icon string) Valve {
	v.Icon = &icon
	return v
}

func (v Valve) WithJSONAttributesTemplate(jsonAttributesTemplate string) Valve {
	v.JSONAttributesTemplate = &jsonAttributesTemplate
	return v
}

func (v Valve) WithJSONAttributesTopic(jsonAttributesTopic string) Valve {
	v.JSONAttributesTopic = &jsonAttributesTopic
	return v
}

func (v Valve) WithName(name string) Valve {
	v.Name = &name
	return v
}

func (v Valve) WithObjectID(objectID string) Valve {
	v.ObjectID = &objectID
	return v
}

func (v Valve) WithDefaultEntityID(defaultEntityID string) Valve {
	v.DefaultEntityID = &defaultEntityID
	return v
}

func (v Valve) WithUniqueID(uniqueID string) Valve {
	v.UniqueID = &uniqueID
	return v
}

func (v Valve) WithQoS(qos mqtt.QualityOfService) Valve {
	v.QoS = &qos
	return v
}

func (v Valve) WithRetain(retain bool) Valve {
	v.Retain = &retain
	return v
}

func (v Valve) WithPlatform(platform string) Valve {
	v.Platform = platform
	return v
}

func (v *Valve) fields() discovery.Fields {
	return append(discovery.Fields{
		discovery.Optional(discovery.FieldCommandTemplate, &v.CommandTemplate),
		discovery.Optional(discovery.FieldCommandTopic, &v.CommandTopic),
		discovery.Optional(discovery.FieldDeviceClass, &v.DeviceClass),
		discovery.Optional(discovery.FieldOptimistic, &v.Optimistic),
		discovery.Optional(discovery.FieldPayloadClose, &v.PayloadClose),
		discovery.Optional(discovery.FieldPayloadOpen, &v.PayloadOpen),
		discovery.Optional(discovery.FieldPayloadStop, &v.PayloadStop),
		discovery.Optional(discovery.FieldPositionClosed, &v.PositionClosed),
		discovery.Optional(discovery.FieldPositionOpen, &v.PositionOpen),
		discovery.Optional(discovery.FieldReportsPosition, &v.ReportsPosition),
		discovery.Optional(discovery.FieldStateClosed, &v.StateClosed),
		discovery.Optional(discovery.FieldStateClosing, &v.StateClosing),
		discovery.Optional(discovery.FieldStateOpen, &v.StateOpen),
		discovery.Optional(discovery.FieldStateOpening, &v.StateOpening),
		discovery.Optional(discovery.FieldStateTopic, &v.StateTopic),
		discovery.Optional(discovery.FieldValueTemplate, &v.ValueTemplate),
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

func (v Valve) MarshalJSONTo(e *jsontext.Encoder) error {
	return v.fields().MarshalJSONTo(e)
}

func (v *Valve) UnmarshalJSONFrom(d *jsontext.Decoder) error {
	return v.fields().UnmarshalJSONFrom(d)
}
