package platform

import (
	"encoding/json/jsontext"
	"net/url"

	"github.com/nlowe/hadiscovery/discovery"
	"github.com/nlowe/hadiscovery/hass"
	"github.com/nlowe/hadiscovery/mqtt"
)

// Cover is the cover.mqtt integration for blinds, garage doors, shades and similar devices. A cover can report a state,
// a position, or both, and can optionally be tilted.
//
// See https://www.home-assistant.io/integrations/cover.mqtt/
type Cover struct {
	// The MQTT topic to publish commands to control the cover.
	CommandTopic *string
	// Sets the class of the device, changing the device state and icon that is displayed on the frontend.
	DeviceClass *hass.CoverDeviceClass
	// Flag that defines if the entity works in optimistic mode. Defaults to true if no StateTopic is defined.
	Optimistic *bool
	// The command payload that closes the cover. Defaults to "CLOSE". Set to an empty string to disable the close command.
	PayloadClose *string
	// The command payload that opens the cover. Defaults to "OPEN". Set to an empty string to disable the open command.
	PayloadOpen *string
	// The command payload that stops the cover. Defaults to "STOP".
	PayloadStop *string
	// The command payload that stops the tilt.
	PayloadStopTilt *string
	// Number which represents closed position. Defaults to 0.
	PositionClosed *int
	// Number which represents open position. Defaults to 100.
	PositionOpen *int
	// Defines a template that can be used to extract the payload for the PositionTopic.
	PositionTemplate *string
	// The MQTT topic subscribed to receive position messages.
	PositionTopic *string
	// Defines a template to define the position to be sent to the SetPositionTopic.
	SetPositionTemplate *string
	// The MQTT topic to publish position commands to.
	SetPositionTopic *string
	// The payload that represents the closed state.
	StateClosed *string
	// The payload that represents the closing state.
	StateClosing *string
	// The payload that represents the open state.
	StateOpen *string
	// The payload that represents the opening state.
	StateOpening *string
	// The payload that represents the stopped state (for covers that do not report open/closed state).
	StateStopped *string
	// The MQTT topic subscribed to receive cover state messages. State topic can only read an open, opening, closed,
	// closing or stopped state.
	StateTopic *string
	// The value that will be sent on a close_cover_tilt command.
	TiltClosedValue *int
	// Defines a template that can be used to extract the payload for the TiltCommandTopic.
	TiltCommandTemplate *string
	// The MQTT topic to publish commands to control the cover tilt.
	TiltCommandTopic *string
	// The maximum tilt value.
	TiltMax *int
	// The minimum tilt value.
	TiltMin *int
	// The value that will be sent on an open_cover_tilt command.
	TiltOpenedValue *int
	// Flag that determines if tilt works in optimistic mode.
	TiltOptimistic *bool
	// Defines a template that can be used to extract the payload for the TiltStatusTopic.
	TiltStatusTemplate *string
	// The MQTT topic subscribed to receive tilt status update values.
	TiltStatusTopic *string
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

// NewCover returns a Cover with every optional field unset and Platform set to the DomainCover literal.
func NewCover() Cover {
	return Cover{Platform: string(DomainCover)}
}

func (c Cover) Domain() Domain {
	return DomainCover
}

func (Cover) entity() {}

func (c Cover) WithCommandTopic(commandTopic string) Cover {
	c.CommandTopic = &commandTopic
	return c
}

func (c Cover) WithDeviceClass(deviceClass hass.CoverDeviceClass) Cover {
	c.DeviceClass = &deviceClass
	return c
}

func (c Cover) WithOptimistic(optimistic bool) Cover {
	c.Optimistic = &optimistic
	return c
}

func (c Cover) WithPayloadClose(payloadClose string) Cover {
	c.PayloadClose = &payloadClose
	return c
}

func (c Cover) WithPayloadOpen(payloadOpen string) Cover {
	c.PayloadOpen = &payloadOpen
	return c
}

func (c Cover) WithPayloadStop(payloadStop string) Cover {
	c.PayloadStop = &payloadStop
	return c
}

func (c Cover) WithPayloadStopTilt(payloadStopTilt string) Cover {
	c.PayloadStopTilt = &payloadStopTilt
	return c
}

func (c Cover) WithPositionClosed(positionClosed int) Cover {
	c.PositionClosed = &positionClosed
	return c
}

func (c Cover) WithPositionOpen(positionOpen int) Cover {
	c.PositionOpen = &positionOpen
	return c
}

func (c Cover) WithPositionTemplate(positionTemplate string) Cover {
	c.PositionTemplate = &positionTemplate
	return c
}

func (c Cover) WithPositionTopic(positionTopic string) Cover {
	c.PositionTopic = &positionTopic
	return c
}

func (c Cover) WithSetPositionTemplate(setPositionTemplate string) Cover {
	c.SetPositionTemplate = &setPositionTemplate
	return c
}

func (c Cover) WithSetPositionTopic(setPositionTopic string) Cover {
	c.SetPositionTopic = &setPositionTopic
	return c
}

func (c Cover) WithStateClosed(stateClosed string) Cover {
	c.StateClosed = &stateClosed
	return c
}

func (c Cover) WithStateClosing(stateClosing string) Cover {
	c.StateClosing = &stateClosing
	return c
}

func (c Cover) WithStateOpen(stateOpen string) Cover {
	c.StateOpen = &stateOpen
	return c
}

func (c Cover) WithStateOpening(stateOpening string) Cover {
	c.StateOpening = &stateOpening
	return c
}

func (c Cover) WithStateStopped(stateStopped string) Cover {
	c.StateStopped = &stateStopped
	return c
}

func (c Cover) WithStateTopic(stateTopic string) Cover {
	c.StateTopic = &stateTopic
	return c
}

func (c Cover) WithTiltClosedValue(tiltClosedValue int) Cover {
	c.TiltClosedValue = &tiltClosedValue
	return c
}

func (c Cover) WithTiltCommandTemplate(tiltCommandTemplate string) Cover {
	c.TiltCommandTemplate = &tiltCommandTemplate
	return c
}

func (c Cover) WithTiltCommandTopic(tiltCommandTopic string) Cover {
	c.TiltCommandTopic = &tiltCommandTopic
	return c
}

func (c Cover) WithTiltMax(tiltMax int) Cover {
	c.TiltMax = &tiltMax
	return c
}

func (c Cover) WithTiltMin(tiltMin int) Cover {
	c.TiltMin = &tiltMin
	return c
}

func (c Cover) WithTiltOpenedValue(tiltOpenedValue int) Cover {
	c.TiltOpenedValue = &tiltOpenedValue
	return c
}

func (c Cover) WithTiltOptimistic(tiltOptimistic bool) Cover {
	c.TiltOptimistic = &tiltOptimistic
	return c
}

func (c Cover) WithTiltStatusTemplate(tiltStatusTemplate string) Cover {
	c.TiltStatusTemplate = &tiltStatusTemplate
	return c
}

func (c Cover) WithTiltStatusTopic(tiltStatusTopic string) Cover {
	c.TiltStatusTopic = &tiltStatusTopic
	return c
}

func (c Cover) WithValueTemplate(valueTemplate string) Cover {
	c.ValueTemplate = &valueTemplate
	return c
}

func (c Cover) WithTopicPrefix(topicPrefix string) Cover {
	c.TopicPrefix = &topicPrefix
	return c
}

func (c Cover) WithOrigin(origin hass.Origin) Cover {
	c.Origin = origin
	return c
}

func (c Cover) WithDevice(device hass.Device) Cover {
	c.Device = device
	return c
}

func (c Cover) WithAvailability(availability hass.Availability) Cover {
	c.Availability = availability
	return c
}

func (c Cover) WithEntityCategory(entityCategory hass.EntityCategory) Cover {
	c.EntityCategory = &entityCategory
	return c
}

func (c Cover) WithEnabledByDefault(enabledByDefault bool) Cover {
	c.EnabledByDefault = &enabledByDefault
	return c
}

func (c Cover) WithEncoding(encoding string) Cover {
	c.Encoding = &encoding
	return c
}

func (c Cover) WithEntityPicture(entityPicture *url.URL) Cover {
	c.EntityPicture = entityPicture
	return c
}

func (c Cover) WithIcon(icon string) Cover {
	c.Icon = &icon
	return c
}

func (c Cover) WithJSONAttributesTemplate(jsonAttributesTemplate string) Cover {
	c.JSONAttributesTemplate = &jsonAttributesTemplate
	return c
}

func (c Cover) WithJSONAttributesTopic(jsonAttributesTopic string) Cover {
	c.JSONAttributesTopic = &jsonAttributesTopic
	return c
}

func (c Cover) WithName(name string) Cover {
	c.Name = &name
	return c
}

func (c Cover) WithObjectID(objectID string) Cover {
	c.ObjectID = &objectID
	return c
}

func (c Cover) WithDefaultEntityID(defaultEntityID string) Cover {
	c.DefaultEntityID = &defaultEntityID
	return c
}

func (c Cover) WithUniqueID(uniqueID string) Cover {
	c.UniqueID = &uniqueID
	return c
}

func (c Cover) WithQoS(qos mqtt.QualityOfService) Cover {
	c.QoS = &qos
	return c
}

func (c Cover) WithRetain(retain bool) Cover {
	c.Retain = &retain
	return c
}

func (c Cover) WithPlatform(platform string) Cover {
	c.Platform = platform
	return c
}

func (c *Cover) fields() discovery.Fields {
	return append(discovery.Fields{
		discovery.Optional(discovery.FieldCommandTopic, &c.CommandTopic),
		discovery.Optional(discovery.FieldDeviceClass, &c.DeviceClass),
		discovery.Optional(discovery.FieldOptimistic, &c.Optimistic),
		discovery.Optional(discovery.FieldPayloadClose, &c.PayloadClose),
		discovery.Optional(discovery.FieldPayloadOpen, &c.PayloadOpen),
		discovery.Optional(discovery.FieldPayloadStop, &c.PayloadStop),
		discovery.Optional(discovery.FieldPayloadStopTilt, &c.PayloadStopTilt),
		discovery.Optional(discovery.FieldPositionClosed, &c.PositionClosed),
		discovery.Optional(discovery.FieldPositionOpen, &c.PositionOpen),
		discovery.Optional(discovery.FieldPositionTemplate, &c.PositionTemplate),
		discovery.Optional(discovery.FieldPositionTopic, &c.PositionTopic),
		discovery.Optional(discovery.FieldSetPositionTemplate, &c.SetPositionTemplate),
		discovery.Optional(discovery.FieldSetPositionTopic, &c.SetPositionTopic),
		discovery.Optional(discovery.FieldStateClosed, &c.StateClosed),
		discovery.Optional(discovery.FieldStateClosing, &c.StateClosing),
		discovery.Optional(discovery.FieldStateOpen, &c.StateOpen),
		discovery.Optional(discovery.FieldStateOpening, &c.StateOpening),
		discovery.Optional(discovery.FieldStateStopped, &c.StateStopped),
		discovery.Optional(discovery.FieldStateTopic, &c.StateTopic),
		discovery.Optional(discovery.FieldTiltClosedValue, &c.TiltClosedValue),
		discovery.Optional(discovery.FieldTiltCommandTemplate, &c.TiltCommandTemplate),
		discovery.Optional(discovery.FieldTiltCommandTopic, &c.TiltCommandTopic),
		discovery.Optional(discovery.FieldTiltMax, &c.TiltMax),
		discovery.Optional(discovery.FieldTiltMin, &c.TiltMin),
		discovery.Optional(discovery.FieldTiltOpenedValue, &c.TiltOpenedValue),
		discovery.Optional(discovery.FieldTiltOptimistic, &c.TiltOptimistic),
		discovery.Optional(discovery.FieldTiltStatusTemplate, &c.TiltStatusTemplate),
		discovery.Optional(discovery.FieldTiltStatusTopic, &c.TiltStatusTopic),
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

func (c Cover) MarshalJSONTo(e *jsontext.Encoder) error {
	return c.fields().MarshalJSONTo(e)
}

func (c *Cover) UnmarshalJSONFrom(d *jsontext.Decoder) error {
	return c.fields().UnmarshalJSONFrom(d)
}
