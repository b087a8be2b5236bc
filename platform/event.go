package platform

import (
	"encoding/json/jsontext"
	"net/url"

	"github.com/nlowe/hadiscovery/discovery"
	"github.com/nlowe/hadiscovery/hass"
	"github.com/nlowe/hadiscovery/mqtt"
)

// Event is the event.mqtt integration. Each message on StateTopic must be a JSON object with an event_type key whose
// value is one of EventTypes.
//
// See https://www.home-assistant.io/integrations/event.mqtt/
type Event struct {
	// The type/class of the event to set the icon in the frontend.
	DeviceClass *hass.EventDeviceClass
	// A list of valid event_type strings. Required.
	EventTypes []string
	// The MQTT topic subscribed to receive JSON event payloads. Required.
	StateTopic string
	// Defines a template to extract the value and render it to a valid JSON event payload.
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
	// Must be the domain literal for this entity. Pre-filled by the constructor.
	Platform string
}

// NewEvent returns a Event with every optional field unset and Platform set to the DomainEvent literal.
func NewEvent() Event {
	return Event{Platform: string(DomainEvent)}
}

func (ev Event) Domain() Domain {
	return DomainEvent
}

func (Event) entity() {}

func (ev Event) WithDeviceClass(deviceClass hass.EventDeviceClass) Event {
	ev.DeviceClass = &deviceClass
	return ev
}

func (ev Event) WithEventTypes(eventTypes ...string) Event {
	ev.EventTypes = eventTypes
	return ev
}

func (ev Event) WithStateTopic(stateTopic string) Event {
	ev.StateTopic = stateTopic
	return ev
}

func (ev Event) WithValueTemplate(valueTemplate string) Event {
	ev.ValueTemplate = &valueTemplate
	return ev
}

func (ev Event) WithTopicPrefix(topicPrefix string) Event {
	ev.TopicPrefix = &topicPrefix
	return ev
}

func (ev Event) WithOrigin(origin hass.Origin) Event {
	ev.Origin = origin
	return ev
}

func (ev Event) WithDevice(device hass.Device) Event {
	ev.Device = device
	return ev
}

func (ev Event) WithAvailability(availability hass.Availability) Event {
	ev.Availability = availability
	return ev
}

func (ev Event) WithEntityCategory(entityCategory hass.EntityCategory) Event {
	ev.EntityCategory = &entityCategory
	return ev
}

func (ev Event) WithEnabledByDefault(enabledByDefault bool) Event {
	ev.EnabledByDefault = &enabledByDefault
	return ev
}

func (ev Event) WithEncoding(encoding string) Event {
	ev.Encoding = &encoding
	return ev
}

func (ev Event) WithEntityPicture(entityPicture *url.URL) Event {
	ev.EntityPicture = entityPicture
	return ev
}

func (ev Event) WithIcon(icon string) Event {
	ev.Icon = &icon
	return ev
}

func (ev Event) WithJSONAttributesTemplate(jsonAttributesTemplate string) Event {
	ev.JSONAttributesTemplate = &jsonAttributesTemplate
	return ev
}

func (ev Event) WithJSONAttributesTopic(jsonAttributesTopic string) Event {
	ev.JSONAttributesTopic = &jsonAttributesTopic
	return ev
}

func (ev Event) WithName(name string) Event {
	ev.Name = &name
	return ev
}

func (ev Event) WithObjectID(objectID string) Event {
	ev.ObjectID = &objectID
	return ev
}

func (ev Event) WithDefaultEntityID(defaultEntityID string) Event {
	ev.DefaultEntityID = &defaultEntityID
	return ev
}

func (ev Event) WithUniqueID(uniqueID string) Event {
	ev.UniqueID = &uniqueID
	return ev
}

func (ev Event) WithQoS(qos mqtt.QualityOfService) Event {
	ev.QoS = &qos
	return ev
}

func (ev Event) WithPlatform(platform string) Event {
	ev.Platform = platform
	return ev
}

func (ev *Event) fields() discovery.Fields {
	return append(discovery.Fields{
		discovery.Optional(discovery.FieldDeviceClass, &ev.DeviceClass),
		discovery.Required(discovery.FieldEventTypes, &ev.EventTypes),
		discovery.Required(discovery.FieldStateTopic, &ev.StateTopic),
		discovery.Optional(discovery.FieldValueTemplate, &ev.ValueTemplate),
		discovery.Optional(discovery.FieldTopicPrefix, &ev.TopicPrefix),
		discovery.Required(discovery.FieldOrigin, &ev.Origin),
		discovery.Required(discovery.FieldDevice, &ev.Device),
		discovery.Optional(discovery.FieldEntityCategory, &ev.EntityCategory),
		discovery.Optional(discovery.FieldEnabledByDefault, &ev.EnabledByDefault),
		discovery.Optional(discovery.FieldEncoding, &ev.Encoding),
		discovery.Optional(discovery.FieldEntityPicture, &ev.EntityPicture),
		discovery.Optional(discovery.FieldIcon, &ev.Icon),
		discovery.Optional(discovery.FieldJSONAttributesTemplate, &ev.JSONAttributesTemplate),
		discovery.Optional(discovery.FieldJSONAttributesTopic, &ev.JSONAttributesTopic),
		discovery.Optional(discovery.FieldName, &ev.Name),
		discovery.Optional(discovery.FieldObjectID, &ev.ObjectID),
		discovery.Optional(discovery.FieldDefaultEntityID, &ev.DefaultEntityID),
		discovery.Optional(discovery.FieldUniqueID, &ev.UniqueID),
		discovery.Optional(discovery.FieldQoS, &ev.QoS),
		discovery.Required(discovery.FieldPlatform, &ev.Platform),
	}, ev.Availability.Fields()...)
}

func (ev Event) MarshalJSONTo(e *jsontext.Encoder) error {
	return ev.fields().MarshalJSONTo(e)
}

func (ev *Event) UnmarshalJSONFrom(d *jsontext.Decoder) error {
	return ev.fields().UnmarshalJSONFrom(d)
}
