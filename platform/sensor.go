package platform

import (
	"encoding/json/jsontext"
	"net/url"
	"time"

	"github.com/nlowe/hadiscovery/discovery"
	"github.com/nlowe/hadiscovery/hass"
	"github.com/nlowe/hadiscovery/mqtt"
)

// Sensor is the sensor.mqtt integration. A sensor reads a value from StateTopic; it never receives commands.
//
// See https://www.home-assistant.io/integrations/sensor.mqtt/
type Sensor struct {
	// The type/class of the sensor to set the icon in the frontend. Use hass.SensorDeviceClassNone to send an explicit
	// null.
	DeviceClass *hass.SensorDeviceClass
	// If set, the state expires after this duration without an update and becomes unavailable. Sent as whole seconds,
	// rounded up.
	ExpireAfter *time.Duration
	// Sends update events even if the value hasn't changed. Useful if you want to have meaningful value graphs in history.
	ForceUpdate *bool
	// Defines a template to extract the last_reset. When LastResetValueTemplate is set, the StateClass must be total.
	LastResetValueTemplate *string
	// List of allowed sensor state value. An empty list is not allowed. The sensor's DeviceClass must be set to
	// hass.SensorDeviceClassEnum. Must not be set together with StateClass or UnitOfMeasurement.
	Options []string
	// The number of decimals which should be used in the sensor's state after rounding.
	SuggestedDisplayPrecision *int
	// The state class of the sensor.
	StateClass *hass.StateClass
	// The MQTT topic subscribed to receive sensor values. Required.
	StateTopic string
	// Defines the unit of measurement of the entity, if any.
	UnitOfMeasurement *hass.Unit
	// Defines a template to extract the value. If the template throws an error, the current state will be used instead.
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

// NewSensor returns a Sensor with every optional field unset and Platform set to the DomainSensor literal.
func NewSensor() Sensor {
	return Sensor{Platform: string(DomainSensor)}
}

func (s Sensor) Domain() Domain {
	return DomainSensor
}

func (Sensor) entity() {}

func (s Sensor) WithDeviceClass(deviceClass hass.SensorDeviceClass) Sensor {
	s.DeviceClass = &deviceClass
	return s
}

func (s Sensor) WithExpireAfter(expireAfter time.Duration) Sensor {
	s.ExpireAfter = &expireAfter
	return s
}

func (s Sensor) WithForceUpdate(forceUpdate bool) Sensor {
	s.ForceUpdate = &forceUpdate
	return s
}

func (s Sensor) WithLastResetValueTemplate(lastResetValueTemplate string) Sensor {
	s.LastResetValueTemplate = &lastResetValueTemplate
	return s
}

func (s Sensor) WithOptions(options ...string) Sensor {
	s.Options = options
	return s
}

func (s Sensor) WithSuggestedDisplayPrecision(suggestedDisplayPrecision int) Sensor {
	s.SuggestedDisplayPrecision = &suggestedDisplayPrecision
	return s
}

func (s Sensor) WithStateClass(stateClass hass.StateClass) Sensor {
	s.StateClass = &stateClass
	return s
}

func (s Sensor) WithStateTopic(stateTopic string) Sensor {
	s.StateTopic = stateTopic
	return s
}

func (s Sensor) WithUnitOfMeasurement(unitOfMeasurement hass.Unit) Sensor {
	s.UnitOfMeasurement = &unitOfMeasurement
	return s
}

func (s Sensor) WithValueTemplate(valueTemplate string) Sensor {
	s.ValueTemplate = &valueTemplate
	return s
}

func (s Sensor) WithTopicPrefix(topicPrefix string) Sensor {
	s.TopicPrefix = &topicPrefix
	return s
}

func (s Sensor) WithOrigin(origin hass.Origin) Sensor {
	s.Origin = origin
	return s
}

func (s Sensor) WithDevice(device hass.Device) Sensor {
	s.Device = device
	return s
}

func (s Sensor) WithAvailability(availability hass.Availability) Sensor {
	s.Availability = availability
	return s
}

func (s Sensor) WithEntityCategory(entityCategory hass.EntityCategory) Sensor {
	s.EntityCategory = &entityCategory
	return s
}

func (s Sensor) WithEnabledByDefault(enabledByDefault bool) Sensor {
	s.EnabledByDefault = &enabledByDefault
	return s
}

func (s Sensor) WithEncoding(encoding string) Sensor {
	s.Encoding = &encoding
	return s
}

func (s Sensor) WithEntityPicture(entityPicture *url.URL) Sensor {
	s.EntityPicture = entityPicture
	return s
}

func (s Sensor) WithIcon(icon string) Sensor {
	s.Icon = &icon
	return s
}

func (s Sensor) WithJSONAttributesTemplate(jsonAttributesTemplate string) Sensor {
	s.JSONAttributesTemplate = &jsonAttributesTemplate
	return s
}

func (s Sensor) WithJSONAttributesTopic(jsonAttributesTopic string) Sensor {
	s.JSONAttributesTopic = &jsonAttributesTopic
	return s
}

func (s Sensor) WithName(name string) Sensor {
	s.Name = &name
	return s
}

func (s Sensor) WithObjectID(objectID string) Sensor {
	s.ObjectID = &objectID
	return s
}

func (s Sensor) WithDefaultEntityID(defaultEntityID string) Sensor {
	s.DefaultEntityID = &defaultEntityID
	return s
}

func (s Sensor) WithUniqueID(uniqueID string) Sensor {
	s.UniqueID = &uniqueID
	return s
}

func (s Sensor) WithQoS(qos mqtt.QualityOfService) Sensor {
	s.QoS = &qos
	return s
}

func (s Sensor) WithPlatform(platform string) Sensor {
	s.Platform = platform
	return s
}

func (s *Sensor) fields() discovery.Fields {
	return append(discovery.Fields{
		discovery.Optional(discovery.FieldDeviceClass, &s.DeviceClass),
		discovery.Optional(discovery.FieldExpireAfter, &s.ExpireAfter),
		discovery.Optional(discovery.FieldForceUpdate, &s.ForceUpdate),
		discovery.Optional(discovery.FieldLastResetValueTemplate, &s.LastResetValueTemplate),
		discovery.Slice(discovery.FieldOptions, &s.Options),
		discovery.Optional(discovery.FieldSuggestedDisplayPrecision, &s.SuggestedDisplayPrecision),
		discovery.Optional(discovery.FieldStateClass, &s.StateClass),
		discovery.Required(discovery.FieldStateTopic, &s.StateTopic),
		discovery.Optional(discovery.FieldUnitOfMeasurement, &s.UnitOfMeasurement),
		discovery.Optional(discovery.FieldValueTemplate, &s.ValueTemplate),
		discovery.Optional(discovery.FieldTopicPrefix, &s.TopicPrefix),
		discovery.Required(discovery.FieldOrigin, &s.Origin),
		discovery.Required(discovery.FieldDevice, &s.Device),
		discovery.Optional(discovery.FieldEntityCategory, &s.EntityCategory),
		discovery.Optional(discovery.FieldEnabledByDefault, &s.EnabledByDefault),
		discovery.Optional(discovery.FieldEncoding, &s.Encoding),
		discovery.Optional(discovery.FieldEntityPicture, &s.EntityPicture),
		discovery.Optional(discovery.FieldIcon, &s.Icon),
		discovery.Optional(discovery.FieldJSONAttributesTemplate, &s.JSONAttributesTemplate),
		discovery.Optional(discovery.FieldJSONAttributesTopic, &s.JSONAttributesTopic),
		discovery.Optional(discovery.FieldName, &s.Name),
		discovery.Optional(discovery.FieldObjectID, &s.ObjectID),
		discovery.Optional(discovery.FieldDefaultEntityID, &s.DefaultEntityID),
		discovery.Optional(discovery.FieldUniqueID, &s.UniqueID),
		discovery.Optional(discovery.FieldQoS, &s.QoS),
		discovery.Required(discovery.FieldPlatform, &s.Platform),
	}, s.Availability.Fields()...)
}

func (s Sensor) MarshalJSONTo(e *jsontext.Encoder) error {
	return s.fields().MarshalJSONTo(e)
}

func (s *Sensor) UnmarshalJSONFrom(d *jsontext.Decoder) error {
	return s.fields().UnmarshalJSONFrom(d)
}
