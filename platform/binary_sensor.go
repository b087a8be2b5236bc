package platform

import (
	"encoding/json/jsontext"
	"net/url"
	"time"

	"github.com/nlowe/hadiscovery/discovery"
	"github.com/nlowe/hadiscovery/hass"
	"github.com/nlowe/hadiscovery/mqtt"
)

// BinarySensor is the binary_sensor.mqtt integration. A binary sensor reads an on or off state from StateTopic; it
// never receives commands.
//
// See https://www.home-assistant.io/integrations/binary_sensor.mqtt/
type BinarySensor struct {
	// Sets the class of the device, changing the device state and icon that is displayed on the frontend. Use
	// BinarySensorDeviceClassNone to send an explicit null.
	DeviceClass *hass.BinarySensorDeviceClass
	// If set, the state expires after this duration without an update and becomes unavailable. Sent as whole seconds,
	// rounded up.
	ExpireAfter *time.Duration
	// Sends update events even if the value hasn't changed. Useful if you want to have meaningful value graphs in history.
	ForceUpdate *bool
	// After this duration without an "on" update, the sensor resets to "off". Sent as whole seconds, rounded up.
	OffDelay *time.Duration
	// The string that represents the off state. It will be compared to the message in the StateTopic (see ValueTemplate
	// for details). Defaults to "OFF".
	PayloadOff *string
	// The string that represents the on state. It will be compared to the message in the StateTopic (see ValueTemplate for
	// details). Defaults to "ON".
	PayloadOn *string
	// The MQTT topic subscribed to receive sensor's state. Required.
	StateTopic string
	// Defines a template that returns a string to be compared to PayloadOn/PayloadOff or an empty string, in which case
	// the MQTT message will be removed.
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

// NewBinarySensor returns a BinarySensor with every optional field unset and Platform set to the DomainBinarySensor literal.
func NewBinarySensor() BinarySensor {
	return BinarySensor{Platform: string(DomainBinarySensor)}
}

func (bs BinarySensor) Domain() Domain {
	return DomainBinarySensor
}

func (BinarySensor) entity() {}

func (bs BinarySensor) WithDeviceClass(deviceClass hass.BinarySensorDeviceClass) BinarySensor {
	bs.DeviceClass = &deviceClass
	return bs
}

func (bs BinarySensor) WithExpireAfter(expireAfter time.Duration) BinarySensor {
	bs.ExpireAfter = &expireAfter
	return bs
}

func (bs BinarySensor) WithForceUpdate(forceUpdate bool) BinarySensor {
	bs.ForceUpdate = &forceUpdate
	return bs
}

func (bs BinarySensor) WithOffDelay(offDelay time.Duration) BinarySensor {
	bs.OffDelay = &offDelay
	return bs
}

func (bs BinarySensor) WithPayloadOff(payloadOff string) BinarySensor {
	bs.PayloadOff = &payloadOff
	return bs
}

func (bs BinarySensor) WithPayloadOn(payloadOn string) BinarySensor {
	bs.PayloadOn = &payloadOn
	return bs
}

func (bs BinarySensor) WithStateTopic(stateTopic string) BinarySensor {
	bs.StateTopic = stateTopic
	return bs
}

func (bs BinarySensor) WithValueTemplate(valueTemplate string) BinarySensor {
	bs.ValueTemplate = &valueTemplate
	return bs
}

func (bs BinarySensor) WithTopicPrefix(topicPrefix string) BinarySensor {
	bs.TopicPrefix = &topicPrefix
	return bs
}

func (bs BinarySensor) WithOrigin(origin hass.Origin) BinarySensor {
	bs.Origin = origin
	return bs
}

func (bs BinarySensor) WithDevice(device hass.Device) BinarySensor {
	bs.Device = device
	return bs
}

func (bs BinarySensor) WithAvailability(availability hass.Availability) BinarySensor {
	bs.Availability = availability
	return bs
}

func (bs BinarySensor) WithEntityCategory(entityCategory hass.EntityCategory) BinarySensor {
	bs.EntityCategory = &entityCategory
	return bs
}

func (bs BinarySensor) WithEnabledByDefault(enabledByDefault bool) BinarySensor {
	bs.EnabledByDefault = &enabledByDefault
	return bs
}

func (bs BinarySensor) WithEncoding(encoding string) BinarySensor {
	bs.Encoding = &encoding
	return bs
}

func (bs BinarySensor) WithEntityPicture(entityPicture *url.URL) BinarySensor {
	bs.EntityPicture = entityPicture
	return bs
}

func (bs BinarySensor) WithIcon(icon string) BinarySensor {
	bs.Icon = &icon
	return bs
}

func (bs BinarySensor) WithJSONAttributesTemplate(jsonAttributesTemplate string) BinarySensor {
	bs.JSONAttributesTemplate = &jsonAttributesTemplate
	return bs
}

func (bs BinarySensor) WithJSONAttributesTopic(jsonAttributesTopic string) BinarySensor {
	bs.JSONAttributesTopic = &jsonAttributesTopic
	return bs
}

func (bs BinarySensor) WithName(name string) BinarySensor {
	bs.Name = &name
	return bs
}

func (bs BinarySensor) WithObjectID(objectID string) BinarySensor {
	bs.ObjectID = &objectID
	return bs
}

func (bs BinarySensor) WithDefaultEntityID(defaultEntityID string) BinarySensor {
	bs.DefaultEntityID = &defaultEntityID
	return bs
}

func (bs BinarySensor) WithUniqueID(uniqueID string) BinarySensor {
	bs.UniqueID = &uniqueID
	return bs
}

func (bs BinarySensor) WithQoS(qos mqtt.QualityOfService) BinarySensor {
	bs.QoS = &qos
	return bs
}

func (bs BinarySensor) WithPlatform(platform string) BinarySensor {
	bs.Platform = platform
	return bs
}

func (bs *BinarySensor) fields() discovery.Fields {
	return append(discovery.Fields{
		discovery.Optional(discovery.FieldDeviceClass, &bs.DeviceClass),
		discovery.Optional(discovery.FieldExpireAfter, &bs.ExpireAfter),
		discovery.Optional(discovery.FieldForceUpdate, &bs.ForceUpdate),
		discovery.Optional(discovery.FieldOffDelay, &bs.OffDelay),
		discovery.Optional(discovery.FieldPayloadOff, &bs.PayloadOff),
		discovery.Optional(discovery.FieldPayloadOn, &bs.PayloadOn),
		discovery.Required(discovery.FieldStateTopic, &bs.StateTopic),
		discovery.Optional(discovery.FieldValueTemplate, &bs.ValueTemplate),
		discovery.Optional(discovery.FieldTopicPrefix, &bs.TopicPrefix),
		discovery.Required(discovery.FieldOrigin, &bs.Origin),
		discovery.Required(discovery.FieldDevice, &bs.Device),
		discovery.Optional(discovery.FieldEntityCategory, &bs.EntityCategory),
		discovery.Optional(discovery.FieldEnabledByDefault, &bs.EnabledByDefault),
		discovery.Optional(discovery.FieldEncoding, &bs.Encoding),
		discovery.Optional(discovery.FieldEntityPicture, &bs.EntityPicture),
		discovery.Optional(discovery.FieldIcon, &bs.Icon),
		discovery.Optional(discovery.FieldJSONAttributesTemplate, &bs.JSONAttributesTemplate),
		discovery.Optional(discovery.FieldJSONAttributesTopic, &bs.JSONAttributesTopic),
		discovery.Optional(discovery.FieldName, &bs.Name),
		discovery.Optional(discovery.FieldObjectID, &bs.ObjectID),
		discovery.Optional(discovery.FieldDefaultEntityID, &bs.DefaultEntityID),
		discovery.Optional(discovery.FieldUniqueID, &bs.UniqueID),
		discovery.Optional(discovery.FieldQoS, &bs.QoS),
		discovery.Required(discovery.FieldPlatform, &bs.Platform),
	}, bs.Availability.Fields()...)
}

func (bs BinarySensor) MarshalJSONTo(e *jsontext.Encoder) error {
	return bs.fields().MarshalJSONTo(e)
}

func (bs *BinarySensor) UnmarshalJSONFrom(d *jsontext.Decoder) error {
	return bs.fields().UnmarshalJSONFrom(d)
}
