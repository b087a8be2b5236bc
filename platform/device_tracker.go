package platform

import (
	"encoding/json/jsontext"
	"net/url"

	"github.com/nlowe/hadiscovery/discovery"
	"github.com/nlowe/hadiscovery/hass"
	"github.com/nlowe/hadiscovery/mqtt"
)

// DeviceTracker is the device_tracker.mqtt integration. Location can be reported either as a zone name on StateTopic,
// or as GPS coordinates through the JSON attributes topic.
//
// See https://www.home-assistant.io/integrations/device_tracker.mqtt/
type DeviceTracker struct {
	// The payload value that represents the "home" state for the device.
	PayloadHome *string
	// The payload value that represents the "not_home" state for the device.
	PayloadNotHome *string
	// The payload value that will have the device's location automatically derived from Home Assistant's zones. Defaults
	// to "None".
	PayloadReset *string
	// Attribute of a device tracker that affects state when being used to track a person.
	SourceType *hass.SourceType
	// The MQTT topic subscribed to receive device tracker state changes. The states defined in StateTopic override the
	// location states defined by the JSONAttributesTopic.
	StateTopic *string
	// Defines a template that returns a device tracker state.
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

// NewDeviceTracker returns a DeviceTracker with every optional field unset and Platform set to the DomainDeviceTracker literal.
func NewDeviceTracker() DeviceTracker {
	return DeviceTracker{Platform: string(DomainDeviceTracker)}
}

func (dt DeviceTracker) Domain() Domain {
	return DomainDeviceTracker
}

func (DeviceTracker) entity() {}

func (dt DeviceTracker) WithPayloadHome(payloadHome string) DeviceTracker {
	dt.PayloadHome = &payloadHome
	return dt
}

func (dt DeviceTracker) WithPayloadNotHome(payloadNotHome string) DeviceTracker {
	dt.PayloadNotHome = &payloadNotHome
	return dt
}

func (dt DeviceTracker) WithPayloadReset(payloadReset string) DeviceTracker {
	dt.PayloadReset = &payloadReset
	return dt
}

func (dt DeviceTracker) WithSourceType(sourceType hass.SourceType) DeviceTracker {
	dt.SourceType = &sourceType
	return dt
}

func (dt DeviceTracker) WithStateTopic(stateTopic string) DeviceTracker {
	dt.StateTopic = &stateTopic
	return dt
}

func (dt DeviceTracker) WithValueTemplate(valueTemplate string) DeviceTracker {
	dt.ValueTemplate = &valueTemplate
	return dt
}

func (dt DeviceTracker) WithTopicPrefix(topicPrefix string) DeviceTracker {
	dt.TopicPrefix = &topicPrefix
	return dt
}

func (dt DeviceTracker) WithOrigin(origin hass.Origin) DeviceTracker {
	dt.Origin = origin
	return dt
}

func (dt DeviceTracker) WithDevice(device hass.Device) DeviceTracker {
	dt.Device = device
	return dt
}

func (dt DeviceTracker) WithAvailability(availability hass.Availability) DeviceTracker {
	dt.Availability = availability
	return dt
}

func (dt DeviceTracker) WithEntityCategory(entityCategory hass.EntityCategory) DeviceTracker {
	dt.EntityCategory = &entityCategory
	return dt
}

func (dt DeviceTracker) WithEnabledByDefault(enabledByDefault bool) DeviceTracker {
	dt.EnabledByDefault = &enabledByDefault
	return dt
}

func (dt DeviceTracker) WithEncoding(encoding string) DeviceTracker {
	dt.Encoding = &encoding
	return dt
}

func (dt DeviceTracker) WithEntityPicture(entityPicture *url.URL) DeviceTracker {
	dt.EntityPicture = entityPicture
	return dt
}

func (dt DeviceTracker) WithIcon(icon string) DeviceTracker {
	dt.Icon = &icon
	return dt
}

func (dt DeviceTracker) WithJSONAttributesTemplate(jsonAttributesTemplate string) DeviceTracker {
	dt.JSONAttributesTemplate = &jsonAttributesTemplate
	return dt
}

func (dt DeviceTracker) WithJSONAttributesTopic(jsonAttributesTopic string) DeviceTracker {
	dt.JSONAttributesTopic = &jsonAttributesTopic
	return dt
}

func (dt DeviceTracker) WithName(name string) DeviceTracker {
	dt.Name = &name
	return dt
}

func (dt DeviceTracker) WithObjectID(objectID string) DeviceTracker {
	dt.ObjectID = &objectID
	return dt
}

func (dt DeviceTracker) WithDefaultEntityID(defaultEntityID string) DeviceTracker {
	dt.DefaultEntityID = &defaultEntityID
	return dt
}

func (dt DeviceTracker) WithUniqueID(uniqueID string) DeviceTracker {
	dt.UniqueID = &uniqueID
	return dt
}

func (dt DeviceTracker) WithQoS(qos mqtt.QualityOfService) DeviceTracker {
	dt.QoS = &qos
	return dt
}

func (dt DeviceTracker) WithPlatform(platform string) DeviceTracker {
	dt.Platform = platform
	return dt
}

func (dt *DeviceTracker) fields() discovery.Fields {
	return append(discovery.Fields{
		discovery.Optional(discovery.FieldPayloadHome, &dt.PayloadHome),
		discovery.Optional(discovery.FieldPayloadNotHome, &dt.PayloadNotHome),
		discovery.Optional(discovery.FieldPayloadReset, &dt.PayloadReset),
		discovery.Optional(discovery.FieldSourceType, &dt.SourceType),
		discovery.Optional(discovery.FieldStateTopic, &dt.StateTopic),
		discovery.Optional(discovery.FieldValueTemplate, &dt.ValueTemplate),
		discovery.Optional(discovery.FieldTopicPrefix, &dt.TopicPrefix),
		discovery.Required(discovery.FieldOrigin, &dt.Origin),
		discovery.Required(discovery.FieldDevice, &dt.Device),
		discovery.Optional(discovery.FieldEntityCategory, &dt.EntityCategory),
		discovery.Optional(discovery.FieldEnabledByDefault, &dt.EnabledByDefault),
		discovery.Optional(discovery.FieldEncoding, &dt.Encoding),
		discovery.Optional(discovery.FieldEntityPicture, &dt.EntityPicture),
		discovery.Optional(discovery.FieldIcon, &dt.Icon),
		discovery.Optional(discovery.FieldJSONAttributesTemplate, &dt.JSONAttributesTemplate),
		discovery.Optional(discovery.FieldJSONAttributesTopic, &dt.JSONAttributesTopic),
		discovery.Optional(discovery.FieldName, &dt.Name),
		discovery.Optional(discovery.FieldObjectID, &dt.ObjectID),
		discovery.Optional(discovery.FieldDefaultEntityID, &dt.DefaultEntityID),
		discovery.Optional(discovery.FieldUniqueID, &dt.UniqueID),
		discovery.Optional(discovery.FieldQoS, &dt.QoS),
		discovery.Required(discovery.FieldPlatform, &dt.Platform),
	}, dt.Availability.Fields()...)
}

func (dt DeviceTracker) MarshalJSONTo(e *jsontext.Encoder) error {
	return dt.fields().MarshalJSONTo(e)
}

func (dt *DeviceTracker) UnmarshalJSONFrom(d *jsontext.Decoder) error {
	return dt.fields().UnmarshalJSONFrom(d)
}
