package platform

import (
	"encoding/json/jsontext"
	"net/url"

	"github.com/nlowe/hadiscovery/discovery"
	"github.com/nlowe/hadiscovery/hass"
	"github.com/nlowe/hadiscovery/mqtt"
)

// Image is the image.mqtt integration. Home Assistant either receives image data on ImageTopic or an image URL on
// URLTopic. The two are mutually exclusive; ImageTopic is always sent (as the empty string when unset), so callers
// using URLTopic should be aware Home Assistant will reject a payload that sets both.
//
// See https://www.home-assistant.io/integrations/image.mqtt/
type Image struct {
	// The content type of an image data message received on ImageTopic. This option cannot be used with UrlTopic because
	// the content type is derived when downloading the image.
	ContentType *string
	// The encoding of the image payloads received. Set to "b64" to enable base64 decoding of image data received on
	// ImageTopic.
	ImageEncoding *string
	// The MQTT topic to subscribe to receive the image payload of the image to be downloaded. Required.
	ImageTopic string
	// Defines a template to extract an image URL from a message received at UrlTopic.
	URLTemplate *string
	// The MQTT topic to subscribe to receive an image URL.
	URLTopic *string

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

// NewImage returns a Image with every optional field unset and Platform set to the DomainImage literal.
func NewImage() Image {
	return Image{Platform: string(DomainImage)}
}

func (i Image) Domain() Domain {
	return DomainImage
}

func (Image) entity() {}

func (i Image) WithContentType(contentType string) Image {
	i.ContentType = &contentType
	return i
}

func (i Image) WithImageEncoding(imageEncoding string) Image {
	i.ImageEncoding = &imageEncoding
	return i
}

func (i Image) WithImageTopic(imageTopic string) Image {
	i.ImageTopic = imageTopic
	return i
}

func (i Image) WithURLTemplate(urlTemplate string) Image {
	i.URLTemplate = &urlTemplate
	return i
}

func (i Image) WithURLTopic(urlTopic string) Image {
	i.URLTopic = &urlTopic
	return i
}

func (i Image) WithTopicPrefix(topicPrefix string) Image {
	i.TopicPrefix = &topicPrefix
	return i
}

func (i Image) WithOrigin(origin hass.Origin) Image {
	i.Origin = origin
	return i
}

func (i Image) WithDevice(device hass.Device) Image {
	i.Device = device
	return i
}

func (i Image) WithAvailability(availability hass.Availability) Image {
	i.Availability = availability
	return i
}

func (i Image) WithEntityCategory(entityCategory hass.EntityCategory) Image {
	i.EntityCategory = &entityCategory
	return i
}

func (i Image) WithEnabledByDefault(enabledByDefault bool) Image {
	i.EnabledByDefault = &enabledByDefault
	return i
}

func (i Image) WithEncoding(encoding string) Image {
	i.Encoding = &encoding
	return i
}

func (i Image) WithEntityPicture(entityPicture *url.URL) Image {
	i.EntityPicture = entityPicture
	return i
}

func (i Image) WithIcon(icon string) Image {
	i.Icon = &icon
	return i
}

func (i Image) WithJSONAttributesTemplate(jsonAttributesTemplate string) Image {
	i.JSONAttributesTemplate = &jsonAttributesTemplate
	return i
}

func (i Image) WithJSONAttributesTopic(jsonAttributesTopic string) Image {
	i.JSONAttributesTopic = &jsonAttributesTopic
	return i
}

func (i Image) WithName(name string) Image {
	i.Name = &name
	return i
}

func (i Image) WithObjectID(objectID string) Image {
	i.ObjectID = &objectID
	return i
}

func (i Image) WithDefaultEntityID(defaultEntityID string) Image {
	i.DefaultEntityID = &defaultEntityID
	return i
}

func (i Image) WithUniqueID(uniqueID string) Image {
	i.UniqueID = &uniqueID
	return i
}

func (i Image) WithQoS(qos mqtt.QualityOfService) Image {
	i.QoS = &qos
	return i
}

func (i Image) WithPlatform(platform string) Image {
	i.Platform = platform
	return i
}

func (i *Image) fields() discovery.Fields {
	return append(discovery.Fields{
		discovery.Optional(discovery.FieldContentType, &i.ContentType),
		discovery.Optional(discovery.FieldImageEncoding, &i.ImageEncoding),
		discovery.Required(discovery.FieldImageTopic, &i.ImageTopic),
		discovery.Optional(discovery.FieldURLTemplate, &i.URLTemplate),
		discovery.Optional(discovery.FieldURLTopic, &i.URLTopic),
		discovery.Optional(discovery.FieldTopicPrefix, &i.TopicPrefix),
		discovery.Required(discovery.FieldOrigin, &i.Origin),
		discovery.Required(discovery.FieldDevice, &i.Device),
		discovery.Optional(discovery.FieldEntityCategory, &i.EntityCategory),
		discovery.Optional(discovery.FieldEnabledByDefault, &i.EnabledByDefault),
		discovery.Optional(discovery.FieldEncoding, &i.Encoding),
		discovery.Optional(discovery.FieldEntityPicture, &i.EntityPicture),
		discovery.Optional(discovery.FieldIcon, &i.Icon),
		discovery.Optional(discovery.FieldJSONAttributesTemplate, &i.JSONAttributesTemplate),
		discovery.Optional(discovery.FieldJSONAttributesTopic, &i.JSONAttributesTopic),
		discovery.Optional(discovery.FieldName, &i.Name),
		discovery.Optional(discovery.FieldObjectID, &i.ObjectID),
		discovery.Optional(discovery.FieldDefaultEntityID, &i.DefaultEntityID),
		discovery.Optional(discovery.FieldUniqueID, &i.UniqueID),
		discovery.Optional(discovery.FieldQoS, &i.QoS),
		discovery.Required(discovery.FieldPlatform, &i.Platform),
	}, i.Availability.Fields()...)
}

func (i Image) MarshalJSONTo(e *jsontext.Encoder) error {
	return i.fields().MarshalJSONTo(e)
}

func (i *Image) UnmarshalJSONFrom(d *jsontext.Decoder) error {
	return i.fields().UnmarshalJSONFrom(d)
}
