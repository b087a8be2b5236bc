package platform

import (
	"encoding/json/jsontext"
	"net/url"

	"github.com/nlowe/hadiscovery/discovery"
	"github.com/nlowe/hadiscovery/hass"
	"github.com/nlowe/hadiscovery/mqtt"
)

// Update is the update.mqtt integration. StateTopic may carry either the installed version or a JSON document with
// installed_version, latest_version and the other update attributes.
//
// See https://www.home-assistant.io/integrations/update.mqtt/
type Update struct {
	// The MQTT topic to publish PayloadInstall to start installing process.
	CommandTopic *string
	// The type/class of the entity to set the icon in the frontend.
	DeviceClass *hass.UpdateDeviceClass
	// Number of decimal digits for display of update progress.
	DisplayPrecision *int
	// Defines a template to extract the latest version value.
	LatestVersionTemplate *string
	// The MQTT topic subscribed to receive an update of the latest version.
	LatestVersionTopic *string
	// The MQTT payload to start installing process.
	PayloadInstall *string
	// Summary of the release notes or changelog. Limited to 255 characters.
	ReleaseSummary *string
	// URL to the full release notes of the latest version available.
	ReleaseURL *url.URL
	// The MQTT topic subscribed to receive state updates. The state update may be either JSON or a simple string with
	// installed_version value.
	StateTopic *string
	// Title of the software, or firmware update.
	Title *string
	// Defines a template that can be used to extract the installed_version state value or to render to a valid JSON
	// payload on from the payload received on StateTopic.
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

// NewUpdate returns a Update with every optional field unset and Platform set to the DomainUpdate literal.
func NewUpdate() Update {
	return Update{Platform: string(DomainUpdate)}
}

func (u Update) Domain() Domain {
	return DomainUpdate
}

func (Update) entity() {}

func (u Update) WithCommandTopic(commandTopic string) Update {
	u.CommandTopic = &commandTopic
	return u
}

func (u Update) WithDeviceClass(deviceClass hass.UpdateDeviceClass) Update {
	u.DeviceClass = &deviceClass
	return u
}

func (u Update) WithDisplayPrecision(displayPrecision int) Update {
	u.DisplayPrecision = &displayPrecision
	return u
}

func (u Update) WithLatestVersionTemplate(latestVersionTemplate string) Update {
	u.LatestVersionTemplate = &latestVersionTemplate
	return u
}

func (u Update) WithLatestVersionTopic(latestVersionTopic string) Update {
	u.LatestVersionTopic = &latestVersionTopic
	return u
}

func (u Update) WithPayloadInstall(payloadInstall string) Update {
	u.PayloadInstall = &payloadInstall
	return u
}

func (u Update) WithReleaseSummary(releaseSummary string) Update {
	u.ReleaseSummary = &releaseSummary
	return u
}

func (u Update) WithReleaseURL(releaseURL *url.URL) Update {
	u.ReleaseURL = releaseURL
	return u
}

func (u Update) WithStateTopic(stateTopic string) Update {
	u.StateTopic = &stateTopic
	return u
}

func (u Update) WithTitle(title string) Update {
	u.Title = &title
	return u
}

func (u Update) WithValueTemplate(valueTemplate string) Update {
	u.ValueTemplate = &valueTemplate
	return u
}

func (u Update) WithTopicPrefix(topicPrefix string) Update {
	u.TopicPrefix = &topicPrefix
	return u
}

func (u Update) WithOrigin(origin hass.Origin) Update {
	u.Origin = origin
	return u
}

func (u Update) WithDevice(device hass.Device) Update {
	u.Device = device
	return u
}

func (u Update) WithAvailability(availability hass.Availability) Update {
	u.Availability = availability
	return u
}

func (u Update) WithEntityCategory(entityCategory hass.EntityCategory) Update {
	u.EntityCategory = &entityCategory
	return u
}

func (u Update) WithEnabledByDefault(enabledByDefault bool) Update {
	u.EnabledByDefault = &enabledByDefault
	return u
}

func (u Update) WithEncoding(encoding string) Update {
	u.Encoding = &encoding
	return u
}

func (u Update) WithEntityPicture(entityPicture *url.URL) Update {
	u.EntityPicture = entityPicture
	return u
}

func (u Update) WithIcon(icon string) Update {
	u.Icon = &icon
	return u
}

func (u Update) WithJSONAttributesTemplate(jsonAttributesTemplate string) Update {
	u.JSONAttributesTemplate = &jsonAttributesTemplate
	return u
}

func (u Update) WithJSONAttributesTopic(jsonAttributesTopic string) Update {
	u.JSONAttributesTopic = &jsonAttributesTopic
	return u
}

func (u Update) WithName(name string) Update {
	u.Name = &name
	return u
}

func (u Update) WithObjectID(objectID string) Update {
	u.ObjectID = &objectID
	return u
}

func (u Update) WithDefaultEntityID(defaultEntityID string) Update {
	u.DefaultEntityID = &defaultEntityID
	return u
}

func (u Update) WithUniqueID(uniqueID string) Update {
	u.UniqueID = &uniqueID
	return u
}

func (u Update) WithQoS(qos mqtt.QualityOfService) Update {
	u.QoS = &qos
	return u
}

func (u Update) WithRetain(retain bool) Update {
	u.Retain = &retain
	return u
}

func (u Update) WithPlatform(platform string) Update {
	u.Platform = platform
	return u
}

func (u *Update) fields() discovery.Fields {
	return append(discovery.Fields{
		discovery.Optional(discovery.FieldCommandTopic, &u.CommandTopic),
		discovery.Optional(discovery.FieldDeviceClass, &u.DeviceClass),
		discovery.Optional(discovery.FieldDisplayPrecision, &u.DisplayPrecision),
		discovery.Optional(discovery.FieldLatestVersionTemplate, &u.LatestVersionTemplate),
		discovery.Optional(discovery.FieldLatestVersionTopic, &u.LatestVersionTopic),
		discovery.Optional(discovery.FieldPayloadInstall, &u.PayloadInstall),
		discovery.Optional(discovery.FieldReleaseSummary, &u.ReleaseSummary),
		discovery.Optional(discovery.FieldReleaseURL, &u.ReleaseURL),
		discovery.Optional(discovery.FieldStateTopic, &u.StateTopic),
		discovery.Optional(discovery.FieldTitle, &u.Title),
		discovery.Optional(discovery.FieldValueTemplate, &u.ValueTemplate),
		discovery.Optional(discovery.FieldTopicPrefix, &u.TopicPrefix),
		discovery.Required(discovery.FieldOrigin, &u.Origin),
		discovery.Required(discovery.FieldDevice, &u.Device),
		discovery.Optional(discovery.FieldEntityCategory, &u.EntityCategory),
		discovery.Optional(discovery.FieldEnabledByDefault, &u.EnabledByDefault),
		discovery.Optional(discovery.FieldEncoding, &u.Encoding),
		discovery.Optional(discovery.FieldEntityPicture, &u.EntityPicture),
		discovery.Optional(discovery.FieldIcon, &u.Icon),
		discovery.Optional(discovery.FieldJSONAttributesTemplate, &u.JSONAttributesTemplate),
		discovery.Optional(discovery.FieldJSONAttributesTopic, &u.JSONAttributesTopic),
		discovery.Optional(discovery.FieldName, &u.Name),
		discovery.Optional(discovery.FieldObjectID, &u.ObjectID),
		discovery.Optional(discovery.FieldDefaultEntityID, &u.DefaultEntityID),
		discovery.Optional(discovery.FieldUniqueID, &u.UniqueID),
		discovery.Optional(discovery.FieldQoS, &u.QoS),
		discovery.Optional(discovery.FieldRetain, &u.Retain),
		discovery.Required(discovery.FieldPlatform, &u.Platform),
	}, u.Availability.Fields()...)
}

func (u Update) MarshalJSONTo(e *jsontext.Encoder) error {
	return u.fields().MarshalJSONTo(e)
}

func (u *Update) UnmarshalJSONFrom(d *jsontext.Decoder) error {
	return u.fields().UnmarshalJSONFrom(d)
}
