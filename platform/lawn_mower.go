package platform

import (
	"encoding/json/jsontext"
	"net/url"

	"github.com/nlowe/hadiscovery/discovery"
	"github.com/nlowe/hadiscovery/hass"
	"github.com/nlowe/hadiscovery/mqtt"
)

// LawnMower is the lawn_mower.mqtt integration. Home Assistant has no abbreviations for lawn mower specific keys, so
// they are sent in full.
//
// See https://www.home-assistant.io/integrations/lawn_mower.mqtt/
type LawnMower struct {
	// The MQTT topic subscribed to receive an update of the activity.
	ActivityStateTopic *string
	// Defines a template to extract the value from the ActivityStateTopic.
	ActivityValueTemplate *string
	// Defines a template to generate the payload to send to DockCommandTopic.
	DockCommandTemplate *string
	// The MQTT topic that publishes commands when the lawn_mower.dock action is performed.
	DockCommandTopic *string
	// Flag that defines if the lawn mower works in optimistic mode.
	Optimistic *bool
	// Defines a template to generate the payload to send to PauseCommandTopic.
	PauseCommandTemplate *string
	// The MQTT topic that publishes commands when the lawn_mower.pause action is performed.
	PauseCommandTopic *string
	// Defines a template to generate the payload to send to StartMowingCommandTopic.
	StartMowingCommandTemplate *string
	// The MQTT topic that publishes commands when the lawn_mower.start_mowing action is performed.
	StartMowingCommandTopic *string

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

// NewLawnMower returns a LawnMower with every optional field unset and Platform set to the DomainLawnMower literal.
func NewLawnMower() LawnMower {
	return LawnMower{Platform: string(DomainLawnMower)}
}

func (lm LawnMower) Domain() Domain {
	return DomainLawnMower
}

func (LawnMower) entity() {}

func (lm LawnMower) WithActivityStateTopic(activityStateTopic string) LawnMower {
	lm.ActivityStateTopic = &activityStateTopic
	return lm
}

func (lm LawnMower) WithActivityValueTemplate(activityValueTemplate string) LawnMower {
	lm.ActivityValueTemplate = &activityValueTemplate
	return lm
}

func (lm LawnMower) WithDockCommandTemplate(dockCommandTemplate string) LawnMower {
	lm.DockCommandTemplate = &dockCommandTemplate
	return lm
}

func (lm LawnMower) WithDockCommandTopic(dockCommandTopic string) LawnMower {
	lm.DockCommandTopic = &dockCommandTopic
	return lm
}

func (lm LawnMower) WithOptimistic(optimistic bool) LawnMower {
	lm.Optimistic = &optimistic
	return lm
}

func (lm LawnMower) WithPauseCommandTemplate(pauseCommandTemplate string) LawnMower {
	lm.PauseCommandTemplate = &pauseCommandTemplate
	return lm
}

func (lm LawnMower) WithPauseCommandTopic(pauseCommandTopic string) LawnMower {
	lm.PauseCommandTopic = &pauseCommandTopic
	return lm
}

func (lm LawnMower) WithStartMowingCommandTemplate(startMowingCommandTemplate string) LawnMower {
	lm.StartMowingCommandTemplate = &startMowingCommandTemplate
	return lm
}

func (lm LawnMower) WithStartMowingCommandTopic(startMowingCommandTopic string) LawnMower {
	lm.StartMowingCommandTopic = &startMowingCommandTopic
	return lm
}

func (lm LawnMower) WithTopicPrefix(topicPrefix string) LawnMower {
	lm.TopicPrefix = &topicPrefix
	return lm
}

func (lm LawnMower) WithOrigin(origin hass.Origin) LawnMower {
	lm.Origin = origin
	return lm
}

func (lm LawnMower) WithDevice(device hass.Device) LawnMower {
	lm.Device = device
	return lm
}

func (lm LawnMower) WithAvailability(availability hass.Availability) LawnMower {
	lm.Availability = availability
	return lm
}

func (lm LawnMower) WithEntityCategory(entityCategory hass.EntityCategory) LawnMower {
	lm.EntityCategory = &entityCategory
	return lm
}

func (lm LawnMower) WithEnabledByDefault(enabledByDefault bool) LawnMower {
	lm.EnabledByDefault = &enabledByDefault
	return lm
}

func (lm LawnMower) WithEncoding(encoding string) LawnMower {
	lm.Encoding = &encoding
	return lm
}

func (lm LawnMower) WithEntityPicture(entityPicture *url.URL) LawnMower {
	lm.EntityPicture = entityPicture
	return lm
}

func (lm LawnMower) WithIcon(icon string) LawnMower {
	lm.Icon = &icon
	return lm
}

func (lm LawnMower) WithJSONAttributesTemplate(jsonAttributesTemplate string) LawnMower {
	lm.JSONAttributesTemplate = &jsonAttributesTemplate
	return lm
}

func (lm LawnMower) WithJSONAttributesTopic(jsonAttributesTopic string) LawnMower {
	lm.JSONAttributesTopic = &jsonAttributesTopic
	return lm
}

func (lm LawnMower) WithName(name string) LawnMower {
	lm.Name = &name
	return lm
}

func (lm LawnMower) WithObjectID(objectID string) LawnMower {
	lm.ObjectID = &objectID
	return lm
}

func (lm LawnMower) WithDefaultEntityID(defaultEntityID string) LawnMower {
	lm.DefaultEntityID = &defaultEntityID
	return lm
}

func (lm LawnMower) WithUniqueID(uniqueID string) LawnMower {
	lm.UniqueID = &uniqueID
	return lm
}

func (lm LawnMower) WithQoS(qos mqtt.QualityOfService) LawnMower {
	lm.QoS = &qos
	return lm
}

func (lm LawnMower) WithRetain(retain bool) LawnMower {
	lm.Retain = &retain
	return lm
}

func (lm LawnMower) WithPlatform(platform string) LawnMower {
	lm.Platform = platform
	return lm
}

func (lm *LawnMower) fields() discovery.Fields {
	return append(discovery.Fields{
		discovery.Optional(discovery.FieldActivityStateTopic, &lm.ActivityStateTopic),
		discovery.Optional(discovery.FieldActivityValueTemplate, &lm.ActivityValueTemplate),
		discovery.Optional(discovery.FieldDockCommandTemplate, &lm.DockCommandTemplate),
		discovery.Optional(discovery.FieldDockCommandTopic, &lm.DockCommandTopic),
		discovery.Optional(discovery.FieldOptimistic, &lm.Optimistic),
		discovery.Optional(discovery.FieldPauseCommandTemplate, &lm.PauseCommandTemplate),
		discovery.Optional(discovery.FieldPauseCommandTopic, &lm.PauseCommandTopic),
		discovery.Optional(discovery.FieldStartMowingCommandTemplate, &lm.StartMowingCommandTemplate),
		discovery.Optional(discovery.FieldStartMowingCommandTopic, &lm.StartMowingCommandTopic),
		discovery.Optional(discovery.FieldTopicPrefix, &lm.TopicPrefix),
		discovery.Required(discovery.FieldOrigin, &lm.Origin),
		discovery.Required(discovery.FieldDevice, &lm.Device),
		discovery.Optional(discovery.FieldEntityCategory, &lm.EntityCategory),
		discovery.Optional(discovery.FieldEnabledByDefault, &lm.EnabledByDefault),
		discovery.Optional(discovery.FieldEncoding, &lm.Encoding),
		discovery.Optional(discovery.FieldEntityPicture, &lm.EntityPicture),
		discovery.Optional(discovery.FieldIcon, &lm.Icon),
		discovery.Optional(discovery.FieldJSONAttributesTemplate, &lm.JSONAttributesTemplate),
		discovery.Optional(discovery.FieldJSONAttributesTopic, &lm.JSONAttributesTopic),
		discovery.Optional(discovery.FieldName, &lm.Name),
		discovery.Optional(discovery.FieldObjectID, &lm.ObjectID),
		discovery.Optional(discovery.FieldDefaultEntityID, &lm.DefaultEntityID),
		discovery.Optional(discovery.FieldUniqueID, &lm.UniqueID),
		discovery.Optional(discovery.FieldQoS, &lm.QoS),
		discovery.Optional(discovery.FieldRetain, &lm.Retain),
		discovery.Required(discovery.FieldPlatform, &lm.Platform),
	}, lm.Availability.Fields()...)
}

func (lm LawnMower) MarshalJSONTo(e *jsontext.Encoder) error {
	return lm.fields().MarshalJSONTo(e)
}

func (lm *LawnMower) UnmarshalJSONFrom(d *jsontext.Decoder) error {
	return lm.fields().UnmarshalJSONFrom(d)
}
