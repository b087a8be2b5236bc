package platform

import (
	"encoding/json/jsontext"
	"net/url"

	"github.com/nlowe/hadiscovery/discovery"
	"github.com/nlowe/hadiscovery/hass"
	"github.com/nlowe/hadiscovery/mqtt"
)

// Lock is the lock.mqtt integration.
//
// See https://www.home-assistant.io/integrations/lock.mqtt/
type Lock struct {
	// A regular expression to validate a supplied code when it is set during the action to open, lock or unlock the lock.
	CodeFormat *string
	// Defines a template to generate the payload to send to CommandTopic. The lock command template accepts the parameters
	// value and code.
	CommandTemplate *string
	// The MQTT topic to publish commands to change the lock state. Required.
	CommandTopic string
	// Flag that defines if the entity works in optimistic mode. Defaults to true if no StateTopic is defined.
	Optimistic *bool
	// The payload sent to the lock to lock it.
	PayloadLock *string
	// The payload sent to the lock to open it.
	PayloadOpen *string
	// A special payload that resets the state to unknown when received on the StateTopic.
	PayloadReset *string
	// The payload sent to the lock to unlock it.
	PayloadUnlock *string
	// The payload sent to StateTopic by the lock when it's jammed.
	StateJammed *string
	// The payload sent to StateTopic by the lock when it's locked.
	StateLocked *string
	// The payload sent to StateTopic by the lock when it's locking.
	StateLocking *string
	// The payload sent to StateTopic by the lock when it's open.
	StateOpen *string
	// The payload sent to StateTopic by the lock when it's opening.
	StateOpening *string
	// The MQTT topic subscribed to receive state updates. It accepts states configured with StateJammed, StateLocked,
	// StateUnlocked, StateLocking or StateUnlocking.
	StateTopic *string
	// The payload sent to StateTopic by the lock when it's unlocked.
	StateUnlocked *string
	// The payload sent to StateTopic by the lock when it's unlocking.
	StateUnlocking *string
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

// NewLock returns a Lock with every optional field unset and Platform set to the DomainLock literal.
func NewLock() Lock {
	return Lock{Platform: string(DomainLock)}
}

func (l Lock) Domain() Domain {
	return DomainLock
}

func (Lock) entity() {}

func (l Lock) WithCodeFormat(codeFormat string) Lock {
	l.CodeFormat = &codeFormat
	return l
}

func (l Lock) WithCommandTemplate(commandTemplate string) Lock {
	l.CommandTemplate = &commandTemplate
	return l
}

func (l Lock) WithCommandTopic(commandTopic string) Lock {
	l.CommandTopic = commandTopic
	return l
}

func (l Lock) WithOptimistic(optimistic bool) Lock {
	l.Optimistic = &optimistic
	return l
}

func (l Lock) WithPayloadLock(payloadLock string) Lock {
	l.PayloadLock = &payloadLock
	return l
}

func (l Lock) WithPayloadOpen(payloadOpen string) Lock {
	l.PayloadOpen = &payloadOpen
	return l
}

func (l Lock) WithPayloadReset(payloadReset string) Lock {
	l.PayloadReset = &payloadReset
	return l
}

func (l Lock) WithPayloadUnlock(payloadUnlock string) Lock {
	l.PayloadUnlock = &payloadUnlock
	return l
}

func (l Lock) WithStateJammed(stateJammed string) Lock {
	l.StateJammed = &stateJammed
	return l
}

func (l Lock) WithStateLocked(stateLocked string) Lock {
	l.StateLocked = &stateLocked
	return l
}

func (l Lock) WithStateLocking(stateLocking string) Lock {
	l.StateLocking = &stateLocking
	return l
}

func (l Lock) WithStateOpen(stateOpen string) Lock {
	l.StateOpen = &stateOpen
	return l
}

func (l Lock) WithStateOpening(stateOpening string) Lock {
	l.StateOpening = &stateOpening
	return l
}

func (l Lock) WithStateTopic(stateTopic string) Lock {
	l.StateTopic = &stateTopic
	return l
}

func (l Lock) WithStateUnlocked(stateUnlocked string) Lock {
	l.StateUnlocked = &stateUnlocked
	return l
}

func (l Lock) WithStateUnlocking(stateUnlocking string) Lock {
	l.StateUnlocking = &stateUnlocking
	return l
}

func (l Lock) WithValueTemplate(valueTemplate string) Lock {
	l.ValueTemplate = &valueTemplate
	return l
}

func (l Lock) WithTopicPrefix(topicPrefix string) Lock {
	l.TopicPrefix = &topicPrefix
	return l
}

func (l Lock) WithOrigin(origin hass.Origin) Lock {
	l.Origin = origin
	return l
}

func (l Lock) WithDevice(device hass.Device) Lock {
	l.Device = device
	return l
}

func (l Lock) WithAvailability(availability hass.Availability) Lock {
	l.Availability = availability
	return l
}

func (l Lock) WithEntityCategory(entityCategory hass.EntityCategory) Lock {
	l.EntityCategory = &entityCategory
	return l
}

func (l Lock) WithEnabledByDefault(enabledByDefault bool) Lock {
	l.EnabledByDefault = &enabledByDefault
	return l
}

func (l Lock) WithEncoding(encoding string) Lock {
	l.Encoding = &encoding
	return l
}

func (l Lock) WithEntityPicture(entityPicture *url.URL) Lock {
	l.EntityPicture = entityPicture
	return l
}

func (l Lock) WithIcon(icon string) Lock {
	l.Icon = &icon
	return l
}

func (l Lock) WithJSONAttributesTemplate(jsonAttributesTemplate string) Lock {
	l.JSONAttributesTemplate = &jsonAttributesTemplate
	return l
}

func (l Lock) WithJSONAttributesTopic(jsonAttributesTopic string) Lock {
	l.JSONAttributesTopic = &jsonAttributesTopic
	return l
}

func (l Lock) WithName(name string) Lock {
	l.Name = &name
	return l
}

func (l Lock) WithObjectID(objectID string) Lock {
	l.ObjectID = &objectID
	return l
}

func (l Lock) WithDefaultEntityID(defaultEntityID string) Lock {
	l.DefaultEntityID = &defaultEntityID
	return l
}

func (l Lock) WithUniqueID(uniqueID string) Lock {
	l.UniqueID = &uniqueID
	return l
}

func (l Lock) WithQoS(qos mqtt.QualityOfService) Lock {
	l.QoS = &qos
	return l
}

func (l Lock) WithRetain(retain bool) Lock {
	l.Retain = &retain
	return l
}

func (l Lock) WithPlatform(platform string) Lock {
	l.Platform = platform
	return l
}

func (l *Lock) fields() discovery.Fields {
	return append(discovery.Fields{
		discovery.Optional(discovery.FieldCodeFormat, &l.CodeFormat),
		discovery.Optional(discovery.FieldCommandTemplate, &l.CommandTemplate),
		discovery.Required(discovery.FieldCommandTopic, &l.CommandTopic),
		discovery.Optional(discovery.FieldOptimistic, &l.Optimistic),
		discovery.Optional(discovery.FieldPayloadLock, &l.PayloadLock),
		discovery.Optional(discovery.FieldPayloadOpen, &l.PayloadOpen),
		discovery.Optional(discovery.FieldPayloadReset, &l.PayloadReset),
		discovery.Optional(discovery.FieldPayloadUnlock, &l.PayloadUnlock),
		discovery.Optional(discovery.FieldStateJammed, &l.StateJammed),
		discovery.Optional(discovery.FieldStateLocked, &l.StateLocked),
		discovery.Optional(discovery.FieldStateLocking, &l.StateLocking),
		discovery.Optional(discovery.FieldStateOpen, &l.StateOpen),
		discovery.Optional(discovery.FieldStateOpening, &l.StateOpening),
		discovery.Optional(discovery.FieldStateTopic, &l.StateTopic),
		discovery.Optional(discovery.FieldStateUnlocked, &l.StateUnlocked),
		discovery.Optional(discovery.FieldStateUnlocking, &l.StateUnlocking),
		discovery.Optional(discovery.FieldValueTemplate, &l.ValueTemplate),
		discovery.Optional(discovery.FieldTopicPrefix, &l.TopicPrefix),
		discovery.Required(discovery.FieldOrigin, &l.Origin),
		discovery.Required(discovery.FieldDevice, &l.Device),
		discovery.Optional(discovery.FieldEntityCategory, &l.EntityCategory),
		discovery.Optional(discovery.FieldEnabledByDefault, &l.EnabledByDefault),
		discovery.Optional(discovery.FieldEncoding, &l.Encoding),
		discovery.Optional(discovery.FieldEntityPicture, &l.EntityPicture),
		discovery.Optional(discovery.FieldIcon, &l.Icon),
		discovery.Optional(discovery.FieldJSONAttributesTemplate, &l.JSONAttributesTemplate),
		discovery.Optional(discovery.FieldJSONAttributesTopic, &l.JSONAttributesTopic),
		discovery.Optional(discovery.FieldName, &l.Name),
		discovery.Optional(discovery.FieldObjectID, &l.ObjectID),
		discovery.Optional(discovery.FieldDefaultEntityID, &l.DefaultEntityID),
		discovery.Optional(discovery.FieldUniqueID, &l.UniqueID),
		discovery.Optional(discovery.FieldQoS, &l.QoS),
		discovery.Optional(discovery.FieldRetain, &l.Retain),
		discovery.Required(discovery.FieldPlatform, &l.Platform),
	}, l.Availability.Fields()...)
}

func (l Lock) MarshalJSONTo(e *jsontext.Encoder) error {
	return l.fields().MarshalJSONTo(e)
}

func (l *Lock) UnmarshalJSONFrom(d *jsontext.Decoder) error {
	return l.fields().UnmarshalJSONFrom(d)
}
