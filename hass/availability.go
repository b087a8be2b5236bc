package hass

import (
	"encoding/json/jsontext"
	"log/slog"

	"github.com/nlowe/hadiscovery/discovery"
)

const (
	// Available is the default payload Home Assistant expects on an availability topic for online/available entities.
	Available = "online"
	// Unavailable is the default payload Home Assistant expects on an availability topic for offline/unavailable
	// entities.
	Unavailable = "offline"
)

// AvailabilityMode controls how Home Assistant combines multiple availability topics.
type AvailabilityMode string

const (
	// AvailabilityModeAll marks the entity available only if every configured topic reports available.
	AvailabilityModeAll AvailabilityMode = "all"
	// AvailabilityModeAny marks the entity available if at least one configured topic reports available.
	AvailabilityModeAny AvailabilityMode = "any"
	// AvailabilityModeLatest uses the last availability message received on any configured topic. This is the default.
	AvailabilityModeLatest AvailabilityMode = "latest"
)

// AvailabilityTopic is a single entry in Availability.Topics.
type AvailabilityTopic struct {
	// An MQTT topic subscribed to receive availability (online/offline) updates.
	Topic string
	// The payload that represents the available state. Defaults to Available.
	PayloadAvailable string
	// The payload that represents the unavailable state. Defaults to Unavailable.
	PayloadNotAvailable string
	// Defines a template to extract device's availability from the topic.
	ValueTemplate string
}

func (a *AvailabilityTopic) fields() discovery.Fields {
	return discovery.Fields{
		discovery.Required(discovery.FieldTopic, &a.Topic),
		discovery.OmitEmpty(discovery.FieldPayloadAvailable, &a.PayloadAvailable),
		discovery.OmitEmpty(discovery.FieldPayloadNotAvailable, &a.PayloadNotAvailable),
		discovery.OmitEmpty(discovery.FieldValueTemplate, &a.ValueTemplate),
	}
}

func (a AvailabilityTopic) MarshalJSONTo(e *jsontext.Encoder) error {
	return a.fields().MarshalJSONTo(e)
}

func (a *AvailabilityTopic) UnmarshalJSONFrom(d *jsontext.Decoder) error {
	return a.fields().UnmarshalJSONFrom(d)
}

// Availability configures how Home Assistant determines whether an entity is online. Unlike other nested
// configuration, Home Assistant reads these keys from the top level of the entity payload, so entities append
// Availability.Fields to their own field table instead of nesting it under a key. The zero value contributes nothing to
// the payload. It implements slog.LogValuer.
//
// Topic and Topics are mutually exclusive; Home Assistant rejects payloads that set both.
type Availability struct {
	Mode                AvailabilityMode
	Topics              []AvailabilityTopic
	Topic               string
	Template            string
	PayloadAvailable    string
	PayloadNotAvailable string
}

// Fields returns the field table for the availability keys.
func (a *Availability) Fields() discovery.Fields {
	return discovery.Fields{
		discovery.Slice(discovery.FieldAvailability, &a.Topics),
		discovery.OmitEmpty(discovery.FieldAvailabilityMode, &a.Mode),
		discovery.OmitEmpty(discovery.FieldAvailabilityTopic, &a.Topic),
		discovery.OmitEmpty(discovery.FieldAvailabilityTemplate, &a.Template),
		discovery.OmitEmpty(discovery.FieldPayloadAvailable, &a.PayloadAvailable),
		discovery.OmitEmpty(discovery.FieldPayloadNotAvailable, &a.PayloadNotAvailable),
	}
}

// IsZero reports whether a configures nothing.
func (a Availability) IsZero() bool {
	return a.Mode == "" && len(a.Topics) == 0 && a.Topic == "" && a.Template == "" && a.PayloadAvailable == "" &&
		a.PayloadNotAvailable == ""
}

func (a Availability) LogValue() slog.Value {
	topics := make([]string, 0, len(a.Topics)+1)
	if a.Topic != "" {
		topics = append(topics, a.Topic)
	}

	for _, t := range a.Topics {
		topics = append(topics, t.Topic)
	}

	return slog.GroupValue(
		slog.String("mode", string(a.Mode)),
		slog.Any("topics", topics),
	)
}

// NewAvailability returns an Availability watching the provided topics with the default payloads.
func NewAvailability(mode AvailabilityMode, topics ...string) Availability {
	result := Availability{Mode: mode}
	for _, t := range topics {
		result.Topics = append(result.Topics, AvailabilityTopic{Topic: t})
	}

	return result
}
