package mqtt

import (
	"fmt"
	"log/slog"
)

// QualityOfService determines what level of guarantee the broker should provide when delivering messages. It is
// encoded as its integer level in discovery payloads. It implements fmt.Stringer and slog.LogValuer.
type QualityOfService uint8

func (q QualityOfService) String() string {
	switch q {
	case QOSAtMostOnce:
		return "at most once (0)"
	case QOSAtLeastOnce:
		return "at least once (1)"
	case QOSExactlyOnce:
		return "exactly once (2)"
	default:
		return fmt.Sprintf("invalid (%d)", uint8(q))
	}
}

func (q QualityOfService) LogValue() slog.Value {
	return slog.StringValue(q.String())
}

// Valid reports whether q is one of the three levels defined by MQTT.
func (q QualityOfService) Valid() bool {
	return q <= QOSExactlyOnce
}

const (
	// QOSAtMostOnce offers "fire and forget" messaging with no acknowledgment from the receiver. This is the default.
	QOSAtMostOnce QualityOfService = iota
	// QOSAtLeastOnce ensures that messages are delivered at least once by requiring a PUBACK acknowledgment.
	QOSAtLeastOnce
	// QOSExactlyOnce guarantees that each message is delivered exactly once by using a four-step handshake (PUBLISH,
	// PUBREC, PUBREL, PUBCOMP).
	QOSExactlyOnce

	// QOSDefault is the default Quality Of Service, QOSAtMostOnce.
	QOSDefault = QOSAtMostOnce
)

// WriteOptions holds options for writing to MQTT. The zero value for WriteOptions uses a QoS of 0 with no retain. It
// implements slog.LogValuer.
type WriteOptions struct {
	// QoS specifies the Quality of Service to use when writing values to MQTT.
	QoS QualityOfService

	// Retain instructs the broker to persist the last message received for a given topic. When a new subscription is
	// created for the topic, the broker will emit this value automatically, whether the publisher is still connected to
	// the broker. Discovery payloads are always written retained so Home Assistant picks them up after a restart.
	Retain bool
}

func (w WriteOptions) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("qos", w.QoS),
		slog.Bool("retain", w.Retain),
	)
}
