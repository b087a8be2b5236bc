package autopaho

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/eclipse/paho.golang/autopaho"
	"github.com/eclipse/paho.golang/paho"

	hadlog "github.com/nlowe/hadiscovery/log"
	"github.com/nlowe/hadiscovery/mqtt"
)

var (
	// ErrInvalidTopic is the error returned when writing to an empty topic or a topic containing a wildcard.
	ErrInvalidTopic = errors.New("invalid publish topic")
	// ErrInvalidQoS is the error returned when writing with a QualityOfService outside of 0-2.
	ErrInvalidQoS = errors.New("invalid quality of service")
)

// Publisher is the subset of autopaho.ConnectionManager used to write discovery payloads. The caller owns the
// connection: dialing, reconnecting, and disconnecting are left to it.
type Publisher interface {
	Publish(ctx context.Context, p *paho.Publish) (*paho.PublishResponse, error)
}

var _ Publisher = &autopaho.ConnectionManager{}

type adapter struct {
	p Publisher

	log *slog.Logger
}

var _ mqtt.Writer = &adapter{}

// NewWriter adapts the provided Publisher (typically an *autopaho.ConnectionManager) to mqtt.Writer.
func NewWriter(p Publisher) mqtt.Writer {
	return &adapter{
		p: p,

		log: hadlog.ForComponent("autopaho"),
	}
}

func (a *adapter) WriteTopic(ctx context.Context, topic string, options mqtt.WriteOptions, value []byte) error {
	if topic == "" || mqtt.HasWildcard(topic) {
		return fmt.Errorf("mqtt: %w: %q", ErrInvalidTopic, topic)
	}

	if !options.QoS.Valid() {
		return fmt.Errorf("mqtt: %w: %s", ErrInvalidQoS, options.QoS)
	}

	a.log.With(slog.String("topic", topic), slog.Any("options", options), slog.String("payload", string(value))).Debug("Publishing payload")

	_, err := a.p.Publish(ctx, &paho.Publish{
		QoS:     uint8(options.QoS),
		Retain:  options.Retain,
		Topic:   topic,
		Payload: value,
	})

	if err != nil {
		a.log.With(slog.String("topic", topic), hadlog.Error(err)).Error("Failed to publish payload")
		return fmt.Errorf("mqtt: publish %s: %w", topic, err)
	}

	return nil
}
