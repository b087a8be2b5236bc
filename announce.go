package hadiscovery

import (
	"context"
	"encoding/json/v2"
	"errors"
	"fmt"
	"log/slog"

	"github.com/nlowe/hadiscovery/discovery"
	"github.com/nlowe/hadiscovery/log"
	"github.com/nlowe/hadiscovery/mqtt"
	"github.com/nlowe/hadiscovery/platform"
)

// ErrMissingObjectID is the error returned by Announce and Remove when objectID is empty.
var ErrMissingObjectID = errors.New("object id is required")

var logger = log.ForComponent("discovery")

// Announce publishes the discovery payload for e to the topic returned by Topic. The payload is retained so Home
// Assistant picks it up again after a restart.
func Announce(ctx context.Context, w mqtt.Writer, prefix, nodeID, objectID string, e platform.Entity) error {
	if objectID == "" {
		return fmt.Errorf("announce %s: %w", e.Domain(), ErrMissingObjectID)
	}

	payload, err := json.Marshal(e, json.WithMarshalers(discovery.Marshalers))
	if err != nil {
		return fmt.Errorf("announce %s: marshal discovery config: %w", e.Domain(), err)
	}

	topic := Topic(prefix, e.Domain(), nodeID, objectID)
	logger.With(slog.String("topic", topic), slog.String("domain", e.Domain().String())).Debug("Announcing entity")

	return w.WriteTopic(ctx, topic, mqtt.WriteOptions{Retain: true}, payload)
}

// Remove clears the retained discovery payload for an entity previously published with Announce. Home Assistant
// removes the entity when it receives the empty payload.
func Remove(ctx context.Context, w mqtt.Writer, prefix string, d platform.Domain, nodeID, objectID string) error {
	if objectID == "" {
		return fmt.Errorf("remove %s: %w", d, ErrMissingObjectID)
	}

	topic := Topic(prefix, d, nodeID, objectID)
	logger.With(slog.String("topic", topic), slog.String("domain", d.String())).Debug("Removing entity")

	return w.WriteTopic(ctx, topic, mqtt.WriteOptions{Retain: true}, []byte{})
}
