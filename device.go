package hadiscovery

import (
	"bytes"
	"cmp"
	"context"
	"encoding/json/jsontext"
	"encoding/json/v2"
	"errors"
	"fmt"
	"log/slog"

	"github.com/nlowe/hadiscovery/discovery"
	"github.com/nlowe/hadiscovery/hass"
	"github.com/nlowe/hadiscovery/mqtt"
)

// ConfigureDevice publishes a device-based discovery payload for d and the provided components, keyed by their object
// ID. Wrap descriptors with Component, or use RemoveComponent to remove a component from a device that was configured
// before. If origin is nil, hass.DefaultOrigin is sent instead since Home Assistant requires origin information for
// device-based discovery.
//
// The device must pass validation performed by hass.Device.Valid.
func ConfigureDevice(
	ctx context.Context,
	w mqtt.Writer,
	prefix string,
	d hass.Device,
	origin *hass.Origin,
	components map[string]json.MarshalerTo,
) error {
	if err := d.Valid(); err != nil {
		return err
	}

	var buf bytes.Buffer
	e := jsontext.NewEncoder(
		&buf,
		jsontext.CanonicalizeRawInts(true),
		jsontext.CanonicalizeRawFloats(true),
	)

	err := errors.Join(
		e.WriteToken(jsontext.BeginObject),

		discovery.MarshalStd("device", e, discovery.FieldDevice, &d),
		discovery.MarshalStd("origin", e, discovery.FieldOrigin, cmp.Or(origin, &hass.DefaultOrigin)),

		e.WriteToken(jsontext.String(discovery.FieldComponents)),
		e.WriteToken(jsontext.BeginObject),

		discovery.MaybeInlineMarshalStd(e, components),

		e.WriteToken(jsontext.EndObject),
		e.WriteToken(jsontext.EndObject),
	)

	if err != nil {
		return fmt.Errorf("configure: marshal discovery config: %w", err)
	}

	topic := DeviceTopic(prefix, d.ID())
	logger.With(slog.String("topic", topic), slog.Any("device", d), slog.Int("components", len(components))).Debug("Configuring device")

	return w.WriteTopic(ctx, topic, mqtt.WriteOptions{Retain: true}, bytes.TrimSpace(buf.Bytes()))
}
