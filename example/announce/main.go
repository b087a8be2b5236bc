package main

import (
	"context"
	"encoding/json/v2"
	"errors"
	"log/slog"
	"net/url"
	"os"
	"os/signal"
	"time"

	"github.com/nlowe/hadiscovery"
	"github.com/nlowe/hadiscovery/discovery"
	"github.com/nlowe/hadiscovery/hass"
	hadlog "github.com/nlowe/hadiscovery/log"
	"github.com/nlowe/hadiscovery/mqtt"
	"github.com/nlowe/hadiscovery/platform"
)

func main() {
	hadlog.To(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	brokerURL, err := url.Parse("mqtt://0.0.0.0:1883")
	if err != nil {
		panic(err)
	}

	log := hadlog.ForComponent("example")
	topicPrefix := "hadiscovery/example"
	availabilityTopic := mqtt.JoinTopic(topicPrefix, "available")

	d := hass.Device{
		Name:         "Example Device",
		Manufacturer: "hadiscovery",
		Identifiers:  []string{"hadiscovery/example/announce"},
	}
	availability := hass.NewAvailability(hass.AvailabilityModeLatest, availabilityTopic)

	light := platform.NewLight().
		WithTopicPrefix(mqtt.JoinTopic(topicPrefix, "light")).
		WithName("Foo").
		WithUniqueID("example_foo").
		WithDefaultEntityID("light.foo").
		WithIcon("mdi:lightbulb").
		WithCommandTopic("~/set").
		WithStateTopic("~/state").
		WithBrightnessCommandTopic("~/brightness/set").
		WithBrightnessStateTopic("~/brightness").
		WithBrightnessScale(100).
		WithSupportedColorModes(hass.ColorModeBrightness).
		WithOnCommandType(hass.OnCommandTypeBrightness).
		WithAvailability(availability).
		WithRetain(true)

	presence := platform.NewBinarySensor().
		WithTopicPrefix(mqtt.JoinTopic(topicPrefix, "pir")).
		WithName("Foo Presence").
		WithUniqueID("example_foo_pir").
		WithStateTopic("~/state").
		WithDeviceClass(hass.BinarySensorDeviceClassOccupancy).
		WithOffDelay(30 * time.Second).
		WithAvailability(availability)

	temperature := platform.NewSensor().
		WithName("Outside Temperature").
		WithUniqueID("example_outside_temperature").
		WithStateTopic(mqtt.JoinTopic(topicPrefix, "outside", "temperature")).
		WithDeviceClass(hass.SensorDeviceClassTemperature).
		WithStateClass(hass.StateClassMeasurement).
		WithUnitOfMeasurement(hass.UnitCelsius).
		WithExpireAfter(10 * time.Minute).
		WithOrigin(hass.DefaultOrigin).
		WithDevice(hass.Device{Name: "Weather Station", Identifiers: []string{"hadiscovery/example/weather"}})

	rediscover := func(w mqtt.Writer) error {
		log.Info("Re-sending discovery info")

		return errors.Join(
			hadiscovery.ConfigureDevice(ctx, w, discovery.DefaultPrefix, d, nil, map[string]json.MarshalerTo{
				"light": hadiscovery.Component{Entity: light},
				"pir":   hadiscovery.Component{Entity: presence},
			}),
			hadiscovery.Announce(ctx, w, discovery.DefaultPrefix, "example", "outside_temperature", temperature),
		)
	}

	republish := func(w mqtt.Writer) error {
		log.Info("Republishing state/availability")
		retained := mqtt.WriteOptions{Retain: true}

		return errors.Join(
			w.WriteTopic(ctx, availabilityTopic, retained, []byte(hass.Available)),
			w.WriteTopic(ctx, mqtt.JoinTopic(topicPrefix, "light", "state"), retained, []byte("OFF")),
			w.WriteTopic(ctx, mqtt.JoinTopic(topicPrefix, "pir", "state"), retained, []byte("OFF")),
			w.WriteTopic(ctx, mqtt.JoinTopic(topicPrefix, "outside", "temperature"), mqtt.WriteOptions{}, []byte("21.5")),
		)
	}

	w, cm, err := connectMQTT(ctx, brokerURL, func(w mqtt.Writer) {
		if err := errors.Join(rediscover(w), republish(w)); err != nil {
			log.With(hadlog.Error(err)).Error("Failed to republish after Home Assistant restart")
		}
	})
	if err != nil {
		panic(err)
	}

	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		log.Info("Marking entities unavailable")
		_ = w.WriteTopic(shutdownCtx, availabilityTopic, mqtt.WriteOptions{Retain: true}, []byte(hass.Unavailable))

		log.Info("Disconnecting from mqtt")
		if err := cm.Disconnect(shutdownCtx); err != nil {
			log.With(hadlog.Error(err)).Error("Failed to disconnect from mqtt")
		}
	}()

	if err = errors.Join(rediscover(w), republish(w)); err != nil {
		panic(err)
	}

	<-ctx.Done()
	log.Info("Goodbye!")
}
