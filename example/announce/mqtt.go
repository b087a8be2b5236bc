package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/eclipse/paho.golang/autopaho"
	"github.com/eclipse/paho.golang/paho"

	"github.com/nlowe/hadiscovery/discovery"
	"github.com/nlowe/hadiscovery/hass"
	hadlog "github.com/nlowe/hadiscovery/log"
	"github.com/nlowe/hadiscovery/mqtt"
	adapter "github.com/nlowe/hadiscovery/mqtt/adapter/autopaho"
)

// connectMQTT dials the broker and calls onHomeAssistantOnline with the connection's writer every time Home Assistant
// publishes its birth message.
func connectMQTT(
	ctx context.Context,
	brokerURL *url.URL,
	onHomeAssistantOnline func(w mqtt.Writer),
) (mqtt.Writer, *autopaho.ConnectionManager, error) {
	log := hadlog.ForComponent("mqtt")
	statusTopic := discovery.HomeAssistantStatusTopic(discovery.DefaultPrefix)

	mqttConfig := autopaho.ClientConfig{
		ServerUrls: []*url.URL{brokerURL},
		KeepAlive:  20,

		// Seconds that a session will survive after disconnection.
		SessionExpiryInterval: 60,

		OnConnectionUp: func(cm *autopaho.ConnectionManager, connAck *paho.Connack) {
			log.Info("mqtt connected")

			if err := mqtt.Error(cm.Subscribe(ctx, &paho.Subscribe{
				Subscriptions: []paho.SubscribeOptions{{Topic: statusTopic, QoS: byte(mqtt.QOSAtLeastOnce)}},
			})); err != nil {
				log.With(hadlog.Error(err)).Error("Failed to subscribe to home assistant status")
			}
		},
		OnConnectError: func(err error) {
			log.With(hadlog.Error(err)).Error("mqtt connection error")
		},

		ClientConfig: paho.ClientConfig{
			ClientID: "hadiscovery:example:announce",
			OnClientError: func(err error) {
				log.With(hadlog.Error(err)).Error("mqtt client error")
			},
			OnServerDisconnect: func(d *paho.Disconnect) {
				log.With(slog.Int("reason", int(d.ReasonCode))).Warn("Disconnected from server")
			},
		},
	}

	log.With(slog.String("broker", brokerURL.String())).Info("Connecting to mqtt")
	cm, err := autopaho.NewConnection(ctx, mqttConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("mqtt: connect: %w", err)
	}

	if err = cm.AwaitConnection(ctx); err != nil {
		return nil, nil, fmt.Errorf("mqtt: wait for connection: %w", err)
	}

	w := adapter.NewWriter(cm)
	cm.AddOnPublishReceived(func(rx autopaho.PublishReceived) (bool, error) {
		if rx.Packet.Topic == statusTopic && string(rx.Packet.Payload) == hass.Available {
			log.Info("Home Assistant is online")
			go onHomeAssistantOnline(w)
		}

		return true, nil
	})

	return w, cm, nil
}
