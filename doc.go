// Package hadiscovery publishes Home Assistant MQTT discovery payloads built from the descriptors in the platform
// package.
//
// Entities can be announced one at a time to <prefix>/<component>/[<node_id>/]<object_id>/config with Announce, or
// grouped under a single device with ConfigureDevice. Both write through an mqtt.Writer; connecting to a broker is
// left to the caller (see the mqtt/adapter/autopaho package for a Writer backed by paho.golang).
//
//	sensor := platform.NewSensor().
//		WithName("Temperature").
//		WithStateTopic("livingroom/temperature").
//		WithUnitOfMeasurement(hass.UnitCelsius).
//		WithDevice(device)
//
//	err := hadiscovery.Announce(ctx, w, discovery.DefaultPrefix, "livingroom", "temperature", sensor)
package hadiscovery
