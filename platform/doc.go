// Package platform contains a descriptor for every Home Assistant MQTT entity domain. See the Home Assistant docs for
// the list of platforms: https://www.home-assistant.io/integrations/mqtt.
//
// A descriptor is a plain struct. Optional fields are pointers (or nil slices) and are left out of the discovery
// payload when unset; required fields are values and are always sent, even when they hold their zero value. Each
// descriptor has a New constructor that fills in Platform, and one With method per field that returns an updated copy:
//
//	s := platform.NewSensor().
//		WithName("Temperature").
//		WithStateTopic("livingroom/temperature").
//		WithUnitOfMeasurement(hass.UnitCelsius)
//
// Descriptors marshal to the abbreviated form of the discovery payload using encoding/json/v2. Nothing is validated:
// Home Assistant is the authority on which combinations of fields are allowed.
//
// Every descriptor implements Entity, which is what the publishing helpers in the root package accept.
package platform
