package hass

import (
	"encoding/json/jsontext"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/nlowe/hadiscovery/discovery"
)

var (
	// ErrInvalidDevice is the error returned by Device.Valid if it is not properly configured.
	ErrInvalidDevice = errors.New("device must have at least one identifying value in 'identifiers' and/or 'connections'")
	// ErrInvalidConnection is the error returned when decoding a DeviceConnection that is not a [kind, value] pair.
	ErrInvalidConnection = errors.New("device connection must be a [kind, value] pair")
)

// DeviceConnection maps this Device to the outside world. For example:
//
//	DeviceConnection{
//	    Kind: "mac",
//	    Value: "02:5b:26:a8:dc:12",
//	}
//
// It implements fmt.Stringer and slog.LogValuer
type DeviceConnection struct {
	Kind  string
	Value string
}

func (d DeviceConnection) String() string {
	return fmt.Sprintf("[%q,%q]", d.Kind, d.Value)
}

func (d DeviceConnection) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("kind", d.Kind),
		slog.String("value", d.Value),
	)
}

func (d DeviceConnection) MarshalJSONTo(e *jsontext.Encoder) error {
	return errors.Join(
		e.WriteToken(jsontext.BeginArray),
		e.WriteToken(jsontext.String(d.Kind)),
		e.WriteToken(jsontext.String(d.Value)),
		e.WriteToken(jsontext.EndArray),
	)
}

func (d *DeviceConnection) UnmarshalJSONFrom(dec *jsontext.Decoder) error {
	var pair []string
	if err := discovery.UnmarshalStd(dec, &pair); err != nil {
		return err
	}

	if len(pair) != 2 {
		return fmt.Errorf("%w: got %d elements", ErrInvalidConnection, len(pair))
	}

	d.Kind, d.Value = pair[0], pair[1]
	return nil
}

// Device represents the physical (or logical) device an entity belongs to. Home Assistant groups entities that share a
// device in its UI. The zero value is a valid but empty device.
//
// See https://www.home-assistant.io/integrations/mqtt/#device-discovery-payload
type Device struct {
	// The ID to use for discovery. If empty, an ID is calculated from other fields. It is never sent to Home Assistant.
	DiscoveryID string

	// The name of the device.
	Name string

	// The serial number of the device
	Serial string

	// The manufacturer of the device.
	Manufacturer string

	// The model of the device.
	Model string

	// The model identifier of the device.
	ModelID string

	// A link to the webpage that can manage the configuration of this device. Can be either a http://, https:// or an
	// internal homeassistant:// URL.
	ConfigurationURL *url.URL

	// A list of connections of the device to the outside world. For example, `[]DeviceConnection{{Kind: "mac", Value: "02:5b:26:a8:dc:12"]}}`
	Connections []DeviceConnection

	// The hardware version of the device.
	HardwareVersion string

	// The firmware version of the device
	FirmwareVersion string

	// A list of IDs that uniquely identify the device. For example a serial number.
	Identifiers []string

	// Suggest an area if the device isn't in one yet
	SuggestedArea string

	// Identifier of a device that routes messages between this device and Home Assistant. Examples of such devices are
	// hubs, or parent devices of a sub-device. This is used to show device topology in Home Assistant.
	ViaDevice string
}

func (d *Device) fields() discovery.Fields {
	return discovery.Fields{
		discovery.OmitEmpty(discovery.FieldName, &d.Name),
		discovery.OmitEmpty(discovery.FieldDeviceSerialNumber, &d.Serial),
		discovery.OmitEmpty(discovery.FieldDeviceManufacturer, &d.Manufacturer),
		discovery.OmitEmpty(discovery.FieldDeviceModel, &d.Model),
		discovery.OmitEmpty(discovery.FieldDeviceModelID, &d.ModelID),
		discovery.Optional(discovery.FieldDeviceConfigurationURL, &d.ConfigurationURL),
		discovery.Slice(discovery.FieldDeviceConnections, &d.Connections),
		discovery.OmitEmpty(discovery.FieldDeviceHardwareVersion, &d.HardwareVersion),
		discovery.OmitEmpty(discovery.FieldDeviceSoftwareVersion, &d.FirmwareVersion),
		discovery.Slice(discovery.FieldDeviceIdentifiers, &d.Identifiers),
		discovery.OmitEmpty(discovery.FieldDeviceSuggestedArea, &d.SuggestedArea),
		discovery.OmitEmpty(discovery.FieldDeviceViaDevice, &d.ViaDevice),
	}
}

func (d Device) MarshalJSONTo(e *jsontext.Encoder) error {
	return d.fields().MarshalJSONTo(e)
}

func (d *Device) UnmarshalJSONFrom(dec *jsontext.Decoder) error {
	return d.fields().UnmarshalJSONFrom(dec)
}

// ID calculates an identifier for this device. If the Device.DiscoveryID is specified, that value will be used.
// Otherwise, if any of the following fields are set, they are used (separated by discovery.IDSep): All
// Device.Identifiers, Device.Name, Device.Serial, Device.Manufacturer, Device.Model, and Device.ModelID. A device with
// none of those set falls back to its Device.Connections, each written as kind and value.
func (d *Device) ID() string {
	if d.DiscoveryID != "" {
		return d.DiscoveryID
	}

	var result strings.Builder

	writeSep := func() {
		if result.Len() > 0 {
			result.WriteString(discovery.IDSep)
		}
	}

	for _, part := range append(
		append([]string{}, d.Identifiers...),
		d.Name, d.Serial, d.Manufacturer, d.Model, d.ModelID,
	) {
		if part == "" {
			continue
		}

		writeSep()
		result.WriteString(discovery.IDSanitizer.Replace(part))
	}

	if result.Len() == 0 {
		for _, c := range d.Connections {
			writeSep()
			result.WriteString(discovery.IDSanitizer.Replace(c.Kind))
			result.WriteString(discovery.IDSep)
			result.WriteString(discovery.IDSanitizer.Replace(c.Value))
		}
	}

	return result.String()
}

// Valid checks if this Device is configured appropriately for device-based discovery. Home Assistant requires at least
// one value be configured for Device.Identifiers, or at least one value be configured for Device.Connections.
func (d *Device) Valid() error {
	if len(d.Identifiers) == 0 && len(d.Connections) == 0 {
		return ErrInvalidDevice
	}

	return nil
}

func (d Device) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("id", d.ID()),
		slog.String("name", d.Name),
		slog.String("manufacturer", d.Manufacturer),
		slog.String("model", d.Model),
	)
}
