package platform

import (
	"encoding/json/v2"
	"errors"
	"fmt"
	"slices"

	"github.com/goccy/go-yaml"

	"github.com/nlowe/hadiscovery/discovery"
)

// ErrUnknownDomain is the error returned by New, Decode, and DecodeYAML for a Domain that has no descriptor.
var ErrUnknownDomain = errors.New("unknown domain")

// Domain is the Home Assistant entity domain of a descriptor. The string value is the platform literal sent in the p
// field of the discovery payload, and is also the <component> part of the discovery topic.
type Domain string

const (
	DomainAlarmControlPanel Domain = "alarm_control_panel"
	DomainBinarySensor      Domain = "binary_sensor"
	DomainButton            Domain = "button"
	DomainCamera            Domain = "camera"
	DomainClimate           Domain = "climate"
	DomainCover             Domain = "cover"
	DomainDeviceTracker     Domain = "device_tracker"
	DomainDeviceTrigger     Domain = "device_automation"
	DomainEvent             Domain = "event"
	DomainFan               Domain = "fan"
	DomainHumidifier        Domain = "humidifier"
	DomainImage             Domain = "image"
	DomainLawnMower         Domain = "lawn_mower"
	DomainLight             Domain = "light"
	DomainLock              Domain = "lock"
	DomainNotify            Domain = "notify"
	DomainNumber            Domain = "number"
	DomainScene             Domain = "scene"
	DomainSelect            Domain = "select"
	DomainSensor            Domain = "sensor"
	DomainSiren             Domain = "siren"
	DomainSwitch            Domain = "switch"
	DomainTag               Domain = "tag"
	DomainText              Domain = "text"
	DomainUpdate            Domain = "update"
	DomainVacuum            Domain = "vacuum"
	DomainValve             Domain = "valve"
	DomainWaterHeater       Domain = "water_heater"
)

func (d Domain) String() string {
	return string(d)
}

// Entity is implemented by every descriptor in this package and nothing else. Converting a descriptor to an Entity is
// plain assignment, and a type switch or assertion recovers the original value unchanged:
//
//	var e platform.Entity = platform.NewSensor().WithStateTopic("foo/state")
//	s, ok := e.(platform.Sensor)
type Entity interface {
	json.MarshalerTo

	// Domain returns the Home Assistant domain of the descriptor.
	Domain() Domain

	entity()
}

var constructors = map[Domain]func() Entity{
	DomainAlarmControlPanel: func() Entity { return NewAlarmControlPanel() },
	DomainBinarySensor:      func() Entity { return NewBinarySensor() },
	DomainButton:            func() Entity { return NewButton() },
	DomainCamera:            func() Entity { return NewCamera() },
	DomainClimate:           func() Entity { return NewClimate() },
	DomainCover:             func() Entity { return NewCover() },
	DomainDeviceTracker:     func() Entity { return NewDeviceTracker() },
	DomainDeviceTrigger:     func() Entity { return NewDeviceTrigger() },
	DomainEvent:             func() Entity { return NewEvent() },
	DomainFan:               func() Entity { return NewFan() },
	DomainHumidifier:        func() Entity { return NewHumidifier() },
	DomainImage:             func() Entity { return NewImage() },
	DomainLawnMower:         func() Entity { return NewLawnMower() },
	DomainLight:             func() Entity { return NewLight() },
	DomainLock:              func() Entity { return NewLock() },
	DomainNotify:            func() Entity { return NewNotify() },
	DomainNumber:            func() Entity { return NewNumber() },
	DomainScene:             func() Entity { return NewScene() },
	DomainSelect:            func() Entity { return NewSelect() },
	DomainSensor:            func() Entity { return NewSensor() },
	DomainSiren:             func() Entity { return NewSiren() },
	DomainSwitch:            func() Entity { return NewSwitch() },
	DomainTag:               func() Entity { return NewTag() },
	DomainText:              func() Entity { return NewText() },
	DomainUpdate:            func() Entity { return NewUpdate() },
	DomainVacuum:            func() Entity { return NewVacuum() },
	DomainValve:             func() Entity { return NewValve() },
	DomainWaterHeater:       func() Entity { return NewWaterHeater() },
}

// Domains returns every Domain with a descriptor, sorted by name.
func Domains() []Domain {
	result := make([]Domain, 0, len(constructors))
	for d := range constructors {
		result = append(result, d)
	}

	slices.Sort(result)
	return result
}

// New returns the default descriptor for the provided Domain.
func New(d Domain) (Entity, error) {
	ctor, ok := constructors[d]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDomain, d)
	}

	return ctor(), nil
}

// Decode decodes a JSON discovery payload for the provided Domain. Keys may be abbreviated or spelled out in full, and
// unknown keys are ignored. Decoding starts from the default descriptor, so Platform is set even if the payload omits
// it.
func Decode(d Domain, data []byte) (Entity, error) {
	switch d {
	case DomainAlarmControlPanel:
		return decode(data, NewAlarmControlPanel())
	case DomainBinarySensor:
		return decode(data, NewBinarySensor())
	case DomainButton:
		return decode(data, NewButton())
	case DomainCamera:
		return decode(data, NewCamera())
	case DomainClimate:
		return decode(data, NewClimate())
	case DomainCover:
		return decode(data, NewCover())
	case DomainDeviceTracker:
		return decode(data, NewDeviceTracker())
	case DomainDeviceTrigger:
		return decode(data, NewDeviceTrigger())
	case DomainEvent:
		return decode(data, NewEvent())
	case DomainFan:
		return decode(data, NewFan())
	case DomainHumidifier:
		return decode(data, NewHumidifier())
	case DomainImage:
		return decode(data, NewImage())
	case DomainLawnMower:
		return decode(data, NewLawnMower())
	case DomainLight:
		return decode(data, NewLight())
	case DomainLock:
		return decode(data, NewLock())
	case DomainNotify:
		return decode(data, NewNotify())
	case DomainNumber:
		return decode(data, NewNumber())
	case DomainScene:
		return decode(data, NewScene())
	case DomainSelect:
		return decode(data, NewSelect())
	case DomainSensor:
		return decode(data, NewSensor())
	case DomainSiren:
		return decode(data, NewSiren())
	case DomainSwitch:
		return decode(data, NewSwitch())
	case DomainTag:
		return decode(data, NewTag())
	case DomainText:
		return decode(data, NewText())
	case DomainUpdate:
		return decode(data, NewUpdate())
	case DomainVacuum:
		return decode(data, NewVacuum())
	case DomainValve:
		return decode(data, NewValve())
	case DomainWaterHeater:
		return decode(data, NewWaterHeater())
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDomain, d)
	}
}

func decode[T Entity, PT interface {
	*T
	json.UnmarshalerFrom
}](data []byte, v T) (Entity, error) {
	if err := json.Unmarshal(data, PT(&v), json.WithUnmarshalers(discovery.Unmarshalers)); err != nil {
		return nil, fmt.Errorf("decode %s: %w", v.Domain(), err)
	}

	return v, nil
}

// DecodeYAML is like Decode, but accepts a YAML document. This is the format Home Assistant uses for manually
// configured MQTT entities, so an entry from configuration.yaml can be turned into a discovery payload.
func DecodeYAML(d Domain, data []byte) (Entity, error) {
	if _, ok := constructors[d]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDomain, d)
	}

	converted, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: yaml: %w", d, err)
	}

	return Decode(d, converted)
}
