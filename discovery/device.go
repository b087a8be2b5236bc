package discovery

import "strings"

// Constants for device fields and other fields shared by all platforms
const (
	FieldStateTopic   = "stat_t"
	FieldCommandTopic = "cmd_t"

	FieldDevice          = "dev"
	FieldOrigin          = "o"
	FieldComponents      = "cmps"
	FieldEntityCategory  = "ent_cat"
	FieldIcon            = "ic"
	FieldPlatform        = "p"
	FieldDefaultEntityID = "def_ent_id"
	FieldUniqueID        = "uniq_id"

	FieldPayloadOn  = "pl_on"
	FieldPayloadOff = "pl_off"

	FieldOptimistic = "opt"

	// IDSep is the separator used to separate various parts of a device ID. It is also used as a replacement for tokens
	// that are not allowed in an ID string.
	IDSep = "__"
)

// Sanitizer makes strings safe to use as a node, object, or device ID. Home Assistant only accepts [a-zA-Z0-9_-] in
// those IDs, so every other character (including multi-byte runes) is replaced with IDSep.
type Sanitizer struct{}

// Replace returns id with every character outside [a-zA-Z0-9_-] replaced by IDSep.
func (Sanitizer) Replace(id string) string {
	var result strings.Builder
	result.Grow(len(id))

	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			result.WriteRune(r)
		default:
			result.WriteString(IDSep)
		}
	}

	return result.String()
}

// IDSanitizer sanitizes IDs used in discovery topics.
var IDSanitizer Sanitizer

// Constants for fields of the device and origin objects nested in a discovery payload.
const (
	FieldDeviceConnections      = "cns"
	FieldDeviceIdentifiers      = "ids"
	FieldDeviceManufacturer     = "mf"
	FieldDeviceModel            = "mdl"
	FieldDeviceModelID          = "mdl_id"
	FieldDeviceHardwareVersion  = "hw"
	FieldDeviceSoftwareVersion  = "sw"
	FieldDeviceSerialNumber     = "sn"
	FieldDeviceSuggestedArea    = "sa"
	FieldDeviceConfigurationURL = "cu"
	FieldDeviceViaDevice        = "via_device"

	FieldOriginSoftwareVersion = FieldDeviceSoftwareVersion
	FieldOriginSupportURL      = "url"
)
