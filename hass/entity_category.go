package hass

// EntityCategory classifies an entity that is not the primary controller or sensor of its device.
type EntityCategory string

const (
	// EntityCategoryConfig is used for entities that allow changing the configuration of a device, e.g. a switch
	// entity making it possible to turn the background illumination of a switch on and off.
	EntityCategoryConfig EntityCategory = "config"
	// EntityCategoryDiagnostic is used for entities exposing some configuration parameter or diagnostics of a device
	// but do not allow changing it, e.g. a sensor showing RSSI or MAC-address.
	EntityCategoryDiagnostic EntityCategory = "diagnostic"
)
