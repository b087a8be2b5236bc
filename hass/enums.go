package hass

// ClimateMode is an HVAC mode supported by climate and water heater entities.
type ClimateMode string

const (
	ClimateModeAuto    ClimateMode = "auto"
	ClimateModeOff     ClimateMode = "off"
	ClimateModeCool    ClimateMode = "cool"
	ClimateModeHeat    ClimateMode = "heat"
	ClimateModeDry     ClimateMode = "dry"
	ClimateModeFanOnly ClimateMode = "fan_only"
)

// TemperatureUnit is the unit a climate or water heater entity reports temperatures in.
type TemperatureUnit string

const (
	TemperatureUnitCelsius    TemperatureUnit = "C"
	TemperatureUnitFahrenheit TemperatureUnit = "F"
)

// WaterHeaterMode is an operation mode supported by water heater entities.
type WaterHeaterMode string

const (
	WaterHeaterModeOff         WaterHeaterMode = "off"
	WaterHeaterModeEco         WaterHeaterMode = "eco"
	WaterHeaterModeElectric    WaterHeaterMode = "electric"
	WaterHeaterModeGas         WaterHeaterMode = "gas"
	WaterHeaterModeHeatPump    WaterHeaterMode = "heat_pump"
	WaterHeaterModeHighDemand  WaterHeaterMode = "high_demand"
	WaterHeaterModePerformance WaterHeaterMode = "performance"
)

// NumberMode controls how a number entity is displayed in the UI.
type NumberMode string

const (
	NumberModeAuto   NumberMode = "auto"
	NumberModeBox    NumberMode = "box"
	NumberModeSlider NumberMode = "slider"
)

// TextMode controls how a text entity is displayed in the UI.
type TextMode string

const (
	TextModeText     TextMode = "text"
	TextModePassword TextMode = "password"
)

// SourceType is the kind of tracker a device tracker entity represents.
type SourceType string

const (
	SourceTypeGPS         SourceType = "gps"
	SourceTypeRouter      SourceType = "router"
	SourceTypeBluetooth   SourceType = "bluetooth"
	SourceTypeBluetoothLE SourceType = "bluetooth_le"
)

// LightSchema selects the payload format a light entity uses. The default schema uses one topic per capability, the
// json schema packs state into a single JSON document, and the template schema renders commands from templates.
type LightSchema string

const (
	LightSchemaDefault  LightSchema = "basic"
	LightSchemaJSON     LightSchema = "json"
	LightSchemaTemplate LightSchema = "template"
)

// OnCommandType controls which command a light sends when turned on with a brightness.
type OnCommandType string

const (
	// OnCommandTypeLast sends any style (brightness, color, etc.) topics first and then a payload_on to the
	// command_topic.
	OnCommandTypeLast OnCommandType = "last"
	// OnCommandTypeFirst sends the payload_on and then any style topics.
	OnCommandTypeFirst OnCommandType = "first"
	// OnCommandTypeBrightness only sends brightness commands instead of the payload_on to turn the light on.
	OnCommandTypeBrightness OnCommandType = "brightness"
)

// AlarmControlPanelFeature is an arming mode supported by an alarm control panel.
type AlarmControlPanelFeature string

const (
	AlarmControlPanelFeatureArmHome         AlarmControlPanelFeature = "arm_home"
	AlarmControlPanelFeatureArmAway         AlarmControlPanelFeature = "arm_away"
	AlarmControlPanelFeatureArmNight        AlarmControlPanelFeature = "arm_night"
	AlarmControlPanelFeatureArmVacation     AlarmControlPanelFeature = "arm_vacation"
	AlarmControlPanelFeatureArmCustomBypass AlarmControlPanelFeature = "arm_custom_bypass"
	AlarmControlPanelFeatureTrigger         AlarmControlPanelFeature = "trigger"
)

// VacuumFeature is a capability supported by a vacuum.
type VacuumFeature string

const (
	VacuumFeatureStart       VacuumFeature = "start"
	VacuumFeatureStop        VacuumFeature = "stop"
	VacuumFeaturePause       VacuumFeature = "pause"
	VacuumFeatureReturnHome  VacuumFeature = "return_home"
	VacuumFeatureBattery     VacuumFeature = "battery"
	VacuumFeatureStatus      VacuumFeature = "status"
	VacuumFeatureLocate      VacuumFeature = "locate"
	VacuumFeatureCleanSpot   VacuumFeature = "clean_spot"
	VacuumFeatureFanSpeed    VacuumFeature = "fan_speed"
	VacuumFeatureSendCommand VacuumFeature = "send_command"
)

// DeviceTriggerType is the type of a device trigger, e.g. "button_short_press". Any string is accepted.
type DeviceTriggerType string

const (
	DeviceTriggerTypeButtonShortPress     DeviceTriggerType = "button_short_press"
	DeviceTriggerTypeButtonShortRelease   DeviceTriggerType = "button_short_release"
	DeviceTriggerTypeButtonLongPress      DeviceTriggerType = "button_long_press"
	DeviceTriggerTypeButtonLongRelease    DeviceTriggerType = "button_long_release"
	DeviceTriggerTypeButtonDoublePress    DeviceTriggerType = "button_double_press"
	DeviceTriggerTypeButtonTriplePress    DeviceTriggerType = "button_triple_press"
	DeviceTriggerTypeButtonQuadruplePress DeviceTriggerType = "button_quadruple_press"
	DeviceTriggerTypeButtonQuintuplePress DeviceTriggerType = "button_quintuple_press"
)

// DeviceTriggerSubtype is the subtype of a device trigger, e.g. "button_1". Any string is accepted.
type DeviceTriggerSubtype string

const (
	DeviceTriggerSubtypeTurnOn  DeviceTriggerSubtype = "turn_on"
	DeviceTriggerSubtypeTurnOff DeviceTriggerSubtype = "turn_off"
	DeviceTriggerSubtypeButton1 DeviceTriggerSubtype = "button_1"
	DeviceTriggerSubtypeButton2 DeviceTriggerSubtype = "button_2"
	DeviceTriggerSubtypeButton3 DeviceTriggerSubtype = "button_3"
	DeviceTriggerSubtypeButton4 DeviceTriggerSubtype = "button_4"
	DeviceTriggerSubtypeButton5 DeviceTriggerSubtype = "button_5"
	DeviceTriggerSubtypeButton6 DeviceTriggerSubtype = "button_6"
)
