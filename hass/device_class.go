package hass

import (
	"encoding/json/jsontext"

	"github.com/nlowe/hadiscovery/discovery"
)

// BinarySensorDeviceClass narrows the meaning of a binary sensor entity, which changes its default icon and how Home Assistant
// renders its state. BinarySensorDeviceClassNone encodes as an explicit JSON null, which clears the class instead of
// falling back to the default.
type BinarySensorDeviceClass string

const (
	BinarySensorDeviceClassNone            BinarySensorDeviceClass = ""
	BinarySensorDeviceClassBattery         BinarySensorDeviceClass = "battery"
	BinarySensorDeviceClassBatteryCharging BinarySensorDeviceClass = "battery_charging"
	BinarySensorDeviceClassCarbonMonoxide  BinarySensorDeviceClass = "carbon_monoxide"
	BinarySensorDeviceClassCold            BinarySensorDeviceClass = "cold"
	BinarySensorDeviceClassConnectivity    BinarySensorDeviceClass = "connectivity"
	BinarySensorDeviceClassDoor            BinarySensorDeviceClass = "door"
	BinarySensorDeviceClassGarageDoor      BinarySensorDeviceClass = "garage_door"
	BinarySensorDeviceClassGas             BinarySensorDeviceClass = "gas"
	BinarySensorDeviceClassHeat            BinarySensorDeviceClass = "heat"
	BinarySensorDeviceClassLight           BinarySensorDeviceClass = "light"
	BinarySensorDeviceClassLock            BinarySensorDeviceClass = "lock"
	BinarySensorDeviceClassMoisture        BinarySensorDeviceClass = "moisture"
	BinarySensorDeviceClassMotion          BinarySensorDeviceClass = "motion"
	BinarySensorDeviceClassMoving          BinarySensorDeviceClass = "moving"
	BinarySensorDeviceClassOccupancy       BinarySensorDeviceClass = "occupancy"
	BinarySensorDeviceClassOpening         BinarySensorDeviceClass = "opening"
	BinarySensorDeviceClassPlug            BinarySensorDeviceClass = "plug"
	BinarySensorDeviceClassPower           BinarySensorDeviceClass = "power"
	BinarySensorDeviceClassPresence        BinarySensorDeviceClass = "presence"
	BinarySensorDeviceClassProblem         BinarySensorDeviceClass = "problem"
	BinarySensorDeviceClassRunning         BinarySensorDeviceClass = "running"
	BinarySensorDeviceClassSafety          BinarySensorDeviceClass = "safety"
	BinarySensorDeviceClassSmoke           BinarySensorDeviceClass = "smoke"
	BinarySensorDeviceClassSound           BinarySensorDeviceClass = "sound"
	BinarySensorDeviceClassTamper          BinarySensorDeviceClass = "tamper"
	BinarySensorDeviceClassUpdate          BinarySensorDeviceClass = "update"
	BinarySensorDeviceClassVibration       BinarySensorDeviceClass = "vibration"
	BinarySensorDeviceClassWindow          BinarySensorDeviceClass = "window"
)

func (c BinarySensorDeviceClass) MarshalJSONTo(e *jsontext.Encoder) error {
	return discovery.MarshalNullableString(e, string(c))
}

func (c *BinarySensorDeviceClass) UnmarshalJSONFrom(d *jsontext.Decoder) error {
	return discovery.UnmarshalNullableString(d, (*string)(c))
}

// ButtonDeviceClass narrows the meaning of a button entity.
type ButtonDeviceClass string

const (
	ButtonDeviceClassNone     ButtonDeviceClass = ""
	ButtonDeviceClassIdentify ButtonDeviceClass = "identify"
	ButtonDeviceClassRestart  ButtonDeviceClass = "restart"
	ButtonDeviceClassUpdate   ButtonDeviceClass = "update"
)

func (c ButtonDeviceClass) MarshalJSONTo(e *jsontext.Encoder) error {
	return discovery.MarshalNullableString(e, string(c))
}

func (c *ButtonDeviceClass) UnmarshalJSONFrom(d *jsontext.Decoder) error {
	return discovery.UnmarshalNullableString(d, (*string)(c))
}

type CoverDeviceClass string

const (
	CoverDeviceClassNone    CoverDeviceClass = ""
	CoverDeviceClassAwning  CoverDeviceClass = "awning"
	CoverDeviceClassBlind   CoverDeviceClass = "blind"
	CoverDeviceClassCurtain CoverDeviceClass = "curtain"
	CoverDeviceClassDamper  CoverDeviceClass = "damper"
	CoverDeviceClassDoor    CoverDeviceClass = "door"
	CoverDeviceClassGarage  CoverDeviceClass = "garage"
	CoverDeviceClassGate    CoverDeviceClass = "gate"
	CoverDeviceClassShade   CoverDeviceClass = "shade"
	CoverDeviceClassShutter CoverDeviceClass = "shutter"
	CoverDeviceClassWindow  CoverDeviceClass = "window"
)

func (c CoverDeviceClass) MarshalJSONTo(e *jsontext.Encoder) error {
	return discovery.MarshalNullableString(e, string(c))
}

func (c *CoverDeviceClass) UnmarshalJSONFrom(d *jsontext.Decoder) error {
	return discovery.UnmarshalNullableString(d, (*string)(c))
}

type EventDeviceClass string

const (
	EventDeviceClassNone     EventDeviceClass = ""
	EventDeviceClassButton   EventDeviceClass = "button"
	EventDeviceClassDoorbell EventDeviceClass = "doorbell"
	EventDeviceClassMotion   EventDeviceClass = "motion"
)

func (c EventDeviceClass) MarshalJSONTo(e *jsontext.Encoder) error {
	return discovery.MarshalNullableString(e, string(c))
}

func (c *EventDeviceClass) UnmarshalJSONFrom(d *jsontext.Decoder) error {
	return discovery.UnmarshalNullableString(d, (*string)(c))
}

type HumidifierDeviceClass string

const (
	HumidifierDeviceClassNone         HumidifierDeviceClass = ""
	HumidifierDeviceClassHumidifier   HumidifierDeviceClass = "humidifier"
	HumidifierDeviceClassDehumidifier HumidifierDeviceClass = "dehumidifier"
)

func (c HumidifierDeviceClass) MarshalJSONTo(e *jsontext.Encoder) error {
	return discovery.MarshalNullableString(e, string(c))
}

func (c *HumidifierDeviceClass) UnmarshalJSONFrom(d *jsontext.Decoder) error {
	return discovery.UnmarshalNullableString(d, (*string)(c))
}

// NumberDeviceClass shares the numeric classes of SensorDeviceClass.
type NumberDeviceClass string

const (
	NumberDeviceClassNone                          NumberDeviceClass = ""
	NumberDeviceClassAbsoluteHumidity              NumberDeviceClass = "absolute_humidity"
	NumberDeviceClassApparentPower                 NumberDeviceClass = "apparent_power"
	NumberDeviceClassAQI                           NumberDeviceClass = "aqi"
	NumberDeviceClassArea                          NumberDeviceClass = "area"
	NumberDeviceClassAtmosphericPressure           NumberDeviceClass = "atmospheric_pressure"
	NumberDeviceClassBattery                       NumberDeviceClass = "battery"
	NumberDeviceClassBloodGlucoseConcentration     NumberDeviceClass = "blood_glucose_concentration"
	NumberDeviceClassCarbonDioxide                 NumberDeviceClass = "carbon_dioxide"
	NumberDeviceClassCarbonMonoxide                NumberDeviceClass = "carbon_monoxide"
	NumberDeviceClassConductivity                  NumberDeviceClass = "conductivity"
	NumberDeviceClassCurrent                       NumberDeviceClass = "current"
	NumberDeviceClassDataRate                      NumberDeviceClass = "data_rate"
	NumberDeviceClassDataSize                      NumberDeviceClass = "data_size"
	NumberDeviceClassDistance                      NumberDeviceClass = "distance"
	NumberDeviceClassDuration                      NumberDeviceClass = "duration"
	NumberDeviceClassEnergy                        NumberDeviceClass = "energy"
	NumberDeviceClassEnergyDistance                NumberDeviceClass = "energy_distance"
	NumberDeviceClassEnergyStorage                 NumberDeviceClass = "energy_storage"
	NumberDeviceClassFrequency                     NumberDeviceClass = "frequency"
	NumberDeviceClassGas                           NumberDeviceClass = "gas"
	NumberDeviceClassHumidity                      NumberDeviceClass = "humidity"
	NumberDeviceClassIlluminance                   NumberDeviceClass = "illuminance"
	NumberDeviceClassIrradiance                    NumberDeviceClass = "irradiance"
	NumberDeviceClassMoisture                      NumberDeviceClass = "moisture"
	NumberDeviceClassMonetary                      NumberDeviceClass = "monetary"
	NumberDeviceClassNitrogenDioxide               NumberDeviceClass = "nitrogen_dioxide"
	NumberDeviceClassNitrogenMonoxide              NumberDeviceClass = "nitrogen_monoxide"
	NumberDeviceClassNitrousOxide                  NumberDeviceClass = "nitrous_oxide"
	NumberDeviceClassOzone                         NumberDeviceClass = "ozone"
	NumberDeviceClassPH                            NumberDeviceClass = "ph"
	NumberDeviceClassPM1                           NumberDeviceClass = "pm1"
	NumberDeviceClassPM25                          NumberDeviceClass = "pm25"
	NumberDeviceClassPM10                          NumberDeviceClass = "pm10"
	NumberDeviceClassPower                         NumberDeviceClass = "power"
	NumberDeviceClassPowerFactor                   NumberDeviceClass = "power_factor"
	NumberDeviceClassPrecipitation                 NumberDeviceClass = "precipitation"
	NumberDeviceClassPrecipitationIntensity        NumberDeviceClass = "precipitation_intensity"
	NumberDeviceClassPressure                      NumberDeviceClass = "pressure"
	NumberDeviceClassReactiveEnergy                NumberDeviceClass = "reactive_energy"
	NumberDeviceClassReactivePower                 NumberDeviceClass = "reactive_power"
	NumberDeviceClassSignalStrength                NumberDeviceClass = "signal_strength"
	NumberDeviceClassSoundPressure                 NumberDeviceClass = "sound_pressure"
	NumberDeviceClassSpeed                         NumberDeviceClass = "speed"
	NumberDeviceClassSulphurDioxide                NumberDeviceClass = "sulphur_dioxide"
	NumberDeviceClassTemperature                   NumberDeviceClass = "temperature"
	NumberDeviceClassVolatileOrganicCompounds      NumberDeviceClass = "volatile_organic_compounds"
	NumberDeviceClassVolatileOrganicCompoundsParts NumberDeviceClass = "volatile_organic_compounds_parts"
	NumberDeviceClassVoltage                       NumberDeviceClass = "voltage"
	NumberDeviceClassVolume                        NumberDeviceClass = "volume"
	NumberDeviceClassVolumeFlowRate                NumberDeviceClass = "volume_flow_rate"
	NumberDeviceClassVolumeStorage                 NumberDeviceClass = "volume_storage"
	NumberDeviceClassWater                         NumberDeviceClass = "water"
	NumberDeviceClassWeight                        NumberDeviceClass = "weight"
	NumberDeviceClassWindDirection                 NumberDeviceClass = "wind_direction"
	NumberDeviceClassWindSpeed                     NumberDeviceClass = "wind_speed"
)

func (c NumberDeviceClass) MarshalJSONTo(e *jsontext.Encoder) error {
	return discovery.MarshalNullableString(e, string(c))
}

func (c *NumberDeviceClass) UnmarshalJSONFrom(d *jsontext.Decoder) error {
	return discovery.UnmarshalNullableString(d, (*string)(c))
}

// SensorDeviceClass narrows the meaning of a sensor entity, which changes its default icon and how Home Assistant
// renders its state. SensorDeviceClassNone encodes as an explicit JSON null, which clears the class instead of
// falling back to the default.
type SensorDeviceClass string

const (
	SensorDeviceClassNone                          SensorDeviceClass = ""
	SensorDeviceClassAbsoluteHumidity              SensorDeviceClass = "absolute_humidity"
	SensorDeviceClassApparentPower                 SensorDeviceClass = "apparent_power"
	SensorDeviceClassAQI                           SensorDeviceClass = "aqi"
	SensorDeviceClassArea                          SensorDeviceClass = "area"
	SensorDeviceClassAtmosphericPressure           SensorDeviceClass = "atmospheric_pressure"
	SensorDeviceClassBattery                       SensorDeviceClass = "battery"
	SensorDeviceClassBloodGlucoseConcentration     SensorDeviceClass = "blood_glucose_concentration"
	SensorDeviceClassCarbonDioxide                 SensorDeviceClass = "carbon_dioxide"
	SensorDeviceClassCarbonMonoxide                SensorDeviceClass = "carbon_monoxide"
	SensorDeviceClassConductivity                  SensorDeviceClass = "conductivity"
	SensorDeviceClassCurrent                       SensorDeviceClass = "current"
	SensorDeviceClassDataRate                      SensorDeviceClass = "data_rate"
	SensorDeviceClassDataSize                      SensorDeviceClass = "data_size"
	SensorDeviceClassDate                          SensorDeviceClass = "date"
	SensorDeviceClassDistance                      SensorDeviceClass = "distance"
	SensorDeviceClassDuration                      SensorDeviceClass = "duration"
	SensorDeviceClassEnergy                        SensorDeviceClass = "energy"
	SensorDeviceClassEnergyDistance                SensorDeviceClass = "energy_distance"
	SensorDeviceClassEnergyStorage                 SensorDeviceClass = "energy_storage"
	SensorDeviceClassEnum                          SensorDeviceClass = "enum"
	SensorDeviceClassFrequency                     SensorDeviceClass = "frequency"
	SensorDeviceClassGas                           SensorDeviceClass = "gas"
	SensorDeviceClassHumidity                      SensorDeviceClass = "humidity"
	SensorDeviceClassIlluminance                   SensorDeviceClass = "illuminance"
	SensorDeviceClassIrradiance                    SensorDeviceClass = "irradiance"
	SensorDeviceClassMoisture                      SensorDeviceClass = "moisture"
	SensorDeviceClassMonetary                      SensorDeviceClass = "monetary"
	SensorDeviceClassNitrogenDioxide               SensorDeviceClass = "nitrogen_dioxide"
	SensorDeviceClassNitrogenMonoxide              SensorDeviceClass = "nitrogen_monoxide"
	SensorDeviceClassNitrousOxide                  SensorDeviceClass = "nitrous_oxide"
	SensorDeviceClassOzone                         SensorDeviceClass = "ozone"
	SensorDeviceClassPH                            SensorDeviceClass = "ph"
	SensorDeviceClassPM1                           SensorDeviceClass = "pm1"
	SensorDeviceClassPM25                          SensorDeviceClass = "pm25"
	SensorDeviceClassPM10                          SensorDeviceClass = "pm10"
	SensorDeviceClassPower                         SensorDeviceClass = "power"
	SensorDeviceClassPowerFactor                   SensorDeviceClass = "power_factor"
	SensorDeviceClassPrecipitation                 SensorDeviceClass = "precipitation"
	SensorDeviceClassPrecipitationIntensity        SensorDeviceClass = "precipitation_intensity"
	SensorDeviceClassPressure                      SensorDeviceClass = "pressure"
	SensorDeviceClassReactiveEnergy                SensorDeviceClass = "reactive_energy"
	SensorDeviceClassReactivePower                 SensorDeviceClass = "reactive_power"
	SensorDeviceClassSignalStrength                SensorDeviceClass = "signal_strength"
	SensorDeviceClassSoundPressure                 SensorDeviceClass = "sound_pressure"
	SensorDeviceClassSpeed                         SensorDeviceClass = "speed"
	SensorDeviceClassSulphurDioxide                SensorDeviceClass = "sulphur_dioxide"
	SensorDeviceClassTemperature                   SensorDeviceClass = "temperature"
	SensorDeviceClassTimestamp                     SensorDeviceClass = "timestamp"
	SensorDeviceClassVolatileOrganicCompounds      SensorDeviceClass = "volatile_organic_compounds"
	SensorDeviceClassVolatileOrganicCompoundsParts SensorDeviceClass = "volatile_organic_compounds_parts"
	SensorDeviceClassVoltage                       SensorDeviceClass = "voltage"
	SensorDeviceClassVolume                        SensorDeviceClass = "volume"
	SensorDeviceClassVolumeFlowRate                SensorDeviceClass = "volume_flow_rate"
	SensorDeviceClassVolumeStorage                 SensorDeviceClass = "volume_storage"
	SensorDeviceClassWater                         SensorDeviceClass = "water"
	SensorDeviceClassWeight                        SensorDeviceClass = "weight"
	SensorDeviceClassWindDirection                 SensorDeviceClass = "wind_direction"
	SensorDeviceClassWindSpeed                     SensorDeviceClass = "wind_speed"
)

func (c SensorDeviceClass) MarshalJSONTo(e *jsontext.Encoder) error {
	return discovery.MarshalNullableString(e, string(c))
}

func (c *SensorDeviceClass) UnmarshalJSONFrom(d *jsontext.Decoder) error {
	return discovery.UnmarshalNullableString(d, (*string)(c))
}

type SwitchDeviceClass string

const (
	SwitchDeviceClassNone   SwitchDeviceClass = ""
	SwitchDeviceClassOutlet SwitchDeviceClass = "outlet"
	SwitchDeviceClassSwitch SwitchDeviceClass = "switch"
)

func (c SwitchDeviceClass) MarshalJSONTo(e *jsontext.Encoder) error {
	return discovery.MarshalNullableString(e, string(c))
}

func (c *SwitchDeviceClass) UnmarshalJSONFrom(d *jsontext.Decoder) error {
	return discovery.UnmarshalNullableString(d, (*string)(c))
}

type UpdateDeviceClass string

const (
	UpdateDeviceClassNone     UpdateDeviceClass = ""
	UpdateDeviceClassFirmware UpdateDeviceClass = "firmware"
)

func (c UpdateDeviceClass) MarshalJSONTo(e *jsontext.Encoder) error {
	return discovery.MarshalNullableString(e, string(c))
}

func (c *UpdateDeviceClass) UnmarshalJSONFrom(d *jsontext.Decoder) error {
	return discovery.UnmarshalNullableString(d, (*string)(c))
}

type ValveDeviceClass string

const (
	ValveDeviceClassNone  ValveDeviceClass = ""
	ValveDeviceClassWater ValveDeviceClass = "water"
	ValveDeviceClassGas   ValveDeviceClass = "gas"
)

func (c ValveDeviceClass) MarshalJSONTo(e *jsontext.Encoder) error {
	return discovery.MarshalNullableString(e, string(c))
}

func (c *ValveDeviceClass) UnmarshalJSONFrom(d *jsontext.Decoder) error {
	return discovery.UnmarshalNullableString(d, (*string)(c))
}
