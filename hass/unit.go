package hass

// Unit is a unit of measurement understood by Home Assistant. Any string is accepted; the constants below are the
// units Home Assistant converts between for the matching device classes.
type Unit string

const (
	UnitPercentage Unit = "%"

	UnitCelsius    Unit = "°C"
	UnitFahrenheit Unit = "°F"
	UnitKelvin     Unit = "K"

	UnitWatt         Unit = "W"
	UnitKiloWatt     Unit = "kW"
	UnitWattHour     Unit = "Wh"
	UnitKiloWattHour Unit = "kWh"
	UnitVolt         Unit = "V"
	UnitMilliVolt    Unit = "mV"
	UnitAmpere       Unit = "A"
	UnitMilliAmpere  Unit = "mA"
	UnitVoltAmpere   Unit = "VA"
	UnitHertz        Unit = "Hz"

	UnitHectoPascal Unit = "hPa"
	UnitPascal      Unit = "Pa"
	UnitBar         Unit = "bar"
	UnitPSI         Unit = "psi"

	UnitLux Unit = "lx"

	UnitMicrogramsPerCubicMeter Unit = "µg/m³"
	UnitPartsPerMillion         Unit = "ppm"
	UnitPartsPerBillion         Unit = "ppb"

	UnitDecibelMilliwatt Unit = "dBm"
	UnitDecibel          Unit = "dB"

	UnitSeconds      Unit = "s"
	UnitMinutes      Unit = "min"
	UnitHours        Unit = "h"
	UnitDays         Unit = "d"
	UnitMilliseconds Unit = "ms"

	UnitMillimeter Unit = "mm"
	UnitCentimeter Unit = "cm"
	UnitMeter      Unit = "m"
	UnitKilometer  Unit = "km"

	UnitLiter      Unit = "L"
	UnitCubicMeter Unit = "m³"
	UnitGram       Unit = "g"
	UnitKilogram   Unit = "kg"

	UnitMetersPerSecond    Unit = "m/s"
	UnitKilometersPerHour  Unit = "km/h"
	UnitMillimetersPerHour Unit = "mm/h"

	UnitBytes     Unit = "B"
	UnitKiloBytes Unit = "kB"
	UnitMegaBytes Unit = "MB"
	UnitGigaBytes Unit = "GB"

	UnitBitsPerSecond     Unit = "bit/s"
	UnitMegaBitsPerSecond Unit = "Mbit/s"

	UnitDegrees Unit = "°"
)
