package platform

import (
	"encoding/json/v2"
	"net/url"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nlowe/hadiscovery/discovery"
	"github.com/nlowe/hadiscovery/hass"
	"github.com/nlowe/hadiscovery/mqtt"
)

func marshalMap(t *testing.T, e Entity) map[string]any {
	t.Helper()

	b, err := json.Marshal(e)
	require.NoError(t, err)

	var result map[string]any
	require.NoError(t, json.Unmarshal(b, &result))

	return result
}

func testDevice() hass.Device {
	return hass.Device{
		Name:         "Living Room Multisensor",
		Manufacturer: "ACME",
		Identifiers:  []string{"ms-01"},
	}
}

func testURL(t *testing.T) *url.URL {
	t.Helper()

	u, err := url.Parse("https://example.com/picture.png")
	require.NoError(t, err)

	return u
}

// samples returns a populated descriptor for every Domain.
func samples(t *testing.T) map[Domain]Entity {
	t.Helper()

	dev := testDevice()
	avty := hass.NewAvailability(hass.AvailabilityModeAll, "ms-01/status", "bridge/status")

	return map[Domain]Entity{
		DomainAlarmControlPanel: NewAlarmControlPanel().
			WithCommandTopic("alarm/set").
			WithStateTopic("alarm/state").
			WithCode("REMOTE_CODE").
			WithSupportedFeatures(hass.AlarmControlPanelFeatureArmHome, hass.AlarmControlPanelFeatureArmAway).
			WithDevice(dev),
		DomainBinarySensor: NewBinarySensor().
			WithStateTopic("ms-01/motion").
			WithDeviceClass(hass.BinarySensorDeviceClassMotion).
			WithOffDelay(30 * time.Second).
			WithAvailability(avty),
		DomainButton: NewButton().
			WithCommandTopic("ms-01/restart").
			WithDeviceClass(hass.ButtonDeviceClassRestart).
			WithEntityCategory(hass.EntityCategoryConfig),
		DomainCamera: NewCamera().
			WithTopic("cam/image").
			WithImageEncoding("b64"),
		DomainClimate: NewClimate().
			WithModes(hass.ClimateModeHeat, hass.ClimateModeOff).
			WithModeCommandTopic("hvac/mode/set").
			WithTemperatureCommandTopic("hvac/temp/set").
			WithMinTemperature(7).
			WithMaxTemperature(30.5).
			WithPrecision(0.5).
			WithTemperatureUnit(hass.TemperatureUnitCelsius),
		DomainCover: NewCover().
			WithCommandTopic("blind/set").
			WithPositionTopic("blind/position").
			WithPositionOpen(100).
			WithPositionClosed(0).
			WithDeviceClass(hass.CoverDeviceClassBlind),
		DomainDeviceTracker: NewDeviceTracker().
			WithStateTopic("phone/location").
			WithSourceType(hass.SourceTypeGPS),
		DomainDeviceTrigger: NewDeviceTrigger().
			WithAutomationType("trigger").
			WithTopic("remote/action").
			WithType(hass.DeviceTriggerTypeButtonShortPress).
			WithSubtype(hass.DeviceTriggerSubtypeButton1).
			WithPayload("single").
			WithDevice(dev),
		DomainEvent: NewEvent().
			WithStateTopic("doorbell/event").
			WithEventTypes("press", "hold").
			WithDeviceClass(hass.EventDeviceClassDoorbell),
		DomainFan: NewFan().
			WithCommandTopic("fan/set").
			WithPercentageCommandTopic("fan/speed/set").
			WithSpeedRangeMin(1).
			WithSpeedRangeMax(6).
			WithPresetModes("auto", "sleep"),
		DomainHumidifier: NewHumidifier().
			WithCommandTopic("humidifier/set").
			WithTargetHumidityCommandTopic("humidifier/target/set").
			WithDeviceClass(hass.HumidifierDeviceClassDehumidifier).
			WithMinHumidity(30),
		DomainImage: NewImage().
			WithImageTopic("image/data").
			WithContentType("image/png"),
		DomainLawnMower: NewLawnMower().
			WithActivityStateTopic("mower/activity").
			WithStartMowingCommandTopic("mower/start").
			WithDockCommandTopic("mower/dock"),
		DomainLight: NewLight().
			WithCommandTopic("light/set").
			WithStateTopic("light/state").
			WithBrightnessCommandTopic("light/brightness/set").
			WithBrightnessScale(100).
			WithSupportedColorModes(hass.ColorModeBrightness, hass.ColorModeTemperature).
			WithOnCommandType(hass.OnCommandTypeBrightness),
		DomainLock: NewLock().
			WithCommandTopic("lock/set").
			WithStateTopic("lock/state").
			WithPayloadLock("LOCK").
			WithStateJammed("JAMMED"),
		DomainNotify: NewNotify().
			WithCommandTopic("display/message"),
		DomainNumber: NewNumber().
			WithCommandTopic("volume/set").
			WithMin(0).
			WithMax(11).
			WithStep(0.5).
			WithMode(hass.NumberModeSlider).
			WithUnitOfMeasurement(hass.UnitDecibel),
		DomainScene: NewScene().
			WithCommandTopic("scene/movie").
			WithPayloadOn("ACTIVATE"),
		DomainSelect: NewSelect().
			WithCommandTopic("mode/set").
			WithOptions("eco", "comfort"),
		DomainSensor: NewSensor().
			WithStateTopic("ms-01/temperature").
			WithName("Temperature").
			WithDeviceClass(hass.SensorDeviceClassTemperature).
			WithStateClass(hass.StateClassMeasurement).
			WithUnitOfMeasurement(hass.UnitCelsius).
			WithExpireAfter(5 * time.Minute).
			WithEntityPicture(testURL(t)).
			WithQoS(mqtt.QOSAtLeastOnce).
			WithAvailability(avty).
			WithDevice(dev),
		DomainSiren: NewSiren().
			WithCommandTopic("siren/set").
			WithAvailableTones("ping", "siren").
			WithSupportDuration(true),
		DomainSwitch: NewSwitch().
			WithCommandTopic("plug/set").
			WithStateTopic("plug/state").
			WithDeviceClass(hass.SwitchDeviceClassOutlet).
			WithRetain(true),
		DomainTag: NewTag().
			WithTopic("reader/tag").
			WithValueTemplate("{{ value_json.PN532.UID }}"),
		DomainText: NewText().
			WithCommandTopic("text/set").
			WithMax(32).
			WithMode(hass.TextModePassword),
		DomainUpdate: NewUpdate().
			WithStateTopic("fw/installed").
			WithLatestVersionTopic("fw/latest").
			WithReleaseURL(testURL(t)).
			WithDeviceClass(hass.UpdateDeviceClassFirmware),
		DomainVacuum: NewVacuum().
			WithCommandTopic("vacuum/command").
			WithFanSpeedList("min", "max").
			WithSupportedFeatures(hass.VacuumFeatureStart, hass.VacuumFeatureReturnHome),
		DomainValve: NewValve().
			WithCommandTopic("valve/set").
			WithReportsPosition(true).
			WithDeviceClass(hass.ValveDeviceClassWater),
		DomainWaterHeater: NewWaterHeater().
			WithModes(hass.WaterHeaterModeEco, hass.WaterHeaterModeOff).
			WithTemperatureCommandTopic("boiler/temp/set").
			WithInitial(55),
	}
}

// requiredKeys lists the keys every default descriptor sends, besides p, o and dev.
var requiredKeys = map[Domain]map[string]any{
	DomainAlarmControlPanel: {discovery.FieldCommandTopic: "", discovery.FieldStateTopic: ""},
	DomainBinarySensor:      {discovery.FieldStateTopic: ""},
	DomainCamera:            {discovery.FieldTopic: ""},
	DomainDeviceTrigger: {
		discovery.FieldAutomationType: "",
		discovery.FieldTopic:          "",
		discovery.FieldType:           "",
		discovery.FieldSubtype:        "",
	},
	DomainEvent:      {discovery.FieldEventTypes: []any{}, discovery.FieldStateTopic: ""},
	DomainFan:        {discovery.FieldCommandTopic: ""},
	DomainHumidifier: {discovery.FieldCommandTopic: "", discovery.FieldTargetHumidityCommandTopic: ""},
	DomainImage:      {discovery.FieldImageTopic: ""},
	DomainLight:      {discovery.FieldCommandTopic: ""},
	DomainLock:       {discovery.FieldCommandTopic: ""},
	DomainNotify:     {discovery.FieldCommandTopic: ""},
	DomainNumber:     {discovery.FieldCommandTopic: ""},
	DomainSelect:     {discovery.FieldCommandTopic: "", discovery.FieldOptions: []any{}},
	DomainSensor:     {discovery.FieldStateTopic: ""},
	DomainSwitch:     {discovery.FieldCommandTopic: ""},
	DomainTag:        {discovery.FieldTopic: ""},
	DomainText:       {discovery.FieldCommandTopic: ""},
}

func TestDomains(t *testing.T) {
	domains := Domains()
	require.Len(t, domains, 28)
	assert.True(t, slices.IsSorted(domains))
	assert.Contains(t, domains, DomainDeviceTrigger)
	assert.Equal(t, "device_automation", DomainDeviceTrigger.String())
}

func TestNew(t *testing.T) {
	for _, d := range Domains() {
		t.Run(d.String(), func(t *testing.T) {
			sut, err := New(d)
			require.NoError(t, err)
			require.Equal(t, d, sut.Domain())

			expected := map[string]any{
				discovery.FieldPlatform: string(d),
				discovery.FieldOrigin:   map[string]any{discovery.FieldName: ""},
				discovery.FieldDevice:   map[string]any{},
			}

			for k, v := range requiredKeys[d] {
				expected[k] = v
			}

			assert.Equal(t, expected, marshalMap(t, sut))
		})
	}

	t.Run("Unknown", func(t *testing.T) {
		_, err := New("nope")
		require.ErrorIs(t, err, ErrUnknownDomain)
	})
}

func TestDefaults(t *testing.T) {
	assert.Equal(t, "button", NewButton().Platform)
	assert.Equal(t, "", NewImage().ImageTopic)
	assert.Nil(t, NewImage().URLTopic)
	assert.Nil(t, NewSelect().Options)
	assert.Zero(t, NewSensor().Availability)
	assert.Zero(t, NewLight().Origin)
	assert.Equal(t, "device_automation", NewDeviceTrigger().Platform)
}

func TestSensorWithNameAndStateTopic(t *testing.T) {
	sut := NewSensor().WithName("Temperature").WithStateTopic("home/livingroom/temperature")

	result := marshalMap(t, sut)

	assert.Equal(t, "home/livingroom/temperature", result["stat_t"])
	assert.Equal(t, "Temperature", result["name"])
	assert.Equal(t, "sensor", result["p"])

	for _, absent := range []string{"val_tpl", "dev_cla", "unit_of_meas", "state_topic", "availability"} {
		assert.NotContains(t, result, absent)
	}
}

func TestAliasFidelity(t *testing.T) {
	for _, tt := range []struct {
		name     string
		sut      Entity
		key      string
		expected any
	}{
		{name: "Sensor TopicPrefix", sut: NewSensor().WithTopicPrefix("ms-01"), key: "~", expected: "ms-01"},
		{name: "Sensor EntityCategory", sut: NewSensor().WithEntityCategory(hass.EntityCategoryDiagnostic), key: "ent_cat", expected: "diagnostic"},
		{name: "Sensor EnabledByDefault", sut: NewSensor().WithEnabledByDefault(false), key: "en", expected: false},
		{name: "Sensor Encoding", sut: NewSensor().WithEncoding(""), key: "e", expected: ""},
		{name: "Sensor EntityPicture", sut: NewSensor().WithEntityPicture(testURL(t)), key: "ent_pic", expected: "https://example.com/picture.png"},
		{name: "Sensor Icon", sut: NewSensor().WithIcon("mdi:thermometer"), key: "ic", expected: "mdi:thermometer"},
		{name: "Sensor JSONAttributesTemplate", sut: NewSensor().WithJSONAttributesTemplate("{{ value_json }}"), key: "json_attr_tpl", expected: "{{ value_json }}"},
		{name: "Sensor JSONAttributesTopic", sut: NewSensor().WithJSONAttributesTopic("ms-01/attrs"), key: "json_attr_t", expected: "ms-01/attrs"},
		{name: "Sensor Name", sut: NewSensor().WithName("Temperature"), key: "name", expected: "Temperature"},
		{name: "Sensor ObjectID", sut: NewSensor().WithObjectID("ms01_temp"), key: "obj_id", expected: "ms01_temp"},
		{name: "Sensor DefaultEntityID", sut: NewSensor().WithDefaultEntityID("sensor.ms01_temp"), key: "def_ent_id", expected: "sensor.ms01_temp"},
		{name: "Sensor UniqueID", sut: NewSensor().WithUniqueID("ms01_temp"), key: "uniq_id", expected: "ms01_temp"},
		{name: "Sensor QoS", sut: NewSensor().WithQoS(mqtt.QOSExactlyOnce), key: "qos", expected: float64(2)},
		{name: "Sensor ExpireAfter", sut: NewSensor().WithExpireAfter(2 * time.Minute), key: "exp_aft", expected: float64(120)},
		{name: "Sensor StateClass", sut: NewSensor().WithStateClass(hass.StateClassTotalIncreasing), key: "stat_cla", expected: "total_increasing"},
		{name: "Sensor UnitOfMeasurement", sut: NewSensor().WithUnitOfMeasurement(hass.UnitKiloWattHour), key: "unit_of_meas", expected: "kWh"},
		{name: "Sensor SuggestedDisplayPrecision", sut: NewSensor().WithSuggestedDisplayPrecision(1), key: "sug_dsp_prc", expected: float64(1)},
		{name: "Sensor Options", sut: NewSensor().WithOptions("a", "b"), key: "ops", expected: []any{"a", "b"}},
		{name: "Sensor LastResetValueTemplate", sut: NewSensor().WithLastResetValueTemplate("{{ value_json.reset }}"), key: "lrst_val_tpl", expected: "{{ value_json.reset }}"},
		{name: "Switch Retain", sut: NewSwitch().WithRetain(true), key: "ret", expected: true},
		{name: "Switch ValueTemplate", sut: NewSwitch().WithValueTemplate("{{ value_json.state }}"), key: "val_tpl", expected: "{{ value_json.state }}"},
		{name: "Switch StateOn", sut: NewSwitch().WithStateOn("1"), key: "stat_on", expected: "1"},
		{name: "BinarySensor OffDelay", sut: NewBinarySensor().WithOffDelay(45 * time.Second), key: "off_dly", expected: float64(45)},
		{name: "BinarySensor ForceUpdate", sut: NewBinarySensor().WithForceUpdate(true), key: "frc_upd", expected: true},
		{name: "Button PayloadPress", sut: NewButton().WithPayloadPress("GO"), key: "pl_prs", expected: "GO"},
		{name: "Climate MaxTemperature", sut: NewClimate().WithMaxTemperature(30.5), key: "max_temp", expected: 30.5},
		{name: "Climate TemperatureStep", sut: NewClimate().WithTemperatureStep(0.5), key: "temp_step", expected: 0.5},
		{name: "Climate SwingHorizontalModes", sut: NewClimate().WithSwingHorizontalModes("left", "right"), key: "swing_h_modes", expected: []any{"left", "right"}},
		{name: "Climate Modes", sut: NewClimate().WithModes(hass.ClimateModeAuto), key: "modes", expected: []any{"auto"}},
		{name: "Climate PresetModeValueTemplate", sut: NewClimate().WithPresetModeValueTemplate("{{ value }}"), key: "pr_mode_val_tpl", expected: "{{ value }}"},
		{name: "Cover TiltStatusTopic", sut: NewCover().WithTiltStatusTopic("blind/tilt"), key: "tilt_status_t", expected: "blind/tilt"},
		{name: "Cover PositionOpen", sut: NewCover().WithPositionOpen(255), key: "pos_open", expected: float64(255)},
		{name: "DeviceTracker SourceType", sut: NewDeviceTracker().WithSourceType(hass.SourceTypeRouter), key: "src_type", expected: "router"},
		{name: "DeviceTracker PayloadNotHome", sut: NewDeviceTracker().WithPayloadNotHome("away"), key: "pl_not_home", expected: "away"},
		{name: "DeviceTrigger Payload", sut: NewDeviceTrigger().WithPayload("single"), key: "pl", expected: "single"},
		{name: "Fan SpeedRangeMax", sut: NewFan().WithSpeedRangeMax(6), key: "spd_rng_max", expected: float64(6)},
		{name: "Fan OscillationCommandTopic", sut: NewFan().WithOscillationCommandTopic("fan/osc/set"), key: "osc_cmd_t", expected: "fan/osc/set"},
		{name: "Humidifier TargetHumidityStateTopic", sut: NewHumidifier().WithTargetHumidityStateTopic("hum/target"), key: "hum_stat_t", expected: "hum/target"},
		{name: "Image URLTopic", sut: NewImage().WithURLTopic("image/url"), key: "url_t", expected: "image/url"},
		{name: "LawnMower PauseCommandTopic", sut: NewLawnMower().WithPauseCommandTopic("mower/pause"), key: "pause_command_topic", expected: "mower/pause"},
		{name: "Light RGBWWCommandTopic", sut: NewLight().WithRGBWWCommandTopic("light/rgbww/set"), key: "rgbww_cmd_t", expected: "light/rgbww/set"},
		{name: "Light RGBWCommandTopic", sut: NewLight().WithRGBWCommandTopic("light/rgbw/set"), key: "rgbw_cmd_t", expected: "light/rgbw/set"},
		{name: "Light Schema", sut: NewLight().WithSchema(hass.LightSchemaJSON), key: "schema", expected: "json"},
		{name: "Light ColorTemperatureInKelvin", sut: NewLight().WithColorTemperatureInKelvin(true), key: "clr_temp_k", expected: true},
		{name: "Light FlashTimeShort", sut: NewLight().WithFlashTimeShort(2), key: "flsh_tlsh", expected: float64(2)},
		{name: "Light CommandOnTemplate", sut: NewLight().WithCommandOnTemplate("on"), key: "cmd_on_tpl", expected: "on"},
		{name: "Lock CodeFormat", sut: NewLock().WithCodeFormat(`^\d{4}$`), key: "code_format", expected: `^\d{4}$`},
		{name: "Lock PayloadUnlock", sut: NewLock().WithPayloadUnlock("UNLOCK"), key: "pl_unlk", expected: "UNLOCK"},
		{name: "Number Mode", sut: NewNumber().WithMode(hass.NumberModeBox), key: "mode", expected: "box"},
		{name: "Scene PayloadOn", sut: NewScene().WithPayloadOn("GO"), key: "pl_on", expected: "GO"},
		{name: "Siren SupportVolumeSet", sut: NewSiren().WithSupportVolumeSet(true), key: "sup_vol", expected: true},
		{name: "Text Pattern", sut: NewText().WithPattern("[a-z]+"), key: "ptrn", expected: "[a-z]+"},
		{name: "Update ReleaseSummary", sut: NewUpdate().WithReleaseSummary("fixes"), key: "rel_s", expected: "fixes"},
		{name: "Vacuum SetFanSpeedTopic", sut: NewVacuum().WithSetFanSpeedTopic("vacuum/fan"), key: "set_fan_spd_t", expected: "vacuum/fan"},
		{name: "Valve ReportsPosition", sut: NewValve().WithReportsPosition(true), key: "pos", expected: true},
		{name: "WaterHeater PowerCommandTopic", sut: NewWaterHeater().WithPowerCommandTopic("boiler/power"), key: "pow_cmd_t", expected: "boiler/power"},
		{name: "AlarmControlPanel PayloadArmNight", sut: NewAlarmControlPanel().WithPayloadArmNight("NIGHT"), key: "pl_arm_nite", expected: "NIGHT"},
		{name: "Event EventTypes", sut: NewEvent().WithEventTypes("press"), key: "evt_typ", expected: []any{"press"}},
		{name: "Camera ImageEncoding", sut: NewCamera().WithImageEncoding("b64"), key: "img_e", expected: "b64"},
		{name: "Tag ValueTemplate", sut: NewTag().WithValueTemplate("{{ value }}"), key: "val_tpl", expected: "{{ value }}"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			baseline, err := New(tt.sut.Domain())
			require.NoError(t, err)

			expected := marshalMap(t, baseline)
			expected[tt.key] = tt.expected

			assert.Equal(t, expected, marshalMap(t, tt.sut))
		})
	}
}

func TestExplicitNullDeviceClass(t *testing.T) {
	for _, tt := range []struct {
		name string
		sut  Entity
	}{
		{name: "BinarySensor", sut: NewBinarySensor().WithDeviceClass(hass.BinarySensorDeviceClassNone)},
		{name: "Button", sut: NewButton().WithDeviceClass(hass.ButtonDeviceClassNone)},
		{name: "Cover", sut: NewCover().WithDeviceClass(hass.CoverDeviceClassNone)},
		{name: "Event", sut: NewEvent().WithDeviceClass(hass.EventDeviceClassNone)},
		{name: "Humidifier", sut: NewHumidifier().WithDeviceClass(hass.HumidifierDeviceClassNone)},
		{name: "Number", sut: NewNumber().WithDeviceClass(hass.NumberDeviceClassNone)},
		{name: "Sensor", sut: NewSensor().WithDeviceClass(hass.SensorDeviceClassNone)},
		{name: "Switch", sut: NewSwitch().WithDeviceClass(hass.SwitchDeviceClassNone)},
		{name: "Update", sut: NewUpdate().WithDeviceClass(hass.UpdateDeviceClassNone)},
		{name: "Valve", sut: NewValve().WithDeviceClass(hass.ValveDeviceClassNone)},
	} {
		t.Run(tt.name, func(t *testing.T) {
			result := marshalMap(t, tt.sut)
			require.Contains(t, result, "dev_cla")
			assert.Nil(t, result["dev_cla"])

			unset, err := New(tt.sut.Domain())
			require.NoError(t, err)
			assert.NotContains(t, marshalMap(t, unset), "dev_cla")
		})
	}

	t.Run("Decode", func(t *testing.T) {
		sut, err := Decode(DomainSensor, []byte(`{"stat_t":"foo","dev_cla":null}`))
		require.NoError(t, err)

		s := sut.(Sensor)
		require.NotNil(t, s.DeviceClass)
		assert.Equal(t, hass.SensorDeviceClassNone, *s.DeviceClass)
	})
}

func TestAvailabilityFlattening(t *testing.T) {
	sut := NewSensor().
		WithStateTopic("ms-01/temperature").
		WithAvailability(hass.Availability{
			Mode: hass.AvailabilityModeAny,
			Topics: []hass.AvailabilityTopic{
				{Topic: "ms-01/status"},
				{Topic: "bridge/state", PayloadAvailable: "up", ValueTemplate: "{{ value_json.state }}"},
			},
		})

	result := marshalMap(t, sut)

	assert.Equal(t, "any", result["avty_mode"])
	assert.Equal(t, []any{
		map[string]any{"t": "ms-01/status"},
		map[string]any{"t": "bridge/state", "pl_avail": "up", "val_tpl": "{{ value_json.state }}"},
	}, result["avty"])
	assert.NotContains(t, result, "availability")

	t.Run("Single Topic", func(t *testing.T) {
		result := marshalMap(t, NewSwitch().WithAvailability(hass.Availability{
			Topic:               "plug/status",
			Template:            "{{ value_json.online }}",
			PayloadAvailable:    "yes",
			PayloadNotAvailable: "no",
		}))

		assert.Equal(t, "plug/status", result["avty_t"])
		assert.Equal(t, "{{ value_json.online }}", result["avty_tpl"])
		assert.Equal(t, "yes", result["pl_avail"])
		assert.Equal(t, "no", result["pl_not_avail"])
		assert.NotContains(t, result, "avty")
		assert.NotContains(t, result, "avty_mode")
	})
}

func TestSetterCommutativity(t *testing.T) {
	a := NewLight().
		WithCommandTopic("light/set").
		WithName("Desk").
		WithBrightnessScale(100).
		WithUniqueID("desk_light").
		WithSupportedColorModes(hass.ColorModeBrightness)

	b := NewLight().
		WithSupportedColorModes(hass.ColorModeBrightness).
		WithUniqueID("desk_light").
		WithBrightnessScale(100).
		WithName("Desk").
		WithCommandTopic("light/set")

	assert.Equal(t, a, b)

	ja, err := json.Marshal(a)
	require.NoError(t, err)
	jb, err := json.Marshal(b)
	require.NoError(t, err)

	assert.Equal(t, string(ja), string(jb))
}

func TestSettersReturnCopies(t *testing.T) {
	base := NewSensor().WithStateTopic("foo")
	derived := base.WithName("bar")

	assert.Nil(t, base.Name)
	require.NotNil(t, derived.Name)
	assert.Equal(t, "bar", *derived.Name)
}

func TestSumTypeRoundTrip(t *testing.T) {
	for d, sample := range samples(t) {
		t.Run(d.String(), func(t *testing.T) {
			var e Entity = sample
			assert.Equal(t, d, e.Domain())
			assert.Equal(t, sample, e)
		})
	}

	t.Run("Type Switch", func(t *testing.T) {
		original := NewSensor().WithStateTopic("foo").WithName("bar")

		var e Entity = original
		switch v := e.(type) {
		case Sensor:
			assert.Equal(t, original, v)
		default:
			require.Failf(t, "wrong variant", "got %T", v)
		}

		_, ok := e.(BinarySensor)
		assert.False(t, ok)
	})
}

func TestDecodeRoundTrip(t *testing.T) {
	s := samples(t)
	require.Len(t, s, len(Domains()))

	for d, sample := range s {
		t.Run(d.String(), func(t *testing.T) {
			b, err := json.Marshal(sample)
			require.NoError(t, err)

			decoded, err := Decode(d, b)
			require.NoError(t, err)

			assert.Equal(t, sample, decoded)
		})
	}
}

func TestDecode(t *testing.T) {
	t.Run("Full Names", func(t *testing.T) {
		abbreviated, err := Decode(DomainSwitch, []byte(`{
			"cmd_t": "plug/set",
			"stat_t": "plug/state",
			"pl_on": "1",
			"dev": {"ids": ["plug-01"], "mf": "ACME"},
			"avty_t": "plug/status"
		}`))
		require.NoError(t, err)

		full, err := Decode(DomainSwitch, []byte(`{
			"command_topic": "plug/set",
			"state_topic": "plug/state",
			"payload_on": "1",
			"device": {"identifiers": ["plug-01"], "manufacturer": "ACME"},
			"availability_topic": "plug/status"
		}`))
		require.NoError(t, err)

		assert.Equal(t, abbreviated, full)

		sw := full.(Switch)
		assert.Equal(t, "plug/set", sw.CommandTopic)
		assert.Equal(t, []string{"plug-01"}, sw.Device.Identifiers)
		assert.Equal(t, "plug/status", sw.Availability.Topic)
		assert.Equal(t, "switch", sw.Platform)
	})

	t.Run("Unknown Keys", func(t *testing.T) {
		sut, err := Decode(DomainButton, []byte(`{"cmd_t":"foo","whatever":[1,2,3]}`))
		require.NoError(t, err)
		require.NotNil(t, sut.(Button).CommandTopic)
		assert.Equal(t, "foo", *sut.(Button).CommandTopic)
	})

	t.Run("Not An Object", func(t *testing.T) {
		_, err := Decode(DomainButton, []byte(`["cmd_t"]`))
		require.ErrorIs(t, err, discovery.ErrExpectedObject)
	})

	t.Run("Unknown Domain", func(t *testing.T) {
		_, err := Decode("nope", []byte(`{}`))
		require.ErrorIs(t, err, ErrUnknownDomain)
	})
}

func TestDecodeYAML(t *testing.T) {
	sut, err := DecodeYAML(DomainSensor, []byte(`
name: Outside Temperature
state_topic: weather/outside/temperature
unit_of_measurement: "°C"
device_class: temperature
expire_after: 600
availability:
  - topic: weather/status
device:
  identifiers:
    - weather-station
`))
	require.NoError(t, err)

	expected := NewSensor().
		WithName("Outside Temperature").
		WithStateTopic("weather/outside/temperature").
		WithUnitOfMeasurement(hass.UnitCelsius).
		WithDeviceClass(hass.SensorDeviceClassTemperature).
		WithExpireAfter(10 * time.Minute).
		WithAvailability(hass.NewAvailability("", "weather/status")).
		WithDevice(hass.Device{Identifiers: []string{"weather-station"}})

	assert.Equal(t, expected, sut)

	t.Run("Invalid", func(t *testing.T) {
		_, err := DecodeYAML(DomainSensor, []byte("name: [unterminated"))
		require.Error(t, err)
	})

	t.Run("Unknown Domain", func(t *testing.T) {
		_, err := DecodeYAML("nope", []byte("name: foo"))
		require.ErrorIs(t, err, ErrUnknownDomain)
	})
}

func TestFieldKeysAreUnique(t *testing.T) {
	for _, tt := range []struct {
		domain Domain
		sut    interface{ fields() discovery.Fields }
	}{
		{domain: DomainAlarmControlPanel, sut: &AlarmControlPanel{}},
		{domain: DomainBinarySensor, sut: &BinarySensor{}},
		{domain: DomainButton, sut: &Button{}},
		{domain: DomainCamera, sut: &Camera{}},
		{domain: DomainClimate, sut: &Climate{}},
		{domain: DomainCover, sut: &Cover{}},
		{domain: DomainDeviceTracker, sut: &DeviceTracker{}},
		{domain: DomainDeviceTrigger, sut: &DeviceTrigger{}},
		{domain: DomainEvent, sut: &Event{}},
		{domain: DomainFan, sut: &Fan{}},
		{domain: DomainHumidifier, sut: &Humidifier{}},
		{domain: DomainImage, sut: &Image{}},
		{domain: DomainLawnMower, sut: &LawnMower{}},
		{domain: DomainLight, sut: &Light{}},
		{domain: DomainLock, sut: &Lock{}},
		{domain: DomainNotify, sut: &Notify{}},
		{domain: DomainNumber, sut: &Number{}},
		{domain: DomainScene, sut: &Scene{}},
		{domain: DomainSelect, sut: &Select{}},
		{domain: DomainSensor, sut: &Sensor{}},
		{domain: DomainSiren, sut: &Siren{}},
		{domain: DomainSwitch, sut: &Switch{}},
		{domain: DomainTag, sut: &Tag{}},
		{domain: DomainText, sut: &Text{}},
		{domain: DomainUpdate, sut: &Update{}},
		{domain: DomainVacuum, sut: &Vacuum{}},
		{domain: DomainValve, sut: &Valve{}},
		{domain: DomainWaterHeater, sut: &WaterHeater{}},
	} {
		t.Run(tt.domain.String(), func(t *testing.T) {
			seen := map[string]struct{}{}
			for _, f := range tt.sut.fields() {
				_, dup := seen[f.Key()]
				assert.False(t, dup, "duplicate key %s", f.Key())
				seen[f.Key()] = struct{}{}
			}

			assert.Contains(t, seen, discovery.FieldPlatform)
			assert.Contains(t, seen, discovery.FieldOrigin)
			assert.Contains(t, seen, discovery.FieldDevice)
		})
	}
}
