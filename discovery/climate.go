package discovery

// Constants for the climate, humidifier and water_heater platforms
const (
	FieldActionTemplate = "act_tpl"
	FieldActionTopic    = "act_t"

	FieldCurrentHumidityTemplate    = "curr_hum_tpl"
	FieldCurrentHumidityTopic       = "curr_hum_t"
	FieldCurrentTemperatureTemplate = "curr_temp_tpl"
	FieldCurrentTemperatureTopic    = "curr_temp_t"

	FieldFanModeCommandTemplate = "fan_mode_cmd_tpl"
	FieldFanModeCommandTopic    = "fan_mode_cmd_t"
	FieldFanModeStateTemplate   = "fan_mode_stat_tpl"
	FieldFanModeStateTopic      = "fan_mode_stat_t"
	FieldFanModes               = "fan_modes"

	FieldInitial        = "init"
	FieldMaxHumidity    = "max_hum"
	FieldMinHumidity    = "min_hum"
	FieldMaxTemperature = "max_temp"
	FieldMinTemperature = "min_temp"
	FieldPrecision      = "precision"

	FieldModeCommandTemplate = "mode_cmd_tpl"
	FieldModeCommandTopic    = "mode_cmd_t"
	FieldModeStateTemplate   = "mode_stat_tpl"
	FieldModeStateTopic      = "mode_stat_t"

	FieldPowerCommandTemplate = "pow_cmd_tpl"
	FieldPowerCommandTopic    = "pow_cmd_t"

	FieldPresetModeCommandTemplate = "pr_mode_cmd_tpl"
	FieldPresetModeCommandTopic    = "pr_mode_cmd_t"
	FieldPresetModeStateTopic      = "pr_mode_stat_t"
	FieldPresetModeValueTemplate   = "pr_mode_val_tpl"
	FieldPresetModes               = "pr_modes"

	FieldSwingHorizontalModeCommandTemplate = "swing_h_mode_cmd_tpl"
	FieldSwingHorizontalModeCommandTopic    = "swing_h_mode_cmd_t"
	FieldSwingHorizontalModeStateTemplate   = "swing_h_mode_stat_tpl"
	FieldSwingHorizontalModeStateTopic      = "swing_h_mode_stat_t"
	FieldSwingHorizontalModes               = "swing_h_modes"

	FieldSwingModeCommandTemplate = "swing_mode_cmd_tpl"
	FieldSwingModeCommandTopic    = "swing_mode_cmd_t"
	FieldSwingModeStateTemplate   = "swing_mode_stat_tpl"
	FieldSwingModeStateTopic      = "swing_mode_stat_t"
	FieldSwingModes               = "swing_modes"

	FieldTargetHumidityCommandTemplate = "hum_cmd_tpl"
	FieldTargetHumidityCommandTopic    = "hum_cmd_t"
	FieldTargetHumidityStateTemplate   = "hum_stat_tpl"
	FieldTargetHumidityStateTopic      = "hum_stat_t"

	FieldTemperatureCommandTemplate     = "temp_cmd_tpl"
	FieldTemperatureCommandTopic        = "temp_cmd_t"
	FieldTemperatureHighCommandTemplate = "temp_hi_cmd_tpl"
	FieldTemperatureHighCommandTopic    = "temp_hi_cmd_t"
	FieldTemperatureHighStateTemplate   = "temp_hi_stat_tpl"
	FieldTemperatureHighStateTopic      = "temp_hi_stat_t"
	FieldTemperatureLowCommandTemplate  = "temp_lo_cmd_tpl"
	FieldTemperatureLowCommandTopic     = "temp_lo_cmd_t"
	FieldTemperatureLowStateTemplate    = "temp_lo_stat_tpl"
	FieldTemperatureLowStateTopic       = "temp_lo_stat_t"
	FieldTemperatureStateTemplate       = "temp_stat_tpl"
	FieldTemperatureStateTopic          = "temp_stat_t"
	FieldTemperatureUnit                = "temp_unit"
	FieldTemperatureStep                = "temp_step"

	FieldPayloadResetHumidity = "pl_rst_hum"
	FieldPayloadResetMode     = "pl_rst_mode"
)
