package discovery

// Constants for the fan platform
const (
	FieldDirectionCommandTemplate = "dir_cmd_tpl"
	FieldDirectionCommandTopic    = "dir_cmd_t"
	FieldDirectionStateTopic      = "dir_stat_t"
	FieldDirectionValueTemplate   = "dir_val_tpl"

	FieldOscillationCommandTemplate = "osc_cmd_tpl"
	FieldOscillationCommandTopic    = "osc_cmd_t"
	FieldOscillationStateTopic      = "osc_stat_t"
	FieldOscillationValueTemplate   = "osc_val_tpl"
	FieldPayloadOscillationOff      = "pl_osc_off"
	FieldPayloadOscillationOn       = "pl_osc_on"

	FieldPercentageCommandTemplate = "pct_cmd_tpl"
	FieldPercentageCommandTopic    = "pct_cmd_t"
	FieldPercentageStateTopic      = "pct_stat_t"
	FieldPercentageValueTemplate   = "pct_val_tpl"
	FieldPayloadResetPercentage    = "pl_rst_pct"
	FieldPayloadResetPresetMode    = "pl_rst_pr_mode"

	FieldSpeedRangeMax = "spd_rng_max"
	FieldSpeedRangeMin = "spd_rng_min"
)
