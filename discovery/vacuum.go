package discovery

// Constants for the vacuum platform
const (
	FieldFanSpeedList        = "fanspd_lst"
	FieldPayloadCleanSpot    = "pl_cln_sp"
	FieldPayloadLocate       = "pl_loc"
	FieldPayloadPause        = "pl_paus"
	FieldPayloadReturnToBase = "pl_ret"
	FieldPayloadStart        = "pl_strt"
	FieldSendCommandTopic    = "send_cmd_t"
	FieldSetFanSpeedTopic    = "set_fan_spd_t"
)

// Constants for the lawn_mower platform. Home Assistant has no abbreviations for these.
const (
	FieldActivityStateTopic         = "activity_state_topic"
	FieldActivityValueTemplate      = "activity_value_template"
	FieldDockCommandTemplate        = "dock_command_template"
	FieldDockCommandTopic           = "dock_command_topic"
	FieldPauseCommandTemplate       = "pause_command_template"
	FieldPauseCommandTopic          = "pause_command_topic"
	FieldStartMowingCommandTemplate = "start_mowing_command_template"
	FieldStartMowingCommandTopic    = "start_mowing_command_topic"
)
