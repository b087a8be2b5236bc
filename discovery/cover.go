package discovery

// Constants for the cover and valve platforms
const (
	FieldPayloadClose    = "pl_cls"
	FieldPayloadOpen     = "pl_open"
	FieldPayloadStop     = "pl_stop"
	FieldPayloadStopTilt = "pl_stop_tilt"

	FieldPositionClosed      = "pos_clsd"
	FieldPositionOpen        = "pos_open"
	FieldPositionTemplate    = "pos_tpl"
	FieldPositionTopic       = "pos_t"
	FieldSetPositionTemplate = "set_pos_tpl"
	FieldSetPositionTopic    = "set_pos_t"
	FieldReportsPosition     = "pos"

	FieldStateClosed  = "stat_clsd"
	FieldStateClosing = "stat_closing"
	FieldStateOpen    = "stat_open"
	FieldStateOpening = "stat_opening"
	FieldStateStopped = "stat_stopped"

	FieldTiltClosedValue     = "tilt_clsd_val"
	FieldTiltCommandTemplate = "tilt_cmd_tpl"
	FieldTiltCommandTopic    = "tilt_cmd_t"
	FieldTiltMax             = "tilt_max"
	FieldTiltMin             = "tilt_min"
	FieldTiltOpenedValue     = "tilt_opnd_val"
	FieldTiltOptimistic      = "tilt_opt"
	FieldTiltStatusTemplate  = "tilt_status_tpl"
	FieldTiltStatusTopic     = "tilt_status_t"
)
