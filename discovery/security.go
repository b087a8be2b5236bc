package discovery

// Constants for the alarm_control_panel and lock platforms
const (
	FieldCode                = "code"
	FieldCodeArmRequired     = "cod_arm_req"
	FieldCodeDisarmRequired  = "cod_dis_req"
	FieldCodeTriggerRequired = "cod_trig_req"
	FieldCodeFormat          = "code_format"

	FieldPayloadArmAway         = "pl_arm_away"
	FieldPayloadArmCustomBypass = "pl_arm_custom_b"
	FieldPayloadArmHome         = "pl_arm_home"
	FieldPayloadArmNight        = "pl_arm_nite"
	FieldPayloadArmVacation     = "pl_arm_vacation"
	FieldPayloadDisarm          = "pl_disarm"
	FieldPayloadTrigger         = "pl_trig"

	FieldPayloadLock   = "pl_lock"
	FieldPayloadUnlock = "pl_unlk"

	FieldStateJammed    = "stat_jam"
	FieldStateLocked    = "stat_locked"
	FieldStateLocking   = "stat_locking"
	FieldStateUnlocked  = "stat_unlocked"
	FieldStateUnlocking = "stat_unlocking"
)
