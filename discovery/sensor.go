package discovery

// Generic Sensor Constants
const (
	FieldExpireAfter               = "exp_aft"
	FieldForceUpdate               = "frc_upd"
	FieldLastResetValueTemplate    = "lrst_val_tpl"
	FieldSuggestedDisplayPrecision = "sug_dsp_prc"
	FieldStateClass                = "stat_cla"
	FieldUnitOfMeasurement         = "unit_of_meas"

	FieldOffDelay = "off_dly"

	FieldEventTypes = "evt_typ"
)
