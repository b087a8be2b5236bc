package discovery

// Constants for component (entity) discovery fields shared by most platforms.
const (
	FieldTopicPrefix            = "~"
	FieldName                   = "name"
	FieldObjectID               = "obj_id"
	FieldEnabledByDefault       = "en"
	FieldEncoding               = "e"
	FieldEntityPicture          = "ent_pic"
	FieldJSONAttributesTemplate = "json_attr_tpl"
	FieldJSONAttributesTopic    = "json_attr_t"
	FieldDeviceClass            = "dev_cla"

	FieldTopic              = "t"
	FieldValueTemplate      = "val_tpl"
	FieldStateValueTemplate = "stat_val_tpl"
	FieldCommandTemplate    = "cmd_tpl"

	FieldOptions           = "ops"
	FieldPayloadReset      = "pl_rst"
	FieldSupportedFeatures = "sup_feat"

	FieldMode  = "mode"
	FieldModes = "modes"
	FieldMax   = "max"
	FieldMin   = "min"
	FieldStep  = "step"
)

// Constants for availability fields. Home Assistant reads these from the top level of the entity payload.
const (
	FieldAvailability         = "avty"
	FieldAvailabilityMode     = "avty_mode"
	FieldAvailabilityTopic    = "avty_t"
	FieldAvailabilityTemplate = "avty_tpl"
	FieldPayloadAvailable     = "pl_avail"
	FieldPayloadNotAvailable  = "pl_not_avail"
)
