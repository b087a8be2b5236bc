package discovery

// Constants for the light platform
const (
	FieldColorModeStateTopic    = "clrm_stat_t"
	FieldColorModeValueTemplate = "clrm_val_tpl"
	FieldSupportedColorModes    = "sup_clrm"

	FieldBrightnessCommandTemplate = "bri_cmd_tpl"
	FieldBrightnessCommandTopic    = "bri_cmd_t"
	FieldBrightnessStateTopic      = "bri_stat_t"
	FieldBrightnessValueTemplate   = "bri_val_tpl"
	FieldBrightnessScale           = "bri_scl"

	FieldColorTemperatureCommandTemplate = "clr_temp_cmd_tpl"
	FieldColorTemperatureCommandTopic    = "clr_temp_cmd_t"
	FieldColorTemperatureStateTopic      = "clr_temp_stat_t"
	FieldColorTemperatureValueTemplate   = "clr_temp_val_tpl"
	FieldColorTemperatureInKelvin        = "clr_temp_k"
	FieldMinKelvin                       = "min_k"
	FieldMaxKelvin                       = "max_k"
	FieldMinMireds                       = "min_mirs"
	FieldMaxMireds                       = "max_mirs"

	FieldHueSatCommandTemplate = "hs_cmd_tpl"
	FieldHueSatCommandTopic    = "hs_cmd_t"
	FieldHueSatStateTopic      = "hs_stat_t"
	FieldHueSatValueTemplate   = "hs_val_tpl"

	FieldXYCommandTemplate = "xy_cmd_tpl"
	FieldXYCommandTopic    = "xy_cmd_t"
	FieldXYStateTopic      = "xy_stat_t"
	FieldXYValueTemplate   = "xy_val_tpl"

	FieldRGBCommandTemplate   = "rgb_cmd_tpl"
	FieldRGBCommandTopic      = "rgb_cmd_t"
	FieldRGBStateTopic        = "rgb_stat_t"
	FieldRGBValueTemplate     = "rgb_val_tpl"
	FieldRGBWCommandTemplate  = "rgbw_cmd_tpl"
	FieldRGBWCommandTopic     = "rgbw_cmd_t"
	FieldRGBWStateTopic       = "rgbw_stat_t"
	FieldRGBWValueTemplate    = "rgbw_val_tpl"
	FieldRGBWWCommandTemplate = "rgbww_cmd_tpl"
	FieldRGBWWCommandTopic    = "rgbww_cmd_t"
	FieldRGBWWStateTopic      = "rgbww_stat_t"
	FieldRGBWWValueTemplate   = "rgbww_val_tpl"

	FieldWhiteCommandTopic = "whit_cmd_t"
	FieldWhiteScale        = "whit_scl"

	FieldEffectCommandTemplate = "fx_cmd_tpl"
	FieldEffectCommandTopic    = "fx_cmd_t"
	FieldEffectStateTopic      = "fx_stat_t"
	FieldEffectValueTemplate   = "fx_val_tpl"
	FieldEffectList            = "fx_list"

	FieldOnCommandType  = "on_cmd_type"
	FieldSchema         = "schema"
	FieldFlashTimeLong  = "flsh_tlng"
	FieldFlashTimeShort = "flsh_tlsh"
)

// Constants for lights using the json schema. These flags enable features of the JSON command payload.
const (
	FieldBrightness = "brightness"
	FieldEffect     = "effect"
	FieldFlash      = "flash"
	FieldTransition = "transition"
)

// Constants for lights using the template schema.
const (
	FieldCommandOnTemplate        = "cmd_on_tpl"
	FieldStateTemplate            = "stat_tpl"
	FieldBrightnessTemplate       = "bri_tpl"
	FieldRedTemplate              = "r_tpl"
	FieldGreenTemplate            = "g_tpl"
	FieldBlueTemplate             = "b_tpl"
	FieldColorTemperatureTemplate = "clr_temp_tpl"
	FieldEffectTemplate           = "fx_tpl"
)
