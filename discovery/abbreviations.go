package discovery

// abbreviations maps the long form of every discovery key to the abbreviation used by the Field constants in this
// package. Keys whose long and short form are identical (e.g. "name", "qos", "max") are not listed.
var abbreviations = map[string]string{
	"action_template":                        FieldActionTemplate,
	"action_topic":                           FieldActionTopic,
	"automation_type":                        FieldAutomationType,
	"availability":                           FieldAvailability,
	"availability_mode":                      FieldAvailabilityMode,
	"availability_template":                  FieldAvailabilityTemplate,
	"availability_topic":                     FieldAvailabilityTopic,
	"available_tones":                        FieldAvailableTones,
	"blue_template":                          FieldBlueTemplate,
	"brightness_command_template":            FieldBrightnessCommandTemplate,
	"brightness_command_topic":               FieldBrightnessCommandTopic,
	"brightness_scale":                       FieldBrightnessScale,
	"brightness_state_topic":                 FieldBrightnessStateTopic,
	"brightness_template":                    FieldBrightnessTemplate,
	"brightness_value_template":              FieldBrightnessValueTemplate,
	"code_arm_required":                      FieldCodeArmRequired,
	"code_disarm_required":                   FieldCodeDisarmRequired,
	"code_trigger_required":                  FieldCodeTriggerRequired,
	"color_mode_state_topic":                 FieldColorModeStateTopic,
	"color_mode_value_template":              FieldColorModeValueTemplate,
	"color_temp_command_template":            FieldColorTemperatureCommandTemplate,
	"color_temp_command_topic":               FieldColorTemperatureCommandTopic,
	"color_temp_kelvin":                      FieldColorTemperatureInKelvin,
	"color_temp_state_topic":                 FieldColorTemperatureStateTopic,
	"color_temp_template":                    FieldColorTemperatureTemplate,
	"color_temp_value_template":              FieldColorTemperatureValueTemplate,
	"command_off_template":                   FieldCommandOffTemplate,
	"command_on_template":                    FieldCommandOnTemplate,
	"command_template":                       FieldCommandTemplate,
	"command_topic":                          FieldCommandTopic,
	"components":                             FieldComponents,
	"configuration_url":                      FieldDeviceConfigurationURL,
	"connections":                            FieldDeviceConnections,
	"current_humidity_template":              FieldCurrentHumidityTemplate,
	"current_humidity_topic":                 FieldCurrentHumidityTopic,
	"current_temperature_template":           FieldCurrentTemperatureTemplate,
	"current_temperature_topic":              FieldCurrentTemperatureTopic,
	"default_entity_id":                      FieldDefaultEntityID,
	"device":                                 FieldDevice,
	"device_class":                           FieldDeviceClass,
	"direction_command_template":             FieldDirectionCommandTemplate,
	"direction_command_topic":                FieldDirectionCommandTopic,
	"direction_state_topic":                  FieldDirectionStateTopic,
	"direction_value_template":               FieldDirectionValueTemplate,
	"display_precision":                      FieldDisplayPrecision,
	"effect_command_template":                FieldEffectCommandTemplate,
	"effect_command_topic":                   FieldEffectCommandTopic,
	"effect_list":                            FieldEffectList,
	"effect_state_topic":                     FieldEffectStateTopic,
	"effect_template":                        FieldEffectTemplate,
	"effect_value_template":                  FieldEffectValueTemplate,
	"enabled_by_default":                     FieldEnabledByDefault,
	"encoding":                               FieldEncoding,
	"entity_category":                        FieldEntityCategory,
	"entity_picture":                         FieldEntityPicture,
	"event_types":                            FieldEventTypes,
	"expire_after":                           FieldExpireAfter,
	"fan_mode_command_template":              FieldFanModeCommandTemplate,
	"fan_mode_command_topic":                 FieldFanModeCommandTopic,
	"fan_mode_state_template":                FieldFanModeStateTemplate,
	"fan_mode_state_topic":                   FieldFanModeStateTopic,
	"fan_speed_list":                         FieldFanSpeedList,
	"flash_time_long":                        FieldFlashTimeLong,
	"flash_time_short":                       FieldFlashTimeShort,
	"force_update":                           FieldForceUpdate,
	"green_template":                         FieldGreenTemplate,
	"hs_command_template":                    FieldHueSatCommandTemplate,
	"hs_command_topic":                       FieldHueSatCommandTopic,
	"hs_state_topic":                         FieldHueSatStateTopic,
	"hs_value_template":                      FieldHueSatValueTemplate,
	"hw_version":                             FieldDeviceHardwareVersion,
	"icon":                                   FieldIcon,
	"identifiers":                            FieldDeviceIdentifiers,
	"image_encoding":                         FieldImageEncoding,
	"image_topic":                            FieldImageTopic,
	"initial":                                FieldInitial,
	"json_attributes_template":               FieldJSONAttributesTemplate,
	"json_attributes_topic":                  FieldJSONAttributesTopic,
	"last_reset_value_template":              FieldLastResetValueTemplate,
	"latest_version_template":                FieldLatestVersionTemplate,
	"latest_version_topic":                   FieldLatestVersionTopic,
	"manufacturer":                           FieldDeviceManufacturer,
	"max_humidity":                           FieldMaxHumidity,
	"max_kelvin":                             FieldMaxKelvin,
	"max_mireds":                             FieldMaxMireds,
	"min_humidity":                           FieldMinHumidity,
	"min_kelvin":                             FieldMinKelvin,
	"min_mireds":                             FieldMinMireds,
	"mode_command_template":                  FieldModeCommandTemplate,
	"mode_command_topic":                     FieldModeCommandTopic,
	"mode_state_template":                    FieldModeStateTemplate,
	"mode_state_topic":                       FieldModeStateTopic,
	"model":                                  FieldDeviceModel,
	"model_id":                               FieldDeviceModelID,
	"object_id":                              FieldObjectID,
	"off_delay":                              FieldOffDelay,
	"on_command_type":                        FieldOnCommandType,
	"optimistic":                             FieldOptimistic,
	"options":                                FieldOptions,
	"origin":                                 FieldOrigin,
	"oscillation_command_template":           FieldOscillationCommandTemplate,
	"oscillation_command_topic":              FieldOscillationCommandTopic,
	"oscillation_state_topic":                FieldOscillationStateTopic,
	"oscillation_value_template":             FieldOscillationValueTemplate,
	"pattern":                                FieldPattern,
	"payload":                                FieldPayload,
	"payload_arm_away":                       FieldPayloadArmAway,
	"payload_arm_custom_bypass":              FieldPayloadArmCustomBypass,
	"payload_arm_home":                       FieldPayloadArmHome,
	"payload_arm_night":                      FieldPayloadArmNight,
	"payload_arm_vacation":                   FieldPayloadArmVacation,
	"payload_available":                      FieldPayloadAvailable,
	"payload_clean_spot":                     FieldPayloadCleanSpot,
	"payload_close":                          FieldPayloadClose,
	"payload_disarm":                         FieldPayloadDisarm,
	"payload_home":                           FieldPayloadHome,
	"payload_install":                        FieldPayloadInstall,
	"payload_locate":                         FieldPayloadLocate,
	"payload_lock":                           FieldPayloadLock,
	"payload_not_available":                  FieldPayloadNotAvailable,
	"payload_not_home":                       FieldPayloadNotHome,
	"payload_off":                            FieldPayloadOff,
	"payload_on":                             FieldPayloadOn,
	"payload_open":                           FieldPayloadOpen,
	"payload_oscillation_off":                FieldPayloadOscillationOff,
	"payload_oscillation_on":                 FieldPayloadOscillationOn,
	"payload_pause":                          FieldPayloadPause,
	"payload_press":                          FieldPayloadPress,
	"payload_reset":                          FieldPayloadReset,
	"payload_reset_humidity":                 FieldPayloadResetHumidity,
	"payload_reset_mode":                     FieldPayloadResetMode,
	"payload_reset_percentage":               FieldPayloadResetPercentage,
	"payload_reset_preset_mode":              FieldPayloadResetPresetMode,
	"payload_return_to_base":                 FieldPayloadReturnToBase,
	"payload_start":                          FieldPayloadStart,
	"payload_stop":                           FieldPayloadStop,
	"payload_stop_tilt":                      FieldPayloadStopTilt,
	"payload_trigger":                        FieldPayloadTrigger,
	"payload_unlock":                         FieldPayloadUnlock,
	"percentage_command_template":            FieldPercentageCommandTemplate,
	"percentage_command_topic":               FieldPercentageCommandTopic,
	"percentage_state_topic":                 FieldPercentageStateTopic,
	"percentage_value_template":              FieldPercentageValueTemplate,
	"platform":                               FieldPlatform,
	"position_closed":                        FieldPositionClosed,
	"position_open":                          FieldPositionOpen,
	"position_template":                      FieldPositionTemplate,
	"position_topic":                         FieldPositionTopic,
	"power_command_template":                 FieldPowerCommandTemplate,
	"power_command_topic":                    FieldPowerCommandTopic,
	"preset_mode_command_template":           FieldPresetModeCommandTemplate,
	"preset_mode_command_topic":              FieldPresetModeCommandTopic,
	"preset_mode_state_topic":                FieldPresetModeStateTopic,
	"preset_mode_value_template":             FieldPresetModeValueTemplate,
	"preset_modes":                           FieldPresetModes,
	"red_template":                           FieldRedTemplate,
	"release_summary":                        FieldReleaseSummary,
	"release_url":                            FieldReleaseURL,
	"reports_position":                       FieldReportsPosition,
	"retain":                                 FieldRetain,
	"rgb_command_template":                   FieldRGBCommandTemplate,
	"rgb_command_topic":                      FieldRGBCommandTopic,
	"rgb_state_topic":                        FieldRGBStateTopic,
	"rgb_value_template":                     FieldRGBValueTemplate,
	"rgbw_command_template":                  FieldRGBWCommandTemplate,
	"rgbw_command_topic":                     FieldRGBWCommandTopic,
	"rgbw_state_topic":                       FieldRGBWStateTopic,
	"rgbw_value_template":                    FieldRGBWValueTemplate,
	"rgbww_command_template":                 FieldRGBWWCommandTemplate,
	"rgbww_command_topic":                    FieldRGBWWCommandTopic,
	"rgbww_state_topic":                      FieldRGBWWStateTopic,
	"rgbww_value_template":                   FieldRGBWWValueTemplate,
	"send_command_topic":                     FieldSendCommandTopic,
	"serial_number":                          FieldDeviceSerialNumber,
	"set_fan_speed_topic":                    FieldSetFanSpeedTopic,
	"set_position_template":                  FieldSetPositionTemplate,
	"set_position_topic":                     FieldSetPositionTopic,
	"source_type":                            FieldSourceType,
	"speed_range_max":                        FieldSpeedRangeMax,
	"speed_range_min":                        FieldSpeedRangeMin,
	"state_class":                            FieldStateClass,
	"state_closed":                           FieldStateClosed,
	"state_closing":                          FieldStateClosing,
	"state_jammed":                           FieldStateJammed,
	"state_locked":                           FieldStateLocked,
	"state_locking":                          FieldStateLocking,
	"state_off":                              FieldStateOff,
	"state_on":                               FieldStateOn,
	"state_open":                             FieldStateOpen,
	"state_opening":                          FieldStateOpening,
	"state_stopped":                          FieldStateStopped,
	"state_template":                         FieldStateTemplate,
	"state_topic":                            FieldStateTopic,
	"state_unlocked":                         FieldStateUnlocked,
	"state_unlocking":                        FieldStateUnlocking,
	"state_value_template":                   FieldStateValueTemplate,
	"subtype":                                FieldSubtype,
	"suggested_area":                         FieldDeviceSuggestedArea,
	"suggested_display_precision":            FieldSuggestedDisplayPrecision,
	"support_duration":                       FieldSupportDuration,
	"support_url":                            FieldOriginSupportURL,
	"support_volume_set":                     FieldSupportVolumeSet,
	"supported_color_modes":                  FieldSupportedColorModes,
	"supported_features":                     FieldSupportedFeatures,
	"sw_version":                             FieldDeviceSoftwareVersion,
	"swing_horizontal_mode_command_template": FieldSwingHorizontalModeCommandTemplate,
	"swing_horizontal_mode_command_topic":    FieldSwingHorizontalModeCommandTopic,
	"swing_horizontal_mode_state_template":   FieldSwingHorizontalModeStateTemplate,
	"swing_horizontal_mode_state_topic":      FieldSwingHorizontalModeStateTopic,
	"swing_horizontal_modes":                 FieldSwingHorizontalModes,
	"swing_mode_command_template":            FieldSwingModeCommandTemplate,
	"swing_mode_command_topic":               FieldSwingModeCommandTopic,
	"swing_mode_state_template":              FieldSwingModeStateTemplate,
	"swing_mode_state_topic":                 FieldSwingModeStateTopic,
	"target_humidity_command_template":       FieldTargetHumidityCommandTemplate,
	"target_humidity_command_topic":          FieldTargetHumidityCommandTopic,
	"target_humidity_state_template":         FieldTargetHumidityStateTemplate,
	"target_humidity_state_topic":            FieldTargetHumidityStateTopic,
	"temperature_command_template":           FieldTemperatureCommandTemplate,
	"temperature_command_topic":              FieldTemperatureCommandTopic,
	"temperature_high_command_template":      FieldTemperatureHighCommandTemplate,
	"temperature_high_command_topic":         FieldTemperatureHighCommandTopic,
	"temperature_high_state_template":        FieldTemperatureHighStateTemplate,
	"temperature_high_state_topic":           FieldTemperatureHighStateTopic,
	"temperature_low_command_template":       FieldTemperatureLowCommandTemplate,
	"temperature_low_command_topic":          FieldTemperatureLowCommandTopic,
	"temperature_low_state_template":         FieldTemperatureLowStateTemplate,
	"temperature_low_state_topic":            FieldTemperatureLowStateTopic,
	"temperature_state_template":             FieldTemperatureStateTemplate,
	"temperature_state_topic":                FieldTemperatureStateTopic,
	"temperature_unit":                       FieldTemperatureUnit,
	"tilt_closed_value":                      FieldTiltClosedValue,
	"tilt_command_template":                  FieldTiltCommandTemplate,
	"tilt_command_topic":                     FieldTiltCommandTopic,
	"tilt_opened_value":                      FieldTiltOpenedValue,
	"tilt_optimistic":                        FieldTiltOptimistic,
	"tilt_status_template":                   FieldTiltStatusTemplate,
	"tilt_status_topic":                      FieldTiltStatusTopic,
	"title":                                  FieldTitle,
	"topic":                                  FieldTopic,
	"unique_id":                              FieldUniqueID,
	"unit_of_measurement":                    FieldUnitOfMeasurement,
	"url_template":                           FieldURLTemplate,
	"url_topic":                              FieldURLTopic,
	"value_template":                         FieldValueTemplate,
	"white_command_topic":                    FieldWhiteCommandTopic,
	"white_scale":                            FieldWhiteScale,
	"xy_command_template":                    FieldXYCommandTemplate,
	"xy_command_topic":                       FieldXYCommandTopic,
	"xy_state_topic":                         FieldXYStateTopic,
	"xy_value_template":                      FieldXYValueTemplate,
}

// Abbreviate returns the abbreviated form of the provided discovery key. Keys that are already abbreviated, and keys
// that have no abbreviation, are returned unchanged.
func Abbreviate(key string) string {
	if abbr, ok := abbreviations[key]; ok {
		return abbr
	}

	return key
}

// Expand returns the long form of the provided abbreviated discovery key. Keys without an abbreviation are returned
// unchanged.
func Expand(key string) string {
	for long, abbr := range abbreviations {
		if abbr == key {
			return long
		}
	}

	return key
}
