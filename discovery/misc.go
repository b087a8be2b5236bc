package discovery

// Constants for the camera and image platforms
const (
	FieldContentType   = "content_type"
	FieldImageEncoding = "img_e"
	FieldImageTopic    = "img_t"
	FieldURLTemplate   = "url_tpl"
	FieldURLTopic      = "url_t"
)

// Constants for the device_tracker platform
const (
	FieldPayloadHome    = "pl_home"
	FieldPayloadNotHome = "pl_not_home"
	FieldSourceType     = "src_type"
)

// Constants for device triggers (the device_automation platform)
const (
	FieldAutomationType = "atype"
	FieldPayload        = "pl"
	FieldType           = "type"
	FieldSubtype        = "stype"
)

// Constants for the button platform
const (
	FieldPayloadPress = "pl_prs"
)

// Constants for the text platform
const (
	FieldPattern = "ptrn"
)

// Constants for the siren platform
const (
	FieldAvailableTones     = "av_tones"
	FieldCommandOffTemplate = "cmd_off_tpl"
	FieldStateOff           = "stat_off"
	FieldStateOn            = "stat_on"
	FieldSupportDuration    = "sup_dur"
	FieldSupportVolumeSet   = "sup_vol"
)

// Constants for the update platform
const (
	FieldDisplayPrecision      = "dsp_prc"
	FieldLatestVersionTemplate = "l_ver_tpl"
	FieldLatestVersionTopic    = "l_ver_t"
	FieldPayloadInstall        = "pl_inst"
	FieldReleaseSummary        = "rel_s"
	FieldReleaseURL            = "rel_u"
	FieldTitle                 = "tit"
)
