package hass

import (
	"encoding/json/jsontext"
	"net/url"

	"github.com/nlowe/hadiscovery/discovery"
)

// Origin provides information about the software providing entities over MQTT to Home Assistant. The origin details
// are logged in the core event log when an item is discovered or updated.
type Origin struct {
	// The name of the application that is the origin of the discovered MQTT item.
	Name string
	// Software version of the application that supplies the discovered MQTT item.
	SoftwareVersion string
	// Support URL of the application that supplies the discovered MQTT item.
	SupportURL *url.URL
}

func (o *Origin) fields() discovery.Fields {
	return discovery.Fields{
		discovery.Required(discovery.FieldName, &o.Name),
		discovery.OmitEmpty(discovery.FieldOriginSoftwareVersion, &o.SoftwareVersion),
		discovery.Optional(discovery.FieldOriginSupportURL, &o.SupportURL),
	}
}

func (o Origin) MarshalJSONTo(e *jsontext.Encoder) error {
	return o.fields().MarshalJSONTo(e)
}

func (o *Origin) UnmarshalJSONFrom(d *jsontext.Decoder) error {
	return o.fields().UnmarshalJSONFrom(d)
}

var (
	supportURL, _ = url.Parse("https://github.com/nlowe/hadiscovery")

	// DefaultOrigin provides origin information to Home Assistant for applications that do not otherwise specify one.
	DefaultOrigin = Origin{
		Name:            "hadiscovery",
		SoftwareVersion: "master",
		SupportURL:      supportURL,
	}
)
