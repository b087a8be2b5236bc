package hadiscovery

import (
	"bytes"
	"encoding/json/jsontext"
	"encoding/json/v2"
	"errors"

	"github.com/nlowe/hadiscovery/discovery"
	"github.com/nlowe/hadiscovery/platform"
)

// Component adapts a platform.Entity for use as a component in ConfigureDevice. Device-based discovery shares one
// device and origin across every component, so the entity's own dev and o keys are left out.
type Component struct {
	Entity platform.Entity
}

// ForRemoval returns the RemoveComponent for this component's domain.
func (c Component) ForRemoval() RemoveComponent {
	return RemoveComponent{Platform: c.Entity.Domain()}
}

func (c Component) MarshalJSONTo(e *jsontext.Encoder) error {
	raw, err := json.Marshal(c.Entity, json.WithMarshalers(discovery.Marshalers))
	if err != nil {
		return err
	}

	d := jsontext.NewDecoder(bytes.NewReader(raw))
	if _, err = d.ReadToken(); err != nil {
		return err
	}

	if err = e.WriteToken(jsontext.BeginObject); err != nil {
		return err
	}

	for d.PeekKind() != '}' {
		name, err := d.ReadToken()
		if err != nil {
			return err
		}

		value, err := d.ReadValue()
		if err != nil {
			return err
		}

		switch name.String() {
		case discovery.FieldDevice, discovery.FieldOrigin:
			continue
		}

		if err = errors.Join(e.WriteToken(name), e.WriteValue(value)); err != nil {
			return err
		}
	}

	return e.WriteToken(jsontext.EndObject)
}

// RemoveComponent is used to remove a component from device discovery. Construct a RemoveComponent with the
// appropriate domain manually or use Component.ForRemoval.
type RemoveComponent struct {
	Platform platform.Domain
}

func (r RemoveComponent) MarshalJSONTo(e *jsontext.Encoder) error {
	return discovery.Fields{
		discovery.Required(discovery.FieldPlatform, &r.Platform),
	}.MarshalJSONTo(e)
}
