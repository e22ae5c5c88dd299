package entity

import (
	"fmt"

	"portal/internal/domain/schema"
	"portal/internal/util"
)

// Rgbled is the color state of an RGB LED actuator.
type Rgbled struct {
	Defaults
	UUID      string
	RGBValue  string
	Range     string
	GatewayID int64

	// Gateway and Resource are the joined parent rows, populated by
	// repository preloads.
	Gateway  *Gateway
	Resource *Resource
}

var rgbledDescriptor = &schema.Descriptor{
	Table: "rgbled",
	Columns: append(defaultColumns(),
		schema.Column{Name: "uuid", Type: schema.TypeString},
		schema.Column{Name: "rgbvalue", Type: schema.TypeString, Nullable: true},
		schema.Column{Name: "range", Type: schema.TypeString, Nullable: true},
		schema.Column{Name: "gateway_id", Type: schema.TypeBigInt},
	),
	Relations: []schema.Relation{gatewayRelation(), resourceRelation()},
}

// NewRgbled builds an in-memory RGB LED state.
func NewRgbled(uuid, rgbValue, valueRange string, gatewayID int64) *Rgbled {
	return &Rgbled{
		Defaults:  newDefaults(),
		UUID:      uuid,
		RGBValue:  rgbValue,
		Range:     valueRange,
		GatewayID: gatewayID,
	}
}

// Describe implements schema.Entity.
func (r *Rgbled) Describe() *schema.Descriptor {
	return rgbledDescriptor
}

// Field implements schema.Entity.
func (r *Rgbled) Field(name string) any {
	switch name {
	case "id":
		return r.idField()
	case "created_at":
		return r.createdAtField()
	case "uuid":
		return stringField(r.UUID)
	case "rgbvalue":
		return stringField(r.RGBValue)
	case "range":
		return stringField(r.Range)
	case "gateway_id":
		return idField(r.GatewayID)
	}

	return nil
}

// Attributes implements schema.Entity.
func (r *Rgbled) Attributes() map[string]any {
	attrs := columnAttributes(r)
	if r.Gateway != nil {
		attrs["gateway"] = r.Gateway
	}
	if r.Resource != nil {
		attrs["resource"] = r.Resource
	}

	return attrs
}

// String returns a human-readable description for logs and debugging.
func (r *Rgbled) String() string {
	return fmt.Sprintf("<Rgbled(id=%d uuid=%q rgbvalue=%q range=%q gateway_id=%d created_at=%q)>",
		r.ID, r.UUID, r.RGBValue, r.Range, r.GatewayID, util.FormatDateTime(r.CreatedAt))
}
