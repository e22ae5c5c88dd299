package entity

import (
	"fmt"

	"portal/internal/domain/schema"
	"portal/internal/util"
)

// Illuminance is an ambient light level reading.
type Illuminance struct {
	Defaults
	UUID        string
	Illuminance *float64
	GatewayID   int64

	// Gateway and Resource are the joined parent rows, populated by
	// repository preloads.
	Gateway  *Gateway
	Resource *Resource
}

var illuminanceDescriptor = &schema.Descriptor{
	Table: "illuminance",
	Columns: append(defaultColumns(),
		schema.Column{Name: "uuid", Type: schema.TypeString},
		schema.Column{Name: "illuminance", Type: schema.TypeFloat, Nullable: true},
		schema.Column{Name: "gateway_id", Type: schema.TypeBigInt},
	),
	Relations: []schema.Relation{gatewayRelation(), resourceRelation()},
}

// NewIlluminance builds an in-memory illuminance reading.
func NewIlluminance(uuid string, illuminance *float64, gatewayID int64) *Illuminance {
	return &Illuminance{
		Defaults:    newDefaults(),
		UUID:        uuid,
		Illuminance: illuminance,
		GatewayID:   gatewayID,
	}
}

// Describe implements schema.Entity.
func (i *Illuminance) Describe() *schema.Descriptor {
	return illuminanceDescriptor
}

// Field implements schema.Entity.
func (i *Illuminance) Field(name string) any {
	switch name {
	case "id":
		return i.idField()
	case "created_at":
		return i.createdAtField()
	case "uuid":
		return stringField(i.UUID)
	case "illuminance":
		return floatField(i.Illuminance)
	case "gateway_id":
		return idField(i.GatewayID)
	}

	return nil
}

// Attributes implements schema.Entity.
func (i *Illuminance) Attributes() map[string]any {
	attrs := columnAttributes(i)
	if i.Gateway != nil {
		attrs["gateway"] = i.Gateway
	}
	if i.Resource != nil {
		attrs["resource"] = i.Resource
	}

	return attrs
}

// String returns a human-readable description for logs and debugging.
func (i *Illuminance) String() string {
	return fmt.Sprintf("<Illuminance(id=%d uuid=%q illuminance=%v gateway_id=%d created_at=%q)>",
		i.ID, i.UUID, floatField(i.Illuminance), i.GatewayID, util.FormatDateTime(i.CreatedAt))
}
