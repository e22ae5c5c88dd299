package entity

import (
	"fmt"

	"portal/internal/domain/schema"
	"portal/internal/util"
)

// Gas is the detection state reported by a gas sensor.
type Gas struct {
	Defaults
	UUID      string
	Status    *bool
	GatewayID int64

	// Gateway and Resource are the joined parent rows, populated by
	// repository preloads.
	Gateway  *Gateway
	Resource *Resource
}

var gasDescriptor = &schema.Descriptor{
	Table: "gas",
	Columns: append(defaultColumns(),
		schema.Column{Name: "uuid", Type: schema.TypeString},
		schema.Column{Name: "status", Type: schema.TypeBoolean, Nullable: true},
		schema.Column{Name: "gateway_id", Type: schema.TypeBigInt},
	),
	Relations: []schema.Relation{gatewayRelation(), resourceRelation()},
}

// NewGas builds an in-memory gas reading.
func NewGas(uuid string, status *bool, gatewayID int64) *Gas {
	return &Gas{
		Defaults:  newDefaults(),
		UUID:      uuid,
		Status:    status,
		GatewayID: gatewayID,
	}
}

// Describe implements schema.Entity.
func (g *Gas) Describe() *schema.Descriptor {
	return gasDescriptor
}

// Field implements schema.Entity.
func (g *Gas) Field(name string) any {
	switch name {
	case "id":
		return g.idField()
	case "created_at":
		return g.createdAtField()
	case "uuid":
		return stringField(g.UUID)
	case "status":
		return boolField(g.Status)
	case "gateway_id":
		return idField(g.GatewayID)
	}

	return nil
}

// Attributes implements schema.Entity.
func (g *Gas) Attributes() map[string]any {
	attrs := columnAttributes(g)
	if g.Gateway != nil {
		attrs["gateway"] = g.Gateway
	}
	if g.Resource != nil {
		attrs["resource"] = g.Resource
	}

	return attrs
}

// String returns a human-readable description for logs and debugging.
func (g *Gas) String() string {
	return fmt.Sprintf("<Gas(id=%d uuid=%q status=%v gateway_id=%d created_at=%q)>",
		g.ID, g.UUID, boolField(g.Status), g.GatewayID, util.FormatDateTime(g.CreatedAt))
}
