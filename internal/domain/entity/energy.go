package entity

import (
	"fmt"

	"portal/internal/domain/schema"
	"portal/internal/util"
)

// Energy is a cumulative energy consumption sample reported by a metering resource.
type Energy struct {
	Defaults
	UUID      string
	Value     *int64
	GatewayID int64

	// Gateway and Resource are the joined parent rows, populated by
	// repository preloads.
	Gateway  *Gateway
	Resource *Resource
}

var energyDescriptor = &schema.Descriptor{
	Table: "energy",
	Columns: append(defaultColumns(),
		schema.Column{Name: "uuid", Type: schema.TypeString},
		schema.Column{Name: "value", Type: schema.TypeInteger, Nullable: true},
		schema.Column{Name: "gateway_id", Type: schema.TypeBigInt},
	),
	Relations: []schema.Relation{gatewayRelation(), resourceRelation()},
}

// NewEnergy builds an in-memory energy reading.
func NewEnergy(uuid string, value *int64, gatewayID int64) *Energy {
	return &Energy{
		Defaults:  newDefaults(),
		UUID:      uuid,
		Value:     value,
		GatewayID: gatewayID,
	}
}

// Describe implements schema.Entity.
func (e *Energy) Describe() *schema.Descriptor {
	return energyDescriptor
}

// Field implements schema.Entity.
func (e *Energy) Field(name string) any {
	switch name {
	case "id":
		return e.idField()
	case "created_at":
		return e.createdAtField()
	case "uuid":
		return stringField(e.UUID)
	case "value":
		return intField(e.Value)
	case "gateway_id":
		return idField(e.GatewayID)
	}

	return nil
}

// Attributes implements schema.Entity.
func (e *Energy) Attributes() map[string]any {
	attrs := columnAttributes(e)
	if e.Gateway != nil {
		attrs["gateway"] = e.Gateway
	}
	if e.Resource != nil {
		attrs["resource"] = e.Resource
	}

	return attrs
}

// String returns a human-readable description for logs and debugging.
func (e *Energy) String() string {
	return fmt.Sprintf("<Energy(id=%d uuid=%q value=%v gateway_id=%d created_at=%q)>",
		e.ID, e.UUID, intField(e.Value), e.GatewayID, util.FormatDateTime(e.CreatedAt))
}
