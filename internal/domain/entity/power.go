package entity

import (
	"fmt"

	"portal/internal/domain/schema"
	"portal/internal/util"
)

// Power is an instantaneous power draw sample reported by a metering resource.
type Power struct {
	Defaults
	UUID      string
	Value     *int64
	GatewayID int64

	// Gateway and Resource are the joined parent rows, populated by
	// repository preloads.
	Gateway  *Gateway
	Resource *Resource
}

var powerDescriptor = &schema.Descriptor{
	Table: "power",
	Columns: append(defaultColumns(),
		schema.Column{Name: "uuid", Type: schema.TypeString},
		schema.Column{Name: "value", Type: schema.TypeInteger, Nullable: true},
		schema.Column{Name: "gateway_id", Type: schema.TypeBigInt},
	),
	Relations: []schema.Relation{gatewayRelation(), resourceRelation()},
}

// NewPower builds an in-memory power reading.
func NewPower(uuid string, value *int64, gatewayID int64) *Power {
	return &Power{
		Defaults:  newDefaults(),
		UUID:      uuid,
		Value:     value,
		GatewayID: gatewayID,
	}
}

// Describe implements schema.Entity.
func (p *Power) Describe() *schema.Descriptor {
	return powerDescriptor
}

// Field implements schema.Entity.
func (p *Power) Field(name string) any {
	switch name {
	case "id":
		return p.idField()
	case "created_at":
		return p.createdAtField()
	case "uuid":
		return stringField(p.UUID)
	case "value":
		return intField(p.Value)
	case "gateway_id":
		return idField(p.GatewayID)
	}

	return nil
}

// Attributes implements schema.Entity.
func (p *Power) Attributes() map[string]any {
	attrs := columnAttributes(p)
	if p.Gateway != nil {
		attrs["gateway"] = p.Gateway
	}
	if p.Resource != nil {
		attrs["resource"] = p.Resource
	}

	return attrs
}

// String returns a human-readable description for logs and debugging.
func (p *Power) String() string {
	return fmt.Sprintf("<Power(id=%d uuid=%q value=%v gateway_id=%d created_at=%q)>",
		p.ID, p.UUID, intField(p.Value), p.GatewayID, util.FormatDateTime(p.CreatedAt))
}
