package entity

import (
	"fmt"

	"portal/internal/domain/schema"
	"portal/internal/util"
)

// Motion is the detection state reported by a motion sensor.
type Motion struct {
	Defaults
	UUID      string
	Status    *bool
	GatewayID int64

	// Gateway and Resource are the joined parent rows, populated by
	// repository preloads.
	Gateway  *Gateway
	Resource *Resource
}

var motionDescriptor = &schema.Descriptor{
	Table: "motion",
	Columns: append(defaultColumns(),
		schema.Column{Name: "uuid", Type: schema.TypeString},
		schema.Column{Name: "status", Type: schema.TypeBoolean, Nullable: true},
		schema.Column{Name: "gateway_id", Type: schema.TypeBigInt},
	),
	Relations: []schema.Relation{gatewayRelation(), resourceRelation()},
}

// NewMotion builds an in-memory motion reading.
func NewMotion(uuid string, status *bool, gatewayID int64) *Motion {
	return &Motion{
		Defaults:  newDefaults(),
		UUID:      uuid,
		Status:    status,
		GatewayID: gatewayID,
	}
}

// Describe implements schema.Entity.
func (m *Motion) Describe() *schema.Descriptor {
	return motionDescriptor
}

// Field implements schema.Entity.
func (m *Motion) Field(name string) any {
	switch name {
	case "id":
		return m.idField()
	case "created_at":
		return m.createdAtField()
	case "uuid":
		return stringField(m.UUID)
	case "status":
		return boolField(m.Status)
	case "gateway_id":
		return idField(m.GatewayID)
	}

	return nil
}

// Attributes implements schema.Entity.
func (m *Motion) Attributes() map[string]any {
	attrs := columnAttributes(m)
	if m.Gateway != nil {
		attrs["gateway"] = m.Gateway
	}
	if m.Resource != nil {
		attrs["resource"] = m.Resource
	}

	return attrs
}

// String returns a human-readable description for logs and debugging.
func (m *Motion) String() string {
	return fmt.Sprintf("<Motion(id=%d uuid=%q status=%v gateway_id=%d created_at=%q)>",
		m.ID, m.UUID, boolField(m.Status), m.GatewayID, util.FormatDateTime(m.CreatedAt))
}
