package entity

import (
	"fmt"

	"portal/internal/domain/schema"
	"portal/internal/util"
)

// Led is the on/off state of an LED actuator.
type Led struct {
	Defaults
	UUID      string
	Status    *bool
	GatewayID int64

	// Gateway and Resource are the joined parent rows, populated by
	// repository preloads.
	Gateway  *Gateway
	Resource *Resource
}

var ledDescriptor = &schema.Descriptor{
	Table: "led",
	Columns: append(defaultColumns(),
		schema.Column{Name: "uuid", Type: schema.TypeString},
		schema.Column{Name: "status", Type: schema.TypeBoolean, Nullable: true},
		schema.Column{Name: "gateway_id", Type: schema.TypeBigInt},
	),
	Relations: []schema.Relation{gatewayRelation(), resourceRelation()},
}

// NewLed builds an in-memory led reading.
func NewLed(uuid string, status *bool, gatewayID int64) *Led {
	return &Led{
		Defaults:  newDefaults(),
		UUID:      uuid,
		Status:    status,
		GatewayID: gatewayID,
	}
}

// Describe implements schema.Entity.
func (l *Led) Describe() *schema.Descriptor {
	return ledDescriptor
}

// Field implements schema.Entity.
func (l *Led) Field(name string) any {
	switch name {
	case "id":
		return l.idField()
	case "created_at":
		return l.createdAtField()
	case "uuid":
		return stringField(l.UUID)
	case "status":
		return boolField(l.Status)
	case "gateway_id":
		return idField(l.GatewayID)
	}

	return nil
}

// Attributes implements schema.Entity.
func (l *Led) Attributes() map[string]any {
	attrs := columnAttributes(l)
	if l.Gateway != nil {
		attrs["gateway"] = l.Gateway
	}
	if l.Resource != nil {
		attrs["resource"] = l.Resource
	}

	return attrs
}

// String returns a human-readable description for logs and debugging.
func (l *Led) String() string {
	return fmt.Sprintf("<Led(id=%d uuid=%q status=%v gateway_id=%d created_at=%q)>",
		l.ID, l.UUID, boolField(l.Status), l.GatewayID, util.FormatDateTime(l.CreatedAt))
}
