package entity

import (
	"fmt"

	"portal/internal/domain/schema"
	"portal/internal/util"
)

// Fan is the on/off state reported by a fan actuator attached to a gateway.
type Fan struct {
	Defaults
	UUID      string
	Status    *bool
	GatewayID int64

	// Gateway and Resource are the joined parent rows, populated by
	// repository preloads.
	Gateway  *Gateway
	Resource *Resource
}

var fanDescriptor = &schema.Descriptor{
	Table: "fan",
	Columns: append(defaultColumns(),
		schema.Column{Name: "uuid", Type: schema.TypeString},
		schema.Column{Name: "status", Type: schema.TypeBoolean, Nullable: true},
		schema.Column{Name: "gateway_id", Type: schema.TypeBigInt},
	),
	Relations: []schema.Relation{gatewayRelation(), resourceRelation()},
}

// NewFan builds an in-memory fan reading.
func NewFan(uuid string, status *bool, gatewayID int64) *Fan {
	return &Fan{
		Defaults:  newDefaults(),
		UUID:      uuid,
		Status:    status,
		GatewayID: gatewayID,
	}
}

// Describe implements schema.Entity.
func (f *Fan) Describe() *schema.Descriptor {
	return fanDescriptor
}

// Field implements schema.Entity.
func (f *Fan) Field(name string) any {
	switch name {
	case "id":
		return f.idField()
	case "created_at":
		return f.createdAtField()
	case "uuid":
		return stringField(f.UUID)
	case "status":
		return boolField(f.Status)
	case "gateway_id":
		return idField(f.GatewayID)
	}

	return nil
}

// Attributes implements schema.Entity.
func (f *Fan) Attributes() map[string]any {
	attrs := columnAttributes(f)
	if f.Gateway != nil {
		attrs["gateway"] = f.Gateway
	}
	if f.Resource != nil {
		attrs["resource"] = f.Resource
	}

	return attrs
}

// String returns a human-readable description for logs and debugging.
func (f *Fan) String() string {
	return fmt.Sprintf("<Fan(id=%d uuid=%q status=%v gateway_id=%d created_at=%q)>",
		f.ID, f.UUID, boolField(f.Status), f.GatewayID, util.FormatDateTime(f.CreatedAt))
}
