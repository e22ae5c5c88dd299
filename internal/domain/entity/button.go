package entity

import (
	"fmt"

	"portal/internal/domain/schema"
	"portal/internal/util"
)

// Button is the momentary press state reported by a button resource.
type Button struct {
	Defaults
	UUID      string
	Status    *bool
	GatewayID int64

	// Gateway and Resource are the joined parent rows, populated by
	// repository preloads.
	Gateway  *Gateway
	Resource *Resource
}

var buttonDescriptor = &schema.Descriptor{
	Table: "button",
	Columns: append(defaultColumns(),
		schema.Column{Name: "uuid", Type: schema.TypeString},
		schema.Column{Name: "status", Type: schema.TypeBoolean, Nullable: true},
		schema.Column{Name: "gateway_id", Type: schema.TypeBigInt},
	),
	Relations: []schema.Relation{gatewayRelation(), resourceRelation()},
}

// NewButton builds an in-memory button reading.
func NewButton(uuid string, status *bool, gatewayID int64) *Button {
	return &Button{
		Defaults:  newDefaults(),
		UUID:      uuid,
		Status:    status,
		GatewayID: gatewayID,
	}
}

// Describe implements schema.Entity.
func (b *Button) Describe() *schema.Descriptor {
	return buttonDescriptor
}

// Field implements schema.Entity.
func (b *Button) Field(name string) any {
	switch name {
	case "id":
		return b.idField()
	case "created_at":
		return b.createdAtField()
	case "uuid":
		return stringField(b.UUID)
	case "status":
		return boolField(b.Status)
	case "gateway_id":
		return idField(b.GatewayID)
	}

	return nil
}

// Attributes implements schema.Entity.
func (b *Button) Attributes() map[string]any {
	attrs := columnAttributes(b)
	if b.Gateway != nil {
		attrs["gateway"] = b.Gateway
	}
	if b.Resource != nil {
		attrs["resource"] = b.Resource
	}

	return attrs
}

// String returns a human-readable description for logs and debugging.
func (b *Button) String() string {
	return fmt.Sprintf("<Button(id=%d uuid=%q status=%v gateway_id=%d created_at=%q)>",
		b.ID, b.UUID, boolField(b.Status), b.GatewayID, util.FormatDateTime(b.CreatedAt))
}
