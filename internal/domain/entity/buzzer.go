package entity

import (
	"fmt"

	"portal/internal/domain/schema"
	"portal/internal/util"
)

// Buzzer is the on/off state of a buzzer actuator.
type Buzzer struct {
	Defaults
	UUID      string
	Status    *bool
	GatewayID int64

	// Gateway and Resource are the joined parent rows, populated by
	// repository preloads.
	Gateway  *Gateway
	Resource *Resource
}

var buzzerDescriptor = &schema.Descriptor{
	Table: "buzzer",
	Columns: append(defaultColumns(),
		schema.Column{Name: "uuid", Type: schema.TypeString},
		schema.Column{Name: "status", Type: schema.TypeBoolean, Nullable: true},
		schema.Column{Name: "gateway_id", Type: schema.TypeBigInt},
	),
	Relations: []schema.Relation{gatewayRelation(), resourceRelation()},
}

// NewBuzzer builds an in-memory buzzer reading.
func NewBuzzer(uuid string, status *bool, gatewayID int64) *Buzzer {
	return &Buzzer{
		Defaults:  newDefaults(),
		UUID:      uuid,
		Status:    status,
		GatewayID: gatewayID,
	}
}

// Describe implements schema.Entity.
func (b *Buzzer) Describe() *schema.Descriptor {
	return buzzerDescriptor
}

// Field implements schema.Entity.
func (b *Buzzer) Field(name string) any {
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
func (b *Buzzer) Attributes() map[string]any {
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
func (b *Buzzer) String() string {
	return fmt.Sprintf("<Buzzer(id=%d uuid=%q status=%v gateway_id=%d created_at=%q)>",
		b.ID, b.UUID, boolField(b.Status), b.GatewayID, util.FormatDateTime(b.CreatedAt))
}
