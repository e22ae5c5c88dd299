package entity

import (
	"fmt"

	"portal/internal/domain/schema"
	"portal/internal/util"

	"github.com/google/uuid"
)

// Resource is a physical device endpoint on a gateway. Its UUID is not
// globally unique on its own; the (uuid, gateway) coupling identifies one
// device on one gateway, and the reading tables reference it by UUID.
type Resource struct {
	Defaults
	UUID         string
	SensorTypeID int64
	Status       *bool
	GatewayID    int64
	Path         string

	// SensorType is the joined lookup row, populated by repository preloads.
	SensorType *SensorType
}

var resourceDescriptor = &schema.Descriptor{
	Table: "resource",
	Columns: append(defaultColumns(),
		schema.Column{Name: "uuid", Type: schema.TypeString},
		schema.Column{Name: "sensor_type_id", Type: schema.TypeBigInt},
		schema.Column{Name: "status", Type: schema.TypeBoolean, Nullable: true},
		schema.Column{Name: "gateway_id", Type: schema.TypeBigInt},
		schema.Column{Name: "path", Type: schema.TypeString},
	),
	Relations: []schema.Relation{
		{
			Name:      "sensor_type",
			Column:    "sensor_type_id",
			RefTable:  "sensor_type",
			RefColumn: "id",
			OnDelete:  schema.Cascade,
			OnUpdate:  schema.Cascade,
		},
		gatewayRelation(),
	},
}

// NewResource builds an in-memory resource registration. Devices normally
// report their own identifier; when none is supplied one is generated so the
// reading tables always have a reference target.
func NewResource(deviceUUID string, sensorTypeID int64, path string, status *bool) *Resource {
	if deviceUUID == "" {
		deviceUUID = uuid.NewString()
	}

	return &Resource{
		Defaults:     newDefaults(),
		UUID:         deviceUUID,
		SensorTypeID: sensorTypeID,
		Path:         path,
		Status:       status,
	}
}

// Describe implements schema.Entity.
func (r *Resource) Describe() *schema.Descriptor {
	return resourceDescriptor
}

// Field implements schema.Entity.
func (r *Resource) Field(name string) any {
	switch name {
	case "id":
		return r.idField()
	case "created_at":
		return r.createdAtField()
	case "uuid":
		return stringField(r.UUID)
	case "sensor_type_id":
		return idField(r.SensorTypeID)
	case "status":
		return boolField(r.Status)
	case "gateway_id":
		return idField(r.GatewayID)
	case "path":
		return stringField(r.Path)
	}

	return nil
}

// Attributes implements schema.Entity.
func (r *Resource) Attributes() map[string]any {
	attrs := columnAttributes(r)
	if r.SensorType != nil {
		attrs["sensor_type"] = r.SensorType
	}

	return attrs
}

// String returns a human-readable description for logs and debugging.
func (r *Resource) String() string {
	return fmt.Sprintf("<Resource(id=%d path=%q status=%v created_at=%q)>",
		r.ID, r.Path, boolField(r.Status), util.FormatDateTime(r.CreatedAt))
}
