package entity

import (
	"fmt"

	"portal/internal/domain/schema"
	"portal/internal/util"
)

// Temperature is a reading from a temperature resource. The value is stored
// at DOUBLE precision; units and range describe the sensor's reporting scale.
type Temperature struct {
	Defaults
	UUID        string
	Temperature *float64
	Units       string
	Range       string
	GatewayID   int64

	// Gateway and Resource are the joined parent rows, populated by
	// repository preloads.
	Gateway  *Gateway
	Resource *Resource
}

var temperatureDescriptor = &schema.Descriptor{
	Table: "temperature",
	Columns: append(defaultColumns(),
		schema.Column{Name: "uuid", Type: schema.TypeString},
		schema.Column{Name: "temperature", Type: schema.TypeDouble, Nullable: true},
		schema.Column{Name: "units", Type: schema.TypeString, Nullable: true},
		schema.Column{Name: "range", Type: schema.TypeString, Nullable: true},
		schema.Column{Name: "gateway_id", Type: schema.TypeBigInt},
	),
	Relations: []schema.Relation{gatewayRelation(), resourceRelation()},
}

// NewTemperature builds an in-memory temperature reading.
func NewTemperature(uuid string, temperature *float64, units, readingRange string, gatewayID int64) *Temperature {
	return &Temperature{
		Defaults:    newDefaults(),
		UUID:        uuid,
		Temperature: temperature,
		Units:       units,
		Range:       readingRange,
		GatewayID:   gatewayID,
	}
}

// Describe implements schema.Entity.
func (t *Temperature) Describe() *schema.Descriptor {
	return temperatureDescriptor
}

// Field implements schema.Entity.
func (t *Temperature) Field(name string) any {
	switch name {
	case "id":
		return t.idField()
	case "created_at":
		return t.createdAtField()
	case "uuid":
		return stringField(t.UUID)
	case "temperature":
		return floatField(t.Temperature)
	case "units":
		return stringField(t.Units)
	case "range":
		return stringField(t.Range)
	case "gateway_id":
		return idField(t.GatewayID)
	}

	return nil
}

// Attributes implements schema.Entity.
func (t *Temperature) Attributes() map[string]any {
	attrs := columnAttributes(t)
	if t.Gateway != nil {
		attrs["gateway"] = t.Gateway
	}
	if t.Resource != nil {
		attrs["resource"] = t.Resource
	}

	return attrs
}

// String returns a human-readable description for logs and debugging.
func (t *Temperature) String() string {
	return fmt.Sprintf("<Temperature(id=%d uuid=%q temperature=%v units=%q range=%q gateway_id=%d created_at=%q)>",
		t.ID, t.UUID, floatField(t.Temperature), t.Units, t.Range, t.GatewayID, util.FormatDateTime(t.CreatedAt))
}
