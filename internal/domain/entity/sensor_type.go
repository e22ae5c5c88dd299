package entity

import (
	"fmt"

	"portal/internal/domain/schema"
)

// SensorType is the static lookup table naming the kinds of resources a
// gateway can expose. It is seeded once and never timestamped.
type SensorType struct {
	ID   int64
	Type string
}

var sensorTypeDescriptor = &schema.Descriptor{
	Table: "sensor_type",
	Columns: []schema.Column{
		{Name: "id", Type: schema.TypeBigInt},
		{Name: "type", Type: schema.TypeString},
	},
}

// NewSensorType builds a lookup row for the given type name.
func NewSensorType(sensorType string) *SensorType {
	return &SensorType{Type: sensorType}
}

// Initialize is the post-construction hook; it currently only calls Update.
func (s *SensorType) Initialize() {
	s.Update()
}

// Update is a no-op extension point.
func (s *SensorType) Update() {}

// Describe implements schema.Entity.
func (s *SensorType) Describe() *schema.Descriptor {
	return sensorTypeDescriptor
}

// Field implements schema.Entity.
func (s *SensorType) Field(name string) any {
	switch name {
	case "id":
		return idField(s.ID)
	case "type":
		return stringField(s.Type)
	}

	return nil
}

// Attributes implements schema.Entity.
func (s *SensorType) Attributes() map[string]any {
	return columnAttributes(s)
}

// String returns a human-readable description for logs and debugging.
func (s *SensorType) String() string {
	return fmt.Sprintf("<SensorType(id=%d type=%q)>", s.ID, s.Type)
}
