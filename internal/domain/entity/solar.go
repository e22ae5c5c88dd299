package entity

import (
	"fmt"

	"portal/internal/domain/schema"
	"portal/internal/util"
)

// Solar is the state of a solar panel resource: whether tracking is enabled,
// the current tilt, and the two lines shown on the attached LCD.
type Solar struct {
	Defaults
	UUID           string
	Status         *bool
	GatewayID      int64
	TiltPercentage *float64
	LCDFirst       string
	LCDSecond      string

	// Gateway and Resource are the joined parent rows, populated by
	// repository preloads.
	Gateway  *Gateway
	Resource *Resource
}

var solarDescriptor = &schema.Descriptor{
	Table: "solar",
	Columns: append(defaultColumns(),
		schema.Column{Name: "uuid", Type: schema.TypeString},
		schema.Column{Name: "status", Type: schema.TypeBoolean, Nullable: true},
		schema.Column{Name: "gateway_id", Type: schema.TypeBigInt},
		schema.Column{Name: "tiltpercentage", Type: schema.TypeFloat, Nullable: true},
		schema.Column{Name: "lcd_first", Type: schema.TypeString, Nullable: true},
		schema.Column{Name: "lcd_second", Type: schema.TypeString, Nullable: true},
	),
	Relations: []schema.Relation{gatewayRelation(), resourceRelation()},
}

// NewSolar builds an in-memory solar panel state.
func NewSolar(uuid string, status *bool, gatewayID int64, tiltPercentage *float64, lcdFirst, lcdSecond string) *Solar {
	return &Solar{
		Defaults:       newDefaults(),
		UUID:           uuid,
		Status:         status,
		GatewayID:      gatewayID,
		TiltPercentage: tiltPercentage,
		LCDFirst:       lcdFirst,
		LCDSecond:      lcdSecond,
	}
}

// Describe implements schema.Entity.
func (s *Solar) Describe() *schema.Descriptor {
	return solarDescriptor
}

// Field implements schema.Entity.
func (s *Solar) Field(name string) any {
	switch name {
	case "id":
		return s.idField()
	case "created_at":
		return s.createdAtField()
	case "uuid":
		return stringField(s.UUID)
	case "status":
		return boolField(s.Status)
	case "gateway_id":
		return idField(s.GatewayID)
	case "tiltpercentage":
		return floatField(s.TiltPercentage)
	case "lcd_first":
		return stringField(s.LCDFirst)
	case "lcd_second":
		return stringField(s.LCDSecond)
	}

	return nil
}

// Attributes implements schema.Entity.
func (s *Solar) Attributes() map[string]any {
	attrs := columnAttributes(s)
	if s.Gateway != nil {
		attrs["gateway"] = s.Gateway
	}
	if s.Resource != nil {
		attrs["resource"] = s.Resource
	}

	return attrs
}

// String returns a human-readable description for logs and debugging.
func (s *Solar) String() string {
	return fmt.Sprintf("<Solar(id=%d uuid=%q status=%v gateway_id=%d tiltpercentage=%v lcd_first=%q lcd_second=%q created_at=%q)>",
		s.ID, s.UUID, boolField(s.Status), s.GatewayID, floatField(s.TiltPercentage),
		s.LCDFirst, s.LCDSecond, util.FormatDateTime(s.CreatedAt))
}
