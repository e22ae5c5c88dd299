package entity

import (
	"fmt"

	"portal/internal/domain/schema"
	"portal/internal/util"
)

// SmsHistory records that an alert SMS was sent for a resource on a gateway.
type SmsHistory struct {
	Defaults
	GatewayID int64
	UUID      string

	// Gateway and Resource are the joined parent rows, populated by
	// repository preloads.
	Gateway  *Gateway
	Resource *Resource
}

var smsHistoryDescriptor = &schema.Descriptor{
	Table: "sms_history",
	Columns: append(defaultColumns(),
		schema.Column{Name: "gateway_id", Type: schema.TypeBigInt},
		schema.Column{Name: "uuid", Type: schema.TypeString},
	),
	Relations: []schema.Relation{gatewayRelation(), resourceRelation()},
}

// NewSmsHistory builds an in-memory SMS history record.
func NewSmsHistory(uuid string, gatewayID int64) *SmsHistory {
	return &SmsHistory{
		Defaults:  newDefaults(),
		UUID:      uuid,
		GatewayID: gatewayID,
	}
}

// Describe implements schema.Entity.
func (s *SmsHistory) Describe() *schema.Descriptor {
	return smsHistoryDescriptor
}

// Field implements schema.Entity.
func (s *SmsHistory) Field(name string) any {
	switch name {
	case "id":
		return s.idField()
	case "created_at":
		return s.createdAtField()
	case "gateway_id":
		return idField(s.GatewayID)
	case "uuid":
		return stringField(s.UUID)
	}

	return nil
}

// Attributes implements schema.Entity.
func (s *SmsHistory) Attributes() map[string]any {
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
func (s *SmsHistory) String() string {
	return fmt.Sprintf("<SmsHistory(id=%d uuid=%q gateway_id=%d created_at=%q)>",
		s.ID, s.UUID, s.GatewayID, util.FormatDateTime(s.CreatedAt))
}
