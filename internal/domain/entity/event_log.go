package entity

import (
	"fmt"

	"portal/internal/domain/schema"
	"portal/internal/util"
)

// EventLog records one portal-side event: the event type, the structured
// payload (persisted JSON-encoded), and the response code the handler
// returned. It references no other table.
type EventLog struct {
	Defaults
	Type         string
	Data         any
	ResponseCode *int64
}

var eventLogDescriptor = &schema.Descriptor{
	Table: "eventlog",
	Columns: append(defaultColumns(),
		schema.Column{Name: "type", Type: schema.TypeString, Nullable: true},
		schema.Column{Name: "data", Type: schema.TypeJSON, Nullable: true},
		schema.Column{Name: "response_code", Type: schema.TypeInteger, Nullable: true},
	),
}

// NewEventLog builds an in-memory event record.
func NewEventLog(eventType string, data any, responseCode *int64) *EventLog {
	return &EventLog{
		Defaults:     newDefaults(),
		Type:         eventType,
		Data:         data,
		ResponseCode: responseCode,
	}
}

// Describe implements schema.Entity.
func (e *EventLog) Describe() *schema.Descriptor {
	return eventLogDescriptor
}

// Field implements schema.Entity.
func (e *EventLog) Field(name string) any {
	switch name {
	case "id":
		return e.idField()
	case "created_at":
		return e.createdAtField()
	case "type":
		return stringField(e.Type)
	case "data":
		return e.Data
	case "response_code":
		return intField(e.ResponseCode)
	}

	return nil
}

// Attributes implements schema.Entity.
func (e *EventLog) Attributes() map[string]any {
	return columnAttributes(e)
}

// String returns a human-readable description for logs and debugging.
func (e *EventLog) String() string {
	return fmt.Sprintf("<EventLog(id=%d type=%q data=%v response_code=%v created_at=%q)>",
		e.ID, e.Type, e.Data, intField(e.ResponseCode), util.FormatDateTime(e.CreatedAt))
}
