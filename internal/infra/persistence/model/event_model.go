package model

import "time"

// EventLogModel mirrors the 'eventlog' table. The event payload is persisted
// as JSON-encoded text through JSONText.
type EventLogModel struct {
	ID           int64    `gorm:"primaryKey;autoIncrement"`
	Type         string   `gorm:"type:varchar(10)"`
	Data         JSONText `gorm:"type:varchar(100)"`
	ResponseCode *int64
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (EventLogModel) TableName() string {
	return "eventlog"
}
