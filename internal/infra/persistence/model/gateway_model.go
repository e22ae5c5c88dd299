// Package model contains the GORM-specific table mappings of the portal
// schema. Every foreign key in this schema carries the same referential
// policy: ON DELETE CASCADE, ON UPDATE CASCADE.
package model

import "time"

// GatewayModel mirrors the 'gateway' table.
type GatewayModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"type:varchar(30)"`
	URL       string `gorm:"type:varchar(30);column:url"`
	Address   string `gorm:"type:varchar(50)"`
	Latitude  string `gorm:"type:varchar(20)"`
	Longitude string `gorm:"type:varchar(20)"`
	Status    *bool
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (GatewayModel) TableName() string {
	return "gateway"
}
