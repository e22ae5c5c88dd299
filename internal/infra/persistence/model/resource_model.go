package model

import "time"

// SensorTypeModel mirrors the 'sensor_type' lookup table. It is seeded once
// and carries no creation timestamp.
type SensorTypeModel struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Type string `gorm:"type:varchar(20);not null"`
}

// TableName explicitly sets the table name for GORM.
func (SensorTypeModel) TableName() string {
	return "sensor_type"
}

// ResourceModel mirrors the 'resource' table. The UUID is indexed but not
// unique on its own; one physical device is the (uuid, gateway) pair. The
// reading tables reference resources by UUID.
type ResourceModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	UUID         string `gorm:"type:varchar(40);not null;index;column:uuid"`
	SensorTypeID int64  `gorm:"not null"`
	Status       *bool
	GatewayID    int64  `gorm:"not null"`
	Path         string `gorm:"type:varchar(60);not null"`
	CreatedAt    time.Time

	SensorType *SensorTypeModel `gorm:"foreignKey:SensorTypeID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Gateway    *GatewayModel    `gorm:"foreignKey:GatewayID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ResourceModel) TableName() string {
	return "resource"
}
