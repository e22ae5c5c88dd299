package model

import "time"

// The per-sensor reading tables. Each row belongs to one gateway and one
// resource (referenced by its 40-character UUID); parent deletes and updates
// cascade uniformly.

// FanModel mirrors the 'fan' table.
type FanModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	UUID      string `gorm:"type:varchar(40);not null;column:uuid"`
	Status    *bool
	GatewayID int64 `gorm:"not null"`
	CreatedAt time.Time

	Gateway  *GatewayModel  `gorm:"foreignKey:GatewayID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Resource *ResourceModel `gorm:"foreignKey:UUID;references:UUID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (FanModel) TableName() string {
	return "fan"
}

// ButtonModel mirrors the 'button' table.
type ButtonModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	UUID      string `gorm:"type:varchar(40);not null;column:uuid"`
	Status    *bool
	GatewayID int64 `gorm:"not null"`
	CreatedAt time.Time

	Gateway  *GatewayModel  `gorm:"foreignKey:GatewayID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Resource *ResourceModel `gorm:"foreignKey:UUID;references:UUID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ButtonModel) TableName() string {
	return "button"
}

// LedModel mirrors the 'led' table.
type LedModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	UUID      string `gorm:"type:varchar(40);not null;column:uuid"`
	Status    *bool
	GatewayID int64 `gorm:"not null"`
	CreatedAt time.Time

	Gateway  *GatewayModel  `gorm:"foreignKey:GatewayID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Resource *ResourceModel `gorm:"foreignKey:UUID;references:UUID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (LedModel) TableName() string {
	return "led"
}

// BuzzerModel mirrors the 'buzzer' table.
type BuzzerModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	UUID      string `gorm:"type:varchar(40);not null;column:uuid"`
	Status    *bool
	GatewayID int64 `gorm:"not null"`
	CreatedAt time.Time

	Gateway  *GatewayModel  `gorm:"foreignKey:GatewayID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Resource *ResourceModel `gorm:"foreignKey:UUID;references:UUID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (BuzzerModel) TableName() string {
	return "buzzer"
}

// MotionModel mirrors the 'motion' table.
type MotionModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	UUID      string `gorm:"type:varchar(40);not null;column:uuid"`
	Status    *bool
	GatewayID int64 `gorm:"not null"`
	CreatedAt time.Time

	Gateway  *GatewayModel  `gorm:"foreignKey:GatewayID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Resource *ResourceModel `gorm:"foreignKey:UUID;references:UUID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (MotionModel) TableName() string {
	return "motion"
}

// GasModel mirrors the 'gas' table.
type GasModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	UUID      string `gorm:"type:varchar(40);not null;column:uuid"`
	Status    *bool
	GatewayID int64 `gorm:"not null"`
	CreatedAt time.Time

	Gateway  *GatewayModel  `gorm:"foreignKey:GatewayID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Resource *ResourceModel `gorm:"foreignKey:UUID;references:UUID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (GasModel) TableName() string {
	return "gas"
}

// TemperatureModel mirrors the 'temperature' table.
type TemperatureModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	UUID        string `gorm:"type:varchar(40);not null;column:uuid"`
	Temperature *float64
	Units       string `gorm:"type:varchar(10)"`
	Range       string `gorm:"type:varchar(20);column:range"`
	GatewayID   int64  `gorm:"not null"`
	CreatedAt   time.Time

	Gateway  *GatewayModel  `gorm:"foreignKey:GatewayID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Resource *ResourceModel `gorm:"foreignKey:UUID;references:UUID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (TemperatureModel) TableName() string {
	return "temperature"
}

// RgbledModel mirrors the 'rgbled' table.
type RgbledModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	UUID      string `gorm:"type:varchar(40);not null;column:uuid"`
	RGBValue  string `gorm:"type:varchar(20);column:rgbvalue"`
	Range     string `gorm:"type:varchar(20);column:range"`
	GatewayID int64  `gorm:"not null"`
	CreatedAt time.Time

	Gateway  *GatewayModel  `gorm:"foreignKey:GatewayID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Resource *ResourceModel `gorm:"foreignKey:UUID;references:UUID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (RgbledModel) TableName() string {
	return "rgbled"
}

// IlluminanceModel mirrors the 'illuminance' table.
type IlluminanceModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	UUID        string `gorm:"type:varchar(40);not null;column:uuid"`
	Illuminance *float64
	GatewayID   int64 `gorm:"not null"`
	CreatedAt   time.Time

	Gateway  *GatewayModel  `gorm:"foreignKey:GatewayID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Resource *ResourceModel `gorm:"foreignKey:UUID;references:UUID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (IlluminanceModel) TableName() string {
	return "illuminance"
}

// SolarModel mirrors the 'solar' table.
type SolarModel struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	UUID           string `gorm:"type:varchar(40);not null;column:uuid"`
	Status         *bool
	GatewayID      int64    `gorm:"not null"`
	TiltPercentage *float64 `gorm:"column:tiltpercentage"`
	LCDFirst       string   `gorm:"type:varchar(30);column:lcd_first"`
	LCDSecond      string   `gorm:"type:varchar(30);column:lcd_second"`
	CreatedAt      time.Time

	Gateway  *GatewayModel  `gorm:"foreignKey:GatewayID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Resource *ResourceModel `gorm:"foreignKey:UUID;references:UUID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (SolarModel) TableName() string {
	return "solar"
}

// PowerModel mirrors the 'power' table.
type PowerModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	UUID      string `gorm:"type:varchar(40);not null;column:uuid"`
	Value     *int64
	GatewayID int64 `gorm:"not null"`
	CreatedAt time.Time

	Gateway  *GatewayModel  `gorm:"foreignKey:GatewayID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Resource *ResourceModel `gorm:"foreignKey:UUID;references:UUID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (PowerModel) TableName() string {
	return "power"
}

// EnergyModel mirrors the 'energy' table.
type EnergyModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	UUID      string `gorm:"type:varchar(40);not null;column:uuid"`
	Value     *int64
	GatewayID int64 `gorm:"not null"`
	CreatedAt time.Time

	Gateway  *GatewayModel  `gorm:"foreignKey:GatewayID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Resource *ResourceModel `gorm:"foreignKey:UUID;references:UUID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (EnergyModel) TableName() string {
	return "energy"
}

// SmsHistoryModel mirrors the 'sms_history' table.
type SmsHistoryModel struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	GatewayID int64 `gorm:"not null"`
	UUID      string `gorm:"type:varchar(40);not null;column:uuid"`
	CreatedAt time.Time

	Gateway  *GatewayModel  `gorm:"foreignKey:GatewayID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Resource *ResourceModel `gorm:"foreignKey:UUID;references:UUID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (SmsHistoryModel) TableName() string {
	return "sms_history"
}
