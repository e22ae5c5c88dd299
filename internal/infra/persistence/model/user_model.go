package model

import "time"

// UserModel mirrors the 'user' table. Each account belongs to exactly one
// gateway; deleting the gateway deletes its accounts.
type UserModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Username  string `gorm:"type:varchar(20)"`
	Password  string `gorm:"type:varchar(64)"`
	Phone     string `gorm:"type:varchar(15)"`
	GatewayID int64  `gorm:"not null"`
	CreatedAt time.Time

	Gateway *GatewayModel `gorm:"foreignKey:GatewayID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "user"
}
