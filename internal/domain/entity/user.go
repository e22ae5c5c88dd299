package entity

import (
	"fmt"

	"portal/internal/domain/schema"
	"portal/internal/util"
)

// User is a portal account bound to exactly one gateway.
type User struct {
	Defaults
	Username  string
	Password  string
	Phone     string
	GatewayID int64

	// Gateway is the joined parent row, populated by repository preloads.
	Gateway *Gateway
}

var userDescriptor = &schema.Descriptor{
	Table: "user",
	Columns: append(defaultColumns(),
		schema.Column{Name: "username", Type: schema.TypeString, Nullable: true},
		schema.Column{Name: "password", Type: schema.TypeString, Nullable: true},
		schema.Column{Name: "phone", Type: schema.TypeString, Nullable: true},
		schema.Column{Name: "gateway_id", Type: schema.TypeBigInt},
	),
	Relations: []schema.Relation{gatewayRelation()},
}

// NewUser builds an in-memory user account.
func NewUser(username, password string, gatewayID int64) *User {
	return &User{
		Defaults:  newDefaults(),
		Username:  username,
		Password:  password,
		GatewayID: gatewayID,
	}
}

// Describe implements schema.Entity.
func (u *User) Describe() *schema.Descriptor {
	return userDescriptor
}

// Field implements schema.Entity.
func (u *User) Field(name string) any {
	switch name {
	case "id":
		return u.idField()
	case "created_at":
		return u.createdAtField()
	case "username":
		return stringField(u.Username)
	case "password":
		return stringField(u.Password)
	case "phone":
		return stringField(u.Phone)
	case "gateway_id":
		return idField(u.GatewayID)
	}

	return nil
}

// Attributes implements schema.Entity.
func (u *User) Attributes() map[string]any {
	attrs := columnAttributes(u)
	if u.Gateway != nil {
		attrs["gateway"] = u.Gateway
	}

	return attrs
}

// String returns a human-readable description for logs and debugging.
func (u *User) String() string {
	return fmt.Sprintf("<User(id=%d username=%q gateway_id=%d created_at=%q)>",
		u.ID, u.Username, u.GatewayID, util.FormatDateTime(u.CreatedAt))
}
