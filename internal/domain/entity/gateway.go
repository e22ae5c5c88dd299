package entity

import (
	"fmt"

	"portal/internal/domain/schema"
	"portal/internal/util"
)

// Gateway is a registered home gateway: the physical hub every sensor reading
// and portal user hangs off. Deleting a gateway cascades to its dependents.
type Gateway struct {
	Defaults
	Name      string
	URL       string
	Address   string
	Latitude  string
	Longitude string
	Status    *bool
}

var gatewayDescriptor = &schema.Descriptor{
	Table: "gateway",
	Columns: append(defaultColumns(),
		schema.Column{Name: "name", Type: schema.TypeString, Nullable: true},
		schema.Column{Name: "url", Type: schema.TypeString, Nullable: true},
		schema.Column{Name: "address", Type: schema.TypeString, Nullable: true},
		schema.Column{Name: "latitude", Type: schema.TypeString, Nullable: true},
		schema.Column{Name: "longitude", Type: schema.TypeString, Nullable: true},
		schema.Column{Name: "status", Type: schema.TypeBoolean, Nullable: true},
	),
}

// NewGateway builds an in-memory gateway. The identifier is assigned by the
// storage layer on first persistence.
func NewGateway(name, url, address, latitude, longitude string, status bool) *Gateway {
	return &Gateway{
		Defaults:  newDefaults(),
		Name:      name,
		URL:       url,
		Address:   address,
		Latitude:  latitude,
		Longitude: longitude,
		Status:    &status,
	}
}

// Describe implements schema.Entity.
func (g *Gateway) Describe() *schema.Descriptor {
	return gatewayDescriptor
}

// Field implements schema.Entity.
func (g *Gateway) Field(name string) any {
	switch name {
	case "id":
		return g.idField()
	case "created_at":
		return g.createdAtField()
	case "name":
		return stringField(g.Name)
	case "url":
		return stringField(g.URL)
	case "address":
		return stringField(g.Address)
	case "latitude":
		return stringField(g.Latitude)
	case "longitude":
		return stringField(g.Longitude)
	case "status":
		return boolField(g.Status)
	}

	return nil
}

// Attributes implements schema.Entity.
func (g *Gateway) Attributes() map[string]any {
	return columnAttributes(g)
}

// String returns a human-readable description for logs and debugging.
func (g *Gateway) String() string {
	return fmt.Sprintf("<Gateway(id=%d name=%q url=%q address=%q latitude=%q longitude=%q created_at=%q)>",
		g.ID, g.Name, g.URL, g.Address, g.Latitude, g.Longitude, util.FormatDateTime(g.CreatedAt))
}
