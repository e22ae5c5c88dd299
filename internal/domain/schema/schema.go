// Package schema describes entity tables as static descriptors and provides
// the generic validation and projection behavior shared by every entity type.
// The descriptor replaces runtime model introspection: each entity reports
// its own table identity, column list and relations through Describe.
package schema

import "strings"

// ColumnType is the declared semantic type of a column.
type ColumnType int

// Declared column types. They mirror the storage-side column definitions,
// not Go types; TypeCompatible maps them onto runtime values.
const (
	TypeString ColumnType = iota // bounded VARCHAR
	TypeText                     // unbounded text
	TypeInteger
	TypeBigInt
	TypeFloat
	TypeDouble
	TypeDecimal
	TypeBoolean
	TypeDateTime
	TypeJSON // opaque JSON-encoded text, no single native representation
)

var columnTypeNames = map[ColumnType]string{
	TypeString:   "VARCHAR",
	TypeText:     "TEXT",
	TypeInteger:  "INTEGER",
	TypeBigInt:   "BIGINT",
	TypeFloat:    "FLOAT",
	TypeDouble:   "DOUBLE",
	TypeDecimal:  "DECIMAL",
	TypeBoolean:  "BOOLEAN",
	TypeDateTime: "DATETIME",
	TypeJSON:     "JSON",
}

// String returns the storage-level name of the column type.
func (ct ColumnType) String() string {
	if name, ok := columnTypeNames[ct]; ok {
		return name
	}

	return "UNKNOWN"
}

// ReferentialAction is the cascade policy of a foreign key.
type ReferentialAction string

// Cascade is the only policy used in this schema: parent deletes and updates
// propagate to dependent rows.
const Cascade ReferentialAction = "CASCADE"

// Column is one declared field of an entity table.
type Column struct {
	Name     string
	Type     ColumnType
	Nullable bool
}

// Relation is a named foreign-key reference to another entity table.
type Relation struct {
	Name      string // attribute name on the entity, e.g. "gateway"
	Column    string // local column holding the reference
	RefTable  string
	RefColumn string
	OnDelete  ReferentialAction
	OnUpdate  ReferentialAction
}

// Descriptor is the static schema of one entity table. Pure data; it is
// consumed by the storage layer for referential integrity and by the helper
// functions for validation and projection.
type Descriptor struct {
	Table     string
	Columns   []Column
	Relations []Relation
}

// Column returns the declared column with the given name.
func (d *Descriptor) Column(name string) (Column, bool) {
	for _, col := range d.Columns {
		if col.Name == name {
			return col, true
		}
	}

	return Column{}, false
}

// ColumnNames returns the declared column names in declaration order.
func (d *Descriptor) ColumnNames() []string {
	names := make([]string, 0, len(d.Columns))
	for _, col := range d.Columns {
		names = append(names, col.Name)
	}

	return names
}

// Entity is the capability every portal entity implements. Field returns the
// current value of a declared column as an untyped value, or nil when the
// column is unset. Attributes returns the full runtime attribute set,
// including populated relation attributes beyond the declared columns.
type Entity interface {
	Describe() *Descriptor
	Field(name string) any
	Attributes() map[string]any
}

// privatePrefix marks implementation-private attributes that never appear in
// projections.
const privatePrefix = "_"

func isPrivate(name string) bool {
	return strings.HasPrefix(name, privatePrefix)
}
