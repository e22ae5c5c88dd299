// Package entity contains the persisted record types of the portal: the
// gateway, its registered resources, the per-sensor reading tables and the
// bookkeeping tables. Each entity carries its own schema descriptor and
// implements the schema.Entity capability used by the generic validation and
// projection helpers.
package entity

import (
	"time"

	"portal/internal/domain/schema"
	"portal/internal/util"
)

// Defaults carries the two attributes shared by every persisted entity except
// the static lookup tables: the surrogate identifier assigned by the storage
// layer on first persistence, and the creation timestamp stamped once at
// construction time.
type Defaults struct {
	ID        int64
	CreatedAt time.Time
}

func newDefaults() Defaults {
	return Defaults{CreatedAt: util.UTCNow()}
}

// Initialize is the post-construction hook invoked once after an entity is
// built. It currently only calls Update.
func (d *Defaults) Initialize() {
	d.Update()
}

// Update is a no-op extension point.
func (d *Defaults) Update() {}

func (d *Defaults) idField() any {
	if d.ID == 0 {
		return nil
	}

	return d.ID
}

func (d *Defaults) createdAtField() any {
	if d.CreatedAt.IsZero() {
		return nil
	}

	return d.CreatedAt
}

// defaultColumns returns the column declarations contributed by Defaults.
func defaultColumns() []schema.Column {
	return []schema.Column{
		{Name: "id", Type: schema.TypeBigInt},
		{Name: "created_at", Type: schema.TypeDateTime, Nullable: true},
	}
}

func gatewayRelation() schema.Relation {
	return schema.Relation{
		Name:      "gateway",
		Column:    "gateway_id",
		RefTable:  "gateway",
		RefColumn: "id",
		OnDelete:  schema.Cascade,
		OnUpdate:  schema.Cascade,
	}
}

func resourceRelation() schema.Relation {
	return schema.Relation{
		Name:      "resource",
		Column:    "uuid",
		RefTable:  "resource",
		RefColumn: "uuid",
		OnDelete:  schema.Cascade,
		OnUpdate:  schema.Cascade,
	}
}

// Field value helpers. Unset values project as nil so they are omitted from
// dictionary projections; the empty string and zero identifier count as unset.

func stringField(s string) any {
	if s == "" {
		return nil
	}

	return s
}

func idField(v int64) any {
	if v == 0 {
		return nil
	}

	return v
}

func boolField(b *bool) any {
	if b == nil {
		return nil
	}

	return *b
}

func floatField(f *float64) any {
	if f == nil {
		return nil
	}

	return *f
}

func intField(i *int64) any {
	if i == nil {
		return nil
	}

	return *i
}

// columnAttributes collects the set column values of an entity, the common
// part of every Attributes implementation.
func columnAttributes(e schema.Entity) map[string]any {
	desc := e.Describe()
	attrs := make(map[string]any, len(desc.Columns))
	for _, col := range desc.Columns {
		if value := e.Field(col.Name); value != nil {
			attrs[col.Name] = value
		}
	}

	return attrs
}
