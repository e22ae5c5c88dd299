package schema

import (
	"reflect"
	"time"

	domainerrors "portal/internal/domain/errors"
	"portal/internal/util"
)

// nativeKind buckets column types by the runtime representation they accept.
type nativeKind int

const (
	kindNone nativeKind = iota // no single native representation, permissive
	kindString
	kindInt
	kindFloat
	kindDecimal
	kindBool
	kindTime
)

var columnKinds = map[ColumnType]nativeKind{
	TypeString:   kindString,
	TypeText:     kindString,
	TypeInteger:  kindInt,
	TypeBigInt:   kindInt,
	TypeFloat:    kindFloat,
	TypeDouble:   kindFloat,
	TypeDecimal:  kindDecimal,
	TypeBoolean:  kindBool,
	TypeDateTime: kindTime,
	TypeJSON:     kindNone,
}

// TypeCompatible reports whether a runtime value may legally populate a
// column of the given declared type. The policy is deliberately asymmetric:
// numeric columns widen (integers satisfy FLOAT and DECIMAL) while BOOLEAN is
// strict, so an integer 1 never passes as a boolean. Nil is always compatible;
// nullability is enforced by storage constraints, not here.
func TypeCompatible(value any, ct ColumnType) bool {
	if value == nil {
		return true
	}

	kind, known := columnKinds[ct]
	if !known || kind == kindNone {
		return true
	}

	rv := reflect.ValueOf(value)
	switch kind {
	case kindDecimal:
		return isIntegral(rv) || isFloat(rv)
	case kindString:
		return rv.Kind() == reflect.String
	case kindInt:
		return isIntegral(rv)
	case kindFloat:
		return isFloat(rv) || isIntegral(rv)
	case kindBool:
		return rv.Kind() == reflect.Bool
	case kindTime:
		_, ok := value.(time.Time)

		return ok
	}

	return false
}

func isIntegral(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	default:
		return false
	}
}

func isFloat(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// Validate checks every declared column of the entity against its declared
// type and returns an InvalidParameterError for the first incompatible one.
// It has no side effects.
func Validate(e Entity) error {
	desc := e.Describe()
	for _, col := range desc.Columns {
		value := e.Field(col.Name)
		if !TypeCompatible(value, col.Type) {
			return domainerrors.NewInvalidParameter(col.Name, value, col.Type.String())
		}
	}

	return nil
}

// ToDict projects the declared columns of an entity into a flat string-keyed
// map suitable for an API response body. Unset columns are omitted rather
// than emitted as null, private columns are skipped, and timestamps are
// rendered through the canonical datetime format. Foreign keys appear only as
// their stored scalar values; relations are not expanded.
func ToDict(e Entity) map[string]any {
	desc := e.Describe()
	out := make(map[string]any, len(desc.Columns))
	for _, col := range desc.Columns {
		if isPrivate(col.Name) {
			continue
		}
		value := e.Field(col.Name)
		if value == nil {
			continue
		}
		out[col.Name] = renderScalar(value)
	}

	return out
}

// JoinToDict is like ToDict but projects from the entity's full runtime
// attribute set, including populated relation attributes. A related entity is
// replaced by its own ToDict projection; the expansion stops at one level.
func JoinToDict(e Entity) map[string]any {
	return joinAttributes(e, ToDict)
}

// JoinToDictRecurse is like JoinToDict except related entities are expanded
// recursively to unbounded depth.
//
// The relationship graph must be acyclic: a populated back-reference makes
// this recursion non-terminating, and no cycle detection is attempted.
func JoinToDictRecurse(e Entity) map[string]any {
	return joinAttributes(e, JoinToDictRecurse)
}

func joinAttributes(e Entity, expand func(Entity) map[string]any) map[string]any {
	attrs := e.Attributes()
	out := make(map[string]any, len(attrs))
	for name, value := range attrs {
		if isPrivate(name) || value == nil {
			continue
		}
		if related, ok := value.(Entity); ok {
			out[name] = expand(related)

			continue
		}
		out[name] = renderScalar(value)
	}

	return out
}

func renderScalar(value any) any {
	if t, ok := value.(time.Time); ok {
		return util.FormatDateTime(t)
	}

	return value
}
