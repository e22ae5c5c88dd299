package schema

import "portal/internal/errors"

// Record is a dynamic field bag bound to a descriptor. It is the bridge for
// untrusted inbound payloads: values arrive untyped, are validated against
// the declared schema, and only then mapped onto typed entities. Record
// implements Entity, so the helper functions treat it uniformly.
type Record struct {
	desc   *Descriptor
	values map[string]any
}

// NewRecord creates an empty record for the given descriptor.
func NewRecord(desc *Descriptor) *Record {
	return &Record{
		desc:   desc,
		values: make(map[string]any, len(desc.Columns)),
	}
}

// Set stores a raw value under a declared column or a relation attribute
// name. Unknown names are rejected so payload typos surface early.
func (r *Record) Set(name string, value any) error {
	if _, ok := r.desc.Column(name); ok {
		r.values[name] = value

		return nil
	}
	for _, rel := range r.desc.Relations {
		if rel.Name == name {
			r.values[name] = value

			return nil
		}
	}

	return errors.Errorf("table %s has no column or relation %q", r.desc.Table, name)
}

// Get returns the stored value for the name, or nil when unset.
func (r *Record) Get(name string) any {
	return r.values[name]
}

// Describe implements Entity.
func (r *Record) Describe() *Descriptor {
	return r.desc
}

// Field implements Entity.
func (r *Record) Field(name string) any {
	return r.values[name]
}

// Attributes implements Entity. The returned map is a copy.
func (r *Record) Attributes() map[string]any {
	attrs := make(map[string]any, len(r.values))
	for name, value := range r.values {
		attrs[name] = value
	}

	return attrs
}
