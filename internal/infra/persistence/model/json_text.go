package model

import (
	"database/sql/driver"

	"portal/internal/domain/schema"
	"portal/internal/errors"
)

// JSONText persists an arbitrary structured value as a single JSON-encoded
// text column. A nil inner value is stored as SQL NULL. Encoding and decoding
// go through the schema codec, so failures surface as the domain
// serialization errors.
type JSONText struct {
	V any
}

// Value implements driver.Valuer.
func (j JSONText) Value() (driver.Value, error) {
	encoded, err := schema.EncodeJSON(j.V)
	if err != nil {
		return nil, err
	}
	if encoded == nil {
		return nil, nil
	}

	return *encoded, nil
}

// Scan implements sql.Scanner.
func (j *JSONText) Scan(src any) error {
	if src == nil {
		j.V = nil

		return nil
	}

	var text string
	switch s := src.(type) {
	case string:
		text = s
	case []byte:
		text = string(s)
	default:
		return errors.Errorf("unsupported source type %T for JSONText", src)
	}

	decoded, err := schema.DecodeJSON(&text)
	if err != nil {
		return err
	}
	j.V = decoded

	return nil
}
