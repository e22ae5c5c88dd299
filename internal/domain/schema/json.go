package schema

import (
	"encoding/json"

	domainerrors "portal/internal/domain/errors"
)

// EncodeJSON serializes an arbitrary structured value into the single text
// form persisted for JSON columns. Nil maps to nil (stored as SQL NULL).
// Unencodable values (cycles, channels, functions) yield a SerializationError.
func EncodeJSON(value any) (*string, error) {
	if value == nil {
		return nil, nil
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return nil, domainerrors.NewSerializationError(err)
	}
	encoded := string(raw)

	return &encoded, nil
}

// DecodeJSON parses persisted JSON text back into its structured value.
// Nil maps to nil; malformed text yields a DeserializationError.
//
// Round-trip: DecodeJSON(EncodeJSON(v)) is structurally equal to v, with
// numbers decoded as float64 per encoding/json defaults.
func DecodeJSON(encoded *string) (any, error) {
	if encoded == nil {
		return nil, nil
	}

	var value any
	if err := json.Unmarshal([]byte(*encoded), &value); err != nil {
		return nil, domainerrors.NewDeserializationError(err)
	}

	return value, nil
}
