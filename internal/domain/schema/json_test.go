package schema

import (
	"testing"

	domainerrors "portal/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeJSON_NilMapsToNil(t *testing.T) {
	encoded, err := EncodeJSON(nil)
	require.NoError(t, err)
	assert.Nil(t, encoded)
}

func TestEncodeJSON_UnencodableValue(t *testing.T) {
	encoded, err := EncodeJSON(make(chan int))
	require.Error(t, err)
	assert.Nil(t, encoded)

	var serErr *domainerrors.SerializationError
	assert.ErrorAs(t, err, &serErr)
}

func TestDecodeJSON_NilMapsToNil(t *testing.T) {
	value, err := DecodeJSON(nil)
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestDecodeJSON_MalformedText(t *testing.T) {
	malformed := `{"action": `
	value, err := DecodeJSON(&malformed)
	require.Error(t, err)
	assert.Nil(t, value)

	var deserErr *domainerrors.DeserializationError
	assert.ErrorAs(t, err, &deserErr)
}

func TestJSONRoundTrip(t *testing.T) {
	original := map[string]any{
		"action":  "reboot",
		"retries": float64(2),
		"tags":    []any{"urgent", "ops"},
	}

	encoded, err := EncodeJSON(original)
	require.NoError(t, err)
	require.NotNil(t, encoded)

	decoded, err := DecodeJSON(encoded)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}
