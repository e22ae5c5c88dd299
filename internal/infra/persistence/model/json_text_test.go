package model

import (
	"testing"

	domainerrors "portal/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONText_ValueEncodesInnerValue(t *testing.T) {
	value, err := JSONText{V: map[string]any{"action": "reboot"}}.Value()
	require.NoError(t, err)
	assert.Equal(t, `{"action":"reboot"}`, value)
}

func TestJSONText_NilStoresNull(t *testing.T) {
	value, err := JSONText{}.Value()
	require.NoError(t, err)
	assert.Nil(t, value)

	var scanned JSONText
	require.NoError(t, scanned.Scan(nil))
	assert.Nil(t, scanned.V)
}

func TestJSONText_ScanRoundTrip(t *testing.T) {
	original := JSONText{V: map[string]any{"retries": float64(2)}}
	value, err := original.Value()
	require.NoError(t, err)

	var scanned JSONText
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, original.V, scanned.V)
}

func TestJSONText_ScanAcceptsBytes(t *testing.T) {
	var scanned JSONText
	require.NoError(t, scanned.Scan([]byte(`{"action":"reboot"}`)))
	assert.Equal(t, map[string]any{"action": "reboot"}, scanned.V)
}

func TestJSONText_ScanMalformedText(t *testing.T) {
	var scanned JSONText
	err := scanned.Scan(`{"action": `)
	require.Error(t, err)

	var deserErr *domainerrors.DeserializationError
	assert.ErrorAs(t, err, &deserErr)
}
