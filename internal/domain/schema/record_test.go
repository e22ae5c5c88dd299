package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord_SetRejectsUnknownNames(t *testing.T) {
	record := NewRecord(testDescriptor())

	err := record.Set("nmae", "typo")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "probe")
	assert.Contains(t, err.Error(), "nmae")
}

func TestRecord_SetAcceptsRelationNames(t *testing.T) {
	record := NewRecord(testDescriptor())

	require.NoError(t, record.Set("gateway", NewRecord(testDescriptor())))
}

func TestRecord_GetUnsetReturnsNil(t *testing.T) {
	record := NewRecord(testDescriptor())

	assert.Nil(t, record.Get("name"))
	assert.Nil(t, record.Field("name"))
}

func TestRecord_AttributesReturnsCopy(t *testing.T) {
	record := NewRecord(testDescriptor())
	require.NoError(t, record.Set("name", "hall"))

	attrs := record.Attributes()
	attrs["name"] = "mutated"

	assert.Equal(t, "hall", record.Get("name"))
}
