package schema

import (
	"testing"
	"time"

	domainerrors "portal/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeCompatible(t *testing.T) {
	instant := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name  string
		value any
		ct    ColumnType
		want  bool
	}{
		{name: "nil is compatible with anything", value: nil, ct: TypeBoolean, want: true},
		{name: "string to varchar", value: "hub", ct: TypeString, want: true},
		{name: "string to text", value: "hub", ct: TypeText, want: true},
		{name: "int to varchar", value: 3, ct: TypeString, want: false},
		{name: "int to integer", value: 3, ct: TypeInteger, want: true},
		{name: "int64 to bigint", value: int64(3), ct: TypeBigInt, want: true},
		{name: "uint to integer", value: uint(3), ct: TypeInteger, want: true},
		{name: "float to integer", value: 3.5, ct: TypeInteger, want: false},
		{name: "float to float", value: 3.5, ct: TypeFloat, want: true},
		{name: "int widens to float", value: 3, ct: TypeFloat, want: true},
		{name: "float32 to double", value: float32(3.5), ct: TypeDouble, want: true},
		{name: "int widens to decimal", value: 3, ct: TypeDecimal, want: true},
		{name: "float to decimal", value: 3.5, ct: TypeDecimal, want: true},
		{name: "string to decimal", value: "3.5", ct: TypeDecimal, want: false},
		{name: "bool to boolean", value: true, ct: TypeBoolean, want: true},
		{name: "integer one is not a boolean", value: 1, ct: TypeBoolean, want: false},
		{name: "bool to varchar", value: true, ct: TypeString, want: false},
		{name: "time to datetime", value: instant, ct: TypeDateTime, want: true},
		{name: "string to datetime", value: "2024-01-15", ct: TypeDateTime, want: false},
		{name: "anything to json", value: map[string]any{"k": 1}, ct: TypeJSON, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TypeCompatible(tt.value, tt.ct))
		})
	}
}

// testDescriptor is a small table definition exercising every helper path,
// including a private bookkeeping column.
func testDescriptor() *Descriptor {
	return &Descriptor{
		Table: "probe",
		Columns: []Column{
			{Name: "id", Type: TypeBigInt},
			{Name: "name", Type: TypeString, Nullable: true},
			{Name: "status", Type: TypeBoolean, Nullable: true},
			{Name: "reading", Type: TypeDecimal, Nullable: true},
			{Name: "created_at", Type: TypeDateTime, Nullable: true},
			{Name: "_revision", Type: TypeInteger, Nullable: true},
		},
		Relations: []Relation{
			{
				Name:      "gateway",
				Column:    "gateway_id",
				RefTable:  "gateway",
				RefColumn: "id",
				OnDelete:  Cascade,
				OnUpdate:  Cascade,
			},
		},
	}
}

func TestValidate_AcceptsCompatibleValues(t *testing.T) {
	record := NewRecord(testDescriptor())
	require.NoError(t, record.Set("id", int64(7)))
	require.NoError(t, record.Set("name", "living room"))
	require.NoError(t, record.Set("status", true))
	require.NoError(t, record.Set("reading", 21))
	require.NoError(t, record.Set("created_at", time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)))

	assert.NoError(t, Validate(record))
}

func TestValidate_RejectsIntegerAsBoolean(t *testing.T) {
	record := NewRecord(testDescriptor())
	require.NoError(t, record.Set("status", 1))

	err := Validate(record)
	require.Error(t, err)

	var invalid *domainerrors.InvalidParameterError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "status", invalid.Column)
	assert.Equal(t, "BOOLEAN", invalid.ColumnType)
	assert.Equal(t, "column status value 1 type is unexpected: BOOLEAN", err.Error())
}

func TestValidate_SkipsUnsetColumns(t *testing.T) {
	record := NewRecord(testDescriptor())
	require.NoError(t, record.Set("name", "hall"))

	assert.NoError(t, Validate(record))
}

func TestToDict_OmitsUnsetAndPrivateColumns(t *testing.T) {
	record := NewRecord(testDescriptor())
	require.NoError(t, record.Set("id", int64(7)))
	require.NoError(t, record.Set("status", true))
	require.NoError(t, record.Set("_revision", 3))

	dict := ToDict(record)
	assert.Equal(t, map[string]any{
		"id":     int64(7),
		"status": true,
	}, dict)
}

func TestToDict_FormatsTimestamps(t *testing.T) {
	record := NewRecord(testDescriptor())
	require.NoError(t, record.Set("created_at", time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)))

	dict := ToDict(record)
	assert.Equal(t, "2024-01-15 10:30:00", dict["created_at"])
}

func TestJoinToDict_ExpandsRelatedEntityOneLevel(t *testing.T) {
	inner := NewRecord(testDescriptor())
	require.NoError(t, inner.Set("name", "parent"))

	outer := NewRecord(testDescriptor())
	require.NoError(t, outer.Set("name", "child"))
	require.NoError(t, outer.Set("gateway", inner))

	dict := JoinToDict(outer)
	assert.Equal(t, "child", dict["name"])
	assert.Equal(t, map[string]any{"name": "parent"}, dict["gateway"])
}

func TestJoinToDictRecurse_ExpandsNestedEntities(t *testing.T) {
	innermost := NewRecord(testDescriptor())
	require.NoError(t, innermost.Set("name", "grandparent"))

	inner := NewRecord(testDescriptor())
	require.NoError(t, inner.Set("name", "parent"))
	require.NoError(t, inner.Set("gateway", innermost))

	outer := NewRecord(testDescriptor())
	require.NoError(t, outer.Set("name", "child"))
	require.NoError(t, outer.Set("gateway", inner))

	dict := JoinToDictRecurse(outer)
	parent, ok := dict["gateway"].(map[string]any)
	require.True(t, ok)
	grandparent, ok := parent["gateway"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "grandparent", grandparent["name"])
}
