package entity

import (
	"strings"
	"testing"
	"time"

	"portal/internal/domain/schema"

	domainerrors "portal/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testInstant = time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

func boolPtr(b bool) *bool {
	return &b
}

func TestNewResource_GeneratesUUIDWhenMissing(t *testing.T) {
	resource := NewResource("", 1, "/fan/0", nil)

	assert.NotEmpty(t, resource.UUID)
	assert.LessOrEqual(t, len(resource.UUID), 40)

	supplied := NewResource(strings.Repeat("a", 40), 1, "/fan/0", nil)
	assert.Equal(t, strings.Repeat("a", 40), supplied.UUID)
}

func TestNewGateway_StampsCreationTime(t *testing.T) {
	before := time.Now().UTC().Add(-time.Second)
	gateway := NewGateway("home", "http://hub.local", "12 Elm St", "24.98", "121.54", true)
	after := time.Now().UTC().Add(time.Second)

	assert.Equal(t, time.UTC, gateway.CreatedAt.Location())
	assert.True(t, gateway.CreatedAt.After(before) && gateway.CreatedAt.Before(after))
	assert.Zero(t, gateway.ID)
}

func TestFan_ToDict(t *testing.T) {
	fan := NewFan(strings.Repeat("a", 40), boolPtr(true), 7)
	fan.CreatedAt = testInstant

	dict := schema.ToDict(fan)
	assert.Equal(t, map[string]any{
		"uuid":       strings.Repeat("a", 40),
		"status":     true,
		"gateway_id": int64(7),
		"created_at": "2024-01-15 10:30:00",
	}, dict)
}

func TestToDict_OmitsUnsetColumns(t *testing.T) {
	fan := NewFan("abc", nil, 0)
	fan.CreatedAt = time.Time{}

	dict := schema.ToDict(fan)
	assert.Equal(t, map[string]any{"uuid": "abc"}, dict)
}

func TestJoinToDict_ExpandsRelationsOneLevel(t *testing.T) {
	sensorType := NewSensorType("fan")
	sensorType.ID = 3

	resource := NewResource(strings.Repeat("a", 40), 3, "/fan/0", boolPtr(true))
	resource.CreatedAt = testInstant
	resource.GatewayID = 7
	resource.SensorType = sensorType

	fan := NewFan(strings.Repeat("a", 40), boolPtr(true), 7)
	fan.CreatedAt = testInstant
	fan.Resource = resource

	dict := schema.JoinToDict(fan)

	resourceDict, ok := dict["resource"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "/fan/0", resourceDict["path"])

	// One level only: the resource's own relations stay collapsed to their
	// scalar foreign keys.
	assert.NotContains(t, resourceDict, "sensor_type")
	assert.Equal(t, int64(3), resourceDict["sensor_type_id"])
}

func TestJoinToDictRecurse_ExpandsNestedRelations(t *testing.T) {
	sensorType := NewSensorType("temperature")
	sensorType.ID = 5

	resource := NewResource(strings.Repeat("b", 40), 5, "/temperature/0", boolPtr(true))
	resource.CreatedAt = testInstant
	resource.SensorType = sensorType

	reading := NewTemperature(strings.Repeat("b", 40), nil, "celsius", "-40,125", 7)
	reading.CreatedAt = testInstant
	reading.Resource = resource

	dict := schema.JoinToDictRecurse(reading)

	resourceDict, ok := dict["resource"].(map[string]any)
	require.True(t, ok)
	sensorTypeDict, ok := resourceDict["sensor_type"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "temperature", sensorTypeDict["type"])
}

func TestValidate_AllEntitiesAreWellTyped(t *testing.T) {
	entities := []schema.Entity{
		NewGateway("home", "http://hub.local", "12 Elm St", "24.98", "121.54", true),
		NewUser("admin", "secret", 1),
		NewSensorType("fan"),
		NewResource(strings.Repeat("a", 40), 1, "/fan/0", boolPtr(true)),
		NewFan(strings.Repeat("a", 40), boolPtr(true), 1),
		NewButton(strings.Repeat("a", 40), boolPtr(false), 1),
		NewLed(strings.Repeat("a", 40), boolPtr(true), 1),
		NewBuzzer(strings.Repeat("a", 40), boolPtr(false), 1),
		NewMotion(strings.Repeat("a", 40), boolPtr(true), 1),
		NewGas(strings.Repeat("a", 40), boolPtr(false), 1),
		NewTemperature(strings.Repeat("a", 40), floatPtrForTest(22.5), "celsius", "-40,125", 1),
		NewRgbled(strings.Repeat("a", 40), "255,0,0", "0,255", 1),
		NewIlluminance(strings.Repeat("a", 40), floatPtrForTest(420), 1),
		NewSolar(strings.Repeat("a", 40), boolPtr(true), 1, floatPtrForTest(35), "line one", "line two"),
		NewPower(strings.Repeat("a", 40), intPtrForTest(230), 1),
		NewEnergy(strings.Repeat("a", 40), intPtrForTest(1500), 1),
		NewEventLog("device", map[string]any{"action": "reboot"}, intPtrForTest(200)),
		NewSmsHistory(strings.Repeat("a", 40), 1),
	}

	for _, e := range entities {
		assert.NoError(t, schema.Validate(e), "table %s", e.Describe().Table)
	}
}

func TestValidate_RejectsBadlyTypedPayload(t *testing.T) {
	record := schema.NewRecord(NewFan("", nil, 0).Describe())
	require.NoError(t, record.Set("status", 1))

	err := schema.Validate(record)
	require.Error(t, err)

	var invalid *domainerrors.InvalidParameterError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "status", invalid.Column)
}

func TestDescriptors_DeclareCascadePolicy(t *testing.T) {
	fan := NewFan("", nil, 0)
	desc := fan.Describe()

	require.Len(t, desc.Relations, 2)
	for _, rel := range desc.Relations {
		assert.Equal(t, schema.Cascade, rel.OnDelete)
		assert.Equal(t, schema.Cascade, rel.OnUpdate)
	}

	resourceRel := desc.Relations[1]
	assert.Equal(t, "resource", resourceRel.RefTable)
	assert.Equal(t, "uuid", resourceRel.RefColumn)
}

func TestGateway_String(t *testing.T) {
	gateway := NewGateway("home", "http://hub.local", "12 Elm St", "24.98", "121.54", true)
	gateway.ID = 7
	gateway.CreatedAt = testInstant

	s := gateway.String()
	assert.Contains(t, s, "<Gateway(id=7")
	assert.Contains(t, s, `name="home"`)
	assert.Contains(t, s, "2024-01-15 10:30:00")
}

func floatPtrForTest(f float64) *float64 {
	return &f
}

func intPtrForTest(i int64) *int64 {
	return &i
}
