package model

import (
	"testing"

	"portal/internal/domain/entity"
	"portal/internal/domain/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tableNamer interface {
	TableName() string
}

// The entity descriptors and the GORM mappings must agree on table identity,
// or projections and storage would silently diverge.
func TestTableNames_MatchEntityDescriptors(t *testing.T) {
	off := false
	value := int64(0)
	reading := 0.0

	pairs := []struct {
		entity schema.Entity
		model  tableNamer
	}{
		{entity.NewGateway("", "", "", "", "", false), GatewayModel{}},
		{entity.NewUser("", "", 0), UserModel{}},
		{entity.NewSensorType(""), SensorTypeModel{}},
		{entity.NewResource("x", 0, "", nil), ResourceModel{}},
		{entity.NewFan("", &off, 0), FanModel{}},
		{entity.NewButton("", &off, 0), ButtonModel{}},
		{entity.NewLed("", &off, 0), LedModel{}},
		{entity.NewBuzzer("", &off, 0), BuzzerModel{}},
		{entity.NewMotion("", &off, 0), MotionModel{}},
		{entity.NewGas("", &off, 0), GasModel{}},
		{entity.NewTemperature("", &reading, "", "", 0), TemperatureModel{}},
		{entity.NewRgbled("", "", "", 0), RgbledModel{}},
		{entity.NewIlluminance("", &reading, 0), IlluminanceModel{}},
		{entity.NewSolar("", &off, 0, &reading, "", ""), SolarModel{}},
		{entity.NewPower("", &value, 0), PowerModel{}},
		{entity.NewEnergy("", &value, 0), EnergyModel{}},
		{entity.NewEventLog("", nil, nil), EventLogModel{}},
		{entity.NewSmsHistory("", 0), SmsHistoryModel{}},
	}

	require.Len(t, pairs, len(All()))
	for _, pair := range pairs {
		assert.Equal(t, pair.model.TableName(), pair.entity.Describe().Table)
	}
}
