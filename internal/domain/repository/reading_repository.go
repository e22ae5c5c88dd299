package repository

import (
	"context"

	"portal/internal/domain/entity"
	"portal/internal/errors"
)

// ErrReadingNotFound is returned when a sensor table holds no row for the
// requested resource.
var ErrReadingNotFound = errors.New("sensor reading not found")

// FanRepository persists fan state rows. The other boolean-status reading
// tables (button, led, buzzer, motion, gas) follow the same contract shape.
type FanRepository interface {
	// Create stores a new fan state row.
	Create(ctx context.Context, fan *entity.Fan) error
	// Latest returns the newest row for the (uuid, gateway) coupling, with
	// its gateway and resource populated.
	Latest(ctx context.Context, uuid string, gatewayID int64) (*entity.Fan, error)
	// ListByGateway returns the rows recorded for a gateway, newest first.
	ListByGateway(ctx context.Context, gatewayID int64, limit int) ([]*entity.Fan, error)
}

// TemperatureRepository persists temperature readings. The other numeric
// reading tables (illuminance, power, energy) follow the same contract shape.
type TemperatureRepository interface {
	// Create stores a new temperature reading.
	Create(ctx context.Context, reading *entity.Temperature) error
	// Latest returns the newest reading for the (uuid, gateway) coupling,
	// with its gateway and resource populated.
	Latest(ctx context.Context, uuid string, gatewayID int64) (*entity.Temperature, error)
	// ListByGateway returns the readings recorded for a gateway, newest first.
	ListByGateway(ctx context.Context, gatewayID int64, limit int) ([]*entity.Temperature, error)
}
