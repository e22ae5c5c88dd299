package repository

import (
	"context"

	"portal/internal/domain/entity"
	"portal/internal/errors"
)

// Sentinel errors for resource and sensor type lookups.
var (
	ErrResourceNotFound   = errors.New("resource not found")
	ErrSensorTypeNotFound = errors.New("sensor type not found")
)

// ResourceRepository persists the device endpoints registered on gateways.
type ResourceRepository interface {
	// Create stores a new resource registration.
	Create(ctx context.Context, resource *entity.Resource) error
	// FindByUUIDAndGateway retrieves the resource identified by the
	// (uuid, gateway) coupling, with its sensor type populated.
	FindByUUIDAndGateway(ctx context.Context, uuid string, gatewayID int64) (*entity.Resource, error)
	// ListByGateway returns all resources registered on a gateway.
	ListByGateway(ctx context.Context, gatewayID int64) ([]*entity.Resource, error)
	// Delete removes a resource registration.
	Delete(ctx context.Context, id int64) error
}

// SensorTypeRepository persists the static sensor type lookup table.
type SensorTypeRepository interface {
	// Create stores a new lookup row.
	Create(ctx context.Context, sensorType *entity.SensorType) error
	// FindByType retrieves a lookup row by its type name.
	FindByType(ctx context.Context, name string) (*entity.SensorType, error)
	// List returns all known sensor types.
	List(ctx context.Context) ([]*entity.SensorType, error)
}
