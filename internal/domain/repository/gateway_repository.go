// Package repository defines the persistence boundaries consumed by the
// portal, together with the sentinel errors each implementation maps its
// storage errors onto.
package repository

import (
	"context"

	"portal/internal/domain/entity"
	"portal/internal/errors"
)

// ErrGatewayNotFound is returned when no gateway matches the lookup.
var ErrGatewayNotFound = errors.New("gateway not found")

// GatewayRepository persists registered gateways.
type GatewayRepository interface {
	// Create stores a new gateway and assigns its identifier.
	Create(ctx context.Context, gateway *entity.Gateway) error
	// FindByID retrieves a gateway by its identifier.
	FindByID(ctx context.Context, id int64) (*entity.Gateway, error)
	// List returns all registered gateways.
	List(ctx context.Context) ([]*entity.Gateway, error)
	// UpdateStatus flips the online flag of a gateway.
	UpdateStatus(ctx context.Context, id int64, status bool) error
	// Delete removes a gateway; dependent rows cascade at the storage level.
	Delete(ctx context.Context, id int64) error
}
