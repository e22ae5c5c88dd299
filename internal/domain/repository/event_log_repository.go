package repository

import (
	"context"

	"portal/internal/domain/entity"
)

// EventLogRepository persists portal event records.
type EventLogRepository interface {
	// Create stores a new event record.
	Create(ctx context.Context, event *entity.EventLog) error
	// List returns the newest event records up to limit.
	List(ctx context.Context, limit int) ([]*entity.EventLog, error)
}
