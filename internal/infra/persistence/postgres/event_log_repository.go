package postgres

import (
	"context"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"
	"portal/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// eventLogRepository implements the repository.EventLogRepository interface.
type eventLogRepository struct {
	db *gorm.DB
}

// NewEventLogRepository is the constructor for eventLogRepository.
func NewEventLogRepository(db *gorm.DB) repository.EventLogRepository {
	return &eventLogRepository{
		db: db,
	}
}

// Create persists a new event record. The structured payload is JSON-encoded
// on the way in; unencodable payloads surface as a SerializationError.
func (repo *eventLogRepository) Create(ctx context.Context, event *entity.EventLog) error {
	eventM := fromEventLogDomain(event)

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		var serErr *domainerrors.SerializationError
		if errors.As(err, &serErr) {
			return serErr
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create event log")
	}

	// Update the entity with generated values
	event.ID = eventM.ID
	event.CreatedAt = eventM.CreatedAt

	return nil
}

// List returns the newest event records up to limit.
func (repo *eventLogRepository) List(ctx context.Context, limit int) ([]*entity.EventLog, error) {
	var eventModels []*model.EventLogModel

	query := repo.db.WithContext(ctx).Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&eventModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list event logs")
	}

	events := make([]*entity.EventLog, 0, len(eventModels))
	for _, eventM := range eventModels {
		events = append(events, toEventLogDomain(eventM))
	}

	return events, nil
}

// --- Mapper Functions ---

// toEventLogDomain converts a GORM EventLogModel to a domain EventLog entity.
func toEventLogDomain(data *model.EventLogModel) *entity.EventLog {
	if data == nil {
		return nil
	}

	return &entity.EventLog{
		Defaults: entity.Defaults{
			ID:        data.ID,
			CreatedAt: data.CreatedAt,
		},
		Type:         data.Type,
		Data:         data.Data.V,
		ResponseCode: data.ResponseCode,
	}
}

// fromEventLogDomain converts a domain EventLog entity to a GORM EventLogModel.
func fromEventLogDomain(data *entity.EventLog) *model.EventLogModel {
	if data == nil {
		return nil
	}

	return &model.EventLogModel{
		ID:           data.ID,
		Type:         data.Type,
		Data:         model.JSONText{V: data.Data},
		ResponseCode: data.ResponseCode,
		CreatedAt:    data.CreatedAt,
	}
}
