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

// temperatureRepository implements the repository.TemperatureRepository
// interface. The other numeric reading tables follow the same shape.
type temperatureRepository struct {
	db *gorm.DB
}

// NewTemperatureRepository is the constructor for temperatureRepository.
func NewTemperatureRepository(db *gorm.DB) repository.TemperatureRepository {
	return &temperatureRepository{
		db: db,
	}
}

// Create persists a new temperature reading.
func (repo *temperatureRepository) Create(ctx context.Context, reading *entity.Temperature) error {
	readingM := fromTemperatureDomain(reading)

	if err := repo.db.WithContext(ctx).Create(readingM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid gateway or resource reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required temperature reading information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create temperature reading")
	}

	// Update the entity with generated values
	reading.ID = readingM.ID
	reading.CreatedAt = readingM.CreatedAt

	return nil
}

// Latest returns the newest reading for the (uuid, gateway) coupling, with
// its gateway and resource populated.
func (repo *temperatureRepository) Latest(ctx context.Context, uuid string, gatewayID int64) (*entity.Temperature, error) {
	var readingM model.TemperatureModel

	if err := repo.db.WithContext(ctx).
		Preload("Gateway").
		Preload("Resource.SensorType").
		Where("uuid = ? AND gateway_id = ?", uuid, gatewayID).
		Order("id DESC").
		First(&readingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReadingNotFound
		}

		return nil, errors.Wrap(err, "failed to find latest temperature reading")
	}

	return toTemperatureDomain(&readingM), nil
}

// ListByGateway returns the readings recorded for a gateway, newest first.
func (repo *temperatureRepository) ListByGateway(ctx context.Context, gatewayID int64, limit int) ([]*entity.Temperature, error) {
	var readingModels []*model.TemperatureModel

	query := repo.db.WithContext(ctx).
		Where("gateway_id = ?", gatewayID).
		Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&readingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list temperature readings by gateway")
	}

	readings := make([]*entity.Temperature, 0, len(readingModels))
	for _, readingM := range readingModels {
		readings = append(readings, toTemperatureDomain(readingM))
	}

	return readings, nil
}

// --- Mapper Functions ---

// toTemperatureDomain converts a GORM TemperatureModel to a domain Temperature entity.
func toTemperatureDomain(data *model.TemperatureModel) *entity.Temperature {
	if data == nil {
		return nil
	}

	return &entity.Temperature{
		Defaults: entity.Defaults{
			ID:        data.ID,
			CreatedAt: data.CreatedAt,
		},
		UUID:        data.UUID,
		Temperature: data.Temperature,
		Units:       data.Units,
		Range:       data.Range,
		GatewayID:   data.GatewayID,
		Gateway:     toGatewayDomain(data.Gateway),
		Resource:    toResourceDomain(data.Resource),
	}
}

// fromTemperatureDomain converts a domain Temperature entity to a GORM TemperatureModel.
func fromTemperatureDomain(data *entity.Temperature) *model.TemperatureModel {
	if data == nil {
		return nil
	}

	return &model.TemperatureModel{
		ID:          data.ID,
		UUID:        data.UUID,
		Temperature: data.Temperature,
		Units:       data.Units,
		Range:       data.Range,
		GatewayID:   data.GatewayID,
		CreatedAt:   data.CreatedAt,
	}
}
