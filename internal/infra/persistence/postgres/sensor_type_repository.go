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

// sensorTypeRepository implements the repository.SensorTypeRepository interface.
type sensorTypeRepository struct {
	db *gorm.DB
}

// NewSensorTypeRepository is the constructor for sensorTypeRepository.
func NewSensorTypeRepository(db *gorm.DB) repository.SensorTypeRepository {
	return &sensorTypeRepository{
		db: db,
	}
}

// Create persists a new lookup row.
func (repo *sensorTypeRepository) Create(ctx context.Context, sensorType *entity.SensorType) error {
	sensorTypeM := fromSensorTypeDomain(sensorType)

	if err := repo.db.WithContext(ctx).Create(sensorTypeM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing sensor type name")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create sensor type")
	}

	sensorType.ID = sensorTypeM.ID

	return nil
}

// FindByType retrieves a lookup row by its type name.
func (repo *sensorTypeRepository) FindByType(ctx context.Context, name string) (*entity.SensorType, error) {
	var sensorTypeM model.SensorTypeModel

	if err := repo.db.WithContext(ctx).
		Where("type = ?", name).
		First(&sensorTypeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSensorTypeNotFound
		}

		return nil, errors.Wrap(err, "failed to find sensor type")
	}

	return toSensorTypeDomain(&sensorTypeM), nil
}

// List returns all known sensor types.
func (repo *sensorTypeRepository) List(ctx context.Context) ([]*entity.SensorType, error) {
	var sensorTypeModels []*model.SensorTypeModel

	if err := repo.db.WithContext(ctx).
		Order("id").
		Find(&sensorTypeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list sensor types")
	}

	sensorTypes := make([]*entity.SensorType, 0, len(sensorTypeModels))
	for _, sensorTypeM := range sensorTypeModels {
		sensorTypes = append(sensorTypes, toSensorTypeDomain(sensorTypeM))
	}

	return sensorTypes, nil
}

// --- Mapper Functions ---

// toSensorTypeDomain converts a GORM SensorTypeModel to a domain SensorType entity.
func toSensorTypeDomain(data *model.SensorTypeModel) *entity.SensorType {
	if data == nil {
		return nil
	}

	return &entity.SensorType{
		ID:   data.ID,
		Type: data.Type,
	}
}

// fromSensorTypeDomain converts a domain SensorType entity to a GORM SensorTypeModel.
func fromSensorTypeDomain(data *entity.SensorType) *model.SensorTypeModel {
	if data == nil {
		return nil
	}

	return &model.SensorTypeModel{
		ID:   data.ID,
		Type: data.Type,
	}
}
