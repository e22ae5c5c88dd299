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

// resourceRepository implements the repository.ResourceRepository interface.
type resourceRepository struct {
	db *gorm.DB
}

// NewResourceRepository is the constructor for resourceRepository.
func NewResourceRepository(db *gorm.DB) repository.ResourceRepository {
	return &resourceRepository{
		db: db,
	}
}

// Create persists a new resource registration.
func (repo *resourceRepository) Create(ctx context.Context, resource *entity.Resource) error {
	resourceM := fromResourceDomain(resource)

	if err := repo.db.WithContext(ctx).Create(resourceM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid gateway or sensor type reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required resource information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create resource")
	}

	// Update the entity with generated values
	resource.ID = resourceM.ID
	resource.CreatedAt = resourceM.CreatedAt

	return nil
}

// FindByUUIDAndGateway retrieves the resource identified by the
// (uuid, gateway) coupling, with its sensor type populated.
func (repo *resourceRepository) FindByUUIDAndGateway(ctx context.Context, uuid string, gatewayID int64) (*entity.Resource, error) {
	var resourceM model.ResourceModel

	if err := repo.db.WithContext(ctx).
		Preload("SensorType").
		Where("uuid = ? AND gateway_id = ?", uuid, gatewayID).
		First(&resourceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrResourceNotFound
		}

		return nil, errors.Wrap(err, "failed to find resource by uuid and gateway")
	}

	return toResourceDomain(&resourceM), nil
}

// ListByGateway returns all resources registered on a gateway.
func (repo *resourceRepository) ListByGateway(ctx context.Context, gatewayID int64) ([]*entity.Resource, error) {
	var resourceModels []*model.ResourceModel

	if err := repo.db.WithContext(ctx).
		Preload("SensorType").
		Where("gateway_id = ?", gatewayID).
		Order("created_at DESC").
		Find(&resourceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list resources by gateway")
	}

	resources := make([]*entity.Resource, 0, len(resourceModels))
	for _, resourceM := range resourceModels {
		resources = append(resources, toResourceDomain(resourceM))
	}

	return resources, nil
}

// Delete removes a resource registration.
func (repo *resourceRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ResourceModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete resource")
	}

	if result.RowsAffected == 0 {
		return repository.ErrResourceNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toResourceDomain converts a GORM ResourceModel to a domain Resource entity.
func toResourceDomain(data *model.ResourceModel) *entity.Resource {
	if data == nil {
		return nil
	}

	return &entity.Resource{
		Defaults: entity.Defaults{
			ID:        data.ID,
			CreatedAt: data.CreatedAt,
		},
		UUID:         data.UUID,
		SensorTypeID: data.SensorTypeID,
		Status:       data.Status,
		GatewayID:    data.GatewayID,
		Path:         data.Path,
		SensorType:   toSensorTypeDomain(data.SensorType),
	}
}

// fromResourceDomain converts a domain Resource entity to a GORM ResourceModel.
func fromResourceDomain(data *entity.Resource) *model.ResourceModel {
	if data == nil {
		return nil
	}

	return &model.ResourceModel{
		ID:           data.ID,
		UUID:         data.UUID,
		SensorTypeID: data.SensorTypeID,
		Status:       data.Status,
		GatewayID:    data.GatewayID,
		Path:         data.Path,
		CreatedAt:    data.CreatedAt,
	}
}
