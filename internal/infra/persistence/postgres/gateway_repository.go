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

// gatewayRepository implements the repository.GatewayRepository interface.
type gatewayRepository struct {
	db *gorm.DB
}

// NewGatewayRepository is the constructor for gatewayRepository.
func NewGatewayRepository(db *gorm.DB) repository.GatewayRepository {
	return &gatewayRepository{
		db: db,
	}
}

// Create persists a new gateway and assigns its identifier.
func (repo *gatewayRepository) Create(ctx context.Context, gateway *entity.Gateway) error {
	gatewayM := fromGatewayDomain(gateway)

	if err := repo.db.WithContext(ctx).Create(gatewayM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required gateway information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create gateway")
	}

	// Update the entity with generated values
	gateway.ID = gatewayM.ID
	gateway.CreatedAt = gatewayM.CreatedAt

	return nil
}

// FindByID retrieves a gateway by its identifier.
func (repo *gatewayRepository) FindByID(ctx context.Context, id int64) (*entity.Gateway, error) {
	var gatewayM model.GatewayModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&gatewayM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGatewayNotFound
		}

		return nil, errors.Wrap(err, "failed to find gateway by ID")
	}

	return toGatewayDomain(&gatewayM), nil
}

// List returns all registered gateways.
func (repo *gatewayRepository) List(ctx context.Context) ([]*entity.Gateway, error) {
	var gatewayModels []*model.GatewayModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&gatewayModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list gateways")
	}

	gateways := make([]*entity.Gateway, 0, len(gatewayModels))
	for _, gatewayM := range gatewayModels {
		gateways = append(gateways, toGatewayDomain(gatewayM))
	}

	return gateways, nil
}

// UpdateStatus flips the online flag of a gateway.
func (repo *gatewayRepository) UpdateStatus(ctx context.Context, id int64, status bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.GatewayModel{}).
		Where("id = ?", id).
		Update("status", status)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update gateway status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrGatewayNotFound
	}

	return nil
}

// Delete removes a gateway; dependent rows cascade at the storage level.
func (repo *gatewayRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.GatewayModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete gateway")
	}

	if result.RowsAffected == 0 {
		return repository.ErrGatewayNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toGatewayDomain converts a GORM GatewayModel to a domain Gateway entity.
func toGatewayDomain(data *model.GatewayModel) *entity.Gateway {
	if data == nil {
		return nil
	}

	return &entity.Gateway{
		Defaults: entity.Defaults{
			ID:        data.ID,
			CreatedAt: data.CreatedAt,
		},
		Name:      data.Name,
		URL:       data.URL,
		Address:   data.Address,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		Status:    data.Status,
	}
}

// fromGatewayDomain converts a domain Gateway entity to a GORM GatewayModel.
func fromGatewayDomain(data *entity.Gateway) *model.GatewayModel {
	if data == nil {
		return nil
	}

	return &model.GatewayModel{
		ID:        data.ID,
		Name:      data.Name,
		URL:       data.URL,
		Address:   data.Address,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		Status:    data.Status,
		CreatedAt: data.CreatedAt,
	}
}
