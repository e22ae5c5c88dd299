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

// fanRepository implements the repository.FanRepository interface. The other
// boolean-status reading tables follow the same implementation shape.
type fanRepository struct {
	db *gorm.DB
}

// NewFanRepository is the constructor for fanRepository.
func NewFanRepository(db *gorm.DB) repository.FanRepository {
	return &fanRepository{
		db: db,
	}
}

// Create persists a new fan state row.
func (repo *fanRepository) Create(ctx context.Context, fan *entity.Fan) error {
	fanM := fromFanDomain(fan)

	if err := repo.db.WithContext(ctx).Create(fanM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid gateway or resource reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required fan reading information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create fan reading")
	}

	// Update the entity with generated values
	fan.ID = fanM.ID
	fan.CreatedAt = fanM.CreatedAt

	return nil
}

// Latest returns the newest row for the (uuid, gateway) coupling, with its
// gateway and resource populated.
func (repo *fanRepository) Latest(ctx context.Context, uuid string, gatewayID int64) (*entity.Fan, error) {
	var fanM model.FanModel

	if err := repo.db.WithContext(ctx).
		Preload("Gateway").
		Preload("Resource.SensorType").
		Where("uuid = ? AND gateway_id = ?", uuid, gatewayID).
		Order("id DESC").
		First(&fanM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReadingNotFound
		}

		return nil, errors.Wrap(err, "failed to find latest fan reading")
	}

	return toFanDomain(&fanM), nil
}

// ListByGateway returns the rows recorded for a gateway, newest first.
func (repo *fanRepository) ListByGateway(ctx context.Context, gatewayID int64, limit int) ([]*entity.Fan, error) {
	var fanModels []*model.FanModel

	query := repo.db.WithContext(ctx).
		Where("gateway_id = ?", gatewayID).
		Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&fanModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list fan readings by gateway")
	}

	fans := make([]*entity.Fan, 0, len(fanModels))
	for _, fanM := range fanModels {
		fans = append(fans, toFanDomain(fanM))
	}

	return fans, nil
}

// --- Mapper Functions ---

// toFanDomain converts a GORM FanModel to a domain Fan entity.
func toFanDomain(data *model.FanModel) *entity.Fan {
	if data == nil {
		return nil
	}

	return &entity.Fan{
		Defaults: entity.Defaults{
			ID:        data.ID,
			CreatedAt: data.CreatedAt,
		},
		UUID:      data.UUID,
		Status:    data.Status,
		GatewayID: data.GatewayID,
		Gateway:   toGatewayDomain(data.Gateway),
		Resource:  toResourceDomain(data.Resource),
	}
}

// fromFanDomain converts a domain Fan entity to a GORM FanModel.
func fromFanDomain(data *entity.Fan) *model.FanModel {
	if data == nil {
		return nil
	}

	return &model.FanModel{
		ID:        data.ID,
		UUID:      data.UUID,
		Status:    data.Status,
		GatewayID: data.GatewayID,
		CreatedAt: data.CreatedAt,
	}
}
