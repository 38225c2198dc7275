package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/kiprotichd/bizdesk-api/internal/domain/entity"
	domainRepo "github.com/kiprotichd/bizdesk-api/internal/domain/repository"
	"github.com/kiprotichd/bizdesk-api/pkg/pagination"
	"gorm.io/gorm"
)

type serviceOfferingRepository struct {
	db *gorm.DB
}

// NewServiceOfferingRepository creates a new service offering repository
func NewServiceOfferingRepository(db *gorm.DB) domainRepo.ServiceOfferingRepository {
	return &serviceOfferingRepository{db: db}
}

func (r *serviceOfferingRepository) Create(ctx context.Context, offering *entity.ServiceOffering) error {
	return r.db.WithContext(ctx).Create(offering).Error
}

func (r *serviceOfferingRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ServiceOffering, error) {
	var offering entity.ServiceOffering
	err := r.db.WithContext(ctx).First(&offering, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &offering, err
}

func (r *serviceOfferingRepository) Update(ctx context.Context, offering *entity.ServiceOffering) error {
	return r.db.WithContext(ctx).Save(offering).Error
}

func (r *serviceOfferingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.ServiceOffering{}, "id = ?", id).Error
}

func (r *serviceOfferingRepository) List(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams, search string) ([]entity.ServiceOffering, int64, error) {
	var offerings []entity.ServiceOffering
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.ServiceOffering{})

	// Only filter by user_id if a non-zero userID is provided (super-admin can see all)
	if userID != uuid.Nil {
		query = query.Where("user_id = ?", userID)
	}

	if search != "" {
		query = query.Where("name ILIKE ? OR description ILIKE ?",
			"%"+search+"%", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("name ASC").
		Find(&offerings).Error

	return offerings, total, err
}
