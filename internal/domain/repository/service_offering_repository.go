package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/kiprotichd/bizdesk-api/internal/domain/entity"
	"github.com/kiprotichd/bizdesk-api/pkg/pagination"
)

// ServiceOfferingRepository defines the interface for service catalog operations
type ServiceOfferingRepository interface {
	Create(ctx context.Context, offering *entity.ServiceOffering) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ServiceOffering, error)
	Update(ctx context.Context, offering *entity.ServiceOffering) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams, search string) ([]entity.ServiceOffering, int64, error)
}
