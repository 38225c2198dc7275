package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/kiprotichd/bizdesk-api/internal/domain/entity"
	"github.com/kiprotichd/bizdesk-api/internal/domain/enum"
	"github.com/kiprotichd/bizdesk-api/pkg/pagination"
)

// ProjectFilterParams contains filtering parameters for project queries
type ProjectFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.ProjectStatus
	ClientID   *uuid.UUID
}

// ProjectRepository defines the interface for project data operations
type ProjectRepository interface {
	Create(ctx context.Context, project *entity.Project) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Project, error)
	Update(ctx context.Context, project *entity.Project) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, params *ProjectFilterParams) ([]entity.Project, int64, error)
}
