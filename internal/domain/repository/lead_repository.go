package repository

import (
	"context"

	"github.com/g2rism/backoffice-api/internal/domain/crm"
	"github.com/g2rism/backoffice-api/internal/domain/entity"
	"github.com/g2rism/backoffice-api/pkg/pagination"
	"github.com/google/uuid"
)

// LeadRepository defines the interface for lead data operations
type LeadRepository interface {
	Create(ctx context.Context, lead *entity.Lead) error
	// GetByID loads the lead with all child collections, most recent first
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Lead, error)
	GetByCode(ctx context.Context, code string) (*entity.Lead, error)
	Update(ctx context.Context, lead *entity.Lead) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter crm.Filter, params *pagination.PaginationParams) ([]entity.Lead, int64, error)
	// ListAll returns every lead without children, for stats and pipeline views
	ListAll(ctx context.Context, filter crm.Filter) ([]entity.Lead, error)
	// NextCode returns the next sequential lead code (L000001, L000002, ...)
	NextCode(ctx context.Context) (string, error)
	// DueForFollowUp returns leads whose next follow-up date falls on the given day
	DueForFollowUp(ctx context.Context, day string) ([]entity.Lead, error)
	ReplaceInteractions(ctx context.Context, lead *entity.Lead) error
	ReplaceNotes(ctx context.Context, lead *entity.Lead) error
	ReplaceTasks(ctx context.Context, lead *entity.Lead) error
	ReplaceDocuments(ctx context.Context, lead *entity.Lead) error
}
