package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/g2rism/backoffice-api/internal/domain/crm"
	"github.com/g2rism/backoffice-api/internal/domain/entity"
	domainRepo "github.com/g2rism/backoffice-api/internal/domain/repository"
	"github.com/g2rism/backoffice-api/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type leadRepository struct {
	db *gorm.DB
}

// NewLeadRepository creates a new lead repository
func NewLeadRepository(db *gorm.DB) domainRepo.LeadRepository {
	return &leadRepository{db: db}
}

func (r *leadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	return r.db.WithContext(ctx).Create(lead).Error
}

func (r *leadRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Lead, error) {
	var lead entity.Lead
	err := r.db.WithContext(ctx).
		Preload("Interactions", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Preload("Notes", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Preload("Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Preload("Documents", func(db *gorm.DB) *gorm.DB {
			return db.Order("uploaded_at DESC")
		}).
		First(&lead, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &lead, err
}

func (r *leadRepository) GetByCode(ctx context.Context, code string) (*entity.Lead, error) {
	var lead entity.Lead
	err := r.db.WithContext(ctx).First(&lead, "code = ?", code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &lead, err
}

func (r *leadRepository) Update(ctx context.Context, lead *entity.Lead) error {
	return r.db.WithContext(ctx).Omit("Interactions", "Notes", "Tasks", "Documents").Save(lead).Error
}

func (r *leadRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Lead{}, "id = ?", id).Error
}

func (r *leadRepository) List(ctx context.Context, filter crm.Filter, params *pagination.PaginationParams) ([]entity.Lead, int64, error) {
	var leads []entity.Lead
	var total int64

	query := r.applyFilter(r.db.WithContext(ctx).Model(&entity.Lead{}), filter)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("created_at DESC").
		Find(&leads).Error

	return leads, total, err
}

func (r *leadRepository) ListAll(ctx context.Context, filter crm.Filter) ([]entity.Lead, error) {
	var leads []entity.Lead
	err := r.applyFilter(r.db.WithContext(ctx).Model(&entity.Lead{}), filter).
		Order("created_at DESC").
		Find(&leads).Error
	return leads, err
}

func (r *leadRepository) applyFilter(query *gorm.DB, filter crm.Filter) *gorm.DB {
	if filter.Search != "" {
		term := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(full_name) LIKE ? OR LOWER(code) LIKE ? OR LOWER(contact_email) LIKE ?",
			term, term, term)
	}
	if active(filter.Status) {
		query = query.Where("status = ?", filter.Status)
	}
	if active(filter.Source) {
		query = query.Where("source = ?", filter.Source)
	}
	if active(filter.ClientType) {
		query = query.Where("client_type = ?", filter.ClientType)
	}
	if active(filter.Priority) {
		query = query.Where("priority = ?", filter.Priority)
	}
	if active(filter.AssignedTo) {
		query = query.Where("assigned_to = ?", filter.AssignedTo)
	}
	return query
}

func active(criterion string) bool {
	return criterion != "" && criterion != crm.FilterAll
}

func (r *leadRepository) NextCode(ctx context.Context) (string, error) {
	var count int64
	if err := r.db.WithContext(ctx).Unscoped().Model(&entity.Lead{}).Count(&count).Error; err != nil {
		return "", err
	}
	return fmt.Sprintf("L%06d", count+1), nil
}

func (r *leadRepository) DueForFollowUp(ctx context.Context, day string) ([]entity.Lead, error) {
	var leads []entity.Lead
	err := r.db.WithContext(ctx).
		Where("next_follow_up_date IS NOT NULL AND DATE(next_follow_up_date) = ?", day).
		Where("status NOT IN ?", []string{"won", "lost"}).
		Order("next_follow_up_date ASC").
		Find(&leads).Error
	return leads, err
}

// replaceChildren swaps a lead's child rows for the in-memory collection in a
// single transaction, then updates the parent row.
func (r *leadRepository) replaceChildren(ctx context.Context, lead *entity.Lead, model any, rows any, count int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("lead_id = ?", lead.ID).Delete(model).Error; err != nil {
			return err
		}
		if count > 0 {
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).CreateInBatches(rows, 100).Error; err != nil {
				return err
			}
		}
		return tx.Omit("Interactions", "Notes", "Tasks", "Documents").Save(lead).Error
	})
}

func (r *leadRepository) ReplaceInteractions(ctx context.Context, lead *entity.Lead) error {
	return r.replaceChildren(ctx, lead, &entity.Interaction{}, lead.Interactions, len(lead.Interactions))
}

func (r *leadRepository) ReplaceNotes(ctx context.Context, lead *entity.Lead) error {
	return r.replaceChildren(ctx, lead, &entity.Note{}, lead.Notes, len(lead.Notes))
}

func (r *leadRepository) ReplaceTasks(ctx context.Context, lead *entity.Lead) error {
	return r.replaceChildren(ctx, lead, &entity.Task{}, lead.Tasks, len(lead.Tasks))
}

func (r *leadRepository) ReplaceDocuments(ctx context.Context, lead *entity.Lead) error {
	return r.replaceChildren(ctx, lead, &entity.Document{}, lead.Documents, len(lead.Documents))
}
