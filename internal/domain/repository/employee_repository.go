package repository

import (
	"context"

	"github.com/g2rism/backoffice-api/internal/domain/entity"
	"github.com/g2rism/backoffice-api/pkg/pagination"
	"github.com/google/uuid"
)

// EmployeeRepository defines the interface for employee data operations
type EmployeeRepository interface {
	Create(ctx context.Context, employee *entity.Employee) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Employee, error)
	GetByEmail(ctx context.Context, email string) (*entity.Employee, error)
	Update(ctx context.Context, employee *entity.Employee) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search, department, status string) ([]entity.Employee, int64, error)
	ListAll(ctx context.Context) ([]entity.Employee, error)
	NextCode(ctx context.Context) (string, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
}
