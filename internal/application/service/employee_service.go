package service

import (
	"context"
	"strings"
	"time"

	"github.com/g2rism/backoffice-api/internal/domain/entity"
	"github.com/g2rism/backoffice-api/internal/domain/enum"
	"github.com/g2rism/backoffice-api/internal/domain/repository"
	"github.com/g2rism/backoffice-api/pkg/apperror"
	"github.com/g2rism/backoffice-api/pkg/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EmployeeService handles employee-related operations
type EmployeeService struct {
	employeeRepo repository.EmployeeRepository
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(employeeRepo repository.EmployeeRepository) *EmployeeService {
	return &EmployeeService{employeeRepo: employeeRepo}
}

// CreateEmployeeInput represents the create employee input
type CreateEmployeeInput struct {
	FirstName             string
	LastName              string
	DocumentType          string
	DocumentNumber        string
	Email                 string
	Phone                 string
	Position              string
	Department            string
	HireDate              time.Time
	MonthlySalary         decimal.Decimal
	EmergencyContactName  *string
	EmergencyContactPhone *string
}

// CreateEmployee creates a new employee record
func (s *EmployeeService) CreateEmployee(ctx context.Context, input *CreateEmployeeInput) (*entity.Employee, error) {
	if strings.TrimSpace(input.FirstName) == "" {
		return nil, apperror.NewBadRequestError("First name is required")
	}
	if strings.TrimSpace(input.Position) == "" {
		return nil, apperror.NewBadRequestError("Position is required")
	}
	if input.MonthlySalary.IsNegative() {
		return nil, apperror.NewBadRequestError("Monthly salary cannot be negative")
	}

	existing, err := s.employeeRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Email already registered")
	}

	code, err := s.employeeRepo.NextCode(ctx)
	if err != nil {
		return nil, err
	}

	employee := &entity.Employee{
		Code:                  code,
		FirstName:             input.FirstName,
		LastName:              input.LastName,
		FullName:              fullName(input.FirstName, input.LastName),
		DocumentType:          enum.DocumentType(input.DocumentType),
		DocumentNumber:        input.DocumentNumber,
		Email:                 input.Email,
		Phone:                 input.Phone,
		Position:              input.Position,
		Department:            input.Department,
		HireDate:              input.HireDate,
		MonthlySalary:         input.MonthlySalary,
		Status:                enum.EmployeeStatusActive,
		EmergencyContactName:  input.EmergencyContactName,
		EmergencyContactPhone: input.EmergencyContactPhone,
	}

	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		return nil, err
	}

	return employee, nil
}

// GetEmployee retrieves an employee by ID
func (s *EmployeeService) GetEmployee(ctx context.Context, id uuid.UUID) (*entity.Employee, error) {
	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, apperror.NewNotFoundError("Employee")
	}
	return employee, nil
}

// ListEmployees lists employees with search, department and status filters
func (s *EmployeeService) ListEmployees(ctx context.Context, params *pagination.PaginationParams, search, department, status string) (*pagination.PaginatedResult[entity.Employee], error) {
	employees, total, err := s.employeeRepo.List(ctx, params, search, department, status)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(employees, pag), nil
}

// UpdateEmployeeInput represents the update employee input; nil fields are unchanged
type UpdateEmployeeInput struct {
	ID                    uuid.UUID
	FirstName             *string
	LastName              *string
	DocumentType          *string
	DocumentNumber        *string
	Email                 *string
	Phone                 *string
	Position              *string
	Department            *string
	HireDate              *time.Time
	MonthlySalary         *decimal.Decimal
	Status                *string
	EmergencyContactName  *string
	EmergencyContactPhone *string
}

// UpdateEmployee applies a partial update to an employee
func (s *EmployeeService) UpdateEmployee(ctx context.Context, input *UpdateEmployeeInput) (*entity.Employee, error) {
	employee, err := s.employeeRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, apperror.NewNotFoundError("Employee")
	}

	if input.Email != nil && *input.Email != employee.Email {
		existing, err := s.employeeRepo.GetByEmail(ctx, *input.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != employee.ID {
			return nil, apperror.NewConflictError("Email already registered")
		}
		employee.Email = *input.Email
	}

	if input.FirstName != nil {
		employee.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		employee.LastName = *input.LastName
	}
	if input.FirstName != nil || input.LastName != nil {
		employee.FullName = fullName(employee.FirstName, employee.LastName)
	}
	if input.DocumentType != nil {
		employee.DocumentType = enum.DocumentType(*input.DocumentType)
	}
	if input.DocumentNumber != nil {
		employee.DocumentNumber = *input.DocumentNumber
	}
	if input.Phone != nil {
		employee.Phone = *input.Phone
	}
	if input.Position != nil {
		employee.Position = *input.Position
	}
	if input.Department != nil {
		employee.Department = *input.Department
	}
	if input.HireDate != nil {
		employee.HireDate = *input.HireDate
	}
	if input.MonthlySalary != nil {
		if input.MonthlySalary.IsNegative() {
			return nil, apperror.NewBadRequestError("Monthly salary cannot be negative")
		}
		employee.MonthlySalary = *input.MonthlySalary
	}
	if input.Status != nil {
		status := enum.EmployeeStatus(*input.Status)
		if !status.IsValid() {
			return nil, apperror.NewBadRequestError("Invalid employee status")
		}
		employee.Status = status
	}
	if input.EmergencyContactName != nil {
		employee.EmergencyContactName = input.EmergencyContactName
	}
	if input.EmergencyContactPhone != nil {
		employee.EmergencyContactPhone = input.EmergencyContactPhone
	}

	if err := s.employeeRepo.Update(ctx, employee); err != nil {
		return nil, err
	}

	return employee, nil
}

// DeleteEmployee soft-deletes an employee record
func (s *EmployeeService) DeleteEmployee(ctx context.Context, id uuid.UUID) error {
	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if employee == nil {
		return apperror.NewNotFoundError("Employee")
	}

	return s.employeeRepo.Delete(ctx, id)
}
