package request

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateEmployeeRequest represents a create employee request
type CreateEmployeeRequest struct {
	FirstName             string          `json:"first_name" binding:"required,min=2,max=255"`
	LastName              string          `json:"last_name" binding:"max=255"`
	DocumentType          string          `json:"document_type"`
	DocumentNumber        string          `json:"document_number"`
	Email                 string          `json:"email" binding:"required,email"`
	Phone                 string          `json:"phone"`
	Position              string          `json:"position" binding:"required"`
	Department            string          `json:"department"`
	HireDate              time.Time       `json:"hire_date" binding:"required"`
	MonthlySalary         decimal.Decimal `json:"monthly_salary"`
	EmergencyContactName  *string         `json:"emergency_contact_name"`
	EmergencyContactPhone *string         `json:"emergency_contact_phone"`
}

// UpdateEmployeeRequest represents a partial employee update
type UpdateEmployeeRequest struct {
	FirstName             *string          `json:"first_name"`
	LastName              *string          `json:"last_name"`
	DocumentType          *string          `json:"document_type"`
	DocumentNumber        *string          `json:"document_number"`
	Email                 *string          `json:"email" binding:"omitempty,email"`
	Phone                 *string          `json:"phone"`
	Position              *string          `json:"position"`
	Department            *string          `json:"department"`
	HireDate              *time.Time       `json:"hire_date"`
	MonthlySalary         *decimal.Decimal `json:"monthly_salary"`
	Status                *string          `json:"status"`
	EmergencyContactName  *string          `json:"emergency_contact_name"`
	EmergencyContactPhone *string          `json:"emergency_contact_phone"`
}
