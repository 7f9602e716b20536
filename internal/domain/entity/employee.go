package entity

import (
	"time"

	"github.com/g2rism/backoffice-api/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Employee represents a staff member's HR record
type Employee struct {
	ID             uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	Code           string              `gorm:"size:20;unique;not null" json:"code"`
	FirstName      string              `gorm:"size:255;not null" json:"first_name"`
	LastName       string              `gorm:"size:255;not null" json:"last_name"`
	FullName       string              `gorm:"size:255;not null;index" json:"full_name"`
	DocumentType   enum.DocumentType   `gorm:"size:20" json:"document_type"`
	DocumentNumber string              `gorm:"size:50" json:"document_number"`
	Email          string              `gorm:"size:255;unique;not null" json:"email"`
	Phone          string              `gorm:"size:50" json:"phone"`
	Position       string              `gorm:"size:100;not null" json:"position"`
	Department     string              `gorm:"size:100" json:"department"`
	HireDate       time.Time           `gorm:"type:date;not null" json:"hire_date"`
	MonthlySalary  decimal.Decimal     `gorm:"type:decimal(15,2);default:0" json:"monthly_salary"`
	Status         enum.EmployeeStatus `gorm:"size:20;not null;default:'active';index" json:"status"`

	EmergencyContactName  *string `gorm:"size:255" json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone *string `gorm:"size:50" json:"emergency_contact_phone,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new employee
func (e *Employee) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Employee model
func (Employee) TableName() string {
	return "employees"
}
