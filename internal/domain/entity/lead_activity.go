package entity

import (
	"time"

	"github.com/g2rism/backoffice-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Interaction represents a logged touchpoint with a lead
type Interaction struct {
	ID           uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	LeadID       uuid.UUID            `gorm:"type:uuid;not null;index" json:"lead_id"`
	Type         enum.InteractionType `gorm:"size:20;not null" json:"type"`
	Date         time.Time            `gorm:"not null" json:"date"`
	Subject      string               `gorm:"size:255;not null" json:"subject"`
	Description  string               `gorm:"type:text;not null" json:"description"`
	Duration     *int                 `json:"duration,omitempty"`
	Outcome      *string              `gorm:"size:255" json:"outcome,omitempty"`
	NextFollowUp *time.Time           `json:"next_follow_up,omitempty"`
	CreatedBy    uuid.UUID            `gorm:"type:uuid" json:"created_by"`
	CreatedAt    time.Time            `json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new interaction
func (i *Interaction) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Interaction model
func (Interaction) TableName() string {
	return "lead_interactions"
}

// Note represents a free-form annotation on a lead
type Note struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	LeadID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"lead_id"`
	Content   string     `gorm:"type:text;not null" json:"content"`
	IsPinned  bool       `gorm:"default:false" json:"is_pinned"`
	CreatedBy uuid.UUID  `gorm:"type:uuid" json:"created_by"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// BeforeCreate generates a UUID before creating a new note
func (n *Note) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Note model
func (Note) TableName() string {
	return "lead_notes"
}

// Task represents a follow-up action attached to a lead.
// Exactly one of completed=false/completed_at=nil or
// completed=true/completed_at set holds at any time.
type Task struct {
	ID          uuid.UUID     `gorm:"type:uuid;primary_key" json:"id"`
	LeadID      uuid.UUID     `gorm:"type:uuid;not null;index" json:"lead_id"`
	Title       string        `gorm:"size:255;not null" json:"title"`
	Description string        `gorm:"type:text" json:"description"`
	DueDate     time.Time     `gorm:"not null" json:"due_date"`
	Priority    enum.Priority `gorm:"size:20;not null;default:'medium'" json:"priority"`
	Completed   bool          `gorm:"default:false" json:"completed"`
	CompletedAt *time.Time    `json:"completed_at,omitempty"`
	AssignedTo  uuid.UUID     `gorm:"type:uuid" json:"assigned_to"`
	CreatedBy   uuid.UUID     `gorm:"type:uuid" json:"created_by"`
	CreatedAt   time.Time     `json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new task
func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Task model
func (Task) TableName() string {
	return "lead_tasks"
}

// Document represents an uploaded file attached to a lead
type Document struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	LeadID     uuid.UUID `gorm:"type:uuid;not null;index" json:"lead_id"`
	Name       string    `gorm:"size:255;not null" json:"name"`
	Type       string    `gorm:"size:100" json:"type"`
	Size       int64     `json:"size"`
	URL        string    `gorm:"size:512" json:"url"`
	UploadedBy uuid.UUID `gorm:"type:uuid" json:"uploaded_by"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// BeforeCreate generates a UUID before creating a new document
func (d *Document) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Document model
func (Document) TableName() string {
	return "lead_documents"
}
