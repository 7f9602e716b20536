package request

import (
	"time"

	"github.com/google/uuid"
)

// CreateLeadRequest represents a create lead request
type CreateLeadRequest struct {
	FirstName         string     `json:"first_name" binding:"required,min=2,max=255"`
	LastName          string     `json:"last_name" binding:"max=255"`
	DocumentType      string     `json:"document_type"`
	DocumentNumber    string     `json:"document_number"`
	DateOfBirth       *time.Time `json:"date_of_birth"`
	Email             string     `json:"email" binding:"omitempty,email"`
	Phone             string     `json:"phone"`
	Mobile            *string    `json:"mobile"`
	WhatsApp          *string    `json:"whatsapp"`
	PreferredChannel  string     `json:"preferred_channel"`
	Street            string     `json:"street"`
	City              string     `json:"city"`
	State             string     `json:"state"`
	Country           string     `json:"country"`
	PostalCode        string     `json:"postal_code"`
	Source            string     `json:"source"`
	ClientType        string     `json:"client_type"`
	Priority          string     `json:"priority"`
	EstimatedValue    float64    `json:"estimated_value" binding:"min=0"`
	Probability       *int       `json:"probability"`
	TravelDate        *time.Time `json:"travel_date"`
	NumberOfTravelers *int       `json:"number_of_travelers"`
	AssignedTo        uuid.UUID  `json:"assigned_to"`
	Tags              []string   `json:"tags"`
}

// UpdateLeadRequest represents a partial lead update; absent fields are unchanged
type UpdateLeadRequest struct {
	FirstName         *string    `json:"first_name"`
	LastName          *string    `json:"last_name"`
	DocumentType      *string    `json:"document_type"`
	DocumentNumber    *string    `json:"document_number"`
	DateOfBirth       *time.Time `json:"date_of_birth"`
	Email             *string    `json:"email" binding:"omitempty,email"`
	Phone             *string    `json:"phone"`
	Mobile            *string    `json:"mobile"`
	WhatsApp          *string    `json:"whatsapp"`
	PreferredChannel  *string    `json:"preferred_channel"`
	Street            *string    `json:"street"`
	City              *string    `json:"city"`
	State             *string    `json:"state"`
	Country           *string    `json:"country"`
	PostalCode        *string    `json:"postal_code"`
	Status            *string    `json:"status"`
	Source            *string    `json:"source"`
	ClientType        *string    `json:"client_type"`
	Priority          *string    `json:"priority"`
	EstimatedValue    *float64   `json:"estimated_value"`
	Probability       *int       `json:"probability"`
	TravelDate        *time.Time `json:"travel_date"`
	NumberOfTravelers *int       `json:"number_of_travelers"`
	AssignedTo        *uuid.UUID `json:"assigned_to"`
	Tags              []string   `json:"tags"`
	Score             *int       `json:"score"`
	NextFollowUpDate  *time.Time `json:"next_follow_up_date"`
}

// AddInteractionRequest represents a logged interaction on a lead
type AddInteractionRequest struct {
	Type         string     `json:"type"`
	Subject      string     `json:"subject" binding:"required"`
	Description  string     `json:"description" binding:"required"`
	Duration     *int       `json:"duration"`
	Outcome      *string    `json:"outcome"`
	NextFollowUp *time.Time `json:"next_follow_up"`
}

// AddNoteRequest represents a note added to a lead
type AddNoteRequest struct {
	Content string `json:"content" binding:"required"`
}

// AddTaskRequest represents a follow-up task added to a lead
type AddTaskRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	DueDate     time.Time  `json:"due_date" binding:"required"`
	Priority    string     `json:"priority"`
	AssignedTo  uuid.UUID  `json:"assigned_to"`
}

// AddDocumentRequest represents an uploaded document's metadata
type AddDocumentRequest struct {
	Name string `json:"name" binding:"required"`
	Type string `json:"type"`
	Size int64  `json:"size" binding:"min=0"`
	URL  string `json:"url" binding:"required"`
}
