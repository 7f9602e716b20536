package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/g2rism/backoffice-api/internal/domain/crm"
	"github.com/g2rism/backoffice-api/internal/domain/entity"
	"github.com/g2rism/backoffice-api/internal/domain/enum"
	"github.com/g2rism/backoffice-api/internal/domain/repository"
	"github.com/g2rism/backoffice-api/pkg/apperror"
	"github.com/g2rism/backoffice-api/pkg/cache"
	"github.com/g2rism/backoffice-api/pkg/pagination"
	"github.com/google/uuid"
)

// dashboardStatsKey is the cache key for the dashboard aggregation, dropped
// on every lead mutation
const dashboardStatsKey = "dashboard:stats"

// LeadService handles lead-related operations
type LeadService struct {
	leadRepo repository.LeadRepository
	cache    *cache.Cache
}

// NewLeadService creates a new lead service
func NewLeadService(leadRepo repository.LeadRepository, c *cache.Cache) *LeadService {
	return &LeadService{leadRepo: leadRepo, cache: c}
}

// CreateLeadInput represents the create lead input
type CreateLeadInput struct {
	FirstName         string
	LastName          string
	DocumentType      string
	DocumentNumber    string
	DateOfBirth       *time.Time
	Email             string
	Phone             string
	Mobile            *string
	WhatsApp          *string
	PreferredChannel  string
	Street            string
	City              string
	State             string
	Country           string
	PostalCode        string
	Source            string
	ClientType        string
	Priority          string
	EstimatedValue    float64
	Probability       *int
	TravelDate        *time.Time
	NumberOfTravelers *int
	AssignedTo        uuid.UUID
	Tags              []string
	CreatedBy         uuid.UUID
}

// CreateLead creates a new lead with a fresh sequential code
func (s *LeadService) CreateLead(ctx context.Context, input *CreateLeadInput) (*entity.Lead, error) {
	if strings.TrimSpace(input.FirstName) == "" {
		return nil, apperror.NewBadRequestError("First name is required")
	}

	code, err := s.leadRepo.NextCode(ctx)
	if err != nil {
		return nil, err
	}

	lead := &entity.Lead{
		Code:           code,
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		FullName:       fullName(input.FirstName, input.LastName),
		DocumentNumber: input.DocumentNumber,
		DateOfBirth:    input.DateOfBirth,
		Contact: entity.Contact{
			Email:    input.Email,
			Phone:    input.Phone,
			Mobile:   input.Mobile,
			WhatsApp: input.WhatsApp,
		},
		Address: entity.Address{
			Street:     input.Street,
			City:       input.City,
			State:      input.State,
			Country:    input.Country,
			PostalCode: input.PostalCode,
		},
		Status:            enum.LeadStatusNew,
		EstimatedValue:    input.EstimatedValue,
		TravelDate:        input.TravelDate,
		NumberOfTravelers: input.NumberOfTravelers,
		AssignedTo:        input.AssignedTo,
		CreatedBy:         input.CreatedBy,
	}

	if input.DocumentType != "" {
		lead.DocumentType = enum.DocumentType(input.DocumentType)
	}
	if input.PreferredChannel != "" {
		channel := enum.ContactChannel(input.PreferredChannel)
		if !channel.IsValid() {
			return nil, apperror.NewBadRequestError("Invalid preferred channel")
		}
		lead.Contact.PreferredChannel = channel
	}
	if input.Source != "" {
		source := enum.LeadSource(input.Source)
		if !source.IsValid() {
			return nil, apperror.NewBadRequestError("Invalid lead source")
		}
		lead.Source = source
	} else {
		lead.Source = enum.LeadSourceOther
	}
	if input.ClientType != "" {
		clientType := enum.ClientType(input.ClientType)
		if !clientType.IsValid() {
			return nil, apperror.NewBadRequestError("Invalid client type")
		}
		lead.ClientType = clientType
	} else {
		lead.ClientType = enum.ClientTypeIndividual
	}
	if input.Priority != "" {
		priority := enum.Priority(input.Priority)
		if !priority.IsValid() {
			return nil, apperror.NewBadRequestError("Invalid priority")
		}
		lead.Priority = priority
	} else {
		lead.Priority = enum.PriorityMedium
	}
	if input.Probability != nil {
		if *input.Probability < 0 || *input.Probability > 100 {
			return nil, apperror.NewBadRequestError("Probability must be between 0 and 100")
		}
		lead.Probability = *input.Probability
	}
	lead.SetTags(input.Tags)

	if err := s.leadRepo.Create(ctx, lead); err != nil {
		return nil, err
	}

	s.cache.Delete(ctx, dashboardStatsKey, dashboardOverviewKey)
	return lead, nil
}

// GetLead retrieves a lead with all its child collections
func (s *LeadService) GetLead(ctx context.Context, id uuid.UUID) (*entity.Lead, error) {
	lead, err := s.leadRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, apperror.NewNotFoundError("Lead")
	}
	return lead, nil
}

// ListLeads lists leads matching the filter with pagination
func (s *LeadService) ListLeads(ctx context.Context, filter crm.Filter, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Lead], error) {
	leads, total, err := s.leadRepo.List(ctx, filter, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(leads, pag), nil
}

// GetPipeline groups the filtered leads into the pipeline stages
func (s *LeadService) GetPipeline(ctx context.Context, filter crm.Filter) ([]crm.Stage, error) {
	leads, err := s.leadRepo.ListAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return crm.GroupPipeline(leads), nil
}

// GetStats computes the CRM dashboard counters, served from cache when warm
func (s *LeadService) GetStats(ctx context.Context) (*crm.Stats, error) {
	var cached crm.Stats
	if s.cache.Get(ctx, dashboardStatsKey, &cached) {
		return &cached, nil
	}

	leads, err := s.leadRepo.ListAll(ctx, crm.Filter{})
	if err != nil {
		return nil, err
	}

	stats := crm.ComputeStats(leads)
	s.cache.Set(ctx, dashboardStatsKey, stats, 5*time.Minute)
	return &stats, nil
}

// UpdateLeadInput represents the update lead input; nil fields are unchanged
type UpdateLeadInput struct {
	ID                uuid.UUID
	FirstName         *string
	LastName          *string
	DocumentType      *string
	DocumentNumber    *string
	DateOfBirth       *time.Time
	Email             *string
	Phone             *string
	Mobile            *string
	WhatsApp          *string
	PreferredChannel  *string
	Street            *string
	City              *string
	State             *string
	Country           *string
	PostalCode        *string
	Status            *string
	Source            *string
	ClientType        *string
	Priority          *string
	EstimatedValue    *float64
	Probability       *int
	TravelDate        *time.Time
	NumberOfTravelers *int
	AssignedTo        *uuid.UUID
	Tags              []string
	Score             *int
	NextFollowUpDate  *time.Time
}

// UpdateLead applies a partial update. Moving a lead to won stamps the
// conversion date; moving it away clears it.
func (s *LeadService) UpdateLead(ctx context.Context, input *UpdateLeadInput) (*entity.Lead, error) {
	lead, err := s.leadRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, apperror.NewNotFoundError("Lead")
	}

	if input.FirstName != nil {
		lead.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		lead.LastName = *input.LastName
	}
	if input.FirstName != nil || input.LastName != nil {
		lead.FullName = fullName(lead.FirstName, lead.LastName)
	}
	if input.DocumentType != nil {
		lead.DocumentType = enum.DocumentType(*input.DocumentType)
	}
	if input.DocumentNumber != nil {
		lead.DocumentNumber = *input.DocumentNumber
	}
	if input.DateOfBirth != nil {
		lead.DateOfBirth = input.DateOfBirth
	}
	if input.Email != nil {
		lead.Contact.Email = *input.Email
	}
	if input.Phone != nil {
		lead.Contact.Phone = *input.Phone
	}
	if input.Mobile != nil {
		lead.Contact.Mobile = input.Mobile
	}
	if input.WhatsApp != nil {
		lead.Contact.WhatsApp = input.WhatsApp
	}
	if input.PreferredChannel != nil {
		channel := enum.ContactChannel(*input.PreferredChannel)
		if !channel.IsValid() {
			return nil, apperror.NewBadRequestError("Invalid preferred channel")
		}
		lead.Contact.PreferredChannel = channel
	}
	if input.Street != nil {
		lead.Address.Street = *input.Street
	}
	if input.City != nil {
		lead.Address.City = *input.City
	}
	if input.State != nil {
		lead.Address.State = *input.State
	}
	if input.Country != nil {
		lead.Address.Country = *input.Country
	}
	if input.PostalCode != nil {
		lead.Address.PostalCode = *input.PostalCode
	}
	if input.Status != nil {
		status := enum.LeadStatus(*input.Status)
		if !status.IsValid() {
			return nil, apperror.NewBadRequestError("Invalid lead status")
		}
		if status != lead.Status {
			if status == enum.LeadStatusWon {
				now := time.Now()
				lead.ConversionDate = &now
			} else {
				lead.ConversionDate = nil
			}
		}
		lead.Status = status
	}
	if input.Source != nil {
		source := enum.LeadSource(*input.Source)
		if !source.IsValid() {
			return nil, apperror.NewBadRequestError("Invalid lead source")
		}
		lead.Source = source
	}
	if input.ClientType != nil {
		clientType := enum.ClientType(*input.ClientType)
		if !clientType.IsValid() {
			return nil, apperror.NewBadRequestError("Invalid client type")
		}
		lead.ClientType = clientType
	}
	if input.Priority != nil {
		priority := enum.Priority(*input.Priority)
		if !priority.IsValid() {
			return nil, apperror.NewBadRequestError("Invalid priority")
		}
		lead.Priority = priority
	}
	if input.EstimatedValue != nil {
		lead.EstimatedValue = *input.EstimatedValue
	}
	if input.Probability != nil {
		if *input.Probability < 0 || *input.Probability > 100 {
			return nil, apperror.NewBadRequestError("Probability must be between 0 and 100")
		}
		lead.Probability = *input.Probability
	}
	if input.TravelDate != nil {
		lead.TravelDate = input.TravelDate
	}
	if input.NumberOfTravelers != nil {
		lead.NumberOfTravelers = input.NumberOfTravelers
	}
	if input.AssignedTo != nil {
		lead.AssignedTo = *input.AssignedTo
	}
	if input.Tags != nil {
		lead.SetTags(input.Tags)
	}
	if input.Score != nil {
		lead.Score = *input.Score
	}
	if input.NextFollowUpDate != nil {
		lead.NextFollowUpDate = input.NextFollowUpDate
	}

	if err := s.leadRepo.Update(ctx, lead); err != nil {
		return nil, err
	}

	s.cache.Delete(ctx, dashboardStatsKey, dashboardOverviewKey)
	return lead, nil
}

// DeleteLead soft-deletes a lead; its children cascade
func (s *LeadService) DeleteLead(ctx context.Context, id uuid.UUID) error {
	lead, err := s.leadRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if lead == nil {
		return apperror.NewNotFoundError("Lead")
	}

	if err := s.leadRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.cache.Delete(ctx, dashboardStatsKey, dashboardOverviewKey)
	return nil
}

// AddInteraction logs an interaction on a lead
func (s *LeadService) AddInteraction(ctx context.Context, leadID uuid.UUID, input crm.InteractionInput) (*entity.Lead, error) {
	lead, err := s.GetLead(ctx, leadID)
	if err != nil {
		return nil, err
	}

	if input.Type != "" && !input.Type.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid interaction type")
	}
	if _, err := crm.AddInteraction(lead, input, time.Now()); err != nil {
		return nil, toBadRequest(err)
	}

	if err := s.leadRepo.ReplaceInteractions(ctx, lead); err != nil {
		return nil, err
	}

	s.cache.Delete(ctx, dashboardStatsKey, dashboardOverviewKey)
	return lead, nil
}

// AddNote adds a note to a lead
func (s *LeadService) AddNote(ctx context.Context, leadID uuid.UUID, content string, createdBy uuid.UUID) (*entity.Lead, error) {
	lead, err := s.GetLead(ctx, leadID)
	if err != nil {
		return nil, err
	}

	if _, err := crm.AddNote(lead, content, createdBy, time.Now()); err != nil {
		return nil, toBadRequest(err)
	}

	if err := s.leadRepo.ReplaceNotes(ctx, lead); err != nil {
		return nil, err
	}
	return lead, nil
}

// ToggleNotePin flips the pinned flag of a note
func (s *LeadService) ToggleNotePin(ctx context.Context, leadID, noteID uuid.UUID) (*entity.Lead, error) {
	lead, err := s.GetLead(ctx, leadID)
	if err != nil {
		return nil, err
	}

	if !crm.ToggleNotePin(lead, noteID, time.Now()) {
		return nil, apperror.NewNotFoundError("Note")
	}

	if err := s.leadRepo.ReplaceNotes(ctx, lead); err != nil {
		return nil, err
	}
	return lead, nil
}

// DeleteNote removes a note from a lead
func (s *LeadService) DeleteNote(ctx context.Context, leadID, noteID uuid.UUID) (*entity.Lead, error) {
	lead, err := s.GetLead(ctx, leadID)
	if err != nil {
		return nil, err
	}

	if !crm.DeleteNote(lead, noteID) {
		return nil, apperror.NewNotFoundError("Note")
	}

	if err := s.leadRepo.ReplaceNotes(ctx, lead); err != nil {
		return nil, err
	}
	return lead, nil
}

// AddTask creates a follow-up task on a lead
func (s *LeadService) AddTask(ctx context.Context, leadID uuid.UUID, input crm.TaskInput) (*entity.Lead, error) {
	lead, err := s.GetLead(ctx, leadID)
	if err != nil {
		return nil, err
	}

	if input.Priority != "" && !input.Priority.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid priority")
	}
	if _, err := crm.AddTask(lead, input, time.Now()); err != nil {
		return nil, toBadRequest(err)
	}

	if err := s.leadRepo.ReplaceTasks(ctx, lead); err != nil {
		return nil, err
	}
	return lead, nil
}

// ToggleTask flips the completion state of a task
func (s *LeadService) ToggleTask(ctx context.Context, leadID, taskID uuid.UUID) (*entity.Lead, error) {
	lead, err := s.GetLead(ctx, leadID)
	if err != nil {
		return nil, err
	}

	if !crm.ToggleTask(lead, taskID, time.Now()) {
		return nil, apperror.NewNotFoundError("Task")
	}

	if err := s.leadRepo.ReplaceTasks(ctx, lead); err != nil {
		return nil, err
	}
	return lead, nil
}

// DeleteTask removes a task from a lead
func (s *LeadService) DeleteTask(ctx context.Context, leadID, taskID uuid.UUID) (*entity.Lead, error) {
	lead, err := s.GetLead(ctx, leadID)
	if err != nil {
		return nil, err
	}

	if !crm.DeleteTask(lead, taskID) {
		return nil, apperror.NewNotFoundError("Task")
	}

	if err := s.leadRepo.ReplaceTasks(ctx, lead); err != nil {
		return nil, err
	}
	return lead, nil
}

// AddDocumentInput represents an uploaded document's metadata
type AddDocumentInput struct {
	Name       string
	Type       string
	Size       int64
	URL        string
	UploadedBy uuid.UUID
}

// AddDocument attaches a document record to a lead
func (s *LeadService) AddDocument(ctx context.Context, leadID uuid.UUID, input AddDocumentInput) (*entity.Lead, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperror.NewBadRequestError("Document name is required")
	}

	lead, err := s.GetLead(ctx, leadID)
	if err != nil {
		return nil, err
	}

	document := entity.Document{
		ID:         uuid.New(),
		LeadID:     lead.ID,
		Name:       input.Name,
		Type:       input.Type,
		Size:       input.Size,
		URL:        input.URL,
		UploadedBy: input.UploadedBy,
		UploadedAt: time.Now(),
	}
	lead.Documents = append([]entity.Document{document}, lead.Documents...)

	if err := s.leadRepo.ReplaceDocuments(ctx, lead); err != nil {
		return nil, err
	}
	return lead, nil
}

// DeleteDocument removes a document record from a lead
func (s *LeadService) DeleteDocument(ctx context.Context, leadID, documentID uuid.UUID) (*entity.Lead, error) {
	lead, err := s.GetLead(ctx, leadID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range lead.Documents {
		if lead.Documents[i].ID == documentID {
			lead.Documents = append(lead.Documents[:i], lead.Documents[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		return nil, apperror.NewNotFoundError("Document")
	}

	if err := s.leadRepo.ReplaceDocuments(ctx, lead); err != nil {
		return nil, err
	}
	return lead, nil
}

func fullName(first, last string) string {
	return strings.TrimSpace(first + " " + last)
}

// toBadRequest maps domain validation errors to 400 responses
func toBadRequest(err error) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return apperror.NewBadRequestError(err.Error())
}
