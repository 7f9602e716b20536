package handler

import (
	"github.com/g2rism/backoffice-api/internal/application/service"
	"github.com/g2rism/backoffice-api/internal/domain/crm"
	"github.com/g2rism/backoffice-api/internal/domain/enum"
	"github.com/g2rism/backoffice-api/internal/presentation/http/dto/request"
	"github.com/g2rism/backoffice-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LeadHandler handles lead-related HTTP requests
type LeadHandler struct {
	leadService *service.LeadService
}

// NewLeadHandler creates a new lead handler
func NewLeadHandler(leadService *service.LeadService) *LeadHandler {
	return &LeadHandler{leadService: leadService}
}

// Create handles lead creation
// @Summary Create Lead
// @Tags leads
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.CreateLeadRequest true "Lead data"
// @Success 201 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Router /leads [post]
func (h *LeadHandler) Create(c *gin.Context) {
	var req request.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.CreateLeadInput{
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		DocumentType:      req.DocumentType,
		DocumentNumber:    req.DocumentNumber,
		DateOfBirth:       req.DateOfBirth,
		Email:             req.Email,
		Phone:             req.Phone,
		Mobile:            req.Mobile,
		WhatsApp:          req.WhatsApp,
		PreferredChannel:  req.PreferredChannel,
		Street:            req.Street,
		City:              req.City,
		State:             req.State,
		Country:           req.Country,
		PostalCode:        req.PostalCode,
		Source:            req.Source,
		ClientType:        req.ClientType,
		Priority:          req.Priority,
		EstimatedValue:    req.EstimatedValue,
		Probability:       req.Probability,
		TravelDate:        req.TravelDate,
		NumberOfTravelers: req.NumberOfTravelers,
		AssignedTo:        req.AssignedTo,
		Tags:              req.Tags,
	}
	if userID := GetUserID(c); userID != nil {
		input.CreatedBy = *userID
	}

	lead, err := h.leadService.CreateLead(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Lead created successfully", lead)
}

// List handles listing leads with filters and pagination
// @Summary List Leads
// @Tags leads
// @Security BearerAuth
// @Produce json
// @Param search query string false "Search by name, code or email"
// @Param status query string false "Filter by status"
// @Success 200 {object} response.APIResponse
// @Router /leads [get]
func (h *LeadHandler) List(c *gin.Context) {
	var filter crm.Filter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.leadService.ListLeads(c.Request.Context(), filter, PaginationFromQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Leads retrieved successfully", result)
}

// Get handles fetching a single lead
// @Summary Get Lead
// @Tags leads
// @Security BearerAuth
// @Produce json
// @Param id path string true "Lead ID"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /leads/{id} [get]
func (h *LeadHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid lead ID")
		return
	}

	lead, err := h.leadService.GetLead(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Lead retrieved successfully", lead)
}

// Update handles a partial lead update
// @Summary Update Lead
// @Tags leads
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Lead ID"
// @Param request body request.UpdateLeadRequest true "Lead data"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /leads/{id} [put]
func (h *LeadHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid lead ID")
		return
	}

	var req request.UpdateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	lead, err := h.leadService.UpdateLead(c.Request.Context(), &service.UpdateLeadInput{
		ID:                id,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		DocumentType:      req.DocumentType,
		DocumentNumber:    req.DocumentNumber,
		DateOfBirth:       req.DateOfBirth,
		Email:             req.Email,
		Phone:             req.Phone,
		Mobile:            req.Mobile,
		WhatsApp:          req.WhatsApp,
		PreferredChannel:  req.PreferredChannel,
		Street:            req.Street,
		City:              req.City,
		State:             req.State,
		Country:           req.Country,
		PostalCode:        req.PostalCode,
		Status:            req.Status,
		Source:            req.Source,
		ClientType:        req.ClientType,
		Priority:          req.Priority,
		EstimatedValue:    req.EstimatedValue,
		Probability:       req.Probability,
		TravelDate:        req.TravelDate,
		NumberOfTravelers: req.NumberOfTravelers,
		AssignedTo:        req.AssignedTo,
		Tags:              req.Tags,
		Score:             req.Score,
		NextFollowUpDate:  req.NextFollowUpDate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Lead updated successfully", lead)
}

// Delete handles lead deletion
// @Summary Delete Lead
// @Tags leads
// @Security BearerAuth
// @Param id path string true "Lead ID"
// @Success 204
// @Failure 404 {object} response.APIResponse
// @Router /leads/{id} [delete]
func (h *LeadHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid lead ID")
		return
	}

	if err := h.leadService.DeleteLead(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// Pipeline handles the kanban pipeline view
// @Summary Lead Pipeline
// @Tags leads
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /leads/pipeline [get]
func (h *LeadHandler) Pipeline(c *gin.Context) {
	var filter crm.Filter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	stages, err := h.leadService.GetPipeline(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Pipeline retrieved successfully", stages)
}

// Stats handles the CRM statistics view
// @Summary Lead Stats
// @Tags leads
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /leads/stats [get]
func (h *LeadHandler) Stats(c *gin.Context) {
	stats, err := h.leadService.GetStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stats retrieved successfully", stats)
}

// AddInteraction logs an interaction on a lead
// @Summary Add Interaction
// @Tags leads
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Lead ID"
// @Param request body request.AddInteractionRequest true "Interaction data"
// @Success 200 {object} response.APIResponse
// @Router /leads/{id}/interactions [post]
func (h *LeadHandler) AddInteraction(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid lead ID")
		return
	}

	var req request.AddInteractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := crm.InteractionInput{
		Type:         enum.InteractionType(req.Type),
		Subject:      req.Subject,
		Description:  req.Description,
		Duration:     req.Duration,
		Outcome:      req.Outcome,
		NextFollowUp: req.NextFollowUp,
	}
	if userID := GetUserID(c); userID != nil {
		input.CreatedBy = *userID
	}

	lead, err := h.leadService.AddInteraction(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Interaction added successfully", lead)
}

// AddNote adds a note to a lead
// @Summary Add Note
// @Tags leads
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Lead ID"
// @Param request body request.AddNoteRequest true "Note data"
// @Success 201 {object} response.APIResponse
// @Router /leads/{id}/notes [post]
func (h *LeadHandler) AddNote(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid lead ID")
		return
	}

	var req request.AddNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	createdBy := uuid.Nil
	if userID := GetUserID(c); userID != nil {
		createdBy = *userID
	}

	lead, err := h.leadService.AddNote(c.Request.Context(), id, req.Content, createdBy)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Note added successfully", lead)
}

// ToggleNotePin flips the pinned flag of a note
// @Summary Toggle Note Pin
// @Tags leads
// @Security BearerAuth
// @Produce json
// @Param id path string true "Lead ID"
// @Param noteId path string true "Note ID"
// @Success 200 {object} response.APIResponse
// @Router /leads/{id}/notes/{noteId}/pin [patch]
func (h *LeadHandler) ToggleNotePin(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid lead ID")
		return
	}
	noteID, err := uuid.Parse(c.Param("noteId"))
	if err != nil {
		response.BadRequest(c, "Invalid note ID")
		return
	}

	lead, err := h.leadService.ToggleNotePin(c.Request.Context(), id, noteID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Note updated successfully", lead)
}

// DeleteNote removes a note from a lead
// @Summary Delete Note
// @Tags leads
// @Security BearerAuth
// @Param id path string true "Lead ID"
// @Param noteId path string true "Note ID"
// @Success 200 {object} response.APIResponse
// @Router /leads/{id}/notes/{noteId} [delete]
func (h *LeadHandler) DeleteNote(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid lead ID")
		return
	}
	noteID, err := uuid.Parse(c.Param("noteId"))
	if err != nil {
		response.BadRequest(c, "Invalid note ID")
		return
	}

	lead, err := h.leadService.DeleteNote(c.Request.Context(), id, noteID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Note deleted successfully", lead)
}

// AddTask creates a follow-up task on a lead
// @Summary Add Task
// @Tags leads
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Lead ID"
// @Param request body request.AddTaskRequest true "Task data"
// @Success 201 {object} response.APIResponse
// @Router /leads/{id}/tasks [post]
func (h *LeadHandler) AddTask(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid lead ID")
		return
	}

	var req request.AddTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := crm.TaskInput{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Priority:    enum.Priority(req.Priority),
		AssignedTo:  req.AssignedTo,
	}
	if userID := GetUserID(c); userID != nil {
		input.CreatedBy = *userID
	}

	lead, err := h.leadService.AddTask(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Task added successfully", lead)
}

// ToggleTask flips the completion state of a task
// @Summary Toggle Task
// @Tags leads
// @Security BearerAuth
// @Produce json
// @Param id path string true "Lead ID"
// @Param taskId path string true "Task ID"
// @Success 200 {object} response.APIResponse
// @Router /leads/{id}/tasks/{taskId}/toggle [patch]
func (h *LeadHandler) ToggleTask(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid lead ID")
		return
	}
	taskID, err := uuid.Parse(c.Param("taskId"))
	if err != nil {
		response.BadRequest(c, "Invalid task ID")
		return
	}

	lead, err := h.leadService.ToggleTask(c.Request.Context(), id, taskID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Task updated successfully", lead)
}

// DeleteTask removes a task from a lead
// @Summary Delete Task
// @Tags leads
// @Security BearerAuth
// @Param id path string true "Lead ID"
// @Param taskId path string true "Task ID"
// @Success 200 {object} response.APIResponse
// @Router /leads/{id}/tasks/{taskId} [delete]
func (h *LeadHandler) DeleteTask(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid lead ID")
		return
	}
	taskID, err := uuid.Parse(c.Param("taskId"))
	if err != nil {
		response.BadRequest(c, "Invalid task ID")
		return
	}

	lead, err := h.leadService.DeleteTask(c.Request.Context(), id, taskID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Task deleted successfully", lead)
}

// AddDocument attaches a document record to a lead
// @Summary Add Document
// @Tags leads
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Lead ID"
// @Param request body request.AddDocumentRequest true "Document metadata"
// @Success 201 {object} response.APIResponse
// @Router /leads/{id}/documents [post]
func (h *LeadHandler) AddDocument(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid lead ID")
		return
	}

	var req request.AddDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := service.AddDocumentInput{
		Name: req.Name,
		Type: req.Type,
		Size: req.Size,
		URL:  req.URL,
	}
	if userID := GetUserID(c); userID != nil {
		input.UploadedBy = *userID
	}

	lead, err := h.leadService.AddDocument(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Document added successfully", lead)
}

// DeleteDocument removes a document record from a lead
// @Summary Delete Document
// @Tags leads
// @Security BearerAuth
// @Param id path string true "Lead ID"
// @Param documentId path string true "Document ID"
// @Success 200 {object} response.APIResponse
// @Router /leads/{id}/documents/{documentId} [delete]
func (h *LeadHandler) DeleteDocument(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid lead ID")
		return
	}
	documentID, err := uuid.Parse(c.Param("documentId"))
	if err != nil {
		response.BadRequest(c, "Invalid document ID")
		return
	}

	lead, err := h.leadService.DeleteDocument(c.Request.Context(), id, documentID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Document deleted successfully", lead)
}
