package crm

import (
	"errors"
	"strings"
	"time"

	"github.com/g2rism/backoffice-api/internal/domain/entity"
	"github.com/g2rism/backoffice-api/internal/domain/enum"
	"github.com/google/uuid"
)

// Validation errors returned by the mutation functions. The reference UI
// swallowed invalid input; here rejection is explicit so callers can surface
// it.
var (
	ErrInteractionSubjectRequired     = errors.New("interaction subject is required")
	ErrInteractionDescriptionRequired = errors.New("interaction description is required")
	ErrNoteContentRequired            = errors.New("note content is required")
	ErrTaskTitleRequired              = errors.New("task title is required")
	ErrTaskDueDateRequired            = errors.New("task due date is required")
)

// InteractionInput is the data needed to log an interaction
type InteractionInput struct {
	Type         enum.InteractionType
	Subject      string
	Description  string
	Duration     *int
	Outcome      *string
	NextFollowUp *time.Time
	CreatedBy    uuid.UUID
}

// AddInteraction prepends a new interaction to the lead, bumps the
// denormalized counter and advances last-contact / next-follow-up dates.
// The counter invariant total_interactions == len(interactions) holds on
// every return path.
func AddInteraction(l *entity.Lead, in InteractionInput, now time.Time) (*entity.Interaction, error) {
	if strings.TrimSpace(in.Subject) == "" {
		return nil, ErrInteractionSubjectRequired
	}
	if strings.TrimSpace(in.Description) == "" {
		return nil, ErrInteractionDescriptionRequired
	}

	interactionType := in.Type
	if interactionType == "" {
		interactionType = enum.InteractionTypeNote
	}

	interaction := entity.Interaction{
		ID:           uuid.New(),
		LeadID:       l.ID,
		Type:         interactionType,
		Date:         now,
		Subject:      in.Subject,
		Description:  in.Description,
		Duration:     in.Duration,
		Outcome:      in.Outcome,
		NextFollowUp: in.NextFollowUp,
		CreatedBy:    in.CreatedBy,
		CreatedAt:    now,
	}

	l.Interactions = append([]entity.Interaction{interaction}, l.Interactions...)
	l.TotalInteractions = len(l.Interactions)
	l.LastContactDate = &now
	if in.NextFollowUp != nil {
		l.NextFollowUpDate = in.NextFollowUp
	}

	return &l.Interactions[0], nil
}

// AddNote prepends a new unpinned note to the lead
func AddNote(l *entity.Lead, content string, createdBy uuid.UUID, now time.Time) (*entity.Note, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrNoteContentRequired
	}

	note := entity.Note{
		ID:        uuid.New(),
		LeadID:    l.ID,
		Content:   content,
		IsPinned:  false,
		CreatedBy: createdBy,
		CreatedAt: now,
	}

	l.Notes = append([]entity.Note{note}, l.Notes...)
	return &l.Notes[0], nil
}

// ToggleNotePin flips the pinned flag on the note with the given id.
// Returns false when no such note exists; no other note is touched.
func ToggleNotePin(l *entity.Lead, noteID uuid.UUID, now time.Time) bool {
	for i := range l.Notes {
		if l.Notes[i].ID == noteID {
			l.Notes[i].IsPinned = !l.Notes[i].IsPinned
			l.Notes[i].UpdatedAt = &now
			return true
		}
	}
	return false
}

// DeleteNote removes the note with the given id, returning false when absent
func DeleteNote(l *entity.Lead, noteID uuid.UUID) bool {
	for i := range l.Notes {
		if l.Notes[i].ID == noteID {
			l.Notes = append(l.Notes[:i], l.Notes[i+1:]...)
			return true
		}
	}
	return false
}

// TaskInput is the data needed to create a task
type TaskInput struct {
	Title       string
	Description string
	DueDate     time.Time
	Priority    enum.Priority
	AssignedTo  uuid.UUID
	CreatedBy   uuid.UUID
}

// AddTask prepends a new open task to the lead
func AddTask(l *entity.Lead, in TaskInput, now time.Time) (*entity.Task, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, ErrTaskTitleRequired
	}
	if in.DueDate.IsZero() {
		return nil, ErrTaskDueDateRequired
	}

	priority := in.Priority
	if priority == "" {
		priority = enum.PriorityMedium
	}

	task := entity.Task{
		ID:          uuid.New(),
		LeadID:      l.ID,
		Title:       in.Title,
		Description: in.Description,
		DueDate:     in.DueDate,
		Priority:    priority,
		Completed:   false,
		AssignedTo:  in.AssignedTo,
		CreatedBy:   in.CreatedBy,
		CreatedAt:   now,
	}

	l.Tasks = append([]entity.Task{task}, l.Tasks...)
	return &l.Tasks[0], nil
}

// ToggleTask flips the completion state of the task with the given id,
// stamping completed_at on completion and clearing it when reopened.
// Toggling twice restores the original state. Returns false when no such
// task exists.
func ToggleTask(l *entity.Lead, taskID uuid.UUID, now time.Time) bool {
	for i := range l.Tasks {
		if l.Tasks[i].ID != taskID {
			continue
		}
		if l.Tasks[i].Completed {
			l.Tasks[i].Completed = false
			l.Tasks[i].CompletedAt = nil
		} else {
			l.Tasks[i].Completed = true
			l.Tasks[i].CompletedAt = &now
		}
		return true
	}
	return false
}

// DeleteTask removes the task with the given id, returning false when absent
func DeleteTask(l *entity.Lead, taskID uuid.UUID) bool {
	for i := range l.Tasks {
		if l.Tasks[i].ID == taskID {
			l.Tasks = append(l.Tasks[:i], l.Tasks[i+1:]...)
			return true
		}
	}
	return false
}
