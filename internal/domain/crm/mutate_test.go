package crm

import (
	"testing"
	"time"

	"github.com/g2rism/backoffice-api/internal/domain/entity"
	"github.com/g2rism/backoffice-api/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLead() *entity.Lead {
	return &entity.Lead{ID: uuid.New(), Code: "L000001", FullName: "Maria Garcia"}
}

func TestAddInteraction_PrependsAndMaintainsCounter(t *testing.T) {
	lead := newLead()
	now := time.Now()

	for i := 0; i < 3; i++ {
		_, err := AddInteraction(lead, InteractionInput{
			Type:        enum.InteractionTypeCall,
			Subject:     "Seguimiento",
			Description: "Llamada de seguimiento",
			CreatedBy:   advisorAna,
		}, now.Add(time.Duration(i)*time.Hour))
		require.NoError(t, err)

		assert.Equal(t, len(lead.Interactions), lead.TotalInteractions)
	}

	assert.Equal(t, 3, lead.TotalInteractions)
	// newest first
	assert.Equal(t, now.Add(2*time.Hour), lead.Interactions[0].Date)
}

func TestAddInteraction_UpdatesContactDates(t *testing.T) {
	lead := newLead()
	now := time.Now()
	followUp := now.AddDate(0, 0, 3)

	_, err := AddInteraction(lead, InteractionInput{
		Type:         enum.InteractionTypeMeeting,
		Subject:      "Cotización Cartagena",
		Description:  "Reunión para revisar la propuesta",
		NextFollowUp: &followUp,
	}, now)
	require.NoError(t, err)

	require.NotNil(t, lead.LastContactDate)
	assert.Equal(t, now, *lead.LastContactDate)
	require.NotNil(t, lead.NextFollowUpDate)
	assert.Equal(t, followUp, *lead.NextFollowUpDate)

	// a later interaction without a follow-up keeps the existing one
	later := now.Add(time.Hour)
	_, err = AddInteraction(lead, InteractionInput{
		Type:        enum.InteractionTypeEmail,
		Subject:     "Envío de itinerario",
		Description: "Itinerario adjunto",
	}, later)
	require.NoError(t, err)

	assert.Equal(t, later, *lead.LastContactDate)
	assert.Equal(t, followUp, *lead.NextFollowUpDate)
}

func TestAddInteraction_RejectsBlankFields(t *testing.T) {
	lead := newLead()
	now := time.Now()

	_, err := AddInteraction(lead, InteractionInput{Subject: "  ", Description: "algo"}, now)
	assert.ErrorIs(t, err, ErrInteractionSubjectRequired)

	_, err = AddInteraction(lead, InteractionInput{Subject: "algo", Description: ""}, now)
	assert.ErrorIs(t, err, ErrInteractionDescriptionRequired)

	assert.Empty(t, lead.Interactions)
	assert.Zero(t, lead.TotalInteractions)
	assert.Nil(t, lead.LastContactDate)
}

func TestAddNote_PrependsUnpinned(t *testing.T) {
	lead := newLead()
	now := time.Now()

	_, err := AddNote(lead, "Prefiere viajar en diciembre", advisorAna, now)
	require.NoError(t, err)
	second, err := AddNote(lead, "Confirmar número de viajeros", advisorAna, now.Add(time.Minute))
	require.NoError(t, err)

	require.Len(t, lead.Notes, 2)
	assert.Equal(t, second.ID, lead.Notes[0].ID)
	assert.False(t, lead.Notes[0].IsPinned)
	assert.False(t, lead.Notes[1].IsPinned)
}

func TestAddNote_RejectsBlankContent(t *testing.T) {
	lead := newLead()

	_, err := AddNote(lead, "   ", advisorAna, time.Now())

	assert.ErrorIs(t, err, ErrNoteContentRequired)
	assert.Empty(t, lead.Notes)
}

func TestToggleNotePin_OnlyTargetAffected(t *testing.T) {
	lead := newLead()
	now := time.Now()
	first, _ := AddNote(lead, "nota uno", advisorAna, now)
	second, _ := AddNote(lead, "nota dos", advisorAna, now)
	targetID := first.ID

	require.True(t, ToggleNotePin(lead, targetID, now))

	for _, n := range lead.Notes {
		if n.ID == targetID {
			assert.True(t, n.IsPinned)
			assert.NotNil(t, n.UpdatedAt)
		} else {
			assert.Equal(t, second.ID, n.ID)
			assert.False(t, n.IsPinned)
			assert.Nil(t, n.UpdatedAt)
		}
	}
}

func TestToggleNotePin_TwiceRestoresState(t *testing.T) {
	lead := newLead()
	now := time.Now()
	note, _ := AddNote(lead, "nota", advisorAna, now)

	require.True(t, ToggleNotePin(lead, note.ID, now))
	require.True(t, ToggleNotePin(lead, note.ID, now))

	assert.False(t, lead.Notes[0].IsPinned)
}

func TestToggleNotePin_UnknownIDIsNoOp(t *testing.T) {
	lead := newLead()
	AddNote(lead, "nota", advisorAna, time.Now())

	assert.False(t, ToggleNotePin(lead, uuid.New(), time.Now()))
	assert.False(t, lead.Notes[0].IsPinned)
}

func TestDeleteNote(t *testing.T) {
	lead := newLead()
	now := time.Now()
	first, _ := AddNote(lead, "nota uno", advisorAna, now)
	AddNote(lead, "nota dos", advisorAna, now)

	assert.False(t, DeleteNote(lead, uuid.New()))
	assert.Len(t, lead.Notes, 2)

	assert.True(t, DeleteNote(lead, first.ID))
	require.Len(t, lead.Notes, 1)
	assert.Equal(t, "nota dos", lead.Notes[0].Content)
}

func TestAddTask_Validation(t *testing.T) {
	lead := newLead()
	now := time.Now()

	_, err := AddTask(lead, TaskInput{DueDate: now}, now)
	assert.ErrorIs(t, err, ErrTaskTitleRequired)

	_, err = AddTask(lead, TaskInput{Title: "Enviar cotización"}, now)
	assert.ErrorIs(t, err, ErrTaskDueDateRequired)

	assert.Empty(t, lead.Tasks)
}

func TestAddTask_DefaultsOpenWithMediumPriority(t *testing.T) {
	lead := newLead()
	now := time.Now()

	task, err := AddTask(lead, TaskInput{
		Title:   "Enviar cotización",
		DueDate: now.AddDate(0, 0, 2),
	}, now)
	require.NoError(t, err)

	assert.False(t, task.Completed)
	assert.Nil(t, task.CompletedAt)
	assert.Equal(t, enum.PriorityMedium, task.Priority)
}

func TestToggleTask_CompletionRoundTrip(t *testing.T) {
	lead := newLead()
	now := time.Now()
	task, _ := AddTask(lead, TaskInput{Title: "Llamar al cliente", DueDate: now}, now)

	require.True(t, ToggleTask(lead, task.ID, now))
	assert.True(t, lead.Tasks[0].Completed)
	require.NotNil(t, lead.Tasks[0].CompletedAt)
	assert.Equal(t, now, *lead.Tasks[0].CompletedAt)

	require.True(t, ToggleTask(lead, task.ID, now.Add(time.Minute)))
	assert.False(t, lead.Tasks[0].Completed)
	assert.Nil(t, lead.Tasks[0].CompletedAt)
}

func TestToggleTask_UnknownIDIsNoOp(t *testing.T) {
	lead := newLead()
	now := time.Now()
	AddTask(lead, TaskInput{Title: "Llamar al cliente", DueDate: now}, now)

	assert.False(t, ToggleTask(lead, uuid.New(), now))
	assert.False(t, lead.Tasks[0].Completed)
}

func TestDeleteTask(t *testing.T) {
	lead := newLead()
	now := time.Now()
	task, _ := AddTask(lead, TaskInput{Title: "Llamar al cliente", DueDate: now}, now)

	assert.False(t, DeleteTask(lead, uuid.New()))
	assert.True(t, DeleteTask(lead, task.ID))
	assert.Empty(t, lead.Tasks)
}
