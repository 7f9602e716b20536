package service

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/g2rism/backoffice-api/internal/config"
	"github.com/g2rism/backoffice-api/internal/domain/crm"
	"github.com/g2rism/backoffice-api/internal/domain/entity"
	"github.com/g2rism/backoffice-api/internal/domain/enum"
	infraRepo "github.com/g2rism/backoffice-api/internal/infrastructure/repository"
	"github.com/g2rism/backoffice-api/pkg/apperror"
	"github.com/g2rism/backoffice-api/pkg/cache"
	"github.com/g2rism/backoffice-api/pkg/pagination"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Role{},
		&entity.Permission{},
		&entity.Lead{},
		&entity.Interaction{},
		&entity.Note{},
		&entity.Task{},
		&entity.Document{},
		&entity.Employee{},
		&entity.Sale{},
		&entity.SaleItem{},
		&entity.AgencySettings{},
	))

	return db
}

func disabledCache() *cache.Cache {
	return cache.New(&config.RedisConfig{Enabled: false})
}

func newLeadService(t *testing.T) (*LeadService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	return NewLeadService(infraRepo.NewLeadRepository(db), disabledCache()), db
}

func createLead(t *testing.T, svc *LeadService, firstName, lastName string) *entity.Lead {
	t.Helper()
	lead, err := svc.CreateLead(context.Background(), &CreateLeadInput{
		FirstName: firstName,
		LastName:  lastName,
		Email:     strings.ToLower(firstName) + "@example.com",
		Phone:     "+57 300 000 0000",
	})
	require.NoError(t, err)
	return lead
}

func TestCreateLead_Defaults(t *testing.T) {
	svc, _ := newLeadService(t)

	lead, err := svc.CreateLead(context.Background(), &CreateLeadInput{
		FirstName: "Maria",
		LastName:  "Garcia",
		Email:     "maria@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "L000001", lead.Code)
	assert.Equal(t, "Maria Garcia", lead.FullName)
	assert.Equal(t, enum.LeadStatusNew, lead.Status)
	assert.Equal(t, enum.LeadSourceOther, lead.Source)
	assert.Equal(t, enum.ClientTypeIndividual, lead.ClientType)
	assert.Equal(t, enum.PriorityMedium, lead.Priority)
	assert.NotEqual(t, uuid.Nil, lead.ID)
}

func TestCreateLead_SequentialCodes(t *testing.T) {
	svc, _ := newLeadService(t)

	first := createLead(t, svc, "Ana", "Lopez")
	second := createLead(t, svc, "Luis", "Torres")

	assert.Equal(t, "L000001", first.Code)
	assert.Equal(t, "L000002", second.Code)
}

func TestCreateLead_Validation(t *testing.T) {
	svc, _ := newLeadService(t)
	ctx := context.Background()

	_, err := svc.CreateLead(ctx, &CreateLeadInput{FirstName: "   "})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)

	_, err = svc.CreateLead(ctx, &CreateLeadInput{FirstName: "Ana", Source: "carrier-pigeon"})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)

	bad := 150
	_, err = svc.CreateLead(ctx, &CreateLeadInput{FirstName: "Ana", Probability: &bad})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
}

func TestCreateLead_DeduplicatesTags(t *testing.T) {
	svc, _ := newLeadService(t)

	lead, err := svc.CreateLead(context.Background(), &CreateLeadInput{
		FirstName: "Ana",
		Tags:      []string{"vip", "europa", "vip", ""},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"vip", "europa"}, lead.Tags)
}

func TestGetLead_NotFound(t *testing.T) {
	svc, _ := newLeadService(t)

	_, err := svc.GetLead(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)
}

func TestUpdateLead_StatusWonStampsConversionDate(t *testing.T) {
	svc, _ := newLeadService(t)
	ctx := context.Background()
	lead := createLead(t, svc, "Maria", "Garcia")

	won := enum.LeadStatusWon.String()
	updated, err := svc.UpdateLead(ctx, &UpdateLeadInput{ID: lead.ID, Status: &won})
	require.NoError(t, err)
	assert.Equal(t, enum.LeadStatusWon, updated.Status)
	require.NotNil(t, updated.ConversionDate)

	contacted := enum.LeadStatusContacted.String()
	updated, err = svc.UpdateLead(ctx, &UpdateLeadInput{ID: lead.ID, Status: &contacted})
	require.NoError(t, err)
	assert.Equal(t, enum.LeadStatusContacted, updated.Status)
	assert.Nil(t, updated.ConversionDate)
}

func TestUpdateLead_PartialUpdateKeepsOtherFields(t *testing.T) {
	svc, _ := newLeadService(t)
	ctx := context.Background()
	lead := createLead(t, svc, "Maria", "Garcia")

	lastName := "Garcia Mendez"
	updated, err := svc.UpdateLead(ctx, &UpdateLeadInput{ID: lead.ID, LastName: &lastName})
	require.NoError(t, err)

	assert.Equal(t, "Maria Garcia Mendez", updated.FullName)
	assert.Equal(t, "maria@example.com", updated.Contact.Email)
	assert.Equal(t, lead.Code, updated.Code)
}

func TestAddInteraction_PersistsAndUpdatesCounters(t *testing.T) {
	svc, _ := newLeadService(t)
	ctx := context.Background()
	lead := createLead(t, svc, "Maria", "Garcia")

	_, err := svc.AddInteraction(ctx, lead.ID, crm.InteractionInput{
		Type:        enum.InteractionTypeCall,
		Subject:     "Primera llamada",
		Description: "Interesada en paquete a Cartagena",
	})
	require.NoError(t, err)

	_, err = svc.AddInteraction(ctx, lead.ID, crm.InteractionInput{
		Type:        enum.InteractionTypeEmail,
		Subject:     "Envío de propuesta",
		Description: "Cotización preliminar enviada",
	})
	require.NoError(t, err)

	reloaded, err := svc.GetLead(ctx, lead.ID)
	require.NoError(t, err)

	assert.Equal(t, 2, reloaded.TotalInteractions)
	require.Len(t, reloaded.Interactions, 2)
	assert.Equal(t, "Envío de propuesta", reloaded.Interactions[0].Subject)
	assert.NotNil(t, reloaded.LastContactDate)
}

func TestAddInteraction_RejectsBlankSubject(t *testing.T) {
	svc, _ := newLeadService(t)
	lead := createLead(t, svc, "Maria", "Garcia")

	_, err := svc.AddInteraction(context.Background(), lead.ID, crm.InteractionInput{
		Subject:     "  ",
		Description: "sin asunto",
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
}

func TestNotes_PinAndDeleteRoundTrip(t *testing.T) {
	svc, _ := newLeadService(t)
	ctx := context.Background()
	lead := createLead(t, svc, "Maria", "Garcia")

	withNote, err := svc.AddNote(ctx, lead.ID, "Prefiere viajar en diciembre", uuid.New())
	require.NoError(t, err)
	require.Len(t, withNote.Notes, 1)
	noteID := withNote.Notes[0].ID

	pinned, err := svc.ToggleNotePin(ctx, lead.ID, noteID)
	require.NoError(t, err)
	assert.True(t, pinned.Notes[0].IsPinned)

	_, err = svc.ToggleNotePin(ctx, lead.ID, uuid.New())
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)

	after, err := svc.DeleteNote(ctx, lead.ID, noteID)
	require.NoError(t, err)
	assert.Empty(t, after.Notes)
}

func TestTasks_ToggleCompletion(t *testing.T) {
	svc, _ := newLeadService(t)
	ctx := context.Background()
	lead := createLead(t, svc, "Maria", "Garcia")

	due := lead.CreatedAt.AddDate(0, 0, 7)
	withTask, err := svc.AddTask(ctx, lead.ID, crm.TaskInput{
		Title:   "Llamar para confirmar fechas",
		DueDate: due,
	})
	require.NoError(t, err)
	require.Len(t, withTask.Tasks, 1)
	taskID := withTask.Tasks[0].ID
	assert.Equal(t, enum.PriorityMedium, withTask.Tasks[0].Priority)

	done, err := svc.ToggleTask(ctx, lead.ID, taskID)
	require.NoError(t, err)
	assert.True(t, done.Tasks[0].Completed)
	assert.NotNil(t, done.Tasks[0].CompletedAt)

	reopened, err := svc.ToggleTask(ctx, lead.ID, taskID)
	require.NoError(t, err)
	assert.False(t, reopened.Tasks[0].Completed)
	assert.Nil(t, reopened.Tasks[0].CompletedAt)
}

func TestDocuments_AddAndDelete(t *testing.T) {
	svc, _ := newLeadService(t)
	ctx := context.Background()
	lead := createLead(t, svc, "Maria", "Garcia")

	withDoc, err := svc.AddDocument(ctx, lead.ID, AddDocumentInput{
		Name: "pasaporte.pdf",
		Type: "application/pdf",
		Size: 102400,
		URL:  "https://files.example.com/pasaporte.pdf",
	})
	require.NoError(t, err)
	require.Len(t, withDoc.Documents, 1)

	after, err := svc.DeleteDocument(ctx, lead.ID, withDoc.Documents[0].ID)
	require.NoError(t, err)
	assert.Empty(t, after.Documents)
}

func TestDeleteLead(t *testing.T) {
	svc, _ := newLeadService(t)
	ctx := context.Background()
	lead := createLead(t, svc, "Maria", "Garcia")

	require.NoError(t, svc.DeleteLead(ctx, lead.ID))

	_, err := svc.GetLead(ctx, lead.ID)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)
}

func TestListLeads_FilterByStatusAndSearch(t *testing.T) {
	svc, _ := newLeadService(t)
	ctx := context.Background()

	maria := createLead(t, svc, "Maria", "Garcia")
	createLead(t, svc, "Luis", "Torres")
	createLead(t, svc, "Ana", "Lopez")

	qualified := enum.LeadStatusQualified.String()
	_, err := svc.UpdateLead(ctx, &UpdateLeadInput{ID: maria.ID, Status: &qualified})
	require.NoError(t, err)

	params := &pagination.PaginationParams{Page: 1, PerPage: 10}
	result, err := svc.ListLeads(ctx, crm.Filter{Status: qualified}, params)
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, maria.ID, result.Items[0].ID)
	assert.Equal(t, int64(1), result.Pagination.Total)

	result, err = svc.ListLeads(ctx, crm.Filter{Search: "LUIS"}, params)
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Luis Torres", result.Items[0].FullName)
}

func TestGetPipeline_GroupsByStage(t *testing.T) {
	svc, _ := newLeadService(t)
	ctx := context.Background()

	createLead(t, svc, "Maria", "Garcia")
	createLead(t, svc, "Luis", "Torres")

	stages, err := svc.GetPipeline(ctx, crm.Filter{})
	require.NoError(t, err)
	require.Len(t, stages, 6)

	assert.Equal(t, enum.LeadStatusNew, stages[0].Status)
	assert.Equal(t, 2, stages[0].Count)
}
