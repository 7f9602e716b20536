package crm

import (
	"testing"

	"github.com/g2rism/backoffice-api/internal/domain/entity"
	"github.com/g2rism/backoffice-api/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

var (
	advisorAna  = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	advisorLuis = uuid.MustParse("22222222-2222-2222-2222-222222222222")
)

// sampleLeads is the shared eight-lead fixture: six active, one won, one lost.
func sampleLeads() []entity.Lead {
	return []entity.Lead{
		{
			ID: uuid.New(), Code: "L000001", FullName: "Maria Garcia",
			Contact:    entity.Contact{Email: "maria.garcia@example.com"},
			Status:     enum.LeadStatusQualified,
			Source:     enum.LeadSourceWebsite,
			ClientType: enum.ClientTypeIndividual,
			Priority:   enum.PriorityHigh,
			AssignedTo: advisorAna, EstimatedValue: 4500000, Score: 80,
		},
		{
			ID: uuid.New(), Code: "L000002", FullName: "Carlos Mendoza",
			Contact:    entity.Contact{Email: "carlos.mendoza@example.com"},
			Status:     enum.LeadStatusNew,
			Source:     enum.LeadSourceReferral,
			ClientType: enum.ClientTypeIndividual,
			Priority:   enum.PriorityMedium,
			AssignedTo: advisorLuis, EstimatedValue: 2000000, Score: 40,
		},
		{
			ID: uuid.New(), Code: "L000003", FullName: "Viajes Andinos SAS",
			Contact:    entity.Contact{Email: "ventas@viajesandinos.co"},
			Status:     enum.LeadStatusContacted,
			Source:     enum.LeadSourceSocialMedia,
			ClientType: enum.ClientTypeCorporate,
			Priority:   enum.PriorityHigh,
			AssignedTo: advisorAna, EstimatedValue: 12000000, Score: 65,
		},
		{
			ID: uuid.New(), Code: "L000004", FullName: "Juliana Torres",
			Contact:    entity.Contact{Email: "juliana.torres@example.com"},
			Status:     enum.LeadStatusQualified,
			Source:     enum.LeadSourceWebsite,
			ClientType: enum.ClientTypeIndividual,
			Priority:   enum.PriorityUrgent,
			AssignedTo: advisorLuis, EstimatedValue: 6800000, Score: 75,
		},
		{
			ID: uuid.New(), Code: "L000005", FullName: "Grupo Excursion Eje Cafetero",
			Contact:    entity.Contact{Email: "coordinador@ejegroup.co"},
			Status:     enum.LeadStatusProposal,
			Source:     enum.LeadSourceEvent,
			ClientType: enum.ClientTypeGroup,
			Priority:   enum.PriorityMedium,
			AssignedTo: advisorAna, EstimatedValue: 18500000, Score: 70,
		},
		{
			ID: uuid.New(), Code: "L000006", FullName: "Roberto Pineda",
			Contact:    entity.Contact{Email: "roberto.pineda@example.com"},
			Status:     enum.LeadStatusNegotiation,
			Source:     enum.LeadSourceReferral,
			ClientType: enum.ClientTypeIndividual,
			Priority:   enum.PriorityHigh,
			AssignedTo: advisorLuis, EstimatedValue: 5200000, Score: 85,
		},
		{
			ID: uuid.New(), Code: "L000007", FullName: "Lucia Fernandez",
			Contact:    entity.Contact{Email: "lucia.fernandez@example.com"},
			Status:     enum.LeadStatusWon,
			Source:     enum.LeadSourceWebsite,
			ClientType: enum.ClientTypeIndividual,
			Priority:   enum.PriorityLow,
			AssignedTo: advisorAna, EstimatedValue: 3100000, Score: 95,
		},
		{
			ID: uuid.New(), Code: "L000008", FullName: "Andres Castillo",
			Contact:    entity.Contact{Email: "andres.castillo@example.com"},
			Status:     enum.LeadStatusLost,
			Source:     enum.LeadSourcePhone,
			ClientType: enum.ClientTypeIndividual,
			Priority:   enum.PriorityLow,
			AssignedTo: advisorLuis, EstimatedValue: 1500000, Score: 20,
		},
	}
}

func TestFilterApply_NoCriteriaReturnsEverything(t *testing.T) {
	leads := sampleLeads()

	result := Filter{}.Apply(leads)

	assert.Len(t, result, len(leads))
}

func TestFilterApply_AllSentinelDisablesCriterion(t *testing.T) {
	leads := sampleLeads()

	result := Filter{Status: FilterAll, Source: FilterAll, Priority: FilterAll}.Apply(leads)

	assert.Len(t, result, len(leads))
}

func TestFilterApply_SearchMatchesNameCaseInsensitive(t *testing.T) {
	leads := sampleLeads()

	result := Filter{Search: "maria"}.Apply(leads)

	assert.Len(t, result, 1)
	assert.Equal(t, "L000001", result[0].Code)
}

func TestFilterApply_SearchMatchesCodeAndEmail(t *testing.T) {
	leads := sampleLeads()

	byCode := Filter{Search: "l000005"}.Apply(leads)
	assert.Len(t, byCode, 1)
	assert.Equal(t, "Grupo Excursion Eje Cafetero", byCode[0].FullName)

	byEmail := Filter{Search: "viajesandinos"}.Apply(leads)
	assert.Len(t, byEmail, 1)
	assert.Equal(t, "L000003", byEmail[0].Code)
}

func TestFilterApply_ExactStatusFilter(t *testing.T) {
	leads := sampleLeads()

	result := Filter{Status: "qualified"}.Apply(leads)

	assert.Len(t, result, 2)
	for _, l := range result {
		assert.Equal(t, enum.LeadStatusQualified, l.Status)
	}
}

func TestFilterApply_CriteriaAreConjunctive(t *testing.T) {
	leads := sampleLeads()

	statusOnly := Filter{Status: "qualified"}.Apply(leads)
	combined := Filter{Status: "qualified", AssignedTo: advisorAna.String()}.Apply(leads)

	// adding a criterion can only shrink the result
	assert.LessOrEqual(t, len(combined), len(statusOnly))
	assert.Len(t, combined, 1)
	assert.Equal(t, "L000001", combined[0].Code)
}

func TestFilterApply_PreservesInputOrder(t *testing.T) {
	leads := sampleLeads()

	result := Filter{AssignedTo: advisorLuis.String()}.Apply(leads)

	assert.Equal(t, []string{"L000002", "L000004", "L000006", "L000008"},
		[]string{result[0].Code, result[1].Code, result[2].Code, result[3].Code})
}

func TestFilterApply_NoMatchReturnsEmptySlice(t *testing.T) {
	result := Filter{Search: "no-such-lead"}.Apply(sampleLeads())

	assert.NotNil(t, result)
	assert.Empty(t, result)
}
