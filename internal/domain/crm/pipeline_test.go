package crm

import (
	"testing"

	"github.com/g2rism/backoffice-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
)

func TestGroupPipeline_StageOrderAndLabels(t *testing.T) {
	stages := GroupPipeline(sampleLeads())

	assert.Len(t, stages, 6)
	assert.Equal(t, "Nuevo", stages[0].Label)
	assert.Equal(t, "Contactado", stages[1].Label)
	assert.Equal(t, "Calificado", stages[2].Label)
	assert.Equal(t, "Propuesta", stages[3].Label)
	assert.Equal(t, "Negociación", stages[4].Label)
	assert.Equal(t, "Ganado", stages[5].Label)
}

func TestGroupPipeline_QualifiedStage(t *testing.T) {
	stages := GroupPipeline(sampleLeads())

	qualified := stages[2]
	assert.Equal(t, enum.LeadStatusQualified, qualified.Status)
	assert.Equal(t, 2, qualified.Count)
	assert.InDelta(t, 11300000, qualified.Value, 0.001)
}

func TestGroupPipeline_LostExcluded(t *testing.T) {
	stages := GroupPipeline(sampleLeads())

	placed := 0
	for _, stage := range stages {
		assert.NotEqual(t, enum.LeadStatusLost, stage.Status)
		for _, l := range stage.Leads {
			assert.NotEqual(t, enum.LeadStatusLost, l.Status)
		}
		placed += stage.Count
	}

	// each non-lost lead lands in exactly one stage
	assert.Equal(t, 7, placed)
}

func TestGroupPipeline_EmptyStagesPresent(t *testing.T) {
	stages := GroupPipeline(nil)

	assert.Len(t, stages, 6)
	for _, stage := range stages {
		assert.Zero(t, stage.Count)
		assert.Zero(t, stage.Value)
		assert.NotNil(t, stage.Leads)
		assert.Empty(t, stage.Leads)
	}
}

func TestGroupPipeline_CountMatchesLeads(t *testing.T) {
	for _, stage := range GroupPipeline(sampleLeads()) {
		assert.Equal(t, len(stage.Leads), stage.Count)
	}
}
