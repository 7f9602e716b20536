package crm

import (
	"testing"

	"github.com/g2rism/backoffice-api/internal/domain/entity"
	"github.com/g2rism/backoffice-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
)

func TestComputeStats_Counters(t *testing.T) {
	stats := ComputeStats(sampleLeads())

	assert.Equal(t, 8, stats.TotalLeads)
	assert.Equal(t, 6, stats.ActiveLeads)
	assert.Equal(t, 1, stats.ConvertedLeads)
	assert.InDelta(t, 12.5, stats.ConversionRate, 0.001)
}

func TestComputeStats_StatusCountsSumToTotal(t *testing.T) {
	stats := ComputeStats(sampleLeads())

	sum := 0
	for _, breakdown := range stats.LeadsByStatus {
		sum += breakdown.Count
	}
	assert.Equal(t, stats.TotalLeads, sum)
}

func TestComputeStats_EveryStatusPresent(t *testing.T) {
	// single-lead collection: the other six statuses still appear with zero
	stats := ComputeStats([]entity.Lead{{Status: enum.LeadStatusNew}})

	assert.Len(t, stats.LeadsByStatus, len(enum.LeadStatuses()))

	byStatus := make(map[enum.LeadStatus]int)
	for _, breakdown := range stats.LeadsByStatus {
		byStatus[breakdown.Status] = breakdown.Count
	}
	assert.Equal(t, 1, byStatus[enum.LeadStatusNew])
	assert.Equal(t, 0, byStatus[enum.LeadStatusWon])
	assert.Equal(t, 0, byStatus[enum.LeadStatusLost])
}

func TestComputeStats_SourcesOmitZeroCounts(t *testing.T) {
	stats := ComputeStats(sampleLeads())

	for _, breakdown := range stats.LeadsBySource {
		assert.Greater(t, breakdown.Count, 0)
	}

	// the fixture uses five of the seven sources
	assert.Len(t, stats.LeadsBySource, 5)
}

func TestComputeStats_AverageScoreAndValue(t *testing.T) {
	stats := ComputeStats(sampleLeads())

	// (80+40+65+75+70+85+95+20) / 8
	assert.InDelta(t, 66.25, stats.AverageLeadScore, 0.001)
	assert.InDelta(t, 53600000, stats.TotalEstimatedValue, 0.001)
}

func TestComputeStats_EmptyCollection(t *testing.T) {
	stats := ComputeStats(nil)

	assert.Equal(t, 0, stats.TotalLeads)
	assert.Zero(t, stats.ConversionRate)
	assert.Zero(t, stats.AverageLeadScore)
	assert.Len(t, stats.LeadsByStatus, len(enum.LeadStatuses()))
	assert.Empty(t, stats.LeadsBySource)
}
