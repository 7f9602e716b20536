package crm

import (
	"github.com/g2rism/backoffice-api/internal/domain/entity"
	"github.com/g2rism/backoffice-api/internal/domain/enum"
)

// StatusBreakdown is the per-status slice of the dashboard stats
type StatusBreakdown struct {
	Status     enum.LeadStatus `json:"status"`
	Count      int             `json:"count"`
	Percentage float64         `json:"percentage"`
}

// SourceBreakdown is the per-source slice of the dashboard stats
type SourceBreakdown struct {
	Source     enum.LeadSource `json:"source"`
	Count      int             `json:"count"`
	Percentage float64         `json:"percentage"`
}

// Stats are the CRM counters shown on the dashboard
type Stats struct {
	TotalLeads          int               `json:"total_leads"`
	ActiveLeads         int               `json:"active_leads"`
	ConvertedLeads      int               `json:"converted_leads"`
	ConversionRate      float64           `json:"conversion_rate"`
	AverageLeadScore    float64           `json:"average_lead_score"`
	TotalEstimatedValue float64           `json:"total_estimated_value"`
	LeadsByStatus       []StatusBreakdown `json:"leads_by_status"`
	LeadsBySource       []SourceBreakdown `json:"leads_by_source"`
}

// ComputeStats aggregates the lead collection into dashboard counters.
// LeadsByStatus always carries one entry per status, zero counts included;
// LeadsBySource omits sources with no leads. All rates are 0 for an empty
// collection rather than NaN.
func ComputeStats(leads []entity.Lead) Stats {
	stats := Stats{TotalLeads: len(leads)}

	statusCounts := make(map[enum.LeadStatus]int, len(enum.LeadStatuses()))
	sourceCounts := make(map[enum.LeadSource]int, len(enum.LeadSources()))
	var scoreSum int

	for i := range leads {
		l := &leads[i]
		statusCounts[l.Status]++
		sourceCounts[l.Source]++
		scoreSum += l.Score
		stats.TotalEstimatedValue += l.EstimatedValue

		if l.Status == enum.LeadStatusWon {
			stats.ConvertedLeads++
		}
		if !l.Status.IsTerminal() {
			stats.ActiveLeads++
		}
	}

	if stats.TotalLeads > 0 {
		stats.ConversionRate = float64(stats.ConvertedLeads) / float64(stats.TotalLeads) * 100
		stats.AverageLeadScore = float64(scoreSum) / float64(stats.TotalLeads)
	}

	stats.LeadsByStatus = make([]StatusBreakdown, 0, len(enum.LeadStatuses()))
	for _, status := range enum.LeadStatuses() {
		count := statusCounts[status]
		stats.LeadsByStatus = append(stats.LeadsByStatus, StatusBreakdown{
			Status:     status,
			Count:      count,
			Percentage: percentage(count, stats.TotalLeads),
		})
	}

	stats.LeadsBySource = make([]SourceBreakdown, 0, len(enum.LeadSources()))
	for _, source := range enum.LeadSources() {
		count := sourceCounts[source]
		if count == 0 {
			continue
		}
		stats.LeadsBySource = append(stats.LeadsBySource, SourceBreakdown{
			Source:     source,
			Count:      count,
			Percentage: percentage(count, stats.TotalLeads),
		})
	}

	return stats
}

func percentage(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}
