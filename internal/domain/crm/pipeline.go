package crm

import (
	"github.com/g2rism/backoffice-api/internal/domain/entity"
	"github.com/g2rism/backoffice-api/internal/domain/enum"
)

// Stage is one column of the pipeline board
type Stage struct {
	Status enum.LeadStatus `json:"status"`
	Label  string          `json:"label"`
	Count  int             `json:"count"`
	Value  float64         `json:"value"`
	Leads  []entity.Lead   `json:"leads"`
}

// pipelineStages are the board columns in render order. Lost leads are
// deliberately excluded from the pipeline view.
var pipelineStages = []struct {
	status enum.LeadStatus
	label  string
}{
	{enum.LeadStatusNew, "Nuevo"},
	{enum.LeadStatusContacted, "Contactado"},
	{enum.LeadStatusQualified, "Calificado"},
	{enum.LeadStatusProposal, "Propuesta"},
	{enum.LeadStatusNegotiation, "Negociación"},
	{enum.LeadStatusWon, "Ganado"},
}

// GroupPipeline partitions the leads into the six fixed pipeline stages,
// carrying per-stage count and estimated-value sum. Every stage is present in
// the result even when empty; each lead appears in exactly one stage, and
// lost leads in none.
func GroupPipeline(leads []entity.Lead) []Stage {
	stages := make([]Stage, 0, len(pipelineStages))
	for _, def := range pipelineStages {
		stage := Stage{
			Status: def.status,
			Label:  def.label,
			Leads:  []entity.Lead{},
		}
		for i := range leads {
			if leads[i].Status != def.status {
				continue
			}
			stage.Leads = append(stage.Leads, leads[i])
			stage.Value += leads[i].EstimatedValue
		}
		stage.Count = len(stage.Leads)
		stages = append(stages, stage)
	}
	return stages
}
