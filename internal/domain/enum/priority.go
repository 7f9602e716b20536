package enum

// Priority represents the urgency assigned to a lead or task
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Priorities returns all priorities from lowest to highest
func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}
}

// IsValid reports whether the priority is a known value
func (p Priority) IsValid() bool {
	for _, v := range Priorities() {
		if p == v {
			return true
		}
	}
	return false
}

func (p Priority) String() string {
	return string(p)
}
