package enum

// InteractionType represents the kind of contact logged against a lead
type InteractionType string

const (
	InteractionTypeCall     InteractionType = "call"
	InteractionTypeEmail    InteractionType = "email"
	InteractionTypeMeeting  InteractionType = "meeting"
	InteractionTypeWhatsApp InteractionType = "whatsapp"
	InteractionTypeNote     InteractionType = "note"
	InteractionTypeTask     InteractionType = "task"
)

// InteractionTypes returns all known interaction types
func InteractionTypes() []InteractionType {
	return []InteractionType{
		InteractionTypeCall,
		InteractionTypeEmail,
		InteractionTypeMeeting,
		InteractionTypeWhatsApp,
		InteractionTypeNote,
		InteractionTypeTask,
	}
}

// IsValid reports whether the interaction type is a known value
func (t InteractionType) IsValid() bool {
	for _, v := range InteractionTypes() {
		if t == v {
			return true
		}
	}
	return false
}

func (t InteractionType) String() string {
	return string(t)
}
