package enum

// LeadStatus represents a lead's position in the sales pipeline
type LeadStatus string

const (
	LeadStatusNew         LeadStatus = "new"
	LeadStatusContacted   LeadStatus = "contacted"
	LeadStatusQualified   LeadStatus = "qualified"
	LeadStatusProposal    LeadStatus = "proposal"
	LeadStatusNegotiation LeadStatus = "negotiation"
	LeadStatusWon         LeadStatus = "won"
	LeadStatusLost        LeadStatus = "lost"
)

// LeadStatuses returns all statuses in pipeline order, terminal ones last
func LeadStatuses() []LeadStatus {
	return []LeadStatus{
		LeadStatusNew,
		LeadStatusContacted,
		LeadStatusQualified,
		LeadStatusProposal,
		LeadStatusNegotiation,
		LeadStatusWon,
		LeadStatusLost,
	}
}

// IsValid reports whether the status is a known value
func (s LeadStatus) IsValid() bool {
	for _, v := range LeadStatuses() {
		if s == v {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the lead has left the active pipeline
func (s LeadStatus) IsTerminal() bool {
	return s == LeadStatusWon || s == LeadStatusLost
}

func (s LeadStatus) String() string {
	return string(s)
}
