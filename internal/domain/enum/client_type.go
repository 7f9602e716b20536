package enum

// ClientType classifies the kind of client behind a lead
type ClientType string

const (
	ClientTypeIndividual   ClientType = "individual"
	ClientTypeCorporate    ClientType = "corporate"
	ClientTypeTravelAgency ClientType = "travel-agency"
	ClientTypeGroup        ClientType = "group"
)

// ClientTypes returns all known client types
func ClientTypes() []ClientType {
	return []ClientType{
		ClientTypeIndividual,
		ClientTypeCorporate,
		ClientTypeTravelAgency,
		ClientTypeGroup,
	}
}

// IsValid reports whether the client type is a known value
func (t ClientType) IsValid() bool {
	for _, v := range ClientTypes() {
		if t == v {
			return true
		}
	}
	return false
}

func (t ClientType) String() string {
	return string(t)
}
