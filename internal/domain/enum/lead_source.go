package enum

// LeadSource represents the channel a lead arrived through
type LeadSource string

const (
	LeadSourceWebsite     LeadSource = "website"
	LeadSourceReferral    LeadSource = "referral"
	LeadSourceSocialMedia LeadSource = "social-media"
	LeadSourceEmail       LeadSource = "email"
	LeadSourcePhone       LeadSource = "phone"
	LeadSourceEvent       LeadSource = "event"
	LeadSourceOther       LeadSource = "other"
)

// LeadSources returns all known sources
func LeadSources() []LeadSource {
	return []LeadSource{
		LeadSourceWebsite,
		LeadSourceReferral,
		LeadSourceSocialMedia,
		LeadSourceEmail,
		LeadSourcePhone,
		LeadSourceEvent,
		LeadSourceOther,
	}
}

// IsValid reports whether the source is a known value
func (s LeadSource) IsValid() bool {
	for _, v := range LeadSources() {
		if s == v {
			return true
		}
	}
	return false
}

func (s LeadSource) String() string {
	return string(s)
}
