package enum

// ContactChannel represents a lead's preferred way of being reached
type ContactChannel string

const (
	ContactChannelEmail    ContactChannel = "email"
	ContactChannelPhone    ContactChannel = "phone"
	ContactChannelWhatsApp ContactChannel = "whatsapp"
)

// ContactChannels returns all known contact channels
func ContactChannels() []ContactChannel {
	return []ContactChannel{ContactChannelEmail, ContactChannelPhone, ContactChannelWhatsApp}
}

// IsValid reports whether the channel is a known value
func (c ContactChannel) IsValid() bool {
	for _, v := range ContactChannels() {
		if c == v {
			return true
		}
	}
	return false
}

func (c ContactChannel) String() string {
	return string(c)
}
