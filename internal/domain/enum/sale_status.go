package enum

// SaleStatus represents the lifecycle state of a sale quotation
type SaleStatus string

const (
	SaleStatusDraft    SaleStatus = "draft"
	SaleStatusSent     SaleStatus = "sent"
	SaleStatusApproved SaleStatus = "approved"
	SaleStatusRejected SaleStatus = "rejected"
	SaleStatusInvoiced SaleStatus = "invoiced"
)

// SaleStatuses returns all known sale statuses
func SaleStatuses() []SaleStatus {
	return []SaleStatus{
		SaleStatusDraft,
		SaleStatusSent,
		SaleStatusApproved,
		SaleStatusRejected,
		SaleStatusInvoiced,
	}
}

// IsValid reports whether the status is a known value
func (s SaleStatus) IsValid() bool {
	for _, v := range SaleStatuses() {
		if s == v {
			return true
		}
	}
	return false
}

func (s SaleStatus) String() string {
	return string(s)
}
