package enum

// EmployeeStatus represents an employee's current standing
type EmployeeStatus string

const (
	EmployeeStatusActive   EmployeeStatus = "active"
	EmployeeStatusInactive EmployeeStatus = "inactive"
	EmployeeStatusOnLeave  EmployeeStatus = "on-leave"
)

// EmployeeStatuses returns all known employee statuses
func EmployeeStatuses() []EmployeeStatus {
	return []EmployeeStatus{EmployeeStatusActive, EmployeeStatusInactive, EmployeeStatusOnLeave}
}

// IsValid reports whether the status is a known value
func (s EmployeeStatus) IsValid() bool {
	for _, v := range EmployeeStatuses() {
		if s == v {
			return true
		}
	}
	return false
}

func (s EmployeeStatus) String() string {
	return string(s)
}
