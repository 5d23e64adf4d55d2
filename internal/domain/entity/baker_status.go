package entity

// BakerStatus is the approval state of a baker profile.
// Transitions are owned by the admin workflow and unrestricted between the three values.
type BakerStatus string

const (
	BakerStatusPending  BakerStatus = "PENDING"
	BakerStatusApproved BakerStatus = "APPROVED"
	BakerStatusRejected BakerStatus = "REJECTED"
)

// String returns the string representation of the BakerStatus.
func (s BakerStatus) String() string {
	return string(s)
}

// IsValid checks if the BakerStatus is one of the known states.
func (s BakerStatus) IsValid() bool {
	switch s {
	case BakerStatusPending, BakerStatusApproved, BakerStatusRejected:
		return true
	default:
		return false
	}
}

// ParseBakerStatus converts raw input into a BakerStatus, reporting whether it is known.
func ParseBakerStatus(raw string) (BakerStatus, bool) {
	status := BakerStatus(raw)

	return status, status.IsValid()
}

// Ptr returns a pointer to a copy of s, convenient for the nullable profile column.
func (s BakerStatus) Ptr() *BakerStatus {
	return &s
}
