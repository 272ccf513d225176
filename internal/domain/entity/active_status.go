package entity

// ActiveStatus is the single-character account state stored with a user.
type ActiveStatus string

const (
	// ActiveYes marks an account that may sign in.
	ActiveYes ActiveStatus = "Y"
	// ActiveNo marks an account that has not been activated.
	ActiveNo ActiveStatus = "N"
	// ActiveDisabled marks an account that was switched off by an administrator.
	ActiveDisabled ActiveStatus = "D"
)

// String returns the string representation of the ActiveStatus.
func (s ActiveStatus) String() string {
	return string(s)
}

// IsValid checks if the ActiveStatus is a known value.
func (s ActiveStatus) IsValid() bool {
	switch s {
	case ActiveYes, ActiveNo, ActiveDisabled:
		return true
	default:
		return false
	}
}
