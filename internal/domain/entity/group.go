package entity

// Group is a named collection of users.
type Group struct {
	ID          uint64
	Name        string // Unique across all groups.
	Description string
}

// DefaultGroups returns the groups seeded when no names are configured.
func DefaultGroups() []*Group {
	return []*Group{
		{Name: "users", Description: "User Group"},
		{Name: "admin", Description: "Admin Group"},
	}
}
