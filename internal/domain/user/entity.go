package user

type Role string

const (
	RoleHR       Role = "hr"       // HR administrator - full access to any employee
	RoleEmployee Role = "employee" // Regular employee - own records only
)

// IsHR checks if the role carries administrative access.
func (r Role) IsHR() bool {
	return r == RoleHR
}
