package employee

import "time"

// Employee is the directory's read model for attendance: enough to
// resolve identities and enrich records with display attributes. The
// full employee profile is owned by the directory service.
type Employee struct {
	ID        string
	UserID    *string
	FullName  string
	Position  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
