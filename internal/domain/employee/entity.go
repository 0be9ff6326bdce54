package employee

import "time"

type Role string

const (
	RoleEmployee Role = "employee"
	RoleManager  Role = "manager"
	RoleHR       Role = "hr"
	RoleAdmin    Role = "admin"
)

// IsHR reports whether the role carries the HR/admin override used by the
// timesheet approval workflow.
func (r Role) IsHR() bool {
	return r == RoleHR || r == RoleAdmin
}

// Employee is the engine's read-only view of the employee directory. The
// directory itself is owned by an external collaborator; the engine needs
// identity, contact and the reporting line.
type Employee struct {
	ID            string
	Name          string
	Email         *string
	Department    *string
	Role          Role
	LineManagerID *string
	IsActive      bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
