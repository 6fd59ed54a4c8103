package user

import "time"

type Role string

const (
	RoleGuest     Role = "guest"     // Registered, no application yet
	RoleCandidate Role = "candidate" // Applied to a recruitment
	RoleEmployee  Role = "employee"  // Hired, eligible for attendance/payroll
	RoleAdmin     Role = "admin"     // HR administrator
)

type User struct {
	ID           string
	NIK          string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	Image        string
	Bio          *string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleGuest, RoleCandidate, RoleEmployee, RoleAdmin:
		return true
	}
	return false
}

// CanTransitionTo reports whether the role transition is allowed.
// Transitions form the hiring funnel: guest -> candidate -> employee ->
// admin, with direct hire (guest -> employee) permitted. Role changes
// happen only through these edges so that side effects like "applying
// to a recruitment marks the user a candidate" stay auditable.
func (r Role) CanTransitionTo(next Role) bool {
	switch r {
	case RoleGuest:
		return next == RoleCandidate || next == RoleEmployee
	case RoleCandidate:
		return next == RoleEmployee || next == RoleGuest
	case RoleEmployee:
		return next == RoleAdmin
	default:
		return false
	}
}

// IsAdmin checks if the user is an HR administrator
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsEmployed checks if the user already holds a staff role
func (u *User) IsEmployed() bool {
	return u.Role == RoleEmployee || u.Role == RoleAdmin
}
