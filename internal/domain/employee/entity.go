package employee

import "time"

type Employee struct {
	ID           string
	UserID       string
	PositionID   string
	DepartmentID string
	JoinDate     time.Time
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// DTO / Join
	UserName       *string
	UserNIK        *string
	PositionName   *string
	DepartmentName *string
}
