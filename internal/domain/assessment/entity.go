package assessment

import "time"

// Assessment is one performance review of an employee, scored on four
// aspects from 0 to 100.
type Assessment struct {
	ID         string
	EmployeeID string
	Manner     int
	Expertness int
	Diligence  int
	Tidiness   int
	Comment    string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO / Join
	EmployeeName *string
}

// Overall is the plain average of the four aspect scores.
func (a Assessment) Overall() float64 {
	return float64(a.Manner+a.Expertness+a.Diligence+a.Tidiness) / 4
}
