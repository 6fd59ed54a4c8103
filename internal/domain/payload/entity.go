package payload

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payload is one employee's payroll computation for one month.
type Payload struct {
	ID           string
	Month        string // "YYYY-MM"
	EmployeeID   string
	DepartmentID string
	Salary       decimal.Decimal
	Bonus        decimal.Decimal
	Reduction    decimal.Decimal
	UpdatedAt    time.Time

	// DTO / Join
	EmployeeName *string
}

// Net is the flat payroll formula: salary + bonus - reduction.
func (p Payload) Net() decimal.Decimal {
	return p.Salary.Add(p.Bonus).Sub(p.Reduction)
}
