package attendance

import "time"

// Status is the closed set of attendance states. It is deliberately a
// tagged type so counter-style aggregations never fall through on an
// unrecognized string.
type Status string

const (
	StatusPresent Status = "present"
	StatusLeave   Status = "leave"
	StatusAbsence Status = "absence"
)

// Valid reports whether s is one of the three known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPresent, StatusLeave, StatusAbsence:
		return true
	}
	return false
}

// ParseStatus converts a raw string into a Status or fails loudly.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.Valid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

// AbsenceDescription is the note attached to synthetic absence records
// created by the reconciliation sweep ("without explanation").
const AbsenceDescription = "tanpa keterangan"

type Attendance struct {
	ID          string
	EmployeeID  string
	Date        time.Time // day granularity, no time component
	Status      Status
	DayLeave    *int
	Description string
	CreatedAt   time.Time

	// DTO / Join
	EmployeeName *string
	EmployeeNIK  *string
}
