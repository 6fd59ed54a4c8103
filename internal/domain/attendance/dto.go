package attendance

import (
	"github.com/simpeg-app/simpeg-backend-go/internal/pkg/validator"
)

type AttendanceFilter struct {
	EmployeeID *string
	Status     *string
}

type RecordAttendanceRequest struct {
	EmployeeID  string `json:"employee"`
	Date        string `json:"date"`
	Status      string `json:"status"`
	DayLeave    *int   `json:"day_leave,omitempty"`
	Description string `json:"description,omitempty"`
}

func (r RecordAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be formatted as YYYY-MM-DD"})
	}
	if !Status(r.Status).Valid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of present, leave, absence"})
	}
	if r.DayLeave != nil {
		if Status(r.Status) != StatusLeave {
			errs = append(errs, validator.ValidationError{Field: "day_leave", Message: "is only allowed when status is leave"})
		} else if *r.DayLeave < 1 {
			errs = append(errs, validator.ValidationError{Field: "day_leave", Message: "must be at least 1"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListAttendanceRequest struct {
	// Month is a "YYYY-MM" bucket; when set it overrides StartDate/EndDate.
	Month      *string
	StartDate  *string
	EndDate    *string
	EmployeeID *string
	Status     *string
}

func (r ListAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month != nil {
		if _, ok := validator.IsValidYearMonth(*r.Month); !ok {
			errs = append(errs, validator.ValidationError{Field: "month", Message: "must be formatted as YYYY-MM"})
		}
	}
	if r.StartDate != nil {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be formatted as YYYY-MM-DD"})
		}
	}
	if r.EndDate != nil {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be formatted as YYYY-MM-DD"})
		}
	}
	if r.Status != nil && !Status(*r.Status).Valid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of present, leave, absence"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CalendarRequest struct {
	EmployeeID string
	Month      string // "YYYY-MM"
}

func (r CalendarRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee", Message: "is required"})
	}
	if _, ok := validator.IsValidYearMonth(r.Month); !ok {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be formatted as YYYY-MM"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee"`
	Date         string  `json:"date"`
	Status       string  `json:"status"`
	DayLeave     *int    `json:"day_leave,omitempty"`
	Description  string  `json:"description,omitempty"`
	EmployeeName *string `json:"employee_name,omitempty"`
	EmployeeNIK  *string `json:"employee_nik,omitempty"`
}

func ToResponse(att Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:           att.ID,
		EmployeeID:   att.EmployeeID,
		Date:         att.Date.Format("2006-01-02"),
		Status:       string(att.Status),
		DayLeave:     att.DayLeave,
		Description:  att.Description,
		EmployeeName: att.EmployeeName,
		EmployeeNIK:  att.EmployeeNIK,
	}
}

// MonthlySummaryResponse is one (year-month, employee) bucket.
type MonthlySummaryResponse struct {
	Month      string `json:"month"`
	EmployeeID string `json:"employee"`
	Present    int    `json:"present"`
	Leave      int    `json:"leave"`
	Absence    int    `json:"absence"`
}

// CalendarResponse maps day-of-month to a status. When duplicate rows
// exist for a day the last write wins.
type CalendarResponse struct {
	EmployeeID string         `json:"employee"`
	Month      string         `json:"month"`
	Days       map[int]string `json:"days"`
	Present    int            `json:"present"`
	Leave      int            `json:"leave"`
	Absence    int            `json:"absence"`
}

type QRCodeResponse struct {
	Text string `json:"text"`
	Time int64  `json:"time"`
}

type QRCheckInRequest struct {
	Text string `json:"text"`
	Time int64  `json:"time"`
}

func (r QRCheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Text) {
		errs = append(errs, validator.ValidationError{Field: "text", Message: "is required"})
	}
	if r.Time <= 0 {
		errs = append(errs, validator.ValidationError{Field: "time", Message: "must be a unix millisecond timestamp"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
