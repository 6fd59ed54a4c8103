package attendance

import "errors"

// Attendance domain errors
var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrInvalidStatus      = errors.New("unknown attendance status")
	ErrDuplicateDate      = errors.New("attendance already recorded for this date")

	// QR check-in errors
	ErrAlreadyCheckedIn = errors.New("you have already checked in today")
	ErrQRCodeExpired    = errors.New("qr code is outside its validity window")
	ErrQRCodeInvalid    = errors.New("qr code could not be verified")
)
