package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrAlreadyEmployee  = errors.New("user is already registered as an employee")
)
