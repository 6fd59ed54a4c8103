package payload

import "errors"

var (
	ErrPayloadNotFound = errors.New("payload not found")
)
