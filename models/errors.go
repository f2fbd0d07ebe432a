package models

import "fmt"

// ValidationError reports a payload that failed shape or required-field checks.
// Handlers translate it to a 400 response.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError reports a reference to a row that does not exist. Handlers
// translate it to a 404 response.
type NotFoundError struct {
	Resource string
	ID       int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %d not found", e.Resource, e.ID)
}
