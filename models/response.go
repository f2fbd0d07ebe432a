package models

// ErrorResponse is a generic error response structure for API
type ErrorResponse struct {
	Message string `json:"message" example:"Error message describing the issue"`
}

// TagListResponse is the wire shape for the tag listing endpoint.
type TagListResponse struct {
	Tags []string `json:"tags"`
}
