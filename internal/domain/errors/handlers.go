package errors

// ErrorResponse is the body of every JSON error response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
