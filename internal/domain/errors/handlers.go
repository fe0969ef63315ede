package errors

// ErrorBody is the payload every non-2xx backend response carries.
type ErrorBody struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// MessageBody is returned by endpoints that only acknowledge an action.
type MessageBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
