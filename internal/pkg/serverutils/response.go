package serverutils

// APIError is the uniform error envelope every failed request returns.
type APIError struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func ErrorResponse(message string) APIError {
	return APIError{
		Success: false,
		Error:   message,
	}
}
