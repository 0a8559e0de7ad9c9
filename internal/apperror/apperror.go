package apperror

// Error codes exposed on the wire.
const (
	CodeValidation    = "VALIDATION_ERROR"
	CodeDuplicate     = "DUPLICATE_EVENT"
	CodeNotFound      = "EVENT_NOT_FOUND"
	CodeInternal      = "INTERNAL_SERVER_ERROR"
	InternalMessage   = "An unexpected error occurred"
	ValidationMessage = "Validation failed"
)

// FieldError ties one validation failure to a named request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AppError is the error value every component of the service signals failure
// with. It carries everything the presenter needs to build a wire response.
type AppError struct {
	StatusCode int
	Code       string
	Message    string
	Details    []FieldError
}

func (e *AppError) Error() string {
	return e.Message
}

// BadRequest builds a 400 validation error, details may be nil.
func BadRequest(message string, details []FieldError) *AppError {
	return &AppError{
		StatusCode: 400,
		Code:       CodeValidation,
		Message:    message,
		Details:    details,
	}
}

// NotFound builds a 404 error. Reserved for lookup endpoints.
func NotFound(message string) *AppError {
	return &AppError{
		StatusCode: 404,
		Code:       CodeNotFound,
		Message:    message,
	}
}

// Conflict builds a 409 error with the given code.
func Conflict(message, code string) *AppError {
	return &AppError{
		StatusCode: 409,
		Code:       code,
		Message:    message,
	}
}

// Internal builds a generic 500 error. The message deliberately carries no
// internal detail.
func Internal() *AppError {
	return &AppError{
		StatusCode: 500,
		Code:       CodeInternal,
		Message:    InternalMessage,
	}
}
