package subject

import "errors"

var (
	// Validation Errors
	ErrInvalidName        = errors.New("subject name cannot be empty or only whitespace")
	ErrNameTooLong        = errors.New("subject name exceeds maximum length")
	ErrDescriptionTooLong = errors.New("subject description exceeds maximum length")

	// Business Rule Errors
	ErrSubjectNotFound = errors.New("subject not found")
	ErrDuplicateName   = errors.New("subject with this name already exists")
)

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrSubjectNotFound):
		return "SUBJECT_NOT_FOUND"
	case errors.Is(err, ErrDuplicateName):
		return "DUPLICATE_NAME"
	case errors.Is(err, ErrInvalidName), errors.Is(err, ErrNameTooLong), errors.Is(err, ErrDescriptionTooLong):
		return "INVALID_INPUT"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrSubjectNotFound):
		return 404
	case errors.Is(err, ErrDuplicateName),
		errors.Is(err, ErrInvalidName),
		errors.Is(err, ErrNameTooLong),
		errors.Is(err, ErrDescriptionTooLong):
		return 400
	default:
		return 500
	}
}
