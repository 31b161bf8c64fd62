package note

import "errors"

var (
	// Validation Errors
	ErrInvalidTitle       = errors.New("note title cannot be empty")
	ErrTitleTooLong       = errors.New("note title exceeds maximum length")
	ErrInvalidContentJSON = errors.New("content_json must be valid JSON")
	ErrInvalidSubjectID   = errors.New("subject_id must be a positive integer")

	// Business Rule Errors
	ErrNoteNotFound    = errors.New("note not found")
	ErrSubjectNotFound = errors.New("subject not found")
)

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrNoteNotFound):
		return "NOTE_NOT_FOUND"
	case errors.Is(err, ErrSubjectNotFound):
		return "SUBJECT_NOT_FOUND"
	case errors.Is(err, ErrInvalidTitle),
		errors.Is(err, ErrTitleTooLong),
		errors.Is(err, ErrInvalidContentJSON),
		errors.Is(err, ErrInvalidSubjectID):
		return "INVALID_INPUT"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNoteNotFound), errors.Is(err, ErrSubjectNotFound):
		return 404
	case errors.Is(err, ErrInvalidTitle),
		errors.Is(err, ErrTitleTooLong),
		errors.Is(err, ErrInvalidContentJSON),
		errors.Is(err, ErrInvalidSubjectID):
		return 400
	default:
		return 500
	}
}
