package note

import "context"

// Service defines business logic operations for the Note domain.
type Service interface {
	// Create creates a new note under an existing subject.
	// Errors: ErrSubjectNotFound, ErrInvalidTitle, ErrTitleTooLong,
	// ErrInvalidContentJSON.
	Create(ctx context.Context, req *CreateNoteRequest) (*Note, error)

	// ListBySubject retrieves all notes for a subject, oldest first.
	// Errors: ErrSubjectNotFound when the subject is absent.
	ListBySubject(ctx context.Context, subjectID int64) ([]Note, error)

	// GetByID retrieves a note by id.
	// Errors: ErrNoteNotFound.
	GetByID(ctx context.Context, id int64) (*Note, error)

	// Update applies only the fields present in the request
	// (auto-save pattern). Re-validates content_json if present.
	// Errors: ErrNoteNotFound, ErrInvalidContentJSON.
	Update(ctx context.Context, id int64, req *UpdateNoteRequest) (*Note, error)

	// Delete removes the note.
	// Errors: ErrNoteNotFound.
	Delete(ctx context.Context, id int64) error

	// Count returns the total note count, optionally filtered to
	// one subject.
	Count(ctx context.Context, subjectID *int64) (int64, error)
}
