package note

import "context"

// Repository defines the interface for Note data access operations.
type Repository interface {
	// Create inserts a new note.
	// Errors: ErrSubjectNotFound if the subject foreign key fails.
	Create(ctx context.Context, n *Note) (*Note, error)

	// ListBySubject retrieves all notes for a subject ordered by
	// ascending id (creation order, oldest first).
	ListBySubject(ctx context.Context, subjectID int64) ([]Note, error)

	// GetByID retrieves a note by id.
	// Errors: ErrNoteNotFound if it does not exist.
	GetByID(ctx context.Context, id int64) (*Note, error)

	// Update persists the full note row.
	// Errors: ErrNoteNotFound.
	Update(ctx context.Context, n *Note) (*Note, error)

	// Delete removes the note.
	// Errors: ErrNoteNotFound if it does not exist.
	Delete(ctx context.Context, id int64) error

	// Count returns the total note count, optionally filtered to
	// one subject.
	Count(ctx context.Context, subjectID *int64) (int64, error)
}
