package subject

import "context"

// Service defines business logic operations for the Subject domain.
type Service interface {
	// Create creates a new subject with a trimmed, unique name.
	// Errors: ErrInvalidName, ErrNameTooLong, ErrDescriptionTooLong,
	// ErrDuplicateName.
	Create(ctx context.Context, req *CreateSubjectRequest) (*Subject, error)

	// GetAll retrieves all subjects ordered by name, ascending.
	GetAll(ctx context.Context) ([]Subject, error)

	// GetByID retrieves a subject by id.
	// Errors: ErrSubjectNotFound.
	GetByID(ctx context.Context, id int64) (*Subject, error)

	// Update applies only the fields present in the request.
	// Re-validates the name if present.
	// Errors: ErrSubjectNotFound, ErrDuplicateName, ErrInvalidName.
	Update(ctx context.Context, id int64, req *UpdateSubjectRequest) (*Subject, error)

	// Delete removes the subject and, through the storage-layer cascade,
	// all of its notes.
	// Errors: ErrSubjectNotFound.
	Delete(ctx context.Context, id int64) error

	// Count returns the total number of subjects.
	Count(ctx context.Context) (int64, error)
}
