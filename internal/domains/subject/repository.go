package subject

import "context"

// Repository defines the interface for Subject data access operations.
type Repository interface {
	// Create inserts a new subject.
	// Errors: ErrDuplicateName if the name is already taken.
	Create(ctx context.Context, s *Subject) (*Subject, error)

	// GetAll retrieves all subjects ordered by name, ascending.
	GetAll(ctx context.Context) ([]Subject, error)

	// GetByID retrieves a subject by id.
	// Errors: ErrSubjectNotFound if it does not exist.
	GetByID(ctx context.Context, id int64) (*Subject, error)

	// Update persists the full subject row.
	// Errors: ErrSubjectNotFound, ErrDuplicateName.
	Update(ctx context.Context, s *Subject) (*Subject, error)

	// Delete removes the subject. Notes cascade at the storage layer.
	// Errors: ErrSubjectNotFound if it does not exist.
	Delete(ctx context.Context, id int64) error

	// Count returns the total number of subjects.
	Count(ctx context.Context) (int64, error)

	// ExistsByID checks subject existence without fetching full data.
	ExistsByID(ctx context.Context, id int64) (bool, error)
}
