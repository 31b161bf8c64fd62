package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"polymath-backend/internal/domains/subject"
	"polymath-backend/pkg/database"
)

// sqliteRepository implements subject.Repository on the embedded
// SQLite database.
type sqliteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates a new subject repository instance.
func NewSQLiteRepository(db *sql.DB) subject.Repository {
	return &sqliteRepository{db: db}
}

// Create inserts a new subject inside a transaction. The UNIQUE
// constraint on name surfaces as ErrDuplicateName.
func (r *sqliteRepository) Create(ctx context.Context, s *subject.Subject) (*subject.Subject, error) {
	created := *s

	err := database.WithTransaction(ctx, r.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO subjects (name, description) VALUES (?, ?)`,
			s.Name, s.Description,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return subject.ErrDuplicateName
			}
			return fmt.Errorf("failed to create subject: %w", err)
		}

		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to read subject id: %w", err)
		}
		created.ID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &created, nil
}

// GetAll retrieves all subjects ordered by name ascending.
func (r *sqliteRepository) GetAll(ctx context.Context) ([]subject.Subject, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, description FROM subjects ORDER BY name ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list subjects: %w", err)
	}
	defer rows.Close()

	subjects := []subject.Subject{}
	for rows.Next() {
		var s subject.Subject
		if err := rows.Scan(&s.ID, &s.Name, &s.Description); err != nil {
			return nil, fmt.Errorf("failed to scan subject: %w", err)
		}
		subjects = append(subjects, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate subjects: %w", err)
	}

	return subjects, nil
}

// GetByID retrieves a single subject by id.
func (r *sqliteRepository) GetByID(ctx context.Context, id int64) (*subject.Subject, error) {
	var s subject.Subject
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, description FROM subjects WHERE id = ?`, id,
	).Scan(&s.ID, &s.Name, &s.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, subject.ErrSubjectNotFound
		}
		return nil, fmt.Errorf("failed to get subject by id: %w", err)
	}

	return &s, nil
}

// Update persists the full subject row inside a transaction.
func (r *sqliteRepository) Update(ctx context.Context, s *subject.Subject) (*subject.Subject, error) {
	updated := *s

	err := database.WithTransaction(ctx, r.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE subjects SET name = ?, description = ? WHERE id = ?`,
			s.Name, s.Description, s.ID,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return subject.ErrDuplicateName
			}
			return fmt.Errorf("failed to update subject: %w", err)
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to read affected rows: %w", err)
		}
		if affected == 0 {
			return subject.ErrSubjectNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// Delete removes the subject. Dependent notes are removed by the
// ON DELETE CASCADE foreign key.
func (r *sqliteRepository) Delete(ctx context.Context, id int64) error {
	return database.WithTransaction(ctx, r.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM subjects WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("failed to delete subject: %w", err)
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to read affected rows: %w", err)
		}
		if affected == 0 {
			return subject.ErrSubjectNotFound
		}
		return nil
	})
}

// Count returns the total number of subjects.
func (r *sqliteRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM subjects`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count subjects: %w", err)
	}
	return count, nil
}

// ExistsByID checks if a subject exists without fetching full data.
func (r *sqliteRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var found int
	err := r.db.QueryRowContext(ctx,
		`SELECT 1 FROM subjects WHERE id = ?`, id,
	).Scan(&found)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check subject existence: %w", err)
	}
	return true, nil
}

// isUniqueViolation reports whether the error is a SQLite UNIQUE
// constraint failure.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
