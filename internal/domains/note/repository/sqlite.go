package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"polymath-backend/internal/domains/note"
	"polymath-backend/pkg/database"
)

// sqliteRepository implements note.Repository on the embedded
// SQLite database.
type sqliteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates a new note repository instance.
func NewSQLiteRepository(db *sql.DB) note.Repository {
	return &sqliteRepository{db: db}
}

// Create inserts a new note inside a transaction. A foreign key
// failure on subject_id surfaces as ErrSubjectNotFound.
func (r *sqliteRepository) Create(ctx context.Context, n *note.Note) (*note.Note, error) {
	created := *n

	err := database.WithTransaction(ctx, r.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO notes (subject_id, title, content_json) VALUES (?, ?, ?)`,
			n.SubjectID, n.Title, n.ContentJSON,
		)
		if err != nil {
			if isForeignKeyViolation(err) {
				return note.ErrSubjectNotFound
			}
			return fmt.Errorf("failed to create note: %w", err)
		}

		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to read note id: %w", err)
		}
		created.ID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &created, nil
}

// ListBySubject retrieves all notes for a subject in creation order.
func (r *sqliteRepository) ListBySubject(ctx context.Context, subjectID int64) ([]note.Note, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, subject_id, title, content_json FROM notes WHERE subject_id = ? ORDER BY id ASC`,
		subjectID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	notes := []note.Note{}
	for rows.Next() {
		var n note.Note
		if err := rows.Scan(&n.ID, &n.SubjectID, &n.Title, &n.ContentJSON); err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notes: %w", err)
	}

	return notes, nil
}

// GetByID retrieves a single note by id.
func (r *sqliteRepository) GetByID(ctx context.Context, id int64) (*note.Note, error) {
	var n note.Note
	err := r.db.QueryRowContext(ctx,
		`SELECT id, subject_id, title, content_json FROM notes WHERE id = ?`, id,
	).Scan(&n.ID, &n.SubjectID, &n.Title, &n.ContentJSON)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, note.ErrNoteNotFound
		}
		return nil, fmt.Errorf("failed to get note by id: %w", err)
	}

	return &n, nil
}

// Update persists the full note row inside a transaction.
func (r *sqliteRepository) Update(ctx context.Context, n *note.Note) (*note.Note, error) {
	updated := *n

	err := database.WithTransaction(ctx, r.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE notes SET title = ?, content_json = ? WHERE id = ?`,
			n.Title, n.ContentJSON, n.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to update note: %w", err)
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to read affected rows: %w", err)
		}
		if affected == 0 {
			return note.ErrNoteNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// Delete removes the note.
func (r *sqliteRepository) Delete(ctx context.Context, id int64) error {
	return database.WithTransaction(ctx, r.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("failed to delete note: %w", err)
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to read affected rows: %w", err)
		}
		if affected == 0 {
			return note.ErrNoteNotFound
		}
		return nil
	})
}

// Count returns the total note count, optionally for one subject.
func (r *sqliteRepository) Count(ctx context.Context, subjectID *int64) (int64, error) {
	query := `SELECT COUNT(*) FROM notes`
	args := []interface{}{}
	if subjectID != nil {
		query += ` WHERE subject_id = ?`
		args = append(args, *subjectID)
	}

	var count int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count notes: %w", err)
	}
	return count, nil
}

// isForeignKeyViolation reports whether the error is a SQLite foreign
// key constraint failure.
func isForeignKeyViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
