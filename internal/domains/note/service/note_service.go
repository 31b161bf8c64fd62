package service

import (
	"context"
	"encoding/json"
	"unicode/utf8"

	"polymath-backend/internal/domains/note"
	"polymath-backend/internal/domains/subject"
)

// noteService implements note.Service. It depends on the subject
// repository to verify subject existence before note writes.
type noteService struct {
	repo     note.Repository
	subjects subject.Repository
}

// NewNoteService creates a new note service instance.
func NewNoteService(repo note.Repository, subjects subject.Repository) note.Service {
	return &noteService{
		repo:     repo,
		subjects: subjects,
	}
}

func (s *noteService) Create(ctx context.Context, req *note.CreateNoteRequest) (*note.Note, error) {
	if req.SubjectID <= 0 {
		return nil, note.ErrInvalidSubjectID
	}
	if err := checkTitle(req.Title); err != nil {
		return nil, err
	}

	content := req.Content()
	if !json.Valid([]byte(content)) {
		return nil, note.ErrInvalidContentJSON
	}

	// Subject must exist at write time.
	exists, err := s.subjects.ExistsByID(ctx, req.SubjectID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, note.ErrSubjectNotFound
	}

	newNote := &note.Note{
		SubjectID:   req.SubjectID,
		Title:       req.Title,
		ContentJSON: content,
	}

	return s.repo.Create(ctx, newNote)
}

func (s *noteService) ListBySubject(ctx context.Context, subjectID int64) ([]note.Note, error) {
	exists, err := s.subjects.ExistsByID(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, note.ErrSubjectNotFound
	}

	return s.repo.ListBySubject(ctx, subjectID)
}

func (s *noteService) GetByID(ctx context.Context, id int64) (*note.Note, error) {
	if id <= 0 {
		return nil, note.ErrNoteNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// Update applies only the fields present in the request body. Called
// frequently by the editor's auto-save, so failures must leave the
// stored note untouched.
func (s *noteService) Update(ctx context.Context, id int64, req *note.UpdateNoteRequest) (*note.Note, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *current

	if req.Title.Present() {
		title, ok := req.Title.Value()
		if !ok {
			return nil, note.ErrInvalidTitle
		}
		if err := checkTitle(title); err != nil {
			return nil, err
		}
		updated.Title = title
	}

	if req.ContentJSON.Present() {
		content, ok := req.ContentJSON.Value()
		if !ok || !json.Valid([]byte(content)) {
			return nil, note.ErrInvalidContentJSON
		}
		updated.ContentJSON = content
	}

	return s.repo.Update(ctx, &updated)
}

func (s *noteService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return note.ErrNoteNotFound
	}
	return s.repo.Delete(ctx, id)
}

func (s *noteService) Count(ctx context.Context, subjectID *int64) (int64, error) {
	return s.repo.Count(ctx, subjectID)
}

func checkTitle(title string) error {
	if title == "" {
		return note.ErrInvalidTitle
	}
	if utf8.RuneCountInString(title) > note.MaxTitleLength {
		return note.ErrTitleTooLong
	}
	return nil
}
