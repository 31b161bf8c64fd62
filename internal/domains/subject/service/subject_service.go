package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"polymath-backend/internal/domains/subject"
)

// subjectService implements subject.Service.
type subjectService struct {
	repo subject.Repository
}

// NewSubjectService creates a new subject service instance.
func NewSubjectService(repo subject.Repository) subject.Service {
	return &subjectService{repo: repo}
}

func (s *subjectService) Create(ctx context.Context, req *subject.CreateSubjectRequest) (*subject.Subject, error) {
	name, err := cleanName(req.Name)
	if err != nil {
		return nil, err
	}
	if err := checkDescription(req.Description); err != nil {
		return nil, err
	}

	newSubject := &subject.Subject{
		Name:        name,
		Description: req.Description,
	}

	return s.repo.Create(ctx, newSubject)
}

func (s *subjectService) GetAll(ctx context.Context) ([]subject.Subject, error) {
	return s.repo.GetAll(ctx)
}

func (s *subjectService) GetByID(ctx context.Context, id int64) (*subject.Subject, error) {
	if id <= 0 {
		return nil, subject.ErrSubjectNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// Update applies only the fields present in the request body.
// An omitted field keeps its current value; description set to null
// is cleared; name is not nullable.
func (s *subjectService) Update(ctx context.Context, id int64, req *subject.UpdateSubjectRequest) (*subject.Subject, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *current

	if req.Name.Present() {
		name, ok := req.Name.Value()
		if !ok {
			return nil, subject.ErrInvalidName
		}
		name, err := cleanName(name)
		if err != nil {
			return nil, err
		}
		updated.Name = name
	}

	if req.Description.Present() {
		if desc, ok := req.Description.Value(); ok {
			if err := checkDescription(&desc); err != nil {
				return nil, err
			}
			updated.Description = &desc
		} else {
			updated.Description = nil
		}
	}

	return s.repo.Update(ctx, &updated)
}

func (s *subjectService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return subject.ErrSubjectNotFound
	}
	return s.repo.Delete(ctx, id)
}

func (s *subjectService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

// cleanName trims surrounding whitespace and enforces length bounds.
func cleanName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", subject.ErrInvalidName
	}
	if utf8.RuneCountInString(name) > subject.MaxNameLength {
		return "", subject.ErrNameTooLong
	}
	return name, nil
}

func checkDescription(desc *string) error {
	if desc != nil && utf8.RuneCountInString(*desc) > subject.MaxDescriptionLength {
		return subject.ErrDescriptionTooLong
	}
	return nil
}
