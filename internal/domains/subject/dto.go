package subject

import (
	"strings"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"polymath-backend/internal/shared/optional"
)

// Constants for validation
const (
	MaxNameLength        = 255
	MaxDescriptionLength = 1000
)

// CreateSubjectRequest - POST /api/v1/subjects
type CreateSubjectRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

func (r CreateSubjectRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.By(validateName(r.Name))),
		validation.Field(&r.Description, validation.By(validateDescription(r.Description))),
	)
}

// UpdateSubjectRequest - PUT /api/v1/subjects/:id
// Fields use presence tracking: an omitted field keeps the current value,
// an explicit null clears it (description only).
type UpdateSubjectRequest struct {
	Name        optional.Field[string] `json:"name"`
	Description optional.Field[string] `json:"description"`
}

func (r UpdateSubjectRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.By(func(interface{}) error {
			if !r.Name.Present() {
				return nil
			}
			name, ok := r.Name.Value()
			if !ok {
				// name is not nullable
				return ErrInvalidName
			}
			return validateName(name)(nil)
		})),
		validation.Field(&r.Description, validation.By(func(interface{}) error {
			if !r.Description.Present() || r.Description.IsNull() {
				return nil
			}
			desc, _ := r.Description.Value()
			return validateDescription(&desc)(nil)
		})),
	)
}

// SubjectResponse is what the API returns for a single subject.
type SubjectResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// SubjectListResponse - GET /api/v1/subjects
type SubjectListResponse struct {
	Subjects []SubjectResponse `json:"subjects"`
	Total    int               `json:"total"`
}

// SubjectCountResponse - GET /api/v1/subjects/count
type SubjectCountResponse struct {
	Count int64 `json:"count"`
}

// ToResponse converts a Subject entity to its response DTO.
func (s Subject) ToResponse() *SubjectResponse {
	return &SubjectResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
	}
}

func validateName(name string) validation.RuleFunc {
	return func(interface{}) error {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			return ErrInvalidName
		}
		if utf8.RuneCountInString(trimmed) > MaxNameLength {
			return ErrNameTooLong
		}
		return nil
	}
}

func validateDescription(desc *string) validation.RuleFunc {
	return func(interface{}) error {
		if desc == nil {
			return nil
		}
		if utf8.RuneCountInString(*desc) > MaxDescriptionLength {
			return ErrDescriptionTooLong
		}
		return nil
	}
}
