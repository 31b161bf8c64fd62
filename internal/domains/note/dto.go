package note

import (
	"encoding/json"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"polymath-backend/internal/shared/optional"
)

// Constants for validation
const (
	MaxTitleLength = 255

	// EmptyDocument is the default content of a new note.
	EmptyDocument = "{}"
)

// CreateNoteRequest - POST /api/v1/subjects/:id/notes
// ContentJSON is optional and defaults to an empty document.
type CreateNoteRequest struct {
	SubjectID   int64                  `json:"subject_id"`
	Title       string                 `json:"title"`
	ContentJSON optional.Field[string] `json:"content_json"`
}

func (r CreateNoteRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.SubjectID, validation.By(func(interface{}) error {
			if r.SubjectID <= 0 {
				return ErrInvalidSubjectID
			}
			return nil
		})),
		validation.Field(&r.Title, validation.By(validateTitle(r.Title))),
		validation.Field(&r.ContentJSON, validation.By(validateContent(r.ContentJSON))),
	)
}

// Content returns the requested content or the empty document when
// the field was omitted.
func (r CreateNoteRequest) Content() string {
	if content, ok := r.ContentJSON.Value(); ok {
		return content
	}
	return EmptyDocument
}

// UpdateNoteRequest - PUT /api/v1/notes/:id
// Only fields present in the body are modified (auto-save pattern).
type UpdateNoteRequest struct {
	Title       optional.Field[string] `json:"title"`
	ContentJSON optional.Field[string] `json:"content_json"`
}

func (r UpdateNoteRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.By(func(interface{}) error {
			if !r.Title.Present() {
				return nil
			}
			title, ok := r.Title.Value()
			if !ok {
				return ErrInvalidTitle
			}
			return validateTitle(title)(nil)
		})),
		validation.Field(&r.ContentJSON, validation.By(validateContent(r.ContentJSON))),
	)
}

// NoteResponse is what the API returns for a single note.
type NoteResponse struct {
	ID          int64  `json:"id"`
	SubjectID   int64  `json:"subject_id"`
	Title       string `json:"title"`
	ContentJSON string `json:"content_json"`
}

// NoteListResponse - GET /api/v1/subjects/:id/notes
type NoteListResponse struct {
	Notes     []NoteResponse `json:"notes"`
	Total     int            `json:"total"`
	SubjectID *int64         `json:"subject_id,omitempty"`
}

// NoteCountResponse - GET /api/v1/notes/count
type NoteCountResponse struct {
	Count     int64  `json:"count"`
	SubjectID *int64 `json:"subject_id,omitempty"`
}

// ToResponse converts a Note entity to its response DTO.
func (n Note) ToResponse() *NoteResponse {
	return &NoteResponse{
		ID:          n.ID,
		SubjectID:   n.SubjectID,
		Title:       n.Title,
		ContentJSON: n.ContentJSON,
	}
}

func validateTitle(title string) validation.RuleFunc {
	return func(interface{}) error {
		if title == "" {
			return ErrInvalidTitle
		}
		if utf8.RuneCountInString(title) > MaxTitleLength {
			return ErrTitleTooLong
		}
		return nil
	}
}

func validateContent(content optional.Field[string]) validation.RuleFunc {
	return func(interface{}) error {
		if !content.Present() {
			return nil
		}
		value, ok := content.Value()
		if !ok {
			// content_json is not nullable
			return ErrInvalidContentJSON
		}
		if !json.Valid([]byte(value)) {
			return ErrInvalidContentJSON
		}
		return nil
	}
}
