package subject

// Subject represents a study subject/topic owning zero or more notes.
type Subject struct {
	ID int64 `json:"id"`

	// Name is unique across all subjects, 1-255 characters after trimming.
	Name string `json:"name"`

	// Description is optional, max 1000 characters.
	Description *string `json:"description,omitempty"`
}

// HasDescription checks if the subject has a non-empty description.
func (s *Subject) HasDescription() bool {
	return s.Description != nil && *s.Description != ""
}
