package note

// Note represents a titled document belonging to exactly one subject.
// ContentJSON holds an opaque rich-text document; the backend only
// validates that it parses as JSON.
type Note struct {
	ID        int64  `json:"id"`
	SubjectID int64  `json:"subject_id"`
	Title     string `json:"title"`

	// ContentJSON defaults to "{}", an empty rich-text document.
	ContentJSON string `json:"content_json"`
}
