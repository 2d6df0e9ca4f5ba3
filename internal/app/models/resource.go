package models

// Resource represents a shared educational file record. Only metadata is
// stored; there is no binary content behind a resource.
type Resource struct {
	ID       string       `json:"id"`       // Unique identifier, stable for the lifetime of the store
	Title    string       `json:"title"`    // Display title
	Type     ResourceType `json:"type"`     // File type (pdf, pptx, docx, ...)
	Size     string       `json:"size"`     // Display size, e.g. "3.4 MB"
	Uploader string       `json:"uploader"` // Uploader display name (not a foreign key)
	Grade    string       `json:"grade"`    // Grade level, compared as a string
	Rating   int          `json:"rating"`   // 1-5, default 3
	Saved    bool         `json:"saved"`    // Saved flag for the current user
	Comments []string     `json:"comments"` // Insertion order is display order
	Created  string       `json:"created"`  // ISO date YYYY-MM-DD
}

// Clone returns a deep copy of the resource. Query results hand out clones
// so callers cannot mutate store state behind the repositories' back.
func (r Resource) Clone() Resource {
	c := r
	if r.Comments != nil {
		c.Comments = make([]string, len(r.Comments))
		copy(c.Comments, r.Comments)
	}
	return c
}

// CloneResources deep-copies a resource slice.
func CloneResources(resources []Resource) []Resource {
	out := make([]Resource, len(resources))
	for i, r := range resources {
		out[i] = r.Clone()
	}
	return out
}
