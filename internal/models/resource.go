package models

// ResourceKind distinguishes external links from stored files
type ResourceKind string

const (
	ResourceKindLink ResourceKind = "link"
	ResourceKindFile ResourceKind = "file"
)

// CourseResource represents a resource attached to a course:
// either an external link or a downloadable stored file
type CourseResource struct {
	ID          int          `json:"id"`
	CourseID    int          `json:"course_id"`
	Title       string       `json:"title"`
	Kind        ResourceKind `json:"kind"`
	URL         string       `json:"url,omitempty"`
	FileID      string       `json:"file_id,omitempty"`
	ContentType string       `json:"content_type,omitempty"`
}
