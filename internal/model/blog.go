package model

import (
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// BlogPost represents a blog post document
type BlogPost struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Excerpt   string    `json:"excerpt"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
}

// BlogPage is one page of posts plus pagination metadata.
//
// CurrentPage echoes the page query parameter exactly as the client sent it:
// the raw string when supplied, or the integer default when omitted.
type BlogPage struct {
	Posts       []*BlogPost `json:"posts"`
	TotalPages  int         `json:"totalPages"`
	CurrentPage interface{} `json:"currentPage"`
}

// BlogFilter narrows list and count queries. The zero value matches all posts.
type BlogFilter struct {
	// Search matches a case-insensitive substring against title, excerpt,
	// or any tag.
	Search string
	// Tag matches posts whose tags contain this exact value.
	Tag string
}

// BlogPostRequest carries the full payload for both create and update.
// Update has replace semantics: all four fields are required and overwrite
// the stored document together. Tags stays raw so that a non-array value
// surfaces as a field error instead of a body decode failure.
type BlogPostRequest struct {
	Title   string          `json:"title"`
	Excerpt string          `json:"excerpt"`
	Content string          `json:"content"`
	Tags    json.RawMessage `json:"tags"`
}

// Validate checks if the request is valid
func (r *BlogPostRequest) Validate() []FieldError {
	var errors []FieldError

	if strings.TrimSpace(r.Title) == "" {
		errors = append(errors, FieldError{Field: "title", Message: "Title is required"})
	}
	if strings.TrimSpace(r.Excerpt) == "" {
		errors = append(errors, FieldError{Field: "excerpt", Message: "Excerpt is required"})
	}
	if strings.TrimSpace(r.Content) == "" {
		errors = append(errors, FieldError{Field: "content", Message: "Content is required"})
	}
	if _, err := r.TagList(); err != nil {
		errors = append(errors, FieldError{Field: "tags", Message: "Tags must be an array"})
	}

	return errors
}

// TagList decodes the raw tags value. Anything other than a JSON array of
// strings is rejected, including an absent field and an explicit null.
func (r *BlogPostRequest) TagList() ([]string, error) {
	if len(r.Tags) == 0 {
		return nil, errors.New("tags is required")
	}

	var tags []string
	if err := json.Unmarshal(r.Tags, &tags); err != nil {
		return nil, errors.New("tags must be an array")
	}
	if tags == nil {
		// JSON null unmarshals to a nil slice without error
		return nil, errors.New("tags must be an array")
	}
	return tags, nil
}
