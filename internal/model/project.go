package model

import (
	"strings"
	"time"
)

// ProjectShape is the 3D primitive used to render a project on the site
type ProjectShape string

const (
	ShapeBox    ProjectShape = "box"
	ShapeSphere ProjectShape = "sphere"
	ShapeTorus  ProjectShape = "torus"
)

// DefaultProjectShape is applied when a create request omits the shape
const DefaultProjectShape = ShapeBox

// IsValid returns true if the shape is one of the known primitives
func (s ProjectShape) IsValid() bool {
	switch s {
	case ShapeBox, ShapeSphere, ShapeTorus:
		return true
	default:
		return false
	}
}

// Project represents a portfolio project document
type Project struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Shape       ProjectShape `json:"shape"`
	GithubLink  []string     `json:"githubLink"`
	LiveURL     string       `json:"liveUrl,omitempty"`
	Image       string       `json:"image,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
}

// CreateProjectRequest represents a request to create a project
type CreateProjectRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Shape       string   `json:"shape,omitempty"`
	GithubLink  []string `json:"githubLink,omitempty"`
	LiveURL     string   `json:"liveUrl,omitempty"`
	Image       string   `json:"image,omitempty"`
}

// Validate checks if the create request is valid
func (r *CreateProjectRequest) Validate() []FieldError {
	var errors []FieldError

	if strings.TrimSpace(r.Title) == "" {
		errors = append(errors, FieldError{Field: "title", Message: "Title is required"})
	}
	if r.Description == "" {
		errors = append(errors, FieldError{Field: "description", Message: "Description is required"})
	}
	if r.Shape != "" && !ProjectShape(r.Shape).IsValid() {
		errors = append(errors, FieldError{Field: "shape", Message: "shape must be 'box', 'sphere', or 'torus'"})
	}

	return errors
}

// ToProject builds a Project from a validated request, trimming surrounding
// whitespace and applying the default shape.
func (r *CreateProjectRequest) ToProject() *Project {
	shape := ProjectShape(r.Shape)
	if r.Shape == "" {
		shape = DefaultProjectShape
	}

	links := make([]string, 0, len(r.GithubLink))
	for _, link := range r.GithubLink {
		links = append(links, strings.TrimSpace(link))
	}

	return &Project{
		Title:       strings.TrimSpace(r.Title),
		Description: r.Description,
		Shape:       shape,
		GithubLink:  links,
		LiveURL:     strings.TrimSpace(r.LiveURL),
		Image:       strings.TrimSpace(r.Image),
	}
}
