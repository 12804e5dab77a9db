package model

import (
	"testing"
)

// ============================================================================
// CreateProjectRequest Tests
// ============================================================================

func TestCreateProjectRequest_Validate_Valid(t *testing.T) {
	t.Parallel()

	req := &CreateProjectRequest{
		Title:       "Terrain Renderer",
		Description: "A WebGL terrain renderer",
		Shape:       "sphere",
		GithubLink:  []string{"https://github.com/example/terrain"},
	}

	errors := req.Validate()
	if len(errors) > 0 {
		t.Errorf("expected no errors, got %v", errors)
	}
}

func TestCreateProjectRequest_Validate_MissingTitle(t *testing.T) {
	t.Parallel()

	req := &CreateProjectRequest{
		Description: "A WebGL terrain renderer",
	}

	errors := req.Validate()
	if len(errors) != 1 || errors[0].Field != "title" {
		t.Errorf("expected title error, got %v", errors)
	}
}

func TestCreateProjectRequest_Validate_WhitespaceTitle(t *testing.T) {
	t.Parallel()

	req := &CreateProjectRequest{
		Title:       "   ",
		Description: "A WebGL terrain renderer",
	}

	errors := req.Validate()
	if len(errors) != 1 || errors[0].Field != "title" {
		t.Errorf("expected title error for whitespace-only title, got %v", errors)
	}
}

func TestCreateProjectRequest_Validate_MissingDescription(t *testing.T) {
	t.Parallel()

	req := &CreateProjectRequest{
		Title: "Terrain Renderer",
	}

	errors := req.Validate()
	if len(errors) != 1 || errors[0].Field != "description" {
		t.Errorf("expected description error, got %v", errors)
	}
}

func TestCreateProjectRequest_Validate_InvalidShape(t *testing.T) {
	t.Parallel()

	req := &CreateProjectRequest{
		Title:       "Terrain Renderer",
		Description: "A WebGL terrain renderer",
		Shape:       "cube",
	}

	errors := req.Validate()
	if len(errors) != 1 || errors[0].Field != "shape" {
		t.Errorf("expected shape error for 'cube', got %v", errors)
	}
}

func TestCreateProjectRequest_Validate_OmittedShapeIsValid(t *testing.T) {
	t.Parallel()

	req := &CreateProjectRequest{
		Title:       "Terrain Renderer",
		Description: "A WebGL terrain renderer",
	}

	errors := req.Validate()
	if len(errors) > 0 {
		t.Errorf("expected no errors when shape is omitted, got %v", errors)
	}
}

// ============================================================================
// ToProject Tests
// ============================================================================

func TestToProject_DefaultsShapeToBox(t *testing.T) {
	t.Parallel()

	req := &CreateProjectRequest{
		Title:       "Terrain Renderer",
		Description: "A WebGL terrain renderer",
	}

	project := req.ToProject()
	if project.Shape != ShapeBox {
		t.Errorf("expected default shape %q, got %q", ShapeBox, project.Shape)
	}
}

func TestToProject_TrimsWhitespace(t *testing.T) {
	t.Parallel()

	req := &CreateProjectRequest{
		Title:       "  Terrain Renderer  ",
		Description: "A WebGL terrain renderer",
		GithubLink:  []string{" https://github.com/example/terrain "},
		LiveURL:     " https://terrain.example.com ",
		Image:       " /img/terrain.png ",
	}

	project := req.ToProject()
	if project.Title != "Terrain Renderer" {
		t.Errorf("expected trimmed title, got %q", project.Title)
	}
	if project.GithubLink[0] != "https://github.com/example/terrain" {
		t.Errorf("expected trimmed github link, got %q", project.GithubLink[0])
	}
	if project.LiveURL != "https://terrain.example.com" {
		t.Errorf("expected trimmed live url, got %q", project.LiveURL)
	}
	if project.Image != "/img/terrain.png" {
		t.Errorf("expected trimmed image, got %q", project.Image)
	}
}

func TestToProject_KeepsSuppliedShape(t *testing.T) {
	t.Parallel()

	for _, shape := range []string{"box", "sphere", "torus"} {
		req := &CreateProjectRequest{
			Title:       "Terrain Renderer",
			Description: "A WebGL terrain renderer",
			Shape:       shape,
		}

		project := req.ToProject()
		if string(project.Shape) != shape {
			t.Errorf("expected shape %q, got %q", shape, project.Shape)
		}
	}
}

// ============================================================================
// ProjectShape Tests
// ============================================================================

func TestProjectShape_IsValid(t *testing.T) {
	t.Parallel()

	valid := []ProjectShape{ShapeBox, ShapeSphere, ShapeTorus}
	for _, s := range valid {
		if !s.IsValid() {
			t.Errorf("expected %q to be valid", s)
		}
	}

	invalid := []ProjectShape{"cube", "cylinder", "", "BOX"}
	for _, s := range invalid {
		if s.IsValid() {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}
