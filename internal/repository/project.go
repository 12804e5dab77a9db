package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/folio-software/folio/api/internal/database"
	"github.com/folio-software/folio/api/internal/model"
)

// ProjectRepository handles project data access
type ProjectRepository struct {
	db database.Database
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db database.Database) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create creates a new project and fills in the generated ID and timestamp
func (r *ProjectRepository) Create(ctx context.Context, project *model.Project) error {
	query := `
		CREATE project CONTENT {
			title: $title,
			description: $description,
			shape: $shape,
			githubLink: $githubLink,
			liveUrl: IF $liveUrl IS NOT NULL THEN $liveUrl ELSE NONE END,
			image: IF $image IS NOT NULL THEN $image ELSE NONE END,
			createdAt: time::now()
		}
	`

	vars := map[string]interface{}{
		"title":       project.Title,
		"description": project.Description,
		"shape":       project.Shape,
		"githubLink":  project.GithubLink,
		"liveUrl":     nilIfEmpty(project.LiveURL),
		"image":       nilIfEmpty(project.Image),
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	data, err := firstRecord(result)
	if err != nil {
		return err
	}

	created, err := parseProjectFromData(data)
	if err != nil {
		return err
	}

	*project = *created
	return nil
}

// GetByID retrieves a project by ID. Returns (nil, nil) when no such record exists.
func (r *ProjectRepository) GetByID(ctx context.Context, id string) (*model.Project, error) {
	query := `SELECT * FROM type::record($id)`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	project, err := parseProjectResult(result)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return project, nil
}

// List retrieves all projects
func (r *ProjectRepository) List(ctx context.Context) ([]*model.Project, error) {
	query := `SELECT * FROM project`

	results, err := r.db.Query(ctx, query, nil)
	if err != nil {
		return nil, err
	}

	projects := make([]*model.Project, 0)
	for _, data := range recordMaps(results) {
		project, err := parseProjectFromData(data)
		if err == nil {
			projects = append(projects, project)
		}
	}
	return projects, nil
}

// Delete deletes a project
func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE type::record($id)`
	return r.db.Execute(ctx, query, map[string]interface{}{"id": id})
}

// Helper functions

func parseProjectResult(result interface{}) (*model.Project, error) {
	if result == nil {
		return nil, database.ErrNotFound
	}

	// Navigate through SurrealDB response structure
	if resp, ok := result.(map[string]interface{}); ok {
		if status, ok := resp["status"].(string); ok && status == "OK" {
			if resultData, ok := resp["result"].([]interface{}); ok {
				if len(resultData) == 0 {
					return nil, database.ErrNotFound
				}
				result = resultData[0]
			}
		}
	}

	if arr, ok := result.([]interface{}); ok {
		if len(arr) == 0 {
			return nil, database.ErrNotFound
		}
		result = arr[0]
	}

	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, errors.New("unexpected result format")
	}

	return parseProjectFromData(data)
}

func parseProjectFromData(data map[string]interface{}) (*model.Project, error) {
	// Handle SurrealDB record ID format
	if id, ok := data["id"]; ok {
		data["id"] = convertRecordID(id)
	}
	normalizeTimestamp(data, "createdAt")

	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	var project model.Project
	if err := json.Unmarshal(jsonBytes, &project); err != nil {
		return nil, err
	}

	return &project, nil
}
