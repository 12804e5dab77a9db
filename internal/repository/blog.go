package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/folio-software/folio/api/internal/database"
	"github.com/folio-software/folio/api/internal/model"
)

// BlogRepository handles blog post data access
type BlogRepository struct {
	db database.Database
}

// NewBlogRepository creates a new blog repository
func NewBlogRepository(db database.Database) *BlogRepository {
	return &BlogRepository{db: db}
}

// Create creates a new blog post and fills in the generated ID and timestamp
func (r *BlogRepository) Create(ctx context.Context, post *model.BlogPost) error {
	query := `
		CREATE blog_post CONTENT {
			title: $title,
			excerpt: $excerpt,
			content: $content,
			tags: $tags,
			createdAt: time::now()
		}
	`

	vars := map[string]interface{}{
		"title":   post.Title,
		"excerpt": post.Excerpt,
		"content": post.Content,
		"tags":    post.Tags,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	data, err := firstRecord(result)
	if err != nil {
		return err
	}

	created, err := parseBlogPostFromData(data)
	if err != nil {
		return err
	}

	*post = *created
	return nil
}

// GetByID retrieves a blog post by ID. Returns (nil, nil) when no such record exists.
func (r *BlogRepository) GetByID(ctx context.Context, id string) (*model.BlogPost, error) {
	query := `SELECT * FROM type::record($id)`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	post, err := parseBlogPostResult(result)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return post, nil
}

// Update replaces all content fields of a blog post and returns the stored
// record. The original createdAt is preserved.
func (r *BlogRepository) Update(ctx context.Context, post *model.BlogPost) error {
	query := `
		UPDATE type::record($id) SET
			title = $title,
			excerpt = $excerpt,
			content = $content,
			tags = $tags
	`
	vars := map[string]interface{}{
		"id":      post.ID,
		"title":   post.Title,
		"excerpt": post.Excerpt,
		"content": post.Content,
		"tags":    post.Tags,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	data, err := firstRecord(result)
	if err != nil {
		return err
	}

	updated, err := parseBlogPostFromData(data)
	if err != nil {
		return err
	}

	*post = *updated
	return nil
}

// Delete deletes a blog post
func (r *BlogRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE type::record($id)`
	return r.db.Execute(ctx, query, map[string]interface{}{"id": id})
}

// List retrieves one page of blog posts matching the filter, newest first
func (r *BlogRepository) List(ctx context.Context, filter model.BlogFilter, limit, start int) ([]*model.BlogPost, error) {
	where, vars := buildBlogWhere(filter)
	query := `SELECT * FROM blog_post` + where + ` ORDER BY createdAt DESC LIMIT $limit START $start`
	vars["limit"] = limit
	vars["start"] = start

	results, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	posts := make([]*model.BlogPost, 0)
	for _, data := range recordMaps(results) {
		post, err := parseBlogPostFromData(data)
		if err == nil {
			posts = append(posts, post)
		}
	}
	return posts, nil
}

// Count counts blog posts matching the filter
func (r *BlogRepository) Count(ctx context.Context, filter model.BlogFilter) (int, error) {
	where, vars := buildBlogWhere(filter)
	query := `SELECT count() AS count FROM blog_post` + where + ` GROUP ALL`

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}

	return extractCount(result), nil
}

// DistinctTags retrieves the set of tags used across all blog posts
func (r *BlogRepository) DistinctTags(ctx context.Context) ([]string, error) {
	query := `SELECT array::group(tags) AS tags FROM blog_post GROUP ALL`

	result, err := r.db.QueryOne(ctx, query, nil)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return []string{}, nil
		}
		return nil, err
	}

	if data, ok := result.(map[string]interface{}); ok {
		if tags := getStringSlice(data, "tags"); tags != nil {
			return tags, nil
		}
	}
	return []string{}, nil
}

// Helper functions

// buildBlogWhere builds the WHERE clause for list and count queries. Search
// matches a lowercased substring of the title, the excerpt, or any tag; a tag
// filter requires an exact element match. Both conditions apply when both are
// set.
func buildBlogWhere(filter model.BlogFilter) (string, map[string]interface{}) {
	clauses := make([]string, 0, 2)
	vars := make(map[string]interface{})

	if filter.Search != "" {
		// Tags match per element so a term cannot span two adjacent tags
		clauses = append(clauses, `(string::lowercase(title) CONTAINS $search OR string::lowercase(excerpt) CONTAINS $search OR array::any(tags, |$t| string::lowercase($t) CONTAINS $search))`)
		vars["search"] = strings.ToLower(filter.Search)
	}
	if filter.Tag != "" {
		clauses = append(clauses, `tags CONTAINS $tag`)
		vars["tag"] = filter.Tag
	}

	if len(clauses) == 0 {
		return "", vars
	}
	return " WHERE " + strings.Join(clauses, " AND "), vars
}

func parseBlogPostResult(result interface{}) (*model.BlogPost, error) {
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

	return parseBlogPostFromData(data)
}

func parseBlogPostFromData(data map[string]interface{}) (*model.BlogPost, error) {
	// Handle SurrealDB record ID format
	if id, ok := data["id"]; ok {
		data["id"] = convertRecordID(id)
	}
	normalizeTimestamp(data, "createdAt")

	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	var post model.BlogPost
	if err := json.Unmarshal(jsonBytes, &post); err != nil {
		return nil, err
	}

	return &post, nil
}
