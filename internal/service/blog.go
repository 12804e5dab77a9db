package service

import (
	"context"
	"fmt"

	"github.com/folio-software/folio/api/internal/model"
)

// Pagination defaults for the blog listing
const (
	DefaultPage     = 1
	DefaultPageSize = 6
)

// BlogPostRepository defines the interface for blog post storage
type BlogPostRepository interface {
	Create(ctx context.Context, post *model.BlogPost) error
	GetByID(ctx context.Context, id string) (*model.BlogPost, error)
	Update(ctx context.Context, post *model.BlogPost) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter model.BlogFilter, limit, start int) ([]*model.BlogPost, error)
	Count(ctx context.Context, filter model.BlogFilter) (int, error)
	DistinctTags(ctx context.Context) ([]string, error)
}

// BlogService handles blog post business logic
type BlogService struct {
	repo BlogPostRepository
}

// BlogServiceConfig holds configuration for the blog service
type BlogServiceConfig struct {
	Repo BlogPostRepository
}

// NewBlogService creates a new blog service
func NewBlogService(cfg BlogServiceConfig) *BlogService {
	return &BlogService{
		repo: cfg.Repo,
	}
}

// ListBlogPostsQuery carries the parsed list parameters. RawPage holds the
// page parameter exactly as the client sent it so the response can echo it
// back unchanged.
type ListBlogPostsQuery struct {
	Page    int
	RawPage string
	Limit   int
	Tag     string
	Search  string
}

// List retrieves one page of blog posts plus pagination metadata. Tag and
// search filters both apply when both are set. The page of posts and the
// total count come from two separate queries.
func (s *BlogService) List(ctx context.Context, q ListBlogPostsQuery) (*model.BlogPage, error) {
	page := q.Page
	if page < 1 {
		page = DefaultPage
	}
	limit := q.Limit
	if limit < 1 {
		limit = DefaultPageSize
	}
	start := (page - 1) * limit

	filter := model.BlogFilter{
		Search: q.Search,
		Tag:    q.Tag,
	}

	posts, err := s.repo.List(ctx, filter, limit, start)
	if err != nil {
		return nil, fmt.Errorf("failed to list blog posts: %w", err)
	}

	count, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count blog posts: %w", err)
	}

	var current interface{} = page
	if q.RawPage != "" {
		current = q.RawPage
	}

	return &model.BlogPage{
		Posts:       posts,
		TotalPages:  (count + limit - 1) / limit,
		CurrentPage: current,
	}, nil
}

// Tags retrieves the distinct set of tags across all blog posts
func (s *BlogService) Tags(ctx context.Context) ([]string, error) {
	tags, err := s.repo.DistinctTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get tags: %w", err)
	}
	return tags, nil
}

// Get retrieves a blog post by ID
func (s *BlogService) Get(ctx context.Context, id string) (*model.BlogPost, error) {
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get blog post: %w", err)
	}
	if post == nil {
		return nil, ErrBlogPostNotFound
	}
	return post, nil
}

// Create creates a new blog post
func (s *BlogService) Create(ctx context.Context, req *model.BlogPostRequest) (*model.BlogPost, error) {
	// Validate request
	if errors := req.Validate(); len(errors) > 0 {
		return nil, model.NewValidationError(errors)
	}

	tags, err := req.TagList()
	if err != nil {
		return nil, model.NewValidationError([]model.FieldError{
			{Field: "tags", Message: "Tags must be an array"},
		})
	}

	post := &model.BlogPost{
		Title:   req.Title,
		Excerpt: req.Excerpt,
		Content: req.Content,
		Tags:    tags,
	}

	if err := s.repo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create blog post: %w", err)
	}

	return post, nil
}

// Update replaces all content fields of an existing blog post and returns
// the updated record. The post must exist.
func (s *BlogService) Update(ctx context.Context, id string, req *model.BlogPostRequest) (*model.BlogPost, error) {
	// Validate request
	if errors := req.Validate(); len(errors) > 0 {
		return nil, model.NewValidationError(errors)
	}

	tags, err := req.TagList()
	if err != nil {
		return nil, model.NewValidationError([]model.FieldError{
			{Field: "tags", Message: "Tags must be an array"},
		})
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get blog post: %w", err)
	}
	if existing == nil {
		return nil, ErrBlogPostNotFound
	}

	post := &model.BlogPost{
		ID:        id,
		Title:     req.Title,
		Excerpt:   req.Excerpt,
		Content:   req.Content,
		Tags:      tags,
		CreatedAt: existing.CreatedAt,
	}

	if err := s.repo.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to update blog post: %w", err)
	}

	return post, nil
}

// Delete deletes a blog post. The post must exist.
func (s *BlogService) Delete(ctx context.Context, id string) error {
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get blog post: %w", err)
	}
	if post == nil {
		return ErrBlogPostNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete blog post: %w", err)
	}
	return nil
}
