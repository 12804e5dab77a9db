package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/folio-software/folio/api/internal/model"
)

// ============================================================================
// Mock Repository
// ============================================================================

type mockBlogRepo struct {
	createFunc       func(ctx context.Context, post *model.BlogPost) error
	getByIDFunc      func(ctx context.Context, id string) (*model.BlogPost, error)
	updateFunc       func(ctx context.Context, post *model.BlogPost) error
	deleteFunc       func(ctx context.Context, id string) error
	listFunc         func(ctx context.Context, filter model.BlogFilter, limit, start int) ([]*model.BlogPost, error)
	countFunc        func(ctx context.Context, filter model.BlogFilter) (int, error)
	distinctTagsFunc func(ctx context.Context) ([]string, error)
}

func (m *mockBlogRepo) Create(ctx context.Context, post *model.BlogPost) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, post)
	}
	return nil
}

func (m *mockBlogRepo) GetByID(ctx context.Context, id string) (*model.BlogPost, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockBlogRepo) Update(ctx context.Context, post *model.BlogPost) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, post)
	}
	return nil
}

func (m *mockBlogRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *mockBlogRepo) List(ctx context.Context, filter model.BlogFilter, limit, start int) ([]*model.BlogPost, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, filter, limit, start)
	}
	return nil, nil
}

func (m *mockBlogRepo) Count(ctx context.Context, filter model.BlogFilter) (int, error) {
	if m.countFunc != nil {
		return m.countFunc(ctx, filter)
	}
	return 0, nil
}

func (m *mockBlogRepo) DistinctTags(ctx context.Context) ([]string, error) {
	if m.distinctTagsFunc != nil {
		return m.distinctTagsFunc(ctx)
	}
	return nil, nil
}

func newBlogService(repo *mockBlogRepo) *BlogService {
	return NewBlogService(BlogServiceConfig{Repo: repo})
}

func blogRequest(title, excerpt, content, tags string) *model.BlogPostRequest {
	return &model.BlogPostRequest{
		Title:   title,
		Excerpt: excerpt,
		Content: content,
		Tags:    json.RawMessage(tags),
	}
}

// ============================================================================
// List Tests
// ============================================================================

func TestBlogService_List_DefaultsPageAndLimit(t *testing.T) {
	t.Parallel()

	var gotLimit, gotStart int
	repo := &mockBlogRepo{
		listFunc: func(ctx context.Context, filter model.BlogFilter, limit, start int) ([]*model.BlogPost, error) {
			gotLimit, gotStart = limit, start
			return []*model.BlogPost{}, nil
		},
	}
	svc := newBlogService(repo)

	page, err := svc.List(context.Background(), ListBlogPostsQuery{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotLimit != DefaultPageSize {
		t.Errorf("expected limit %d, got %d", DefaultPageSize, gotLimit)
	}
	if gotStart != 0 {
		t.Errorf("expected start 0, got %d", gotStart)
	}
	if page.CurrentPage != DefaultPage {
		t.Errorf("expected currentPage %d, got %v", DefaultPage, page.CurrentPage)
	}
}

func TestBlogService_List_ComputesOffsetFromPage(t *testing.T) {
	t.Parallel()

	var gotStart int
	repo := &mockBlogRepo{
		listFunc: func(ctx context.Context, filter model.BlogFilter, limit, start int) ([]*model.BlogPost, error) {
			gotStart = start
			return []*model.BlogPost{}, nil
		},
	}
	svc := newBlogService(repo)

	_, err := svc.List(context.Background(), ListBlogPostsQuery{Page: 3, RawPage: "3"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotStart != 12 {
		t.Errorf("expected start 12 for page 3 with default limit, got %d", gotStart)
	}
}

func TestBlogService_List_EchoesRawPage(t *testing.T) {
	t.Parallel()

	repo := &mockBlogRepo{}
	svc := newBlogService(repo)

	page, err := svc.List(context.Background(), ListBlogPostsQuery{Page: 2, RawPage: "2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.CurrentPage != "2" {
		t.Errorf("expected currentPage to echo the raw parameter, got %v", page.CurrentPage)
	}
}

func TestBlogService_List_TotalPagesRoundsUp(t *testing.T) {
	t.Parallel()

	repo := &mockBlogRepo{
		countFunc: func(ctx context.Context, filter model.BlogFilter) (int, error) {
			return 13, nil
		},
	}
	svc := newBlogService(repo)

	page, err := svc.List(context.Background(), ListBlogPostsQuery{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.TotalPages != 3 {
		t.Errorf("expected 3 total pages for 13 posts, got %d", page.TotalPages)
	}
}

func TestBlogService_List_ZeroPosts_ZeroTotalPages(t *testing.T) {
	t.Parallel()

	repo := &mockBlogRepo{}
	svc := newBlogService(repo)

	page, err := svc.List(context.Background(), ListBlogPostsQuery{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.TotalPages != 0 {
		t.Errorf("expected 0 total pages, got %d", page.TotalPages)
	}
}

func TestBlogService_List_PassesFilterToBothQueries(t *testing.T) {
	t.Parallel()

	var listFilter, countFilter model.BlogFilter
	repo := &mockBlogRepo{
		listFunc: func(ctx context.Context, filter model.BlogFilter, limit, start int) ([]*model.BlogPost, error) {
			listFilter = filter
			return []*model.BlogPost{}, nil
		},
		countFunc: func(ctx context.Context, filter model.BlogFilter) (int, error) {
			countFilter = filter
			return 0, nil
		},
	}
	svc := newBlogService(repo)

	_, err := svc.List(context.Background(), ListBlogPostsQuery{Tag: "go", Search: "testing"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := model.BlogFilter{Search: "testing", Tag: "go"}
	if listFilter != want {
		t.Errorf("list filter = %+v, want %+v", listFilter, want)
	}
	if countFilter != want {
		t.Errorf("count filter = %+v, want %+v", countFilter, want)
	}
}

// ============================================================================
// Tags Tests
// ============================================================================

func TestBlogService_Tags_ReturnsDistinctTags(t *testing.T) {
	t.Parallel()

	repo := &mockBlogRepo{
		distinctTagsFunc: func(ctx context.Context) ([]string, error) {
			return []string{"go", "surrealdb"}, nil
		},
	}
	svc := newBlogService(repo)

	tags, err := svc.Tags(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tags) != 2 {
		t.Errorf("expected 2 tags, got %d", len(tags))
	}
}

// ============================================================================
// Get Tests
// ============================================================================

func TestBlogService_Get_NotFound(t *testing.T) {
	t.Parallel()

	repo := &mockBlogRepo{}
	svc := newBlogService(repo)

	_, err := svc.Get(context.Background(), "blog_post:missing")
	if !errors.Is(err, ErrBlogPostNotFound) {
		t.Errorf("expected ErrBlogPostNotFound, got %v", err)
	}
}

// ============================================================================
// Create Tests
// ============================================================================

func TestBlogService_Create_Success(t *testing.T) {
	t.Parallel()

	repo := &mockBlogRepo{
		createFunc: func(ctx context.Context, post *model.BlogPost) error {
			post.ID = "blog_post:abc123"
			post.CreatedAt = time.Now()
			return nil
		},
	}
	svc := newBlogService(repo)

	post, err := svc.Create(context.Background(), blogRequest("Hello", "Short", "Long body", `["go"]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if post.ID != "blog_post:abc123" {
		t.Errorf("expected stored ID, got %q", post.ID)
	}
	if len(post.Tags) != 1 || post.Tags[0] != "go" {
		t.Errorf("expected tags [go], got %v", post.Tags)
	}
}

func TestBlogService_Create_InvalidTags_ReturnsValidationError(t *testing.T) {
	t.Parallel()

	created := false
	repo := &mockBlogRepo{
		createFunc: func(ctx context.Context, post *model.BlogPost) error {
			created = true
			return nil
		},
	}
	svc := newBlogService(repo)

	_, err := svc.Create(context.Background(), blogRequest("Hello", "Short", "Long body", `"go"`))
	if err == nil {
		t.Fatal("expected error for non-array tags")
	}

	var pd *model.ProblemDetails
	if !errors.As(err, &pd) {
		t.Fatalf("expected ProblemDetails, got %T", err)
	}
	if pd.Status != 400 {
		t.Errorf("expected status 400, got %d", pd.Status)
	}
	if created {
		t.Error("repository should not be called for invalid request")
	}
}

func TestBlogService_Create_MissingFields_ReportsAll(t *testing.T) {
	t.Parallel()

	repo := &mockBlogRepo{}
	svc := newBlogService(repo)

	_, err := svc.Create(context.Background(), &model.BlogPostRequest{})
	if err == nil {
		t.Fatal("expected error for empty request")
	}

	var pd *model.ProblemDetails
	if !errors.As(err, &pd) {
		t.Fatalf("expected ProblemDetails, got %T", err)
	}
	if len(pd.Errors) != 4 {
		t.Errorf("expected 4 field errors, got %d", len(pd.Errors))
	}
}

// ============================================================================
// Update Tests
// ============================================================================

func TestBlogService_Update_ReplacesAllFields(t *testing.T) {
	t.Parallel()

	createdAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	var updated *model.BlogPost
	repo := &mockBlogRepo{
		getByIDFunc: func(ctx context.Context, id string) (*model.BlogPost, error) {
			return &model.BlogPost{
				ID:        id,
				Title:     "Old",
				Excerpt:   "Old excerpt",
				Content:   "Old content",
				Tags:      []string{"old"},
				CreatedAt: createdAt,
			}, nil
		},
		updateFunc: func(ctx context.Context, post *model.BlogPost) error {
			updated = post
			return nil
		},
	}
	svc := newBlogService(repo)

	post, err := svc.Update(context.Background(), "blog_post:abc123", blogRequest("New", "New excerpt", "New content", `[]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated == nil {
		t.Fatal("expected repository update to be called")
	}
	if post.Title != "New" {
		t.Errorf("expected replaced title, got %q", post.Title)
	}
	if len(post.Tags) != 0 {
		t.Errorf("expected tags replaced with empty list, got %v", post.Tags)
	}
	if !post.CreatedAt.Equal(createdAt) {
		t.Errorf("expected createdAt preserved, got %v", post.CreatedAt)
	}
}

func TestBlogService_Update_NotFound_SkipsUpdate(t *testing.T) {
	t.Parallel()

	updated := false
	repo := &mockBlogRepo{
		updateFunc: func(ctx context.Context, post *model.BlogPost) error {
			updated = true
			return nil
		},
	}
	svc := newBlogService(repo)

	_, err := svc.Update(context.Background(), "blog_post:missing", blogRequest("New", "New excerpt", "New content", `[]`))
	if !errors.Is(err, ErrBlogPostNotFound) {
		t.Errorf("expected ErrBlogPostNotFound, got %v", err)
	}
	if updated {
		t.Error("update should not run when the post does not exist")
	}
}

func TestBlogService_Update_InvalidRequest_SkipsLookup(t *testing.T) {
	t.Parallel()

	looked := false
	repo := &mockBlogRepo{
		getByIDFunc: func(ctx context.Context, id string) (*model.BlogPost, error) {
			looked = true
			return nil, nil
		},
	}
	svc := newBlogService(repo)

	_, err := svc.Update(context.Background(), "blog_post:abc123", &model.BlogPostRequest{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if looked {
		t.Error("lookup should not run for invalid request")
	}
}

// ============================================================================
// Delete Tests
// ============================================================================

func TestBlogService_Delete_Success(t *testing.T) {
	t.Parallel()

	deleted := ""
	repo := &mockBlogRepo{
		getByIDFunc: func(ctx context.Context, id string) (*model.BlogPost, error) {
			return &model.BlogPost{ID: id}, nil
		},
		deleteFunc: func(ctx context.Context, id string) error {
			deleted = id
			return nil
		},
	}
	svc := newBlogService(repo)

	if err := svc.Delete(context.Background(), "blog_post:abc123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != "blog_post:abc123" {
		t.Errorf("expected delete of blog_post:abc123, got %q", deleted)
	}
}

func TestBlogService_Delete_NotFound(t *testing.T) {
	t.Parallel()

	repo := &mockBlogRepo{}
	svc := newBlogService(repo)

	err := svc.Delete(context.Background(), "blog_post:missing")
	if !errors.Is(err, ErrBlogPostNotFound) {
		t.Errorf("expected ErrBlogPostNotFound, got %v", err)
	}
}
