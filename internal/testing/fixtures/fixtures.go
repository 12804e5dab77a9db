// Package fixtures provides test data factories for acceptance testing.
//
// Each factory method creates entities with sensible defaults while allowing
// customization via option functions. Factories handle database insertion
// and return fully populated models.
//
// Usage:
//
//	f := fixtures.New(tdb.DB)
//	project := f.CreateProject(t)
//	post := f.CreateBlogPost(t, func(o *fixtures.BlogPostOpts) {
//	    o.Tags = []string{"go"}
//	})
package fixtures

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/folio-software/folio/api/internal/database"
	"github.com/folio-software/folio/api/internal/model"
	"github.com/folio-software/folio/api/internal/repository"
)

// Factory creates test entities in the database
type Factory struct {
	db       database.Database
	projects *repository.ProjectRepository
	blogs    *repository.BlogRepository
}

// New creates a new fixture factory
func New(db database.Database) *Factory {
	return &Factory{
		db:       db,
		projects: repository.NewProjectRepository(db),
		blogs:    repository.NewBlogRepository(db),
	}
}

// randomID generates a random hex ID
func randomID() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// ctx returns a context with timeout
func ctx() context.Context {
	c, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	_ = cancel
	return c
}

// ============================================================================
// Project Fixtures
// ============================================================================

// ProjectOpts customizes project creation
type ProjectOpts struct {
	Title       string
	Description string
	Shape       model.ProjectShape
	GithubLink  []string
	LiveURL     string
	Image       string
}

// CreateProject creates a project with optional customizations
func (f *Factory) CreateProject(t *testing.T, opts ...func(*ProjectOpts)) *model.Project {
	t.Helper()

	o := &ProjectOpts{
		Title:       fmt.Sprintf("Project %s", randomID()),
		Description: "A test project",
		Shape:       model.ShapeBox,
		GithubLink:  []string{"https://github.com/test/project"},
	}
	for _, fn := range opts {
		fn(o)
	}

	project := &model.Project{
		Title:       o.Title,
		Description: o.Description,
		Shape:       o.Shape,
		GithubLink:  o.GithubLink,
		LiveURL:     o.LiveURL,
		Image:       o.Image,
	}

	if err := f.projects.Create(ctx(), project); err != nil {
		t.Fatalf("fixtures: failed to create project: %v", err)
	}
	return project
}

// ============================================================================
// Blog Post Fixtures
// ============================================================================

// BlogPostOpts customizes blog post creation
type BlogPostOpts struct {
	Title   string
	Excerpt string
	Content string
	Tags    []string
}

// CreateBlogPost creates a blog post with optional customizations
func (f *Factory) CreateBlogPost(t *testing.T, opts ...func(*BlogPostOpts)) *model.BlogPost {
	t.Helper()

	o := &BlogPostOpts{
		Title:   fmt.Sprintf("Post %s", randomID()),
		Excerpt: "A short excerpt",
		Content: "Long form test content",
		Tags:    []string{"test"},
	}
	for _, fn := range opts {
		fn(o)
	}

	post := &model.BlogPost{
		Title:   o.Title,
		Excerpt: o.Excerpt,
		Content: o.Content,
		Tags:    o.Tags,
	}

	if err := f.blogs.Create(ctx(), post); err != nil {
		t.Fatalf("fixtures: failed to create blog post: %v", err)
	}
	return post
}

// CreateBlogPosts creates n blog posts and returns them in creation order
func (f *Factory) CreateBlogPosts(t *testing.T, n int, opts ...func(int, *BlogPostOpts)) []*model.BlogPost {
	t.Helper()

	posts := make([]*model.BlogPost, 0, n)
	for i := 0; i < n; i++ {
		i := i
		post := f.CreateBlogPost(t, func(o *BlogPostOpts) {
			o.Title = fmt.Sprintf("Post %02d %s", i, randomID())
			for _, fn := range opts {
				fn(i, o)
			}
		})
		posts = append(posts, post)
	}
	return posts
}
