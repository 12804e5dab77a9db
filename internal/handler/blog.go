package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/folio-software/folio/api/internal/model"
	"github.com/folio-software/folio/api/internal/service"
)

// BlogHandler handles blog post HTTP requests
type BlogHandler struct {
	blogService *service.BlogService
}

// NewBlogHandler creates a new blog handler
func NewBlogHandler(blogService *service.BlogService) *BlogHandler {
	return &BlogHandler{blogService: blogService}
}

// RegisterRoutes registers blog routes
func (h *BlogHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/blogs", h.List)
	mux.HandleFunc("GET /api/blogs/tags", h.Tags)
	mux.HandleFunc("POST /api/blogs", h.Create)
	mux.HandleFunc("GET /api/blogs/{postId}", h.Get)
	mux.HandleFunc("PATCH /api/blogs/{postId}", h.Update)
	mux.HandleFunc("DELETE /api/blogs/{postId}", h.Delete)
}

// List retrieves one page of blog posts with optional tag and search filters
func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	q := service.ListBlogPostsQuery{
		RawPage: r.URL.Query().Get("page"),
		Tag:     r.URL.Query().Get("tag"),
		Search:  r.URL.Query().Get("search"),
	}
	if page, err := strconv.Atoi(q.RawPage); err == nil {
		q.Page = page
	}
	if limit, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil {
		q.Limit = limit
	}

	page, err := h.blogService.List(r.Context(), q)
	if err != nil {
		WriteError(w, model.NewInternalError(err.Error()))
		return
	}

	WriteJSON(w, http.StatusOK, page)
}

// Tags retrieves the distinct set of tags across all blog posts
func (h *BlogHandler) Tags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.blogService.Tags(r.Context())
	if err != nil {
		WriteError(w, model.NewInternalError(err.Error()))
		return
	}

	WriteJSON(w, http.StatusOK, tags)
}

// Get retrieves a single blog post
func (h *BlogHandler) Get(w http.ResponseWriter, r *http.Request) {
	postID := r.PathValue("postId")

	post, err := h.blogService.Get(r.Context(), postID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBlogPostNotFound):
			WriteError(w, model.NewNotFoundError("Blog post"))
		default:
			WriteError(w, model.NewInternalError(err.Error()))
		}
		return
	}

	WriteJSON(w, http.StatusOK, post)
}

// Create creates a new blog post
func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.BlogPostRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	post, err := h.blogService.Create(r.Context(), &req)
	if err != nil {
		var pd *model.ProblemDetails
		switch {
		case errors.As(err, &pd):
			WriteError(w, pd)
		default:
			// Store failures on create surface as client errors with the
			// underlying message
			WriteError(w, model.NewBadRequestError(err.Error()))
		}
		return
	}

	WriteJSON(w, http.StatusCreated, post)
}

// Update replaces all content fields of a blog post
func (h *BlogHandler) Update(w http.ResponseWriter, r *http.Request) {
	postID := r.PathValue("postId")

	var req model.BlogPostRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	post, err := h.blogService.Update(r.Context(), postID, &req)
	if err != nil {
		var pd *model.ProblemDetails
		switch {
		case errors.As(err, &pd):
			WriteError(w, pd)
		case errors.Is(err, service.ErrBlogPostNotFound):
			WriteError(w, model.NewNotFoundError("Blog post"))
		default:
			WriteError(w, model.NewBadRequestError(err.Error()))
		}
		return
	}

	WriteJSON(w, http.StatusOK, post)
}

// Delete deletes a blog post
func (h *BlogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	postID := r.PathValue("postId")

	if err := h.blogService.Delete(r.Context(), postID); err != nil {
		switch {
		case errors.Is(err, service.ErrBlogPostNotFound):
			WriteError(w, model.NewNotFoundError("Blog post"))
		default:
			WriteError(w, model.NewInternalError(err.Error()))
		}
		return
	}

	WriteJSON(w, http.StatusOK, MessageResponse{Message: "Blog post deleted"})
}
