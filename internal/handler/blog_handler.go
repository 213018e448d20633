package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"instituteCMS/internal/models"
)

type BlogCreatedResponse struct {
	Message string       `json:"message"`
	NewBlog *models.Blog `json:"newBlog"`
}

type BlogUpdatedResponse struct {
	Message     string       `json:"message"`
	UpdatedBlog *models.Blog `json:"updatedBlog"`
}

func (h *Handlers) CreateBlog(w http.ResponseWriter, r *http.Request) {
	var req models.CreateBlogRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	// default the author to the signed-in admin
	if req.Author == "" {
		if admin, ok := AdminFromContext(r.Context()); ok {
			req.Author = admin.AdminID
		}
	}

	blog, err := h.BlogService.CreateBlog(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err, "Blog not found", "Server error in blog creation")
		return
	}

	writeSuccess(w, BlogCreatedResponse{
		Message: "Blog created successfully",
		NewBlog: blog,
	}, http.StatusCreated)
}

func (h *Handlers) GetBlogs(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.BlogService.GetBlogs(r.Context())
	if err != nil {
		h.handleError(w, r, err, "Blog not found", "Server error in fetching blogs")
		return
	}

	writeSuccess(w, blogs, http.StatusOK)
}

// GetBlog resolves {ref} as an id or a slug. ?by=id|slug picks the lookup
// explicitly; otherwise a 24-character hex ref is an id.
func (h *Handlers) GetBlog(w http.ResponseWriter, r *http.Request) {
	value := mux.Vars(r)["ref"]

	var ref models.BlogRef
	switch by := r.URL.Query().Get("by"); by {
	case "":
		ref = models.ParseBlogRef(value)
	case models.ByID.String():
		ref = models.BlogRefByID(value)
	case models.BySlug.String():
		ref = models.BlogRefBySlug(value)
	default:
		WriteError(w, "by must be id or slug", http.StatusBadRequest)
		return
	}

	blog, err := h.BlogService.GetBlog(r.Context(), ref)
	if err != nil {
		h.handleError(w, r, err, "Blog not found", "Server error in fetching blog")
		return
	}

	writeSuccess(w, blog, http.StatusOK)
}

func (h *Handlers) UpdateBlog(w http.ResponseWriter, r *http.Request) {
	blogID := mux.Vars(r)["id"]

	var req models.UpdateBlogRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	blog, err := h.BlogService.UpdateBlog(r.Context(), blogID, req)
	if err != nil {
		h.handleError(w, r, err, "Blog not found", "Server error in updating blog")
		return
	}

	writeSuccess(w, BlogUpdatedResponse{
		Message:     "Blog updated successfully",
		UpdatedBlog: blog,
	}, http.StatusOK)
}

func (h *Handlers) DeleteBlog(w http.ResponseWriter, r *http.Request) {
	blogID := mux.Vars(r)["id"]

	if err := h.BlogService.DeleteBlog(r.Context(), blogID); err != nil {
		h.handleError(w, r, err, "Blog not found", "Server error in deleting blog")
		return
	}

	writeSuccess(w, MessageResponse{Message: "Blog deleted successfully"}, http.StatusOK)
}
