package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterRoutes mounts the API on r. requireAdmin wraps every route that
// needs a signed-in admin.
func (h *Handlers) RegisterRoutes(r *mux.Router, requireAdmin func(http.Handler) http.Handler) {
	admin := func(fn http.HandlerFunc) http.Handler {
		return requireAdmin(fn)
	}

	r.HandleFunc("/health", h.HealthHandler).Methods(http.MethodGet)

	// blogs
	r.Handle("/blogs", admin(h.CreateBlog)).Methods(http.MethodPost)
	r.HandleFunc("/blogs", h.GetBlogs).Methods(http.MethodGet)
	r.HandleFunc("/blogs/{ref}", h.GetBlog).Methods(http.MethodGet)
	r.Handle("/blogs/{id}", admin(h.UpdateBlog)).Methods(http.MethodPut)
	r.Handle("/blogs/{id}", admin(h.DeleteBlog)).Methods(http.MethodDelete)

	// courses
	r.Handle("/courses", admin(h.CreateCourse)).Methods(http.MethodPost)
	r.HandleFunc("/courses", h.GetCourses).Methods(http.MethodGet)
	r.HandleFunc("/courses/{id}", h.GetCourse).Methods(http.MethodGet)

	// submissions
	r.HandleFunc("/contacts", h.CreateContact).Methods(http.MethodPost)
	r.Handle("/contacts", admin(h.GetContacts)).Methods(http.MethodGet)
	r.HandleFunc("/inquiries", h.CreateInquiry).Methods(http.MethodPost)
	r.Handle("/inquiries", admin(h.GetInquiries)).Methods(http.MethodGet)

	// admin
	r.HandleFunc("/admin/login", h.Login).Methods(http.MethodPost)
	r.Handle("/admin/check", admin(h.CheckAuth)).Methods(http.MethodGet)
	r.Handle("/admin/stats", admin(h.GetStats)).Methods(http.MethodGet)
}

// NewRouter builds a router serving the API both at the root and under prefix.
func (h *Handlers) NewRouter(prefix string, requireAdmin func(http.Handler) http.Handler) *mux.Router {
	r := mux.NewRouter()

	if prefix != "" && prefix != "/" {
		h.RegisterRoutes(r.PathPrefix(prefix).Subrouter(), requireAdmin)
	}
	h.RegisterRoutes(r, requireAdmin)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, "Route not found", http.StatusNotFound)
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
	})

	return r
}
