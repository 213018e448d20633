package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"instituteCMS/internal/models"
)

type CourseCreatedResponse struct {
	Message   string         `json:"message"`
	NewCourse *models.Course `json:"newCourse"`
}

func (h *Handlers) CreateCourse(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCourseRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	course, err := h.CourseService.CreateCourse(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err, "Course not found", "Server error in course creation")
		return
	}

	writeSuccess(w, CourseCreatedResponse{
		Message:   "Course created successfully",
		NewCourse: course,
	}, http.StatusCreated)
}

func (h *Handlers) GetCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.CourseService.GetCourses(r.Context())
	if err != nil {
		h.handleError(w, r, err, "Course not found", "Server error in fetching courses")
		return
	}

	writeSuccess(w, courses, http.StatusOK)
}

func (h *Handlers) GetCourse(w http.ResponseWriter, r *http.Request) {
	course, err := h.CourseService.GetCourse(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.handleError(w, r, err, "Course not found", "Server error in fetching course")
		return
	}

	writeSuccess(w, course, http.StatusOK)
}
