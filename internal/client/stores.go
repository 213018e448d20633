package client

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"sync"

	"instituteCMS/internal/models"
)

// status is the loading flag and error message every store carries.
type status struct {
	Loading bool
	Err     string
}

type CourseState struct {
	Courses []models.Course
	Course  *models.Course
	status
}

type CourseStore struct {
	api *API

	mu    sync.Mutex
	state CourseState
}

func NewCourseStore(api *API) *CourseStore {
	return &CourseStore{api: api}
}

func (s *CourseStore) Snapshot() CourseState {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state
	st.Courses = slices.Clone(s.state.Courses)
	if s.state.Course != nil {
		course := *s.state.Course
		st.Course = &course
	}
	return st
}

// set applies a finished call: apply on success, drop on failure.
func (s *CourseStore) set(apply, drop func(st *CourseState), err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Loading = false
	if err != nil {
		if drop != nil {
			drop(&s.state)
		}
		s.state.Err = err.Error()
		return err
	}
	s.state.Err = ""
	apply(&s.state)
	return nil
}

func (s *CourseStore) start() {
	s.mu.Lock()
	s.state.Loading = true
	s.state.Err = ""
	s.mu.Unlock()
}

func (s *CourseStore) FetchCourses(ctx context.Context) error {
	s.start()
	courses, err := s.api.ListCourses(ctx)
	return s.set(
		func(st *CourseState) { st.Courses = courses },
		func(st *CourseState) { st.Courses = nil },
		err,
	)
}

func (s *CourseStore) FetchCourse(ctx context.Context, id string) error {
	s.start()
	course, err := s.api.GetCourse(ctx, id)
	return s.set(
		func(st *CourseState) { st.Course = course },
		func(st *CourseState) { st.Course = nil },
		err,
	)
}

func (s *CourseStore) CreateCourse(ctx context.Context, req models.CreateCourseRequest) (*models.Course, error) {
	s.start()
	course, err := s.api.CreateCourse(ctx, req)
	err = s.set(func(st *CourseState) {
		if st.Courses != nil {
			st.Courses = append([]models.Course{*course}, st.Courses...)
		}
	}, nil, err)
	if err != nil {
		return nil, err
	}
	return course, nil
}

type ContactState struct {
	Contacts []models.Contact
	status
}

type ContactStore struct {
	api *API

	mu    sync.Mutex
	state ContactState
}

func NewContactStore(api *API) *ContactStore {
	return &ContactStore{api: api}
}

func (s *ContactStore) Snapshot() ContactState {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state
	st.Contacts = slices.Clone(s.state.Contacts)
	return st
}

func (s *ContactStore) start() {
	s.mu.Lock()
	s.state.Loading = true
	s.state.Err = ""
	s.mu.Unlock()
}

func (s *ContactStore) finish(err error) {
	s.mu.Lock()
	s.state.Loading = false
	if err != nil {
		s.state.Err = err.Error()
	}
	s.mu.Unlock()
}

// GetContacts needs an admin session on the API.
func (s *ContactStore) GetContacts(ctx context.Context) error {
	s.start()

	contacts, err := s.api.ListContacts(ctx)
	s.mu.Lock()
	s.state.Contacts = contacts
	s.mu.Unlock()
	s.finish(err)
	return err
}

func (s *ContactStore) SubmitContact(ctx context.Context, contact models.Contact) (*models.Contact, error) {
	s.start()

	created, err := s.api.CreateContact(ctx, contact)
	s.finish(err)
	if err != nil {
		return nil, err
	}
	return created, nil
}

type InquiryState struct {
	Inquiries []models.Inquiry
	status
}

type InquiryStore struct {
	api *API

	mu    sync.Mutex
	state InquiryState
}

func NewInquiryStore(api *API) *InquiryStore {
	return &InquiryStore{api: api}
}

func (s *InquiryStore) Snapshot() InquiryState {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state
	st.Inquiries = slices.Clone(s.state.Inquiries)
	return st
}

func (s *InquiryStore) start() {
	s.mu.Lock()
	s.state.Loading = true
	s.state.Err = ""
	s.mu.Unlock()
}

func (s *InquiryStore) finish(err error) {
	s.mu.Lock()
	s.state.Loading = false
	if err != nil {
		s.state.Err = err.Error()
	}
	s.mu.Unlock()
}

func (s *InquiryStore) GetInquiries(ctx context.Context) error {
	s.start()

	inquiries, err := s.api.ListInquiries(ctx)
	s.mu.Lock()
	s.state.Inquiries = inquiries
	s.mu.Unlock()
	s.finish(err)
	return err
}

func (s *InquiryStore) SubmitInquiry(ctx context.Context, inquiry models.Inquiry) (*models.Inquiry, error) {
	s.start()

	created, err := s.api.CreateInquiry(ctx, inquiry)
	s.finish(err)
	if err != nil {
		return nil, err
	}
	return created, nil
}

type AuthState struct {
	AuthUser       *AdminAccount
	IsLoggingIn    bool
	IsCheckingAuth bool
	Err            string
}

// AuthStore tracks whether the API session belongs to a signed-in admin.
type AuthStore struct {
	api *API

	mu    sync.Mutex
	state AuthState
}

func NewAuthStore(api *API) *AuthStore {
	return &AuthStore{api: api}
}

func (s *AuthStore) Snapshot() AuthState {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state
	if s.state.AuthUser != nil {
		user := *s.state.AuthUser
		st.AuthUser = &user
	}
	return st
}

func (s *AuthStore) Login(ctx context.Context, email, password string) error {
	s.mu.Lock()
	s.state.IsLoggingIn = true
	s.state.Err = ""
	s.mu.Unlock()

	admin, err := s.api.Login(ctx, email, password)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.IsLoggingIn = false
	if err != nil {
		s.state.AuthUser = nil
		s.state.Err = err.Error()
		return err
	}
	s.state.AuthUser = admin
	return nil
}

// CheckAuth resolves the session. A 401 means anonymous and is not
// recorded as an error.
func (s *AuthStore) CheckAuth(ctx context.Context) error {
	s.mu.Lock()
	s.state.IsCheckingAuth = true
	s.mu.Unlock()

	admin, err := s.api.CheckAuth(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.IsCheckingAuth = false
	s.state.AuthUser = admin

	var apiErr *APIError
	if err != nil && !(errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized) {
		s.state.Err = err.Error()
		return err
	}
	s.state.Err = ""
	return nil
}
