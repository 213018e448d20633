package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/publicsuffix"

	"instituteCMS/internal/models"
)

// APIError is a non-2xx response from the API.
type APIError struct {
	Status  int
	Message string
	Detail  string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%d %s: %s", e.Status, e.Message, e.Detail)
	}
	return fmt.Sprintf("%d %s", e.Status, e.Message)
}

// API talks to the CMS JSON API. Its cookie jar keeps the admin session
// after Login.
type API struct {
	baseURL    string
	httpClient *http.Client
}

func NewAPI(baseURL string, timeout time.Duration) (*API, error) {
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}

	return &API{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Jar: jar, Timeout: timeout},
	}, nil
}

func (a *API) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var errBody struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		if json.NewDecoder(resp.Body).Decode(&errBody) == nil && errBody.Message != "" {
			apiErr.Message = errBody.Message
			apiErr.Detail = errBody.Error
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (a *API) ListBlogs(ctx context.Context) ([]models.Blog, error) {
	var blogs []models.Blog
	if err := a.do(ctx, http.MethodGet, "/blogs", nil, &blogs); err != nil {
		return nil, err
	}
	return blogs, nil
}

// GetBlog fetches one blog by id or slug; the server counts it as a view.
func (a *API) GetBlog(ctx context.Context, ref string) (*models.Blog, error) {
	var blog models.Blog
	if err := a.do(ctx, http.MethodGet, "/blogs/"+url.PathEscape(ref), nil, &blog); err != nil {
		return nil, err
	}
	return &blog, nil
}

func (a *API) CreateBlog(ctx context.Context, req models.CreateBlogRequest) (*models.Blog, error) {
	var resp struct {
		NewBlog models.Blog `json:"newBlog"`
	}
	if err := a.do(ctx, http.MethodPost, "/blogs", req, &resp); err != nil {
		return nil, err
	}
	return &resp.NewBlog, nil
}

func (a *API) UpdateBlog(ctx context.Context, id string, req models.UpdateBlogRequest) (*models.Blog, error) {
	var resp struct {
		UpdatedBlog models.Blog `json:"updatedBlog"`
	}
	if err := a.do(ctx, http.MethodPut, "/blogs/"+url.PathEscape(id), req, &resp); err != nil {
		return nil, err
	}
	return &resp.UpdatedBlog, nil
}

func (a *API) DeleteBlog(ctx context.Context, id string) error {
	return a.do(ctx, http.MethodDelete, "/blogs/"+url.PathEscape(id), nil, nil)
}

func (a *API) ListCourses(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	if err := a.do(ctx, http.MethodGet, "/courses", nil, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (a *API) GetCourse(ctx context.Context, id string) (*models.Course, error) {
	var course models.Course
	if err := a.do(ctx, http.MethodGet, "/courses/"+url.PathEscape(id), nil, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

func (a *API) CreateCourse(ctx context.Context, req models.CreateCourseRequest) (*models.Course, error) {
	var resp struct {
		NewCourse models.Course `json:"newCourse"`
	}
	if err := a.do(ctx, http.MethodPost, "/courses", req, &resp); err != nil {
		return nil, err
	}
	return &resp.NewCourse, nil
}

func (a *API) ListContacts(ctx context.Context) ([]models.Contact, error) {
	var contacts []models.Contact
	if err := a.do(ctx, http.MethodGet, "/contacts", nil, &contacts); err != nil {
		return nil, err
	}
	return contacts, nil
}

func (a *API) CreateContact(ctx context.Context, contact models.Contact) (*models.Contact, error) {
	var resp struct {
		NewContact models.Contact `json:"newContact"`
	}
	if err := a.do(ctx, http.MethodPost, "/contacts", contact, &resp); err != nil {
		return nil, err
	}
	return &resp.NewContact, nil
}

func (a *API) ListInquiries(ctx context.Context) ([]models.Inquiry, error) {
	var inquiries []models.Inquiry
	if err := a.do(ctx, http.MethodGet, "/inquiries", nil, &inquiries); err != nil {
		return nil, err
	}
	return inquiries, nil
}

func (a *API) CreateInquiry(ctx context.Context, inquiry models.Inquiry) (*models.Inquiry, error) {
	var resp struct {
		NewInquiry models.Inquiry `json:"newInquiry"`
	}
	if err := a.do(ctx, http.MethodPost, "/inquiries", inquiry, &resp); err != nil {
		return nil, err
	}
	return &resp.NewInquiry, nil
}

// AdminAccount is the signed-in admin as the API reports it.
type AdminAccount struct {
	AdminID string `json:"_id"`
	Email   string `json:"email"`
}

func (a *API) Login(ctx context.Context, email, password string) (*AdminAccount, error) {
	var admin AdminAccount
	req := models.LoginRequest{Email: email, Password: password}
	if err := a.do(ctx, http.MethodPost, "/admin/login", req, &admin); err != nil {
		return nil, err
	}
	return &admin, nil
}

func (a *API) CheckAuth(ctx context.Context) (*AdminAccount, error) {
	var admin AdminAccount
	if err := a.do(ctx, http.MethodGet, "/admin/check", nil, &admin); err != nil {
		return nil, err
	}
	return &admin, nil
}
