package client

import (
	"context"
	"slices"
	"sync"

	"instituteCMS/internal/models"
)

type BlogState struct {
	Blogs   []models.Blog
	Blog    *models.Blog
	Loading bool
	Err     string
}

// BlogStore holds the blogs a view has fetched. Responses are applied in
// completion order, so the last one to arrive wins. A failed fetch drops
// what it would have replaced, so data and Err are never both set.
type BlogStore struct {
	api *API

	mu    sync.Mutex
	state BlogState
}

func NewBlogStore(api *API) *BlogStore {
	return &BlogStore{api: api}
}

func (s *BlogStore) Snapshot() BlogState {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state
	st.Blogs = slices.Clone(s.state.Blogs)
	if s.state.Blog != nil {
		blog := *s.state.Blog
		st.Blog = &blog
	}
	return st
}

func (s *BlogStore) begin() {
	s.mu.Lock()
	s.state.Loading = true
	s.state.Err = ""
	s.mu.Unlock()
}

func (s *BlogStore) fail(err error) error {
	s.mu.Lock()
	s.state.Loading = false
	s.state.Err = err.Error()
	s.mu.Unlock()
	return err
}

func (s *BlogStore) FetchBlogs(ctx context.Context) error {
	s.begin()

	blogs, err := s.api.ListBlogs(ctx)
	if err != nil {
		s.mu.Lock()
		s.state.Blogs = nil
		s.mu.Unlock()
		return s.fail(err)
	}

	s.mu.Lock()
	s.state.Blogs = blogs
	s.state.Loading = false
	s.mu.Unlock()
	return nil
}

// EnsureBlogs fetches the list only when none is held yet.
func (s *BlogStore) EnsureBlogs(ctx context.Context) error {
	s.mu.Lock()
	held := s.state.Blogs != nil
	s.mu.Unlock()

	if held {
		return nil
	}
	return s.FetchBlogs(ctx)
}

// FetchBlog loads one blog by id or slug. Each call is a counted view.
func (s *BlogStore) FetchBlog(ctx context.Context, ref string) error {
	s.begin()

	blog, err := s.api.GetBlog(ctx, ref)
	if err != nil {
		s.mu.Lock()
		s.state.Blog = nil
		s.mu.Unlock()
		return s.fail(err)
	}

	s.mu.Lock()
	s.state.Blog = blog
	s.state.Loading = false
	s.mu.Unlock()
	return nil
}

// EnsureBlog skips the fetch when the held blog already matches ref.
func (s *BlogStore) EnsureBlog(ctx context.Context, ref string) error {
	s.mu.Lock()
	held := s.state.Blog != nil &&
		(s.state.Blog.BlogID == ref || (s.state.Blog.Slug != nil && *s.state.Blog.Slug == ref))
	s.mu.Unlock()

	if held {
		return nil
	}
	return s.FetchBlog(ctx, ref)
}

func (s *BlogStore) CreateBlog(ctx context.Context, req models.CreateBlogRequest) (*models.Blog, error) {
	s.begin()

	blog, err := s.api.CreateBlog(ctx, req)
	if err != nil {
		return nil, s.fail(err)
	}

	s.mu.Lock()
	if s.state.Blogs != nil {
		s.state.Blogs = append([]models.Blog{*blog}, s.state.Blogs...)
	}
	s.state.Loading = false
	s.mu.Unlock()
	return blog, nil
}

func (s *BlogStore) UpdateBlog(ctx context.Context, id string, req models.UpdateBlogRequest) (*models.Blog, error) {
	s.begin()

	blog, err := s.api.UpdateBlog(ctx, id, req)
	if err != nil {
		return nil, s.fail(err)
	}

	s.mu.Lock()
	for i := range s.state.Blogs {
		if s.state.Blogs[i].BlogID == id {
			s.state.Blogs[i] = *blog
		}
	}
	if s.state.Blog != nil && s.state.Blog.BlogID == id {
		s.state.Blog = blog
	}
	s.state.Loading = false
	s.mu.Unlock()
	return blog, nil
}

func (s *BlogStore) DeleteBlog(ctx context.Context, id string) error {
	s.begin()

	if err := s.api.DeleteBlog(ctx, id); err != nil {
		return s.fail(err)
	}

	s.mu.Lock()
	if s.state.Blogs != nil {
		s.state.Blogs = slices.DeleteFunc(s.state.Blogs, func(b models.Blog) bool { return b.BlogID == id })
	}
	if s.state.Blog != nil && s.state.Blog.BlogID == id {
		s.state.Blog = nil
	}
	s.state.Loading = false
	s.mu.Unlock()
	return nil
}
