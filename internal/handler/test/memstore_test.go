package test

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"instituteCMS/internal/models"
)

// In-memory repositories with the same contracts as the SQL ones.

type memBlogRepo struct {
	mu    sync.Mutex
	blogs map[string]models.Blog
}

func newMemBlogRepo() *memBlogRepo {
	return &memBlogRepo{blogs: map[string]models.Blog{}}
}

func (r *memBlogRepo) Create(_ context.Context, blog *models.Blog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if blog.Slug != nil {
		for _, b := range r.blogs {
			if b.Slug != nil && *b.Slug == *blog.Slug {
				return fmt.Errorf("slug is already in use: %w", models.ErrConflict)
			}
		}
	}

	blog.BlogID = models.NewID()
	blog.Views = 0
	blog.CreatedAt = time.Now().UTC()
	blog.UpdatedAt = blog.CreatedAt
	blog.ExpandAuthor()
	r.blogs[blog.BlogID] = *blog
	return nil
}

func (r *memBlogRepo) List(context.Context) ([]models.Blog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []models.Blog{}
	for _, b := range r.blogs {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memBlogRepo) GetByID(_ context.Context, id string) (*models.Blog, error) {
	id = models.NormalizeID(id)
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.blogs[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &b, nil
}

func (r *memBlogRepo) IncrementViews(_ context.Context, ref models.BlogRef) (*models.Blog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, b := range r.blogs {
		match := (ref.Kind == models.ByID && b.BlogID == ref.Value) ||
			(ref.Kind == models.BySlug && b.Slug != nil && *b.Slug == ref.Value)
		if match {
			b.Views++
			r.blogs[id] = b
			return &b, nil
		}
	}
	return nil, models.ErrNotFound
}

func (r *memBlogRepo) Update(_ context.Context, blog *models.Blog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.blogs[blog.BlogID]; !ok {
		return models.ErrNotFound
	}
	r.blogs[blog.BlogID] = *blog
	return nil
}

func (r *memBlogRepo) Delete(_ context.Context, id string) error {
	id = models.NormalizeID(id)
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.blogs[id]; !ok {
		return models.ErrNotFound
	}
	delete(r.blogs, id)
	return nil
}

type memContactRepo struct {
	mu       sync.Mutex
	contacts []models.Contact
}

func (r *memContactRepo) Create(_ context.Context, c *models.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c.ContactID = models.NewID()
	c.CreatedAt = time.Now().UTC()
	r.contacts = append([]models.Contact{*c}, r.contacts...)
	return nil
}

func (r *memContactRepo) List(context.Context) ([]models.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]models.Contact{}, r.contacts...), nil
}

type memAdminRepo struct {
	mu     sync.Mutex
	admins map[string]models.Admin
}

func newMemAdminRepo() *memAdminRepo {
	return &memAdminRepo{admins: map[string]models.Admin{}}
}

func (r *memAdminRepo) CreateAdmin(_ context.Context, admin *models.Admin, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	admin.AdminID = models.NewID()
	admin.Email = strings.ToLower(admin.Email)
	admin.PasswordHash = string(hash)
	r.admins[admin.AdminID] = *admin
	return nil
}

func (r *memAdminRepo) GetAdminByID(_ context.Context, id string) (*models.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.admins[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &a, nil
}

func (r *memAdminRepo) GetAdminByEmail(_ context.Context, email string) (*models.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, a := range r.admins {
		if a.Email == strings.ToLower(email) {
			return &a, nil
		}
	}
	return nil, models.ErrNotFound
}

func (r *memAdminRepo) VerifyPassword(ctx context.Context, email, password string) (*models.Admin, error) {
	a, err := r.GetAdminByEmail(ctx, email)
	if err != nil {
		return nil, models.ErrUnauthorized
	}
	if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) != nil {
		return nil, models.ErrUnauthorized
	}
	return a, nil
}

type nopMedia struct{}

func (nopMedia) Upload(_ context.Context, namespace, _ string) (string, error) {
	return "http://media.test/media/" + namespace + "/" + models.NewID() + ".png", nil
}

func (nopMedia) Delete(context.Context, string) error { return nil }
