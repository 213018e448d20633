package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"instituteCMS/internal/models"
)

type blogRepository struct {
	db *sqlx.DB
}

func NewBlogRepository(db *sqlx.DB) BlogRepository {
	return &blogRepository{db: db}
}

const blogSelect = `
	SELECT b.id, b.title, b.sub_title, b.content, b.title_image, b.second_image,
		b.tags, b.category, b.author_id, b.slug, b.views, b.created_at, b.updated_at,
		a.email AS author_email
	FROM blogs b
	LEFT JOIN admins a ON a.id = b.author_id
`

func (r *blogRepository) Create(ctx context.Context, blog *models.Blog) error {
	query := `
		INSERT INTO blogs
		(id, title, sub_title, content, title_image, second_image, tags, category, author_id, slug, views, created_at, updated_at)
		VALUES
		(:id, :title, :sub_title, :content, :title_image, :second_image, :tags, :category, :author_id, :slug, :views, :created_at, :updated_at)
	`

	if blog.BlogID == "" {
		blog.BlogID = models.NewID()
	}

	now := time.Now().UTC()
	blog.CreatedAt = now
	blog.UpdatedAt = now
	blog.Views = 0

	_, err := r.db.NamedExecContext(ctx, query, blog)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("slug is already in use: %w", models.ErrConflict)
		}
		return fmt.Errorf("error creating blog: %w", err)
	}

	blog.ExpandAuthor()
	return nil
}

func (r *blogRepository) List(ctx context.Context) ([]models.Blog, error) {
	query := blogSelect + ` ORDER BY b.created_at DESC`

	blogs := []models.Blog{}
	if err := r.db.SelectContext(ctx, &blogs, query); err != nil {
		return nil, fmt.Errorf("error fetching blogs: %w", err)
	}

	for i := range blogs {
		blogs[i].ExpandAuthor()
	}

	return blogs, nil
}

func (r *blogRepository) GetByID(ctx context.Context, blogID string) (*models.Blog, error) {
	query := blogSelect + ` WHERE b.id = $1`
	blogID = models.NormalizeID(blogID)

	var blog models.Blog
	err := r.db.GetContext(ctx, &blog, query, blogID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("blog %s: %w", blogID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("error fetching blog: %w", err)
	}

	blog.ExpandAuthor()
	return &blog, nil
}

// IncrementViews bumps the view counter of the referenced blog and returns
// the updated record in a single statement.
func (r *blogRepository) IncrementViews(ctx context.Context, ref models.BlogRef) (*models.Blog, error) {
	column, value := "id", models.NormalizeID(ref.Value)
	if ref.Kind == models.BySlug {
		column, value = "slug", ref.Value
	}

	query := fmt.Sprintf(`
		WITH b AS (
			UPDATE blogs SET views = views + 1
			WHERE %s = $1
			RETURNING *
		)
		SELECT b.id, b.title, b.sub_title, b.content, b.title_image, b.second_image,
			b.tags, b.category, b.author_id, b.slug, b.views, b.created_at, b.updated_at,
			a.email AS author_email
		FROM b
		LEFT JOIN admins a ON a.id = b.author_id
	`, column)

	var blog models.Blog
	err := r.db.GetContext(ctx, &blog, query, value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("blog with %s %q: %w", ref.Kind, ref.Value, models.ErrNotFound)
		}
		return nil, fmt.Errorf("error fetching blog: %w", err)
	}

	blog.ExpandAuthor()
	return &blog, nil
}

func (r *blogRepository) Update(ctx context.Context, blog *models.Blog) error {
	query := `
		UPDATE blogs SET
			title = :title,
			sub_title = :sub_title,
			content = :content,
			title_image = :title_image,
			second_image = :second_image,
			tags = :tags,
			category = :category,
			slug = :slug,
			updated_at = :updated_at
		WHERE id = :id
	`

	blog.BlogID = models.NormalizeID(blog.BlogID)
	blog.UpdatedAt = time.Now().UTC()

	result, err := r.db.NamedExecContext(ctx, query, blog)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("slug is already in use: %w", models.ErrConflict)
		}
		return fmt.Errorf("error updating blog: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("blog %s: %w", blog.BlogID, models.ErrNotFound)
	}

	return nil
}

func (r *blogRepository) Delete(ctx context.Context, blogID string) error {
	query := `DELETE FROM blogs WHERE id = $1`
	blogID = models.NormalizeID(blogID)

	result, err := r.db.ExecContext(ctx, query, blogID)
	if err != nil {
		return fmt.Errorf("error deleting blog: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking deleted rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("blog %s: %w", blogID, models.ErrNotFound)
	}

	return nil
}
