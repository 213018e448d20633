package repository

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"instituteCMS/internal/models"
)

type AdminRepository interface {
	CreateAdmin(ctx context.Context, admin *models.Admin, password string) error
	GetAdminByID(ctx context.Context, adminID string) (*models.Admin, error)
	GetAdminByEmail(ctx context.Context, email string) (*models.Admin, error)
	VerifyPassword(ctx context.Context, email, password string) (*models.Admin, error)
}

type BlogRepository interface {
	Create(ctx context.Context, blog *models.Blog) error
	List(ctx context.Context) ([]models.Blog, error)
	GetByID(ctx context.Context, blogID string) (*models.Blog, error)
	IncrementViews(ctx context.Context, ref models.BlogRef) (*models.Blog, error)
	Update(ctx context.Context, blog *models.Blog) error
	Delete(ctx context.Context, blogID string) error
}

type CourseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	List(ctx context.Context) ([]models.Course, error)
	GetByID(ctx context.Context, courseID string) (*models.Course, error)
}

type ContactRepository interface {
	Create(ctx context.Context, contact *models.Contact) error
	List(ctx context.Context) ([]models.Contact, error)
}

type InquiryRepository interface {
	Create(ctx context.Context, inquiry *models.Inquiry) error
	List(ctx context.Context) ([]models.Inquiry, error)
}

type TablesRepository interface {
	CountCollections(ctx context.Context) (*models.CollectionStats, error)
}

type Repository struct {
	Admin   AdminRepository
	Blog    BlogRepository
	Course  CourseRepository
	Contact ContactRepository
	Inquiry InquiryRepository
	Tables  TablesRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		Admin:   NewAdminRepository(db),
		Blog:    NewBlogRepository(db),
		Course:  NewCourseRepository(db),
		Contact: NewContactRepository(db),
		Inquiry: NewInquiryRepository(db),
		Tables:  NewTablesRepository(db),
	}
}

const pqUniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation
}
