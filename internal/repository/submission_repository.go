package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"instituteCMS/internal/models"
)

type contactRepository struct {
	db *sqlx.DB
}

func NewContactRepository(db *sqlx.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(ctx context.Context, contact *models.Contact) error {
	query := `
		INSERT INTO contacts (id, name, phone, email, course, message, created_at)
		VALUES (:id, :name, :phone, :email, :course, :message, :created_at)
	`

	contact.ContactID = models.NewID()
	contact.CreatedAt = time.Now().UTC()

	if _, err := r.db.NamedExecContext(ctx, query, contact); err != nil {
		return fmt.Errorf("error saving contact: %w", err)
	}

	return nil
}

func (r *contactRepository) List(ctx context.Context) ([]models.Contact, error) {
	query := `SELECT * FROM contacts ORDER BY created_at DESC`

	contacts := []models.Contact{}
	if err := r.db.SelectContext(ctx, &contacts, query); err != nil {
		return nil, fmt.Errorf("error fetching contacts: %w", err)
	}

	return contacts, nil
}

type inquiryRepository struct {
	db *sqlx.DB
}

func NewInquiryRepository(db *sqlx.DB) InquiryRepository {
	return &inquiryRepository{db: db}
}

func (r *inquiryRepository) Create(ctx context.Context, inquiry *models.Inquiry) error {
	query := `
		INSERT INTO inquiries
		(id, name, phone, email, institution, academic_status, interested_course,
		 preferred_schedule, learning_mode, message, created_at)
		VALUES
		(:id, :name, :phone, :email, :institution, :academic_status, :interested_course,
		 :preferred_schedule, :learning_mode, :message, :created_at)
	`

	inquiry.InquiryID = models.NewID()
	inquiry.CreatedAt = time.Now().UTC()

	if _, err := r.db.NamedExecContext(ctx, query, inquiry); err != nil {
		return fmt.Errorf("error saving inquiry: %w", err)
	}

	return nil
}

func (r *inquiryRepository) List(ctx context.Context) ([]models.Inquiry, error) {
	query := `SELECT * FROM inquiries ORDER BY created_at DESC`

	inquiries := []models.Inquiry{}
	if err := r.db.SelectContext(ctx, &inquiries, query); err != nil {
		return nil, fmt.Errorf("error fetching inquiries: %w", err)
	}

	return inquiries, nil
}
