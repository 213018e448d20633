package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"

	"instituteCMS/internal/models"
)

type adminRepository struct {
	db *sqlx.DB
}

func NewAdminRepository(db *sqlx.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) CreateAdmin(ctx context.Context, admin *models.Admin, password string) error {
	// create password hash
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	admin.AdminID = models.NewID()
	admin.Email = normalizeEmail(admin.Email)
	admin.PasswordHash = string(hashedPassword)
	admin.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO admins (id, email, password_hash, created_at)
		VALUES (:id, :email, :password_hash, :created_at)
	`

	_, err = r.db.NamedExecContext(ctx, query, admin)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("admin with email %s: %w", admin.Email, models.ErrConflict)
		}
		return fmt.Errorf("error creating admin: %w", err)
	}

	return nil
}

func (r *adminRepository) GetAdminByID(ctx context.Context, adminID string) (*models.Admin, error) {
	var admin models.Admin

	query := `SELECT * FROM admins WHERE id = $1`

	err := r.db.GetContext(ctx, &admin, query, adminID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("admin %s: %w", adminID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("error fetching admin: %w", err)
	}

	return &admin, nil
}

func (r *adminRepository) GetAdminByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var admin models.Admin

	query := `SELECT * FROM admins WHERE email = $1`

	err := r.db.GetContext(ctx, &admin, query, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("admin with email %s: %w", email, models.ErrNotFound)
		}
		return nil, fmt.Errorf("error fetching admin by email: %w", err)
	}

	return &admin, nil
}

// VerifyPassword returns ErrUnauthorized for both an unknown email and a
// wrong password.
func (r *adminRepository) VerifyPassword(ctx context.Context, email, password string) (*models.Admin, error) {
	admin, err := r.GetAdminByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrUnauthorized
		}
		return nil, err
	}

	// checking that the password hash is the same
	err = bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password))
	if err != nil {
		return nil, models.ErrUnauthorized
	}

	return admin, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
