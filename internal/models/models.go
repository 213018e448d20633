package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NewID returns a fresh 24-character hex identifier.
func NewID() string {
	return primitive.NewObjectID().Hex()
}

// NormalizeID lowercases an identifier; ids are stored in lowercase hex.
func NormalizeID(id string) string {
	return strings.ToLower(id)
}

// IsObjectID reports whether s has the shape of an identifier produced by NewID.
func IsObjectID(s string) bool {
	return primitive.IsValidObjectID(s)
}

type Admin struct {
	AdminID      string    `json:"_id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// CollectionStats holds record counts for the admin dashboard.
type CollectionStats struct {
	Blogs     int `json:"blogs" db:"blogs"`
	Courses   int `json:"courses" db:"courses"`
	Contacts  int `json:"contacts" db:"contacts"`
	Inquiries int `json:"inquiries" db:"inquiries"`
	Admins    int `json:"admins" db:"admins"`
}
