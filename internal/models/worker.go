package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Worker represents a healthcare worker account
type Worker struct {
	ID            uuid.UUID      `db:"id" json:"id"`
	FirstName     string         `db:"first_name" json:"first_name"`
	LastName      string         `db:"last_name" json:"last_name"`
	Email         string         `db:"email" json:"email"`
	PasswordHash  string         `db:"password_hash" json:"-"`
	Phone         sql.NullString `db:"phone" json:"phone,omitempty"`
	Profession    string         `db:"profession" json:"profession"`
	LicenseNumber sql.NullString `db:"license_number" json:"license_number,omitempty"`
	IsActive      bool           `db:"is_active" json:"is_active"`
	LastLogin     sql.NullTime   `db:"last_login" json:"last_login,omitempty"`
	CreatedAt     time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at" json:"updated_at"`
}
