package database

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/yolku/staffing-backend/internal/models"
)

// FacilityRepository handles database operations for facilities
type FacilityRepository struct {
	db *sqlx.DB
}

// NewFacilityRepository creates a new facility repository
func NewFacilityRepository(db *sqlx.DB) *FacilityRepository {
	return &FacilityRepository{db: db}
}

// CreateFacility registers a new facility
func (r *FacilityRepository) CreateFacility(f *models.Facility) error {
	query := `
		INSERT INTO facilities (
			id, name, email, password_hash, address, city, state, zip_code,
			phone, facility_type, description, is_active, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
		RETURNING created_at, updated_at`

	err := r.db.QueryRowx(
		query,
		f.ID,
		f.Name,
		f.Email,
		f.PasswordHash,
		f.Address,
		f.City,
		f.State,
		f.ZipCode,
		f.Phone,
		f.FacilityType,
		f.Description,
		f.IsActive,
	).Scan(&f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create facility: %w", err)
	}

	return nil
}

// GetFacilityByEmail retrieves a facility by email. Returns nil when no
// facility matches.
func (r *FacilityRepository) GetFacilityByEmail(email string) (*models.Facility, error) {
	var facility models.Facility
	query := `SELECT * FROM facilities WHERE email = $1`
	err := r.db.Get(&facility, query, email)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch facility: %w", err)
	}

	return &facility, nil
}

// GetFacilityByID retrieves a facility by id. Returns nil when no facility
// matches.
func (r *FacilityRepository) GetFacilityByID(id uuid.UUID) (*models.Facility, error) {
	var facility models.Facility
	query := `SELECT * FROM facilities WHERE id = $1`
	err := r.db.Get(&facility, query, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch facility: %w", err)
	}

	return &facility, nil
}

// FacilityUpdate carries the optional fields of a facility profile update
type FacilityUpdate struct {
	Name         *string
	Address      *string
	City         *string
	State        *string
	ZipCode      *string
	Phone        *string
	FacilityType *string
	Description  *string
}

// UpdateProfile applies a partial profile update. Returns nil, nil when
// the facility does not exist.
func (r *FacilityRepository) UpdateProfile(id uuid.UUID, update FacilityUpdate) (*models.Facility, error) {
	set := []string{"updated_at = NOW()"}
	var args []interface{}

	add := func(column string, value interface{}) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.Name != nil {
		add("name", *update.Name)
	}
	if update.Address != nil {
		add("address", *update.Address)
	}
	if update.City != nil {
		add("city", *update.City)
	}
	if update.State != nil {
		add("state", *update.State)
	}
	if update.ZipCode != nil {
		add("zip_code", *update.ZipCode)
	}
	if update.Phone != nil {
		add("phone", *update.Phone)
	}
	if update.FacilityType != nil {
		add("facility_type", *update.FacilityType)
	}
	if update.Description != nil {
		add("description", *update.Description)
	}

	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE facilities
		SET %s
		WHERE id = $%d
		RETURNING *`, strings.Join(set, ", "), len(args))

	var facility models.Facility
	err := r.db.Get(&facility, query, args...)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update facility: %w", err)
	}

	return &facility, nil
}
