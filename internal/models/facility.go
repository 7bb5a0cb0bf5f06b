package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Facility represents a healthcare organization that posts positions
type Facility struct {
	ID           uuid.UUID      `db:"id" json:"id"`
	Name         string         `db:"name" json:"name"`
	Email        string         `db:"email" json:"email"`
	PasswordHash string         `db:"password_hash" json:"-"`
	Address      string         `db:"address" json:"address"`
	City         string         `db:"city" json:"city"`
	State        string         `db:"state" json:"state"` // 2-letter uppercase code
	ZipCode      string         `db:"zip_code" json:"zip_code"`
	Phone        sql.NullString `db:"phone" json:"phone,omitempty"`
	FacilityType string         `db:"facility_type" json:"facility_type"`
	Description  sql.NullString `db:"description" json:"description,omitempty"`
	IsActive     bool           `db:"is_active" json:"is_active"`
	CreatedAt    time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at" json:"updated_at"`
}

// FacilityPublic is the facility view embedded in position results.
// It never carries credentials. Phone and Description are only populated
// on single-position detail lookups.
type FacilityPublic struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	ZipCode      string    `json:"zip_code"`
	FacilityType string    `json:"facility_type"`
	Phone        *string   `json:"phone,omitempty"`
	Description  *string   `json:"description,omitempty"`
}

// PublicView returns the facility's public attributes.
func (f *Facility) PublicView() FacilityPublic {
	return FacilityPublic{
		ID:           f.ID,
		Name:         f.Name,
		Address:      f.Address,
		City:         f.City,
		State:        f.State,
		ZipCode:      f.ZipCode,
		FacilityType: f.FacilityType,
	}
}

// Facility type constants
const (
	FacilityTypeHospital       = "Hospital"
	FacilityTypeClinic         = "Clinic"
	FacilityTypeNursingHome    = "Nursing Home"
	FacilityTypeAssistedLiving = "Assisted Living"
	FacilityTypeHomeHealth     = "Home Health"
	FacilityTypeUrgentCare     = "Urgent Care"
	FacilityTypeRehabCenter    = "Rehabilitation Center"
	FacilityTypeOther          = "Other"
)

// FacilityTypes lists every valid facility type.
var FacilityTypes = []string{
	FacilityTypeHospital,
	FacilityTypeClinic,
	FacilityTypeNursingHome,
	FacilityTypeAssistedLiving,
	FacilityTypeHomeHealth,
	FacilityTypeUrgentCare,
	FacilityTypeRehabCenter,
	FacilityTypeOther,
}

// IsValidFacilityType reports whether t is a known facility type.
func IsValidFacilityType(t string) bool {
	for _, ft := range FacilityTypes {
		if t == ft {
			return true
		}
	}
	return false
}
