package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Position represents a staffing vacancy posted by a facility.
// Positions are shift-based: a single calendar date with a start and end
// time of day, compensated at an hourly rate.
type Position struct {
	ID           uuid.UUID      `db:"id" json:"id"`
	FacilityID   uuid.UUID      `db:"facility_id" json:"facility_id"`
	Title        string         `db:"title" json:"title"`
	Profession   string         `db:"profession" json:"profession"`
	Description  sql.NullString `db:"description" json:"description,omitempty"`
	Requirements sql.NullString `db:"requirements" json:"requirements,omitempty"`
	ShiftDate    CalendarDate   `db:"shift_date" json:"shift_date"`
	StartTime    string         `db:"shift_start_time" json:"shift_start_time"` // HH:MM:SS
	EndTime      string         `db:"shift_end_time" json:"shift_end_time"`
	HourlyRate   float64        `db:"hourly_rate" json:"hourly_rate"`
	Openings     int            `db:"openings" json:"openings"`
	Status       string         `db:"status" json:"status"`
	IsActive     bool           `db:"is_active" json:"is_active"`
	CreatedAt    time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at" json:"updated_at"`
}

// PositionWithFacility is a position joined with its facility's public view,
// as returned by discovery queries.
type PositionWithFacility struct {
	Position
	Facility FacilityPublic `json:"facility"`
}

// Position status constants
const (
	PositionStatusOpen      = "Open"
	PositionStatusFilled    = "Filled"
	PositionStatusCancelled = "Cancelled"
)

// PositionStatuses lists every valid position status.
var PositionStatuses = []string{
	PositionStatusOpen,
	PositionStatusFilled,
	PositionStatusCancelled,
}

// IsValidPositionStatus reports whether s is a known status.
func IsValidPositionStatus(s string) bool {
	for _, st := range PositionStatuses {
		if s == st {
			return true
		}
	}
	return false
}

// Canonical profession codes. Comparison is case-sensitive; clients map
// human labels ("Registered Nurse (RN)") to codes before calling.
const (
	ProfessionRN         = "RN"
	ProfessionLPN        = "LPN"
	ProfessionCNA        = "CNA"
	ProfessionDoctor     = "Doctor"
	ProfessionPA         = "PA"
	ProfessionNP         = "NP"
	ProfessionTherapist  = "Therapist"
	ProfessionPharmacist = "Pharmacist"
	ProfessionOther      = "Other"
)

// Professions lists every canonical profession code.
var Professions = []string{
	ProfessionRN,
	ProfessionLPN,
	ProfessionCNA,
	ProfessionDoctor,
	ProfessionPA,
	ProfessionNP,
	ProfessionTherapist,
	ProfessionPharmacist,
	ProfessionOther,
}

// IsValidProfession reports whether p is a canonical profession code.
func IsValidProfession(p string) bool {
	for _, code := range Professions {
		if p == code {
			return true
		}
	}
	return false
}
