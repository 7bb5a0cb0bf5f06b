package database

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/yolku/staffing-backend/internal/models"
)

// PositionRepository handles database operations for positions
type PositionRepository struct {
	db *sqlx.DB
}

// NewPositionRepository creates a new position repository
func NewPositionRepository(db *sqlx.DB) *PositionRepository {
	return &PositionRepository{db: db}
}

// positionRow scans the flat result of the positions/facilities join
type positionRow struct {
	ID           uuid.UUID           `db:"id"`
	FacilityID   uuid.UUID           `db:"facility_id"`
	Title        string              `db:"title"`
	Profession   string              `db:"profession"`
	Description  sql.NullString      `db:"description"`
	Requirements sql.NullString      `db:"requirements"`
	ShiftDate    models.CalendarDate `db:"shift_date"`
	StartTime    string              `db:"shift_start_time"`
	EndTime      string              `db:"shift_end_time"`
	HourlyRate   float64             `db:"hourly_rate"`
	Openings     int                 `db:"openings"`
	Status       string              `db:"status"`
	IsActive     bool                `db:"is_active"`
	CreatedAt    sql.NullTime        `db:"created_at"`
	UpdatedAt    sql.NullTime        `db:"updated_at"`

	FacilityName  string         `db:"facility_name"`
	FacilityAddr  string         `db:"facility_address"`
	FacilityCity  string         `db:"facility_city"`
	FacilityState string         `db:"facility_state"`
	FacilityZip   string         `db:"facility_zip"`
	FacilityType  string         `db:"facility_type"`
	FacilityPhone sql.NullString `db:"facility_phone"`
	FacilityDesc  sql.NullString `db:"facility_description"`
}

func (r positionRow) toResult(detail bool) models.PositionWithFacility {
	result := models.PositionWithFacility{
		Position: models.Position{
			ID:           r.ID,
			FacilityID:   r.FacilityID,
			Title:        r.Title,
			Profession:   r.Profession,
			Description:  r.Description,
			Requirements: r.Requirements,
			ShiftDate:    r.ShiftDate,
			StartTime:    r.StartTime,
			EndTime:      r.EndTime,
			HourlyRate:   r.HourlyRate,
			Openings:     r.Openings,
			Status:       r.Status,
			IsActive:     r.IsActive,
			CreatedAt:    r.CreatedAt.Time,
			UpdatedAt:    r.UpdatedAt.Time,
		},
		Facility: models.FacilityPublic{
			ID:           r.FacilityID,
			Name:         r.FacilityName,
			Address:      r.FacilityAddr,
			City:         r.FacilityCity,
			State:        r.FacilityState,
			ZipCode:      r.FacilityZip,
			FacilityType: r.FacilityType,
		},
	}

	// Phone and description only appear on detail lookups
	if detail {
		if r.FacilityPhone.Valid {
			result.Facility.Phone = &r.FacilityPhone.String
		}
		if r.FacilityDesc.Valid {
			result.Facility.Description = &r.FacilityDesc.String
		}
	}

	return result
}

const positionSelectColumns = `
		p.id, p.facility_id, p.title, p.profession, p.description, p.requirements,
		p.shift_date, p.shift_start_time, p.shift_end_time, p.hourly_rate,
		p.openings, p.status, p.is_active, p.created_at, p.updated_at,
		f.name AS facility_name,
		f.address AS facility_address,
		f.city AS facility_city,
		f.state AS facility_state,
		f.zip_code AS facility_zip,
		f.facility_type AS facility_type,
		f.phone AS facility_phone,
		f.description AS facility_description`

// FindPositions executes the discovery query: the base availability
// predicate plus any present filters, combined conjunctively, ordered by
// shift date then start time then creation time for deterministic output.
func (r *PositionRepository) FindPositions(q *models.PositionQuery) ([]models.PositionWithFacility, error) {
	where := []string{
		"p.status = 'Open'",
		"p.is_active = true",
		"f.is_active = true",
	}
	var args []interface{}

	if q.State != "" {
		args = append(args, q.State)
		where = append(where, fmt.Sprintf("f.state = $%d", len(args)))
	}
	if q.Profession != "" {
		args = append(args, q.Profession)
		where = append(where, fmt.Sprintf("p.profession = $%d", len(args)))
	}
	if q.StartDate != nil {
		args = append(args, q.StartDate.String())
		where = append(where, fmt.Sprintf("p.shift_date >= $%d", len(args)))
	}
	if q.EndDate != nil {
		args = append(args, q.EndDate.String())
		where = append(where, fmt.Sprintf("p.shift_date <= $%d", len(args)))
	}

	query := `
		SELECT` + positionSelectColumns + `
		FROM positions p
		JOIN facilities f ON f.id = p.facility_id
		WHERE ` + strings.Join(where, "\n		  AND ") + `
		ORDER BY p.shift_date ASC, p.shift_start_time ASC, p.created_at ASC`

	var rows []positionRow
	if err := r.db.Select(&rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query positions: %w", err)
	}

	results := make([]models.PositionWithFacility, len(rows))
	for i, row := range rows {
		results[i] = row.toResult(false)
	}

	return results, nil
}

// GetPositionByID retrieves a single position with its facility's detail
// view. Detail lookups are not filtered by availability; a filled or
// deactivated position is still addressable by id. Returns nil when no
// position matches.
func (r *PositionRepository) GetPositionByID(id uuid.UUID) (*models.PositionWithFacility, error) {
	query := `
		SELECT` + positionSelectColumns + `
		FROM positions p
		JOIN facilities f ON f.id = p.facility_id
		WHERE p.id = $1`

	var row positionRow
	err := r.db.Get(&row, query, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch position: %w", err)
	}

	result := row.toResult(true)
	return &result, nil
}

// ListAvailableStates returns the distinct facility states holding at
// least one position that satisfies the base availability predicate,
// sorted ascending.
func (r *PositionRepository) ListAvailableStates() ([]string, error) {
	query := `
		SELECT DISTINCT f.state
		FROM facilities f
		JOIN positions p ON p.facility_id = f.id
		WHERE p.status = 'Open'
		  AND p.is_active = true
		  AND f.is_active = true
		ORDER BY f.state ASC`

	states := []string{}
	if err := r.db.Select(&states, query); err != nil {
		return nil, fmt.Errorf("failed to query available states: %w", err)
	}

	return states, nil
}

// ListByFacility returns every position owned by a facility, soonest
// shift first, newest posting first within a day.
func (r *PositionRepository) ListByFacility(facilityID uuid.UUID) ([]models.Position, error) {
	query := `
		SELECT * FROM positions
		WHERE facility_id = $1
		ORDER BY shift_date ASC, created_at DESC`

	var positions []models.Position
	if err := r.db.Select(&positions, query, facilityID); err != nil {
		return nil, fmt.Errorf("failed to list facility positions: %w", err)
	}

	return positions, nil
}

// GetByFacility retrieves one position scoped to its owning facility.
// Returns nil when the position does not exist or belongs to another
// facility.
func (r *PositionRepository) GetByFacility(id, facilityID uuid.UUID) (*models.Position, error) {
	var position models.Position
	query := `SELECT * FROM positions WHERE id = $1 AND facility_id = $2`
	err := r.db.Get(&position, query, id, facilityID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch position: %w", err)
	}

	return &position, nil
}

// CreatePosition inserts a new position for a facility
func (r *PositionRepository) CreatePosition(p *models.Position) error {
	query := `
		INSERT INTO positions (
			id, facility_id, title, profession, description, requirements,
			shift_date, shift_start_time, shift_end_time, hourly_rate,
			openings, status, is_active, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
		RETURNING created_at, updated_at`

	err := r.db.QueryRowx(
		query,
		p.ID,
		p.FacilityID,
		p.Title,
		p.Profession,
		p.Description,
		p.Requirements,
		p.ShiftDate,
		p.StartTime,
		p.EndTime,
		p.HourlyRate,
		p.Openings,
		p.Status,
		p.IsActive,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create position: %w", err)
	}

	return nil
}

// PositionUpdate carries the optional fields of a partial position update
type PositionUpdate struct {
	Title        *string
	Profession   *string
	Description  *string
	Requirements *string
	ShiftDate    *models.CalendarDate
	StartTime    *string
	EndTime      *string
	HourlyRate   *float64
	Openings     *int
	Status       *string
}

// UpdatePosition applies a partial update to a facility's position.
// Returns nil, nil when the position is missing or owned elsewhere.
func (r *PositionRepository) UpdatePosition(id, facilityID uuid.UUID, update PositionUpdate) (*models.Position, error) {
	set := []string{"updated_at = NOW()"}
	var args []interface{}

	add := func(column string, value interface{}) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.Title != nil {
		add("title", *update.Title)
	}
	if update.Profession != nil {
		add("profession", *update.Profession)
	}
	if update.Description != nil {
		add("description", *update.Description)
	}
	if update.Requirements != nil {
		add("requirements", *update.Requirements)
	}
	if update.ShiftDate != nil {
		add("shift_date", *update.ShiftDate)
	}
	if update.StartTime != nil {
		add("shift_start_time", *update.StartTime)
	}
	if update.EndTime != nil {
		add("shift_end_time", *update.EndTime)
	}
	if update.HourlyRate != nil {
		add("hourly_rate", *update.HourlyRate)
	}
	if update.Openings != nil {
		add("openings", *update.Openings)
	}
	if update.Status != nil {
		add("status", *update.Status)
	}

	args = append(args, id)
	idArg := len(args)
	args = append(args, facilityID)
	facilityArg := len(args)

	query := fmt.Sprintf(`
		UPDATE positions
		SET %s
		WHERE id = $%d AND facility_id = $%d
		RETURNING *`, strings.Join(set, ", "), idArg, facilityArg)

	var position models.Position
	err := r.db.Get(&position, query, args...)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update position: %w", err)
	}

	return &position, nil
}

// DeletePosition removes a facility's position. Returns false when the
// position is missing or owned elsewhere.
func (r *PositionRepository) DeletePosition(id, facilityID uuid.UUID) (bool, error) {
	result, err := r.db.Exec(`DELETE FROM positions WHERE id = $1 AND facility_id = $2`, id, facilityID)
	if err != nil {
		return false, fmt.Errorf("failed to delete position: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read delete result: %w", err)
	}

	return affected > 0, nil
}
