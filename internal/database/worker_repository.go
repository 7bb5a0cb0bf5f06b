package database

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/yolku/staffing-backend/internal/models"
)

// WorkerRepository handles database operations for healthcare workers
type WorkerRepository struct {
	db *sqlx.DB
}

// NewWorkerRepository creates a new worker repository
func NewWorkerRepository(db *sqlx.DB) *WorkerRepository {
	return &WorkerRepository{db: db}
}

// CreateWorker registers a new healthcare worker
func (r *WorkerRepository) CreateWorker(w *models.Worker) error {
	query := `
		INSERT INTO workers (
			id, first_name, last_name, email, password_hash, phone,
			profession, license_number, is_active, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING created_at, updated_at`

	err := r.db.QueryRowx(
		query,
		w.ID,
		w.FirstName,
		w.LastName,
		w.Email,
		w.PasswordHash,
		w.Phone,
		w.Profession,
		w.LicenseNumber,
		w.IsActive,
	).Scan(&w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create worker: %w", err)
	}

	return nil
}

// GetWorkerByEmail retrieves a worker by email. Returns nil when no worker
// matches.
func (r *WorkerRepository) GetWorkerByEmail(email string) (*models.Worker, error) {
	var worker models.Worker
	query := `SELECT * FROM workers WHERE email = $1`
	err := r.db.Get(&worker, query, email)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch worker: %w", err)
	}

	return &worker, nil
}

// GetWorkerByID retrieves a worker by id. Returns nil when no worker
// matches.
func (r *WorkerRepository) GetWorkerByID(id uuid.UUID) (*models.Worker, error) {
	var worker models.Worker
	query := `SELECT * FROM workers WHERE id = $1`
	err := r.db.Get(&worker, query, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch worker: %w", err)
	}

	return &worker, nil
}

// WorkerUpdate carries the optional fields of a worker profile update
type WorkerUpdate struct {
	FirstName     *string
	LastName      *string
	Phone         *string
	Profession    *string
	LicenseNumber *string
}

// UpdateProfile applies a partial profile update. Returns nil, nil when
// the worker does not exist.
func (r *WorkerRepository) UpdateProfile(id uuid.UUID, update WorkerUpdate) (*models.Worker, error) {
	set := []string{"updated_at = NOW()"}
	var args []interface{}

	add := func(column string, value interface{}) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.FirstName != nil {
		add("first_name", *update.FirstName)
	}
	if update.LastName != nil {
		add("last_name", *update.LastName)
	}
	if update.Phone != nil {
		add("phone", *update.Phone)
	}
	if update.Profession != nil {
		add("profession", *update.Profession)
	}
	if update.LicenseNumber != nil {
		add("license_number", *update.LicenseNumber)
	}

	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE workers
		SET %s
		WHERE id = $%d
		RETURNING *`, strings.Join(set, ", "), len(args))

	var worker models.Worker
	err := r.db.Get(&worker, query, args...)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update worker: %w", err)
	}

	return &worker, nil
}

// UpdateLastLogin stamps a successful sign-in
func (r *WorkerRepository) UpdateLastLogin(id uuid.UUID) error {
	result, err := r.db.Exec(`UPDATE workers SET last_login = NOW(), updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("worker not found")
	}

	return nil
}
