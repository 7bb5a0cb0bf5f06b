// Command seed provisions the database schema and loads the demo data
// set into Postgres. Safe to re-run: tables are created if missing and
// demo rows are upserted by id.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"github.com/yolku/staffing-backend/internal/fixtures"
)

const schema = `
CREATE TABLE IF NOT EXISTS workers (
    id UUID PRIMARY KEY,
    first_name TEXT NOT NULL,
    last_name TEXT NOT NULL,
    email TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    phone TEXT,
    profession TEXT NOT NULL,
    license_number TEXT,
    is_active BOOLEAN NOT NULL DEFAULT true,
    last_login TIMESTAMPTZ,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS facilities (
    id UUID PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    address TEXT NOT NULL,
    city TEXT NOT NULL,
    state CHAR(2) NOT NULL,
    zip_code TEXT NOT NULL,
    phone TEXT,
    facility_type TEXT NOT NULL,
    description TEXT,
    is_active BOOLEAN NOT NULL DEFAULT true,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS positions (
    id UUID PRIMARY KEY,
    facility_id UUID NOT NULL REFERENCES facilities(id) ON DELETE CASCADE,
    title TEXT NOT NULL,
    profession TEXT NOT NULL,
    description TEXT,
    requirements TEXT,
    shift_date DATE NOT NULL,
    shift_start_time TIME NOT NULL,
    shift_end_time TIME NOT NULL,
    hourly_rate NUMERIC(8,2) NOT NULL,
    openings INTEGER NOT NULL DEFAULT 1,
    status TEXT NOT NULL DEFAULT 'Open',
    is_active BOOLEAN NOT NULL DEFAULT true,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_positions_discovery
    ON positions (shift_date, shift_start_time)
    WHERE status = 'Open' AND is_active = true;

CREATE INDEX IF NOT EXISTS idx_positions_facility
    ON positions (facility_id);

CREATE INDEX IF NOT EXISTS idx_facilities_state
    ON facilities (state);
`

func main() {
	var dbURLFlag string
	var schemaOnly bool
	flag.StringVar(&dbURLFlag, "database-url", "", "PostgreSQL connection string (overrides DATABASE_URL)")
	flag.BoolVar(&schemaOnly, "schema-only", false, "create the schema without loading demo data")
	flag.Parse()

	// Load .env from the working directory when present
	_ = godotenv.Load()

	dbURL := dbURLFlag
	if dbURL == "" {
		dbURL = os.Getenv("DATABASE_URL")
	}
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set and -database-url was not provided")
	}

	db, err := sqlx.Connect("postgres", dbURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	fmt.Println("Connected to database. Applying schema...")
	if _, err := db.Exec(schema); err != nil {
		log.Fatalf("failed to apply schema: %v", err)
	}

	if schemaOnly {
		fmt.Println("Schema applied.")
		return
	}

	// Demo accounts all share one throwaway password
	hash, err := bcrypt.GenerateFromPassword([]byte("demo-password"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash demo password: %v", err)
	}

	store := fixtures.DemoStore()

	fmt.Println("Loading demo facilities...")
	for _, f := range store.Facilities() {
		_, err := db.Exec(`
			INSERT INTO facilities (
				id, name, email, password_hash, address, city, state,
				zip_code, phone, facility_type, description, is_active
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name,
				city = EXCLUDED.city,
				state = EXCLUDED.state,
				phone = EXCLUDED.phone,
				is_active = EXCLUDED.is_active,
				updated_at = NOW()`,
			f.ID, f.Name, f.Email, string(hash), f.Address, f.City, f.State,
			f.ZipCode, f.Phone, f.FacilityType, f.Description, f.IsActive,
		)
		if err != nil {
			log.Fatalf("failed to insert facility %s: %v", f.Name, err)
		}
	}

	fmt.Println("Loading demo positions...")
	for _, p := range store.Positions() {
		_, err := db.Exec(`
			INSERT INTO positions (
				id, facility_id, title, profession, description, requirements,
				shift_date, shift_start_time, shift_end_time, hourly_rate,
				openings, status, is_active
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
			ON CONFLICT (id) DO UPDATE SET
				shift_date = EXCLUDED.shift_date,
				shift_start_time = EXCLUDED.shift_start_time,
				shift_end_time = EXCLUDED.shift_end_time,
				hourly_rate = EXCLUDED.hourly_rate,
				status = EXCLUDED.status,
				is_active = EXCLUDED.is_active,
				updated_at = NOW()`,
			p.ID, p.FacilityID, p.Title, p.Profession, p.Description, p.Requirements,
			p.ShiftDate, p.StartTime, p.EndTime, p.HourlyRate,
			p.Openings, p.Status, p.IsActive,
		)
		if err != nil {
			log.Fatalf("failed to insert position %s: %v", p.Title, err)
		}
	}

	fmt.Println("Seed complete.")
}
