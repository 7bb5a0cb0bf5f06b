package database

import (
	"database/sql/driver"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yolku/staffing-backend/internal/models"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

var positionColumns = []string{
	"id", "facility_id", "title", "profession", "description", "requirements",
	"shift_date", "shift_start_time", "shift_end_time", "hourly_rate",
	"openings", "status", "is_active", "created_at", "updated_at",
	"facility_name", "facility_address", "facility_city", "facility_state",
	"facility_zip", "facility_type", "facility_phone", "facility_description",
}

func positionRowValues(positionID, facilityID uuid.UUID, shiftDate, state string) []driver.Value {
	now := time.Now()
	return []driver.Value{
		positionID, facilityID, "ICU Night Shift RN", "RN", "Night coverage", nil,
		shiftDate, "19:00:00", "07:00:00", 68.5,
		2, "Open", true, now, now,
		"Sunrise Valley Medical Center", "100 Main St", "Sacramento", state,
		"95814", "Hospital", "(916) 555-0142", "Level II trauma center",
	}
}

func TestFindPositions(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewPositionRepository(sqlxDB)

	positionID := uuid.New()
	facilityID := uuid.New()

	t.Run("No Filters", func(t *testing.T) {
		mock.ExpectQuery(`FROM positions p`).
			WillReturnRows(sqlmock.NewRows(positionColumns).
				AddRow(positionRowValues(positionID, facilityID, "2026-09-15", "CA")...))

		results, err := repo.FindPositions(&models.PositionQuery{})
		require.NoError(t, err)
		require.Len(t, results, 1)

		assert.Equal(t, positionID, results[0].ID)
		assert.Equal(t, "ICU Night Shift RN", results[0].Title)
		assert.Equal(t, "2026-09-15", results[0].ShiftDate.String())
		assert.Equal(t, "CA", results[0].Facility.State)

		// Listing rows never expose facility contact details
		assert.Nil(t, results[0].Facility.Phone)
		assert.Nil(t, results[0].Facility.Description)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("State Filter Binds Argument", func(t *testing.T) {
		mock.ExpectQuery(`FROM positions p`).
			WithArgs("NY").
			WillReturnRows(sqlmock.NewRows(positionColumns))

		results, err := repo.FindPositions(&models.PositionQuery{State: "NY"})
		require.NoError(t, err)
		assert.Empty(t, results)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("All Filters Bind In Order", func(t *testing.T) {
		start := models.NewCalendarDate(2026, time.September, 1)
		end := models.NewCalendarDate(2026, time.September, 30)

		mock.ExpectQuery(`FROM positions p`).
			WithArgs("TX", "LPN", "2026-09-01", "2026-09-30").
			WillReturnRows(sqlmock.NewRows(positionColumns))

		_, err := repo.FindPositions(&models.PositionQuery{
			State:      "TX",
			Profession: "LPN",
			StartDate:  &start,
			EndDate:    &end,
		})
		require.NoError(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database Error", func(t *testing.T) {
		mock.ExpectQuery(`FROM positions p`).
			WillReturnError(fmt.Errorf("connection refused"))

		results, err := repo.FindPositions(&models.PositionQuery{})
		assert.Error(t, err)
		assert.Nil(t, results)
		assert.Contains(t, err.Error(), "failed to query positions")

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetPositionByID(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewPositionRepository(sqlxDB)

	positionID := uuid.New()
	facilityID := uuid.New()

	t.Run("Found With Facility Detail", func(t *testing.T) {
		mock.ExpectQuery(`FROM positions p`).
			WithArgs(positionID).
			WillReturnRows(sqlmock.NewRows(positionColumns).
				AddRow(positionRowValues(positionID, facilityID, "2026-09-15", "CA")...))

		result, err := repo.GetPositionByID(positionID)
		require.NoError(t, err)
		require.NotNil(t, result)

		// Detail lookups include facility contact details
		require.NotNil(t, result.Facility.Phone)
		assert.Equal(t, "(916) 555-0142", *result.Facility.Phone)
		require.NotNil(t, result.Facility.Description)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectQuery(`FROM positions p`).
			WithArgs(positionID).
			WillReturnRows(sqlmock.NewRows(positionColumns))

		result, err := repo.GetPositionByID(positionID)
		require.NoError(t, err)
		assert.Nil(t, result)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestListAvailableStates(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewPositionRepository(sqlxDB)

	t.Run("Returns Sorted States", func(t *testing.T) {
		mock.ExpectQuery(`SELECT DISTINCT f.state`).
			WillReturnRows(sqlmock.NewRows([]string{"state"}).
				AddRow("CA").AddRow("NY").AddRow("TX"))

		states, err := repo.ListAvailableStates()
		require.NoError(t, err)
		assert.Equal(t, []string{"CA", "NY", "TX"}, states)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Empty Result Is Empty Slice", func(t *testing.T) {
		mock.ExpectQuery(`SELECT DISTINCT f.state`).
			WillReturnRows(sqlmock.NewRows([]string{"state"}))

		states, err := repo.ListAvailableStates()
		require.NoError(t, err)
		assert.NotNil(t, states)
		assert.Empty(t, states)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDeletePosition(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewPositionRepository(sqlxDB)

	positionID := uuid.New()
	facilityID := uuid.New()

	t.Run("Deleted", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM positions`).
			WithArgs(positionID, facilityID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		deleted, err := repo.DeletePosition(positionID, facilityID)
		require.NoError(t, err)
		assert.True(t, deleted)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Owned Elsewhere", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM positions`).
			WithArgs(positionID, facilityID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		deleted, err := repo.DeletePosition(positionID, facilityID)
		require.NoError(t, err)
		assert.False(t, deleted)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
