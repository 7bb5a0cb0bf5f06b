package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yolku/staffing-backend/internal/fixtures"
	"github.com/yolku/staffing-backend/internal/models"
	"github.com/yolku/staffing-backend/internal/services"
)

func setupDiscoveryRouter(t *testing.T, store *fixtures.Store) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	handler := NewPositionHandler(services.NewDiscoveryService(store, nil, logger), logger)

	router := gin.New()
	positions := router.Group("/api/v1/positions")
	positions.GET("", handler.ListPositions)
	positions.GET("/states/list", handler.ListStates)
	positions.GET("/:id", handler.GetPosition)

	return router
}

func seededStore(t *testing.T) (*fixtures.Store, uuid.UUID) {
	t.Helper()
	store := fixtures.NewStore()

	facilityID := uuid.New()
	store.AddFacility(models.Facility{
		ID:           facilityID,
		Name:         "Harborview Skilled Nursing",
		Address:      "200 Pier Ave",
		City:         "Seattle",
		State:        "WA",
		ZipCode:      "98101",
		FacilityType: models.FacilityTypeNursingHome,
		IsActive:     true,
	})

	positionID := uuid.New()
	shiftDate, err := models.ParseCalendarDate("2026-09-20")
	require.NoError(t, err)
	store.AddPosition(models.Position{
		ID:         positionID,
		FacilityID: facilityID,
		Title:      "Weekend CNA",
		Profession: "CNA",
		ShiftDate:  shiftDate,
		StartTime:  "14:00:00",
		EndTime:    "22:00:00",
		HourlyRate: 24.5,
		Openings:   2,
		Status:     models.PositionStatusOpen,
		IsActive:   true,
	})

	return store, positionID
}

func doRequest(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestListPositionsEndpoint(t *testing.T) {
	store, _ := seededStore(t)
	router := setupDiscoveryRouter(t, store)

	t.Run("returns envelope with count", func(t *testing.T) {
		w := doRequest(router, "/api/v1/positions")
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Success bool              `json:"success"`
			Count   int               `json:"count"`
			Data    []json.RawMessage `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

		assert.True(t, resp.Success)
		assert.Equal(t, 1, resp.Count)
		assert.Len(t, resp.Data, 1)
	})

	t.Run("listing rows embed the facility public view", func(t *testing.T) {
		w := doRequest(router, "/api/v1/positions")
		require.Equal(t, http.StatusOK, w.Code)

		body := w.Body.String()
		assert.Contains(t, body, `"facility"`)
		assert.Contains(t, body, `"Harborview Skilled Nursing"`)
		assert.Contains(t, body, `"shift_date":"2026-09-20"`)
		assert.NotContains(t, body, "password")
	})

	t.Run("filters applied via query string", func(t *testing.T) {
		w := doRequest(router, "/api/v1/positions?state=wa&profession=CNA")
		require.Equal(t, http.StatusOK, w.Code)

		var resp ListResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.Count)
	})

	t.Run("non-matching filter yields empty data, not an error", func(t *testing.T) {
		w := doRequest(router, "/api/v1/positions?state=NY")
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Success bool              `json:"success"`
			Count   int               `json:"count"`
			Data    []json.RawMessage `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Zero(t, resp.Count)
		assert.NotNil(t, resp.Data)
	})

	t.Run("invalid state returns 400 with details", func(t *testing.T) {
		w := doRequest(router, "/api/v1/positions?state=California")
		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Equal(t, "Invalid filter parameters", resp.Error.Message)
		assert.NotEmpty(t, resp.Error.Details)
	})

	t.Run("inverted date range returns 400", func(t *testing.T) {
		w := doRequest(router, "/api/v1/positions?startDate=2026-09-30&endDate=2026-09-01")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown profession returns 400", func(t *testing.T) {
		w := doRequest(router, "/api/v1/positions?profession=Wizard")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetPositionEndpoint(t *testing.T) {
	store, positionID := seededStore(t)
	router := setupDiscoveryRouter(t, store)

	t.Run("found", func(t *testing.T) {
		w := doRequest(router, "/api/v1/positions/"+positionID.String())
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Success bool `json:"success"`
			Data    struct {
				ID    string `json:"id"`
				Title string `json:"title"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, positionID.String(), resp.Data.ID)
		assert.Equal(t, "Weekend CNA", resp.Data.Title)
	})

	t.Run("unknown id returns 404", func(t *testing.T) {
		w := doRequest(router, "/api/v1/positions/"+uuid.NewString())
		require.Equal(t, http.StatusNotFound, w.Code)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Position not found", resp.Error.Message)
	})

	t.Run("malformed id returns 400", func(t *testing.T) {
		w := doRequest(router, "/api/v1/positions/not-a-uuid")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestListStatesEndpoint(t *testing.T) {
	store, _ := seededStore(t)
	router := setupDiscoveryRouter(t, store)

	t.Run("states listing", func(t *testing.T) {
		w := doRequest(router, "/api/v1/positions/states/list")
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Success bool     `json:"success"`
			Count   int      `json:"count"`
			Data    []string `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, 1, resp.Count)
		assert.Equal(t, []string{"WA"}, resp.Data)
	})

	t.Run("empty store yields empty listing", func(t *testing.T) {
		emptyRouter := setupDiscoveryRouter(t, fixtures.NewStore())
		w := doRequest(emptyRouter, "/api/v1/positions/states/list")
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Count int      `json:"count"`
			Data  []string `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Zero(t, resp.Count)
		assert.NotNil(t, resp.Data)
	})
}
