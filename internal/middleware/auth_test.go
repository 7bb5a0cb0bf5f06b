package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yolku/staffing-backend/pkg/jwt"
)

func setupAuthRouter(jwtService *jwt.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	router.GET("/worker", RequireWorker(jwtService), func(c *gin.Context) {
		id, ok := SubjectID(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "missing subject"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id.String()})
	})
	router.GET("/facility", RequireFacility(jwtService), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	return router
}

func TestRequireWorker(t *testing.T) {
	jwtService := jwt.NewService("test-secret", time.Hour)
	router := setupAuthRouter(jwtService)

	request := func(authorization string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/worker", nil)
		if authorization != "" {
			req.Header.Set("Authorization", authorization)
		}
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("valid worker token passes and exposes subject", func(t *testing.T) {
		workerID := uuid.New()
		token, err := jwtService.GenerateToken(workerID, jwt.SubjectWorker)
		require.NoError(t, err)

		w := request("Bearer " + token)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), workerID.String())
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		w := request("")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header is rejected", func(t *testing.T) {
		w := request("Token abc")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("facility token is rejected on worker routes", func(t *testing.T) {
		token, err := jwtService.GenerateToken(uuid.New(), jwt.SubjectFacility)
		require.NoError(t, err)

		w := request("Bearer " + token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token is rejected with expiry message", func(t *testing.T) {
		expiredService := jwt.NewService("test-secret", -time.Minute)
		token, err := expiredService.GenerateToken(uuid.New(), jwt.SubjectWorker)
		require.NoError(t, err)

		w := request("Bearer " + token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "expired")
	})
}

func TestRequireFacility(t *testing.T) {
	jwtService := jwt.NewService("test-secret", time.Hour)
	router := setupAuthRouter(jwtService)

	token, err := jwtService.GenerateToken(uuid.New(), jwt.SubjectFacility)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/facility", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
