package handlers

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/yolku/staffing-backend/internal/database"
	"github.com/yolku/staffing-backend/internal/middleware"
	"github.com/yolku/staffing-backend/pkg/jwt"
	"github.com/yolku/staffing-backend/pkg/validator"
)

func setupWorkerRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	sqlxDB := sqlx.NewDb(db, "sqlmock")

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	jwtService := jwt.NewService("test-secret", time.Hour)
	handler := NewAuthHandler(
		database.NewWorkerRepository(sqlxDB),
		jwtService,
		validator.NewPhoneValidator(),
		bcrypt.MinCost,
		logger,
	)

	token, err := jwtService.GenerateToken(uuid.New(), jwt.SubjectWorker)
	require.NoError(t, err)

	router := gin.New()
	router.POST("/api/v1/auth/signup", handler.Signup)

	users := router.Group("/api/v1/users")
	users.Use(middleware.RequireWorker(jwtService))
	users.PUT("/profile", handler.UpdateProfile)

	return router, token
}

func TestWorkerNameBounds(t *testing.T) {
	router, token := setupWorkerRouter(t)

	t.Run("signup rejects one character first name", func(t *testing.T) {
		w := doJSONRequest(router, http.MethodPost, "/api/v1/auth/signup", "", `{
			"first_name": "J",
			"last_name": "Rivera",
			"email": "j.rivera@example.com",
			"password": "long-enough-pw",
			"profession": "RN"
		}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("profile update rejects blank last name", func(t *testing.T) {
		w := doJSONRequest(router, http.MethodPut, "/api/v1/users/profile", token, `{"last_name": "  "}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "last_name")
	})

	t.Run("profile update rejects overlong first name", func(t *testing.T) {
		long := strings.Repeat("a", 51)
		w := doJSONRequest(router, http.MethodPut, "/api/v1/users/profile", token,
			`{"first_name": "`+long+`"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
