package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/yolku/staffing-backend/internal/database"
	"github.com/yolku/staffing-backend/internal/middleware"
	"github.com/yolku/staffing-backend/internal/models"
	"github.com/yolku/staffing-backend/pkg/jwt"
	"github.com/yolku/staffing-backend/pkg/validator"
)

// uniqueViolation is the Postgres error code for unique constraint hits
const uniqueViolation = "23505"

// AuthHandler handles worker account endpoints: signup, signin, token
// verification and profile management.
type AuthHandler struct {
	workerRepository *database.WorkerRepository
	jwtService       *jwt.Service
	phoneValidator   *validator.PhoneValidator
	bcryptCost       int
	logger           *logrus.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(
	workerRepository *database.WorkerRepository,
	jwtService *jwt.Service,
	phoneValidator *validator.PhoneValidator,
	bcryptCost int,
	logger *logrus.Logger,
) *AuthHandler {
	return &AuthHandler{
		workerRepository: workerRepository,
		jwtService:       jwtService,
		phoneValidator:   phoneValidator,
		bcryptCost:       bcryptCost,
		logger:           logger,
	}
}

// WorkerSignupRequest represents the worker registration payload
type WorkerSignupRequest struct {
	FirstName     string `json:"first_name" binding:"required,min=2,max=50"`
	LastName      string `json:"last_name" binding:"required,min=2,max=50"`
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required,min=8"`
	Profession    string `json:"profession" binding:"required"`
	Phone         string `json:"phone"`
	LicenseNumber string `json:"license_number"`
}

// WorkerProfileResponse is the worker account view returned to clients
type WorkerProfileResponse struct {
	ID            string  `json:"id"`
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	Email         string  `json:"email"`
	Profession    string  `json:"profession"`
	Phone         *string `json:"phone"`
	LicenseNumber *string `json:"license_number"`
	IsActive      bool    `json:"is_active"`
	CreatedAt     string  `json:"created_at"`
}

// AuthTokenResponse carries a fresh token and the account it belongs to
type AuthTokenResponse struct {
	Token   string                `json:"token"`
	Profile WorkerProfileResponse `json:"profile"`
}

func workerProfile(w *models.Worker) WorkerProfileResponse {
	resp := WorkerProfileResponse{
		ID:         w.ID.String(),
		FirstName:  w.FirstName,
		LastName:   w.LastName,
		Email:      w.Email,
		Profession: w.Profession,
		IsActive:   w.IsActive,
		CreatedAt:  w.CreatedAt.Format(time.RFC3339),
	}
	if w.Phone.Valid {
		resp.Phone = &w.Phone.String
	}
	if w.LicenseNumber.Valid {
		resp.LicenseNumber = &w.LicenseNumber.String
	}
	return resp
}

// Signup handles POST /api/v1/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req WorkerSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, "Invalid request body", err.Error())
		return
	}

	if !models.IsValidProfession(req.Profession) {
		respondValidationError(c, "Invalid profession", "profession must be one of the supported codes")
		return
	}

	worker := &models.Worker{
		ID:         uuid.New(),
		FirstName:  strings.TrimSpace(req.FirstName),
		LastName:   strings.TrimSpace(req.LastName),
		Email:      strings.ToLower(strings.TrimSpace(req.Email)),
		Profession: req.Profession,
		IsActive:   true,
	}

	if req.Phone != "" {
		phone, err := h.phoneValidator.Validate(req.Phone)
		if err != nil {
			respondValidationError(c, "Invalid phone number", err.Error())
			return
		}
		worker.Phone = sql.NullString{String: phone, Valid: true}
	}
	if req.LicenseNumber != "" {
		worker.LicenseNumber = sql.NullString{String: strings.TrimSpace(req.LicenseNumber), Valid: true}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), h.bcryptCost)
	if err != nil {
		h.logger.WithError(err).Error("Password hashing failed")
		respondError(c, http.StatusInternalServerError, "Failed to create account")
		return
	}
	worker.PasswordHash = string(hash)

	if err := h.workerRepository.CreateWorker(worker); err != nil {
		if pqErr, ok := unwrapPQError(err); ok && pqErr.Code == uniqueViolation {
			respondError(c, http.StatusConflict, "An account with this email already exists")
			return
		}
		h.logger.WithError(err).Error("Worker signup failed")
		respondError(c, http.StatusInternalServerError, "Failed to create account")
		return
	}

	token, err := h.jwtService.GenerateToken(worker.ID, jwt.SubjectWorker)
	if err != nil {
		h.logger.WithError(err).Error("Token generation failed")
		respondError(c, http.StatusInternalServerError, "Failed to create account")
		return
	}

	respondItem(c, http.StatusCreated, AuthTokenResponse{
		Token:   token,
		Profile: workerProfile(worker),
	})
}

// SigninRequest represents the credentials payload shared by worker and
// facility sign-in.
type SigninRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Signin handles POST /api/v1/auth/signin
func (h *AuthHandler) Signin(c *gin.Context) {
	var req SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, "Invalid request body", err.Error())
		return
	}

	worker, err := h.workerRepository.GetWorkerByEmail(strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		h.logger.WithError(err).Error("Worker lookup failed")
		respondError(c, http.StatusInternalServerError, "Failed to sign in")
		return
	}

	if worker == nil || bcrypt.CompareHashAndPassword([]byte(worker.PasswordHash), []byte(req.Password)) != nil {
		respondError(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	if !worker.IsActive {
		respondError(c, http.StatusForbidden, "Account is deactivated")
		return
	}

	if err := h.workerRepository.UpdateLastLogin(worker.ID); err != nil {
		// Sign-in still succeeds, the stamp is informational
		h.logger.WithError(err).WithField("worker_id", worker.ID).Warn("Last login update failed")
	}

	token, err := h.jwtService.GenerateToken(worker.ID, jwt.SubjectWorker)
	if err != nil {
		h.logger.WithError(err).Error("Token generation failed")
		respondError(c, http.StatusInternalServerError, "Failed to sign in")
		return
	}

	respondItem(c, http.StatusOK, AuthTokenResponse{
		Token:   token,
		Profile: workerProfile(worker),
	})
}

// Verify handles POST /api/v1/auth/verify. Reaching it at all means
// the middleware accepted the token; it confirms the account still exists
// and is active.
func (h *AuthHandler) Verify(c *gin.Context) {
	workerID, ok := middleware.SubjectID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	worker, err := h.workerRepository.GetWorkerByID(workerID)
	if err != nil {
		h.logger.WithError(err).Error("Worker lookup failed")
		respondError(c, http.StatusInternalServerError, "Failed to verify token")
		return
	}

	if worker == nil || !worker.IsActive {
		respondError(c, http.StatusUnauthorized, "Account no longer active")
		return
	}

	respondItem(c, http.StatusOK, workerProfile(worker))
}

// GetProfile handles GET /api/v1/users/profile
func (h *AuthHandler) GetProfile(c *gin.Context) {
	workerID, ok := middleware.SubjectID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	worker, err := h.workerRepository.GetWorkerByID(workerID)
	if err != nil {
		h.logger.WithError(err).Error("Worker lookup failed")
		respondError(c, http.StatusInternalServerError, "Failed to fetch profile")
		return
	}

	if worker == nil {
		respondError(c, http.StatusNotFound, "Account not found")
		return
	}

	respondItem(c, http.StatusOK, workerProfile(worker))
}

// UpdateWorkerProfileRequest represents a partial profile update
type UpdateWorkerProfileRequest struct {
	FirstName     *string `json:"first_name"`
	LastName      *string `json:"last_name"`
	Phone         *string `json:"phone"`
	Profession    *string `json:"profession"`
	LicenseNumber *string `json:"license_number"`
}

// UpdateProfile handles PUT /api/v1/users/profile
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	workerID, ok := middleware.SubjectID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req UpdateWorkerProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, "Invalid request body", err.Error())
		return
	}

	update := database.WorkerUpdate{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Profession:    req.Profession,
		LicenseNumber: req.LicenseNumber,
	}

	if req.FirstName != nil && !validNameLength(*req.FirstName, 50) {
		respondValidationError(c, "Invalid name", "first_name must be 2 to 50 characters")
		return
	}
	if req.LastName != nil && !validNameLength(*req.LastName, 50) {
		respondValidationError(c, "Invalid name", "last_name must be 2 to 50 characters")
		return
	}
	if req.Profession != nil && !models.IsValidProfession(*req.Profession) {
		respondValidationError(c, "Invalid profession", "profession must be one of the supported codes")
		return
	}
	if req.Phone != nil {
		phone, err := h.phoneValidator.Validate(*req.Phone)
		if err != nil {
			respondValidationError(c, "Invalid phone number", err.Error())
			return
		}
		update.Phone = &phone
	}

	worker, err := h.workerRepository.UpdateProfile(workerID, update)
	if err != nil {
		h.logger.WithError(err).Error("Worker profile update failed")
		respondError(c, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	if worker == nil {
		respondError(c, http.StatusNotFound, "Account not found")
		return
	}

	respondItem(c, http.StatusOK, workerProfile(worker))
}

func unwrapPQError(err error) (*pq.Error, bool) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr, true
	}
	return nil, false
}
