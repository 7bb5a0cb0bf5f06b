package handlers

import (
	"database/sql"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/yolku/staffing-backend/internal/cache"
	"github.com/yolku/staffing-backend/internal/database"
	"github.com/yolku/staffing-backend/internal/middleware"
	"github.com/yolku/staffing-backend/internal/models"
	"github.com/yolku/staffing-backend/pkg/jwt"
	"github.com/yolku/staffing-backend/pkg/sanitize"
	"github.com/yolku/staffing-backend/pkg/validator"
)

// FacilityHandler handles facility account endpoints and the
// facility-scoped position CRUD.
type FacilityHandler struct {
	facilityRepository *database.FacilityRepository
	positionRepository *database.PositionRepository
	jwtService         *jwt.Service
	phoneValidator     *validator.PhoneValidator
	cleaner            *sanitize.Cleaner
	stateCache         *cache.StateCache
	bcryptCost         int
	logger             *logrus.Logger
}

// NewFacilityHandler creates a new facility handler
func NewFacilityHandler(
	facilityRepository *database.FacilityRepository,
	positionRepository *database.PositionRepository,
	jwtService *jwt.Service,
	phoneValidator *validator.PhoneValidator,
	cleaner *sanitize.Cleaner,
	stateCache *cache.StateCache,
	bcryptCost int,
	logger *logrus.Logger,
) *FacilityHandler {
	return &FacilityHandler{
		facilityRepository: facilityRepository,
		positionRepository: positionRepository,
		jwtService:         jwtService,
		phoneValidator:     phoneValidator,
		cleaner:            cleaner,
		stateCache:         stateCache,
		bcryptCost:         bcryptCost,
		logger:             logger,
	}
}

// FacilitySignupRequest represents the facility registration payload
type FacilitySignupRequest struct {
	Name         string `json:"name" binding:"required,min=2,max=200"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=8"`
	Address      string `json:"address" binding:"required"`
	City         string `json:"city" binding:"required"`
	State        string `json:"state" binding:"required"`
	ZipCode      string `json:"zip_code" binding:"required"`
	FacilityType string `json:"facility_type" binding:"required"`
	Phone        string `json:"phone"`
	Description  string `json:"description"`
}

// FacilityProfileResponse is the facility account view returned to clients
type FacilityProfileResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Address      string  `json:"address"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	ZipCode      string  `json:"zip_code"`
	FacilityType string  `json:"facility_type"`
	Phone        *string `json:"phone"`
	Description  *string `json:"description"`
	IsActive     bool    `json:"is_active"`
	CreatedAt    string  `json:"created_at"`
}

// FacilityTokenResponse carries a fresh token and the facility it belongs to
type FacilityTokenResponse struct {
	Token   string                  `json:"token"`
	Profile FacilityProfileResponse `json:"profile"`
}

func facilityProfile(f *models.Facility) FacilityProfileResponse {
	resp := FacilityProfileResponse{
		ID:           f.ID.String(),
		Name:         f.Name,
		Email:        f.Email,
		Address:      f.Address,
		City:         f.City,
		State:        f.State,
		ZipCode:      f.ZipCode,
		FacilityType: f.FacilityType,
		IsActive:     f.IsActive,
		CreatedAt:    f.CreatedAt.Format(time.RFC3339),
	}
	if f.Phone.Valid {
		resp.Phone = &f.Phone.String
	}
	if f.Description.Valid {
		resp.Description = &f.Description.String
	}
	return resp
}

// Signup handles POST /api/v1/facilities/signup
func (h *FacilityHandler) Signup(c *gin.Context) {
	var req FacilitySignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, "Invalid request body", err.Error())
		return
	}

	state, err := validator.NormalizeStateCode(req.State)
	if err != nil {
		respondValidationError(c, "Invalid state code", err.Error())
		return
	}
	if !models.IsValidFacilityType(req.FacilityType) {
		respondValidationError(c, "Invalid facility type", "facility_type must be one of the supported types")
		return
	}

	name := h.cleaner.Clean(strings.TrimSpace(req.Name))
	if !validNameLength(name, 200) {
		respondValidationError(c, "Invalid facility name", "name must be 2 to 200 characters")
		return
	}

	facility := &models.Facility{
		ID:           uuid.New(),
		Name:         name,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Address:      h.cleaner.Clean(strings.TrimSpace(req.Address)),
		City:         h.cleaner.Clean(strings.TrimSpace(req.City)),
		State:        state,
		ZipCode:      strings.TrimSpace(req.ZipCode),
		FacilityType: req.FacilityType,
		IsActive:     true,
	}

	if req.Phone != "" {
		phone, err := h.phoneValidator.Validate(req.Phone)
		if err != nil {
			respondValidationError(c, "Invalid phone number", err.Error())
			return
		}
		facility.Phone = sql.NullString{String: phone, Valid: true}
	}
	if req.Description != "" {
		facility.Description = sql.NullString{String: h.cleaner.Clean(req.Description), Valid: true}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), h.bcryptCost)
	if err != nil {
		h.logger.WithError(err).Error("Password hashing failed")
		respondError(c, http.StatusInternalServerError, "Failed to create account")
		return
	}
	facility.PasswordHash = string(hash)

	if err := h.facilityRepository.CreateFacility(facility); err != nil {
		if pqErr, ok := unwrapPQError(err); ok && pqErr.Code == uniqueViolation {
			respondError(c, http.StatusConflict, "An account with this email already exists")
			return
		}
		h.logger.WithError(err).Error("Facility signup failed")
		respondError(c, http.StatusInternalServerError, "Failed to create account")
		return
	}

	token, err := h.jwtService.GenerateToken(facility.ID, jwt.SubjectFacility)
	if err != nil {
		h.logger.WithError(err).Error("Token generation failed")
		respondError(c, http.StatusInternalServerError, "Failed to create account")
		return
	}

	respondItem(c, http.StatusCreated, FacilityTokenResponse{
		Token:   token,
		Profile: facilityProfile(facility),
	})
}

// Signin handles POST /api/v1/facilities/signin
func (h *FacilityHandler) Signin(c *gin.Context) {
	var req SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, "Invalid request body", err.Error())
		return
	}

	facility, err := h.facilityRepository.GetFacilityByEmail(strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		h.logger.WithError(err).Error("Facility lookup failed")
		respondError(c, http.StatusInternalServerError, "Failed to sign in")
		return
	}

	if facility == nil || bcrypt.CompareHashAndPassword([]byte(facility.PasswordHash), []byte(req.Password)) != nil {
		respondError(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	if !facility.IsActive {
		respondError(c, http.StatusForbidden, "Account is deactivated")
		return
	}

	token, err := h.jwtService.GenerateToken(facility.ID, jwt.SubjectFacility)
	if err != nil {
		h.logger.WithError(err).Error("Token generation failed")
		respondError(c, http.StatusInternalServerError, "Failed to sign in")
		return
	}

	respondItem(c, http.StatusOK, FacilityTokenResponse{
		Token:   token,
		Profile: facilityProfile(facility),
	})
}

// GetProfile handles GET /api/v1/facilities/profile
func (h *FacilityHandler) GetProfile(c *gin.Context) {
	facilityID, ok := middleware.SubjectID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	facility, err := h.facilityRepository.GetFacilityByID(facilityID)
	if err != nil {
		h.logger.WithError(err).Error("Facility lookup failed")
		respondError(c, http.StatusInternalServerError, "Failed to fetch profile")
		return
	}

	if facility == nil {
		respondError(c, http.StatusNotFound, "Account not found")
		return
	}

	respondItem(c, http.StatusOK, facilityProfile(facility))
}

// UpdateFacilityProfileRequest represents a partial facility profile update
type UpdateFacilityProfileRequest struct {
	Name         *string `json:"name"`
	Address      *string `json:"address"`
	City         *string `json:"city"`
	State        *string `json:"state"`
	ZipCode      *string `json:"zip_code"`
	Phone        *string `json:"phone"`
	FacilityType *string `json:"facility_type"`
	Description  *string `json:"description"`
}

// UpdateProfile handles PUT /api/v1/facilities/profile
func (h *FacilityHandler) UpdateProfile(c *gin.Context) {
	facilityID, ok := middleware.SubjectID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req UpdateFacilityProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, "Invalid request body", err.Error())
		return
	}

	update := database.FacilityUpdate{
		Address:     h.cleaner.CleanPtr(req.Address),
		City:        h.cleaner.CleanPtr(req.City),
		ZipCode:     req.ZipCode,
		Description: h.cleaner.CleanPtr(req.Description),
	}

	if req.Name != nil {
		name := h.cleaner.Clean(strings.TrimSpace(*req.Name))
		if !validNameLength(name, 200) {
			respondValidationError(c, "Invalid facility name", "name must be 2 to 200 characters")
			return
		}
		update.Name = &name
	}
	if req.State != nil {
		state, err := validator.NormalizeStateCode(*req.State)
		if err != nil {
			respondValidationError(c, "Invalid state code", err.Error())
			return
		}
		update.State = &state
	}
	if req.FacilityType != nil {
		if !models.IsValidFacilityType(*req.FacilityType) {
			respondValidationError(c, "Invalid facility type", "facility_type must be one of the supported types")
			return
		}
		update.FacilityType = req.FacilityType
	}
	if req.Phone != nil {
		phone, err := h.phoneValidator.Validate(*req.Phone)
		if err != nil {
			respondValidationError(c, "Invalid phone number", err.Error())
			return
		}
		update.Phone = &phone
	}

	facility, err := h.facilityRepository.UpdateProfile(facilityID, update)
	if err != nil {
		h.logger.WithError(err).Error("Facility profile update failed")
		respondError(c, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	if facility == nil {
		respondError(c, http.StatusNotFound, "Account not found")
		return
	}

	// A state change can alter the states listing
	if req.State != nil {
		h.stateCache.Invalidate(c.Request.Context())
	}

	respondItem(c, http.StatusOK, facilityProfile(facility))
}

// CreatePositionRequest represents a new position posting
type CreatePositionRequest struct {
	Title        string  `json:"title" binding:"required"`
	Profession   string  `json:"profession" binding:"required"`
	Description  string  `json:"description"`
	Requirements string  `json:"requirements"`
	ShiftDate    string  `json:"shift_date" binding:"required"`
	StartTime    string  `json:"shift_start_time" binding:"required"`
	EndTime      string  `json:"shift_end_time" binding:"required"`
	HourlyRate   float64 `json:"hourly_rate" binding:"required,gt=0"`
	Openings     int     `json:"openings"`
}

// CreatePosition handles POST /api/v1/facilities/positions
func (h *FacilityHandler) CreatePosition(c *gin.Context) {
	facilityID, ok := middleware.SubjectID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req CreatePositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, "Invalid request body", err.Error())
		return
	}

	if !models.IsValidProfession(req.Profession) {
		respondValidationError(c, "Invalid profession", "profession must be one of the supported codes")
		return
	}
	shiftDate, err := models.ParseCalendarDate(req.ShiftDate)
	if err != nil {
		respondValidationError(c, "Invalid shift date", "shift_date must be formatted YYYY-MM-DD")
		return
	}
	if !validShiftTime(req.StartTime) || !validShiftTime(req.EndTime) {
		respondValidationError(c, "Invalid shift time", "shift times must be formatted HH:MM or HH:MM:SS")
		return
	}

	openings := req.Openings
	if openings <= 0 {
		openings = 1
	}

	position := &models.Position{
		ID:         uuid.New(),
		FacilityID: facilityID,
		Title:      h.cleaner.Clean(strings.TrimSpace(req.Title)),
		Profession: req.Profession,
		ShiftDate:  shiftDate,
		StartTime:  normalizeShiftTime(req.StartTime),
		EndTime:    normalizeShiftTime(req.EndTime),
		HourlyRate: req.HourlyRate,
		Openings:   openings,
		Status:     models.PositionStatusOpen,
		IsActive:   true,
	}
	if req.Description != "" {
		position.Description = sql.NullString{String: h.cleaner.Clean(req.Description), Valid: true}
	}
	if req.Requirements != "" {
		position.Requirements = sql.NullString{String: h.cleaner.Clean(req.Requirements), Valid: true}
	}

	if err := h.positionRepository.CreatePosition(position); err != nil {
		h.logger.WithError(err).Error("Position creation failed")
		respondError(c, http.StatusInternalServerError, "Failed to create position")
		return
	}

	h.stateCache.Invalidate(c.Request.Context())

	respondItem(c, http.StatusCreated, position)
}

// ListPositions handles GET /api/v1/facilities/positions. Unlike the worker
// listing this returns the facility's own positions in every status.
func (h *FacilityHandler) ListPositions(c *gin.Context) {
	facilityID, ok := middleware.SubjectID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	positions, err := h.positionRepository.ListByFacility(facilityID)
	if err != nil {
		h.logger.WithError(err).Error("Facility position listing failed")
		respondError(c, http.StatusInternalServerError, "Failed to fetch positions")
		return
	}

	respondList(c, len(positions), positions)
}

// UpdatePositionRequest represents a partial position update
type UpdatePositionRequest struct {
	Title        *string  `json:"title"`
	Profession   *string  `json:"profession"`
	Description  *string  `json:"description"`
	Requirements *string  `json:"requirements"`
	ShiftDate    *string  `json:"shift_date"`
	StartTime    *string  `json:"shift_start_time"`
	EndTime      *string  `json:"shift_end_time"`
	HourlyRate   *float64 `json:"hourly_rate"`
	Openings     *int     `json:"openings"`
	Status       *string  `json:"status"`
}

// GetPosition handles GET /api/v1/facilities/positions/:id
func (h *FacilityHandler) GetPosition(c *gin.Context) {
	facilityID, ok := middleware.SubjectID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	positionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid position ID")
		return
	}

	position, err := h.positionRepository.GetByFacility(positionID, facilityID)
	if err != nil {
		h.logger.WithError(err).Error("Position lookup failed")
		respondError(c, http.StatusInternalServerError, "Failed to fetch position")
		return
	}

	if position == nil {
		respondError(c, http.StatusNotFound, "Position not found")
		return
	}

	respondItem(c, http.StatusOK, position)
}

// UpdatePosition handles PUT /api/v1/facilities/positions/:id
func (h *FacilityHandler) UpdatePosition(c *gin.Context) {
	facilityID, ok := middleware.SubjectID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	positionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid position ID")
		return
	}

	var req UpdatePositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, "Invalid request body", err.Error())
		return
	}

	if req.HourlyRate != nil && *req.HourlyRate < 0 {
		respondValidationError(c, "Invalid hourly rate", "hourly_rate must not be negative")
		return
	}
	if req.Openings != nil && *req.Openings < 1 {
		respondValidationError(c, "Invalid openings", "openings must be at least 1")
		return
	}

	update := database.PositionUpdate{
		Title:        h.cleaner.CleanPtr(req.Title),
		Description:  h.cleaner.CleanPtr(req.Description),
		Requirements: h.cleaner.CleanPtr(req.Requirements),
		HourlyRate:   req.HourlyRate,
		Openings:     req.Openings,
	}

	if req.Profession != nil {
		if !models.IsValidProfession(*req.Profession) {
			respondValidationError(c, "Invalid profession", "profession must be one of the supported codes")
			return
		}
		update.Profession = req.Profession
	}
	if req.ShiftDate != nil {
		shiftDate, err := models.ParseCalendarDate(*req.ShiftDate)
		if err != nil {
			respondValidationError(c, "Invalid shift date", "shift_date must be formatted YYYY-MM-DD")
			return
		}
		update.ShiftDate = &shiftDate
	}
	if req.StartTime != nil {
		if !validShiftTime(*req.StartTime) {
			respondValidationError(c, "Invalid shift time", "shift times must be formatted HH:MM or HH:MM:SS")
			return
		}
		start := normalizeShiftTime(*req.StartTime)
		update.StartTime = &start
	}
	if req.EndTime != nil {
		if !validShiftTime(*req.EndTime) {
			respondValidationError(c, "Invalid shift time", "shift times must be formatted HH:MM or HH:MM:SS")
			return
		}
		end := normalizeShiftTime(*req.EndTime)
		update.EndTime = &end
	}
	if req.Status != nil {
		if !models.IsValidPositionStatus(*req.Status) {
			respondValidationError(c, "Invalid status", "status must be Open, Filled or Cancelled")
			return
		}
		update.Status = req.Status
	}

	position, err := h.positionRepository.UpdatePosition(positionID, facilityID, update)
	if err != nil {
		h.logger.WithError(err).Error("Position update failed")
		respondError(c, http.StatusInternalServerError, "Failed to update position")
		return
	}

	if position == nil {
		respondError(c, http.StatusNotFound, "Position not found")
		return
	}

	h.stateCache.Invalidate(c.Request.Context())

	respondItem(c, http.StatusOK, position)
}

// DeletePosition handles DELETE /api/v1/facilities/positions/:id
func (h *FacilityHandler) DeletePosition(c *gin.Context) {
	facilityID, ok := middleware.SubjectID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	positionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid position ID")
		return
	}

	deleted, err := h.positionRepository.DeletePosition(positionID, facilityID)
	if err != nil {
		h.logger.WithError(err).Error("Position deletion failed")
		respondError(c, http.StatusInternalServerError, "Failed to delete position")
		return
	}

	if !deleted {
		respondError(c, http.StatusNotFound, "Position not found")
		return
	}

	h.stateCache.Invalidate(c.Request.Context())

	respondItem(c, http.StatusOK, gin.H{"deleted": true})
}

// validShiftTime accepts HH:MM and HH:MM:SS on a 24-hour clock
// validNameLength reports whether a display name still fits its column
// bounds once surrounding whitespace is dropped. Sanitizing can shrink a
// name below the minimum even when the raw payload passed binding.
func validNameLength(name string, max int) bool {
	n := len(strings.TrimSpace(name))
	return n >= 2 && n <= max
}

func validShiftTime(value string) bool {
	for _, layout := range []string{"15:04", "15:04:05"} {
		if _, err := time.Parse(layout, value); err == nil {
			return true
		}
	}
	return false
}

// normalizeShiftTime pads HH:MM to HH:MM:SS so ordering compares
// consistently.
func normalizeShiftTime(value string) string {
	if len(value) == len("15:04") {
		return value + ":00"
	}
	return value
}
