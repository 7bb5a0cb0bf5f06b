package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/yolku/staffing-backend/internal/models"
	"github.com/yolku/staffing-backend/internal/services"
)

// PositionHandler serves the worker-facing position discovery endpoints
type PositionHandler struct {
	discoveryService *services.DiscoveryService
	logger           *logrus.Logger
}

// NewPositionHandler creates a new position handler
func NewPositionHandler(discoveryService *services.DiscoveryService, logger *logrus.Logger) *PositionHandler {
	return &PositionHandler{
		discoveryService: discoveryService,
		logger:           logger,
	}
}

// ListPositions handles GET /api/v1/positions
//
// Optional query parameters: state, startDate, endDate, profession.
// Absent parameters mean no constraint; present parameters are validated
// strictly and combined with AND.
func (h *PositionHandler) ListPositions(c *gin.Context) {
	var filter models.PositionFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		respondValidationError(c, "Invalid filter parameters", err.Error())
		return
	}

	positions, err := h.discoveryService.FindPositions(&filter)
	if err != nil {
		var validationErr *models.ValidationError
		if errors.As(err, &validationErr) {
			respondValidationError(c, "Invalid filter parameters", validationErr.Message)
			return
		}

		h.logger.WithError(err).Error("Position listing failed")
		respondError(c, http.StatusInternalServerError, "Failed to fetch positions")
		return
	}

	respondList(c, len(positions), positions)
}

// GetPosition handles GET /api/v1/positions/:id
func (h *PositionHandler) GetPosition(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid position ID")
		return
	}

	position, err := h.discoveryService.GetPosition(id)
	if err != nil {
		h.logger.WithError(err).WithField("position_id", id).Error("Position lookup failed")
		respondError(c, http.StatusInternalServerError, "Failed to fetch position")
		return
	}

	if position == nil {
		respondError(c, http.StatusNotFound, "Position not found")
		return
	}

	respondItem(c, http.StatusOK, position)
}

// ListStates handles GET /api/v1/positions/states/list
func (h *PositionHandler) ListStates(c *gin.Context) {
	states, err := h.discoveryService.ListAvailableStates(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("States listing failed")
		respondError(c, http.StatusInternalServerError, "Failed to fetch available states")
		return
	}

	respondList(c, len(states), states)
}
