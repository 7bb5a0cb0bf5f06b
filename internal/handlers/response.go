package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorDetail is the payload of every failed response
type ErrorDetail struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ErrorResponse is the envelope for failed responses
type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}

// ListResponse is the envelope for collection responses
type ListResponse struct {
	Success bool        `json:"success"`
	Count   int         `json:"count"`
	Data    interface{} `json:"data"`
}

// ItemResponse is the envelope for single-resource responses
type ItemResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

func respondList(c *gin.Context, count int, data interface{}) {
	c.JSON(http.StatusOK, ListResponse{Success: true, Count: count, Data: data})
}

func respondItem(c *gin.Context, status int, data interface{}) {
	c.JSON(status, ItemResponse{Success: true, Data: data})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Success: false, Error: ErrorDetail{Message: message}})
}

func respondValidationError(c *gin.Context, message, details string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Success: false,
		Error:   ErrorDetail{Message: message, Details: details},
	})
}
