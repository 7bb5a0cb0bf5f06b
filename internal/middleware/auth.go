package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yolku/staffing-backend/pkg/jwt"
)

const (
	subjectIDKey   = "subject_id"
	subjectTypeKey = "subject_type"
)

// RequireWorker authenticates requests with a worker bearer token
func RequireWorker(jwtService *jwt.Service) gin.HandlerFunc {
	return requireSubject(jwtService, jwt.SubjectWorker)
}

// RequireFacility authenticates requests with a facility bearer token
func RequireFacility(jwtService *jwt.Service) gin.HandlerFunc {
	return requireSubject(jwtService, jwt.SubjectFacility)
}

func requireSubject(jwtService *jwt.Service, expected jwt.SubjectType) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   gin.H{"message": "Authorization token required"},
			})
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateToken(token, expected)
		if err != nil {
			message := "Invalid or expired token"
			if jwtService.IsTokenExpired(token) {
				message = "Token has expired"
			}
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   gin.H{"message": message},
			})
			c.Abort()
			return
		}

		c.Set(subjectIDKey, claims.SubjectID)
		c.Set(subjectTypeKey, string(claims.SubjectType))
		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}

	return parts[1], true
}

// SubjectID returns the authenticated subject's ID set by RequireWorker
// or RequireFacility.
func SubjectID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(subjectIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := value.(uuid.UUID)
	return id, ok
}
