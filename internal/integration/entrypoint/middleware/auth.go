// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pocketfin/backend/internal/application/adapter"
	domainerror "github.com/pocketfin/backend/internal/domain/error"
	"github.com/pocketfin/backend/internal/integration/entrypoint/dto"
)

// ContextKey is a type for context keys.
type ContextKey string

const (
	// ProfileIDKey is the context key for the authenticated profile's ID.
	ProfileIDKey ContextKey = "profile_id"
	// ProfileNameKey is the context key for the authenticated profile's name.
	ProfileNameKey ContextKey = "profile_name"
)

// AuthMiddleware provides JWT authentication middleware.
type AuthMiddleware struct {
	tokenService adapter.TokenService
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware(tokenService adapter.TokenService) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
	}
}

// Authenticate returns a Gin middleware handler that enforces JWT authentication.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Authorization header is required",
				Code:  string(domainerror.ErrCodeMissingToken),
			})
			c.Abort()
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Invalid authorization header format",
				Code:  string(domainerror.ErrCodeInvalidToken),
			})
			c.Abort()
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == "" {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Token is required",
				Code:  string(domainerror.ErrCodeMissingToken),
			})
			c.Abort()
			return
		}

		claims, err := m.tokenService.ValidateAccessToken(c.Request.Context(), token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Invalid or expired token",
				Code:  string(domainerror.ErrCodeInvalidToken),
			})
			c.Abort()
			return
		}

		c.Set(string(ProfileIDKey), claims.ProfileID)
		c.Set(string(ProfileNameKey), claims.Name)

		c.Next()
	}
}

// GetProfileIDFromContext extracts the profile ID from the Gin context.
func GetProfileIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	profileID, exists := c.Get(string(ProfileIDKey))
	if !exists {
		return uuid.Nil, false
	}
	id, ok := profileID.(uuid.UUID)
	return id, ok
}

// GetProfileNameFromContext extracts the profile name from the Gin context.
func GetProfileNameFromContext(c *gin.Context) (string, bool) {
	name, exists := c.Get(string(ProfileNameKey))
	if !exists {
		return "", false
	}
	nameStr, ok := name.(string)
	return nameStr, ok
}
