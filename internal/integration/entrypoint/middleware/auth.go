// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/planner/internal/application/adapter"
	"github.com/finance-tracker/planner/internal/application/ledger"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
	"github.com/finance-tracker/planner/internal/integration/entrypoint/dto"
)

// ContextKey is a type for context keys.
type ContextKey string

const (
	// UserIDKey is the context key for the resolved user id.
	UserIDKey ContextKey = "user_id"
	// UserEmailKey is the context key for the signed-in user's email.
	UserEmailKey ContextKey = "user_email"
)

// IdentityMiddleware resolves the user id from identity provider tokens.
type IdentityMiddleware struct {
	tokenService adapter.TokenService
}

// NewIdentityMiddleware creates a new identity middleware instance.
func NewIdentityMiddleware(tokenService adapter.TokenService) *IdentityMiddleware {
	return &IdentityMiddleware{
		tokenService: tokenService,
	}
}

// Identify returns a Gin middleware handler that resolves the user id.
// Requests without an Authorization header act as the public user.
// A header that is present but malformed or carries a bad token is rejected.
func (m *IdentityMiddleware) Identify() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Set(string(UserIDKey), ledger.PublicUserID)
			c.Next()
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

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
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
			code := domainerror.ErrCodeInvalidToken
			var authErr *domainerror.AuthError
			if errors.As(err, &authErr) {
				code = authErr.Code
			}
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Invalid or expired token",
				Code:  string(code),
			})
			c.Abort()
			return
		}

		c.Set(string(UserIDKey), claims.UserID)
		c.Set(string(UserEmailKey), claims.Email)

		c.Next()
	}
}

// GetUserIDFromContext extracts the user id from the Gin context.
// It falls back to the public user when the identity middleware did not run.
func GetUserIDFromContext(c *gin.Context) string {
	if v, ok := c.Get(string(UserIDKey)); ok {
		if id, ok := v.(string); ok && id != "" {
			return id
		}
	}
	return ledger.PublicUserID
}

// GetUserEmailFromContext extracts the user email from the Gin context.
func GetUserEmailFromContext(c *gin.Context) (string, bool) {
	email, exists := c.Get(string(UserEmailKey))
	if !exists {
		return "", false
	}
	emailStr, ok := email.(string)
	return emailStr, ok && emailStr != ""
}
