package auth

import (
	"net/http"
	"strings"

	apperrors "team-portal-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// callerContextKey is the gin context key holding the resolved *Caller.
const callerContextKey = "caller"

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth validates JWT tokens and sets the caller context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrMissingToken.Error()})
			c.Abort()
			return
		}

		// Extract token from Bearer header
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrInvalidToken.Error()})
			c.Abort()
			return
		}

		// Validate token
		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrInvalidToken.Error(), "details": err.Error()})
			c.Abort()
			return
		}

		setCaller(c, claims)
		c.Next()
	}
}

// OptionalAuth validates JWT tokens if present but doesn't require them.
// Anonymous requests continue with no caller set; role checks downstream
// then fail as authorization errors rather than authentication errors.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.Next()
			return
		}

		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			c.Next()
			return
		}

		setCaller(c, claims)
		c.Next()
	}
}

func setCaller(c *gin.Context, claims *AuthClaims) {
	c.Set(callerContextKey, &Caller{
		Login:       claims.Login,
		Email:       claims.Email,
		Authorities: claims.Authorities,
	})
	// Expose the login for request logging
	c.Set("login", claims.Login)
}

// CallerFrom extracts the authenticated caller from the gin context.
// Returns nil for anonymous requests.
func CallerFrom(c *gin.Context) *Caller {
	v, exists := c.Get(callerContextKey)
	if !exists {
		return nil
	}
	caller, ok := v.(*Caller)
	if !ok {
		return nil
	}
	return caller
}

// WithCaller returns a middleware that injects a fixed caller. Test helper.
func WithCaller(caller *Caller) gin.HandlerFunc {
	return func(c *gin.Context) {
		if caller != nil {
			c.Set(callerContextKey, caller)
			c.Set("login", caller.Login)
		}
		c.Next()
	}
}
