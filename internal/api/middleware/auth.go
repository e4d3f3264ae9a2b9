package middleware

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/johanstjernquist/portfolio-backend/internal/models"
	"github.com/johanstjernquist/portfolio-backend/internal/service"
)

const principalKey = "principal"

// AuthMiddleware validates bearer tokens and sets the Principal on the
// request context. Missing, malformed, expired or bad-signature tokens
// all fail with 401.
func AuthMiddleware(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := resolvePrincipal(c, authService)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.APIResponse{
				Success: false,
				Error:   "Invalid or missing authentication token",
			})
			c.Abort()
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

// OptionalAuthMiddleware resolves the Principal when a valid token is
// present but lets unauthenticated requests through. Public and admin
// read paths share this prefix and diverge at the role check.
func OptionalAuthMiddleware(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if principal, ok := resolvePrincipal(c, authService); ok {
			c.Set(principalKey, principal)
		}
		c.Next()
	}
}

// RequireAdmin enforces the admin role. Pure predicate on the already
// resolved Principal; authentication must run first.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := GetPrincipal(c)
		if principal == nil || !principal.IsAdmin() {
			log.Printf("❌ [Auth] Admin access denied - Path: %s", c.Request.URL.Path)
			c.JSON(http.StatusForbidden, models.APIResponse{
				Success: false,
				Error:   "Admin access required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

func resolvePrincipal(c *gin.Context, authService service.AuthService) (*service.Principal, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, false
	}

	// Extract token from "Bearer <token>"
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, false
	}

	principal, err := authService.ValidateToken(parts[1])
	if err != nil {
		return nil, false
	}
	return principal, true
}

// GetPrincipal extracts the resolved Principal from gin context, or nil.
func GetPrincipal(c *gin.Context) *service.Principal {
	v, exists := c.Get(principalKey)
	if !exists {
		return nil
	}
	principal, ok := v.(*service.Principal)
	if !ok {
		return nil
	}
	return principal
}

// RequestLogger logs all incoming requests with details
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		// Process request
		c.Next()

		duration := time.Since(start)
		status := c.Writer.Status()

		statusEmoji := "✅"
		if status >= 400 && status < 500 {
			statusEmoji = "⚠️"
		} else if status >= 500 {
			statusEmoji = "❌"
		}

		log.Printf("%s [%s] %s %d - %v", statusEmoji, method, path, status, duration)
	}
}
