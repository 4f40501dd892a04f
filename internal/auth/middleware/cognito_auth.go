package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lueberGandra/captal-api/internal/auth"
	"github.com/lueberGandra/captal-api/internal/auth/domain"
)

// TokenResolver validates a bearer token against the identity provider.
type TokenResolver interface {
	ResolveToken(ctx context.Context, accessToken string) (*domain.CallerIdentity, error)
}

// CognitoAuthMiddleware validates access tokens and stores the resolved
// CallerIdentity in the request context. Every failure mode answers the
// same 401 so nothing about the token's state leaks to the caller.
func CognitoAuthMiddleware(resolver TokenResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization token"})
			c.Abort()
			return
		}

		caller, err := resolver.ResolveToken(c.Request.Context(), token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		auth.SetCaller(c, *caller)
		c.Next()
	}
}

// extractToken extracts the Bearer token from the Authorization header
func extractToken(c *gin.Context) string {
	bearerToken := c.GetHeader("Authorization")
	if len(bearerToken) > 7 && strings.HasPrefix(bearerToken, "Bearer ") {
		return bearerToken[7:]
	}
	return ""
}
