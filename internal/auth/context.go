package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/lueberGandra/captal-api/internal/auth/domain"
)

const ctxCaller = "caller_identity"

// Caller extracts the resolved CallerIdentity from the Gin context.
// It is set by CognitoAuthMiddleware; the zero value means the request
// was not authenticated.
func Caller(c *gin.Context) domain.CallerIdentity {
	if v, ok := c.Get(ctxCaller); ok {
		if id, ok := v.(domain.CallerIdentity); ok {
			return id
		}
	}
	return domain.CallerIdentity{}
}

// SetCaller stores the resolved identity for downstream handlers.
func SetCaller(c *gin.Context, id domain.CallerIdentity) {
	c.Set(ctxCaller, id)
}
