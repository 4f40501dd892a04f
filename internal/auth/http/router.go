package http

import "github.com/gin-gonic/gin"

// Register attaches the public auth routes to the given router group.
// The credential endpoints optionally run behind a rate limiter built by
// the caller.
func (h *Handler) Register(rg *gin.RouterGroup, limited func(requestsPerMinute int) gin.HandlerFunc) {
	if limited == nil {
		limited = func(int) gin.HandlerFunc {
			return func(c *gin.Context) { c.Next() }
		}
	}

	rg.POST("/signup", h.SignUp)
	rg.POST("/signin", limited(5), h.SignIn)
	rg.POST("/refresh-token", h.RefreshToken)
	rg.POST("/confirm-signup", limited(3), h.ConfirmSignUp)
	rg.POST("/forgot-password", limited(3), h.ForgotPassword)
	rg.POST("/reset-password", limited(3), h.ResetPassword)
	rg.POST("/resend-verification", limited(3), h.ResendVerification)
}

// RegisterProtected attaches the routes that require a resolved caller.
func (h *Handler) RegisterProtected(rg *gin.RouterGroup) {
	rg.GET("/me", h.Profile)
}
