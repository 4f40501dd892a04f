package http

import "github.com/gin-gonic/gin"

// Register attaches project routes to the given router group. The group
// is expected to run behind the auth middleware.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("", h.create)
	rg.GET("", h.list)
	rg.GET("/:id", h.get)
	rg.PATCH("/:id/status", h.updateStatus)
}
