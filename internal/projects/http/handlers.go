package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lueberGandra/captal-api/internal/auth"
	authdomain "github.com/lueberGandra/captal-api/internal/auth/domain"
	"github.com/lueberGandra/captal-api/internal/projects/domain"
)

func (h *Handler) create(c *gin.Context) {
	var req createProjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body", "details": err.Error()})
		return
	}

	caller := auth.Caller(c)
	project, err := h.svc.Create(c.Request.Context(), domain.CreateProjectInput{
		Name:            req.Name,
		Location:        req.Location,
		LandArea:        req.LandArea,
		EstimatedCost:   req.EstimatedCost,
		ExpectedRevenue: req.ExpectedRevenue,
		Description:     req.Description,
	}, caller.Email)
	if err != nil {
		writeProjectError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"project": project})
}

func (h *Handler) list(c *gin.Context) {
	caller := auth.Caller(c)
	items, err := h.svc.FindAll(c.Request.Context(), caller.Email)
	if err != nil {
		writeProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"projects": items})
}

func (h *Handler) get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}

	caller := auth.Caller(c)
	project, err := h.svc.FindOne(c.Request.Context(), id, caller.Email)
	if err != nil {
		writeProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"project": project})
}

func (h *Handler) updateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}

	var req updateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body", "details": err.Error()})
		return
	}

	project, err := h.svc.UpdateStatus(c.Request.Context(), id, domain.ProjectStatus(req.Status))
	if err != nil {
		writeProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"project": project})
}

func writeProjectError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrProjectNotFound),
		errors.Is(err, authdomain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "operation failed"})
	}
}
