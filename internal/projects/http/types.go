package http

import "github.com/lueberGandra/captal-api/internal/projects/service"

// Handler bundles the dependencies for projects HTTP endpoints.
type Handler struct {
	svc *service.ProjectService
}

func New(svc *service.ProjectService) *Handler {
	return &Handler{svc: svc}
}

type createProjectReq struct {
	Name            string  `json:"name" binding:"required"`
	Location        string  `json:"location" binding:"required"`
	LandArea        float64 `json:"land_area" binding:"required,gte=0"`
	EstimatedCost   float64 `json:"estimated_cost" binding:"required,gte=0"`
	ExpectedRevenue float64 `json:"expected_revenue" binding:"required,gte=0"`
	Description     *string `json:"description,omitempty"`
}

type updateStatusReq struct {
	Status string `json:"status" binding:"required,oneof=pending approved rejected"`
}
