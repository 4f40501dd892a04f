package domain

import (
	"time"

	"github.com/google/uuid"

	authdomain "github.com/lueberGandra/captal-api/internal/auth/domain"
)

// ProjectStatus is the review state of a project.
type ProjectStatus string

const (
	StatusPending  ProjectStatus = "pending"
	StatusApproved ProjectStatus = "approved"
	StatusRejected ProjectStatus = "rejected"
)

// Valid reports whether s is one of the known statuses.
func (s ProjectStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Project represents a single development project owned by a user.
// Status is the only field that changes after creation.
type Project struct {
	ID              uuid.UUID        `json:"id"`
	Name            string           `json:"name"`
	Location        string           `json:"location"`
	LandArea        float64          `json:"land_area"`
	EstimatedCost   float64          `json:"estimated_cost"`
	ExpectedRevenue float64          `json:"expected_revenue"`
	Description     *string          `json:"description,omitempty"`
	Status          ProjectStatus    `json:"status"`
	CreatedAt       time.Time        `json:"created_at"`
	CreatedByID     uuid.UUID        `json:"created_by_id"`
	CreatedBy       *authdomain.User `json:"created_by,omitempty"`
}

// CreateProjectInput is the validated payload for project creation.
type CreateProjectInput struct {
	Name            string
	Location        string
	LandArea        float64
	EstimatedCost   float64
	ExpectedRevenue float64
	Description     *string
}
