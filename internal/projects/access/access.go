// Package access holds the pure role and ownership rules for projects.
// Every function is a side-effect-free predicate.
package access

import (
	"github.com/google/uuid"

	authdomain "github.com/lueberGandra/captal-api/internal/auth/domain"
)

// CanViewAll reports whether a role may list every project.
func CanViewAll(role authdomain.UserRole) bool {
	return role == authdomain.RoleAdmin
}

// CanViewProject reports whether the caller may read a given project:
// admins see everything, developers only their own.
func CanViewProject(role authdomain.UserRole, callerID, ownerID uuid.UUID) bool {
	return role == authdomain.RoleAdmin || callerID == ownerID
}

// CanUpdateStatus reports whether a role may change a project's status.
// Note: the status-update endpoint does not enforce this yet; the check
// exists so enforcement is a one-line change once confirmed.
func CanUpdateStatus(role authdomain.UserRole) bool {
	return role == authdomain.RoleAdmin
}
