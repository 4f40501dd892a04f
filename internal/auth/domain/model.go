package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserRole is the stored role of a user.
type UserRole string

const (
	RoleDeveloper UserRole = "developer"
	RoleAdmin     UserRole = "admin"
)

// User represents a row in the users table. Credentials live in the
// identity provider; this record is the local system of record for
// identity and role.
type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      UserRole  `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// CallerIdentity is the per-request identity resolved from a bearer token.
// It is never persisted.
type CallerIdentity struct {
	Sub   string
	Email string
	Name  string
}

// TokenSet is the token triple issued by the identity provider.
type TokenSet struct {
	AccessToken  string `json:"access_token"`
	IDToken      string `json:"id_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	ExpiresIn    int32  `json:"expires_in"`
}

// SignUpResult is returned by a successful sign-up: the local record plus
// the provider's subject id and confirmation state.
type SignUpResult struct {
	User          *User  `json:"user"`
	UserSub       string `json:"user_sub"`
	UserConfirmed bool   `json:"user_confirmed"`
}

// SignInResult pairs the local user with the provider-issued tokens.
type SignInResult struct {
	User   *User    `json:"user"`
	Tokens TokenSet `json:"tokens"`
}
