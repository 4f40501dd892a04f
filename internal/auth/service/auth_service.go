package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/lueberGandra/captal-api/internal/auth/cognito"
	"github.com/lueberGandra/captal-api/internal/auth/domain"
)

// UserStore is the slice of the user repository the service needs.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Create(ctx context.Context, tx pgx.Tx, email, name string) (*domain.User, error)
}

// IdentityProvider is the external credential system. The concrete
// implementation is the Cognito adapter; tests substitute fakes.
type IdentityProvider interface {
	SignUp(ctx context.Context, in cognito.SignUpInput) (*cognito.SignUpOutput, error)
	SignIn(ctx context.Context, email, password string) (*domain.TokenSet, error)
	RefreshToken(ctx context.Context, refreshToken string) (*domain.TokenSet, error)
	ConfirmSignUp(ctx context.Context, email, code string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, email, code, newPassword string) error
	ResendVerificationCode(ctx context.Context, email string) error
}

// TxBeginner opens the local transaction that scopes the sign-up write.
// *pgxpool.Pool satisfies it.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// AuthService coordinates the user store and the identity provider. The
// only compound operation is SignUp: the local row is created first so
// the provider registration can carry the durable id, and rolled back if
// the provider leg fails.
type AuthService struct {
	db       TxBeginner
	users    UserStore
	provider IdentityProvider
}

func NewAuthService(db TxBeginner, users UserStore, provider IdentityProvider) *AuthService {
	return &AuthService{
		db:       db,
		users:    users,
		provider: provider,
	}
}

// SignUp registers a user locally and in the identity provider. The
// duplicate-email check runs before anything is written, so no provider
// call happens for a known email.
func (s *AuthService) SignUp(ctx context.Context, email, password, name string) (*domain.SignUpResult, error) {
	log.Printf("[auth] signup attempt email=%s", email)

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		log.Printf("[auth] signup rejected, email already registered: %s", email)
		return nil, domain.ErrUserAlreadyExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("lookup user by email: %w", err)
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin signup transaction: %w", err)
	}
	// Released on every exit path; a no-op after commit.
	defer func() { _ = tx.Rollback(ctx) }()

	user, err := s.users.Create(ctx, tx, email, name)
	if err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			return nil, err
		}
		log.Printf("[auth] signup failed creating local user for %s: %v", email, err)
		return nil, domain.ErrTransactionFailed
	}

	out, err := s.provider.SignUp(ctx, cognito.SignUpInput{
		Email:    email,
		Password: password,
		Name:     name,
		UserID:   user.ID.String(),
	})
	if err != nil {
		if errors.Is(err, cognito.ErrUserExists) {
			log.Printf("[auth] signup conflict, provider already holds %s", email)
			return nil, domain.ErrProviderConflict
		}
		log.Printf("[auth] signup provider call failed for %s: %v", email, err)
		return nil, domain.ErrTransactionFailed
	}

	if err := tx.Commit(ctx); err != nil {
		log.Printf("[auth] signup commit failed for %s: %v", email, err)
		return nil, domain.ErrOperationFailed
	}

	log.Printf("[auth] signup complete email=%s user_sub=%s", email, out.UserSub)
	return &domain.SignUpResult{
		User:          user,
		UserSub:       out.UserSub,
		UserConfirmed: out.UserConfirmed,
	}, nil
}

// SignIn authenticates against the provider. A missing local user and a
// rejected password both report ErrInvalidCredentials so callers cannot
// probe for registered emails.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*domain.SignInResult, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		log.Printf("[auth] signin rejected for %s: %v", email, err)
		return nil, domain.ErrInvalidCredentials
	}

	tokens, err := s.provider.SignIn(ctx, email, password)
	if err != nil {
		log.Printf("[auth] signin provider rejection for %s: %v", email, err)
		return nil, domain.ErrInvalidCredentials
	}

	return &domain.SignInResult{User: user, Tokens: *tokens}, nil
}

// RefreshToken exchanges a refresh token for a fresh token set.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*domain.TokenSet, error) {
	tokens, err := s.provider.RefreshToken(ctx, refreshToken)
	if err != nil {
		log.Printf("[auth] token refresh failed: %v", err)
		return nil, domain.ErrInvalidRefreshToken
	}
	return tokens, nil
}

// ConfirmSignUp verifies the email confirmation code for a known user.
func (s *AuthService) ConfirmSignUp(ctx context.Context, email, code string) error {
	if _, err := s.users.FindByEmail(ctx, email); err != nil {
		return domain.ErrUserNotFound
	}

	err := s.provider.ConfirmSignUp(ctx, email, code)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, cognito.ErrCodeMismatch):
		return domain.ErrInvalidCode
	case errors.Is(err, cognito.ErrCodeExpired):
		return domain.ErrCodeExpired
	default:
		log.Printf("[auth] confirm signup failed for %s: %v", email, err)
		return domain.ErrConfirmationFailed
	}
}

// ForgotPassword asks the provider to send a reset code to a known user.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	if _, err := s.users.FindByEmail(ctx, email); err != nil {
		return domain.ErrUserNotFound
	}

	if err := s.provider.ForgotPassword(ctx, email); err != nil {
		log.Printf("[auth] forgot password failed for %s: %v", email, err)
		return domain.ErrOperationFailed
	}
	return nil
}

// ResetPassword completes a password reset with the emailed code.
func (s *AuthService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	if _, err := s.users.FindByEmail(ctx, email); err != nil {
		return domain.ErrUserNotFound
	}

	err := s.provider.ResetPassword(ctx, email, code, newPassword)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, cognito.ErrCodeMismatch):
		return domain.ErrInvalidCode
	case errors.Is(err, cognito.ErrCodeExpired):
		return domain.ErrCodeExpired
	default:
		log.Printf("[auth] reset password failed for %s: %v", email, err)
		return domain.ErrResetFailed
	}
}

// ResendVerification asks the provider to resend the confirmation code.
func (s *AuthService) ResendVerification(ctx context.Context, email string) error {
	if _, err := s.users.FindByEmail(ctx, email); err != nil {
		return domain.ErrUserNotFound
	}

	err := s.provider.ResendVerificationCode(ctx, email)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, cognito.ErrUserNotFound):
		return domain.ErrUserNotFound
	case errors.Is(err, cognito.ErrInvalidParameter):
		// Cognito reports resend-to-a-confirmed-account as an invalid
		// parameter.
		return domain.ErrAlreadyVerified
	default:
		log.Printf("[auth] resend verification failed for %s: %v", email, err)
		return domain.ErrResendFailed
	}
}

// Profile returns the stored record for the caller's email.
func (s *AuthService) Profile(ctx context.Context, email string) (*domain.User, error) {
	return s.users.FindByEmail(ctx, email)
}
