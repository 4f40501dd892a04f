package domain

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user with this email already exists")

	ErrUnauthenticated     = errors.New("unauthenticated")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")

	ErrInvalidCode = errors.New("invalid verification code")
	ErrCodeExpired = errors.New("verification code has expired")

	ErrConfirmationFailed = errors.New("failed to confirm signup")
	ErrResetFailed        = errors.New("failed to reset password")
	ErrResendFailed       = errors.New("failed to resend verification code")
	ErrAlreadyVerified    = errors.New("user is already verified")

	// ErrProviderConflict means the identity provider already holds
	// credentials for the email even though no local record existed.
	ErrProviderConflict = errors.New("user already exists in identity provider")

	// ErrTransactionFailed covers any failure of the compound sign-up
	// after the local leg started; the local record is rolled back.
	ErrTransactionFailed = errors.New("failed to complete signup process")

	ErrOperationFailed = errors.New("operation failed")
)
