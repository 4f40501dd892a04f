package cognito

import (
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
)

// Adapter-level sentinels. The auth service maps these onto its own error
// taxonomy; raw Cognito error types never leave this package.
var (
	ErrUserExists       = errors.New("cognito: username already exists")
	ErrUserNotFound     = errors.New("cognito: user not found")
	ErrCodeMismatch     = errors.New("cognito: confirmation code mismatch")
	ErrCodeExpired      = errors.New("cognito: confirmation code expired")
	ErrNotAuthorized    = errors.New("cognito: not authorized")
	ErrInvalidParameter = errors.New("cognito: invalid parameter")
	ErrNoAuthResult     = errors.New("cognito: response carried no authentication result")
)

// translate folds the SDK's typed errors into the package sentinels,
// keeping the original error in the chain for logs.
func translate(err error) error {
	if err == nil {
		return nil
	}

	var (
		usernameExists *types.UsernameExistsException
		userNotFound   *types.UserNotFoundException
		codeMismatch   *types.CodeMismatchException
		codeExpired    *types.ExpiredCodeException
		notAuthorized  *types.NotAuthorizedException
		invalidParam   *types.InvalidParameterException
	)

	switch {
	case errors.As(err, &usernameExists):
		return fmt.Errorf("%w: %s", ErrUserExists, err)
	case errors.As(err, &userNotFound):
		return fmt.Errorf("%w: %s", ErrUserNotFound, err)
	case errors.As(err, &codeMismatch):
		return fmt.Errorf("%w: %s", ErrCodeMismatch, err)
	case errors.As(err, &codeExpired):
		return fmt.Errorf("%w: %s", ErrCodeExpired, err)
	case errors.As(err, &notAuthorized):
		return fmt.Errorf("%w: %s", ErrNotAuthorized, err)
	case errors.As(err, &invalidParam):
		return fmt.Errorf("%w: %s", ErrInvalidParameter, err)
	}
	return err
}
