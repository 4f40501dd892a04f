package cognito

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	cip "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"

	"github.com/lueberGandra/captal-api/config"
	"github.com/lueberGandra/captal-api/internal/auth/domain"
)

// SignUpInput carries everything the provider needs to register
// credentials. UserID correlates the provider account with the local row.
type SignUpInput struct {
	Email    string
	Password string
	Name     string
	UserID   string
}

// SignUpOutput is the provider's view of a fresh registration.
type SignUpOutput struct {
	UserSub       string
	UserConfirmed bool
}

// api is the slice of the Cognito client the adapter uses.
type api interface {
	SignUp(ctx context.Context, in *cip.SignUpInput, opts ...func(*cip.Options)) (*cip.SignUpOutput, error)
	InitiateAuth(ctx context.Context, in *cip.InitiateAuthInput, opts ...func(*cip.Options)) (*cip.InitiateAuthOutput, error)
	ConfirmSignUp(ctx context.Context, in *cip.ConfirmSignUpInput, opts ...func(*cip.Options)) (*cip.ConfirmSignUpOutput, error)
	ForgotPassword(ctx context.Context, in *cip.ForgotPasswordInput, opts ...func(*cip.Options)) (*cip.ForgotPasswordOutput, error)
	ConfirmForgotPassword(ctx context.Context, in *cip.ConfirmForgotPasswordInput, opts ...func(*cip.Options)) (*cip.ConfirmForgotPasswordOutput, error)
	ResendConfirmationCode(ctx context.Context, in *cip.ResendConfirmationCodeInput, opts ...func(*cip.Options)) (*cip.ResendConfirmationCodeOutput, error)
	GetUser(ctx context.Context, in *cip.GetUserInput, opts ...func(*cip.Options)) (*cip.GetUserOutput, error)
}

// Client wraps the Cognito user-pool API behind the operations the auth
// service needs. It owns no state beyond the SDK client and client id.
type Client struct {
	api      api
	clientID string
}

// New builds a Client from the application config using the default AWS
// credential chain.
func New(ctx context.Context, cfg *config.CognitoConfig) (*Client, error) {
	awsCfg, err := awscfg.LoadDefaultConfig(ctx, awscfg.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return &Client{
		api:      cip.NewFromConfig(awsCfg),
		clientID: cfg.ClientID,
	}, nil
}

// SignUp registers credentials for a new user. The local user id and the
// default role travel as custom attributes on the pool account.
func (c *Client) SignUp(ctx context.Context, in SignUpInput) (*SignUpOutput, error) {
	out, err := c.api.SignUp(ctx, &cip.SignUpInput{
		ClientId: aws.String(c.clientID),
		Username: aws.String(in.Email),
		Password: aws.String(in.Password),
		UserAttributes: []types.AttributeType{
			{Name: aws.String("email"), Value: aws.String(in.Email)},
			{Name: aws.String("name"), Value: aws.String(in.Name)},
			{Name: aws.String("custom:userId"), Value: aws.String(in.UserID)},
			{Name: aws.String("custom:role"), Value: aws.String(string(domain.RoleDeveloper))},
		},
	})
	if err != nil {
		return nil, translate(err)
	}

	return &SignUpOutput{
		UserSub:       aws.ToString(out.UserSub),
		UserConfirmed: out.UserConfirmed,
	}, nil
}

// SignIn runs the USER_PASSWORD_AUTH flow and returns the issued tokens.
func (c *Client) SignIn(ctx context.Context, email, password string) (*domain.TokenSet, error) {
	out, err := c.api.InitiateAuth(ctx, &cip.InitiateAuthInput{
		AuthFlow: types.AuthFlowTypeUserPasswordAuth,
		ClientId: aws.String(c.clientID),
		AuthParameters: map[string]string{
			"USERNAME": email,
			"PASSWORD": password,
		},
	})
	if err != nil {
		return nil, translate(err)
	}

	return tokensFrom(out.AuthenticationResult)
}

// RefreshToken exchanges a refresh token for a new token set.
func (c *Client) RefreshToken(ctx context.Context, refreshToken string) (*domain.TokenSet, error) {
	out, err := c.api.InitiateAuth(ctx, &cip.InitiateAuthInput{
		AuthFlow: types.AuthFlowTypeRefreshTokenAuth,
		ClientId: aws.String(c.clientID),
		AuthParameters: map[string]string{
			"REFRESH_TOKEN": refreshToken,
		},
	})
	if err != nil {
		return nil, translate(err)
	}

	return tokensFrom(out.AuthenticationResult)
}

func (c *Client) ConfirmSignUp(ctx context.Context, email, code string) error {
	_, err := c.api.ConfirmSignUp(ctx, &cip.ConfirmSignUpInput{
		ClientId:         aws.String(c.clientID),
		Username:         aws.String(email),
		ConfirmationCode: aws.String(code),
	})
	return translate(err)
}

func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	_, err := c.api.ForgotPassword(ctx, &cip.ForgotPasswordInput{
		ClientId: aws.String(c.clientID),
		Username: aws.String(email),
	})
	return translate(err)
}

func (c *Client) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	_, err := c.api.ConfirmForgotPassword(ctx, &cip.ConfirmForgotPasswordInput{
		ClientId:         aws.String(c.clientID),
		Username:         aws.String(email),
		ConfirmationCode: aws.String(code),
		Password:         aws.String(newPassword),
	})
	return translate(err)
}

func (c *Client) ResendVerificationCode(ctx context.Context, email string) error {
	_, err := c.api.ResendConfirmationCode(ctx, &cip.ResendConfirmationCodeInput{
		ClientId: aws.String(c.clientID),
		Username: aws.String(email),
	})
	return translate(err)
}

// ResolveToken validates an access token against the pool and maps the
// account attributes to a CallerIdentity.
func (c *Client) ResolveToken(ctx context.Context, accessToken string) (*domain.CallerIdentity, error) {
	out, err := c.api.GetUser(ctx, &cip.GetUserInput{
		AccessToken: aws.String(accessToken),
	})
	if err != nil {
		return nil, translate(err)
	}

	id := &domain.CallerIdentity{Sub: aws.ToString(out.Username)}
	for _, attr := range out.UserAttributes {
		switch aws.ToString(attr.Name) {
		case "email":
			id.Email = aws.ToString(attr.Value)
		case "name":
			id.Name = aws.ToString(attr.Value)
		}
	}
	return id, nil
}

func tokensFrom(result *types.AuthenticationResultType) (*domain.TokenSet, error) {
	if result == nil {
		return nil, fmt.Errorf("cognito: %w", ErrNoAuthResult)
	}
	return &domain.TokenSet{
		AccessToken:  aws.ToString(result.AccessToken),
		IDToken:      aws.ToString(result.IdToken),
		RefreshToken: aws.ToString(result.RefreshToken),
		ExpiresIn:    result.ExpiresIn,
	}, nil
}
