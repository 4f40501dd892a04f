package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lueberGandra/captal-api/internal/auth/cognito"
	"github.com/lueberGandra/captal-api/internal/auth/domain"
	"github.com/lueberGandra/captal-api/internal/auth/service"
)

type stubTx struct {
	pgx.Tx
	done bool
}

func (t *stubTx) Commit(ctx context.Context) error   { t.done = true; return nil }
func (t *stubTx) Rollback(ctx context.Context) error { t.done = true; return nil }

type stubDB struct{}

func (stubDB) Begin(ctx context.Context) (pgx.Tx, error) { return &stubTx{}, nil }

type stubStore struct {
	users map[string]*domain.User
}

func (s *stubStore) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if u, ok := s.users[email]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (s *stubStore) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (s *stubStore) Create(ctx context.Context, tx pgx.Tx, email, name string) (*domain.User, error) {
	u := &domain.User{
		ID:        uuid.New(),
		Email:     email,
		Name:      name,
		Role:      domain.RoleDeveloper,
		CreatedAt: time.Now().UTC(),
	}
	s.users[email] = u
	return u, nil
}

type stubProvider struct {
	signInErr error
}

func (p *stubProvider) SignUp(ctx context.Context, in cognito.SignUpInput) (*cognito.SignUpOutput, error) {
	return &cognito.SignUpOutput{UserSub: "sub-1", UserConfirmed: false}, nil
}

func (p *stubProvider) SignIn(ctx context.Context, email, password string) (*domain.TokenSet, error) {
	if p.signInErr != nil {
		return nil, p.signInErr
	}
	return &domain.TokenSet{AccessToken: "access", IDToken: "id", RefreshToken: "refresh", ExpiresIn: 3600}, nil
}

func (p *stubProvider) RefreshToken(ctx context.Context, refreshToken string) (*domain.TokenSet, error) {
	return &domain.TokenSet{AccessToken: "access"}, nil
}

func (p *stubProvider) ConfirmSignUp(ctx context.Context, email, code string) error     { return nil }
func (p *stubProvider) ForgotPassword(ctx context.Context, email string) error          { return nil }
func (p *stubProvider) ResetPassword(ctx context.Context, email, code, pw string) error { return nil }
func (p *stubProvider) ResendVerificationCode(ctx context.Context, email string) error  { return nil }

func newAuthRouter(provider *stubProvider) (*gin.Engine, *stubStore) {
	gin.SetMode(gin.TestMode)

	store := &stubStore{users: make(map[string]*domain.User)}
	svc := service.NewAuthService(stubDB{}, store, provider)

	r := gin.New()
	New(svc).Register(r.Group("/auth"), nil)
	return r, store
}

func post(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestSignUpHandler(t *testing.T) {
	t.Run("creates user", func(t *testing.T) {
		router, store := newAuthRouter(&stubProvider{})

		rr := post(router, "/auth/signup", `{"email":"a@x.com","password":"Password1!","name":"A"}`)
		require.Equal(t, http.StatusCreated, rr.Code)
		assert.Contains(t, store.users, "a@x.com")
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		router, _ := newAuthRouter(&stubProvider{})

		rr := post(router, "/auth/signup", `{"email":"a@x.com","password":"Password1!","name":"A"}`)
		require.Equal(t, http.StatusCreated, rr.Code)

		rr = post(router, "/auth/signup", `{"email":"a@x.com","password":"Password1!","name":"A"}`)
		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("rejects invalid body", func(t *testing.T) {
		router, _ := newAuthRouter(&stubProvider{})

		rr := post(router, "/auth/signup", `{"email":"not-an-email","password":"Password1!","name":"A"}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("rejects weak password", func(t *testing.T) {
		router, _ := newAuthRouter(&stubProvider{})

		rr := post(router, "/auth/signup", `{"email":"a@x.com","password":"alllowercase1","name":"A"}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestSignInHandler(t *testing.T) {
	t.Run("returns tokens", func(t *testing.T) {
		router, _ := newAuthRouter(&stubProvider{})

		rr := post(router, "/auth/signup", `{"email":"a@x.com","password":"Password1!","name":"A"}`)
		require.Equal(t, http.StatusCreated, rr.Code)

		rr = post(router, "/auth/signin", `{"email":"a@x.com","password":"Password1!"}`)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "access")
	})

	t.Run("unknown email is unauthorized", func(t *testing.T) {
		router, _ := newAuthRouter(&stubProvider{})

		rr := post(router, "/auth/signin", `{"email":"ghost@x.com","password":"Password1!"}`)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("provider rejection is unauthorized", func(t *testing.T) {
		provider := &stubProvider{signInErr: cognito.ErrNotAuthorized}
		router, store := newAuthRouter(provider)
		store.users["a@x.com"] = &domain.User{ID: uuid.New(), Email: "a@x.com"}

		rr := post(router, "/auth/signin", `{"email":"a@x.com","password":"wrong"}`)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
