package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	httpapi "github.com/lueberGandra/captal-api/internal/api/http"
	"github.com/lueberGandra/captal-api/internal/api/http/middleware"
	authhttp "github.com/lueberGandra/captal-api/internal/auth/http"
	authmw "github.com/lueberGandra/captal-api/internal/auth/middleware"
	authrepo "github.com/lueberGandra/captal-api/internal/auth/repository"
	authservice "github.com/lueberGandra/captal-api/internal/auth/service"
	projhttp "github.com/lueberGandra/captal-api/internal/projects/http"
	projrepo "github.com/lueberGandra/captal-api/internal/projects/repository"
	projservice "github.com/lueberGandra/captal-api/internal/projects/service"
)

// IdentityProvider is the full capability set the router wires: the auth
// flows plus bearer-token resolution for the middleware.
type IdentityProvider interface {
	authservice.IdentityProvider
	authmw.TokenResolver
}

type RouterDeps struct {
	ServiceName string
	Version     string
	DB          *pgxpool.Pool
	Redis       *redis.Client // nil disables the shared rate-limit window
	Provider    IdentityProvider
}

// BuildRouter is the composition root: repositories, services and
// handlers are constructed here and wired explicitly.
func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(cors.Default())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB)
	healthHandler.RegisterRoutes(r)

	userRepo := authrepo.NewUserRepository(dep.DB)
	projectRepo := projrepo.NewProjectRepository(dep.DB)

	authService := authservice.NewAuthService(dep.DB, userRepo, dep.Provider)
	projectService := projservice.NewProjectService(projectRepo, userRepo)

	limiter := middleware.NewLimiter(dep.Redis)
	requireAuth := authmw.CognitoAuthMiddleware(dep.Provider)

	api := r.Group("/api/v1")

	authHandler := authhttp.New(authService)
	authHandler.Register(api.Group("/auth"), limiter.PerMinute)

	usersGroup := api.Group("/users")
	usersGroup.Use(requireAuth)
	authHandler.RegisterProtected(usersGroup)

	projectsGroup := api.Group("/projects")
	projectsGroup.Use(requireAuth)
	projhttp.New(projectService).Register(projectsGroup)

	return r
}
