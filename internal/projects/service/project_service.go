package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	authdomain "github.com/lueberGandra/captal-api/internal/auth/domain"
	"github.com/lueberGandra/captal-api/internal/projects/access"
	"github.com/lueberGandra/captal-api/internal/projects/domain"
)

// ProjectStore is the slice of the project repository the service needs.
type ProjectStore interface {
	Create(ctx context.Context, in domain.CreateProjectInput, createdByID uuid.UUID) (*domain.Project, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	FindAll(ctx context.Context) ([]domain.Project, error)
	FindAllByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Project, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ProjectStatus) (*domain.Project, error)
}

// UserDirectory resolves callers to stored user records. The caller's
// role always comes from here, never from the request.
type UserDirectory interface {
	FindByEmail(ctx context.Context, email string) (*authdomain.User, error)
}

// ProjectService implements create/list/get/update-status with
// role-scoped visibility.
type ProjectService struct {
	repo  ProjectStore
	users UserDirectory
}

func NewProjectService(repo ProjectStore, users UserDirectory) *ProjectService {
	return &ProjectService{
		repo:  repo,
		users: users,
	}
}

// Create persists a new pending project owned by the caller.
func (s *ProjectService) Create(ctx context.Context, in domain.CreateProjectInput, callerEmail string) (*domain.Project, error) {
	user, err := s.resolveCaller(ctx, callerEmail)
	if err != nil {
		return nil, err
	}

	log.Printf("[projects] creating project %q for user %s", in.Name, callerEmail)
	return s.repo.Create(ctx, in, user.ID)
}

// FindAll returns every project for admins and only the caller's own
// projects otherwise.
func (s *ProjectService) FindAll(ctx context.Context, callerEmail string) ([]domain.Project, error) {
	user, err := s.resolveCaller(ctx, callerEmail)
	if err != nil {
		return nil, err
	}

	if access.CanViewAll(user.Role) {
		return s.repo.FindAll(ctx)
	}
	return s.repo.FindAllByOwner(ctx, user.ID)
}

// FindOne returns a project if the caller may view it.
func (s *ProjectService) FindOne(ctx context.Context, id uuid.UUID, callerEmail string) (*domain.Project, error) {
	user, err := s.resolveCaller(ctx, callerEmail)
	if err != nil {
		return nil, err
	}

	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !access.CanViewProject(user.Role, user.ID, project.CreatedByID) {
		log.Printf("[projects] user %s denied access to project %s", callerEmail, id)
		return nil, domain.ErrForbidden
	}

	return project, nil
}

// UpdateStatus sets a project's status. No role check is applied here;
// access.CanUpdateStatus captures the intended admin-only contract
// pending a product decision.
func (s *ProjectService) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ProjectStatus) (*domain.Project, error) {
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	log.Printf("[projects] updating status of project %s to %s", id, status)
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *ProjectService) resolveCaller(ctx context.Context, email string) (*authdomain.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, authdomain.ErrUserNotFound) {
			log.Printf("[projects] caller not found: %s", email)
			return nil, authdomain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
