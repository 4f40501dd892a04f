package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authdomain "github.com/lueberGandra/captal-api/internal/auth/domain"
	"github.com/lueberGandra/captal-api/internal/projects/domain"
)

type fakeProjectStore struct {
	projects []domain.Project
}

func (s *fakeProjectStore) Create(ctx context.Context, in domain.CreateProjectInput, createdByID uuid.UUID) (*domain.Project, error) {
	p := domain.Project{
		ID:              uuid.New(),
		Name:            in.Name,
		Location:        in.Location,
		LandArea:        in.LandArea,
		EstimatedCost:   in.EstimatedCost,
		ExpectedRevenue: in.ExpectedRevenue,
		Description:     in.Description,
		Status:          domain.StatusPending,
		CreatedAt:       time.Now().UTC(),
		CreatedByID:     createdByID,
	}
	s.projects = append(s.projects, p)
	return &p, nil
}

func (s *fakeProjectStore) FindByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	for i := range s.projects {
		if s.projects[i].ID == id {
			p := s.projects[i]
			return &p, nil
		}
	}
	return nil, domain.ErrProjectNotFound
}

func (s *fakeProjectStore) FindAll(ctx context.Context) ([]domain.Project, error) {
	out := make([]domain.Project, len(s.projects))
	copy(out, s.projects)
	return out, nil
}

func (s *fakeProjectStore) FindAllByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Project, error) {
	out := make([]domain.Project, 0)
	for _, p := range s.projects {
		if p.CreatedByID == ownerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *fakeProjectStore) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ProjectStatus) (*domain.Project, error) {
	for i := range s.projects {
		if s.projects[i].ID == id {
			s.projects[i].Status = status
			p := s.projects[i]
			return &p, nil
		}
	}
	return nil, domain.ErrProjectNotFound
}

type fakeUserDir struct {
	users map[string]*authdomain.User
}

func (d *fakeUserDir) FindByEmail(ctx context.Context, email string) (*authdomain.User, error) {
	if u, ok := d.users[email]; ok {
		return u, nil
	}
	return nil, authdomain.ErrUserNotFound
}

func addUser(d *fakeUserDir, email string, role authdomain.UserRole) *authdomain.User {
	u := &authdomain.User{
		ID:        uuid.New(),
		Email:     email,
		Name:      email,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}
	d.users[email] = u
	return u
}

func setup() (*ProjectService, *fakeProjectStore, *fakeUserDir) {
	store := &fakeProjectStore{}
	users := &fakeUserDir{users: make(map[string]*authdomain.User)}
	return NewProjectService(store, users), store, users
}

func sampleInput(name string) domain.CreateProjectInput {
	return domain.CreateProjectInput{
		Name:            name,
		Location:        "Lisbon",
		LandArea:        120.5,
		EstimatedCost:   500000,
		ExpectedRevenue: 750000,
	}
}

func TestProjectService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("persists pending project owned by caller", func(t *testing.T) {
		svc, _, users := setup()
		dev := addUser(users, "dev@x.com", authdomain.RoleDeveloper)

		p, err := svc.Create(ctx, sampleInput("Towers"), "dev@x.com")
		require.NoError(t, err)
		assert.Equal(t, dev.ID, p.CreatedByID)
		assert.Equal(t, domain.StatusPending, p.Status)
	})

	t.Run("unknown caller", func(t *testing.T) {
		svc, _, _ := setup()
		_, err := svc.Create(ctx, sampleInput("Towers"), "ghost@x.com")
		assert.ErrorIs(t, err, authdomain.ErrUserNotFound)
	})
}

func TestProjectService_FindAll(t *testing.T) {
	ctx := context.Background()

	svc, _, users := setup()
	dev1 := addUser(users, "dev1@x.com", authdomain.RoleDeveloper)
	dev2 := addUser(users, "dev2@x.com", authdomain.RoleDeveloper)
	addUser(users, "admin@x.com", authdomain.RoleAdmin)

	_, err := svc.Create(ctx, sampleInput("P1"), "dev1@x.com")
	require.NoError(t, err)
	_, err = svc.Create(ctx, sampleInput("P2"), "dev1@x.com")
	require.NoError(t, err)
	_, err = svc.Create(ctx, sampleInput("P3"), "dev2@x.com")
	require.NoError(t, err)

	t.Run("admin sees every project", func(t *testing.T) {
		all, err := svc.FindAll(ctx, "admin@x.com")
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})

	t.Run("developer sees only own projects", func(t *testing.T) {
		own, err := svc.FindAll(ctx, "dev1@x.com")
		require.NoError(t, err)
		require.Len(t, own, 2)
		for _, p := range own {
			assert.Equal(t, dev1.ID, p.CreatedByID)
		}

		own, err = svc.FindAll(ctx, "dev2@x.com")
		require.NoError(t, err)
		require.Len(t, own, 1)
		assert.Equal(t, dev2.ID, own[0].CreatedByID)
	})

	t.Run("unknown caller", func(t *testing.T) {
		_, err := svc.FindAll(ctx, "ghost@x.com")
		assert.ErrorIs(t, err, authdomain.ErrUserNotFound)
	})
}

func TestProjectService_FindOne(t *testing.T) {
	ctx := context.Background()

	svc, _, users := setup()
	addUser(users, "owner@x.com", authdomain.RoleDeveloper)
	addUser(users, "other@x.com", authdomain.RoleDeveloper)
	addUser(users, "admin@x.com", authdomain.RoleAdmin)

	created, err := svc.Create(ctx, sampleInput("Towers"), "owner@x.com")
	require.NoError(t, err)

	t.Run("owner can read own project", func(t *testing.T) {
		p, err := svc.FindOne(ctx, created.ID, "owner@x.com")
		require.NoError(t, err)
		assert.Equal(t, created.ID, p.ID)
	})

	t.Run("other developer is forbidden", func(t *testing.T) {
		_, err := svc.FindOne(ctx, created.ID, "other@x.com")
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("admin can read any project", func(t *testing.T) {
		p, err := svc.FindOne(ctx, created.ID, "admin@x.com")
		require.NoError(t, err)
		assert.Equal(t, created.ID, p.ID)
	})

	t.Run("missing project", func(t *testing.T) {
		_, err := svc.FindOne(ctx, uuid.New(), "owner@x.com")
		assert.ErrorIs(t, err, domain.ErrProjectNotFound)
	})

	t.Run("unknown caller", func(t *testing.T) {
		_, err := svc.FindOne(ctx, created.ID, "ghost@x.com")
		assert.ErrorIs(t, err, authdomain.ErrUserNotFound)
	})
}

func TestProjectService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	svc, _, users := setup()
	addUser(users, "dev@x.com", authdomain.RoleDeveloper)

	created, err := svc.Create(ctx, sampleInput("Towers"), "dev@x.com")
	require.NoError(t, err)

	t.Run("changes status and nothing else", func(t *testing.T) {
		updated, err := svc.UpdateStatus(ctx, created.ID, domain.StatusApproved)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusApproved, updated.Status)
		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, created.Name, updated.Name)
		assert.Equal(t, created.CreatedByID, updated.CreatedByID)
		assert.Equal(t, created.LandArea, updated.LandArea)
	})

	t.Run("missing project", func(t *testing.T) {
		_, err := svc.UpdateStatus(ctx, uuid.New(), domain.StatusRejected)
		assert.ErrorIs(t, err, domain.ErrProjectNotFound)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := svc.UpdateStatus(ctx, created.ID, domain.ProjectStatus("archived"))
		assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	})
}
