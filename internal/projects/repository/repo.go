package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	authdomain "github.com/lueberGandra/captal-api/internal/auth/domain"
	"github.com/lueberGandra/captal-api/internal/projects/domain"
)

// ProjectRepository provides persistence operations for projects.
type ProjectRepository struct {
	db *pgxpool.Pool
}

func NewProjectRepository(db *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{db: db}
}

const selectWithOwner = `
SELECT p.id, p.name, p.location, p.land_area, p.estimated_cost,
       p.expected_revenue, p.description, p.status, p.created_at,
       p.created_by_id,
       u.id, u.email, u.name, u.role, u.created_at
FROM projects p
JOIN users u ON u.id = p.created_by_id
`

// Create inserts a new project owned by the given user. Status starts
// as pending.
func (r *ProjectRepository) Create(ctx context.Context, in domain.CreateProjectInput, createdByID uuid.UUID) (*domain.Project, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("name required")
	}

	const q = `
INSERT INTO projects (id, name, location, land_area, estimated_cost,
                      expected_revenue, description, status, created_by_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id, name, location, land_area, estimated_cost,
          expected_revenue, description, status, created_at, created_by_id;
`
	var p domain.Project
	err := r.db.QueryRow(ctx, q,
		uuid.New(), in.Name, in.Location, in.LandArea, in.EstimatedCost,
		in.ExpectedRevenue, in.Description, domain.StatusPending, createdByID,
	).Scan(
		&p.ID, &p.Name, &p.Location, &p.LandArea, &p.EstimatedCost,
		&p.ExpectedRevenue, &p.Description, &p.Status, &p.CreatedAt, &p.CreatedByID,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// FindByID returns the project with its owner resolved, or
// domain.ErrProjectNotFound.
func (r *ProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	q := selectWithOwner + `WHERE p.id = $1;`

	p, err := scanProject(r.db.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, err
	}
	return p, nil
}

// FindAll returns every project with owners resolved, newest first.
func (r *ProjectRepository) FindAll(ctx context.Context) ([]domain.Project, error) {
	q := selectWithOwner + `ORDER BY p.created_at DESC;`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectProjects(rows)
}

// FindAllByOwner returns the projects created by one user, newest first.
func (r *ProjectRepository) FindAllByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Project, error) {
	q := selectWithOwner + `WHERE p.created_by_id = $1 ORDER BY p.created_at DESC;`

	rows, err := r.db.Query(ctx, q, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectProjects(rows)
}

// UpdateStatus sets the project's status and returns the updated row, or
// domain.ErrProjectNotFound.
func (r *ProjectRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ProjectStatus) (*domain.Project, error) {
	const q = `
UPDATE projects
SET status = $2
WHERE id = $1
RETURNING id, name, location, land_area, estimated_cost,
          expected_revenue, description, status, created_at, created_by_id;
`
	var p domain.Project
	err := r.db.QueryRow(ctx, q, id, status).Scan(
		&p.ID, &p.Name, &p.Location, &p.LandArea, &p.EstimatedCost,
		&p.ExpectedRevenue, &p.Description, &p.Status, &p.CreatedAt, &p.CreatedByID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, err
	}
	return &p, nil
}

// CountByStatus returns how many projects sit in the given status.
func (r *ProjectRepository) CountByStatus(ctx context.Context, status domain.ProjectStatus) (int64, error) {
	const q = `SELECT count(*) FROM projects WHERE status = $1;`

	var n int64
	if err := r.db.QueryRow(ctx, q, status).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

type row interface {
	Scan(dest ...any) error
}

func scanProject(r row) (*domain.Project, error) {
	var p domain.Project
	var owner authdomain.User
	err := r.Scan(
		&p.ID, &p.Name, &p.Location, &p.LandArea, &p.EstimatedCost,
		&p.ExpectedRevenue, &p.Description, &p.Status, &p.CreatedAt,
		&p.CreatedByID,
		&owner.ID, &owner.Email, &owner.Name, &owner.Role, &owner.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.CreatedBy = &owner
	return &p, nil
}

func collectProjects(rows pgx.Rows) ([]domain.Project, error) {
	out := make([]domain.Project, 0, 16)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
