package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/dossier-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// SeedCompany creates a company on the given plan.
func SeedCompany(t *testing.T, pool *pgxpool.Pool, plan domain.Plan) domain.Company {
	t.Helper()

	ts := now()
	c := domain.Company{
		ID:        uuid.New(),
		Name:      "Company " + uniqueSuffix(),
		Plan:      plan,
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO companies (id, name, plan, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`,
		c.ID, c.Name, string(c.Plan), c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCompany: %v", err)
	}
	return c
}

// SeedUser creates a personal EDITOR account without a company.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return seedUser(t, pool, nil, domain.UserRoleEditor)
}

// SeedCompanyUser creates a user with the given role inside a company.
func SeedCompanyUser(t *testing.T, pool *pgxpool.Pool, companyID uuid.UUID, role domain.UserRole) domain.User {
	t.Helper()
	return seedUser(t, pool, &companyID, role)
}

func seedUser(t *testing.T, pool *pgxpool.Pool, companyID *uuid.UUID, role domain.UserRole) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	ts := now()
	u := domain.User{
		ID:        uuid.New(),
		Email:     "user-" + suffix + "@example.com",
		Name:      "Test User " + suffix,
		CompanyID: companyID,
		Role:      role,
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, name, company_id, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		u.ID, u.Email, u.Name, u.CompanyID, string(u.Role), u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}
	return u
}

// SeedProject creates a DRAFT project owned by owner, in the owner's company.
func SeedProject(t *testing.T, pool *pgxpool.Pool, owner domain.User) domain.Project {
	t.Helper()

	ts := now()
	p := domain.Project{
		ID:        uuid.New(),
		CompanyID: owner.CompanyID,
		OwnerID:   owner.ID,
		Name:      "Project " + uniqueSuffix(),
		Status:    domain.ProjectStatusDraft,
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO projects (id, company_id, owner_id, name, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		p.ID, p.CompanyID, p.OwnerID, p.Name, string(p.Status), p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProject: %v", err)
	}
	return p
}

// SeedSection creates a DRAFT section of a project with the given content.
func SeedSection(t *testing.T, pool *pgxpool.Pool, projectID uuid.UUID, name string, content domain.Content) domain.Section {
	t.Helper()

	if content == nil {
		content = domain.Content{}
	}
	data, err := json.Marshal(content)
	if err != nil {
		t.Fatalf("testhelper: SeedSection marshal: %v", err)
	}

	ts := now()
	s := domain.Section{
		ID:        uuid.New(),
		ProjectID: projectID,
		Name:      name,
		Content:   content,
		Status:    domain.SectionStatusDraft,
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	_, err = pool.Exec(context.Background(),
		`INSERT INTO sections (id, project_id, name, content, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		s.ID, s.ProjectID, s.Name, data, string(s.Status), s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSection: %v", err)
	}
	return s
}
