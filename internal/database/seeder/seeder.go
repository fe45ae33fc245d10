package seeder

import (
	"context"
	"fmt"

	"vacancy-match/internal/database"

	"github.com/google/uuid"
)

// Run seeds the reference data the scoring engine depends on: the ten
// business roles and the base skill catalog. Idempotent via ON CONFLICT.
func Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	if err := seedBusinessRoles(ctx, db); err != nil {
		return fmt.Errorf("seed business roles: %w", err)
	}
	if err := seedSkills(ctx, db); err != nil {
		return fmt.Errorf("seed skills: %w", err)
	}
	return nil
}

func seedBusinessRoles(ctx context.Context, db database.DB) error {
	roles := []struct {
		ID   int
		Name string
	}{
		{1, "Data Analyst"},
		{2, "Frontend Developer"},
		{3, "Backend Developer"},
		{4, "Fullstack Developer"},
		{5, "DevOps Engineer"},
		{6, "QA Engineer"},
		{7, "Project Manager"},
		{8, "UX/UI Designer"},
		{9, "Data Scientist"},
		{10, "System Administrator"},
	}

	for _, r := range roles {
		_, err := db.Exec(ctx,
			`INSERT INTO business_roles (id, name)
			 VALUES ($1, $2)
			 ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name`,
			r.ID, r.Name,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func seedSkills(ctx context.Context, db database.DB) error {
	skills := []struct {
		Name     string
		Category string
	}{
		{"Python", "language"},
		{"SQL", "language"},
		{"JavaScript", "language"},
		{"TypeScript", "language"},
		{"Go", "language"},
		{"Java", "language"},
		{"HTML/CSS", "frontend"},
		{"React", "frontend"},
		{"Vue.js", "frontend"},
		{"Node.js", "backend"},
		{"PostgreSQL", "database"},
		{"Redis", "database"},
		{"Docker", "infrastructure"},
		{"Kubernetes", "infrastructure"},
		{"Linux", "infrastructure"},
		{"Git", "tooling"},
		{"Pandas", "data"},
		{"Excel", "data"},
		{"Power BI", "data"},
		{"Machine Learning", "data"},
		{"Figma", "design"},
		{"Scrum", "process"},
	}

	for _, s := range skills {
		_, err := db.Exec(ctx,
			`INSERT INTO skills (id, name, category)
			 VALUES ($1, $2, $3)
			 ON CONFLICT (name) DO NOTHING`,
			uuid.New(), s.Name, s.Category,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
