package repository

import (
	"context"
	"database/sql"
	"errors"

	"vacancy-match/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrCandidateNotFound = errors.New("candidate not found")
)

type Candidate struct {
	ID             uuid.UUID
	Name           string
	BusinessRoleID *int
}

type CandidateSkill struct {
	SkillID          uuid.UUID
	SkillName        string
	ProficiencyLevel int
}

type CandidateRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (Candidate, error)
	FindSkills(ctx context.Context, candidateID uuid.UUID) ([]CandidateSkill, error)
}

type PostgresCandidateRepository struct {
	db database.DB
}

func NewPostgresCandidateRepository(db database.DB) *PostgresCandidateRepository {
	return &PostgresCandidateRepository{db: db}
}

func (r *PostgresCandidateRepository) FindByID(ctx context.Context, id uuid.UUID) (Candidate, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, COALESCE(name, ''), business_role_id
		 FROM candidates
		 WHERE id = $1`,
		id,
	)

	var c Candidate
	var roleID sql.NullInt64
	if err := row.Scan(&c.ID, &c.Name, &roleID); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return Candidate{}, ErrCandidateNotFound
		}
		return Candidate{}, err
	}
	if roleID.Valid {
		v := int(roleID.Int64)
		c.BusinessRoleID = &v
	}
	return c, nil
}

// FindSkills returns the candidate's declared skills ordered by name, so the
// scoring lookup is built in a deterministic order.
func (r *PostgresCandidateRepository) FindSkills(ctx context.Context, candidateID uuid.UUID) ([]CandidateSkill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT cs.skill_id, s.name, COALESCE(cs.proficiency_level, 1)
		 FROM candidate_skills cs
		 JOIN skills s ON s.id = cs.skill_id
		 WHERE cs.candidate_id = $1
		 ORDER BY s.name ASC`,
		candidateID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]CandidateSkill, 0)
	for rows.Next() {
		var cs CandidateSkill
		if err := rows.Scan(&cs.SkillID, &cs.SkillName, &cs.ProficiencyLevel); err != nil {
			return nil, err
		}
		out = append(out, cs)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
