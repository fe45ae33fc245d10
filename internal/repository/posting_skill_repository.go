package repository

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"vacancy-match/internal/database"

	"github.com/google/uuid"
)

type PostingSkillRepository interface {
	// FindByPostingIDs returns required skill names per posting, preserving
	// the posting's declared order. Postings without structured links fall
	// back to the raw key_skills JSON column.
	FindByPostingIDs(ctx context.Context, postingIDs []uuid.UUID) (map[uuid.UUID][]string, error)
}

type PostgresPostingSkillRepository struct {
	db     database.DB
	logger *log.Logger
}

func NewPostgresPostingSkillRepository(db database.DB, logger *log.Logger) *PostgresPostingSkillRepository {
	if logger == nil {
		logger = log.Default()
	}
	return &PostgresPostingSkillRepository{db: db, logger: logger}
}

func (r *PostgresPostingSkillRepository) FindByPostingIDs(ctx context.Context, postingIDs []uuid.UUID) (map[uuid.UUID][]string, error) {
	out := make(map[uuid.UUID][]string, len(postingIDs))
	if len(postingIDs) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT ps.posting_id, s.name
		 FROM posting_skills ps
		 JOIN skills s ON s.id = ps.skill_id
		 WHERE ps.posting_id = ANY($1)
		 ORDER BY ps.posting_id, ps.position ASC`,
		postingIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var postingID uuid.UUID
		var name string
		if err := rows.Scan(&postingID, &name); err != nil {
			return nil, err
		}
		out[postingID] = append(out[postingID], name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	missing := make([]uuid.UUID, 0)
	for _, id := range postingIDs {
		if _, ok := out[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) == 0 {
		return out, nil
	}

	fallback, err := r.parseKeySkills(ctx, missing)
	if err != nil {
		return nil, err
	}
	for id, skills := range fallback {
		out[id] = skills
	}
	return out, nil
}

// parseKeySkills reads the raw key_skills column for postings that have no
// structured skill links. Malformed JSON is logged and treated as no skills;
// it must not fail the scoring call.
func (r *PostgresPostingSkillRepository) parseKeySkills(ctx context.Context, postingIDs []uuid.UUID) (map[uuid.UUID][]string, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, COALESCE(key_skills, '')
		 FROM postings
		 WHERE id = ANY($1)`,
		postingIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[uuid.UUID][]string, len(postingIDs))
	for rows.Next() {
		var id uuid.UUID
		var raw string
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, err
		}
		if strings.TrimSpace(raw) == "" {
			continue
		}

		var skills []string
		if err := json.Unmarshal([]byte(raw), &skills); err != nil {
			r.logger.Printf("[PostingSkills] malformed key_skills, treating as empty: posting=%s err=%v", id, err)
			continue
		}

		cleaned := make([]string, 0, len(skills))
		for _, s := range skills {
			if strings.TrimSpace(s) != "" {
				cleaned = append(cleaned, s)
			}
		}
		if len(cleaned) > 0 {
			out[id] = cleaned
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
