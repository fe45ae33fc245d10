package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"vacancy-match/internal/database"

	"github.com/google/uuid"
)

type Posting struct {
	ID             uuid.UUID
	ExternalID     string
	Title          string
	CompanyName    string
	RegionName     string
	BusinessRoleID int
	RoleName       string
	SalaryFrom     *int
	SalaryTo       *int
	Currency       string
	Experience     string
	Description    string
	URL            string
	PublishedAt    time.Time
}

type PostingUpsert struct {
	ExternalID        string
	Title             string
	CompanyExternalID string
	CompanyName       string
	CompanyURL        string
	RegionExternalID  string
	RegionName        string
	BusinessRoleID    int
	SalaryFrom        *int
	SalaryTo          *int
	Currency          string
	Experience        string
	Description       string
	KeySkills         []string
	URL               string
	PublishedAt       time.Time
}

type PostingRepository interface {
	// ListRecent returns the most recent postings published within the
	// trailing window, newest first, capped for performance.
	ListRecent(ctx context.Context, windowDays, cap int) ([]Posting, error)
	ListByRole(ctx context.Context, roleID int, windowDays, limit int) ([]Posting, error)
	UpsertPostings(ctx context.Context, items []PostingUpsert) (int, error)
}

type PostgresPostingRepository struct {
	db database.DB
}

func NewPostgresPostingRepository(db database.DB) *PostgresPostingRepository {
	return &PostgresPostingRepository{db: db}
}

const postingSelect = `
SELECT p.id, COALESCE(p.external_id, ''), COALESCE(p.title, ''),
       COALESCE(c.name, ''), COALESCE(rg.name, ''),
       COALESCE(p.business_role_id, 0), COALESCE(br.name, ''),
       p.salary_from, p.salary_to, COALESCE(p.currency, ''),
       COALESCE(p.experience, ''), COALESCE(p.description, ''),
       COALESCE(p.url, ''), p.published_at
FROM postings p
LEFT JOIN companies c ON c.id = p.company_id
LEFT JOIN regions rg ON rg.id = p.region_id
LEFT JOIN business_roles br ON br.id = p.business_role_id`

func (r *PostgresPostingRepository) ListRecent(ctx context.Context, windowDays, cap int) ([]Posting, error) {
	if windowDays <= 0 {
		windowDays = 30
	}
	if cap <= 0 {
		cap = 100
	}

	rows, err := r.db.Query(ctx,
		postingSelect+`
WHERE p.published_at >= now() - make_interval(days => $1)
ORDER BY p.published_at DESC
LIMIT $2`,
		windowDays, cap,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPostings(rows)
}

func (r *PostgresPostingRepository) ListByRole(ctx context.Context, roleID int, windowDays, limit int) ([]Posting, error) {
	if windowDays <= 0 {
		windowDays = 30
	}
	if limit <= 0 {
		limit = 10
	}
	if limit > 50 {
		limit = 50
	}

	rows, err := r.db.Query(ctx,
		postingSelect+`
WHERE p.business_role_id = $1
  AND p.published_at >= now() - make_interval(days => $2)
ORDER BY p.published_at DESC
LIMIT $3`,
		roleID, windowDays, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPostings(rows)
}

func scanPostings(rows database.Rows) ([]Posting, error) {
	out := make([]Posting, 0)
	for rows.Next() {
		var p Posting
		var salaryFrom, salaryTo sql.NullInt64
		var publishedAt sql.NullTime
		if err := rows.Scan(
			&p.ID, &p.ExternalID, &p.Title,
			&p.CompanyName, &p.RegionName,
			&p.BusinessRoleID, &p.RoleName,
			&salaryFrom, &salaryTo, &p.Currency,
			&p.Experience, &p.Description,
			&p.URL, &publishedAt,
		); err != nil {
			return nil, err
		}
		if salaryFrom.Valid {
			v := int(salaryFrom.Int64)
			p.SalaryFrom = &v
		}
		if salaryTo.Valid {
			v := int(salaryTo.Int64)
			p.SalaryTo = &v
		}
		if publishedAt.Valid {
			p.PublishedAt = publishedAt.Time
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// UpsertPostings writes one ingestion batch transactionally: companies and
// regions first, then postings keyed on the job-board external id.
func (r *PostgresPostingRepository) UpsertPostings(ctx context.Context, items []PostingUpsert) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	upserted := 0
	for _, it := range items {
		companyID, err := upsertCompany(ctx, tx, it)
		if err != nil {
			return 0, fmt.Errorf("upsert company %q: %w", it.CompanyName, err)
		}
		regionID, err := upsertRegion(ctx, tx, it)
		if err != nil {
			return 0, fmt.Errorf("upsert region %q: %w", it.RegionName, err)
		}

		keySkills, err := json.Marshal(it.KeySkills)
		if err != nil {
			return 0, err
		}

		affected, err := tx.Exec(ctx,
			`INSERT INTO postings (id, external_id, title, company_id, region_id, business_role_id,
			                       salary_from, salary_to, currency, experience, description,
			                       key_skills, url, published_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
			 ON CONFLICT (external_id) DO UPDATE SET
			   title = EXCLUDED.title,
			   company_id = EXCLUDED.company_id,
			   region_id = EXCLUDED.region_id,
			   business_role_id = EXCLUDED.business_role_id,
			   salary_from = EXCLUDED.salary_from,
			   salary_to = EXCLUDED.salary_to,
			   currency = EXCLUDED.currency,
			   experience = EXCLUDED.experience,
			   description = EXCLUDED.description,
			   key_skills = EXCLUDED.key_skills,
			   url = EXCLUDED.url,
			   published_at = EXCLUDED.published_at`,
			uuid.New(), it.ExternalID, it.Title, companyID, regionID, nullableInt(it.BusinessRoleID),
			it.SalaryFrom, it.SalaryTo, it.Currency, it.Experience, it.Description,
			string(keySkills), it.URL, it.PublishedAt,
		)
		if err != nil {
			return 0, fmt.Errorf("upsert posting %q: %w", it.ExternalID, err)
		}
		upserted += int(affected)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return upserted, nil
}

func upsertCompany(ctx context.Context, tx database.Tx, it PostingUpsert) (uuid.UUID, error) {
	var id uuid.UUID
	row := tx.QueryRow(ctx,
		`INSERT INTO companies (id, external_id, name, url)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (external_id) DO UPDATE SET name = EXCLUDED.name, url = EXCLUDED.url
		 RETURNING id`,
		uuid.New(), it.CompanyExternalID, it.CompanyName, it.CompanyURL,
	)
	if err := row.Scan(&id); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func upsertRegion(ctx context.Context, tx database.Tx, it PostingUpsert) (uuid.UUID, error) {
	var id uuid.UUID
	row := tx.QueryRow(ctx,
		`INSERT INTO regions (id, external_id, name)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (external_id) DO UPDATE SET name = EXCLUDED.name
		 RETURNING id`,
		uuid.New(), it.RegionExternalID, it.RegionName,
	)
	if err := row.Scan(&id); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func nullableInt(v int) any {
	if v == 0 {
		return nil
	}
	return v
}
