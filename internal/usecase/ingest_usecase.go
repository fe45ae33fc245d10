package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"vacancy-match/internal/repository"
)

// SourcePosting is a posting as delivered by an external job board, before
// it is persisted.
type SourcePosting struct {
	ExternalID        string
	Title             string
	CompanyExternalID string
	CompanyName       string
	CompanyURL        string
	RegionExternalID  string
	RegionName        string
	SalaryFrom        *int
	SalaryTo          *int
	Currency          string
	Experience        string
	Description       string
	KeySkills         []string
	URL               string
	PublishedAt       time.Time
}

// PostingSource is the ingestion port; the HeadHunter adapter implements it.
type PostingSource interface {
	FetchPostings(ctx context.Context, searchText string) ([]SourcePosting, error)
}

// RoleQuery pairs a business role with the search text used to pull its
// postings from the job board.
type RoleQuery struct {
	RoleID     int
	SearchText string
}

func DefaultRoleQueries() []RoleQuery {
	return []RoleQuery{
		{RoleID: 1, SearchText: "аналитик данных"},
		{RoleID: 2, SearchText: "frontend разработчик"},
		{RoleID: 3, SearchText: "backend разработчик"},
		{RoleID: 4, SearchText: "fullstack разработчик"},
		{RoleID: 5, SearchText: "devops инженер"},
		{RoleID: 6, SearchText: "тестировщик qa"},
		{RoleID: 7, SearchText: "менеджер проектов"},
		{RoleID: 8, SearchText: "ux ui дизайнер"},
		{RoleID: 9, SearchText: "data scientist"},
		{RoleID: 10, SearchText: "системный администратор"},
	}
}

type Ingestor struct {
	source   PostingSource
	postings repository.PostingRepository
	cache    RecommendationCache
	logger   *log.Logger
}

func NewIngestor(source PostingSource, postings repository.PostingRepository, cache RecommendationCache, logger *log.Logger) *Ingestor {
	if logger == nil {
		logger = log.Default()
	}
	return &Ingestor{source: source, postings: postings, cache: cache, logger: logger}
}

// Run pulls postings for every role query and upserts them. A failed query
// does not stop the remaining ones; cached recommendations are invalidated
// once at the end because the pool changed.
func (u *Ingestor) Run(ctx context.Context, queries []RoleQuery) error {
	if len(queries) == 0 {
		queries = DefaultRoleQueries()
	}

	var firstErr error
	total := 0
	for _, q := range queries {
		fetched, err := u.source.FetchPostings(ctx, q.SearchText)
		if err != nil {
			u.logger.Printf("[Ingest] fetch failed: role=%d query=%q err=%v", q.RoleID, q.SearchText, err)
			if firstErr == nil {
				firstErr = fmt.Errorf("fetch %q: %w", q.SearchText, err)
			}
			continue
		}

		upserts := make([]repository.PostingUpsert, 0, len(fetched))
		for _, sp := range fetched {
			if sp.ExternalID == "" || sp.Title == "" {
				continue
			}
			upserts = append(upserts, repository.PostingUpsert{
				ExternalID:        sp.ExternalID,
				Title:             sp.Title,
				CompanyExternalID: sp.CompanyExternalID,
				CompanyName:       sp.CompanyName,
				CompanyURL:        sp.CompanyURL,
				RegionExternalID:  sp.RegionExternalID,
				RegionName:        sp.RegionName,
				BusinessRoleID:    q.RoleID,
				SalaryFrom:        sp.SalaryFrom,
				SalaryTo:          sp.SalaryTo,
				Currency:          sp.Currency,
				Experience:        sp.Experience,
				Description:       sp.Description,
				KeySkills:         sp.KeySkills,
				URL:               sp.URL,
				PublishedAt:       sp.PublishedAt,
			})
		}

		n, err := u.postings.UpsertPostings(ctx, upserts)
		if err != nil {
			u.logger.Printf("[Ingest] upsert failed: role=%d err=%v", q.RoleID, err)
			if firstErr == nil {
				firstErr = fmt.Errorf("upsert role %d: %w", q.RoleID, err)
			}
			continue
		}
		total += n
		u.logger.Printf("[Ingest] role=%d query=%q fetched=%d upserted=%d", q.RoleID, q.SearchText, len(fetched), n)
	}

	if total > 0 && u.cache != nil {
		if err := u.cache.DeleteByPattern(ctx, "recs:*"); err != nil {
			u.logger.Printf("[Ingest] cache invalidation failed: %v", err)
		}
	}

	u.logger.Printf("[Ingest] done, upserted=%d", total)
	return firstErr
}
