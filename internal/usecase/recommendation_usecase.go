package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"

	"vacancy-match/internal/domain/scoring"
	"vacancy-match/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrCandidateNotFound = errors.New("candidate not found")
	ErrInvalidRole       = errors.New("invalid business role")
	ErrInternal          = errors.New("internal error")
)

type RecommendationParams struct {
	Limit int
	// MinScore overrides the configured threshold when set.
	MinScore *float64
}

type Recommendation struct {
	Posting       repository.Posting `json:"posting"`
	Breakdown     scoring.Breakdown  `json:"breakdown"`
	MatchedSkills []string           `json:"matched_skills"`
	TotalSkills   int                `json:"total_skills"`
}

type RecommendationUsecase interface {
	RecommendForCandidate(ctx context.Context, candidateID uuid.UUID, params RecommendationParams) ([]Recommendation, error)
	RecommendForRole(ctx context.Context, roleID int, limit int) ([]repository.Posting, error)
}

// RecommenderOptions carries the scoring policies and pool knobs. Everything
// here is injectable so tests can substitute alternate policies.
type RecommenderOptions struct {
	Weights          scoring.Weights
	RoleGraph        scoring.RoleGraph
	ExperiencePolicy scoring.ExperiencePolicy

	PoolWindowDays int
	PoolCap        int
	DefaultLimit   int
	MinScore       float64
}

func DefaultRecommenderOptions() RecommenderOptions {
	return RecommenderOptions{
		Weights:          scoring.DefaultWeights(),
		RoleGraph:        scoring.DefaultRoleGraph(),
		ExperiencePolicy: scoring.DefaultExperiencePolicy(),
		PoolWindowDays:   30,
		PoolCap:          100,
		DefaultLimit:     10,
		MinScore:         0.3,
	}
}

type Recommender struct {
	candidates    repository.CandidateRepository
	postings      repository.PostingRepository
	postingSkills repository.PostingSkillRepository
	cache         RecommendationCache
	opts          RecommenderOptions
	logger        *log.Logger
}

func NewRecommender(
	candidates repository.CandidateRepository,
	postings repository.PostingRepository,
	postingSkills repository.PostingSkillRepository,
	cache RecommendationCache,
	opts RecommenderOptions,
	logger *log.Logger,
) *Recommender {
	if opts.PoolWindowDays <= 0 {
		opts.PoolWindowDays = 30
	}
	if opts.PoolCap <= 0 {
		opts.PoolCap = 100
	}
	if opts.DefaultLimit <= 0 {
		opts.DefaultLimit = 10
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Recommender{
		candidates:    candidates,
		postings:      postings,
		postingSkills: postingSkills,
		cache:         cache,
		opts:          opts,
		logger:        logger,
	}
}

// RecommendForCandidate scores the recent posting pool against one candidate
// profile and returns the ranked survivors. Scoring is deterministic: the
// only state shared between calls is read-only policy (role graph, weights).
func (u *Recommender) RecommendForCandidate(ctx context.Context, candidateID uuid.UUID, params RecommendationParams) ([]Recommendation, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = u.opts.DefaultLimit
	}
	if limit > 50 {
		limit = 50
	}
	minScore := u.opts.MinScore
	if params.MinScore != nil && *params.MinScore >= 0 && *params.MinScore <= 1 {
		minScore = *params.MinScore
	}

	cacheKey := fmt.Sprintf("recs:%s:limit=%d:min=%.3f", candidateID, limit, minScore)
	if u.cache != nil {
		var cached []Recommendation
		if hit, err := u.cache.GetJSON(ctx, cacheKey, &cached); err == nil && hit {
			return cached, nil
		}
	}

	candidate, err := u.candidates.FindByID(ctx, candidateID)
	if err != nil {
		if errors.Is(err, repository.ErrCandidateNotFound) {
			return nil, ErrCandidateNotFound
		}
		return nil, ErrInternal
	}

	candidateSkills, err := u.candidates.FindSkills(ctx, candidateID)
	if err != nil {
		return nil, ErrInternal
	}
	if len(candidateSkills) == 0 {
		// Allowed: the other factors still apply, skill score stays low.
		u.logger.Printf("[Recs] candidate %s has no declared skills", candidateID)
	}

	pool, err := u.postings.ListRecent(ctx, u.opts.PoolWindowDays, u.opts.PoolCap)
	if err != nil {
		return nil, ErrInternal
	}
	if len(pool) == 0 {
		return []Recommendation{}, nil
	}

	postingIDs := make([]uuid.UUID, 0, len(pool))
	for _, p := range pool {
		postingIDs = append(postingIDs, p.ID)
	}
	skillsByPosting, err := u.postingSkills.FindByPostingIDs(ctx, postingIDs)
	if err != nil {
		return nil, ErrInternal
	}

	engineSkills := make([]scoring.CandidateSkill, 0, len(candidateSkills))
	for _, cs := range candidateSkills {
		engineSkills = append(engineSkills, scoring.CandidateSkill{
			SkillName:        cs.SkillName,
			ProficiencyLevel: cs.ProficiencyLevel,
		})
	}
	lookup := scoring.BuildLookup(engineSkills)
	skillNames := lookup.Names()

	// Fresh per call: the two-document vocabulary must never leak between
	// scoring calls.
	textScorer := scoring.TextScorer{}

	out := make([]Recommendation, 0, len(pool))
	for _, posting := range pool {
		rec, err := u.scorePosting(candidate, lookup, skillNames, textScorer, posting, skillsByPosting[posting.ID])
		if err != nil {
			// Fail-soft: one bad posting never aborts the rest of the pool.
			u.logger.Printf("[Recs] scoring failed, posting excluded: posting=%s err=%v", posting.ID, err)
			continue
		}
		if rec.Breakdown.Final >= minScore {
			out = append(out, rec)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Breakdown.Final > out[j].Breakdown.Final
	})
	if len(out) > limit {
		out = out[:limit]
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, cacheKey, out, 0); err != nil {
			u.logger.Printf("[Recs] cache write failed: %v", err)
		}
	}

	return out, nil
}

func (u *Recommender) scorePosting(
	candidate repository.Candidate,
	lookup scoring.Lookup,
	skillNames []string,
	textScorer scoring.TextScorer,
	posting repository.Posting,
	postingSkills []string,
) (Recommendation, error) {
	skillScore, matched := scoring.ScoreSkills(lookup, postingSkills)
	salaryScore := scoring.ScoreSalary(posting.SalaryFrom, posting.SalaryTo)
	experienceScore := u.opts.ExperiencePolicy.Score(posting.Experience)
	roleScore := u.opts.RoleGraph.Score(candidate.BusinessRoleID, posting.BusinessRoleID)

	textScore, err := textScorer.Score(skillNames, posting.Description)
	if err != nil {
		if !errors.Is(err, scoring.ErrDegenerateCorpus) {
			return Recommendation{}, err
		}
		// Observable fallback: degenerate two-document corpus scores neutral.
		u.logger.Printf("[Recs] text similarity fallback: posting=%s err=%v", posting.ID, err)
		textScore = 0.5
	}

	breakdown := scoring.Breakdown{
		Skill:      skillScore,
		Salary:     salaryScore,
		Experience: experienceScore,
		Role:       roleScore,
		Text:       textScore,
	}
	breakdown.Final = u.opts.Weights.Aggregate(skillScore, salaryScore, experienceScore, roleScore, textScore)

	if matched == nil {
		matched = []string{}
	}
	return Recommendation{
		Posting:       posting,
		Breakdown:     breakdown,
		MatchedSkills: matched,
		TotalSkills:   len(postingSkills),
	}, nil
}

// RecommendForRole is the role-only shortcut: recent postings for a role,
// no per-candidate scoring.
func (u *Recommender) RecommendForRole(ctx context.Context, roleID int, limit int) ([]repository.Posting, error) {
	if roleID <= 0 {
		return nil, ErrInvalidRole
	}
	if limit <= 0 {
		limit = u.opts.DefaultLimit
	}
	postings, err := u.postings.ListByRole(ctx, roleID, u.opts.PoolWindowDays, limit)
	if err != nil {
		return nil, ErrInternal
	}
	return postings, nil
}
