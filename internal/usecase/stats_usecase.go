package usecase

import (
	"context"
	"math"
	"sort"

	"github.com/google/uuid"
)

// statsSampleLimit is how many top recommendations the distribution summary
// is computed over.
const statsSampleLimit = 50

type Stats struct {
	Count         int            `json:"count"`
	AvgFinal      float64        `json:"avg_final"`
	MaxFinal      float64        `json:"max_final"`
	MinFinal      float64        `json:"min_final"`
	AvgSkill      float64        `json:"avg_skill"`
	RoleHistogram map[string]int `json:"role_histogram"`
	TopCompanies  map[string]int `json:"top_companies"`
}

type StatsUsecase interface {
	StatsForCandidate(ctx context.Context, candidateID uuid.UUID) (Stats, error)
}

type StatsAggregator struct {
	recommender RecommendationUsecase
}

func NewStatsAggregator(recommender RecommendationUsecase) *StatsAggregator {
	return &StatsAggregator{recommender: recommender}
}

// StatsForCandidate summarizes the candidate's top recommendations. An empty
// recommendation set yields count=0 with empty histograms, never an error.
func (u *StatsAggregator) StatsForCandidate(ctx context.Context, candidateID uuid.UUID) (Stats, error) {
	recs, err := u.recommender.RecommendForCandidate(ctx, candidateID, RecommendationParams{Limit: statsSampleLimit})
	if err != nil {
		return Stats{}, err
	}
	return Summarize(recs), nil
}

func Summarize(recs []Recommendation) Stats {
	stats := Stats{
		RoleHistogram: map[string]int{},
		TopCompanies:  map[string]int{},
	}
	if len(recs) == 0 {
		return stats
	}

	stats.Count = len(recs)
	stats.MaxFinal = recs[0].Breakdown.Final
	stats.MinFinal = recs[0].Breakdown.Final

	var finalSum, skillSum float64
	companies := map[string]int{}
	for _, rec := range recs {
		final := rec.Breakdown.Final
		finalSum += final
		skillSum += rec.Breakdown.Skill
		if final > stats.MaxFinal {
			stats.MaxFinal = final
		}
		if final < stats.MinFinal {
			stats.MinFinal = final
		}
		if rec.Posting.RoleName != "" {
			stats.RoleHistogram[rec.Posting.RoleName]++
		}
		if rec.Posting.CompanyName != "" {
			companies[rec.Posting.CompanyName]++
		}
	}

	n := float64(len(recs))
	stats.AvgFinal = round3(finalSum / n)
	stats.AvgSkill = round3(skillSum / n)
	stats.TopCompanies = topN(companies, 5)
	return stats
}

// topN keeps the n most frequent entries, ties broken by name so the result
// is deterministic.
func topN(counts map[string]int, n int) map[string]int {
	type entry struct {
		name  string
		count int
	}
	entries := make([]entry, 0, len(counts))
	for name, count := range counts {
		entries = append(entries, entry{name: name, count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].name < entries[j].name
	})
	if len(entries) > n {
		entries = entries[:n]
	}

	out := make(map[string]int, len(entries))
	for _, e := range entries {
		out[e.name] = e.count
	}
	return out
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
