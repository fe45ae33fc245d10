package usecase

import (
	"context"
	"strconv"
	"testing"

	"vacancy-match/internal/domain/scoring"
	"vacancy-match/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestSummarize_Empty(t *testing.T) {
	stats := Summarize(nil)
	require.Equal(t, 0, stats.Count)
	require.NotNil(t, stats.RoleHistogram)
	require.Empty(t, stats.RoleHistogram)
	require.NotNil(t, stats.TopCompanies)
	require.Empty(t, stats.TopCompanies)
}

func TestSummarize(t *testing.T) {
	rec := func(final, skill float64, role, company string) Recommendation {
		return Recommendation{
			Posting:   repository.Posting{RoleName: role, CompanyName: company},
			Breakdown: breakdown(final, skill),
		}
	}

	stats := Summarize([]Recommendation{
		rec(0.9, 0.8, "Frontend Developer", "Acme"),
		rec(0.7, 0.6, "Frontend Developer", "Acme"),
		rec(0.5, 0.4, "Backend Developer", "Globex"),
	})

	require.Equal(t, 3, stats.Count)
	require.Equal(t, 0.9, stats.MaxFinal)
	require.Equal(t, 0.5, stats.MinFinal)
	require.Equal(t, 0.7, stats.AvgFinal)
	require.Equal(t, 0.6, stats.AvgSkill)
	require.Equal(t, map[string]int{"Frontend Developer": 2, "Backend Developer": 1}, stats.RoleHistogram)
	require.Equal(t, map[string]int{"Acme": 2, "Globex": 1}, stats.TopCompanies)
}

func TestSummarize_SkipsBlankNames(t *testing.T) {
	stats := Summarize([]Recommendation{
		{Posting: repository.Posting{}, Breakdown: breakdown(0.5, 0.5)},
	})
	require.Equal(t, 1, stats.Count)
	require.Empty(t, stats.RoleHistogram)
	require.Empty(t, stats.TopCompanies)
}

func TestSummarize_TopCompaniesCapped(t *testing.T) {
	recs := make([]Recommendation, 0, 7)
	for i := 0; i < 7; i++ {
		recs = append(recs, Recommendation{
			Posting:   repository.Posting{CompanyName: "company-" + strconv.Itoa(i)},
			Breakdown: breakdown(0.5, 0.5),
		})
	}

	stats := Summarize(recs)
	require.Len(t, stats.TopCompanies, 5)

	// All counts tie at 1, so the cap keeps the five lowest names.
	for i := 0; i < 5; i++ {
		require.Contains(t, stats.TopCompanies, "company-"+strconv.Itoa(i))
	}
}

func TestStatsForCandidate(t *testing.T) {
	u := NewStatsAggregator(newFrontendRecommender())

	stats, err := u.StatsForCandidate(context.Background(), testCandidateID)
	require.NoError(t, err)
	require.Equal(t, 2, stats.Count)
	require.Equal(t, 0.76, stats.MaxFinal)
	require.Equal(t, 0.34, stats.MinFinal)
	require.Equal(t, 0.55, stats.AvgFinal)
	require.Equal(t, 0.4, stats.AvgSkill)
	require.Equal(t, 1, stats.RoleHistogram["Frontend Developer"])
	require.Equal(t, 1, stats.RoleHistogram["Backend Developer"])
}

func TestStatsForCandidate_PropagatesErrors(t *testing.T) {
	u := NewStatsAggregator(newFrontendRecommender())

	_, err := u.StatsForCandidate(context.Background(), uuid.New())
	require.ErrorIs(t, err, ErrCandidateNotFound)
}

func breakdown(final, skill float64) scoring.Breakdown {
	return scoring.Breakdown{Final: final, Skill: skill}
}
