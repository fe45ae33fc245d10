package scoring

import (
	"math"
	"strings"
)

// ScoreSalary rewards postings that disclose a salary range. The candidate's
// own expectation is not modeled; presence of either bound is the whole signal.
func ScoreSalary(salaryFrom, salaryTo *int) float64 {
	if salaryFrom != nil || salaryTo != nil {
		return 1.0
	}
	return 0.5
}

// ExperiencePolicy maps a posting's experience band to an ordinal level and
// scores it against the assumed candidate level. Injected so tests and future
// per-candidate policies can swap the defaults.
type ExperiencePolicy struct {
	Bands          map[string]int
	DefaultLevel   int
	CandidateLevel int
	MissingScore   float64
}

// DefaultExperiencePolicy models an entry-level candidate population: the
// candidate is pinned at level 2 ("under a year").
func DefaultExperiencePolicy() ExperiencePolicy {
	return ExperiencePolicy{
		Bands: map[string]int{
			"нет опыта":          1,
			"менее года":         2,
			"от 1 года до 3 лет": 3,
			"от 3 до 6 лет":      4,
			"более 6 лет":        5,
		},
		DefaultLevel:   3,
		CandidateLevel: 2,
		MissingScore:   0.7,
	}
}

func (p ExperiencePolicy) Score(experienceBand string) float64 {
	band := strings.ToLower(strings.TrimSpace(experienceBand))
	if band == "" {
		return p.MissingScore
	}

	level, ok := p.Bands[band]
	if !ok {
		level = p.DefaultLevel
	}

	diff := math.Abs(float64(level - p.CandidateLevel))
	return round2(math.Max(0, 1-diff/4))
}

// RoleGraph lists, per role, the roles considered adjacent for partial
// affinity credit. The graph is directed: A listing B does not imply B lists A.
type RoleGraph map[int][]int

// DefaultRoleGraph covers the ten built-in business roles.
func DefaultRoleGraph() RoleGraph {
	return RoleGraph{
		1:  {3, 9},    // Data Analyst -> Backend, Data Scientist
		2:  {3, 4},    // Frontend -> Backend, Fullstack
		3:  {1, 2, 4}, // Backend -> Data Analyst, Frontend, Fullstack
		4:  {2, 3},    // Fullstack -> Frontend, Backend
		5:  {3},       // DevOps -> Backend
		6:  {1, 3},    // QA -> Data Analyst, Backend
		7:  {},        // Project Manager
		8:  {2},       // UX/UI -> Frontend
		9:  {1, 3},    // Data Scientist -> Data Analyst, Backend
		10: {3, 5},    // System Admin -> Backend, DevOps
	}
}

// Score returns 0.5 for an undeclared candidate role, 1.0 for an exact match,
// 0.7 when the posting role is adjacent to the candidate role, 0.3 otherwise.
func (g RoleGraph) Score(candidateRoleID *int, postingRoleID int) float64 {
	if candidateRoleID == nil || *candidateRoleID == 0 {
		return 0.5
	}
	if *candidateRoleID == postingRoleID {
		return 1.0
	}
	for _, related := range g[*candidateRoleID] {
		if related == postingRoleID {
			return 0.7
		}
	}
	return 0.3
}
