package scoring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func frontendLookup() Lookup {
	return BuildLookup([]CandidateSkill{
		{SkillName: "JavaScript", ProficiencyLevel: 5},
		{SkillName: "HTML/CSS", ProficiencyLevel: 5},
		{SkillName: "React", ProficiencyLevel: 5},
	})
}

func TestScoreSkills_EmptyPostingSkills(t *testing.T) {
	score, matched := ScoreSkills(frontendLookup(), nil)
	require.Equal(t, 0.0, score)
	require.Empty(t, matched)

	score, matched = ScoreSkills(frontendLookup(), []string{})
	require.Equal(t, 0.0, score)
	require.Empty(t, matched)
}

func TestScoreSkills_ExactMatches(t *testing.T) {
	score, matched := ScoreSkills(frontendLookup(), []string{"JavaScript", "React", "TypeScript"})

	// 2 of 3 matched at full proficiency: 0.6*(2/3) + 0.4*1.0 = 0.8
	require.Equal(t, 0.8, score)
	require.Equal(t, []string{"JavaScript", "React"}, matched)
}

func TestScoreSkills_CaseInsensitive(t *testing.T) {
	score, matched := ScoreSkills(frontendLookup(), []string{"JAVASCRIPT", "react"})
	require.Equal(t, []string{"JAVASCRIPT", "react"}, matched)

	// 0.6*1.0 + 0.4*1.0
	require.Equal(t, 1.0, score)
}

func TestScoreSkills_SubstringHalfWeight(t *testing.T) {
	lookup := BuildLookup([]CandidateSkill{{SkillName: "SQL", ProficiencyLevel: 4}})

	score, matched := ScoreSkills(lookup, []string{"PostgreSQL"})
	require.Equal(t, []string{"PostgreSQL"}, matched)

	// Substring match contributes proficiency/10: 0.6*1 + 0.4*0.4 = 0.76
	require.Equal(t, 0.76, score)
}

func TestScoreSkills_ExactBeatsSubstringForSameProficiency(t *testing.T) {
	lookup := BuildLookup([]CandidateSkill{{SkillName: "Python", ProficiencyLevel: 3}})

	exact, _ := ScoreSkills(lookup, []string{"Python"})
	partial, _ := ScoreSkills(lookup, []string{"Python developer tools"})
	require.GreaterOrEqual(t, exact, partial)
}

func TestScoreSkills_PostingSkillMatchedOnce(t *testing.T) {
	// "Go" is a substring of both candidate skills; it must be counted once.
	lookup := BuildLookup([]CandidateSkill{
		{SkillName: "Golang", ProficiencyLevel: 5},
		{SkillName: "Google Cloud", ProficiencyLevel: 5},
	})

	_, matched := ScoreSkills(lookup, []string{"Go"})
	require.Equal(t, []string{"Go"}, matched)
}

func TestScoreSkills_NoMatches(t *testing.T) {
	score, matched := ScoreSkills(frontendLookup(), []string{"Kubernetes"})
	require.Equal(t, 0.0, score)
	require.Empty(t, matched)
}

func TestScoreSkills_ScoreWithinUnitInterval(t *testing.T) {
	lookups := []Lookup{
		{},
		frontendLookup(),
		BuildLookup([]CandidateSkill{{SkillName: "SQL", ProficiencyLevel: 1}}),
	}
	postings := [][]string{
		nil,
		{"JavaScript"},
		{"SQL", "NoSQL", "PostgreSQL", "MySQL"},
	}

	for _, l := range lookups {
		for _, ps := range postings {
			score, _ := ScoreSkills(l, ps)
			require.GreaterOrEqual(t, score, 0.0)
			require.LessOrEqual(t, score, 1.0)
		}
	}
}

func TestBuildLookup_Normalization(t *testing.T) {
	lookup := BuildLookup([]CandidateSkill{
		{SkillName: "  Python  ", ProficiencyLevel: 0},  // defaults to 1
		{SkillName: "python", ProficiencyLevel: 5},      // duplicate, first wins
		{SkillName: "", ProficiencyLevel: 3},            // dropped
		{SkillName: "Django", ProficiencyLevel: 9},      // clamped to 5
	})

	require.Equal(t, 2, lookup.Len())
	require.Equal(t, []string{"python", "django"}, lookup.Names())

	// Proficiency defaulted to 1: 0.6*1 + 0.4*0.2 = 0.68
	score, _ := ScoreSkills(lookup, []string{"Python"})
	require.Equal(t, 0.68, score)

	// Clamped to 5: 0.6*1 + 0.4*1.0 = 1.0
	score, _ = ScoreSkills(lookup, []string{"Django"})
	require.Equal(t, 1.0, score)
}
