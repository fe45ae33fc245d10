package scoring

import "math"

// CandidateSkill is one declared skill with a 1..5 proficiency level.
type CandidateSkill struct {
	SkillName        string
	ProficiencyLevel int
}

// Breakdown holds the five sub-scores and the weighted final score.
// Every field lies in [0,1].
type Breakdown struct {
	Final      float64
	Skill      float64
	Salary     float64
	Experience float64
	Role       float64
	Text       float64
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
