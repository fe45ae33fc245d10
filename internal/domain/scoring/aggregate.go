package scoring

// Weights blend the five sub-scores into the final score. They are
// configuration, not constants; config.Load validates they sum to 1.0.
type Weights struct {
	Skill      float64
	Salary     float64
	Experience float64
	Role       float64
	Text       float64
}

func DefaultWeights() Weights {
	return Weights{
		Skill:      0.4,
		Salary:     0.1,
		Experience: 0.2,
		Role:       0.2,
		Text:       0.1,
	}
}

func (w Weights) Aggregate(skill, salary, experience, role, text float64) float64 {
	return round3(
		skill*w.Skill +
			salary*w.Salary +
			experience*w.Experience +
			role*w.Role +
			text*w.Text,
	)
}
