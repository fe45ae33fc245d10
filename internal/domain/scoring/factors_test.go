package scoring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScoreSalary(t *testing.T) {
	from := 100000
	to := 150000

	require.Equal(t, 1.0, ScoreSalary(&from, &to))
	require.Equal(t, 1.0, ScoreSalary(&from, nil))
	require.Equal(t, 1.0, ScoreSalary(nil, &to))
	require.Equal(t, 0.5, ScoreSalary(nil, nil))
}

func TestExperiencePolicy_Score(t *testing.T) {
	policy := DefaultExperiencePolicy()

	tests := []struct {
		band string
		want float64
	}{
		{"менее года", 1.0},
		{"нет опыта", 0.75},
		{"от 1 года до 3 лет", 0.75},
		{"от 3 до 6 лет", 0.5},
		{"более 6 лет", 0.25},
		{"10+ years", 0.75}, // unknown band falls back to the default level
		{"", 0.7},
		{"   ", 0.7},
		{"Нет опыта", 0.75}, // case-insensitive
	}

	for _, tc := range tests {
		require.Equal(t, tc.want, policy.Score(tc.band), "band %q", tc.band)
	}
}

func TestRoleGraph_Score(t *testing.T) {
	graph := DefaultRoleGraph()

	frontend := 2
	backend := 3
	devops := 5
	pm := 7
	none := 0

	require.Equal(t, 0.5, graph.Score(nil, backend))
	require.Equal(t, 0.5, graph.Score(&none, backend))
	require.Equal(t, 1.0, graph.Score(&frontend, frontend))
	require.Equal(t, 0.7, graph.Score(&frontend, backend))
	require.Equal(t, 0.3, graph.Score(&frontend, devops))
	require.Equal(t, 0.3, graph.Score(&pm, backend))
}

func TestRoleGraph_Directed(t *testing.T) {
	graph := DefaultRoleGraph()

	// DevOps lists Backend as adjacent but Backend does not list DevOps.
	devops := 5
	backend := 3
	require.Equal(t, 0.7, graph.Score(&devops, backend))
	require.Equal(t, 0.3, graph.Score(&backend, devops))
}
