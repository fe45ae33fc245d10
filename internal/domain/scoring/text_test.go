package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTextScorer_EmptyInputsAreNeutral(t *testing.T) {
	var s TextScorer

	score, err := s.Score(nil, "some description")
	require.NoError(t, err)
	require.Equal(t, 0.5, score)

	score, err = s.Score([]string{"python"}, "   ")
	require.NoError(t, err)
	require.Equal(t, 0.5, score)
}

func TestTextScorer_IdenticalDocuments(t *testing.T) {
	var s TextScorer

	score, err := s.Score([]string{"python", "sql"}, "python sql")
	require.NoError(t, err)
	require.Equal(t, 1.0, score)
}

func TestTextScorer_DisjointDocuments(t *testing.T) {
	var s TextScorer

	score, err := s.Score([]string{"python", "sql"}, "маркетинг продажи переговоры")
	require.NoError(t, err)
	require.Equal(t, 0.0, score)
}

func TestTextScorer_PartialOverlapBetweenExtremes(t *testing.T) {
	var s TextScorer

	score, err := s.Score([]string{"python", "sql"}, "python разработка сервисов")
	require.NoError(t, err)
	require.Greater(t, score, 0.0)
	require.Less(t, score, 1.0)
}

func TestTextScorer_StopWordsIgnored(t *testing.T) {
	var s TextScorer

	with, err := s.Score([]string{"python"}, "опыт работы с python и sql")
	require.NoError(t, err)
	without, err := s.Score([]string{"python"}, "опыт работы python sql")
	require.NoError(t, err)
	require.Equal(t, without, with)
}

func TestTextScorer_DegenerateCorpus(t *testing.T) {
	var s TextScorer

	// Description survives TrimSpace but tokenizes to nothing: stop words
	// and single-rune terms only.
	score, err := s.Score([]string{"python"}, "и не на a x !")
	require.ErrorIs(t, err, ErrDegenerateCorpus)
	require.Equal(t, 0.0, score)
}

func TestTextScorer_DescriptionTruncated(t *testing.T) {
	var s TextScorer

	// The only shared term sits past the 1000-rune cutoff.
	desc := strings.Repeat("маркетинг ", 100) + "python"
	score, err := s.Score([]string{"python"}, desc)
	require.NoError(t, err)
	require.Equal(t, 0.0, score)
}

func TestTextScorer_Deterministic(t *testing.T) {
	var s TextScorer

	skills := []string{"go", "postgresql", "docker"}
	desc := "Разработка бэкенда на go, postgresql и docker в команде"

	first, err := s.Score(skills, desc)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := s.Score(skills, desc)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}
