package scoring

import (
	"errors"
	"math"
	"strings"
	"unicode"
)

// ErrDegenerateCorpus signals that one of the two documents produced no terms
// after tokenization and stop-word filtering. Callers fall back to the neutral
// 0.5 and log the failure instead of swallowing it.
var ErrDegenerateCorpus = errors.New("text similarity: degenerate corpus")

const descriptionLimit = 1000

// TextScorer computes TF-IDF cosine similarity over exactly two documents:
// the candidate's concatenated skill names and the posting description. The
// vocabulary is rebuilt per call, so no state leaks between scoring calls and
// a zero-value TextScorer is safe to share.
type TextScorer struct {
	// StopWords defaults to the built-in Russian+English list when nil.
	StopWords map[string]struct{}
}

// Score returns the neutral 0.5 (without error) when either input is empty.
// With two docs the signal is inherently weak; it is weighted accordingly.
func (s TextScorer) Score(skillNames []string, description string) (float64, error) {
	if len(skillNames) == 0 || strings.TrimSpace(description) == "" {
		return 0.5, nil
	}

	stop := s.StopWords
	if stop == nil {
		stop = defaultStopWords
	}

	candidateDoc := tokenize(strings.Join(skillNames, " "), stop)
	postingDoc := tokenize(truncateRunes(description, descriptionLimit), stop)
	if len(candidateDoc) == 0 || len(postingDoc) == 0 {
		return 0, ErrDegenerateCorpus
	}

	sim := cosine(tfidfVectors(candidateDoc, postingDoc))
	return round3(sim), nil
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

// tokenize lowercases and extracts terms of at least two letters/digits.
func tokenize(text string, stop map[string]struct{}) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if len([]rune(f)) < 2 {
			continue
		}
		if _, skip := stop[f]; skip {
			continue
		}
		out = append(out, f)
	}
	return out
}

// tfidfVectors builds l2-normalized term-frequency vectors over the shared
// two-document vocabulary, with smoothed inverse document frequency.
func tfidfVectors(docA, docB []string) (map[string]float64, map[string]float64) {
	tfA := termCounts(docA)
	tfB := termCounts(docB)

	const nDocs = 2.0
	idf := func(term string) float64 {
		df := 0.0
		if tfA[term] > 0 {
			df++
		}
		if tfB[term] > 0 {
			df++
		}
		return math.Log((1+nDocs)/(1+df)) + 1
	}

	vecA := make(map[string]float64, len(tfA))
	for term, count := range tfA {
		vecA[term] = float64(count) * idf(term)
	}
	vecB := make(map[string]float64, len(tfB))
	for term, count := range tfB {
		vecB[term] = float64(count) * idf(term)
	}

	normalize(vecA)
	normalize(vecB)
	return vecA, vecB
}

func termCounts(doc []string) map[string]int {
	counts := make(map[string]int, len(doc))
	for _, t := range doc {
		counts[t]++
	}
	return counts
}

func normalize(vec map[string]float64) {
	var sum float64
	for _, v := range vec {
		sum += v * v
	}
	if sum == 0 {
		return
	}
	norm := math.Sqrt(sum)
	for t, v := range vec {
		vec[t] = v / norm
	}
}

func cosine(a, b map[string]float64) float64 {
	var dot float64
	for t, v := range a {
		dot += v * b[t]
	}
	if dot > 1 {
		dot = 1
	}
	if dot < 0 {
		dot = 0
	}
	return dot
}

var defaultStopWords = buildStopWords(
	// Russian
	"и", "в", "во", "не", "что", "он", "на", "я", "с", "со", "как", "а", "то",
	"все", "она", "так", "его", "но", "да", "ты", "к", "у", "же", "вы", "за",
	"бы", "по", "ее", "мне", "было", "вот", "от", "меня", "еще", "нет", "о",
	"из", "ему", "теперь", "когда", "даже", "ну", "вдруг", "ли", "если", "уже",
	"или", "ни", "быть", "был", "него", "до", "вас", "нибудь", "опять", "уж",
	"вам", "для", "мы", "тебя", "их", "чем", "была", "сам", "чтоб", "без",
	"будто", "чего", "раз", "тоже", "себе", "под", "будет", "тогда", "кто",
	"этот", "при", "наш", "это", "мой", "может", "они", "есть", "надо", "ней",
	"них", "нас", "об", "том", "эти", "также", "только", "очень",
	// English
	"a", "an", "and", "are", "as", "at", "be", "but", "by", "for", "if", "in",
	"into", "is", "it", "no", "not", "of", "on", "or", "such", "that", "the",
	"their", "then", "there", "these", "they", "this", "to", "was", "will",
	"with", "you", "your", "we", "our", "from", "have", "has",
)

func buildStopWords(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}
