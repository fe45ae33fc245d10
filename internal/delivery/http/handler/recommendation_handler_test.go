package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"vacancy-match/internal/delivery/http/middleware"
	"vacancy-match/internal/domain/scoring"
	"vacancy-match/internal/repository"
	"vacancy-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var knownCandidateID = uuid.MustParse("11111111-1111-1111-1111-111111111111")

type stubRecommender struct {
	recs       []usecase.Recommendation
	postings   []repository.Posting
	lastParams usecase.RecommendationParams
}

func (s *stubRecommender) RecommendForCandidate(_ context.Context, candidateID uuid.UUID, params usecase.RecommendationParams) ([]usecase.Recommendation, error) {
	if candidateID != knownCandidateID {
		return nil, usecase.ErrCandidateNotFound
	}
	s.lastParams = params
	return s.recs, nil
}

func (s *stubRecommender) RecommendForRole(_ context.Context, roleID int, _ int) ([]repository.Posting, error) {
	if roleID <= 0 {
		return nil, usecase.ErrInvalidRole
	}
	return s.postings, nil
}

func (s *stubRecommender) StatsForCandidate(ctx context.Context, candidateID uuid.UUID) (usecase.Stats, error) {
	recs, err := s.RecommendForCandidate(ctx, candidateID, usecase.RecommendationParams{})
	if err != nil {
		return usecase.Stats{}, err
	}
	return usecase.Summarize(recs), nil
}

func newTestApp(stub *stubRecommender) *fiber.App {
	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware().Middleware())

	api := app.Group("/api/v1")
	NewRecommendationHandler(stub, stub).RegisterRoutes(api)
	return app
}

func decodeEnvelope(t *testing.T, resp *http.Response) (int, string, json.RawMessage) {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var envelope struct {
		Status  int             `json:"status"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope))
	return envelope.Status, envelope.Message, envelope.Data
}

func sampleRecommendations() []usecase.Recommendation {
	return []usecase.Recommendation{
		{
			Posting: repository.Posting{
				ID:          uuid.New(),
				Title:       "Frontend Developer",
				CompanyName: "Acme",
				RoleName:    "Frontend Developer",
			},
			Breakdown:     scoring.Breakdown{Final: 0.76, Skill: 0.8, Salary: 0.5, Experience: 0.7, Role: 1.0, Text: 0.5},
			MatchedSkills: []string{"JavaScript", "React"},
			TotalSkills:   3,
		},
	}
}

func TestGetRecommendations(t *testing.T) {
	stub := &stubRecommender{recs: sampleRecommendations()}
	app := newTestApp(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/candidates/"+knownCandidateID.String()+"/recommendations?limit=5&min_score=0.4", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	status, message, data := decodeEnvelope(t, resp)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "ok", message)

	require.Equal(t, 5, stub.lastParams.Limit)
	require.NotNil(t, stub.lastParams.MinScore)
	require.Equal(t, 0.4, *stub.lastParams.MinScore)

	var items []map[string]any
	require.NoError(t, json.Unmarshal(data, &items))
	require.Len(t, items, 1)
	require.Equal(t, "Frontend Developer", items[0]["title"])

	scores, ok := items[0]["scores"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, 0.76, scores["final_score"])
	require.Equal(t, 0.8, scores["skill_score"])
	require.Equal(t, 0.5, scores["text_similarity"])
}

func TestGetRecommendations_InvalidCandidateID(t *testing.T) {
	app := newTestApp(&stubRecommender{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/candidates/not-a-uuid/recommendations", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetRecommendations_UnknownCandidate(t *testing.T) {
	app := newTestApp(&stubRecommender{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/candidates/"+uuid.NewString()+"/recommendations", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	status, message, _ := decodeEnvelope(t, resp)
	require.Equal(t, http.StatusNotFound, status)
	require.Equal(t, "Candidate not found", message)
}

func TestGetRecommendations_MinScoreOutOfRange(t *testing.T) {
	app := newTestApp(&stubRecommender{recs: sampleRecommendations()})

	for _, raw := range []string{"1.5", "-0.1", "abc"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/candidates/"+knownCandidateID.String()+"/recommendations?min_score="+raw, nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode, "min_score=%s", raw)
	}
}

func TestGetStats(t *testing.T) {
	app := newTestApp(&stubRecommender{recs: sampleRecommendations()})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/candidates/"+knownCandidateID.String()+"/recommendations/stats", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	_, _, data := decodeEnvelope(t, resp)
	var stats map[string]any
	require.NoError(t, json.Unmarshal(data, &stats))
	require.Equal(t, float64(1), stats["total_recommendations"])
	require.Equal(t, 0.76, stats["max_score"])
}

func TestGetRolePostings(t *testing.T) {
	stub := &stubRecommender{postings: []repository.Posting{{ID: uuid.New(), Title: "Backend Developer"}}}
	app := newTestApp(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/roles/3/postings", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	_, _, data := decodeEnvelope(t, resp)
	var items []map[string]any
	require.NoError(t, json.Unmarshal(data, &items))
	require.Len(t, items, 1)
	require.Equal(t, "Backend Developer", items[0]["title"])
}

func TestGetRolePostings_InvalidRole(t *testing.T) {
	app := newTestApp(&stubRecommender{})

	for _, id := range []string{"0", "-1", "abc"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/roles/"+id+"/postings", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode, "role id %s", id)
	}
}
