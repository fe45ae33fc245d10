package handler

import (
	"errors"
	"strconv"

	"vacancy-match/internal/delivery/http/dto"
	"vacancy-match/internal/delivery/http/middleware"
	"vacancy-match/internal/pkg/response"
	"vacancy-match/internal/repository"
	"vacancy-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type RecommendationHandler struct {
	recommender usecase.RecommendationUsecase
	stats       usecase.StatsUsecase
}

func NewRecommendationHandler(recommender usecase.RecommendationUsecase, stats usecase.StatsUsecase) *RecommendationHandler {
	return &RecommendationHandler{recommender: recommender, stats: stats}
}

func (h *RecommendationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	candidates := r.Group("/candidates")
	candidates.Get("/:id/recommendations", h.GetRecommendations)
	candidates.Get("/:id/recommendations/stats", h.GetStats)

	roles := r.Group("/roles")
	roles.Get("/:id/postings", h.GetRolePostings)
}

func (h *RecommendationHandler) GetRecommendations(c fiber.Ctx) error {
	candidateID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid candidate id", nil, err)
	}

	params := usecase.RecommendationParams{
		Limit: parseQueryInt(c, "limit", 0),
	}
	if raw := c.Query("min_score"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 || v > 1 {
			return middleware.NewAppError(fiber.StatusBadRequest, "min_score must be within [0,1]", nil, err)
		}
		params.MinScore = &v
	}

	items, err := h.recommender.RecommendForCandidate(c.Context(), candidateID, params)
	if err != nil {
		return mapRecommendationError(err)
	}

	out := make([]dto.RecommendationResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toRecommendationResponse(it))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *RecommendationHandler) GetStats(c fiber.Ctx) error {
	candidateID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid candidate id", nil, err)
	}

	stats, err := h.stats.StatsForCandidate(c.Context(), candidateID)
	if err != nil {
		return mapRecommendationError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.StatsResponse{
		CandidateID:   candidateID,
		Count:         stats.Count,
		AvgFinal:      stats.AvgFinal,
		MaxFinal:      stats.MaxFinal,
		MinFinal:      stats.MinFinal,
		AvgSkill:      stats.AvgSkill,
		RoleHistogram: stats.RoleHistogram,
		TopCompanies:  stats.TopCompanies,
	})
}

func (h *RecommendationHandler) GetRolePostings(c fiber.Ctx) error {
	roleID, err := strconv.Atoi(c.Params("id"))
	if err != nil || roleID <= 0 {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid role id", nil, err)
	}

	limit := parseQueryInt(c, "limit", 0)
	postings, err := h.recommender.RecommendForRole(c.Context(), roleID, limit)
	if err != nil {
		return mapRecommendationError(err)
	}

	out := make([]dto.PostingResponse, 0, len(postings))
	for _, p := range postings {
		out = append(out, toPostingResponse(p))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func toRecommendationResponse(it usecase.Recommendation) dto.RecommendationResponse {
	return dto.RecommendationResponse{
		PostingID:   it.Posting.ID,
		ExternalID:  it.Posting.ExternalID,
		Title:       it.Posting.Title,
		CompanyName: it.Posting.CompanyName,
		RegionName:  it.Posting.RegionName,
		RoleName:    it.Posting.RoleName,
		SalaryFrom:  it.Posting.SalaryFrom,
		SalaryTo:    it.Posting.SalaryTo,
		Currency:    it.Posting.Currency,
		Experience:  it.Posting.Experience,
		URL:         it.Posting.URL,
		PublishedAt: it.Posting.PublishedAt,
		Scores: dto.ScoreBreakdownResponse{
			Final:      it.Breakdown.Final,
			Skill:      it.Breakdown.Skill,
			Salary:     it.Breakdown.Salary,
			Experience: it.Breakdown.Experience,
			Role:       it.Breakdown.Role,
			Text:       it.Breakdown.Text,
		},
		MatchedSkills: it.MatchedSkills,
		TotalSkills:   it.TotalSkills,
	}
}

func toPostingResponse(p repository.Posting) dto.PostingResponse {
	return dto.PostingResponse{
		PostingID:   p.ID,
		ExternalID:  p.ExternalID,
		Title:       p.Title,
		CompanyName: p.CompanyName,
		RegionName:  p.RegionName,
		RoleName:    p.RoleName,
		SalaryFrom:  p.SalaryFrom,
		SalaryTo:    p.SalaryTo,
		Currency:    p.Currency,
		Experience:  p.Experience,
		URL:         p.URL,
		PublishedAt: p.PublishedAt,
	}
}

func parseQueryInt(c fiber.Ctx, key string, defaultVal int) int {
	s := c.Query(key)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return defaultVal
	}
	return v
}

func mapRecommendationError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrCandidateNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Candidate not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidRole):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid business role", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
