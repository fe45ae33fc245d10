package dto

import "github.com/google/uuid"

type StatsResponse struct {
	CandidateID   uuid.UUID      `json:"candidate_id"`
	Count         int            `json:"total_recommendations"`
	AvgFinal      float64        `json:"avg_score"`
	MaxFinal      float64        `json:"max_score"`
	MinFinal      float64        `json:"min_score"`
	AvgSkill      float64        `json:"avg_skill_score"`
	RoleHistogram map[string]int `json:"role_distribution"`
	TopCompanies  map[string]int `json:"top_companies"`
}
