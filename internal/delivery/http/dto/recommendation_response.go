package dto

import (
	"time"

	"github.com/google/uuid"
)

type ScoreBreakdownResponse struct {
	Final      float64 `json:"final_score"`
	Skill      float64 `json:"skill_score"`
	Salary     float64 `json:"salary_score"`
	Experience float64 `json:"experience_score"`
	Role       float64 `json:"role_score"`
	Text       float64 `json:"text_similarity"`
}

type RecommendationResponse struct {
	PostingID     uuid.UUID              `json:"posting_id"`
	ExternalID    string                 `json:"external_id,omitempty"`
	Title         string                 `json:"title"`
	CompanyName   string                 `json:"company_name"`
	RegionName    string                 `json:"region_name"`
	RoleName      string                 `json:"role_name"`
	SalaryFrom    *int                   `json:"salary_from"`
	SalaryTo      *int                   `json:"salary_to"`
	Currency      string                 `json:"currency,omitempty"`
	Experience    string                 `json:"experience,omitempty"`
	URL           string                 `json:"url,omitempty"`
	PublishedAt   time.Time              `json:"published_at"`
	Scores        ScoreBreakdownResponse `json:"scores"`
	MatchedSkills []string               `json:"matched_skills"`
	TotalSkills   int                    `json:"total_skills"`
}
