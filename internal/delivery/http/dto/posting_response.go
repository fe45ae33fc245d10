package dto

import (
	"time"

	"github.com/google/uuid"
)

type PostingResponse struct {
	PostingID   uuid.UUID `json:"posting_id"`
	ExternalID  string    `json:"external_id,omitempty"`
	Title       string    `json:"title"`
	CompanyName string    `json:"company_name"`
	RegionName  string    `json:"region_name"`
	RoleName    string    `json:"role_name"`
	SalaryFrom  *int      `json:"salary_from"`
	SalaryTo    *int      `json:"salary_to"`
	Currency    string    `json:"currency,omitempty"`
	Experience  string    `json:"experience,omitempty"`
	URL         string    `json:"url,omitempty"`
	PublishedAt time.Time `json:"published_at"`
}
