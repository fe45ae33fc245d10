package headhunter

import "time"

// publishedAtLayout is HeadHunter's ISO-8601 variant with a colon-less zone.
const publishedAtLayout = "2006-01-02T15:04:05-0700"

type searchResponse struct {
	Items   []SearchItem `json:"items"`
	Found   int          `json:"found"`
	Pages   int          `json:"pages"`
	Page    int          `json:"page"`
	PerPage int          `json:"per_page"`
}

type SearchItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Employer struct {
		ID   string `json:"id"`
		Name string `json:"name"`
		URL  string `json:"alternate_url"`
	} `json:"employer"`
	Area struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"area"`
	PublishedAt string `json:"published_at"`
}

type VacancyDetail struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Salary struct {
		From     int    `json:"from"`
		To       int    `json:"to"`
		Currency string `json:"currency"`
	} `json:"salary"`
	Experience struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"experience"`
	Description string `json:"description"`
	KeySkills   []struct {
		Name string `json:"name"`
	} `json:"key_skills"`
	AlternateURL string `json:"alternate_url"`
	PublishedAt  string `json:"published_at"`
}

func parsePublishedAt(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	if t, err := time.Parse(publishedAtLayout, raw); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t
	}
	return time.Time{}
}
