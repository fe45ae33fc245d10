package headhunter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"vacancy-match/internal/config"
)

const defaultUserAgent = "vacancy-match/1.0"

// Client talks to the HeadHunter public API. The API requires a descriptive
// User-Agent (HH-User-Agent mirrors it) and paginates search results.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	areaID     int
	perPage    int
	maxPages   int
	logger     *log.Logger
}

func NewClient(cfg config.HeadHunterConfig, logger *log.Logger) *Client {
	if logger == nil {
		logger = log.Default()
	}
	ua := cfg.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	perPage := cfg.PerPage
	if perPage <= 0 || perPage > 100 {
		perPage = 100
	}
	maxPages := cfg.MaxPages
	if maxPages <= 0 {
		maxPages = 5
	}
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    cfg.BaseURL,
		userAgent:  ua,
		areaID:     cfg.AreaID,
		perPage:    perPage,
		maxPages:   maxPages,
		logger:     logger,
	}
}

// SearchVacancies walks the paged /vacancies search for one query.
func (c *Client) SearchVacancies(ctx context.Context, text string) ([]SearchItem, error) {
	items := make([]SearchItem, 0)
	page := 0
	for {
		q := url.Values{}
		q.Set("text", text)
		if c.areaID > 0 {
			q.Set("area", strconv.Itoa(c.areaID))
		}
		q.Set("per_page", strconv.Itoa(c.perPage))
		q.Set("page", strconv.Itoa(page))

		var resp searchResponse
		if err := c.getJSON(ctx, "/vacancies", q, &resp); err != nil {
			return nil, err
		}
		items = append(items, resp.Items...)

		page++
		if page >= resp.Pages || page >= c.maxPages {
			break
		}
	}
	return items, nil
}

// GetVacancy fetches the detail record, which carries salary, experience,
// key skills and the full description the search snippet omits.
func (c *Client) GetVacancy(ctx context.Context, id string) (VacancyDetail, error) {
	var detail VacancyDetail
	if err := c.getJSON(ctx, "/vacancies/"+url.PathEscape(id), nil, &detail); err != nil {
		return VacancyDetail{}, err
	}
	return detail, nil
}

func (c *Client) getJSON(ctx context.Context, path string, q url.Values, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("HH-User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	if q != nil {
		req.URL.RawQuery = q.Encode()
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("headhunter: %s %s: bad status %s: %s", http.MethodGet, req.URL.Path, resp.Status, body)
	}

	return json.NewDecoder(resp.Body).Decode(target)
}
