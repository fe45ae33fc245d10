package headhunter

import (
	"context"
	"regexp"
	"strings"

	"vacancy-match/internal/usecase"

	"golang.org/x/sync/errgroup"
)

// detailFetchLimit bounds concurrent detail requests per search query; the
// HH API rate-limits aggressive clients.
const detailFetchLimit = 4

var tagRe = regexp.MustCompile(`<[^>]+>`)

// Source adapts the HH client to the ingestion port.
type Source struct {
	client *Client
}

func NewSource(client *Client) *Source {
	return &Source{client: client}
}

func (s *Source) FetchPostings(ctx context.Context, searchText string) ([]usecase.SourcePosting, error) {
	items, err := s.client.SearchVacancies(ctx, searchText)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}

	out := make([]usecase.SourcePosting, len(items))
	ok := make([]bool, len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(detailFetchLimit)
	for i, item := range items {
		g.Go(func() error {
			detail, err := s.client.GetVacancy(gctx, item.ID)
			if err != nil {
				// One missing detail should not sink the whole batch.
				s.client.logger.Printf("[HH] detail fetch failed: vacancy=%s err=%v", item.ID, err)
				return nil
			}

			out[i] = toSourcePosting(item, detail)
			ok[i] = true
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	kept := make([]usecase.SourcePosting, 0, len(items))
	for i := range out {
		if ok[i] {
			kept = append(kept, out[i])
		}
	}
	return kept, nil
}

func toSourcePosting(item SearchItem, detail VacancyDetail) usecase.SourcePosting {
	sp := usecase.SourcePosting{
		ExternalID:        item.ID,
		Title:             item.Name,
		CompanyExternalID: item.Employer.ID,
		CompanyName:       item.Employer.Name,
		CompanyURL:        item.Employer.URL,
		RegionExternalID:  item.Area.ID,
		RegionName:        item.Area.Name,
		Currency:          detail.Salary.Currency,
		Experience:        detail.Experience.Name,
		Description:       stripTags(detail.Description),
		URL:               detail.AlternateURL,
		PublishedAt:       parsePublishedAt(detail.PublishedAt),
	}
	if sp.PublishedAt.IsZero() {
		sp.PublishedAt = parsePublishedAt(item.PublishedAt)
	}
	if detail.Salary.From > 0 {
		v := detail.Salary.From
		sp.SalaryFrom = &v
	}
	if detail.Salary.To > 0 {
		v := detail.Salary.To
		sp.SalaryTo = &v
	}
	for _, ks := range detail.KeySkills {
		if strings.TrimSpace(ks.Name) != "" {
			sp.KeySkills = append(sp.KeySkills, ks.Name)
		}
	}
	return sp
}

// stripTags flattens the HTML description HH returns into plain text for the
// text-similarity scorer.
func stripTags(s string) string {
	return strings.Join(strings.Fields(tagRe.ReplaceAllString(s, " ")), " ")
}
