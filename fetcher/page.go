package fetcher

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"newswatch/models"
)

// PageFetcher is the raw HTML fallback for sources that publish no feed.
// It yields one entry per page: the document title plus the joined paragraph
// text. The page URL doubles as the entry link, so reruns dedupe naturally.
type PageFetcher struct {
	client *http.Client
}

func NewPageFetcher(timeout time.Duration) *PageFetcher {
	return &PageFetcher{client: &http.Client{Timeout: timeout}}
}

func (f *PageFetcher) Fetch(ctx context.Context, source models.Source) ([]models.Entry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", source.URL, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch page %s: %w", source.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, source.URL)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page %s: %w", source.URL, err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		title = source.URL
	}

	var paragraphs []string
	doc.Find("p").Each(func(_ int, sel *goquery.Selection) {
		if text := strings.Join(strings.Fields(sel.Text()), " "); text != "" {
			paragraphs = append(paragraphs, text)
		}
	})

	return []models.Entry{{
		Title:   title,
		Link:    source.URL,
		Summary: truncateRunes(strings.Join(paragraphs, " "), maxSummaryRunes),
		Source:  source.Name(),
	}}, nil
}
