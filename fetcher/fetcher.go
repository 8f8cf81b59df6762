// Package fetcher retrieves raw entries from configured sources. Each source
// type is a strategy behind the same single-method interface, so the HTML
// page fallback can be swapped in per source without special-casing the run.
package fetcher

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"newswatch/models"
)

const userAgent = "newswatch/0.1"

// Feed summaries are bounded so one verbose publisher cannot bloat the snapshot.
const maxSummaryRunes = 1000

// Fetcher retrieves the raw entries for a single source. A failing source
// returns an error and contributes nothing to the run.
type Fetcher interface {
	Fetch(ctx context.Context, source models.Source) ([]models.Entry, error)
}

// ForSources builds one shared fetcher per source type present in sources.
func ForSources(sources []models.Source, timeout time.Duration) (map[models.SourceType]Fetcher, error) {
	fetchers := make(map[models.SourceType]Fetcher)

	for _, source := range sources {
		if _, ok := fetchers[source.Type]; ok {
			continue
		}

		switch source.Type {
		case models.SourceTypeRSS:
			fetchers[source.Type] = NewRSSFetcher(timeout)
		case models.SourceTypeHTML:
			fetchers[source.Type] = NewPageFetcher(timeout)
		default:
			return nil, fmt.Errorf("unknown source type: %s", source.Type)
		}
	}

	return fetchers, nil
}

// CleanSummary strips markup from feed-provided HTML, collapses whitespace
// and truncates the text to the snapshot bound.
func CleanSummary(s string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return truncateRunes(strings.TrimSpace(s), maxSummaryRunes)
	}
	text := strings.Join(strings.Fields(doc.Text()), " ")
	return truncateRunes(text, maxSummaryRunes)
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
