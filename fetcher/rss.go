package fetcher

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"

	"newswatch/models"
)

// RSSFetcher fetches RSS and Atom feeds using gofeed.
type RSSFetcher struct {
	parser *gofeed.Parser
}

func NewRSSFetcher(timeout time.Duration) *RSSFetcher {
	parser := gofeed.NewParser()
	parser.Client = &http.Client{Timeout: timeout}
	parser.UserAgent = userAgent
	return &RSSFetcher{parser: parser}
}

// Fetch retrieves and parses the feed behind source.URL.
func (f *RSSFetcher) Fetch(ctx context.Context, source models.Source) ([]models.Entry, error) {
	feed, err := f.parser.ParseURLWithContext(source.URL, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed %s: %w", source.URL, err)
	}

	entries := make([]models.Entry, 0, len(feed.Items))
	for _, item := range feed.Items {
		entry := models.Entry{
			Title:  item.Title,
			Link:   item.Link,
			Source: source.Name(),
		}

		summary := item.Description
		if summary == "" {
			summary = item.Content
		}
		entry.Summary = CleanSummary(summary)

		if item.PublishedParsed != nil {
			entry.Published = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			entry.Published = *item.UpdatedParsed
		}

		entries = append(entries, entry)
	}

	return entries, nil
}
