package models

import "time"

// SourceType selects the fetch strategy for a source.
type SourceType string

const (
	SourceTypeRSS  SourceType = "rss"
	SourceTypeHTML SourceType = "html"
)

// Source is one configured feed. Loaded from the config file at startup and
// never mutated afterwards.
type Source struct {
	URL   string     `toml:"url"`
	Label string     `toml:"label"`
	Type  SourceType `toml:"type"`
}

// Name returns the label to attribute entries to, falling back to the URL.
func (s Source) Name() string {
	if s.Label != "" {
		return s.Label
	}
	return s.URL
}

// Entry is a single item pulled from a source. Link is the identity used for
// deduplication. Matched holds the keywords that matched this entry.
type Entry struct {
	Title     string
	Link      string
	Summary   string
	Published time.Time
	Source    string
	Matched   []string
}

// Item is the wire form of an Entry as written to the snapshot file.
// Published is RFC3339 or the empty string when the feed gave no usable date.
type Item struct {
	Title     string   `json:"title"`
	Link      string   `json:"link"`
	Summary   string   `json:"summary"`
	Published string   `json:"published"`
	Source    string   `json:"source"`
	Matched   []string `json:"matched"`
}

// ToItem converts an Entry to its snapshot representation.
func (e Entry) ToItem() Item {
	published := ""
	if !e.Published.IsZero() {
		published = e.Published.UTC().Format(time.RFC3339)
	}
	matched := e.Matched
	if matched == nil {
		matched = []string{}
	}
	return Item{
		Title:     e.Title,
		Link:      e.Link,
		Summary:   e.Summary,
		Published: published,
		Source:    e.Source,
		Matched:   matched,
	}
}

// RunStats summarizes a single batch run for logging.
type RunStats struct {
	Sources int
	Failed  int
	Fetched int
	Matched int
	Written int
}
