package filter

import (
	"strings"

	"newswatch/models"
)

// Matcher tests entries against a fixed keyword set. Plain keywords match as
// case-insensitive substrings; keywords wrapped in double quotes match as a
// whole phrase. Blank keywords are dropped at construction.
type Matcher struct {
	keywords []keyword
}

type keyword struct {
	// original is the configured spelling, reported back on matches
	original string
	needle   string
}

func NewMatcher(keywords []string) *Matcher {
	m := &Matcher{}
	for _, raw := range keywords {
		cleaned := strings.TrimSpace(raw)
		if cleaned == "" {
			continue
		}
		needle := cleaned
		if len(needle) > 1 && strings.HasPrefix(needle, `"`) && strings.HasSuffix(needle, `"`) {
			needle = needle[1 : len(needle)-1]
		}
		needle = strings.ToLower(strings.TrimSpace(needle))
		if needle == "" {
			continue
		}
		m.keywords = append(m.keywords, keyword{original: cleaned, needle: needle})
	}
	return m
}

// Empty reports whether no usable keywords are configured. An empty keyword
// set means "no filter": the aggregator passes every entry through.
func (m *Matcher) Empty() bool {
	return len(m.keywords) == 0
}

// Match returns the keywords that appear in the entry's title or summary.
func (m *Matcher) Match(entry models.Entry) []string {
	haystack := strings.ToLower(entry.Title + "\n" + entry.Summary)
	var matched []string
	for _, kw := range m.keywords {
		if strings.Contains(haystack, kw.needle) {
			matched = append(matched, kw.original)
		}
	}
	return matched
}
