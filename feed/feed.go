// Package feed merges the per-source entry lists into the final snapshot
// order: deduplicated by link, newest first, optionally truncated.
package feed

import (
	"sort"

	"github.com/samber/lo"

	"newswatch/models"
)

// Merge flattens lists in source order, drops duplicate links (first
// occurrence wins, so the earlier-listed source is authoritative), sorts by
// publication time descending with unknown dates last, and truncates to
// maxItems when maxItems > 0.
func Merge(lists [][]models.Entry, maxItems int) []models.Entry {
	merged := lo.UniqBy(lo.Flatten(lists), identity)

	sort.SliceStable(merged, func(i, j int) bool {
		a, b := merged[i], merged[j]
		switch {
		case a.Published.IsZero():
			return false
		case b.Published.IsZero():
			return true
		default:
			return a.Published.After(b.Published)
		}
	})

	if maxItems > 0 && len(merged) > maxItems {
		merged = merged[:maxItems]
	}
	return merged
}

// identity is the dedupe key. Entries without a link are keyed by source and
// title instead so they do not collapse into each other.
func identity(e models.Entry) string {
	if e.Link != "" {
		return e.Link
	}
	return e.Source + "\x00" + e.Title
}
