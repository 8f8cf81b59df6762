// Package aggregator runs one batch: fetch every configured source, filter
// entries by keyword, merge the results and replace the snapshot file.
package aggregator

import (
	"context"

	log "github.com/sirupsen/logrus"

	"newswatch/config"
	"newswatch/feed"
	"newswatch/fetcher"
	"newswatch/filter"
	"newswatch/models"
	"newswatch/snapshot"
)

// Run executes a single batch over cfg. Sources are fetched sequentially with
// a per-source timeout; a failing source is logged and skipped so one bad
// feed never aborts the run. Only a broken config or an unwritable snapshot
// return an error.
func Run(ctx context.Context, cfg *config.Config) (models.RunStats, error) {
	stats := models.RunStats{Sources: len(cfg.Sources)}

	fetchers, err := fetcher.ForSources(cfg.Sources, cfg.Timeout())
	if err != nil {
		return stats, err
	}

	matcher := filter.NewMatcher(cfg.Keywords)

	lists := make([][]models.Entry, 0, len(cfg.Sources))
	for _, source := range cfg.Sources {
		fetchCtx, cancel := context.WithTimeout(ctx, cfg.Timeout())
		entries, err := fetchers[source.Type].Fetch(fetchCtx, source)
		cancel()
		if err != nil {
			stats.Failed++
			log.WithFields(log.Fields{
				"source": source.Name(),
				"error":  err,
			}).Warn("Skipping source")
			continue
		}
		stats.Fetched += len(entries)

		kept := make([]models.Entry, 0, len(entries))
		for _, entry := range entries {
			matched := matcher.Match(entry)
			if len(matched) == 0 && !matcher.Empty() {
				continue
			}
			entry.Matched = matched
			kept = append(kept, entry)
		}
		stats.Matched += len(kept)

		log.WithFields(log.Fields{
			"source":  source.Name(),
			"fetched": len(entries),
			"kept":    len(kept),
		}).Info("Fetched source")

		lists = append(lists, kept)
	}

	merged := feed.Merge(lists, cfg.MaxItems)
	stats.Written = len(merged)

	if err := snapshot.Write(cfg.Output, merged); err != nil {
		return stats, err
	}

	log.WithFields(log.Fields{
		"sources": stats.Sources,
		"failed":  stats.Failed,
		"written": stats.Written,
		"output":  cfg.Output,
	}).Info("Snapshot written")

	return stats, nil
}
