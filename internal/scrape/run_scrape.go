// Package scrape runs the per-location fetch fan-out and merges the results
// into the offer repository.
package scrape

import (
	"context"
	"errors"
	"log"
	"sort"

	"golang.org/x/sync/errgroup"

	"internhunt/internal/config"
	"internhunt/internal/scrape/linkedin"
	"internhunt/internal/scrape/types"
	"internhunt/internal/store"
)

// RunOnce fetches every configured location concurrently, then feeds each
// location's offers into repo sequentially after all fetches have finished,
// so the repository needs no locking.
//
// A failed location is logged and skipped rather than cancelling its siblings;
// an error is returned only when every location failed. Returns the number of
// offers that were new to the repository.
func RunOnce(ctx context.Context, cfg config.Config, repo *store.Repository, logger *log.Logger) (added int, err error) {
	if logger == nil {
		logger = log.Default()
	}

	scraper := linkedin.New(linkedin.Config{
		Host:     cfg.Search.Host,
		Headers:  cfg.Search.Headers,
		Keywords: cfg.Search.Keywords,
	}, logger)

	locations := sortedLocations(cfg.Search.Locations)

	var g errgroup.Group
	results := make([]types.Result, len(locations))

	for i, loc := range locations {
		i, loc := i, loc
		g.Go(func() error {
			offers, err := scraper.FetchJobs(ctx, loc)
			results[i] = types.Result{Location: loc, Offers: offers, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			logger.Printf("[scrape] %s failed: %v", res.Location, res.Err)
			continue
		}
		newJobs, total := repo.AddJobs(res.Offers)
		added += newJobs
		logger.Printf("[scrape] %s: added %d new jobs, %d total in storage",
			res.Location.Name, newJobs, total)
	}

	if failed == len(locations) && failed > 0 {
		return added, errors.New("all locations failed")
	}
	return added, nil
}

// sortedLocations flattens the config map into a stable slice so fan-out and
// merge order do not depend on map iteration.
func sortedLocations(m map[string]string) []types.Location {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]types.Location, 0, len(names))
	for _, name := range names {
		out = append(out, types.Location{GeoID: m[name], Name: name})
	}
	return out
}
