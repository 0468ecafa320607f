// Package store keeps the offers collected during one run, deduplicated by
// content hash. Nothing survives the process; every run starts empty.
package store

import (
	"sort"

	"internhunt/internal/domain"
)

type Repository struct {
	byHash map[string]domain.JobOffer
}

func NewRepository() *Repository {
	return &Repository{byHash: make(map[string]domain.JobOffer)}
}

// AddJobs inserts every offer whose hash is not present yet. The first offer
// seen for a hash wins; later duplicates never overwrite it. Returns how many
// offers were new and the total stored afterwards.
//
// Not safe for concurrent use: the orchestrator merges results sequentially
// after all fetches have finished.
func (r *Repository) AddJobs(offers []domain.JobOffer) (added, total int) {
	for _, offer := range offers {
		h := offer.Hash()
		if _, ok := r.byHash[h]; ok {
			continue
		}
		r.byHash[h] = offer
		added++
	}
	return added, len(r.byHash)
}

// AllJobs returns every stored offer, sorted by hash so export output is
// deterministic across runs.
func (r *Repository) AllJobs() []domain.JobOffer {
	hashes := make([]string, 0, len(r.byHash))
	for h := range r.byHash {
		hashes = append(hashes, h)
	}
	sort.Strings(hashes)

	out := make([]domain.JobOffer, 0, len(hashes))
	for _, h := range hashes {
		out = append(out, r.byHash[h])
	}
	return out
}

func (r *Repository) Len() int { return len(r.byHash) }
