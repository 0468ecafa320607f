package domain

import (
	"crypto/md5"
	"encoding/hex"
)

// JobOffer is one posting pulled off a search-results page. Fields that the
// markup did not provide are left empty. Description is never populated by the
// scrape pipeline today; it exists for later enrichment.
type JobOffer struct {
	Title       string
	CompanyName string
	Location    string
	PostedDate  string // raw datetime attribute from the card, e.g. "2026-05-12"
	URL         string
	Description string
}

// Hash is the dedup key for an offer: md5 over company+title+location, in that
// order. URL and PostedDate are deliberately excluded, so the same role
// re-posted (or re-scraped) under a different link collapses into one entry.
func (j JobOffer) Hash() string {
	sum := md5.Sum([]byte(j.CompanyName + j.Title + j.Location))
	return hex.EncodeToString(sum[:])
}
