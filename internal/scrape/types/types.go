package types

import (
	"fmt"

	"internhunt/internal/domain"
)

// Location is one search target: the site's geo identifier plus the display
// name used for logging and config.
type Location struct {
	GeoID string
	Name  string
}

func (l Location) String() string { return fmt.Sprintf("%s (geoId=%s)", l.Name, l.GeoID) }

// Result is what one location's fetch produced.
type Result struct {
	Location Location
	Offers   []domain.JobOffer
	Err      error
}

// ValidationError means a fetch was called with unusable input; no request was
// made.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid fetch input: %s must be non-empty", e.Field)
}

// ScrapeError is a non-success HTTP response for a search request.
type ScrapeError struct {
	URL    string
	Status int
}

func (e *ScrapeError) Error() string {
	return fmt.Sprintf("error while requesting %s: status %d", e.URL, e.Status)
}

// ParseError means a posting card did not match the expected markup. It keeps
// the underlying failure as a cause for diagnostics.
type ParseError struct {
	Card string // short identifier of the failing card, best effort
	Err  error
}

func (e *ParseError) Error() string {
	if e.Card != "" {
		return fmt.Sprintf("error while parsing job card %q: %v", e.Card, e.Err)
	}
	return fmt.Sprintf("error while parsing job card: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
