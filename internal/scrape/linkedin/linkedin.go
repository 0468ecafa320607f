// Package linkedin fetches job-search result pages and turns their posting
// cards into offers.
package linkedin

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"internhunt/internal/domain"
	"internhunt/internal/scrape/markup"
	"internhunt/internal/scrape/types"
)

type Config struct {
	Host     string            // search endpoint base, no trailing slash
	Headers  map[string]string // sent verbatim on every request
	Keywords string            // search phrase, e.g. "Summer 2026"
}

type Scraper struct {
	cfg Config
	hc  *http.Client
	log *log.Logger
}

// New builds a scraper. The http.Client follows redirects and is safe for
// concurrent use, so one scraper can serve all locations at once. Pass a nil
// logger to use the process default.
func New(cfg Config, logger *log.Logger) *Scraper {
	if logger == nil {
		logger = log.Default()
	}
	return &Scraper{
		cfg: cfg,
		hc:  &http.Client{Timeout: 30 * time.Second},
		log: logger,
	}
}

func (s *Scraper) Name() string { return "linkedin" }

// FetchJobs pulls the first results page for one location and returns every
// accepted, parsed offer. A rejected title just skips the card; a card that
// fails to parse aborts the whole call.
func (s *Scraper) FetchJobs(ctx context.Context, loc types.Location) ([]domain.JobOffer, error) {
	switch {
	case strings.TrimSpace(loc.GeoID) == "":
		return nil, &types.ValidationError{Field: "location geoId"}
	case strings.TrimSpace(loc.Name) == "":
		return nil, &types.ValidationError{Field: "location name"}
	case strings.TrimSpace(s.cfg.Keywords) == "":
		return nil, &types.ValidationError{Field: "keywords"}
	}

	s.log.Printf("[linkedin] fetching jobs at %s with pattern %q", loc.Name, s.cfg.Keywords)

	url := s.searchURL(loc.GeoID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range s.cfg.Headers {
		req.Header.Set(k, v)
	}

	res, err := s.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &types.ScrapeError{URL: url, Status: res.StatusCode}
	}

	root, err := markup.Parse(res.Body)
	if err != nil {
		return nil, &types.ParseError{Err: err}
	}

	var (
		offers   []domain.JobOffer
		parseErr error
		filtered int
		total    int
	)
	root.Each(selCard, func(card markup.Fragment) {
		total++
		if parseErr != nil {
			return
		}

		// A card without a title element means the markup drifted; that is
		// a parse failure, not a filter miss.
		el, ok := card.First(selTitle)
		if !ok {
			parseErr = &types.ParseError{
				Card: cardID(card),
				Err:  fmt.Errorf("missing title element %q", selTitle),
			}
			return
		}
		if !keepTitle(el.Text()) {
			filtered++
			return
		}

		offer, err := parseCard(card)
		if err != nil {
			parseErr = err
			return
		}
		offers = append(offers, offer)
	})
	if parseErr != nil {
		return nil, parseErr
	}

	s.log.Printf("[linkedin] %s: found %d dev jobs out of %d total (filtered out %d)",
		loc.Name, len(offers), total, filtered)

	return offers, nil
}

// searchURL only escapes spaces in the keywords; the site accepts the rest
// verbatim and the original search phrases never need more.
func (s *Scraper) searchURL(geoID string) string {
	keywords := strings.ReplaceAll(s.cfg.Keywords, " ", "%20")
	return s.cfg.Host + "/?keywords=" + keywords + "&geoId=" + geoID
}
