package linkedin

import (
	"fmt"

	"internhunt/internal/domain"
	"internhunt/internal/scrape/markup"
	"internhunt/internal/scrape/types"
	"internhunt/internal/scrape/util"
)

// Structural markers of one posting card on the search-results page. These
// belong to the site, not to us; when they drift, parsing fails loudly.
const (
	selCard     = "div.job-search-card"
	selTitle    = "h3.base-search-card__title"
	selCompany  = "h4.base-search-card__subtitle"
	selLocation = "span.job-search-card__location"
	selLink     = "a.base-card__full-link"
	selPosted   = "time"
)

// parseCard extracts one offer from a posting card. Title, company and
// location are mandatory; link and posted date default to empty when the card
// lacks them.
func parseCard(card markup.Fragment) (domain.JobOffer, error) {
	title, err := mandatoryText(card, selTitle, "title")
	if err != nil {
		return domain.JobOffer{}, err
	}
	company, err := mandatoryText(card, selCompany, "company name")
	if err != nil {
		return domain.JobOffer{}, err
	}
	location, err := mandatoryText(card, selLocation, "location")
	if err != nil {
		return domain.JobOffer{}, err
	}

	var url string
	if link, ok := card.First(selLink); ok {
		url, _ = link.Attr("href")
	}

	var posted string
	if el, ok := card.First(selPosted); ok {
		posted, _ = el.Attr("datetime")
	}

	return domain.JobOffer{
		Title:       title,
		CompanyName: company,
		Location:    location,
		PostedDate:  posted,
		URL:         url,
	}, nil
}

func mandatoryText(card markup.Fragment, selector, field string) (string, error) {
	el, ok := card.First(selector)
	if !ok {
		return "", &types.ParseError{
			Card: cardID(card),
			Err:  fmt.Errorf("missing %s element %q", field, selector),
		}
	}
	text := util.CleanText(el.Text())
	if text == "" {
		return "", &types.ParseError{
			Card: cardID(card),
			Err:  fmt.Errorf("empty %s element %q", field, selector),
		}
	}
	return text, nil
}

// cardID gives a short label for error messages, preferring the title since
// that is usually what survives markup drift.
func cardID(card markup.Fragment) string {
	if el, ok := card.First(selTitle); ok {
		if t := util.CleanText(el.Text()); t != "" {
			return t
		}
	}
	if el, ok := card.First(selLink); ok {
		if href, ok := el.Attr("href"); ok {
			return href
		}
	}
	return ""
}
