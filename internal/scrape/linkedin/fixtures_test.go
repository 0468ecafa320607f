package linkedin

import (
	"fmt"
	"strings"
)

// cardHTML builds one posting-card fragment in the site's markup. Empty title,
// company or location omits that element entirely.
func cardHTML(title, company, location, href, datetime string) string {
	var b strings.Builder
	b.WriteString(`<div class="base-card job-search-card">`)
	if href != "" {
		fmt.Fprintf(&b, `<a class="base-card__full-link" href="%s"></a>`, href)
	}
	if title != "" {
		fmt.Fprintf(&b, `<h3 class="base-search-card__title"> %s </h3>`, title)
	}
	if company != "" {
		fmt.Fprintf(&b, `<h4 class="base-search-card__subtitle"> %s </h4>`, company)
	}
	if location != "" {
		fmt.Fprintf(&b, `<span class="job-search-card__location">%s</span>`, location)
	}
	if datetime != "" {
		fmt.Fprintf(&b, `<time class="job-search-card__listdate" datetime="%s">3 days ago</time>`, datetime)
	}
	b.WriteString(`</div>`)
	return b.String()
}

func pageHTML(cards ...string) string {
	return `<!DOCTYPE html><html><body><ul>` + strings.Join(cards, "\n") + `</ul></body></html>`
}
