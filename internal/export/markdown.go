// Package export renders the collected offers as a markdown document.
package export

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"internhunt/internal/domain"
)

var tableHeader = []string{"Company", "Position", "Location", "Posted", "Link"}

// Markdown renders offers as a markdown table and writes it to path.
func Markdown(path string, offers []domain.JobOffer, now time.Time) error {
	return os.WriteFile(path, []byte(Render(offers, now)), 0o644)
}

// Render builds the full document: header, run timestamp, offer table.
func Render(offers []domain.JobOffer, now time.Time) string {
	var b strings.Builder
	b.WriteString("# Internship offers\n\n")
	fmt.Fprintf(&b, "Generated on %s — %d offers.\n\n", now.Format("2006-01-02 15:04 MST"), len(offers))

	if len(offers) == 0 {
		b.WriteString("No offers found.\n")
		return b.String()
	}

	rows := make([][]string, 0, len(offers))
	for _, offer := range offers {
		rows = append(rows, []string{
			cell(offer.CompanyName),
			cell(offer.Title),
			cell(offer.Location),
			cell(offer.PostedDate),
			link(offer),
		})
	}

	b.WriteString(renderTable(tableHeader, rows))
	return b.String()
}

func cell(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "-"
	}
	// pipes would break the table row
	return strings.ReplaceAll(s, "|", "\\|")
}

func link(offer domain.JobOffer) string {
	if strings.TrimSpace(offer.URL) == "" {
		return "-"
	}
	return fmt.Sprintf("[apply](%s)", strings.TrimSpace(offer.URL))
}

// renderTable writes a pipe table with columns padded to equal display width
// so the raw file reads as cleanly as the rendered one.
func renderTable(header []string, rows [][]string) string {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, c := range row {
			if w := runewidth.StringWidth(c); w > widths[i] {
				widths[i] = w
			}
		}
	}
	for i := range widths {
		if widths[i] < 3 {
			widths[i] = 3
		}
	}

	var b strings.Builder
	writeRow := func(cells []string) {
		b.WriteString("|")
		for i, c := range cells {
			pad := widths[i] - runewidth.StringWidth(c)
			b.WriteString(" " + c + strings.Repeat(" ", pad) + " |")
		}
		b.WriteString("\n")
	}

	writeRow(header)
	b.WriteString("|")
	for _, w := range widths {
		b.WriteString(" " + strings.Repeat("-", w) + " |")
	}
	b.WriteString("\n")
	for _, row := range rows {
		writeRow(row)
	}
	return b.String()
}
