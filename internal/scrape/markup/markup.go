// Package markup narrows HTML traversal down to the few queries the scrapers
// actually need, so parsing code is not tied to a particular HTML library.
package markup

import (
	"io"

	"github.com/PuerkitoBio/goquery"
)

// Fragment is a piece of parsed markup. First and Each take CSS selectors.
type Fragment interface {
	First(selector string) (Fragment, bool)
	Each(selector string, fn func(Fragment))
	Text() string
	Attr(name string) (string, bool)
}

type fragment struct {
	sel *goquery.Selection
}

// Parse reads an HTML document and returns its root fragment.
func Parse(r io.Reader) (Fragment, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}
	return fragment{sel: doc.Selection}, nil
}

func (f fragment) First(selector string) (Fragment, bool) {
	s := f.sel.Find(selector).First()
	if s.Length() == 0 {
		return nil, false
	}
	return fragment{sel: s}, true
}

func (f fragment) Each(selector string, fn func(Fragment)) {
	f.sel.Find(selector).Each(func(_ int, s *goquery.Selection) {
		fn(fragment{sel: s})
	})
}

func (f fragment) Text() string { return f.sel.Text() }

func (f fragment) Attr(name string) (string, bool) { return f.sel.Attr(name) }
