package docref

import (
	"net/url"

	"golang.org/x/net/html"
)

// Page is the explicit document context an extraction operates on: the
// parsed DOM, the page location, and the document title. Passing it
// explicitly (rather than reading ambient global state) lets tests supply
// a synthetic tree. The core never mutates the tree except for one scoped
// insert/remove inside the whole-document search primitive.
type Page struct {
	// URL is the page location.
	URL *url.URL

	// Title is the raw document title (contents of <title>).
	Title string

	// Root is the parsed document node.
	Root *html.Node
}

// Hostname returns the page's hostname, or "" if the URL is absent.
func (p *Page) Hostname() string {
	if p.URL == nil {
		return ""
	}
	return p.URL.Hostname()
}

// Path returns the page's URL path, or "" if the URL is absent.
func (p *Page) Path() string {
	if p.URL == nil {
		return ""
	}
	return p.URL.Path
}

// Href returns the full page URL as a string, or "" if absent.
func (p *Page) Href() string {
	if p.URL == nil {
		return ""
	}
	return p.URL.String()
}
