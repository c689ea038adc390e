// Package rules contains the site-specific extraction strategies, the
// generic fallback resolver, and the dispatcher that runs them in fixed
// priority order.
package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/docref/docref"
	"github.com/docref/docref/dom"
	"github.com/docref/docref/meta"
)

// Video platforms whose OG titles follow the "Title - Channel" pattern.
var videoHosts = []string{"youtube.com", "youtu.be", "vimeo.com", "loom.com", "twitch.tv"}

// "Place - Service" document titles that read better as "Place (Service)".
var serviceSuffix = regexp.MustCompile(`^(.*\S)\s+[-–—]\s+(Google Maps|Google Search|Bing Maps|Apple Maps)$`)

// Generic is the fallback resolver for pages without a dedicated rule:
// Open Graph, then schema.org, then the document title.
type Generic struct{}

// NewGeneric creates a new Generic resolver.
func NewGeneric() *Generic {
	return &Generic{}
}

// ResolveTitle returns the best-effort title for the page.
func (g *Generic) ResolveTitle(p *docref.Page) string {
	if og := meta.OpenGraph(p, "og:title"); og != "" {
		title := dom.NormalizeText(og)
		if meta.OpenGraph(p, "og:type") == "books.book" {
			if i := strings.Index(title, ":"); i >= 0 {
				title = strings.TrimSpace(title[:i])
			}
		}
		if isVideoHost(p.Hostname()) {
			if strings.Count(title, " - ") == 1 {
				parts := strings.SplitN(title, " - ", 2)
				return fmt.Sprintf("%s (%s)", strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]))
			}
			if author := meta.Author(p); author != "" {
				return fmt.Sprintf("%s (%s)", title, dom.NormalizeText(author))
			}
		}
		return title
	}

	if title := meta.Title(p); title != "" {
		title = dom.NormalizeText(title)
		if author := meta.Author(p); author != "" {
			return fmt.Sprintf("%s (%s)", title, dom.NormalizeText(author))
		}
		return title
	}

	title := dom.NormalizeText(p.Title)
	if m := serviceSuffix.FindStringSubmatch(title); m != nil {
		return fmt.Sprintf("%s (%s)", m[1], m[2])
	}
	return title
}

// ResolveURL returns the canonical URL for the page: Open Graph URL, else
// schema.org URL, else the page's own location.
func (g *Generic) ResolveURL(p *docref.Page) string {
	if u := meta.OpenGraph(p, "og:url"); u != "" {
		return dom.NormalizeText(u)
	}
	if u := meta.URL(p); u != "" {
		return dom.NormalizeText(u)
	}
	return p.Href()
}

func isVideoHost(host string) bool {
	for _, h := range videoHosts {
		if host == h || strings.HasSuffix(host, "."+h) {
			return true
		}
	}
	return false
}
