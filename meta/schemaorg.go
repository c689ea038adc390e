package meta

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/docref/docref"
	"golang.org/x/net/html"
)

// Sites declare schema.org types with either scheme.
var schemaTypePrefixes = []string{"https://schema.org/", "http://schema.org/"}

// Ordered type lists the generic resolver probes. Title and URL consider
// the broad catch-all types too; author lookups skip WebPage and Thing
// because their "author" is rarely the content author.
var (
	schemaTitleTypes  = []string{"VideoObject", "Article", "NewsArticle", "BlogPosting", "WebPage", "CreativeWork", "Thing"}
	schemaAuthorTypes = []string{"VideoObject", "Article", "NewsArticle", "BlogPosting", "CreativeWork"}
)

// ItemContent locates the first element carrying [itemscope][itemtype=T]
// and searches within it for the property value, trying in order:
// meta[itemprop] (content attribute), link[itemprop] (href falling back to
// content), then any element with that itemprop (trimmed text content).
// Candidates that belong to a nested or foreign item scope are rejected:
// only values whose nearest enclosing itemscope is the outer item count.
func ItemContent(p *docref.Page, itemType, property string) string {
	scope := itemScope(document(p), itemType)
	if scope == nil {
		return ""
	}
	scoped := goquery.NewDocumentFromNode(scope)

	if v := scopedAttr(scoped, scope, fmt.Sprintf("meta[itemprop='%s']", property), "content", ""); v != "" {
		return v
	}
	if v := scopedAttr(scoped, scope, fmt.Sprintf("link[itemprop='%s']", property), "href", "content"); v != "" {
		return v
	}
	return scopedText(scoped, scope, fmt.Sprintf("[itemprop='%s']", property))
}

// PersonName reads an author name from a structured Person sub-item: a
// span or div with [itemprop][itemscope][itemtype=…/Person] containing a
// link or meta with itemprop=name. Falls back to a flat ItemContent
// lookup when no structured Person exists.
func PersonName(p *docref.Page, itemType, authorProperty string) string {
	if authorProperty == "" {
		authorProperty = "author"
	}

	if scope := itemScope(document(p), itemType); scope != nil {
		scoped := goquery.NewDocumentFromNode(scope)
		for _, tag := range []string{"span", "div"} {
			for _, prefix := range schemaTypePrefixes {
				sel := fmt.Sprintf("%s[itemprop='%s'][itemscope][itemtype='%sPerson']", tag, authorProperty, prefix)
				person := scoped.Find(sel).First()
				if person.Length() == 0 {
					continue
				}
				for _, nameSel := range []string{"link[itemprop='name']", "meta[itemprop='name']"} {
					if v, ok := person.Find(nameSel).First().Attr("content"); ok && strings.TrimSpace(v) != "" {
						return strings.TrimSpace(v)
					}
				}
			}
		}
	}

	return ItemContent(p, itemType, authorProperty)
}

// Title returns the first schema.org title across the probed types,
// trying headline before name for each type.
func Title(p *docref.Page) string {
	for _, t := range schemaTitleTypes {
		if v := ItemContent(p, t, "headline"); v != "" {
			return v
		}
		if v := ItemContent(p, t, "name"); v != "" {
			return v
		}
	}
	return ""
}

// URL returns the first schema.org url across the probed types.
func URL(p *docref.Page) string {
	for _, t := range schemaTitleTypes {
		if v := ItemContent(p, t, "url"); v != "" {
			return v
		}
	}
	return ""
}

// Author returns the first schema.org author across the probed types.
func Author(p *docref.Page) string {
	for _, t := range schemaAuthorTypes {
		if v := PersonName(p, t, "author"); v != "" {
			return v
		}
	}
	return ""
}

// itemScope returns the first element declaring the given schema.org item
// type, or nil.
func itemScope(doc *goquery.Document, itemType string) *html.Node {
	for _, prefix := range schemaTypePrefixes {
		sel := doc.Find(fmt.Sprintf("[itemscope][itemtype='%s%s']", prefix, itemType)).First()
		if sel.Length() > 0 {
			return sel.Nodes[0]
		}
	}
	return nil
}

// scopedAttr returns the first attribute value among matches that belong
// directly to the outer scope. fallbackAttr, when non-empty, is tried if
// the primary attribute is absent or blank.
func scopedAttr(scoped *goquery.Document, scope *html.Node, selector, attr, fallbackAttr string) string {
	var result string
	scoped.Find(selector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if nearestItemScope(s.Nodes[0]) != scope {
			return true
		}
		if v, ok := s.Attr(attr); ok && strings.TrimSpace(v) != "" {
			result = strings.TrimSpace(v)
			return false
		}
		if fallbackAttr != "" {
			if v, ok := s.Attr(fallbackAttr); ok && strings.TrimSpace(v) != "" {
				result = strings.TrimSpace(v)
				return false
			}
		}
		return true
	})
	return result
}

// scopedText returns the trimmed text of the first match that belongs
// directly to the outer scope.
func scopedText(scoped *goquery.Document, scope *html.Node, selector string) string {
	var result string
	scoped.Find(selector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if nearestItemScope(s.Nodes[0]) != scope {
			return true
		}
		if v := strings.TrimSpace(s.Text()); v != "" {
			result = v
			return false
		}
		return true
	})
	return result
}

// nearestItemScope walks the ancestor chain (excluding n itself) to the
// closest element declaring itemscope.
func nearestItemScope(n *html.Node) *html.Node {
	for a := n.Parent; a != nil; a = a.Parent {
		if a.Type != html.ElementNode {
			continue
		}
		for _, attr := range a.Attr {
			if attr.Key == "itemscope" {
				return a
			}
		}
	}
	return nil
}
