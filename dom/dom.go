// Package dom provides stateless search primitives over parsed HTML
// trees. Rules build their structural queries out of these instead of
// talking to golang.org/x/net/html directly.
//
// All finders return nil when nothing matches; they panic only on
// programmer error (an invalid selector passed to MustSelector).
package dom

import (
	"regexp"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Condition decides whether a candidate element satisfies a search.
type Condition func(n *html.Node) bool

// DirectText returns a Condition that holds iff re matches the
// concatenation of the element's own text nodes, with descendant text
// excluded. This finds structural anchors ("Log Message", "Saved for
// later") without matching containers that merely contain the phrase
// nested somewhere inside.
func DirectText(re *regexp.Regexp) Condition {
	return func(n *html.Node) bool {
		return re.MatchString(OwnText(n))
	}
}

// Tag returns a Condition that holds for elements with the given tag name.
func Tag(name string) Condition {
	name = strings.ToLower(name)
	return func(n *html.Node) bool {
		return n.Data == name
	}
}

// HasAttr returns a Condition that holds when the element's attribute key
// has one of the given values.
func HasAttr(key string, values ...string) Condition {
	return func(n *html.Node) bool {
		got := Attr(n, key)
		for _, v := range values {
			if got == v {
				return true
			}
		}
		return false
	}
}

// Or combines conditions; the result holds when any of them holds.
func Or(conds ...Condition) Condition {
	return func(n *html.Node) bool {
		for _, c := range conds {
			if c(n) {
				return true
			}
		}
		return false
	}
}

// And combines conditions; the result holds only when all of them hold.
func And(conds ...Condition) Condition {
	return func(n *html.Node) bool {
		for _, c := range conds {
			if !c(n) {
				return false
			}
		}
		return true
	}
}

// Attr returns the value of the named attribute on n, or "".
func Attr(n *html.Node, key string) string {
	if n == nil {
		return ""
	}
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// walk visits n and its subtree in pre-order. visit returns false to stop
// the traversal; walk reports whether the traversal ran to completion.
func walk(n *html.Node, visit func(*html.Node) bool) bool {
	if !visit(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c, visit) {
			return false
		}
	}
	return true
}

// findElement returns the first element under root with the given atom.
func findElement(root *html.Node, a atom.Atom) *html.Node {
	var found *html.Node
	walk(root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.DataAtom == a {
			found = n
			return false
		}
		return true
	})
	return found
}

// Body returns the document's <body> element, or nil.
func Body(root *html.Node) *html.Node {
	return findElement(root, atom.Body)
}

// DocumentElement returns the document's <html> element, or nil.
func DocumentElement(root *html.Node) *html.Node {
	return findElement(root, atom.Html)
}

// FindByClassPrefix returns the first element in document order whose
// class attribute contains a space-separated token starting with prefix.
// Substring containment over the whole attribute is only a cheap
// pre-filter; the decision is the token prefix test. tag narrows the scan
// to one tag name; "" or "*" scans every element.
func FindByClassPrefix(root *html.Node, prefix, tag string) *html.Node {
	tag = strings.ToLower(tag)
	var found *html.Node
	walk(root, func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return true
		}
		if tag != "" && tag != "*" && n.Data != tag {
			return true
		}
		class := Attr(n, "class")
		if !strings.Contains(class, prefix) {
			return true
		}
		for _, token := range strings.Fields(class) {
			if strings.HasPrefix(token, prefix) {
				found = n
				return false
			}
		}
		return true
	})
	return found
}

// FindNextInDFS returns the first element strictly after start in
// pre-order traversal for which cond holds, or nil. The traversal runs
// from the document's <body>, retrying from the document element when the
// body pass yields nothing. start itself is used only as the traversal
// anchor and is never tested against cond.
func FindNextInDFS(root, start *html.Node, cond Condition) *html.Node {
	if m := findNextFrom(Body(root), start, cond); m != nil {
		return m
	}
	return findNextFrom(DocumentElement(root), start, cond)
}

func findNextFrom(scope, start *html.Node, cond Condition) *html.Node {
	if scope == nil {
		return nil
	}
	var passed bool
	var match *html.Node
	walk(scope, func(n *html.Node) bool {
		if n == start {
			passed = true
			return true
		}
		if !passed {
			return true
		}
		if n.Type == html.ElementNode && cond(n) {
			match = n
			return false
		}
		return true
	})
	return match
}

// FindFirstInWholeDFS returns the first element in the entire document for
// which cond holds. It inserts a transient anchor element as the very
// first child of <body> and searches forward from it; the anchor is
// removed on every exit path, including a panicking cond, so the tree is
// never left mutated.
func FindFirstInWholeDFS(root *html.Node, cond Condition) *html.Node {
	body := Body(root)
	if body == nil {
		body = DocumentElement(root)
	}
	if body == nil {
		return nil
	}
	anchor := &html.Node{Type: html.ElementNode, DataAtom: atom.Span, Data: "span"}
	body.InsertBefore(anchor, body.FirstChild)
	defer body.RemoveChild(anchor)
	return FindNextInDFS(root, anchor, cond)
}

// FindInAncestorChain searches for sel among the descendants of start,
// then of each successive ancestor, returning the first match or nil when
// the chain is exhausted. The element being searched is itself excluded,
// matching scoped querySelector semantics.
func FindInAncestorChain(start *html.Node, sel cascadia.Selector) *html.Node {
	for n := start; n != nil; n = n.Parent {
		if m := Query(n, sel); m != nil {
			return m
		}
	}
	return nil
}

// Query returns the first descendant of n matched by sel, excluding n
// itself.
func Query(n *html.Node, sel cascadia.Selector) *html.Node {
	if n == nil {
		return nil
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if m := sel.MatchFirst(c); m != nil {
			return m
		}
	}
	return nil
}

// MustSelector compiles a CSS selector, panicking on an invalid one.
// Intended for package-level selector variables.
func MustSelector(s string) cascadia.Selector {
	return cascadia.MustCompile(s)
}
