package docref

import "context"

// Rule is one site-specific extraction strategy: a cheap, side-effect-free
// match decision over the page location plus an extractor that reads the
// DOM. Rules are constructed once and evaluated fresh on every extraction
// request; they hold no per-call state.
type Rule interface {
	// Name returns a short identifier used in logs.
	Name() string

	// Match reports whether this rule applies to the page. It must decide
	// from URL/hostname/pathname state only and must not touch the DOM.
	Match(page *Page) bool

	// Extract reads the page and produces a DocInfo. It may fail when the
	// page does not have the structure the rule expects; the dispatcher
	// treats a failing rule as a non-match and moves on.
	Extract(ctx context.Context, page *Page) (*DocInfo, error)
}

// DocInfoService produces a DocInfo for a page. Implementations absorb all
// internal failures and always return a (possibly degraded) value; no
// error escapes the public entry point.
type DocInfoService interface {
	GetDocInfo(ctx context.Context, page *Page) *DocInfo
}
