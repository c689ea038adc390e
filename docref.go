// Package docref extracts a canonical "title + link" reference from a web
// page so a single action can copy a well-formatted pointer to that page.
// Markup varies per site and sites redesign without notice, so extraction
// is organized as an ordered list of site-specific rules with a generic
// fallback, and it always produces a result rather than failing.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency or concern (e.g., dom/, meta/, rules/,
// rod/, clip/).
package docref
