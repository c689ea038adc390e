package rules_test

import (
	"fmt"
	"testing"

	"github.com/docref/docref"
	"github.com/docref/docref/dom"
	"github.com/stretchr/testify/require"
)

// pageAt builds a Page from a URL and a document title, with optional
// extra body markup.
func pageAt(t *testing.T, rawURL, title, body string) *docref.Page {
	t.Helper()
	raw := fmt.Sprintf(`<html><head><title>%s</title></head><body>%s</body></html>`, title, body)
	page, err := dom.Parse(raw, rawURL)
	require.NoError(t, err)
	return page
}

// pageHTML builds a Page from a URL and complete HTML.
func pageHTML(t *testing.T, rawURL, raw string) *docref.Page {
	t.Helper()
	page, err := dom.Parse(raw, rawURL)
	require.NoError(t, err)
	return page
}
