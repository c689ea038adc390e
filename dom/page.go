package dom

import (
	"net/url"
	"strings"

	"github.com/docref/docref"
	"golang.org/x/net/html"
)

var titleSelector = MustSelector("head > title")

// Parse builds a docref.Page from raw HTML and the page URL.
func Parse(rawHTML, rawURL string) (*docref.Page, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, docref.Errorf(docref.EINVALID, "empty HTML input")
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, docref.Errorf(docref.EINVALID, "invalid page URL: %v", err)
	}

	root, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return nil, docref.Errorf(docref.EINVALID, "failed to parse HTML: %v", err)
	}

	var title string
	if t := Query(root, titleSelector); t != nil {
		title = Text(t)
	}

	return &docref.Page{URL: u, Title: title, Root: root}, nil
}
