package docref

// ExtractResult holds the main content extracted from an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// Author is the page author when metadata declares one, else "".
	Author string

	// ContentHTML is the main content as clean HTML with boilerplate
	// (nav, footer, sidebar, ads) removed.
	ContentHTML string
}

// Extractor extracts main content from HTML pages, removing boilerplate.
// It backs the optional "copy the article body along with the link" mode.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}
