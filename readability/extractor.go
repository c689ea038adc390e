package readability

import (
	"strings"

	"github.com/docref/docref"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements docref.Extractor at compile time.
var _ docref.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*docref.ExtractResult, error) {
	if rawHTML == "" {
		return nil, docref.Errorf(docref.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &docref.ExtractResult{
		Title:       article.Title,
		Author:      article.Byline,
		ContentHTML: article.Content,
	}, nil
}
