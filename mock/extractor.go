package mock

import "github.com/docref/docref"

var _ docref.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of docref.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*docref.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*docref.ExtractResult, error) {
	return e.ExtractFn(html)
}
