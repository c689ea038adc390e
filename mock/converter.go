package mock

import "github.com/docref/docref"

var _ docref.Converter = (*Converter)(nil)

// Converter is a mock implementation of docref.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
