// Package mock provides function-field mock implementations of the
// domain interfaces for testing.
package mock

import (
	"context"

	"github.com/docref/docref"
)

var _ docref.Rule = (*Rule)(nil)

// Rule is a mock implementation of docref.Rule.
type Rule struct {
	NameFn    func() string
	MatchFn   func(page *docref.Page) bool
	ExtractFn func(ctx context.Context, page *docref.Page) (*docref.DocInfo, error)
}

func (r *Rule) Name() string {
	if r.NameFn == nil {
		return "mock"
	}
	return r.NameFn()
}

func (r *Rule) Match(page *docref.Page) bool {
	return r.MatchFn(page)
}

func (r *Rule) Extract(ctx context.Context, page *docref.Page) (*docref.DocInfo, error) {
	return r.ExtractFn(ctx, page)
}
