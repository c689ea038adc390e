package rules_test

import (
	"context"
	"testing"

	"github.com/docref/docref"
	"github.com/docref/docref/mock"
	"github.com/docref/docref/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcher_GetDocInfo(t *testing.T) {
	t.Parallel()

	t.Run("first matching rule wins", func(t *testing.T) {
		t.Parallel()

		page := pageAt(t, "https://example.com/x", "t", "")
		var laterConsulted bool

		first := &mock.Rule{
			NameFn:  func() string { return "first" },
			MatchFn: func(p *docref.Page) bool { return true },
			ExtractFn: func(_ context.Context, p *docref.Page) (*docref.DocInfo, error) {
				return &docref.DocInfo{Link: p.Href(), Title: "from first"}, nil
			},
		}
		later := &mock.Rule{
			NameFn:  func() string { return "later" },
			MatchFn: func(p *docref.Page) bool { laterConsulted = true; return true },
			ExtractFn: func(_ context.Context, p *docref.Page) (*docref.DocInfo, error) {
				return &docref.DocInfo{Link: p.Href(), Title: "from later"}, nil
			},
		}

		d := rules.NewDispatcher([]docref.Rule{first, later}, nil)
		info := d.GetDocInfo(context.Background(), page)

		require.NotNil(t, info)
		assert.Equal(t, "from first", info.Title)
		assert.False(t, laterConsulted)
	})

	t.Run("a failing rule is skipped, not retried", func(t *testing.T) {
		t.Parallel()

		page := pageAt(t, "https://example.com/x", "t", "")

		broken := &mock.Rule{
			NameFn:  func() string { return "broken" },
			MatchFn: func(p *docref.Page) bool { return true },
			ExtractFn: func(_ context.Context, p *docref.Page) (*docref.DocInfo, error) {
				return nil, docref.Errorf(docref.ENOTFOUND, "structure changed")
			},
		}
		next := &mock.Rule{
			NameFn:  func() string { return "next" },
			MatchFn: func(p *docref.Page) bool { return true },
			ExtractFn: func(_ context.Context, p *docref.Page) (*docref.DocInfo, error) {
				return &docref.DocInfo{Link: p.Href(), Title: "from next"}, nil
			},
		}

		d := rules.NewDispatcher([]docref.Rule{broken, next}, nil)
		info := d.GetDocInfo(context.Background(), page)

		require.NotNil(t, info)
		assert.Equal(t, "from next", info.Title)
	})

	t.Run("a panicking Match counts as no match", func(t *testing.T) {
		t.Parallel()

		page := pageAt(t, "https://example.com/x", "Plain Page", "")

		panicky := &mock.Rule{
			NameFn:  func() string { return "panicky" },
			MatchFn: func(p *docref.Page) bool { panic("selector blew up") },
		}

		d := rules.NewDispatcher([]docref.Rule{panicky}, nil)
		info := d.GetDocInfo(context.Background(), page)

		require.NotNil(t, info)
		assert.Equal(t, "Plain Page", info.Title)
	})

	t.Run("a panicking Extract falls through to later rules", func(t *testing.T) {
		t.Parallel()

		page := pageAt(t, "https://example.com/x", "t", "")

		panicky := &mock.Rule{
			NameFn:  func() string { return "panicky" },
			MatchFn: func(p *docref.Page) bool { return true },
			ExtractFn: func(_ context.Context, p *docref.Page) (*docref.DocInfo, error) {
				panic("nil dereference")
			},
		}
		next := &mock.Rule{
			NameFn:  func() string { return "next" },
			MatchFn: func(p *docref.Page) bool { return true },
			ExtractFn: func(_ context.Context, p *docref.Page) (*docref.DocInfo, error) {
				return &docref.DocInfo{Link: p.Href(), Title: "recovered"}, nil
			},
		}

		d := rules.NewDispatcher([]docref.Rule{panicky, next}, nil)
		info := d.GetDocInfo(context.Background(), page)

		require.NotNil(t, info)
		assert.Equal(t, "recovered", info.Title)
	})

	t.Run("a nil result without an error is treated as a failure", func(t *testing.T) {
		t.Parallel()

		page := pageAt(t, "https://example.com/x", "Plain Page", "")

		empty := &mock.Rule{
			NameFn:  func() string { return "empty" },
			MatchFn: func(p *docref.Page) bool { return true },
			ExtractFn: func(_ context.Context, p *docref.Page) (*docref.DocInfo, error) {
				return nil, nil
			},
		}

		d := rules.NewDispatcher([]docref.Rule{empty}, nil)
		info := d.GetDocInfo(context.Background(), page)

		require.NotNil(t, info)
		assert.Equal(t, "Plain Page", info.Title)
	})

	t.Run("falls back to the generic resolver", func(t *testing.T) {
		t.Parallel()

		page := pageAt(t, "https://example.org/article?ref=hn", "Plain Page", "")

		d := rules.NewDispatcher(rules.DefaultRules(), nil)
		info := d.GetDocInfo(context.Background(), page)

		require.NotNil(t, info)
		assert.Equal(t, "Plain Page", info.Title)
		assert.Equal(t, "https://example.org/article?ref=hn", info.Link)
	})
}
