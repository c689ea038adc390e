package dom_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/docref/docref/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func parse(t *testing.T, raw string) *html.Node {
	t.Helper()
	root, err := html.Parse(strings.NewReader(raw))
	require.NoError(t, err)
	return root
}

func TestFindByClassPrefix(t *testing.T) {
	t.Parallel()

	t.Run("matches token prefix, first in document order", func(t *testing.T) {
		t.Parallel()

		root := parse(t, `<body>
			<div class="other PullRequestTitle-abc123">first</div>
			<div class="PullRequestTitle-def456">second</div>
		</body>`)

		n := dom.FindByClassPrefix(root, "PullRequestTitle", "div")
		require.NotNil(t, n)
		assert.Equal(t, "first", dom.Text(n))
	})

	t.Run("substring containment alone is not a match", func(t *testing.T) {
		t.Parallel()

		// Class contains the prefix as a substring of a token, but no
		// token starts with it.
		root := parse(t, `<body><div class="xPullRequestTitle-abc">nope</div></body>`)

		assert.Nil(t, dom.FindByClassPrefix(root, "PullRequestTitle", "div"))
	})

	t.Run("filters by tag name", func(t *testing.T) {
		t.Parallel()

		root := parse(t, `<body>
			<span class="Avatar-x">skip</span>
			<img class="Avatar-y" alt="Jane Doe">
		</body>`)

		n := dom.FindByClassPrefix(root, "Avatar", "img")
		require.NotNil(t, n)
		assert.Equal(t, "Jane Doe", dom.Attr(n, "alt"))
	})

	t.Run("any tag with wildcard", func(t *testing.T) {
		t.Parallel()

		root := parse(t, `<body><span class="Avatar-x">hit</span></body>`)

		require.NotNil(t, dom.FindByClassPrefix(root, "Avatar", "*"))
		require.NotNil(t, dom.FindByClassPrefix(root, "Avatar", ""))
	})

	t.Run("returns nil when nothing matches", func(t *testing.T) {
		t.Parallel()

		root := parse(t, `<body><div class="foo">x</div></body>`)

		assert.Nil(t, dom.FindByClassPrefix(root, "bar", "*"))
	})
}

func TestDirectText(t *testing.T) {
	t.Parallel()

	root := parse(t, `<body>
		<div id="outer">prefix <span>Log Message</span></div>
		<div id="inner">Log Message</div>
	</body>`)

	cond := dom.DirectText(regexp.MustCompile(`^Log Message$`))

	outer := dom.Query(root, dom.MustSelector("#outer"))
	inner := dom.Query(root, dom.MustSelector("#inner"))
	require.NotNil(t, outer)
	require.NotNil(t, inner)

	// The outer div only contains the phrase through a descendant.
	assert.False(t, cond(outer))
	assert.True(t, cond(inner))
}

func TestFindNextInDFS(t *testing.T) {
	t.Parallel()

	t.Run("returns first element after start", func(t *testing.T) {
		t.Parallel()

		root := parse(t, `<body>
			<p class="hit">before</p>
			<div id="start"></div>
			<section><p class="hit">after</p></section>
			<p class="hit">later</p>
		</body>`)

		start := dom.Query(root, dom.MustSelector("#start"))
		require.NotNil(t, start)

		n := dom.FindNextInDFS(root, start, dom.Tag("p"))
		require.NotNil(t, n)
		assert.Equal(t, "after", dom.Text(n))
	})

	t.Run("never returns start even when start matches", func(t *testing.T) {
		t.Parallel()

		root := parse(t, `<body><p id="start">only</p></body>`)

		start := dom.Query(root, dom.MustSelector("#start"))
		require.NotNil(t, start)

		assert.Nil(t, dom.FindNextInDFS(root, start, dom.Tag("p")))
	})

	t.Run("returns nil when no later element matches", func(t *testing.T) {
		t.Parallel()

		root := parse(t, `<body><p>before</p><div id="start"></div></body>`)

		start := dom.Query(root, dom.MustSelector("#start"))
		require.NotNil(t, start)

		assert.Nil(t, dom.FindNextInDFS(root, start, dom.Tag("p")))
	})
}

func TestFindFirstInWholeDFS(t *testing.T) {
	t.Parallel()

	countSpans := func(root *html.Node) int {
		n := 0
		var count func(*html.Node)
		count = func(h *html.Node) {
			if h.Type == html.ElementNode && h.Data == "span" {
				n++
			}
			for c := h.FirstChild; c != nil; c = c.NextSibling {
				count(c)
			}
		}
		count(root)
		return n
	}

	t.Run("finds the first matching element in the document", func(t *testing.T) {
		t.Parallel()

		root := parse(t, `<body><div><p id="a">one</p></div><p id="b">two</p></body>`)

		n := dom.FindFirstInWholeDFS(root, dom.Tag("p"))
		require.NotNil(t, n)
		assert.Equal(t, "one", dom.Text(n))
	})

	t.Run("removes the synthetic anchor on no match", func(t *testing.T) {
		t.Parallel()

		root := parse(t, `<body><div>x</div></body>`)
		before := countSpans(root)

		assert.Nil(t, dom.FindFirstInWholeDFS(root, dom.Tag("code")))
		assert.Equal(t, before, countSpans(root))
	})

	t.Run("removes the synthetic anchor when the condition panics", func(t *testing.T) {
		t.Parallel()

		root := parse(t, `<body><div>x</div></body>`)
		before := countSpans(root)

		require.Panics(t, func() {
			dom.FindFirstInWholeDFS(root, func(n *html.Node) bool {
				panic("condition blew up")
			})
		})
		assert.Equal(t, before, countSpans(root))
	})
}

func TestFindInAncestorChain(t *testing.T) {
	t.Parallel()

	t.Run("finds match scoped to an ancestor", func(t *testing.T) {
		t.Parallel()

		root := parse(t, `<body>
			<div class="row">
				<a class="c-timestamp" data-ts="1753899619.438709" href="/archives/C02ABC123/p1"></a>
				<div class="cell"><div id="start">msg</div></div>
			</div>
		</body>`)

		start := dom.Query(root, dom.MustSelector("#start"))
		require.NotNil(t, start)

		n := dom.FindInAncestorChain(start, dom.MustSelector("a.c-timestamp[data-ts]"))
		require.NotNil(t, n)
		assert.Equal(t, "1753899619.438709", dom.Attr(n, "data-ts"))
	})

	t.Run("returns nil when the chain is exhausted", func(t *testing.T) {
		t.Parallel()

		root := parse(t, `<body><div id="start">msg</div></body>`)

		start := dom.Query(root, dom.MustSelector("#start"))
		require.NotNil(t, start)

		assert.Nil(t, dom.FindInAncestorChain(start, dom.MustSelector("a[data-ts]")))
	})
}

func TestQuery_ExcludesSelf(t *testing.T) {
	t.Parallel()

	root := parse(t, `<body><div id="d" class="x"><span class="x">in</span></div></body>`)

	d := dom.Query(root, dom.MustSelector("#d"))
	require.NotNil(t, d)

	m := dom.Query(d, dom.MustSelector(".x"))
	require.NotNil(t, m)
	assert.Equal(t, "span", m.Data)
}
