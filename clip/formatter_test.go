package clip_test

import (
	"testing"

	"github.com/docref/docref"
	"github.com/docref/docref/clip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatter_Format(t *testing.T) {
	t.Parallel()

	f := clip.NewFormatter()

	t.Run("plain reference", func(t *testing.T) {
		t.Parallel()

		c, err := f.Format(&docref.DocInfo{
			Link:  "https://example.com/x",
			Title: "My Title",
		})
		require.NoError(t, err)
		assert.Equal(t, "[My Title](https://example.com/x)", c.Text)
		assert.Equal(t, `<a href="https://example.com/x">My Title</a>`, c.HTML)
	})

	t.Run("escapes title and link in the anchor", func(t *testing.T) {
		t.Parallel()

		c, err := f.Format(&docref.DocInfo{
			Link:  "https://example.com/x?a=1&b=2",
			Title: "Q&A <notes>",
		})
		require.NoError(t, err)
		assert.Equal(t, `<a href="https://example.com/x?a=1&amp;b=2">Q&amp;A &lt;notes&gt;</a>`, c.HTML)
	})

	t.Run("slack message keeps markup and gains a footer", func(t *testing.T) {
		t.Parallel()

		c, err := f.Format(&docref.DocInfo{
			Link:  "https://acme.slack.com/archives/C0123456789/p1",
			Title: "Deploy is done",
			Message: &docref.Message{
				HTML:        "Deploy is <b>done</b>",
				Text:        "Deploy is done",
				Sender:      "Jane Doe",
				DateString:  "Jul 30, 2025, 2:20 PM ET",
				ChannelName: "deploys",
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "Deploy is done (https://acme.slack.com/archives/C0123456789/p1)", c.Text)
		assert.Equal(t,
			`Deploy is <b>done</b><div>Jane Doe, #deploys, Jul 30, 2025, 2:20 PM ET | `+
				`<a href="https://acme.slack.com/archives/C0123456789/p1">View in Slack</a></div>`,
			c.HTML)
	})

	t.Run("message footer omits missing metadata", func(t *testing.T) {
		t.Parallel()

		c, err := f.Format(&docref.DocInfo{
			Link:    "https://acme.slack.com/archives/C0123456789/p1",
			Title:   "Heads up",
			Message: &docref.Message{HTML: "Heads up", Text: "Heads up"},
		})
		require.NoError(t, err)
		assert.Equal(t,
			`Heads up<div><a href="https://acme.slack.com/archives/C0123456789/p1">View in Slack</a></div>`,
			c.HTML)
	})

	t.Run("nil info is invalid", func(t *testing.T) {
		t.Parallel()

		_, err := f.Format(nil)
		require.Error(t, err)
		assert.Equal(t, docref.EINVALID, docref.ErrorCode(err))
	})
}
