// Package clip renders extraction results into clipboard payloads with
// matching plain-text and HTML flavors.
package clip

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"github.com/docref/docref"
)

// Ensure Formatter implements docref.ClipFormatter.
var _ docref.ClipFormatter = (*Formatter)(nil)

// Formatter builds clips from DocInfo values. Plain references become a
// markdown-style text link and an HTML anchor; Slack messages keep their
// captured markup and gain a "View in Slack" footer.
type Formatter struct{}

// NewFormatter creates a new Formatter.
func NewFormatter() *Formatter {
	return &Formatter{}
}

// Format builds the clipboard payload for the given result.
func (f *Formatter) Format(info *docref.DocInfo) (*docref.Clip, error) {
	if info == nil {
		return nil, docref.Errorf(docref.EINVALID, "nil doc info")
	}
	if info.Message != nil {
		return f.formatMessage(info)
	}

	doc := etree.NewDocument()
	a := doc.CreateElement("a")
	a.CreateAttr("href", info.Link)
	a.SetText(info.Title)

	markup, err := doc.WriteToString()
	if err != nil {
		return nil, docref.Errorf(docref.EINTERNAL, "render anchor: %v", err)
	}

	return &docref.Clip{
		Text: fmt.Sprintf("[%s](%s)", info.Title, info.Link),
		HTML: markup,
	}, nil
}

// formatMessage keeps the captured message markup as the body and appends
// a footer line carrying the sender, channel, timestamp, and a link back
// to the message. The markup was captured verbatim from the page, so only
// the footer needs escaping.
func (f *Formatter) formatMessage(info *docref.DocInfo) (*docref.Clip, error) {
	msg := info.Message

	doc := etree.NewDocument()
	div := doc.CreateElement("div")

	var meta []string
	if msg.Sender != "" {
		meta = append(meta, msg.Sender)
	}
	if msg.ChannelName != "" {
		meta = append(meta, "#"+msg.ChannelName)
	}
	if msg.DateString != "" {
		meta = append(meta, msg.DateString)
	}
	if len(meta) > 0 {
		div.CreateText(strings.Join(meta, ", ") + " | ")
	}
	a := div.CreateElement("a")
	a.CreateAttr("href", info.Link)
	a.SetText("View in Slack")

	footer, err := doc.WriteToString()
	if err != nil {
		return nil, docref.Errorf(docref.EINTERNAL, "render footer: %v", err)
	}

	return &docref.Clip{
		Text: fmt.Sprintf("%s (%s)", msg.Text, info.Link),
		HTML: msg.HTML + footer,
	}, nil
}
