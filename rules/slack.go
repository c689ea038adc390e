package rules

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/docref/docref"
	"github.com/docref/docref/dom"
	"golang.org/x/net/html"
)

// Slack extracts a single message plus the metadata the clipboard
// formatter needs for a rich annotation: sender, channel, and timestamp.
// It is the only rule that populates DocInfo.Message. Any failure along
// the way degrades to a plain "<document title> (Slack)" reference; a
// Slack page never falls through to another rule or to the generic
// resolver.
type Slack struct{}

func NewSlack() *Slack { return &Slack{} }

func (r *Slack) Name() string { return "slack" }

func (r *Slack) Match(p *docref.Page) bool {
	return matchHost(p, "slack.com")
}

var (
	// "Saved for later" carries suffixes like "• Due in 3 days", so it is
	// a prefix match; "Also sent to the channel" is exact.
	savedForLater   = regexp.MustCompile(`^Saved for later`)
	alsoSentToChan  = regexp.MustCompile(`^Also sent to the channel$`)
	slackArchiveRef = regexp.MustCompile(`/archives/(C[A-Z0-9]+)/`)
	messagePrefix   = regexp.MustCompile(`^Message\s*`)

	slackSender      = dom.MustSelector(`[data-qa='message_sender']`)
	slackMessageText = dom.MustSelector(`[data-qa='message-text']`)
	slackTimestamp   = dom.MustSelector(`a.c-timestamp[data-ts]`)
	slackAnyTs       = dom.MustSelector(`a[data-ts]`)
)

func (r *Slack) Extract(_ context.Context, p *docref.Page) (info *docref.DocInfo, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			info = r.degraded(p)
			err = nil
		}
	}()

	info, extractErr := r.extractMessage(p)
	if extractErr != nil {
		return r.degraded(p), nil
	}
	return info, nil
}

// degraded is the fallback when the message structure cannot be read.
func (r *Slack) degraded(p *docref.Page) *docref.DocInfo {
	return &docref.DocInfo{Link: p.Href(), Title: dom.NormalizeText(p.Title) + " (Slack)"}
}

func (r *Slack) extractMessage(p *docref.Page) (*docref.DocInfo, error) {
	anchor := dom.FindFirstInWholeDFS(p.Root, dom.DirectText(savedForLater))
	if anchor == nil {
		anchor = dom.FindFirstInWholeDFS(p.Root, dom.DirectText(alsoSentToChan))
	}
	if anchor == nil {
		return nil, docref.Errorf(docref.ENOTFOUND, "no saved-message anchor found")
	}

	container := dom.FindNextInDFS(p.Root, anchor, dom.And(
		dom.Tag("div"),
		dom.HasAttr("data-qa", "message_content", "message-text"),
	))
	if container == nil {
		return nil, docref.Errorf(docref.ENOTFOUND, "no message container after anchor")
	}

	var sender string
	if s := dom.Query(container, slackSender); s != nil {
		sender = dom.Attr(s, "data-stringify-text")
	}

	tsAnchor := dom.FindInAncestorChain(container, slackTimestamp)
	if tsAnchor == nil {
		tsAnchor = dom.FindInAncestorChain(container, slackAnyTs)
	}

	var channelName, dateString string
	if tsAnchor != nil {
		if m := slackArchiveRef.FindStringSubmatch(dom.Attr(tsAnchor, "href")); m != nil {
			channelName = r.channelName(p, m[1])
		}
		formatted, tsErr := formatSlackTimestamp(dom.Attr(tsAnchor, "data-ts"))
		if tsErr != nil {
			return nil, tsErr
		}
		dateString = formatted
	}

	markup, text, err := r.messageBody(container)
	if err != nil {
		return nil, err
	}

	return &docref.DocInfo{
		Link:  p.Href(),
		Title: text,
		Message: &docref.Message{
			HTML:        markup,
			Text:        text,
			Sender:      sender,
			DateString:  dateString,
			ChannelName: channelName,
		},
	}, nil
}

// channelName resolves a channel ID to its human name via the element
// carrying the matching data-channel-id, stripping the leading "Message"
// token the sidebar renders.
func (r *Slack) channelName(p *docref.Page, channelID string) string {
	el := dom.Query(p.Root, dom.MustSelector(fmt.Sprintf(`[data-channel-id='%s']`, channelID)))
	if el == nil {
		return ""
	}
	return messagePrefix.ReplaceAllString(strings.TrimSpace(dom.Text(el)), "")
}

// messageBody prefers the nested message-text element; when it is absent
// the whole container's markup and rendered text stand in.
func (r *Slack) messageBody(container *html.Node) (markup, text string, err error) {
	body := dom.Query(container, slackMessageText)
	if body == nil {
		body = container
	}
	markup, err = dom.InnerHTML(body)
	if err != nil {
		return "", "", err
	}
	return markup, strings.TrimSpace(dom.Text(body)), nil
}

// formatSlackTimestamp converts a Slack data-ts value (Unix seconds with
// a microsecond fraction, e.g. "1753899619.438709") to Eastern Time in
// the form "Jul 30, 2025, 2:20 PM ET".
func formatSlackTimestamp(ts string) (string, error) {
	if ts == "" {
		return "", docref.Errorf(docref.EINVALID, "empty timestamp")
	}

	parts := strings.SplitN(ts, ".", 2)
	sec, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return "", docref.Errorf(docref.EINVALID, "bad timestamp %q: %v", ts, err)
	}

	var nsec int64
	if len(parts) == 2 && parts[1] != "" {
		frac := parts[1]
		if len(frac) > 9 {
			frac = frac[:9]
		}
		frac += strings.Repeat("0", 9-len(frac))
		if nsec, err = strconv.ParseInt(frac, 10, 64); err != nil {
			return "", docref.Errorf(docref.EINVALID, "bad timestamp fraction %q: %v", ts, err)
		}
	}

	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		return "", docref.Errorf(docref.EINTERNAL, "load time zone: %v", err)
	}

	return time.Unix(sec, nsec).In(loc).Format("Jan 2, 2006, 3:04 PM") + " ET", nil
}
