package rules

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/docref/docref"
	"github.com/docref/docref/dom"
	"golang.org/x/net/html"
)

// DatadogLogs extracts the selected log line from the Datadog log
// explorer: it anchors on the "Log Message" label and takes the next
// pre/code element in document order. Runs before the general Datadog
// monitor rule.
type DatadogLogs struct{}

func NewDatadogLogs() *DatadogLogs { return &DatadogLogs{} }

func (r *DatadogLogs) Name() string { return "datadogLogs" }

func (r *DatadogLogs) Match(p *docref.Page) bool {
	return matchHost(p, "datadoghq.com") && strings.HasPrefix(p.Path(), "/logs")
}

var logMessageLabel = regexp.MustCompile(`^\s*Log Message\s*$`)

// Log lines can be huge; the title keeps the head of the message.
const logTitleMax = 140

func (r *DatadogLogs) Extract(_ context.Context, p *docref.Page) (*docref.DocInfo, error) {
	anchor := dom.FindFirstInWholeDFS(p.Root, dom.DirectText(logMessageLabel))
	if anchor == nil {
		return nil, docref.Errorf(docref.ENOTFOUND, `"Log Message" label not found`)
	}

	body := dom.FindNextInDFS(p.Root, anchor, dom.Or(dom.Tag("pre"), dom.Tag("code")))
	if body == nil {
		return nil, docref.Errorf(docref.ENOTFOUND, "log message body not found")
	}

	text := dom.NormalizeText(dom.Text(body))
	if runes := []rune(text); len(runes) > logTitleMax {
		text = string(runes[:logTitleMax]) + "…"
	}

	return &docref.DocInfo{Link: p.Href(), Title: text + " (Datadog Logs)"}, nil
}

// DatadogMonitor reconstructs a monitor alert title. The page renders the
// alert as an h3 that combines the status marker, the curly-brace scope
// tags, and the monitor name; the rule strips the marker, relocates every
// {key:value} tag to the end of the string, and appends the selected time
// range.
type DatadogMonitor struct{}

func NewDatadogMonitor() *DatadogMonitor { return &DatadogMonitor{} }

func (r *DatadogMonitor) Name() string { return "datadogMonitor" }

func (r *DatadogMonitor) Match(p *docref.Page) bool {
	return matchHost(p, "datadoghq.com")
}

var (
	alertMarker = regexp.MustCompile(`^\[(?:Triggered|Warn)[^\]]*\]\s*`)
	monitorTag  = regexp.MustCompile(`\{[^{}]*:[^{}]*\}`)

	monitorH1    = dom.MustSelector("h1")
	monitorInput = dom.MustSelector("input")
)

func (r *DatadogMonitor) Extract(_ context.Context, p *docref.Page) (*docref.DocInfo, error) {
	var h1Text string
	if h1 := dom.Query(p.Root, monitorH1); h1 != nil {
		h1Text = dom.NormalizeText(dom.Text(h1))
	}

	alert := r.findAlertHeading(p, h1Text)

	var title string
	switch {
	case alert != "":
		title = reorderMonitorTags(alertMarker.ReplaceAllString(alert, ""))
	case h1Text != "":
		title = h1Text
	default:
		title = dom.NormalizeText(p.Title)
	}

	return &docref.DocInfo{Link: p.Href(), Title: title + r.timeRange(p)}, nil
}

// findAlertHeading scans h3 elements in document order and returns the
// first one carrying a Triggered/Warn marker that also mentions the h1
// text (when an h1 exists). First qualifying h3 wins; no further scanning.
func (r *DatadogMonitor) findAlertHeading(p *docref.Page, h1Text string) string {
	var alert string
	dom.FindFirstInWholeDFS(p.Root, func(n *html.Node) bool {
		if n.Data != "h3" {
			return false
		}
		text := dom.NormalizeText(dom.Text(n))
		if !strings.Contains(text, "[Triggered") && !strings.Contains(text, "[Warn") {
			return false
		}
		if h1Text != "" && !strings.Contains(text, h1Text) {
			return false
		}
		alert = text
		return true
	})
	return alert
}

// reorderMonitorTags removes every {key:value} tag from its in-place
// position (collapsing the surrounding whitespace to a single space) and
// appends the tags, concatenated with no separator, to the end. When the
// last tag already sat at the end of the original text, exactly one space
// precedes the appended block; otherwise none does. The space rule looks
// like a formatting artifact of the upstream page, but it is load-bearing
// for matching existing references, so it is preserved as is.
func reorderMonitorTags(s string) string {
	s = strings.TrimSpace(s)
	tags := monitorTag.FindAllString(s, -1)
	if len(tags) == 0 {
		return s
	}

	stripped := strings.Join(strings.Fields(monitorTag.ReplaceAllString(s, " ")), " ")

	sep := ""
	if strings.HasSuffix(s, tags[len(tags)-1]) {
		sep = " "
	}
	return stripped + sep + strings.Join(tags, "")
}

// timeRange reads the date-range picker's input value and formats it as a
// parenthesized suffix. Any failure yields the empty string; the title is
// still useful without the range.
func (r *DatadogMonitor) timeRange(p *docref.Page) (out string) {
	defer func() {
		if rec := recover(); rec != nil {
			out = ""
		}
	}()

	container := dom.FindByClassPrefix(p.Root, "druids_time_date-range-picker", "")
	if container == nil {
		return ""
	}
	input := dom.Query(container, monitorInput)
	if input == nil {
		return ""
	}
	value := strings.TrimSpace(dom.Attr(input, "value"))
	if value == "" {
		return ""
	}
	return fmt.Sprintf(" (%s)", value)
}
