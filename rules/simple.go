package rules

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/docref/docref"
	"github.com/docref/docref/dom"
)

// The simple rewrite rules: locate one element or apply one regex to the
// document title, append or transform a fixed suffix, and normalize the
// link.

// DropboxPaper labels Dropbox Paper documents.
type DropboxPaper struct{}

func NewDropboxPaper() *DropboxPaper { return &DropboxPaper{} }

func (r *DropboxPaper) Name() string { return "dropboxPaper" }

func (r *DropboxPaper) Match(p *docref.Page) bool {
	return p.Hostname() == "paper.dropbox.com"
}

var dropboxSuffix = regexp.MustCompile(`\s+[-–—]\s+Dropbox Paper$`)

func (r *DropboxPaper) Extract(_ context.Context, p *docref.Page) (*docref.DocInfo, error) {
	title := dropboxSuffix.ReplaceAllString(dom.NormalizeText(p.Title), "")
	return &docref.DocInfo{Link: stripQuery(p), Title: title + " (Dropbox Paper)"}, nil
}

// AwsDocs reorders AWS documentation titles from "Page - Service" to
// "Service: Page".
type AwsDocs struct{}

func NewAwsDocs() *AwsDocs { return &AwsDocs{} }

func (r *AwsDocs) Name() string { return "awsDocs" }

func (r *AwsDocs) Match(p *docref.Page) bool {
	return matchHost(p, "aws.amazon.com")
}

var awsTitle = regexp.MustCompile(`^(?P<page>.+) - (?P<service>[^-]+)$`)

func (r *AwsDocs) Extract(_ context.Context, p *docref.Page) (*docref.DocInfo, error) {
	title := dom.NormalizeText(p.Title)
	if m := awsTitle.FindStringSubmatch(title); m != nil {
		title = fmt.Sprintf("%s: %s", m[awsTitle.SubexpIndex("service")], m[awsTitle.SubexpIndex("page")])
	}
	return &docref.DocInfo{Link: p.Href(), Title: title}, nil
}

// Notion labels Notion pages and drops tracking query parameters.
type Notion struct{}

func NewNotion() *Notion { return &Notion{} }

func (r *Notion) Name() string { return "notion" }

func (r *Notion) Match(p *docref.Page) bool {
	return matchHost(p, "notion.so") || matchHost(p, "notion.site")
}

func (r *Notion) Extract(_ context.Context, p *docref.Page) (*docref.DocInfo, error) {
	return &docref.DocInfo{Link: stripQuery(p), Title: dom.NormalizeText(p.Title) + " (Notion)"}, nil
}

// Figma labels Figma files, keeping only the node-id parameter so the
// link still points at the selected frame.
type Figma struct{}

func NewFigma() *Figma { return &Figma{} }

func (r *Figma) Name() string { return "figma" }

func (r *Figma) Match(p *docref.Page) bool {
	if !matchHost(p, "figma.com") {
		return false
	}
	path := p.Path()
	for _, prefix := range []string{"/design/", "/file/", "/board/", "/proto/"} {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

var figmaSuffix = regexp.MustCompile(`\s+[-–—]\s+Figma$`)

func (r *Figma) Extract(_ context.Context, p *docref.Page) (*docref.DocInfo, error) {
	title := figmaSuffix.ReplaceAllString(dom.NormalizeText(p.Title), "")

	u := *p.URL
	q := url.Values{}
	if node := queryParam(p, "node-id"); node != "" {
		q.Set("node-id", node)
	}
	u.RawQuery = q.Encode()
	u.Fragment = ""

	return &docref.DocInfo{Link: u.String(), Title: title + " (Figma)"}, nil
}

// Greenhouse labels job application pages.
type Greenhouse struct{}

func NewGreenhouse() *Greenhouse { return &Greenhouse{} }

func (r *Greenhouse) Name() string { return "greenhouse" }

func (r *Greenhouse) Match(p *docref.Page) bool {
	return matchHost(p, "greenhouse.io")
}

var greenhouseTitle = regexp.MustCompile(`^Job Application for (.+)$`)

func (r *Greenhouse) Extract(_ context.Context, p *docref.Page) (*docref.DocInfo, error) {
	title := dom.NormalizeText(p.Title)
	if m := greenhouseTitle.FindStringSubmatch(title); m != nil {
		title = m[1]
	}
	return &docref.DocInfo{Link: stripQuery(p), Title: title + " (Greenhouse)"}, nil
}

// Asana extracts the task name from the document title, dropping the
// leading status glyph and the project segment, and canonicalizes the link
// with focus=true so the task pane opens on follow.
type Asana struct{}

func NewAsana() *Asana { return &Asana{} }

func (r *Asana) Name() string { return "asana" }

func (r *Asana) Match(p *docref.Page) bool {
	return p.Hostname() == "app.asana.com"
}

var asanaStatus = regexp.MustCompile(`^[●○◌◍◎◐◑◒◓◔◕•✓✔\s]+`)

func (r *Asana) Extract(_ context.Context, p *docref.Page) (*docref.DocInfo, error) {
	title := asanaStatus.ReplaceAllString(dom.NormalizeText(p.Title), "")
	if s, ok := strings.CutSuffix(title, " - Asana"); ok {
		title = s
	}
	parts := strings.Split(title, " - ")
	task := strings.TrimSpace(parts[len(parts)-1])

	link := p.Href()
	if p.URL != nil && !p.URL.Query().Has("focus") {
		u := *p.URL
		q := u.Query()
		q.Set("focus", "true")
		u.RawQuery = q.Encode()
		link = u.String()
	}

	return &docref.DocInfo{Link: link, Title: task + " (Asana)"}, nil
}

// Temporal labels workflow pages with the workflow ID from the path.
type Temporal struct{}

func NewTemporal() *Temporal { return &Temporal{} }

func (r *Temporal) Name() string { return "temporal" }

func (r *Temporal) Match(p *docref.Page) bool {
	return matchHost(p, "temporal.io")
}

func (r *Temporal) Extract(_ context.Context, p *docref.Page) (*docref.DocInfo, error) {
	segs := pathSegments(p)
	title := dom.NormalizeText(p.Title)
	if len(segs) >= 4 && segs[0] == "namespaces" && segs[2] == "workflows" {
		title = segs[3]
	}
	return &docref.DocInfo{Link: stripQuery(p), Title: title + " (Temporal)"}, nil
}
