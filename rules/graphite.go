package rules

import (
	"context"
	"fmt"

	"github.com/docref/docref"
	"github.com/docref/docref/dom"
)

// Graphite extracts pull request titles from the Graphite review UI.
// Graphite uses generated class names with stable prefixes, so the rule
// anchors on class prefixes rather than exact classes, then reads the
// author from the avatar image's alt text inside the header container.
// Runs before the GitHub pull-request rule so review links keep pointing
// at the review tool.
type Graphite struct{}

func NewGraphite() *Graphite { return &Graphite{} }

func (r *Graphite) Name() string { return "graphite" }

func (r *Graphite) Match(p *docref.Page) bool {
	return p.Hostname() == "app.graphite.dev"
}

var graphiteAvatar = dom.MustSelector("img[alt]")

func (r *Graphite) Extract(_ context.Context, p *docref.Page) (*docref.DocInfo, error) {
	titleEl := dom.FindByClassPrefix(p.Root, "PullRequestTitle", "")
	if titleEl == nil {
		return nil, docref.Errorf(docref.ENOTFOUND, "pull request title container not found")
	}
	title := dom.NormalizeText(dom.Text(titleEl))

	var author string
	if header := dom.FindByClassPrefix(p.Root, "PullRequestHeader", ""); header != nil {
		if img := dom.Query(header, graphiteAvatar); img != nil {
			author = dom.NormalizeText(dom.Attr(img, "alt"))
		}
	}

	// Path shape: /github/pr/<owner>/<repo>/<number>/...
	var number string
	if segs := pathSegments(p); len(segs) >= 5 && segs[0] == "github" && segs[1] == "pr" {
		number = segs[4]
	}

	switch {
	case number != "" && author != "":
		title = fmt.Sprintf("%s (#%s by %s)", title, number, author)
	case number != "":
		title = fmt.Sprintf("%s (#%s)", title, number)
	case author != "":
		title = fmt.Sprintf("%s (by %s)", title, author)
	}

	return &docref.DocInfo{Link: stripQuery(p), Title: title}, nil
}
