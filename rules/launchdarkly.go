package rules

import (
	"context"
	"strings"

	"github.com/docref/docref"
)

// LaunchDarkly builds a canonical flag link by hand from the path
// segments: the flag key names the title, the targeting view is rewritten
// to the monitoring view, and the query string is replaced wholesale with
// the canonical environment parameters.
type LaunchDarkly struct{}

func NewLaunchDarkly() *LaunchDarkly { return &LaunchDarkly{} }

func (r *LaunchDarkly) Name() string { return "launchDarkly" }

func (r *LaunchDarkly) Match(p *docref.Page) bool {
	return p.Hostname() == "app.launchdarkly.com"
}

const launchDarklyQuery = "env=production&selected-env=production"

func (r *LaunchDarkly) Extract(_ context.Context, p *docref.Page) (*docref.DocInfo, error) {
	var key string
	segs := pathSegments(p)
	for i, s := range segs {
		if s == "flags" && i+1 < len(segs) {
			key = segs[i+1]
			break
		}
	}
	if key == "" {
		return nil, docref.Errorf(docref.EUNPROCESSABLE, "no flag key in path %q", p.Path())
	}

	u := *p.URL
	u.Path = strings.Replace(u.Path, "/targeting", "/monitoring", 1)
	u.RawQuery = launchDarklyQuery
	u.Fragment = ""

	return &docref.DocInfo{Link: u.String(), Title: key + " (LaunchDarkly)"}, nil
}
