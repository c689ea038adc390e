package rules

import (
	"strings"

	"github.com/docref/docref"
)

// DefaultRules returns the rule set in its fixed priority order. Order is
// significant: more specific rules precede general ones targeting the same
// hostname family — the Graphite rule before the GitHub pull-request rule
// before the commit rule, and the logs-specific Datadog rule before the
// general Datadog monitor rule.
func DefaultRules() []docref.Rule {
	return []docref.Rule{
		NewGraphite(),
		NewGithubPullRequest(),
		NewGithubCommit(),
		NewDatadogLogs(),
		NewDatadogMonitor(),
		NewSlack(),
		NewDropboxPaper(),
		NewAwsDocs(),
		NewNotion(),
		NewFigma(),
		NewLaunchDarkly(),
		NewGreenhouse(),
		NewAsana(),
		NewTemporal(),
	}
}

// matchHost reports whether the page hostname is domain or a subdomain of
// it.
func matchHost(p *docref.Page, domain string) bool {
	host := p.Hostname()
	return host == domain || strings.HasSuffix(host, "."+domain)
}

// stripQuery returns the page URL without query string or fragment.
func stripQuery(p *docref.Page) string {
	if p.URL == nil {
		return ""
	}
	u := *p.URL
	u.RawQuery = ""
	u.Fragment = ""
	return u.String()
}

// pathSegments splits the URL path into its non-empty segments.
func pathSegments(p *docref.Page) []string {
	trimmed := strings.Trim(p.Path(), "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

// queryParam returns one decoded query parameter, or "".
func queryParam(p *docref.Page, key string) string {
	if p.URL == nil {
		return ""
	}
	return p.URL.Query().Get(key)
}
