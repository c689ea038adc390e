package rules

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/docref/docref"
	"github.com/docref/docref/dom"
)

// GithubPullRequest parses the document title of a pull request page,
// which GitHub renders as
// "<title> by <author> · Pull Request #<n> · <owner>/<repo>".
// A title that does not match this exact shape is an extraction failure;
// the dispatcher logs it and moves on.
type GithubPullRequest struct{}

func NewGithubPullRequest() *GithubPullRequest { return &GithubPullRequest{} }

func (r *GithubPullRequest) Name() string { return "githubPullRequest" }

var githubPRPath = regexp.MustCompile(`^/[^/]+/[^/]+/pull/\d+`)

func (r *GithubPullRequest) Match(p *docref.Page) bool {
	return matchHost(p, "github.com") && githubPRPath.MatchString(p.Path())
}

var githubPRTitle = regexp.MustCompile(`^(?P<title>.+) by (?P<author>.+?) · Pull Request #(?P<number>\d+) · (?P<repo>\S+)$`)

func (r *GithubPullRequest) Extract(_ context.Context, p *docref.Page) (*docref.DocInfo, error) {
	title := dom.NormalizeText(p.Title)
	m := githubPRTitle.FindStringSubmatch(title)
	if m == nil {
		return nil, docref.Errorf(docref.EUNPROCESSABLE, "pull request title %q does not match the expected shape", title)
	}

	prTitle := m[githubPRTitle.SubexpIndex("title")]
	number := m[githubPRTitle.SubexpIndex("number")]
	repo := m[githubPRTitle.SubexpIndex("repo")]

	return &docref.DocInfo{
		Link:  stripQuery(p),
		Title: fmt.Sprintf("%s (%s#%s)", prTitle, repo, number),
	}, nil
}

// GithubCommit rewrites commit page titles from
// "<message> · <owner>/<repo>@<sha> · GitHub" to
// "<message> (<owner>/<repo>@<sha>)", falling back to stripping the
// " · GitHub" suffix when the title has drifted from that shape.
type GithubCommit struct{}

func NewGithubCommit() *GithubCommit { return &GithubCommit{} }

func (r *GithubCommit) Name() string { return "githubCommit" }

func (r *GithubCommit) Match(p *docref.Page) bool {
	return matchHost(p, "github.com") && strings.Contains(p.Path(), "/commit/")
}

var githubCommitTitle = regexp.MustCompile(`^(?P<message>.+) · (?P<repo>[^\s·]+)@(?P<sha>[0-9a-f]{7,40}) · GitHub$`)

func (r *GithubCommit) Extract(_ context.Context, p *docref.Page) (*docref.DocInfo, error) {
	title := dom.NormalizeText(p.Title)
	if m := githubCommitTitle.FindStringSubmatch(title); m != nil {
		title = fmt.Sprintf("%s (%s@%s)",
			m[githubCommitTitle.SubexpIndex("message")],
			m[githubCommitTitle.SubexpIndex("repo")],
			m[githubCommitTitle.SubexpIndex("sha")],
		)
	} else {
		title = strings.TrimSuffix(title, " · GitHub")
	}
	return &docref.DocInfo{Link: stripQuery(p), Title: title}, nil
}
