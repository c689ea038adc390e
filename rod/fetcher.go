// Package rod provides a browser-based implementation of docref.Fetcher
// for pages that only render their content client-side.
package rod

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/docref/docref"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultFetchTimeout is the default timeout for browser fetches.
const DefaultFetchTimeout = 10 * time.Second

// DefaultWaitTimeout bounds the wait for the ready selector. Expiry is
// not an error; the page is snapshotted in whatever state it reached.
const DefaultWaitTimeout = 5 * time.Second

// Ensure Fetcher implements docref.Fetcher at compile time.
var _ docref.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser
// automation. Single-page apps like Datadog and Slack paint their
// content well after the load event, so the fetcher can optionally wait
// for a selector that marks the content as ready.
//
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	manager      *BrowserManager
	fetchTimeout time.Duration
	waitSelector string
	waitTimeout  time.Duration
	closed       atomic.Bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout bounds the whole fetch, navigation included.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.fetchTimeout = d
	}
}

// WithWaitSelector makes Fetch wait until an element matching the CSS
// selector appears before snapshotting the page.
func WithWaitSelector(selector string) Option {
	return func(f *Fetcher) {
		f.waitSelector = selector
	}
}

// WithWaitTimeout bounds the wait for the ready selector.
// Defaults to DefaultWaitTimeout (5s) if not specified.
func WithWaitTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.waitTimeout = d
	}
}

// NewFetcher creates a new Fetcher backed by a managed headless Chrome
// browser. Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		fetchTimeout: DefaultFetchTimeout,
		waitTimeout:  DefaultWaitTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	manager, err := NewBrowserManager()
	if err != nil {
		return nil, err
	}
	f.manager = manager

	return f, nil
}

// Fetch navigates to the URL and returns the rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.closed.Load() {
		return "", docref.Errorf(docref.EINVALID, "fetcher is closed")
	}

	// Check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, f.fetchTimeout)
	defer cancel()

	page, err := f.manager.Browser().Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()

	// Set context for all subsequent operations
	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", err
	}

	if err := page.WaitLoad(); err != nil {
		return "", err
	}

	if f.waitSelector != "" {
		// A missing element is tolerated; extraction rules degrade on
		// their own when the content never appeared.
		_, _ = page.Timeout(f.waitTimeout).Element(f.waitSelector)
	}

	html, err := page.HTML()
	if err != nil {
		return "", err
	}

	f.manager.IncrementPageCount()
	return html, nil
}

// LauncherPID returns the process ID of the browser launcher.
// This method exists for testing purposes to verify proper cleanup.
func (f *Fetcher) LauncherPID() int {
	return f.manager.LauncherPID()
}

// Close releases browser resources. Close is safe to call multiple times.
func (f *Fetcher) Close() error {
	f.closed.Store(true)
	return f.manager.Close()
}
