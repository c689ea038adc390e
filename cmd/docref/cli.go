package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/docref/docref"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Fetcher   docref.Fetcher
	Service   docref.DocInfoService
	Formatter docref.ClipFormatter
	Extractor docref.Extractor
	Converter docref.Converter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Extract ExtractCmd `cmd:"" default:"withargs" help:"Resolve canonical titles and links for one or more URLs"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Targets      []string      `arg:"" help:"URLs to extract references from"`
	Browser      bool          `short:"b" help:"Render pages in a headless browser (needed for Datadog, Slack, and other SPAs)"`
	WaitSelector string        `help:"CSS selector to wait for before snapshotting (implies --browser)"`
	Format       string        `short:"o" default:"text" enum:"text,html,markdown,json" help:"Output format"`
	Content      bool          `help:"Also extract the page's main content under the reference"`
	Extractor    string        `default:"trafilatura" enum:"trafilatura,readability" help:"Content extraction engine for --content"`
	Concurrency  int           `short:"c" default:"4" help:"Concurrent fetch limit"`
	Rate         float64       `help:"Max requests per second (0 = unlimited, HTTP fetcher only)"`
	Timeout      time.Duration `default:"60s" help:"Overall timeout for the whole run"`
	Verbose      bool          `short:"v" help:"Include debug-level dispatch logging"`
}
