// Command docref resolves a canonical "title + link" reference for live
// web pages, with site-specific extraction rules for the services that
// bury their useful titles in page chrome.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	_ "time/tzdata"

	"github.com/alecthomas/kong"
	"github.com/docref/docref"
	"github.com/docref/docref/clip"
	"github.com/docref/docref/htmltomarkdown"
	dochttp "github.com/docref/docref/http"
	"github.com/docref/docref/readability"
	"github.com/docref/docref/rod"
	"github.com/docref/docref/rules"
	docslog "github.com/docref/docref/slog"
	"github.com/docref/docref/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Fetcher overrides the flag-selected fetcher when set. Used by
	// end-to-end tests to avoid network access.
	Fetcher docref.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docref"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no URL specified. Run 'docref --help' for usage")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Logs accumulate in memory and flush to stderr at the end so they
	// never interleave with extraction output on stdout.
	level := slog.LevelInfo
	if cli.Extract.Verbose {
		level = slog.LevelDebug
	}
	buffer := docslog.NewBuffer(level)
	logger := slog.New(buffer)
	defer buffer.Flush(stderr)
	deps.Logger = logger

	fetcher, err := m.newFetcher(&cli.Extract)
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --browser")
		return fmt.Errorf("failed to start fetcher: %w", err)
	}
	defer fetcher.Close()
	deps.Fetcher = docslog.NewLoggingFetcher(fetcher, logger)

	deps.Service = docslog.NewLoggingDocInfoService(
		rules.NewDispatcher(rules.DefaultRules(), logger),
		logger,
	)
	deps.Formatter = clip.NewFormatter()
	deps.Converter = htmltomarkdown.NewConverter()

	switch cli.Extract.Extractor {
	case "readability":
		deps.Extractor = readability.NewExtractor()
	default:
		deps.Extractor = trafilatura.NewExtractor()
	}

	return kongCtx.Run(deps)
}

// newFetcher picks the transport for the run: the injected test fetcher,
// a headless browser, or plain HTTP.
func (m *Main) newFetcher(cmd *ExtractCmd) (docref.Fetcher, error) {
	if m.Fetcher != nil {
		return m.Fetcher, nil
	}

	if cmd.Browser || cmd.WaitSelector != "" {
		var opts []rod.Option
		if cmd.WaitSelector != "" {
			opts = append(opts, rod.WithWaitSelector(cmd.WaitSelector))
		}
		return rod.NewFetcher(opts...)
	}

	return dochttp.NewFetcher(dochttp.WithRateLimit(cmd.Rate)), nil
}
