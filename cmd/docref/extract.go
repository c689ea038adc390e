package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/docref/docref"
	"github.com/docref/docref/dom"
	"golang.org/x/sync/errgroup"
)

// result is one target's extraction, ready to print.
type result struct {
	info    *docref.DocInfo
	clip    *docref.Clip
	content string
}

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	ctx, cancel := context.WithTimeout(deps.Ctx, c.Timeout)
	defer cancel()

	results := make([]*result, len(c.Targets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.Concurrency)
	for i, target := range c.Targets {
		g.Go(func() error {
			res, err := c.process(gctx, deps, target)
			if err != nil {
				return fmt.Errorf("%s: %w", target, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docref.ErrorMessage(err))
		return err
	}

	for i, res := range results {
		if i > 0 {
			fmt.Fprintln(deps.Stdout)
		}
		if err := c.print(deps, res); err != nil {
			return err
		}
	}
	return nil
}

// process fetches one target and runs the full extraction pipeline on it.
func (c *ExtractCmd) process(ctx context.Context, deps *Dependencies, target string) (*result, error) {
	rawHTML, err := deps.Fetcher.Fetch(ctx, target)
	if err != nil {
		return nil, err
	}

	page, err := dom.Parse(rawHTML, target)
	if err != nil {
		return nil, err
	}

	info := deps.Service.GetDocInfo(ctx, page)

	formatted, err := deps.Formatter.Format(info)
	if err != nil {
		return nil, err
	}

	res := &result{info: info, clip: formatted}

	if c.Content {
		extracted, err := deps.Extractor.Extract(rawHTML)
		if err != nil {
			return nil, err
		}
		res.content = extracted.ContentHTML
		if c.Format == "text" || c.Format == "markdown" {
			if res.content, err = deps.Converter.Convert(extracted.ContentHTML); err != nil {
				return nil, err
			}
		}
	}

	return res, nil
}

func (c *ExtractCmd) print(deps *Dependencies, res *result) error {
	switch c.Format {
	case "html":
		fmt.Fprintln(deps.Stdout, res.clip.HTML)
	case "markdown":
		fmt.Fprintf(deps.Stdout, "[%s](%s)\n", res.info.Title, res.info.Link)
	case "json":
		out := struct {
			*docref.DocInfo
			Content string `json:"content,omitempty"`
		}{res.info, res.content}
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	default:
		fmt.Fprintln(deps.Stdout, res.clip.Text)
	}

	if res.content != "" && c.Format != "json" {
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, res.content)
	}
	return nil
}
