package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/docref/docref"
	"github.com/docref/docref/dom"
	"github.com/docref/docref/mock"
	docslog "github.com/docref/docref/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingDocInfoService_GetDocInfo(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	page, err := dom.Parse("<html><head><title>t</title></head><body></body></html>", "https://example.com/x")
	require.NoError(t, err)

	inner := &mock.DocInfoService{
		GetDocInfoFn: func(ctx context.Context, p *docref.Page) *docref.DocInfo {
			return &docref.DocInfo{Link: p.Href(), Title: "A Title"}
		},
	}

	svc := docslog.NewLoggingDocInfoService(inner, logger)
	info := svc.GetDocInfo(context.Background(), page)

	require.NotNil(t, info)
	assert.Equal(t, "A Title", info.Title)
	output := buf.String()
	assert.Contains(t, output, "doc info")
	assert.Contains(t, output, "url=https://example.com/x")
	assert.Contains(t, output, `title="A Title"`)
	assert.Contains(t, output, "run_id=")
}
