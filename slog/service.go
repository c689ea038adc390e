package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/docref/docref"
	"github.com/google/uuid"
)

// Ensure LoggingDocInfoService implements docref.DocInfoService.
var _ docref.DocInfoService = (*LoggingDocInfoService)(nil)

// LoggingDocInfoService wraps a DocInfoService with per-extraction
// logging. Each call gets a run ID so the dispatch trace for one page can
// be grepped out of interleaved output.
type LoggingDocInfoService struct {
	next   docref.DocInfoService
	logger *slog.Logger
}

// NewLoggingDocInfoService creates a new LoggingDocInfoService.
func NewLoggingDocInfoService(next docref.DocInfoService, logger *slog.Logger) *LoggingDocInfoService {
	return &LoggingDocInfoService{next: next, logger: logger}
}

// GetDocInfo delegates to the wrapped service and logs the operation.
func (s *LoggingDocInfoService) GetDocInfo(ctx context.Context, page *docref.Page) *docref.DocInfo {
	logger := s.logger.With("run_id", uuid.NewString())

	begin := time.Now()
	info := s.next.GetDocInfo(ctx, page)

	var title string
	if info != nil {
		title = info.Title
	}
	logger.Info("doc info",
		"url", page.Href(),
		"title", title,
		"duration", time.Since(begin),
	)
	return info
}
