package mock

import (
	"context"

	"github.com/docref/docref"
)

var _ docref.DocInfoService = (*DocInfoService)(nil)

// DocInfoService is a mock implementation of docref.DocInfoService.
type DocInfoService struct {
	GetDocInfoFn func(ctx context.Context, page *docref.Page) *docref.DocInfo
}

func (s *DocInfoService) GetDocInfo(ctx context.Context, page *docref.Page) *docref.DocInfo {
	return s.GetDocInfoFn(ctx, page)
}
