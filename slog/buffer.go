package slog

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"sync"
)

// Ensure Buffer implements slog.Handler.
var _ slog.Handler = (*Buffer)(nil)

// Buffer is a slog.Handler that accumulates formatted records in memory
// until Flush writes them out. Extraction output goes to stdout; holding
// the log until the end keeps the two streams from interleaving.
type Buffer struct {
	w *lockedBuffer
	h slog.Handler
}

// NewBuffer creates a Buffer that records text-formatted records at or
// above the given level.
func NewBuffer(level slog.Leveler) *Buffer {
	w := &lockedBuffer{}
	return &Buffer{
		w: w,
		h: slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}),
	}
}

func (b *Buffer) Enabled(ctx context.Context, level slog.Level) bool {
	return b.h.Enabled(ctx, level)
}

func (b *Buffer) Handle(ctx context.Context, record slog.Record) error {
	return b.h.Handle(ctx, record)
}

func (b *Buffer) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Buffer{w: b.w, h: b.h.WithAttrs(attrs)}
}

func (b *Buffer) WithGroup(name string) slog.Handler {
	return &Buffer{w: b.w, h: b.h.WithGroup(name)}
}

// Flush writes the accumulated records to w and resets the buffer.
func (b *Buffer) Flush(w io.Writer) error {
	return b.w.flush(w)
}

type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (w *lockedBuffer) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buf.Write(p)
}

func (w *lockedBuffer) flush(out io.Writer) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.buf.Len() == 0 {
		return nil
	}
	_, err := out.Write(w.buf.Bytes())
	w.buf.Reset()
	return err
}
