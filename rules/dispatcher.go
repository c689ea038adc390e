package rules

import (
	"context"
	"log/slog"

	"github.com/docref/docref"
)

// Ensure Dispatcher implements docref.DocInfoService at compile time.
var _ docref.DocInfoService = (*Dispatcher)(nil)

// Dispatcher evaluates the rule list in fixed priority order and returns
// the first successful extraction. A rule that fails (error or panic) is
// logged and skipped, never retried; the iteration simply continues with
// the next rule. When no rule produces a result, the generic resolver
// supplies the fallback, so GetDocInfo always returns a value.
type Dispatcher struct {
	rules   []docref.Rule
	generic *Generic
	logger  *slog.Logger
}

// NewDispatcher creates a Dispatcher over the given rules. A nil logger
// disables logging.
func NewDispatcher(ruleList []docref.Rule, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Dispatcher{rules: ruleList, generic: NewGeneric(), logger: logger}
}

// GetDocInfo runs the dispatch loop for one extraction request.
func (d *Dispatcher) GetDocInfo(ctx context.Context, page *docref.Page) *docref.DocInfo {
	for _, rule := range d.rules {
		matched, info, err := d.attempt(ctx, rule, page)
		switch {
		case !matched:
		case err != nil:
			d.logger.Warn("rule failed, continuing",
				"rule", rule.Name(),
				"code", docref.ErrorCode(err),
				"error", docref.ErrorMessage(err),
			)
		default:
			d.logger.Debug("rule matched", "rule", rule.Name())
			return info
		}
	}

	d.logger.Debug("no rule matched, using generic resolver")
	return &docref.DocInfo{
		Link:  d.generic.ResolveURL(page),
		Title: d.generic.ResolveTitle(page),
	}
}

// attempt isolates one rule: a panic in Match counts as a non-match, a
// panic in Extract counts as a failed extraction. A broken rule must never
// abort the dispatch loop.
func (d *Dispatcher) attempt(ctx context.Context, rule docref.Rule, page *docref.Page) (matched bool, info *docref.DocInfo, err error) {
	defer func() {
		if r := recover(); r != nil {
			info = nil
			err = docref.Errorf(docref.EINTERNAL, "rule panicked: %v", r)
		}
	}()

	if !rule.Match(page) {
		return false, nil, nil
	}
	matched = true

	info, err = rule.Extract(ctx, page)
	if err == nil && info == nil {
		err = docref.Errorf(docref.EINTERNAL, "rule returned no result")
	}
	return matched, info, err
}
