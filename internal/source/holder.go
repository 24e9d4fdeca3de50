package source

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/pslkit/suffixd/internal/psl"
)

// Holder owns the active list and swaps in fresh builds atomically, so
// lookups keep running lock-free while a refresh is in flight. A build
// either fully succeeds and replaces the previous list or leaves it
// untouched; there is no partially loaded state.
type Holder struct {
	src      IListSource
	opts     []psl.Option
	interval time.Duration
	cur      atomic.Pointer[psl.List]
	gen      atomic.Uint64
	sf       singleflight.Group
}

func NewHolder(src IListSource, interval time.Duration, opts ...psl.Option) *Holder {
	return &Holder{src: src, interval: interval, opts: opts}
}

// List returns the active list. It is nil until the first successful
// Load; callers must treat a nil list as "service not ready".
func (h *Holder) List() *psl.List {
	return h.cur.Load()
}

// Generation increments on every successful swap. Cache keys include it
// so stale entries die with the list that produced them.
func (h *Holder) Generation() uint64 {
	return h.gen.Load()
}

// Load fetches and builds the list once; concurrent callers share a
// single attempt.
func (h *Holder) Load(ctx context.Context) error {
	_, err, _ := h.sf.Do("load", func() (interface{}, error) {
		data, err := h.src.Fetch(ctx)
		if err != nil {
			return nil, fmt.Errorf("fetch list from %s: %w", h.src.String(), err)
		}
		list, err := psl.NewListFromBytes(data, h.opts...)
		if err != nil {
			return nil, fmt.Errorf("build list from %s: %w", h.src.String(), err)
		}
		h.cur.Store(list)
		h.gen.Add(1)
		return nil, nil
	})
	return err
}

// Start refreshes the list on the configured interval until ctx stops.
// A failed refresh keeps the previous list in service.
func (h *Holder) Start(ctx context.Context) {
	if h.interval <= 0 {
		return
	}
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := h.Load(ctx); err != nil {
				logutil.GetLogger(ctx).Error("refresh public suffix list failed", zap.Error(err))
				continue
			}
			logutil.GetLogger(ctx).Info("public suffix list refreshed",
				zap.String("source", h.src.String()),
				zap.Uint64("generation", h.gen.Load()),
				zap.Int("rule_count", h.List().Len()))
		}
	}
}
