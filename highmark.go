// Package highmark toggles ==...== highlights around the current
// selection of a host document editor.
//
// The host binds a View (the active document, its display mode, and
// either a live buffer or a rendered selection) and a store.Store
// (whole-document read and overwrite). A single parameterless action,
// Toggler.Toggle, then wraps the selected text in the delimiter pair or
// strips the pair if already present. Buffer mode edits the live buffer
// in place; rendered mode locates the selection in the serialized
// document by surrounding context, structural line, or global
// uniqueness, and overwrites the document wholesale. When no occurrence
// can be singled out the toggle refuses rather than guessing.
package highmark

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/13byte/highmark/buffer"
	"github.com/13byte/highmark/cache"
	"github.com/13byte/highmark/config"
	"github.com/13byte/highmark/logging"
	"github.com/13byte/highmark/mark"
	"github.com/13byte/highmark/render"
	"github.com/13byte/highmark/store"
	"github.com/13byte/highmark/toggle"
)

// Mode identifies how the active view presents its document.
type Mode uint8

const (
	// ModeBuffer is a live editable buffer (source view).
	ModeBuffer Mode = iota
	// ModeRendered is a read-only rendered preview.
	ModeRendered
)

// String returns a string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeBuffer:
		return "buffer"
	case ModeRendered:
		return "rendered"
	default:
		return "unknown"
	}
}

// View is the host's active document view. Buffer() and Selection()
// matter in ModeBuffer; Rendered() and Refresh() matter in ModeRendered.
type View interface {
	// Path returns the document name under the store.
	Path() string

	// Mode returns the view's display mode.
	Mode() Mode

	// Buffer returns the live buffer, or nil outside buffer mode.
	Buffer() *buffer.Buffer

	// Selection returns the selected region of the live buffer.
	Selection() buffer.Range

	// Rendered returns the selection within the rendered document tree.
	Rendered() render.Selection

	// Refresh re-renders the view after the document was overwritten.
	Refresh()
}

// Notifier receives transient user-facing notices.
type Notifier interface {
	Info(msg string)
	Error(msg string)
}

// NopNotifier discards all notices.
type NopNotifier struct{}

func (NopNotifier) Info(string)  {}
func (NopNotifier) Error(string) {}

// LoggerNotifier forwards notices to a Logger, for hosts without a
// transient-message surface.
type LoggerNotifier struct {
	Logger *logging.Logger
}

func (n LoggerNotifier) Info(msg string)  { n.Logger.Info(msg) }
func (n LoggerNotifier) Error(msg string) { n.Logger.Error(msg) }

// Toggler routes toggle invocations to the buffer or rendered path.
type Toggler struct {
	store    store.Store
	notifier Notifier
	logger   *logging.Logger
	metrics  *Metrics
	marker   mark.Marker
	radius   int

	cache    *toggle.Cache
	cacheSet bool
	ownCache bool
	cacheCap int
	cacheTTL time.Duration
	sweep    time.Duration

	closed atomic.Bool
}

// New creates a Toggler over the given document store. Unless WithCache
// supplies one, the Toggler owns a memo cache and runs its periodic
// sweeper until Close.
func New(st store.Store, opts ...Option) *Toggler {
	t := &Toggler{
		store:    st,
		notifier: NopNotifier{},
		logger:   logging.NullLogger,
		metrics:  NewMetrics(),
		marker:   mark.Default(),
		radius:   config.DefaultContextRadius,
		cacheCap: config.DefaultCacheCapacity,
		cacheTTL: config.DefaultCacheTTL,
		sweep:    config.DefaultSweepInterval,
	}

	for _, opt := range opts {
		opt(t)
	}

	if !t.cacheSet {
		t.cache = toggle.NewCache(t.cacheCap, t.cacheTTL)
		t.ownCache = true
		if t.sweep > 0 {
			t.cache.StartSweeper(t.sweep)
		}
	}
	return t
}

// Toggle adds the highlight delimiters around the view's current
// selection, or removes them if already present. One invocation performs
// at most one read and one wholesale write; on any error the document is
// left unmodified. The outcome is reported to the Notifier.
func (t *Toggler) Toggle(ctx context.Context, view View) (res toggle.Result, err error) {
	if t.closed.Load() {
		return toggle.Result{}, ErrClosed
	}

	start := time.Now()
	mode := ModeBuffer
	if view != nil {
		mode = view.Mode()
	}
	log := t.logger.WithComponent("toggler").WithField("op", uuid.New().String())

	defer func() {
		if r := recover(); r != nil {
			stack := make([]byte, 4096)
			n := runtime.Stack(stack, false)

			res = toggle.Result{}
			err = NewRecoveredPanicError(r, string(stack[:n]))

			t.metrics.RecordPanic(mode)
			log.Error("toggle panic: %v", r)
			t.notifier.Error("Highlight toggle failed")
		}
		t.metrics.RecordToggle(mode, res.Action, time.Since(start), err)
	}()

	if view == nil {
		t.notifier.Error("No active document")
		return toggle.Result{}, ErrNoView
	}

	switch mode {
	case ModeBuffer:
		res, err = t.toggleBuffer(view, log)
	case ModeRendered:
		res, err = t.toggleRendered(ctx, view, log)
	default:
		err = NewOperationError("toggle", view.Path(), fmt.Errorf("unknown view mode %d", mode))
	}

	if err != nil {
		log.Warn("toggle failed for %s: %v", view.Path(), err)
		t.notifyError(err)
		return toggle.Result{}, err
	}

	switch res.Action {
	case toggle.ActionAdded:
		t.notifier.Info("Highlight added")
	case toggle.ActionRemoved:
		t.notifier.Info("Highlight removed")
	}
	log.Info("highlight %s in %s (%s match)", res.Action, view.Path(), res.Strategy)

	return res, nil
}

// toggleBuffer edits the live buffer selection in place.
func (t *Toggler) toggleBuffer(view View, log *logging.Logger) (toggle.Result, error) {
	sel := view.Selection()
	log.Debug("buffer toggle %s in %s", sel, view.Path())

	return toggle.BufferSelection(view.Buffer(), sel, toggle.WithMarker(t.marker))
}

// toggleRendered locates the rendered selection in the serialized
// document and overwrites the document wholesale.
func (t *Toggler) toggleRendered(ctx context.Context, view View, log *logging.Logger) (toggle.Result, error) {
	name := view.Path()

	text, tctx, err := render.Extract(view.Rendered(), t.radius)
	if err != nil {
		return toggle.Result{}, NewOperationError("extract", name, err)
	}
	log.Debug("rendered toggle %q in %s", text, name)

	doc, err := t.store.Read(ctx, name)
	if err != nil {
		return toggle.Result{}, NewOperationError("read", name, err)
	}

	res, err := toggle.Document(doc, text, tctx,
		toggle.WithMarker(t.marker),
		toggle.WithCache(t.cache),
	)
	if err != nil {
		return toggle.Result{}, err
	}

	if err := t.store.Overwrite(ctx, name, res.Text); err != nil {
		return toggle.Result{}, NewOperationError("overwrite", name, err)
	}

	view.Refresh()
	return res, nil
}

// notifyError translates a toggle failure into a user-facing notice.
func (t *Toggler) notifyError(err error) {
	switch {
	case errors.Is(err, ErrNoView), errors.Is(err, toggle.ErrNoBuffer):
		t.notifier.Error("No active document")
	case errors.Is(err, toggle.ErrEmptySelection), errors.Is(err, render.ErrNoSelection):
		t.notifier.Error("Nothing selected")
	case errors.Is(err, toggle.ErrNotFound):
		t.notifier.Error("Selected text not found in document")
	case errors.Is(err, toggle.ErrAmbiguous):
		t.notifier.Error("Selection matches multiple places; select more surrounding text")
	default:
		t.notifier.Error("Highlight toggle failed")
	}
}

// Close stops the owned memo cache sweeper. Further Toggle calls return
// ErrClosed. Close is idempotent.
func (t *Toggler) Close() error {
	if t.closed.Swap(true) {
		return nil
	}
	if t.ownCache && t.cache != nil {
		t.cache.StopSweeper()
	}
	return nil
}

// Metrics returns the toggle metrics collector.
func (t *Toggler) Metrics() *Metrics {
	return t.metrics
}

// CacheStats returns memo cache statistics, zero if memoization is off.
func (t *Toggler) CacheStats() cache.Stats {
	if t.cache == nil {
		return cache.Stats{}
	}
	return t.cache.Stats()
}

// Marker returns the delimiter pair in use.
func (t *Toggler) Marker() mark.Marker {
	return t.marker
}
