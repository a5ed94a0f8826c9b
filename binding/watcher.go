package binding

import (
	"context"
	"reflect"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/vortex-fintech/go-brmask/mask"
)

// Watcher binds fields as they appear. Each field is classified once and,
// unless it is KindNone, bound once; a field reported again keeps its
// first binding, or stays unbound.
type Watcher struct {
	opts []Option
	o    Options

	mu    sync.Mutex
	bound map[Field]*Binding // nil for fields classified as KindNone
}

func NewWatcher(opts ...Option) *Watcher {
	return &Watcher{
		opts:  opts,
		o:     buildOptions(opts),
		bound: make(map[Field]*Binding),
	}
}

// Bind classifies f and binds it. A pre-filled value is formatted right away.
// The second result is false when f is nil, KindNone or was already seen.
func (w *Watcher) Bind(f Field) (*Binding, bool) {
	if isNil(f) {
		return nil, false
	}

	w.mu.Lock()
	if b, ok := w.bound[f]; ok {
		w.mu.Unlock()
		return b, false
	}

	kind := mask.Classify(f)
	w.o.Metrics.IncClassified(kind.String())
	if kind == mask.KindNone {
		w.bound[f] = nil
		w.mu.Unlock()
		return nil, false
	}

	b := New(f, kind, w.opts...)
	w.bound[f] = b
	w.mu.Unlock()

	b.log.Debugw("field bound", "name", f.Name(), "id", f.ID())
	if f.Text() != "" {
		b.run("bind")
	}
	return b, true
}

// Lookup returns the binding of f, if any.
func (w *Watcher) Lookup(f Field) (*Binding, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	b := w.bound[f]
	return b, b != nil
}

// Len is the number of bound fields.
func (w *Watcher) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	n := 0
	for _, b := range w.bound {
		if b != nil {
			n++
		}
	}
	return n
}

// Run binds every field received on streams until all of them are closed or
// ctx is done. It returns ctx.Err() in the latter case.
func (w *Watcher) Run(ctx context.Context, streams ...<-chan Field) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, s := range streams {
		if s == nil {
			continue
		}
		g.Go(func() error {
			for {
				select {
				case <-gctx.Done():
					return gctx.Err()
				case f, ok := <-s:
					if !ok {
						return nil
					}
					w.Bind(f)
				}
			}
		})
	}

	if err := g.Wait(); err != nil {
		w.o.Logger.Debugw("watcher stopped", "err", err)
		return err
	}
	return nil
}

// isNil also catches a nil pointer wrapped in the interface.
func isNil(f Field) bool {
	if f == nil {
		return true
	}
	v := reflect.ValueOf(f)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}
