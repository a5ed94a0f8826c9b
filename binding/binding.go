package binding

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/vortex-fintech/go-brmask/logger"
	"github.com/vortex-fintech/go-brmask/logutil"
	"github.com/vortex-fintech/go-brmask/mask"
)

// Binding keeps one field formatted according to its Kind.
//
// Passes on the same field never overlap: each one holds the field's turn
// while it reads and writes. A paste takes the turn as soon as it is
// reported and keeps it through the delay, so a notification arriving in the
// meantime runs after the deferred pass. A notification arriving while a
// pass is writing cannot wait for the turn (it may be that very write
// echoing back), so it marks the field dirty and the pass runs once more.
type Binding struct {
	id    uuid.UUID
	field Field
	kind  mask.Kind
	opts  Options
	log   logger.LoggerInterface

	turn    chan struct{}
	writing atomic.Bool
	dirty   atomic.Bool
}

// New binds f with the given kind. KindNone yields a binding whose passes
// never write.
func New(f Field, kind mask.Kind, opts ...Option) *Binding {
	o := buildOptions(opts)

	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}

	return &Binding{
		id:    id,
		field: f,
		kind:  kind,
		opts:  o,
		log:   o.Logger.With("binding_id", id.String(), "kind", kind.String()),
		turn:  make(chan struct{}, 1),
	}
}

func (b *Binding) ID() uuid.UUID   { return b.id }
func (b *Binding) Kind() mask.Kind { return b.kind }
func (b *Binding) Field() Field    { return b.field }

// Format runs one pass now, regardless of origin.
func (b *Binding) Format() mask.Outcome {
	return b.run("format")
}

// HandleInput reacts to an edit. Paste, undo and redo edits are left as-is.
func (b *Binding) HandleInput(origin Origin) mask.Outcome {
	if origin.skipsInput() {
		return mask.Outcome{Kind: b.kind, Selection: b.field.Selection()}
	}
	return b.run("input")
}

// HandleBlur reformats when the field loses focus.
func (b *Binding) HandleBlur() mask.Outcome {
	return b.run("blur")
}

// HandlePaste schedules a pass after the paste delay. The returned channel is
// closed once the pass has run or ctx was cancelled first. A paste reported
// while a pass is writing is folded into that pass.
func (b *Binding) HandlePaste(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	if b.writing.Load() {
		b.dirty.Store(true)
		close(done)
		return done
	}

	b.turn <- struct{}{}
	go func() {
		defer close(done)
		defer func() { <-b.turn }()

		start := b.opts.Clock.Now()
		if err := b.opts.Clock.Sleep(ctx, b.opts.PasteDelay); err != nil {
			if !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
				b.log.Warnw("paste wait failed", "err", err)
			} else {
				b.log.Debugw("paste recheck cancelled", "err", err)
			}
			return
		}
		b.opts.Metrics.IncPasteRecheck()
		b.log.Debugw("paste recheck", "waited", b.opts.Clock.Since(start))
		b.pass("paste")
	}()
	return done
}

func (b *Binding) run(trigger string) mask.Outcome {
	if b.writing.Load() {
		b.dirty.Store(true)
		return mask.Outcome{Kind: b.kind, Selection: b.field.Selection()}
	}

	b.turn <- struct{}{}
	defer func() { <-b.turn }()
	return b.pass(trigger)
}

// pass must be called while holding the turn. It repeats while notifications
// keep arriving during its writes; a repeat that only sees its own echo
// finds the text formatted and stops.
func (b *Binding) pass(trigger string) mask.Outcome {
	var out mask.Outcome
	for i := 0; ; i++ {
		b.writing.Store(true)
		next := mask.Pass(b.field, b.kind)
		b.writing.Store(false)

		if i == 0 || next.Written {
			out = next
			b.record(trigger, next)
		}
		if !b.dirty.Swap(false) {
			return out
		}
		trigger = "dirty"
	}
}

func (b *Binding) record(trigger string, out mask.Outcome) {
	if out.Format == 0 {
		return
	}

	result := "unchanged"
	if out.Written {
		result = "written"
	}
	b.opts.Metrics.IncPass(out.Format.String(), result)
	b.log.Debugw("mask pass",
		"trigger", trigger,
		"format", out.Format.String(),
		"result", result,
		"caret", out.Selection.Start,
		"value", logutil.MaskDigits(b.field.Text()),
	)
}
