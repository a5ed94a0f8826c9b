package binding

import (
	"sync"
	"unicode/utf8"

	"github.com/vortex-fintech/go-brmask/mask"
)

// Field is a bindable input: its text and caret plus the attributes read by
// the classifier. Implementations are used as map keys by Watcher, so they
// must be comparable (pointer types are).
type Field interface {
	mask.Field
	mask.FieldInfo
}

// FieldAttrs are the static attributes of a TextField.
type FieldAttrs struct {
	Hint        string
	HasHint     bool
	Name        string
	ID          string
	Placeholder string
}

// TextField is an in-memory Field safe for concurrent use.
// OnChange, when set, is called after every SetText with the lock released,
// the way a widget fires its input event.
type TextField struct {
	mu    sync.RWMutex
	attrs FieldAttrs
	text  string
	sel   mask.Selection

	OnChange func()
}

// NewTextField returns a field holding text with the caret at its end.
func NewTextField(attrs FieldAttrs, text string) *TextField {
	return &TextField{
		attrs: attrs,
		text:  text,
		sel:   mask.Caret(utf8.RuneCountInString(text)),
	}
}

func (f *TextField) Text() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.text
}

func (f *TextField) SetText(s string) {
	f.mu.Lock()
	f.text = s
	cb := f.OnChange
	f.mu.Unlock()

	if cb != nil {
		cb()
	}
}

func (f *TextField) Selection() mask.Selection {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.sel
}

func (f *TextField) SetSelection(s mask.Selection) {
	f.mu.Lock()
	f.sel = s
	f.mu.Unlock()
}

// CompareAndSwap sets text and selection only while the text still equals
// old. OnChange is called after a successful swap.
func (f *TextField) CompareAndSwap(old, text string, sel mask.Selection) bool {
	f.mu.Lock()
	if f.text != old {
		f.mu.Unlock()
		return false
	}
	f.text = text
	f.sel = sel
	cb := f.OnChange
	f.mu.Unlock()

	if cb != nil {
		cb()
	}
	return true
}

// Edit replaces the text and selection in one step, as a user edit would.
// OnChange is not called; the host notifies the binding itself.
func (f *TextField) Edit(text string, sel mask.Selection) {
	f.mu.Lock()
	f.text = text
	f.sel = sel
	f.mu.Unlock()
}

func (f *TextField) FormatHint() (string, bool) { return f.attrs.Hint, f.attrs.HasHint }
func (f *TextField) Name() string               { return f.attrs.Name }
func (f *TextField) ID() string                 { return f.attrs.ID }
func (f *TextField) Placeholder() string        { return f.attrs.Placeholder }
