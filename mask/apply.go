package mask

import "unicode/utf8"

// Field is the text and caret of a bound input.
type Field interface {
	Text() string
	SetText(string)
	Selection() Selection
	SetSelection(Selection)
}

// Swapper is implemented by fields that can replace text and selection in
// one step. CompareAndSwap writes only while the text still equals old and
// reports whether it did.
type Swapper interface {
	CompareAndSwap(old, text string, sel Selection) bool
}

// Outcome describes one formatting pass.
type Outcome struct {
	Kind      Kind
	Format    Format // zero when Kind does not format
	Written   bool
	Selection Selection
}

// Apply reformats f according to kind. The field is written only when the
// formatted text differs from the current one; in that case the caret is
// remapped and a selection collapses onto its end. A field implementing
// Swapper is left untouched when its text changed during the pass.
func Apply(f Field, kind Kind) {
	Pass(f, kind)
}

// Pass is Apply returning what happened.
func Pass(f Field, kind Kind) Outcome {
	text := f.Text()
	sel := f.Selection()
	out := Outcome{Kind: kind, Selection: sel}

	format, ok := kind.Resolve(text)
	if !ok {
		return out
	}
	out.Format = format

	formatted := format.Apply(ExtractDigits(text, format.MaxDigits()))
	if formatted == text {
		return out
	}

	next := RemapSelection(text, formatted, sel)
	next = clampSelection(next, utf8.RuneCountInString(formatted))

	if sw, ok := f.(Swapper); ok {
		if !sw.CompareAndSwap(text, formatted, next) {
			return out
		}
	} else {
		f.SetText(formatted)
		f.SetSelection(next)
	}

	out.Written = true
	out.Selection = next
	return out
}

func clampSelection(s Selection, n int) Selection {
	s.Start = min(max(s.Start, 0), n)
	s.End = min(max(s.End, s.Start), n)
	return s
}
