package mask

// Selection is a rune range inside a field's text. A caret has Start == End.
type Selection struct {
	Start int
	End   int
}

// Caret returns a collapsed selection at offset.
func Caret(offset int) Selection {
	return Selection{Start: offset, End: offset}
}

// Collapsed reports whether the selection is a single caret.
func (s Selection) Collapsed() bool {
	return s.Start == s.End
}

// RemapCursor translates a rune offset in oldDisplay into newDisplay so that
// the number of digits on the left of the caret stays the same. When
// newDisplay has fewer digits the caret ends up at its end.
//
// The result is always within [0, runes(newDisplay)]; offsets outside
// oldDisplay are clamped.
// Examples:
//
//	RemapCursor("1234", "123.4", 4)        -> 5
//	RemapCursor("123.45", "12345", 4)      -> 3
//	RemapCursor("(11", "(11) 9", 3)        -> 5
func RemapCursor(oldDisplay, newDisplay string, offset int) int {
	target := 0
	i := 0
	for _, r := range oldDisplay {
		if i >= offset {
			break
		}
		if isDigit(r) {
			target++
		}
		i++
	}

	pos := 0
	seen := 0
	for _, r := range newDisplay {
		if isDigit(r) {
			seen++
			if seen > target {
				break
			}
		}
		pos++
	}
	return pos
}

// RemapSelection remaps sel across a reformat. A caret is remapped as is; a
// range is collapsed onto its remapped end.
func RemapSelection(oldDisplay, newDisplay string, sel Selection) Selection {
	if sel.Collapsed() {
		return Caret(RemapCursor(oldDisplay, newDisplay, sel.Start))
	}
	return Caret(RemapCursor(oldDisplay, newDisplay, sel.End))
}
