package binding

// Origin is what caused an edit notification.
type Origin uint8

const (
	OriginOther Origin = iota
	OriginTyped
	OriginPaste
	OriginUndo
	OriginRedo
)

var originNames = [...]string{
	OriginOther: "other",
	OriginTyped: "typed",
	OriginPaste: "paste",
	OriginUndo:  "undo",
	OriginRedo:  "redo",
}

func (o Origin) String() string {
	if int(o) < len(originNames) {
		return originNames[o]
	}
	return "other"
}

// ParseOrigin maps a DOM input type ("insertText", "insertFromPaste",
// "historyUndo", ...) to an Origin. Unknown types are OriginOther.
func ParseOrigin(inputType string) Origin {
	switch inputType {
	case "insertFromPaste", "insertFromPasteAsQuotation":
		return OriginPaste
	case "historyUndo":
		return OriginUndo
	case "historyRedo":
		return OriginRedo
	case "insertText", "insertReplacementText", "insertCompositionText",
		"deleteContentBackward", "deleteContentForward",
		"deleteWordBackward", "deleteWordForward":
		return OriginTyped
	default:
		return OriginOther
	}
}

// skipsInput reports whether an input notification with this origin is left
// untouched. Paste is handled by HandlePaste; undo and redo must restore the
// previous text exactly.
func (o Origin) skipsInput() bool {
	return o == OriginPaste || o == OriginUndo || o == OriginRedo
}
