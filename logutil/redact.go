package logutil

import "unicode"

const (
	shortDigitCount = 4
	keepShortDigits = 1
	keepLongDigits  = 4
)

// MaskDigits hides the digits of an identifier before it is logged.
// Separators and other characters are kept; the last 4 digits stay visible,
// or only the last one when the value has 4 digits or fewer.
//
// Examples:
//
//	"123.456.789-01"     -> "***.***.*89-01"
//	"12.345.678/0001-95" -> "**.***.***/**01-95"
//	"(11"                -> "(*1"
//	"abc"                -> "abc"
func MaskDigits(s string) string {
	runes := []rune(s)

	total := 0
	for _, r := range runes {
		if unicode.IsDigit(r) {
			total++
		}
	}
	if total == 0 {
		return s
	}

	keep := keepLongDigits
	if total <= shortDigitCount {
		keep = keepShortDigits
	}

	seen := 0
	for i := len(runes) - 1; i >= 0; i-- {
		if unicode.IsDigit(runes[i]) {
			seen++
			if seen > keep {
				runes[i] = '*'
			}
		}
	}
	return string(runes)
}
