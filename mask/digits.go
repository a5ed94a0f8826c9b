package mask

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/width"
)

// digitOf reports the ASCII digit r stands for.
// Full-width digits (U+FF10..U+FF19) fold to their ASCII form.
func digitOf(r rune) (byte, bool) {
	if r >= '0' && r <= '9' {
		return byte(r), true
	}
	if r < utf8.RuneSelf {
		return 0, false
	}

	p := width.LookupRune(r)
	if p.Kind() != width.EastAsianFullwidth {
		return 0, false
	}
	if n := p.Narrow(); n >= '0' && n <= '9' {
		return byte(n), true
	}
	return 0, false
}

func isDigit(r rune) bool {
	_, ok := digitOf(r)
	return ok
}

// ExtractDigits drops every non-digit rune of s and keeps at most maxLen digits.
// Examples:
//
//	ExtractDigits("123.456.789-01", 11) -> "12345678901"
//	ExtractDigits("(11) 9", 11)         -> "119"
//	ExtractDigits("１２３", 8)           -> "123"
//	ExtractDigits("abc", 8)             -> ""
func ExtractDigits(s string, maxLen int) string {
	if maxLen <= 0 || s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(min(len(s), maxLen))
	n := 0
	for _, r := range s {
		d, ok := digitOf(r)
		if !ok {
			continue
		}
		b.WriteByte(d)
		n++
		if n == maxLen {
			break
		}
	}
	return b.String()
}

// Digits returns every digit of s, without a length bound.
func Digits(s string) string {
	return ExtractDigits(s, utf8.RuneCountInString(s))
}

// CountDigits returns how many runes of s are digits.
func CountDigits(s string) int {
	n := 0
	for _, r := range s {
		if isDigit(r) {
			n++
		}
	}
	return n
}
