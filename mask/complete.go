package mask

import (
	"errors"
	"fmt"
	"slices"
)

// ErrInvalidLength is returned by Clean when a value does not have the digit
// count of a complete identifier.
var ErrInvalidLength = errors.New("invalid digit count")

// completeLengths lists the digit counts of a finished value. A telefone is
// complete as a landline (10) or a mobile number (11).
var completeLengths = map[Format][]int{
	FormatCPF:      {11},
	FormatCNPJ:     {14},
	FormatTelefone: {10, 11},
	FormatCEP:      {8},
}

// IsComplete reports whether raw holds exactly a complete digit count for f.
// It checks shape only, never check digits.
func IsComplete(f Format, raw string) bool {
	return slices.Contains(completeLengths[f], CountDigits(raw))
}

// Complete formats raw only when it is a complete value. Partial or
// overlong input is returned untouched with ok=false.
// Examples:
//
//	Complete(FormatCPF, "12345678901")   -> "123.456.789-01", true
//	Complete(FormatCPF, "1234")          -> "1234", false
//	Complete(FormatTelefone, "1133334444") -> "(11) 3333-4444", true
func Complete(f Format, raw string) (string, bool) {
	if !IsComplete(f, raw) {
		return raw, false
	}
	return f.Apply(Digits(raw)), true
}

// CompleteKind is Complete for a field kind; KindCPFOrCNPJ accepts both a
// complete CPF and a complete CNPJ.
func CompleteKind(k Kind, raw string) (string, bool) {
	f, ok := completeFormat(k, raw)
	if !ok {
		return raw, false
	}
	return Complete(f, raw)
}

// IsCompleteKind is IsComplete for a field kind.
func IsCompleteKind(k Kind, raw string) bool {
	_, ok := CompleteKind(k, raw)
	return ok
}

// Clean returns the digits of raw for submission. Empty input stays empty so
// optional fields pass through.
func Clean(f Format, raw string) (string, error) {
	digits := Digits(raw)
	if digits == "" {
		return "", nil
	}
	if !slices.Contains(completeLengths[f], len(digits)) {
		return "", fmt.Errorf("%s: %w: got %d", f, ErrInvalidLength, len(digits))
	}
	return digits, nil
}

// CleanKind is Clean for a field kind.
func CleanKind(k Kind, raw string) (string, error) {
	if k == KindNone {
		return raw, nil
	}
	f, ok := completeFormat(k, raw)
	if !ok {
		return "", fmt.Errorf("%s: %w: got %d", k, ErrInvalidLength, CountDigits(raw))
	}
	return Clean(f, raw)
}

func completeFormat(k Kind, raw string) (Format, bool) {
	if k != KindCPFOrCNPJ {
		return k.Resolve(raw)
	}
	switch CountDigits(raw) {
	case FormatCPF.MaxDigits():
		return FormatCPF, true
	case FormatCNPJ.MaxDigits():
		return FormatCNPJ, true
	}
	// Empty input is still "clean"; Clean sorts it out.
	if CountDigits(raw) == 0 {
		return FormatCPF, true
	}
	return 0, false
}
