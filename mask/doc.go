// Package mask formats Brazilian identifier fields (CPF, CNPJ, telefone and
// CEP) while the user types.
//
// The package is made of small total functions:
//
//   - ExtractDigits strips everything that is not a digit and bounds the result
//     to a format's maximum length.
//   - Format.Apply renders a digit sequence with progressive punctuation, so a
//     partially typed value never shows separators for digits that do not exist.
//   - ResolveAmbiguous decides whether a CPF-or-CNPJ field is currently a CPF
//     (up to 11 digits) or a CNPJ.
//   - RemapCursor moves a caret across a reformat by keeping the number of
//     digits on its left.
//   - Classify picks a Kind for a field from its format hint, name, id and
//     placeholder.
//   - Apply ties the pieces together for a single field.
//
// Offsets are rune offsets. Nothing here keeps state between calls; a
// CPF-or-CNPJ field is resolved again on every pass.
package mask
