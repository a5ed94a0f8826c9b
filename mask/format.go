package mask

import "strings"

// Format is a concrete display mask.
type Format uint8

const (
	FormatCPF Format = iota + 1
	FormatCNPJ
	FormatTelefone
	FormatCEP
)

// stage is one step of a progressive mask: the layout used while the digit
// count is at most upTo. '#' marks a digit slot, anything else is literal.
type stage struct {
	upTo   int
	layout string
}

type table struct {
	name   string
	max    int
	stages []stage
}

var formats = map[Format]table{
	FormatCPF: {
		name: "cpf",
		max:  11,
		stages: []stage{
			{3, "###"},
			{6, "###.###"},
			{9, "###.###.###"},
			{11, "###.###.###-##"},
		},
	},
	FormatCNPJ: {
		name: "cnpj",
		max:  14,
		stages: []stage{
			{2, "##"},
			{5, "##.###"},
			{8, "##.###.###"},
			{12, "##.###.###/####"},
			{14, "##.###.###/####-##"},
		},
	},
	FormatTelefone: {
		name: "telefone",
		max:  11,
		stages: []stage{
			{2, "(##"},
			{6, "(##) ####"},
			{10, "(##) ####-####"},
			{11, "(##) #####-####"},
		},
	},
	FormatCEP: {
		name: "cep",
		max:  8,
		stages: []stage{
			{5, "#####"},
			{8, "#####-###"},
		},
	},
}

func (f Format) String() string {
	if s, ok := formats[f]; ok {
		return s.name
	}
	return "unknown"
}

// Valid reports whether f is one of the four known formats.
func (f Format) Valid() bool {
	_, ok := formats[f]
	return ok
}

// MaxDigits is the digit count of a complete value (11 for telefone).
func (f Format) MaxDigits() int {
	return formats[f].max
}

// ParseFormat maps "cpf", "cnpj", "telefone" and "cep" to a Format.
func ParseFormat(s string) (Format, bool) {
	for f, tbl := range formats {
		if tbl.name == s {
			return f, true
		}
	}
	return 0, false
}

// Apply renders a digit sequence that is already bounded to MaxDigits.
// Separators are written only in front of a digit, so the output never ends
// with punctuation waiting for digits that do not exist yet.
// Examples:
//
//	FormatCPF.Apply("1234")                 -> "123.4"
//	FormatCNPJ.Apply("12345678901234")      -> "12.345.678/9012-34"
//	FormatTelefone.Apply("1")               -> "(1"
//	FormatTelefone.Apply("1198765432")      -> "(11) 9876-5432"
//	FormatTelefone.Apply("11987654321")     -> "(11) 98765-4321"
//	FormatCEP.Apply("01310100")             -> "01310-100"
//	FormatCEP.Apply("")                     -> ""
func (f Format) Apply(digits string) string {
	tbl, ok := formats[f]
	if !ok || digits == "" {
		return digits
	}
	return render(layoutFor(tbl.stages, len(digits)), digits)
}

// Mask extracts the digits of raw and renders them.
func (f Format) Mask(raw string) string {
	return f.Apply(ExtractDigits(raw, f.MaxDigits()))
}

func layoutFor(stages []stage, n int) string {
	for _, st := range stages {
		if n <= st.upTo {
			return st.layout
		}
	}
	return stages[len(stages)-1].layout
}

func render(layout, digits string) string {
	var b strings.Builder
	b.Grow(len(layout))

	pending := 0 // start of literals not yet written
	next := 0
	for i := 0; i < len(layout); i++ {
		if layout[i] != '#' {
			continue
		}
		if next == len(digits) {
			break
		}
		b.WriteString(layout[pending:i])
		b.WriteByte(digits[next])
		next++
		pending = i + 1
	}
	return b.String()
}
