package mask

// Kind is what a field accepts. KindCPFOrCNPJ is not a display mask by itself;
// it is resolved to FormatCPF or FormatCNPJ on every pass.
type Kind uint8

const (
	KindNone Kind = iota
	KindCPF
	KindCNPJ
	KindTelefone
	KindCEP
	KindCPFOrCNPJ
)

// ambiguousCPFMax is the largest digit count still treated as a CPF.
const ambiguousCPFMax = 11

var kindNames = [...]string{
	KindNone:      "none",
	KindCPF:       "cpf",
	KindCNPJ:      "cnpj",
	KindTelefone:  "telefone",
	KindCEP:       "cep",
	KindCPFOrCNPJ: "cpf_cnpj",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// ParseKind accepts the five hint values: cpf, cnpj, telefone, cep and
// cpf_cnpj. Matching is exact; "none" is not a hint.
func ParseKind(s string) (Kind, bool) {
	for k := KindCPF; k <= KindCPFOrCNPJ; k++ {
		if kindNames[k] == s {
			return k, true
		}
	}
	return KindNone, false
}

// ResolveAmbiguous picks the format of a CPF-or-CNPJ value from its digit
// count alone: up to 11 digits is a CPF, anything longer is a CNPJ.
func ResolveAmbiguous(digits string) Format {
	if CountDigits(digits) <= ambiguousCPFMax {
		return FormatCPF
	}
	return FormatCNPJ
}

// Resolve returns the display format for the current text of a field of kind k.
// It reports false for KindNone and unknown kinds.
func (k Kind) Resolve(text string) (Format, bool) {
	switch k {
	case KindCPF:
		return FormatCPF, true
	case KindCNPJ:
		return FormatCNPJ, true
	case KindTelefone:
		return FormatTelefone, true
	case KindCEP:
		return FormatCEP, true
	case KindCPFOrCNPJ:
		return ResolveAmbiguous(text), true
	default:
		return 0, false
	}
}
