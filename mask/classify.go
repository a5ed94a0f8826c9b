package mask

import "strings"

// FieldInfo is what the classifier reads from a field.
type FieldInfo interface {
	// FormatHint returns the explicit format attribute, if the field has one.
	FormatHint() (string, bool)
	Name() string
	ID() string
	Placeholder() string
}

// Classify picks the Kind of a field. First match wins:
//
//  1. a recognized format hint, used verbatim;
//  2. a name or id containing "cpf_cnpj", or a placeholder mentioning both
//     "cpf" and "cnpj" -> KindCPFOrCNPJ;
//  3. "cnpj" -> KindCNPJ;
//  4. "telefone" -> KindTelefone;
//  5. "cpf" without "cnpj" in the same attribute -> KindCPF;
//  6. "cep" -> KindCEP;
//  7. otherwise KindNone.
//
// Name, id and placeholder are matched case-insensitively by substring.
func Classify(f FieldInfo) Kind {
	if f == nil {
		return KindNone
	}
	if hint, ok := f.FormatHint(); ok {
		if k, ok := ParseKind(hint); ok {
			return k
		}
	}

	name := strings.ToLower(f.Name())
	id := strings.ToLower(f.ID())
	placeholder := strings.ToLower(f.Placeholder())
	attrs := [...]string{name, id, placeholder}

	switch {
	case strings.Contains(name, "cpf_cnpj"),
		strings.Contains(id, "cpf_cnpj"),
		strings.Contains(placeholder, "cpf") && strings.Contains(placeholder, "cnpj"):
		return KindCPFOrCNPJ
	case anyContains(attrs[:], "cnpj"):
		return KindCNPJ
	case anyContains(attrs[:], "telefone"):
		return KindTelefone
	case cpfOnly(attrs[:]):
		return KindCPF
	case anyContains(attrs[:], "cep"):
		return KindCEP
	default:
		return KindNone
	}
}

func anyContains(attrs []string, sub string) bool {
	for _, a := range attrs {
		if strings.Contains(a, sub) {
			return true
		}
	}
	return false
}

func cpfOnly(attrs []string) bool {
	for _, a := range attrs {
		if strings.Contains(a, "cpf") && !strings.Contains(a, "cnpj") {
			return true
		}
	}
	return false
}
