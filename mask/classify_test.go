package mask

import "testing"

type info struct {
	hint        string
	hasHint     bool
	name        string
	id          string
	placeholder string
}

func (i info) FormatHint() (string, bool) { return i.hint, i.hasHint }
func (i info) Name() string               { return i.name }
func (i info) ID() string                 { return i.id }
func (i info) Placeholder() string        { return i.placeholder }

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		in   info
		want Kind
	}{
		{name: "hint wins over name", in: info{hint: "cnpj", hasHint: true, name: "campo_cpf"}, want: KindCNPJ},
		{name: "hint cpf_cnpj", in: info{hint: "cpf_cnpj", hasHint: true}, want: KindCPFOrCNPJ},
		{name: "unknown hint falls through", in: info{hint: "email", hasHint: true, name: "cep"}, want: KindCEP},
		{name: "hint is case sensitive", in: info{hint: "CPF", hasHint: true, name: "telefone"}, want: KindTelefone},
		{name: "empty hint", in: info{hint: "", hasHint: true, name: "nome"}, want: KindNone},
		{name: "ambiguous name", in: info{name: "proprietario_cpf_cnpj"}, want: KindCPFOrCNPJ},
		{name: "ambiguous id", in: info{id: "id_CPF_CNPJ"}, want: KindCPFOrCNPJ},
		{name: "ambiguous placeholder", in: info{placeholder: "Informe CPF ou CNPJ"}, want: KindCPFOrCNPJ},
		{name: "cnpj name", in: info{name: "cnpj_empresa"}, want: KindCNPJ},
		{name: "cnpj anywhere beats cpf elsewhere", in: info{name: "cpf", id: "cnpj"}, want: KindCNPJ},
		{name: "telefone id", in: info{id: "Telefone_Contato"}, want: KindTelefone},
		{name: "cpf without cnpj", in: info{name: "cpf_teste"}, want: KindCPF},
		{name: "cep placeholder", in: info{placeholder: "Digite o CEP"}, want: KindCEP},
		{name: "telefone before cep", in: info{name: "cep", id: "telefone"}, want: KindTelefone},
		{name: "nothing", in: info{name: "nome", id: "nome", placeholder: "Seu nome"}, want: KindNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.in); got != tt.want {
				t.Fatalf("Classify(%+v) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestClassify_Nil(t *testing.T) {
	if got := Classify(nil); got != KindNone {
		t.Fatalf("Classify(nil) = %s, want none", got)
	}
}
