package mask

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveAmbiguous(t *testing.T) {
	assert.Equal(t, FormatCPF, ResolveAmbiguous(""))
	assert.Equal(t, FormatCPF, ResolveAmbiguous("11111111111"))
	assert.Equal(t, FormatCNPJ, ResolveAmbiguous("111111111111"))
	assert.Equal(t, FormatCPF, ResolveAmbiguous("111.111.111-11"))
	assert.Equal(t, FormatCNPJ, ResolveAmbiguous("11.111.111/1111"))
}

func TestResolveAmbiguous_FlipsOnTwelfthDigit(t *testing.T) {
	digits := strings.Repeat("1", 11)
	require.Equal(t, FormatCPF, ResolveAmbiguous(digits))
	require.Equal(t, FormatCNPJ, ResolveAmbiguous(digits+"2"))
	require.Equal(t, FormatCPF, ResolveAmbiguous((digits+"2")[:11]))
}

func TestKindResolve(t *testing.T) {
	tests := []struct {
		kind Kind
		text string
		want Format
		ok   bool
	}{
		{KindCPF, "123456789012", FormatCPF, true},
		{KindCNPJ, "1", FormatCNPJ, true},
		{KindTelefone, "", FormatTelefone, true},
		{KindCEP, "", FormatCEP, true},
		{KindCPFOrCNPJ, "123.456.789-01", FormatCPF, true},
		{KindCPFOrCNPJ, "123.456.789-012", FormatCNPJ, true},
		{KindNone, "123", 0, false},
		{Kind(99), "123", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String()+"/"+tt.text, func(t *testing.T) {
			got, ok := tt.kind.Resolve(tt.text)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range []Kind{KindCPF, KindCNPJ, KindTelefone, KindCEP, KindCPFOrCNPJ} {
		got, ok := ParseKind(k.String())
		require.True(t, ok, k.String())
		require.Equal(t, k, got)
	}

	for _, s := range []string{"", "none", "CPF", " cpf", "email"} {
		_, ok := ParseKind(s)
		assert.False(t, ok, s)
	}
	assert.Equal(t, "unknown", Kind(99).String())
}
