package validator

var tagMap = map[string]string{
	"required":  "required",
	"omitempty": "optional",
	"max":       "too_long",
	"min":       "too_short",
	"gt":        "too_small",
	"lt":        "too_large",
	"gte":       "too_small_or_equal",
	"lte":       "too_large_or_equal",
	"len":       "invalid_length",
	"oneof":     "invalid_choice",
	"numeric":   "only_numbers_allowed",
	"cpf":       "invalid_cpf",
	"cnpj":      "invalid_cnpj",
	"cpf_cnpj":  "invalid_cpf_cnpj",
	"telefone":  "invalid_telefone",
	"cep":       "invalid_cep",
}

func mapTagToCode(tag string) string {
	if code, ok := tagMap[tag]; ok {
		return code
	}
	return "invalid"
}
