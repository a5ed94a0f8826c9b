package validator

import (
	"reflect"

	"github.com/go-playground/validator/v10"

	"github.com/vortex-fintech/go-brmask/mask"
)

var v *validator.Validate

func init() {
	v = validator.New()
	for tag, kind := range shapeTags {
		_ = v.RegisterValidation(tag, shapeOf(kind))
	}
}

// shapeTags check digit counts only: a masked or bare value with the length
// of a complete identifier passes, check digits are never verified.
var shapeTags = map[string]mask.Kind{
	"cpf":      mask.KindCPF,
	"cnpj":     mask.KindCNPJ,
	"cpf_cnpj": mask.KindCPFOrCNPJ,
	"telefone": mask.KindTelefone,
	"cep":      mask.KindCEP,
}

func shapeOf(kind mask.Kind) validator.Func {
	return func(fl validator.FieldLevel) bool {
		f := fl.Field()
		if f.Kind() != reflect.String {
			return false
		}
		return mask.IsCompleteKind(kind, f.String())
	}
}

func Instance() *validator.Validate {
	return v
}

func Validate(i any) map[string]string {
	if err := v.Struct(i); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok {
			out := make(map[string]string)
			for _, e := range errs {
				out[e.Field()] = mapTagToCode(e.Tag())
			}
			return out
		}
		return map[string]string{"_error": "validation_failed"}
	}
	return nil
}

// Var validates a single value against tag and returns the error code, or ""
// when the value is valid.
func Var(value any, tag string) string {
	if err := v.Var(value, tag); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			return mapTagToCode(errs[0].Tag())
		}
		return "validation_failed"
	}
	return ""
}
