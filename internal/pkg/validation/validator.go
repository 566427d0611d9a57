package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	apperror "estocando/internal/errors"
)

// Validator valida payloads de entrada a partir das tags `validate`
// e traduz as falhas para ValidationError com detalhamento por campo.
type Validator struct {
	v *validator.Validate
}

// New cria o Validator com as regras customizadas da API registradas.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Os campos são reportados pelo nome JSON ("userId"), não pelo nome Go.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// notblank: string com pelo menos um caractere diferente de espaço.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		field := fl.Field()
		if field.Kind() == reflect.Ptr {
			if field.IsNil() {
				return true
			}
			field = field.Elem()
		}
		return strings.TrimSpace(field.String()) != ""
	})

	// maxbytes: limite em bytes, não em caracteres (o bcrypt aceita até 72 bytes).
	_ = v.RegisterValidation("maxbytes", func(fl validator.FieldLevel) bool {
		limit, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return len(fl.Field().String()) <= limit
	})

	return &Validator{v: v}
}

// Struct valida s. Devolve nil ou um ValidationError.
func (val *Validator) Struct(s interface{}) error {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperror.NewValidationError("Payload inválido.")
	}

	details := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		details[fe.Field()] = message(fe)
	}

	first := fieldErrs[0]
	return apperror.NewFieldValidationError(fmt.Sprintf("%s: %s", first.Field(), message(first)), details)
}

// Var valida um valor isolado (ex.: parâmetro de rota) contra uma tag.
func (val *Validator) Var(field string, value interface{}, tag string) error {
	if err := val.v.Var(value, tag); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			msg := message(fieldErrs[0])
			return apperror.NewFieldValidationError(fmt.Sprintf("%s: %s", field, msg), map[string]string{field: msg})
		}
		return apperror.NewValidationError(fmt.Sprintf("%s inválido.", field))
	}
	return nil
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "campo obrigatório"
	case "notblank":
		return "não pode ser vazio"
	case "email":
		return "deve ser um email válido"
	case "uuid", "uuid4":
		return "deve ser um UUID válido"
	case "oneof":
		return fmt.Sprintf("deve ser um de: %s", fe.Param())
	case "gt":
		return fmt.Sprintf("deve ser maior que %s", fe.Param())
	case "gte":
		return fmt.Sprintf("deve ser maior ou igual a %s", fe.Param())
	case "min":
		return fmt.Sprintf("deve ter no mínimo %s caracteres", fe.Param())
	case "lte":
		return fmt.Sprintf("deve ser menor ou igual a %s", fe.Param())
	case "max":
		return fmt.Sprintf("deve ter no máximo %s caracteres", fe.Param())
	case "maxbytes":
		return fmt.Sprintf("deve ter no máximo %s bytes", fe.Param())
	default:
		return fmt.Sprintf("falhou na regra '%s'", fe.Tag())
	}
}
