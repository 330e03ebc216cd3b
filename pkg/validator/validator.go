// Package validator centraliza la validación de estructuras con go-playground/validator.
// Registra el tipo decimal.Decimal (se valida como float64) y la etiqueta "unit".
package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	playground "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// FieldError describe un campo que no pasó la validación.
type FieldError struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
	Param string `json:"param,omitempty"`
}

// ValidationError agrupa los campos inválidos de una estructura.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s(%s)", f.Field, f.Tag))
	}
	return "campos inválidos: " + strings.Join(parts, ", ")
}

// units conjunto cerrado admitido por la etiqueta "unit".
var units = map[string]struct{}{"KG": {}, "G": {}, "L": {}, "UN": {}, "CX": {}}

var validate = newValidate()

func newValidate() *playground.Validate {
	v := playground.New()
	// Usa el nombre JSON del campo en los errores.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	_ = v.RegisterValidation("unit", func(fl playground.FieldLevel) bool {
		_, ok := units[fl.Field().String()]
		return ok
	})
	return v
}

// ValidateStruct valida data según sus etiquetas `validate`. Devuelve nil o *ValidationError.
func ValidateStruct(data interface{}) error {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}
	var verrs playground.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &ValidationError{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{Field: fe.Field(), Tag: fe.Tag(), Param: fe.Param()})
	}
	return out
}
