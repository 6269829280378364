// Package validator wraps go-playground/validator and reports failures as a
// field -> messages map keyed by request field paths ("materials.0.quantity"),
// the shape every endpoint returns on 422.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Report fields under their json names so error keys match payloads.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// decimal.Decimal fields come through as structs; numeric bounds have
	// to be checked against the tag param explicitly.
	validate.RegisterValidation("dmin", decimalMin)
	validate.RegisterValidation("dmax", decimalMax)
}

func decimalValue(fl validator.FieldLevel) (decimal.Decimal, bool) {
	d, ok := fl.Field().Interface().(decimal.Decimal)
	return d, ok
}

func decimalMin(fl validator.FieldLevel) bool {
	d, ok := decimalValue(fl)
	if !ok {
		return false
	}
	min, err := decimal.NewFromString(fl.Param())
	if err != nil {
		return false
	}
	return d.GreaterThanOrEqual(min)
}

func decimalMax(fl validator.FieldLevel) bool {
	d, ok := decimalValue(fl)
	if !ok {
		return false
	}
	max, err := decimal.NewFromString(fl.Param())
	if err != nil {
		return false
	}
	return d.LessThanOrEqual(max)
}

// ValidateStruct runs tag validation and returns field-keyed messages, or nil
// when the value is valid.
func ValidateStruct(s any) map[string][]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string][]string{"_": {err.Error()}}
	}
	out := make(map[string][]string, len(verrs))
	for _, fe := range verrs {
		key := fieldPath(fe.Namespace())
		out[key] = append(out[key], message(key, fe))
	}
	return out
}

// fieldPath turns "issueRequest.materials[0].quantity" into
// "materials.0.quantity".
func fieldPath(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	ns = strings.ReplaceAll(ns, "[", ".")
	return strings.ReplaceAll(ns, "]", "")
}

func message(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", field)
	case "oneof":
		return fmt.Sprintf("The selected %s is invalid.", field)
	case "min":
		return fmt.Sprintf("The %s must have at least %s items.", field, fe.Param())
	case "max":
		return fmt.Sprintf("The %s may not be greater than %s characters.", field, fe.Param())
	case "dmin":
		return fmt.Sprintf("The %s must be at least %s.", field, fe.Param())
	case "dmax":
		return fmt.Sprintf("The %s may not be greater than %s.", field, fe.Param())
	case "datetime":
		return fmt.Sprintf("The %s is not a valid date.", field)
	default:
		return fmt.Sprintf("The %s field is invalid.", field)
	}
}
