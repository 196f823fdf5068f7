package models

import (
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their json name so errors match what callers submitted.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(fmt.Sprintf("failed to register notblank validation: %v", err))
	}
	if err := v.RegisterValidation("finite", finite); err != nil {
		panic(fmt.Sprintf("failed to register finite validation: %v", err))
	}
	return v
}

// finite rejects NaN and infinities on float fields.
func finite(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Float32, reflect.Float64:
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	default:
		return true
	}
}

// check validates entity (or only the named struct fields) and converts the
// first failure into a ValidationError. Field order in the struct decides
// which failure is reported.
func check(entity interface{}, fields ...string) error {
	var err error
	if len(fields) > 0 {
		err = validate.StructPartial(entity, fields...)
	} else {
		err = validate.Struct(entity)
	}
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok || len(fieldErrs) == 0 {
		return fmt.Errorf("failed to validate %T: %w", entity, err)
	}
	first := fieldErrs[0]
	return &ValidationError{Field: first.Field(), Kind: kindForTag(first.Tag())}
}

func kindForTag(tag string) ValidationKind {
	switch tag {
	case "notblank", "required":
		return EmptyField
	case "gte", "min":
		return NegativeValue
	default:
		return InvalidFormat
	}
}
