package entities

import (
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// NewValidator returns a validator that reports fields by their JSON names
// and knows the custom tags used by the input types of this package.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	// registration only fails on an empty tag or nil func
	_ = v.RegisterValidation("notnan", func(fl validator.FieldLevel) bool {
		return !math.IsNaN(fl.Field().Float())
	})
	return v
}
