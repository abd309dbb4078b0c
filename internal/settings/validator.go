package settings

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	headlineerrors "github.com/alexisbeaulieu97/headliner/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	hexColorPattern   = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3,4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	namedColorPattern = regexp.MustCompile(`^[a-zA-Z]+$`)
	funcColorPattern  = regexp.MustCompile(`^(?:rgb|rgba|hsl|hsla)\([^()]*\)$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
			if name == "-" || name == "" {
				return field.Name
			}
			return name
		})

		_ = v.RegisterValidation("css_color", func(fl validator.FieldLevel) bool {
			value := strings.TrimSpace(fl.Field().String())
			return hexColorPattern.MatchString(value) ||
				namedColorPattern.MatchString(value) ||
				funcColorPattern.MatchString(value)
		})

		_ = v.RegisterValidation("font_weight", func(fl validator.FieldLevel) bool {
			weight := fl.Field().Int()
			return weight >= 100 && weight <= 900 && weight%100 == 0
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks the shape of a configuration: enum membership, positive
// sizes, color syntax, a gradient of at least two stops and non-empty
// highlight words. Rendering and export never call it; it backs the
// validate command and strict loading.
func Validate(s HeadlineSettings) error {
	if err := validatorInstance().Struct(s); err != nil {
		return convertValidationError(err)
	}
	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := fieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Param() != "" {
			msg = fmt.Sprintf("%s failed validation for tag '%s=%s'", field, ve.Tag(), ve.Param())
		}
		return headlineerrors.NewValidationError(field, msg, err)
	}

	return headlineerrors.NewValidationError("settings", err.Error(), err)
}

// fieldName drops the struct type prefix, leaving the JSON path of the field.
func fieldName(fe validator.FieldError) string {
	_, rest, found := strings.Cut(fe.Namespace(), ".")
	if !found {
		return fe.Field()
	}
	return rest
}
