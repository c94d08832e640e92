package config

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/statelayer/internal/spring"
	"github.com/alexisbeaulieu97/statelayer/internal/theme"
	slerrors "github.com/alexisbeaulieu97/statelayer/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("theme_mode", func(fl validator.FieldLevel) bool {
			_, err := theme.ParseMode(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("input_mode", func(fl validator.FieldLevel) bool {
			switch fl.Field().String() {
			case InputHover, InputTouch:
				return true
			}
			return false
		})

		_ = v.RegisterValidation("integrator", func(fl validator.FieldLevel) bool {
			_, err := spring.NewIntegrator(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks field rules on cfg.
func Validate(cfg *Config) error {
	if cfg == nil {
		return slerrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	return nil
}

func convertValidationError(err error) error {
	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Param() != "" {
			msg = fmt.Sprintf("%s=%s", msg, ve.Param())
		}
		return slerrors.NewValidationError(field, msg, err)
	}

	return slerrors.NewValidationError("config", err.Error(), err)
}

// yamlFieldName drops the root struct from the namespace, leaving the
// dotted yaml path.
func yamlFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
