package config

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/focuskit/internal/announce"
	"github.com/alexisbeaulieu97/focuskit/internal/dom"
	"github.com/alexisbeaulieu97/focuskit/internal/focus"
	apperrors "github.com/alexisbeaulieu97/focuskit/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("politeness", func(fl validator.FieldLevel) bool {
			_, err := announce.ParsePoliteness(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("orientation", func(fl validator.FieldLevel) bool {
			_, err := focus.ParseOrientation(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("selector", func(fl validator.FieldLevel) bool {
			_, err := dom.ParseSelector(fl.Field().String())
			return err == nil
		})

		v.RegisterStructValidation(validateNavigation, NavigationConfig{})

		validateInst = v
	})

	return validateInst
}

// ValidateConfig performs schema validation on the configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return apperrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	return nil
}

// validateNavigation requires a column count for grid navigation. The
// orientation goes through ParseOrientation so "Grid" or " both " are
// treated the same way the navigator treats them.
func validateNavigation(sl validator.StructLevel) {
	nav := sl.Current().Interface().(NavigationConfig)
	orientation, err := focus.ParseOrientation(nav.Orientation)
	if err != nil || orientation != focus.Both {
		return
	}
	if nav.Columns <= 0 {
		sl.ReportError(nav.Columns, "columns", "Columns", "required_if", "")
	}
}
