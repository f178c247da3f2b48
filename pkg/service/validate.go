package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"github.com/umputun/confdesk/pkg/domain"
)

// validation holds the validator with english translations, built once
type validation struct {
	validate *validator.Validate
	trans    ut.Translator
}

var (
	validOnce sync.Once
	valid     *validation
)

func getValidation() *validation {
	validOnce.Do(func() {
		enLoc := en.New()
		uni := ut.New(enLoc, enLoc)
		trans, _ := uni.GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())
		// messages use json names of the request fields
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			tag := fld.Tag.Get("json")
			if tag == "-" || tag == "" {
				return fld.Name
			}
			if idx := strings.Index(tag, ","); idx >= 0 {
				tag = tag[:idx]
			}
			return tag
		})
		_ = en_translations.RegisterDefaultTranslations(v, trans)

		_ = v.RegisterValidation("timezone", func(fl validator.FieldLevel) bool {
			_, err := time.LoadLocation(fl.Field().String())
			return err == nil && fl.Field().String() != "Local"
		})
		registerTranslation(v, trans, "timezone", "{0} must be a known timezone")
		registerTranslation(v, trans, "min", "{0} must be at least {1}")
		registerTranslation(v, trans, "max", "{0} must be at most {1}")

		valid = &validation{validate: v, trans: trans}
	})
	return valid
}

func registerTranslation(v *validator.Validate, trans ut.Translator, tag, text string) {
	_ = v.RegisterTranslation(tag, trans,
		func(ut ut.Translator) error {
			return ut.Add(tag, text, true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			msg, _ := ut.T(tag, fe.Field(), fe.Param())
			return msg
		},
	)
}

// validateStruct checks the struct tags and reports all failed fields as one validation error
func validateStruct(req any) error {
	vs := getValidation()
	err := vs.validate.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%v: %w", err, domain.ErrValidation)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fe.Translate(vs.trans))
	}
	return invalid("%s", strings.Join(msgs, "; "))
}

// invalid makes a validation error with a user facing message
func invalid(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), domain.ErrValidation)
}
