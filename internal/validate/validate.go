// Package validate checks decoded API documents against their
// `validate` struct tags.
package validate

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var validate *validator.Validate
var translator ut.Translator

func init() {
	var ok bool

	validate = validator.New(validator.WithRequiredStructEnabled())
	translator, ok = ut.New(en.New(), en.New()).GetTranslator("en")
	if !ok {
		panic("validate: failed to get 'en' translator")
	}
	err := en_translations.RegisterDefaultTranslations(validate, translator)
	if err != nil {
		panic(err)
	}
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})
}

// FieldError describes one failed constraint. Field is prefixed with the
// element's position in the slice, e.g. "result[2].width".
type FieldError struct {
	Field string `json:"field"`
	Err   string `json:"error"`
}

// FieldErrors represents a collection of field errors.
type FieldErrors []FieldError

// Error implements the error interface.
func (fe FieldErrors) Error() string {
	d, err := json.Marshal(fe)
	if err != nil {
		return err.Error()
	}
	return string(d)
}

// Slice validates every element of items that is a struct or a non-nil
// pointer to one. Other element kinds carry no tags and are skipped.
// prefix names the slice in reported fields.
func Slice[T any](prefix string, items []T) error {
	var fields FieldErrors
	for i, item := range items {
		v := reflect.ValueOf(item)
		if v.Kind() == reflect.Pointer {
			if v.IsNil() {
				continue
			}
			v = v.Elem()
		}
		if v.Kind() != reflect.Struct {
			continue
		}

		err := validate.Struct(item)
		if err == nil {
			continue
		}

		verrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}

		for _, verror := range verrors {
			fields = append(fields, FieldError{
				Field: fmt.Sprintf("%s[%d].%s", prefix, i, verror.Field()),
				Err:   customErrForTag(verror.Tag(), verror),
			})
		}
	}

	if len(fields) > 0 {
		return fields
	}

	return nil
}

func customErrForTag(tag string, verror validator.FieldError) string {
	switch tag {
	case "required":
		return "This field is required"
	default:
		return verror.Translate(translator)
	}
}
