package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Errors maps a JSON field name to its failure messages.
type Errors map[string][]string

func (e Errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

var v = newValidator()

func newValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return validate
}

// messages holds the wording for field/rule pairs; anything missing falls
// back to a generic sentence.
var messages = map[string]string{
	"result.required":   "The spin result is required.",
	"result.max":        "The spin result may not be greater than 255 characters.",
	"name.required":     "The name field is required.",
	"name.max":          "The name may not be greater than 255 characters.",
	"email.required":    "The email field is required.",
	"email.email":       "The email must be a valid email address.",
	"email.max":         "The email may not be greater than 255 characters.",
	"password.required": "The password field is required.",
	"password.min":      "The password must be at least 8 characters.",
}

// Struct runs the `validate` tags of s and returns nil when s is valid.
func Struct(s any) Errors {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return Errors{"": {err.Error()}}
	}

	out := Errors{}
	for _, fe := range fieldErrs {
		out.Add(fe.Field(), message(fe.Field(), fe.Tag()))
	}
	return out
}

func message(field, tag string) string {
	if msg, ok := messages[field+"."+tag]; ok {
		return msg
	}
	return fmt.Sprintf("The %s field is invalid.", field)
}
