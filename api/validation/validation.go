package apivalidation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/orgspacehq/orgspace/api/openapi"
)

// labels used in user facing validation messages, keyed by json field name.
var fieldLabels = map[string]string{
	"firstName": "First name",
	"lastName":  "Last name",
	"email":     "Email",
	"password":  "Password",
	"phone":     "Phone",
	"name":      "Name",
	"userId":    "User ID",
}

func init() {
	// report validation failures by json field name instead of the
	// Go struct field name
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// ParseFieldErrors converts a gin binding error into the field level error
// list of 422 responses. A nil return means the error is not a validation
// failure and must be handled as an unclassified one.
func ParseFieldErrors(err error) []openapi.FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	fieldErrors := make([]openapi.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fieldErrors = append(fieldErrors, openapi.FieldError{
			Field:   fe.Field(),
			Message: fieldMessage(fe),
		})
	}
	return fieldErrors
}

func fieldMessage(fe validator.FieldError) string {
	label, ok := fieldLabels[fe.Field()]
	if !ok {
		label = fe.Field()
	}
	if fe.Tag() == "required" {
		return label + " is required"
	}
	return label + " is invalid"
}
