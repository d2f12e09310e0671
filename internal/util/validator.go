package util

import (
	"errors"
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// credit: https://github.com/go-playground/validator/issues/559#issuecomment-976459959

type ApiError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func msgForTag(fe validator.FieldError, customField map[string]string) string {
	field := fe.Field()
	if custom, ok := customField[field]; ok {
		field = custom
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%v is required", field)
	case "oneof":
		return fmt.Sprintf("%v must be one of: %v", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "max":
		return fmt.Sprintf("%v must be at most %v characters", field, fe.Param())
	case "strNotEmpty":
		return fmt.Sprintf("%v must not be empty or contain only whitespace charaters", field)
	}

	log.Printf("Unknown tag: %v with error: %v", fe.Tag(), fe.Error())
	return fe.Error()
}

/*
GenerateErrorMessages extracts validation errors and returns them as an array of ApiError.
Each ApiError contains the field name and a descriptive error message.

Example output:

	[
	  {
		"field": "ext",
		"message": "ext must be one of: woff, woff2, ttf, otf, eot"
	  }
	]

Optional Parameters:
- customField (map[string]string): A map to override field names in the error messages.
- fieldName (string): The field name used when err is not a validation error.
*/
func GenerateErrorMessages(err error, optionalParams ...interface{}) []ApiError {
	var customField map[string]string
	var fieldName string

	for _, param := range optionalParams {
		switch v := param.(type) {
		case map[string]string:
			customField = v
		case string:
			fieldName = v
		}
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		out := make([]ApiError, len(ve))
		for i, fe := range ve {
			field := fe.Field()
			if customFieldName, ok := customField[field]; ok {
				field = customFieldName
			}
			out[i] = ApiError{field, msgForTag(fe, customField)}
		}
		return out
	}

	if fieldName == "" {
		fieldName = "Unknown"
	}

	return []ApiError{
		{
			Field:   fieldName,
			Message: err.Error(),
		},
	}
}

// check if string is empty, after trimming spaces
// Usage: `binding:"strNotEmpty"`
func StrNotEmpty(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}

	return len(strings.TrimSpace(field.String())) > 0
}

// Registers the custom rules on gin's validator engine
func RegisterValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin validator engine is not go-playground/validator")
	}

	if err := v.RegisterValidation("strNotEmpty", StrNotEmpty); err != nil {
		return err
	}

	return nil
}
