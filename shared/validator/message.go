package validator

import (
	"errors"
	"reflect"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required": "{field} is required",
		"gte":      "{field} must be greater than or equal to {param}",
		"lte":      "{field} must be less than or equal to {param}",
		"oneof":    "{field} must be one of {param}",
		"max":      "{field} must be less than or equal to {param}",
		"min":      "{field} must be greater than or equal to {param}",
		"alphanum": "{field} must contain only letters and digits",
		"email":    "{field} must be a valid email address",
		"uuid":     "{field} must be a valid UUID",
		"slotkey":  "{field} must be a slot key formatted as YYYY-MM-DD-HH:MM",
		"clock":    "{field} must be a time formatted as HH:MM",
		"day":      "{field} must be a date formatted as YYYY-MM-DD",
	}

	// collectionMessages replace the numeric wording when the field is a list.
	collectionMessages = map[string]string{
		"max": "{field} must contain at most {param} items",
		"min": "{field} must contain at least {param} items",
	}
)

func message(err error) string {
	var valErrors val.ValidationErrors

	if errors.As(err, &valErrors) {
		for _, valErr := range valErrors {
			errStr := ""
			field := valErr.Field()
			param := valErr.Param()

			errStr = messages[valErr.Tag()]

			kind := valErr.Kind()
			if kind == reflect.Slice || kind == reflect.Array || kind == reflect.Map {
				if msg, ok := collectionMessages[valErr.Tag()]; ok {
					errStr = msg
				}
			}

			if errStr != "" {
				errStr = strings.ReplaceAll(errStr, "{field}", field)
				errStr = strings.ReplaceAll(errStr, "{param}", param)

				return errStr
			}
		}

		return valErrors.Error()
	}

	return err.Error()
}
