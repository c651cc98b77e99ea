// Package validation checks request fields against their declared rules
// before any statement reaches the database. Rules live as validator tags
// on the payload structs in models; every failing field is reported, not
// just the first one.
package validation

import (
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// FieldError is a single validation failure, serialized into the
// {"errors": [...]} body of a 400 response.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields under their JSON names so clients can match errors
	// to the keys they actually sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := time.Parse("2006-01-02", fl.Field().String())
		return err == nil
	})
	v.RegisterValidation("isodatetime", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		for _, layout := range []string{
			time.RFC3339,
			"2006-01-02T15:04:05",
			"2006-01-02 15:04:05",
			"2006-01-02",
		} {
			if _, err := time.Parse(layout, s); err == nil {
				return true
			}
		}
		return false
	})

	return v
}

// Struct checks v against its field rules and returns every failure.
// A nil result means the payload may be used to build a statement.
func Struct(v interface{}) []FieldError {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "body", Message: err.Error()}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gte":
		return "must be at least " + fe.Param()
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(fe.Param()), ", ")
	case "isodate":
		return "must be an ISO8601 date (YYYY-MM-DD)"
	case "isodatetime":
		return "must be an ISO8601 date-time"
	default:
		if fe.Param() != "" {
			return "failed rule " + fe.Tag() + "=" + fe.Param()
		}
		return "failed rule " + fe.Tag()
	}
}

// ID parses a path identifier. Identifiers are always checked as integers
// before they are bound into any statement.
func ID(field, raw string) (int, *FieldError) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &FieldError{Field: field, Message: "must be an integer"}
	}
	return id, nil
}
