// Package validate wraps the struct validator behind the two operations the
// handlers need: checking an input struct and checking the object-id format.
// It is a pure function of its input; no request state is touched.
package validate

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Rolo3650/sicove-api/internal/apperr"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report violations under the field's json name, not the Go name.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	validate.RegisterValidation("objectid", func(fl validator.FieldLevel) bool {
		return ObjectID(fl.Field().String())
	})
}

// ObjectID reports whether s is a valid 24-hex-character object id.
func ObjectID(s string) bool {
	_, err := primitive.ObjectIDFromHex(s)
	return err == nil
}

// Struct validates an input struct and converts any violations into a
// ValidationFailed domain error listing each field's dotted path and reason.
func Struct(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperr.Internal("Validation failed", err)
	}

	fields := make([]apperr.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, apperr.FieldError{
			Path:    fieldPath(fe),
			Message: reason(fe),
		})
	}
	return apperr.ValidationFailed(fields)
}

// fieldPath strips the root struct name from the namespace, leaving the dotted
// path of the violated field (e.g. "vehiclesId[0]").
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Required"
	case "objectid":
		return "Invalid ObjectId"
	case "email":
		return "Invalid email"
	case "min":
		return fmt.Sprintf("Must be at least %s characters", fe.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("Failed %s validation", fe.Tag())
	}
}
