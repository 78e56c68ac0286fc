package validatorx

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/browbeat/event-marketplace/constant"
	cerr "github.com/browbeat/event-marketplace/utils/errors"
	gpvalidator "github.com/go-playground/validator/v10"
)

var (
	v   *gpvalidator.Validate
	mut sync.Mutex
)

// Init initializes the validator singleton (idempotent)
func Init() {
	mut.Lock()
	defer mut.Unlock()
	if v != nil {
		return
	}

	nv := gpvalidator.New()

	// report fields by their json name so errors line up with the request body
	nv.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	_ = nv.RegisterValidation("vendor_category", func(fl gpvalidator.FieldLevel) bool {
		return contains(constant.VendorCategories, fl.Field().String())
	})
	_ = nv.RegisterValidation("event_type", func(fl gpvalidator.FieldLevel) bool {
		return contains(constant.EventTypes, fl.Field().String())
	})
	_ = nv.RegisterValidation("request_status", func(fl gpvalidator.FieldLevel) bool {
		return constant.EventRequestStatus(fl.Field().String()).Valid()
	})

	v = nv
}

// ValidateStruct validates a struct using go-playground/validator
func ValidateStruct(s interface{}) error {
	if v == nil {
		Init()
	}
	return v.Struct(s)
}

// FieldErrors flattens a validation error into the API's field error list.
// Errors that are not validation errors yield nil.
func FieldErrors(err error) []cerr.FieldError {
	var ves gpvalidator.ValidationErrors
	if !errors.As(err, &ves) {
		return nil
	}

	out := make([]cerr.FieldError, 0, len(ves))
	for _, fe := range ves {
		out = append(out, cerr.FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Message: message(fe),
		})
	}
	return out
}

func message(fe gpvalidator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", fe.Field())
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "datetime":
		return fmt.Sprintf("%s must match the layout %s", fe.Field(), fe.Param())
	case "vendor_category":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.Join(constant.VendorCategories, ", "))
	case "event_type":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.Join(constant.EventTypes, ", "))
	case "request_status":
		return fmt.Sprintf("%s must be one of: pending, accepted, declined, completed", fe.Field())
	}
	return fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag())
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
