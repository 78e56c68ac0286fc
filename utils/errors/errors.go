package errors

import (
	stderrors "errors"

	"github.com/browbeat/event-marketplace/constant"
)

// ErrDuplicate is returned by repositories when a unique constraint
// (username, email, vendor owner) is violated at the storage level.
var ErrDuplicate = stderrors.New("duplicate entry")

type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

type CustomError struct {
	errType constant.ErrorType
	fields  []FieldError
}

func (c CustomError) Error() string {
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func (c CustomError) ErrorType() constant.ErrorType {
	return c.errType
}

func (c CustomError) Fields() []FieldError {
	return c.fields
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

// SetValidationError builds an ErrInvalidRequest carrying per-field details.
func SetValidationError(fields []FieldError) CustomError {
	return CustomError{
		errType: constant.ErrInvalidRequest,
		fields:  fields,
	}
}

// Is reports whether err is a CustomError of the given type.
func Is(err error, errorType constant.ErrorType) bool {
	var ce CustomError
	if !stderrors.As(err, &ce) {
		return false
	}
	return ce.errType == errorType
}

// AsCustom unwraps err into a CustomError when it is one.
func AsCustom(err error) (CustomError, bool) {
	var ce CustomError
	ok := stderrors.As(err, &ce)
	return ce, ok
}
