package transport

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/browbeat/event-marketplace/constant"
	"github.com/browbeat/event-marketplace/utils/errors"
	"github.com/browbeat/event-marketplace/utils/logger"
	validatorx "github.com/browbeat/event-marketplace/utils/validator"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Errors  []errors.FieldError `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("[writeJSON] err encode", zap.String("error", err.Error()))
	}
}

func writeSuccess(w http.ResponseWriter, v interface{}) {
	writeJSON(w, http.StatusOK, v)
}

func writeCreated(w http.ResponseWriter, v interface{}) {
	writeJSON(w, http.StatusCreated, v)
}

func writeError(w http.ResponseWriter, err error) {
	ce, ok := errors.AsCustom(err)
	if !ok {
		logger.Error("[writeError] unexpected error", zap.String("error", err.Error()))
		ce = errors.SetCustomError(constant.ErrInternal)
	}

	writeJSON(w, ce.ErrorHTTPCode(), ErrorResponse{
		Code:    ce.ErrorCode(),
		Message: ce.Error(),
		Errors:  ce.Fields(),
	})
}

// decodeAndValidate reads a JSON body into dst and runs struct validation.
// An empty body decodes as {}. The returned error is ready for writeError.
func decodeAndValidate(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && err != io.EOF {
		var typeErr *json.UnmarshalTypeError
		if stderrors.As(err, &typeErr) && typeErr.Field != "" {
			return errors.SetValidationError([]errors.FieldError{{
				Field:   typeErr.Field,
				Tag:     "type",
				Message: fmt.Sprintf("%s must be of type %s", typeErr.Field, typeErr.Type.String()),
			}})
		}
		return errors.SetCustomError(constant.ErrInvalidBody)
	}
	if err := validatorx.ValidateStruct(dst); err != nil {
		return errors.SetValidationError(validatorx.FieldErrors(err))
	}
	return nil
}

// pathID reads the numeric {id} route variable. Route patterns only admit
// digits, so a parse failure means the id overflows and cannot exist.
func pathID(r *http.Request, notFound constant.ErrorType) (uint64, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil || id == 0 {
		return 0, errors.SetCustomError(notFound)
	}
	return id, nil
}

// queryID reads an optional positive integer query parameter. Zero means absent.
func queryID(r *http.Request, name string) (uint64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.SetValidationError([]errors.FieldError{{
			Field:   name,
			Tag:     "numeric",
			Message: name + " must be a positive integer",
		}})
	}
	return id, nil
}

// queryLimit reads the featured listing limit; absent means the default.
func queryLimit(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return constant.DefaultFeaturedLimit, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return 0, errors.SetValidationError([]errors.FieldError{{
			Field:   "limit",
			Tag:     "gt",
			Message: "limit must be a positive integer",
		}})
	}
	return limit, nil
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	writeError(w, errors.SetCustomError(constant.ErrNotFound))
}

func methodNotAllowedHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, ErrorResponse{
		Code:    constant.ErrorTypeCode[constant.ErrInvalidRequest],
		Message: "Method not allowed",
	})
}
