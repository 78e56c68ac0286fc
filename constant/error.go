package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrInvalidBody
	ErrUnauthorize
	ErrForbidden
	ErrUsernameExists
	ErrEmailExists
	ErrCredentialsRequired
	ErrInvalidCredentials
	ErrUserNotFound
	ErrVendorNotFound
	ErrEventRequestNotFound
	ErrUserReferenceNotFound
	ErrVendorReferenceNotFound
	ErrAlreadyVendor
	ErrDuplicateEntry
	ErrTooManyRequests
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:                 "success",
	ErrInternal:                "Internal server error",
	ErrNotFound:                "Not found",
	ErrInvalidRequest:          "Invalid request",
	ErrInvalidBody:             "Invalid request body",
	ErrUnauthorize:             "Unauthorized",
	ErrForbidden:               "Forbidden",
	ErrUsernameExists:          "Username already exists",
	ErrEmailExists:             "Email already exists",
	ErrCredentialsRequired:     "Username and password are required",
	ErrInvalidCredentials:      "Invalid username or password",
	ErrUserNotFound:            "User not found",
	ErrVendorNotFound:          "Vendor not found",
	ErrEventRequestNotFound:    "Event request not found",
	ErrUserReferenceNotFound:   "User not found",
	ErrVendorReferenceNotFound: "Vendor not found",
	ErrAlreadyVendor:           "User is already a vendor",
	ErrDuplicateEntry:          "Record already exists",
	ErrTooManyRequests:         "Too many requests",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:                 http.StatusOK,
	ErrInternal:                http.StatusInternalServerError,
	ErrNotFound:                http.StatusNotFound,
	ErrInvalidRequest:          http.StatusBadRequest,
	ErrInvalidBody:             http.StatusBadRequest,
	ErrUnauthorize:             http.StatusUnauthorized,
	ErrForbidden:               http.StatusForbidden,
	ErrUsernameExists:          http.StatusBadRequest,
	ErrEmailExists:             http.StatusBadRequest,
	ErrCredentialsRequired:     http.StatusBadRequest,
	ErrInvalidCredentials:      http.StatusUnauthorized,
	ErrUserNotFound:            http.StatusNotFound,
	ErrVendorNotFound:          http.StatusNotFound,
	ErrEventRequestNotFound:    http.StatusNotFound,
	ErrUserReferenceNotFound:   http.StatusBadRequest,
	ErrVendorReferenceNotFound: http.StatusBadRequest,
	ErrAlreadyVendor:           http.StatusBadRequest,
	ErrDuplicateEntry:          http.StatusBadRequest,
	ErrTooManyRequests:         http.StatusTooManyRequests,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:                 "0000",
	ErrInternal:                "0001",
	ErrNotFound:                "0002",
	ErrInvalidRequest:          "0003",
	ErrInvalidBody:             "0004",
	ErrUnauthorize:             "0005",
	ErrForbidden:               "0006",
	ErrUsernameExists:          "1001",
	ErrEmailExists:             "1002",
	ErrCredentialsRequired:     "1003",
	ErrInvalidCredentials:      "1004",
	ErrUserNotFound:            "1005",
	ErrVendorNotFound:          "2001",
	ErrEventRequestNotFound:    "3001",
	ErrUserReferenceNotFound:   "4001",
	ErrVendorReferenceNotFound: "4002",
	ErrAlreadyVendor:           "4003",
	ErrDuplicateEntry:          "4004",
	ErrTooManyRequests:         "0007",
}
