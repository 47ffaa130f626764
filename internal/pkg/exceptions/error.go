package exceptions

import (
	"errors"
	"fmt"
	"konsulin-admin-console/internal/pkg/constvars"
	"runtime"
)

type ErrorKind string

const (
	KindInternal             ErrorKind = "internal"
	KindNoToken              ErrorKind = "no_token"
	KindInvalidID            ErrorKind = "invalid_id"
	KindInvalidIDFormat      ErrorKind = "invalid_id_format"
	KindUnauthorized         ErrorKind = "unauthorized"
	KindHTTPStatus           ErrorKind = "http_error"
	KindMalformedResponse    ErrorKind = "malformed_response"
	KindTransportFailure     ErrorKind = "transport_failure"
	KindMutationInFlight     ErrorKind = "mutation_in_flight"
	KindConfirmationRequired ErrorKind = "confirmation_required"
)

type CustomError struct {
	StatusCode    int       `json:"status_code"`
	Success       bool      `json:"success"`
	ClientMessage string    `json:"message"`
	DevMessage    string    `json:"-"`
	Kind          ErrorKind `json:"-"`
	Location      Location  `json:"-"`
	Err           error     `json:"-"`
}

type Location struct {
	File         string
	Line         int
	FunctionName string
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, e.Location.File, e.Location.Line, e.Location.FunctionName)
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// BuildNewCustomError records the caller of the ErrXxx constructor as the error location.
func BuildNewCustomError(err error, kind ErrorKind, statusCode int, clientMessage, devMessage string) *CustomError {
	if err != nil {
		devMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Kind:          kind,
		Location:      getLocation(3),
		Err:           err,
	}
}

// KindOf reports the taxonomy member of err, KindInternal when err is not a CustomError.
func KindOf(err error) ErrorKind {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr.Kind
	}
	return KindInternal
}

// ClientMessageOf returns the message meant for the admin, or fallback when err carries none.
func ClientMessageOf(err error, fallback string) string {
	var customErr *CustomError
	if errors.As(err, &customErr) && customErr.ClientMessage != "" {
		return customErr.ClientMessage
	}
	return fallback
}

func StatusCodeOf(err error) int {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr.StatusCode
	}
	return constvars.StatusInternalServerError
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ResponseUnknown,
			Line:         0,
			FunctionName: constvars.ResponseUnknown,
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
