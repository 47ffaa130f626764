package exceptions

import (
	"fmt"
	"konsulin-admin-console/internal/pkg/constvars"
)

var (
	// Client-side validation
	ErrNoToken = func() *CustomError {
		return BuildNewCustomError(nil, KindNoToken, constvars.StatusUnauthorized, constvars.ErrClientAuthenticationRequired, constvars.ErrDevNoToken)
	}
	ErrInvalidID = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInvalidID, constvars.StatusBadRequest, constvars.ErrClientInvalidSpecializationID, constvars.ErrDevInvalidID)
	}
	ErrIDMissing = func() *CustomError {
		return BuildNewCustomError(nil, KindInvalidID, constvars.StatusBadRequest, constvars.ErrClientSpecializationIDMissing, constvars.ErrDevInvalidID)
	}
	ErrInvalidIDFormat = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInvalidIDFormat, constvars.StatusBadRequest, constvars.ErrClientInvalidSpecializationIDFmt, constvars.ErrDevInvalidIDFormat)
	}
	ErrConfirmationRequired = func() *CustomError {
		return BuildNewCustomError(nil, KindConfirmationRequired, constvars.StatusBadRequest, constvars.ErrClientConfirmationRequired, constvars.ErrDevConfirmationRequired)
	}
	ErrMutationInFlight = func(lockKey string) *CustomError {
		return BuildNewCustomError(nil, KindMutationInFlight, constvars.StatusConflict, constvars.ErrClientMutationInFlight, fmt.Sprintf(constvars.ErrDevMutationInFlight, lockKey))
	}

	// Backend answers
	ErrUnauthorized = func(err error) *CustomError {
		return BuildNewCustomError(err, KindUnauthorized, constvars.StatusUnauthorized, constvars.ErrClientUnableToUpdate, constvars.ErrDevUnauthorized)
	}
	ErrHTTPStatus = func(statusCode int, clientMessage string) *CustomError {
		return BuildNewCustomError(nil, KindHTTPStatus, statusCode, clientMessage, fmt.Sprintf(constvars.ErrDevHTTPStatus, statusCode))
	}
	ErrMalformedResponse = func(err error) *CustomError {
		return BuildNewCustomError(err, KindMalformedResponse, constvars.StatusBadGateway, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMalformedResponse)
	}

	// Transport
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCreateHTTPRequest)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrTransportFailure = func(err error) *CustomError {
		return BuildNewCustomError(err, KindTransportFailure, constvars.StatusBadGateway, constvars.ErrClientBackendUnreachable, constvars.ErrDevSendHTTPRequest)
	}
	ErrRateLimiterWait = func(err error) *CustomError {
		return BuildNewCustomError(err, KindTransportFailure, constvars.StatusBadGateway, constvars.ErrClientBackendUnreachable, constvars.ErrDevRateLimiterWait)
	}

	// Locker and Redis
	ErrLocker = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevLockerFailed)
	}
	ErrLockNotOwned = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevLockNotOwned)
	}
	ErrRedisGet = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGet)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDelete)
	}
	ErrRedisSetNX = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetNX)
	}
)
