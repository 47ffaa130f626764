package constvars

// Messages shown to the admin through notices
const (
	ErrClientAuthenticationRequired        = "Please log in to continue"
	ErrClientLoginToViewSpecializations    = "Please log in to view specializations"
	ErrClientLoginToUpdateSpecialization   = "Please log in to update specialization status"
	ErrClientLoginToDeleteSpecialization   = "Please log in to delete specialization"
	ErrClientUnableToUpdate                = "Unable to update. Please check your connection or try logging out and back in."
	ErrClientUnableToDelete                = "Unable to delete. Please check your connection or try logging out and back in."
	ErrClientSessionLooksExpired           = "Your session token appears to have expired."
	ErrClientInvalidSpecializationID       = "Invalid specialization ID"
	ErrClientInvalidSpecializationIDFmt    = "Invalid specialization ID format"
	ErrClientSpecializationIDMissing       = "Specialization ID is missing"
	ErrClientFailedToFetchSpecializations  = "Failed to fetch specializations. Please check your connection."
	ErrClientFailedToUpdateSpecialization  = "Failed to update specialization status"
	ErrClientFailedToDeleteSpecialization  = "Failed to delete specialization"
	ErrClientMutationInFlight              = "Another change to this specialization is still in progress"
	ErrClientConfirmationRequired          = "Deletion was not confirmed"
	ErrClientBackendUnreachable            = "Unable to reach the backend. Please check your connection."
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientHTTPStatusFallbackFormat      = "Failed: %d"
)

// Messages for developers, these end up in logs only
const (
	ErrDevNoToken              = "no bearer token available, request not sent"
	ErrDevInvalidID            = "identifier is not a positive integer"
	ErrDevInvalidIDFormat      = "identifier contains no digit run"
	ErrDevUnauthorized         = "backend answered 401 unauthorized"
	ErrDevHTTPStatus           = "backend answered non-2xx status %d"
	ErrDevMalformedResponse    = "response body does not have the expected shape"
	ErrDevSendHTTPRequest      = "failed to send HTTP request"
	ErrDevCreateHTTPRequest    = "failed to create HTTP request"
	ErrDevCannotMarshalJSON    = "cannot marshal JSON"
	ErrDevMutationInFlight     = "mutation already in flight for key %s"
	ErrDevConfirmationRequired = "destructive action attempted without confirmation"
	ErrDevLockerFailed         = "locker backend failed"
	ErrDevLockNotOwned         = "lock not owned by this client"
	ErrDevRedisGet             = "failed to get data from redis"
	ErrDevRedisDelete          = "failed to delete data from redis"
	ErrDevRedisSetNX           = "failed to set data with NX into redis"
	ErrDevRateLimiterWait      = "outbound rate limiter wait aborted"
	ErrDevConfigValidation     = "configuration validation failed"
)

const ResponseUnknown = "unknown"
