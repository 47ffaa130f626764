package constvars

const (
	LoggingRequestIDKey          = "request_id"
	LoggingMethodKey             = "method"
	LoggingEndpointKey           = "endpoint"
	LoggingURLKey                = "url"
	LoggingRemoteAddrKey         = "remote_addr"
	LoggingUserAgentKey          = "user_agent"
	LoggingQueryKey              = "query"
	LoggingStatusCodeKey         = "status_code"
	LoggingDurationKey           = "duration"
	LoggingSuccessKey            = "success"
	LoggingResponseLengthKey     = "response_length"
	LoggingSpecializationIDKey   = "specialization_id"
	LoggingSpecializationRawKey  = "specialization_raw_id"
	LoggingCurrentStatusKey      = "current_status"
	LoggingListStateKey          = "list_state"
	LoggingGenerationKey         = "generation"
	LoggingLockKey               = "lock_key"
	LoggingLockValueKey          = "lock_value"
	LoggingLockExpirationTimeKey = "lock_expiration"
	LoggingTokenPresentKey       = "token_present"
	LoggingErrorKindKey          = "error_kind"
)
