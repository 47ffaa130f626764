package constvars

const (
	DefaultAPIBaseURL = "http://localhost:8000"

	APIPathHealth                     = "/health"
	APIPathSpecializationsAll         = "/api/specializations/all"
	APIPathSpecializationToggleFormat = "/api/specializations/%d/toggle-active"
	APIPathSpecializationFormat       = "/api/specializations/%d"

	LockKeySpecializationMutationFormat = "specialization:mutation:%d"
)

const (
	LockerDriverMemory = "memory"
	LockerDriverRedis  = "redis"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)
