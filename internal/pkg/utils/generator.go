package utils

import "github.com/google/uuid"

func GenerateRequestID() string {
	return uuid.NewString()
}

func GenerateLockValue() string {
	return uuid.NewString()
}
