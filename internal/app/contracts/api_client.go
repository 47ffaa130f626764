package contracts

import (
	"context"
	"konsulin-admin-console/internal/pkg/dto/responses"
)

type APIClient interface {
	Do(ctx context.Context, method, path string, body interface{}) (*responses.APIResponse, error)
	Health(ctx context.Context) (*responses.HealthStatus, error)
}
