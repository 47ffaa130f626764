package contracts

import (
	"context"
	"konsulin-admin-console/internal/pkg/dto/responses"
)

type SpecializationAPIClient interface {
	FindAll(ctx context.Context) ([]responses.Specialization, error)
	ToggleActive(ctx context.Context, specializationID int64) (*responses.MutationResult, error)
	Delete(ctx context.Context, specializationID int64) (*responses.MutationResult, error)
}

// SpecializationRefresher re-synchronizes a held collection with the backend.
type SpecializationRefresher interface {
	FetchAll(ctx context.Context) *responses.Notice
}

type SpecializationListState interface {
	SpecializationRefresher
	ApplyFilter(query string) []responses.Specialization
	Snapshot() responses.SpecializationListSnapshot
}

type SpecializationUsecase interface {
	NewListState() SpecializationListState
	ToggleActive(ctx context.Context, list SpecializationRefresher, rawID interface{}, currentStatus bool) []responses.Notice
	Delete(ctx context.Context, list SpecializationRefresher, rawID interface{}, confirmed bool) []responses.Notice
}
